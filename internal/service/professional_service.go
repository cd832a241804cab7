package service

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"

	"github.com/rafaelmelo2/maonamassa/internal/domain"
	"github.com/rafaelmelo2/maonamassa/internal/events"
	"github.com/rafaelmelo2/maonamassa/internal/persistence"
	"github.com/rafaelmelo2/maonamassa/internal/repository"
	apperrors "github.com/rafaelmelo2/maonamassa/pkg/util"
)

// ProfessionalService coordinates provider profile workflows.
type ProfessionalService struct {
	professionals repository.ProfessionalRepository
	users         repository.UserRepository
	cache         *persistence.SummaryCache
	dispatcher    events.Dispatcher
	logger        *zap.Logger
}

// ProfessionalDependencies bundles requirements for the service.
type ProfessionalDependencies struct {
	ProfessionalRepo repository.ProfessionalRepository
	UserRepo         repository.UserRepository
	Cache            *persistence.SummaryCache
	Dispatcher       events.Dispatcher
	Logger           *zap.Logger
}

// CreateProfessionalInput describes a new provider profile.
type CreateProfessionalInput struct {
	BusinessName     string
	Description      string
	Specialties      []string
	Experience       int
	ServiceRadius    float64
	EmergencyService bool
	WorkingHours     domain.WorkingHours
	Documents        domain.Documents
}

// NewProfessionalService constructs the service.
func NewProfessionalService(deps ProfessionalDependencies) *ProfessionalService {
	if deps.Logger == nil {
		deps.Logger = zap.NewNop()
	}
	return &ProfessionalService{
		professionals: deps.ProfessionalRepo,
		users:         deps.UserRepo,
		cache:         deps.Cache,
		dispatcher:    deps.Dispatcher,
		logger:        deps.Logger,
	}
}

// Create opens a provider profile for a user holding the professional role.
// The profile starts on the free plan, pending both status and verification.
func (s *ProfessionalService) Create(ctx context.Context, userID string, input CreateProfessionalInput) (*domain.Professional, error) {
	user, err := s.users.GetByID(ctx, userID)
	if err != nil {
		return nil, err
	}
	if user.Role != domain.RoleProfessional {
		return nil, apperrors.NewForbidden("account is not a professional")
	}
	if _, err := s.professionals.GetByUserID(ctx, userID); err == nil {
		return nil, apperrors.NewConflict("professional profile already exists", nil)
	} else if !errors.Is(err, pgx.ErrNoRows) {
		return nil, err
	}

	professional := &domain.Professional{
		UserID:             userID,
		BusinessName:       input.BusinessName,
		Description:        input.Description,
		Specialties:        input.Specialties,
		Experience:         input.Experience,
		Documents:          input.Documents,
		Plan:               domain.PlanFree,
		Status:             domain.ProfessionalStatusPending,
		VerificationStatus: domain.VerificationPending,
		WorkingHours:       input.WorkingHours,
		ServiceRadius:      input.ServiceRadius,
		EmergencyService:   input.EmergencyService,
		Portfolio:          []domain.PortfolioItem{},
	}
	if err := s.professionals.Create(ctx, professional); err != nil {
		return nil, err
	}

	s.publish(ctx, events.Event{
		Type:     events.EventProfessionalCreated,
		EntityID: professional.ID,
		ActorID:  userID,
	})
	return professional, nil
}

// Get returns one provider profile.
func (s *ProfessionalService) Get(ctx context.Context, id string) (*domain.Professional, error) {
	return s.professionals.GetByID(ctx, id)
}

// GetByUser returns the provider profile owned by a user.
func (s *ProfessionalService) GetByUser(ctx context.Context, userID string) (*domain.Professional, error) {
	return s.professionals.GetByUserID(ctx, userID)
}

// List returns provider profiles matching the filter.
func (s *ProfessionalService) List(ctx context.Context, filter repository.ProfessionalFilter) ([]domain.Professional, error) {
	return s.professionals.ListWithFilter(ctx, filter)
}

// Summary returns the transport projection, served from cache when possible.
func (s *ProfessionalService) Summary(ctx context.Context, id string) (*domain.ProfessionalSummary, error) {
	if s.cache != nil {
		if cached, ok := s.cache.GetProfessionalSummary(ctx, id); ok {
			return cached, nil
		}
	}
	professional, err := s.professionals.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	summary := domain.NewProfessionalEntity(professional).ToSummary()
	if s.cache != nil {
		if err := s.cache.SetProfessionalSummary(ctx, summary); err != nil {
			s.logger.Warn("summary cache write failed", zap.Error(err))
		}
	}
	return &summary, nil
}

// RecordProfileView bumps the pending profile-view counter. The metrics
// aggregation job drains the counter into the metrics snapshot.
func (s *ProfessionalService) RecordProfileView(ctx context.Context, id string) {
	if s.cache == nil {
		return
	}
	if _, err := s.cache.IncrementProfileViews(ctx, id); err != nil {
		s.logger.Debug("profile view counter unavailable", zap.Error(err))
	}
}

// UpdateProfile applies a partial profile patch.
func (s *ProfessionalService) UpdateProfile(ctx context.Context, id string, patch domain.ProfessionalPatch) (*domain.Professional, error) {
	return s.mutate(ctx, id, func(e *domain.ProfessionalEntity) {
		e.UpdateProfile(patch)
	}, nil)
}

// Activate sets the provider status to active.
func (s *ProfessionalService) Activate(ctx context.Context, id string) (*domain.Professional, error) {
	return s.setStatus(ctx, id, func(e *domain.ProfessionalEntity) { e.Activate() })
}

// Deactivate sets the provider status to inactive.
func (s *ProfessionalService) Deactivate(ctx context.Context, id string) (*domain.Professional, error) {
	return s.setStatus(ctx, id, func(e *domain.ProfessionalEntity) { e.Deactivate() })
}

// Suspend sets the provider status to suspended.
func (s *ProfessionalService) Suspend(ctx context.Context, id string) (*domain.Professional, error) {
	return s.setStatus(ctx, id, func(e *domain.ProfessionalEntity) { e.Suspend() })
}

// Verify approves the provider's document review. Status and plan stay as
// they are; activation is a separate, explicit call.
func (s *ProfessionalService) Verify(ctx context.Context, id string) (*domain.Professional, error) {
	return s.mutate(ctx, id, func(e *domain.ProfessionalEntity) {
		e.Verify()
	}, func(p *domain.Professional) events.Event {
		return events.Event{
			Type:     events.EventProfessionalVerified,
			EntityID: p.ID,
			Payload:  events.ProfessionalVerifiedPayload{UserID: p.UserID},
		}
	})
}

// UpgradeToPremium assigns the premium plan.
func (s *ProfessionalService) UpgradeToPremium(ctx context.Context, id string) (*domain.Professional, error) {
	return s.setPlan(ctx, id, func(e *domain.ProfessionalEntity) { e.UpgradeToPremium() })
}

// DowngradeToFree assigns the free plan.
func (s *ProfessionalService) DowngradeToFree(ctx context.Context, id string) (*domain.Professional, error) {
	return s.setPlan(ctx, id, func(e *domain.ProfessionalEntity) { e.DowngradeToFree() })
}

// AddPortfolioItem appends a work sample to the provider's portfolio.
func (s *ProfessionalService) AddPortfolioItem(ctx context.Context, id string, input domain.PortfolioItemInput) (*domain.PortfolioItem, error) {
	professional, err := s.professionals.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	entity := domain.NewProfessionalEntity(professional)
	item := entity.AddPortfolioItem(input)
	if err := s.professionals.Update(ctx, entity.Record()); err != nil {
		return nil, err
	}
	s.invalidateSummary(ctx, id)
	s.publish(ctx, events.Event{
		Type:     events.EventPortfolioItemAdded,
		EntityID: professional.ID,
		Payload: events.PortfolioItemAddedPayload{
			ItemID:   item.ID,
			Title:    item.Title,
			Category: item.Category,
		},
	})
	return &item, nil
}

// UpdateMetrics merges an aggregated metrics snapshot supplied by the
// external aggregation job. No cross-field consistency is enforced.
func (s *ProfessionalService) UpdateMetrics(ctx context.Context, id string, patch domain.MetricsPatch) (*domain.Professional, error) {
	return s.mutate(ctx, id, func(e *domain.ProfessionalEntity) {
		e.UpdateMetrics(patch)
	}, nil)
}

// FlushProfileViews drains pending view counters into the stored metrics
// snapshot. Called periodically by the metrics worker.
func (s *ProfessionalService) FlushProfileViews(ctx context.Context) error {
	if s.cache == nil {
		return nil
	}
	const pageSize = 100
	for offset := 0; ; offset += pageSize {
		page, err := s.professionals.ListWithFilter(ctx, repository.ProfessionalFilter{Limit: pageSize, Offset: offset})
		if err != nil {
			return err
		}
		for i := range page {
			professional := &page[i]
			views, err := s.cache.DrainProfileViews(ctx, professional.ID)
			if err != nil {
				s.logger.Warn("profile view drain failed", zap.String("professional_id", professional.ID), zap.Error(err))
				continue
			}
			if views == 0 {
				continue
			}
			total := professional.Metrics.ProfileViews + int(views)
			if _, err := s.UpdateMetrics(ctx, professional.ID, domain.MetricsPatch{ProfileViews: &total}); err != nil {
				s.logger.Warn("profile view merge failed", zap.String("professional_id", professional.ID), zap.Error(err))
			}
		}
		if len(page) < pageSize {
			return nil
		}
	}
}

// UpdateLastActive stamps provider activity.
func (s *ProfessionalService) UpdateLastActive(ctx context.Context, id string) error {
	_, err := s.mutate(ctx, id, func(e *domain.ProfessionalEntity) {
		e.UpdateLastActive()
	}, nil)
	return err
}

func (s *ProfessionalService) setStatus(ctx context.Context, id string, op func(*domain.ProfessionalEntity)) (*domain.Professional, error) {
	var oldStatus domain.ProfessionalStatus
	return s.mutate(ctx, id, func(e *domain.ProfessionalEntity) {
		oldStatus = e.Status()
		op(e)
	}, func(p *domain.Professional) events.Event {
		return events.Event{
			Type:     events.EventProfessionalStatusChanged,
			EntityID: p.ID,
			Payload: events.ProfessionalStatusChangedPayload{
				OldStatus: oldStatus,
				NewStatus: p.Status,
			},
		}
	})
}

func (s *ProfessionalService) setPlan(ctx context.Context, id string, op func(*domain.ProfessionalEntity)) (*domain.Professional, error) {
	var oldPlan domain.ProfessionalPlan
	return s.mutate(ctx, id, func(e *domain.ProfessionalEntity) {
		oldPlan = e.Plan()
		op(e)
	}, func(p *domain.Professional) events.Event {
		return events.Event{
			Type:     events.EventPlanChanged,
			EntityID: p.ID,
			Payload: events.PlanChangedPayload{
				OldPlan: oldPlan,
				NewPlan: p.Plan,
			},
		}
	})
}

// mutate loads the record, applies the wrapper operation, persists it back
// and invalidates the cached summary. eventFn, when set, builds the event to
// publish after a successful write.
func (s *ProfessionalService) mutate(ctx context.Context, id string, op func(*domain.ProfessionalEntity), eventFn func(*domain.Professional) events.Event) (*domain.Professional, error) {
	professional, err := s.professionals.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	entity := domain.NewProfessionalEntity(professional)
	op(entity)
	if err := s.professionals.Update(ctx, entity.Record()); err != nil {
		return nil, err
	}
	s.invalidateSummary(ctx, id)
	if eventFn != nil {
		s.publish(ctx, eventFn(professional))
	}
	return professional, nil
}

func (s *ProfessionalService) invalidateSummary(ctx context.Context, id string) {
	if s.cache == nil {
		return
	}
	if err := s.cache.InvalidateProfessionalSummary(ctx, id); err != nil {
		s.logger.Warn("summary cache invalidation failed", zap.Error(err))
	}
}

func (s *ProfessionalService) publish(ctx context.Context, event events.Event) {
	if s.dispatcher == nil {
		return
	}
	if event.ID == "" {
		event.ID = uuid.NewString()
	}
	if event.Timestamp.IsZero() {
		event.Timestamp = time.Now()
	}
	_ = s.dispatcher.Publish(ctx, event)
}
