package service

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/rafaelmelo2/maonamassa/internal/domain"
	"github.com/rafaelmelo2/maonamassa/internal/events"
	"github.com/rafaelmelo2/maonamassa/internal/repository"
	apperrors "github.com/rafaelmelo2/maonamassa/pkg/util"
)

// ContractService manages agreements between clients and professionals.
type ContractService struct {
	contracts     repository.ContractRepository
	services      repository.ServiceRepository
	professionals repository.ProfessionalRepository
	dispatcher    events.Dispatcher
}

// CreateContractInput describes a new agreement request.
type CreateContractInput struct {
	ServiceID     string
	Scope         string
	Amount        float64
	Currency      string
	PaymentMethod domain.PaymentMethod
	StartDate     *time.Time
	EndDate       *time.Time
}

// NewContractService constructs the service.
func NewContractService(contracts repository.ContractRepository, services repository.ServiceRepository, professionals repository.ProfessionalRepository, dispatcher events.Dispatcher) *ContractService {
	return &ContractService{
		contracts:     contracts,
		services:      services,
		professionals: professionals,
		dispatcher:    dispatcher,
	}
}

// Create opens a pending agreement for a listing on behalf of a client.
func (s *ContractService) Create(ctx context.Context, clientID string, input CreateContractInput) (*domain.Contract, error) {
	listing, err := s.services.GetByID(ctx, input.ServiceID)
	if err != nil {
		return nil, err
	}
	if listing.Status != domain.ServiceStatusActive {
		return nil, apperrors.NewValidationError("listing is not accepting contracts", nil)
	}

	currency := input.Currency
	if currency == "" {
		currency = "BRL"
	}
	contract := &domain.Contract{
		ServiceID:      listing.ID,
		ClientID:       clientID,
		ProfessionalID: listing.ProfessionalID,
		Status:         domain.ContractStatusPending,
		Scope:          input.Scope,
		Amount:         input.Amount,
		Currency:       currency,
		PaymentMethod:  input.PaymentMethod,
		StartDate:      input.StartDate,
		EndDate:        input.EndDate,
	}
	if err := s.contracts.Create(ctx, contract); err != nil {
		return nil, err
	}
	return contract, nil
}

// GetForParticipant returns a contract only to its client or its professional.
func (s *ContractService) GetForParticipant(ctx context.Context, userID, id string) (*domain.Contract, error) {
	contract, err := s.contracts.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	ok, err := s.isParticipant(ctx, userID, contract)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, apperrors.NewForbidden("not a participant of this contract")
	}
	return contract, nil
}

// ListForUser returns contracts where the user is the client, merged with
// contracts where the user's professional profile is the provider.
func (s *ContractService) ListForUser(ctx context.Context, userID string, limit, offset int) ([]domain.Contract, error) {
	asClient, err := s.contracts.ListByClient(ctx, userID, limit, offset)
	if err != nil {
		return nil, err
	}
	professional, err := s.professionals.GetByUserID(ctx, userID)
	if err != nil {
		return asClient, nil
	}
	asProvider, err := s.contracts.ListByProfessional(ctx, professional.ID, limit, offset)
	if err != nil {
		return nil, err
	}
	return append(asClient, asProvider...), nil
}

// UpdateStatus moves a contract to the given status on behalf of a
// participant. Transitions are not restricted; terminal timestamps are
// stamped as statuses are reached.
func (s *ContractService) UpdateStatus(ctx context.Context, userID, id string, status domain.ContractStatus) (*domain.Contract, error) {
	contract, err := s.GetForParticipant(ctx, userID, id)
	if err != nil {
		return nil, err
	}
	oldStatus := contract.Status
	now := time.Now()
	contract.Status = status
	contract.UpdatedAt = now
	switch status {
	case domain.ContractStatusInProgress:
		if contract.StartedAt == nil {
			contract.StartedAt = &now
		}
	case domain.ContractStatusCompleted:
		if contract.CompletedAt == nil {
			contract.CompletedAt = &now
		}
	case domain.ContractStatusCancelled:
		if contract.CancelledAt == nil {
			contract.CancelledAt = &now
		}
	}
	if err := s.contracts.Update(ctx, contract); err != nil {
		return nil, err
	}
	s.publish(ctx, events.Event{
		Type:     events.EventContractStatusChanged,
		EntityID: contract.ID,
		ActorID:  userID,
		Payload: events.ContractStatusChangedPayload{
			OldStatus: oldStatus,
			NewStatus: status,
		},
	})
	return contract, nil
}

func (s *ContractService) isParticipant(ctx context.Context, userID string, contract *domain.Contract) (bool, error) {
	if contract.ClientID == userID {
		return true, nil
	}
	professional, err := s.professionals.GetByUserID(ctx, userID)
	if err != nil {
		return false, nil
	}
	return contract.ProfessionalID == professional.ID, nil
}

func (s *ContractService) publish(ctx context.Context, event events.Event) {
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
