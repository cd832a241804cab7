package service

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/rafaelmelo2/maonamassa/internal/domain"
	"github.com/rafaelmelo2/maonamassa/internal/events"
	"github.com/rafaelmelo2/maonamassa/internal/repository"
)

// UserService coordinates account profile and lifecycle workflows. All
// mutation flows load the record, wrap it in a UserEntity, apply the
// operation and persist the mutated record back.
type UserService struct {
	users      repository.UserRepository
	dispatcher events.Dispatcher
}

// NewUserService builds the service.
func NewUserService(users repository.UserRepository, dispatcher events.Dispatcher) *UserService {
	return &UserService{users: users, dispatcher: dispatcher}
}

// Get returns one account.
func (s *UserService) Get(ctx context.Context, userID string) (*domain.User, error) {
	return s.users.GetByID(ctx, userID)
}

// Summary returns the transport projection for one account.
func (s *UserService) Summary(ctx context.Context, userID string) (*domain.UserSummary, error) {
	user, err := s.users.GetByID(ctx, userID)
	if err != nil {
		return nil, err
	}
	summary := domain.NewUserEntity(user).ToSummary()
	return &summary, nil
}

// UpdateProfile applies a partial profile patch.
func (s *UserService) UpdateProfile(ctx context.Context, userID string, patch domain.UserProfilePatch) (*domain.User, error) {
	user, err := s.users.GetByID(ctx, userID)
	if err != nil {
		return nil, err
	}
	entity := domain.NewUserEntity(user)
	entity.UpdateProfile(patch)
	if err := s.users.Update(ctx, entity.Record()); err != nil {
		return nil, err
	}
	return user, nil
}

// VerifyEmail marks the account email as verified.
func (s *UserService) VerifyEmail(ctx context.Context, userID string) (*domain.User, error) {
	return s.verify(ctx, userID, "email")
}

// VerifyPhone marks the account phone as verified.
func (s *UserService) VerifyPhone(ctx context.Context, userID string) (*domain.User, error) {
	return s.verify(ctx, userID, "phone")
}

func (s *UserService) verify(ctx context.Context, userID, channel string) (*domain.User, error) {
	user, err := s.users.GetByID(ctx, userID)
	if err != nil {
		return nil, err
	}
	entity := domain.NewUserEntity(user)
	switch channel {
	case "email":
		entity.VerifyEmail()
	case "phone":
		entity.VerifyPhone()
	}
	if err := s.users.Update(ctx, entity.Record()); err != nil {
		return nil, err
	}
	s.publish(ctx, events.Event{
		Type:     events.EventUserVerified,
		EntityID: user.ID,
		Payload:  events.UserVerifiedPayload{Channel: channel},
	})
	return user, nil
}

// Activate sets the account status to active.
func (s *UserService) Activate(ctx context.Context, userID string) (*domain.User, error) {
	return s.setStatus(ctx, userID, func(e *domain.UserEntity) { e.Activate() })
}

// Deactivate sets the account status to inactive.
func (s *UserService) Deactivate(ctx context.Context, userID string) (*domain.User, error) {
	return s.setStatus(ctx, userID, func(e *domain.UserEntity) { e.Deactivate() })
}

// Ban sets the account status to banned.
func (s *UserService) Ban(ctx context.Context, userID string) (*domain.User, error) {
	return s.setStatus(ctx, userID, func(e *domain.UserEntity) { e.Ban() })
}

// setStatus runs one of the unguarded status operations and records the
// change as an event.
func (s *UserService) setStatus(ctx context.Context, userID string, mutate func(*domain.UserEntity)) (*domain.User, error) {
	user, err := s.users.GetByID(ctx, userID)
	if err != nil {
		return nil, err
	}
	oldStatus := user.Status
	entity := domain.NewUserEntity(user)
	mutate(entity)
	if err := s.users.Update(ctx, entity.Record()); err != nil {
		return nil, err
	}
	s.publish(ctx, events.Event{
		Type:     events.EventUserStatusChanged,
		EntityID: user.ID,
		Payload: events.UserStatusChangedPayload{
			OldStatus: oldStatus,
			NewStatus: user.Status,
		},
	})
	return user, nil
}

// Delete soft-deletes the account; it will no longer load from reads.
func (s *UserService) Delete(ctx context.Context, userID string) error {
	return s.users.SoftDelete(ctx, userID)
}

func (s *UserService) publish(ctx context.Context, event events.Event) {
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
