package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/rafaelmelo2/maonamassa/internal/domain"
	"github.com/rafaelmelo2/maonamassa/internal/events"
)

func seedUser(t *testing.T, repo *fakeUserRepo, status domain.UserStatus) *domain.User {
	t.Helper()
	user := &domain.User{
		Email:  "seed@example.com",
		Name:   "Seed User",
		Role:   domain.RoleClient,
		Status: status,
	}
	require.NoError(t, repo.Create(context.Background(), user))
	return user
}

func TestUpdateProfilePersistsPatch(t *testing.T) {
	users := newFakeUserRepo()
	svc := NewUserService(users, nil)
	seeded := seedUser(t, users, domain.UserStatusActive)

	name := "Renamed"
	phone := "+55 64 99999-0000"
	updated, err := svc.UpdateProfile(context.Background(), seeded.ID, domain.UserProfilePatch{
		Name:  &name,
		Phone: &phone,
	})
	require.NoError(t, err)
	require.Equal(t, "Renamed", updated.Name)
	require.Equal(t, phone, updated.Phone)

	stored, err := users.GetByID(context.Background(), seeded.ID)
	require.NoError(t, err)
	require.Equal(t, "Renamed", stored.Name)
}

func TestVerifyEmailPublishesEvent(t *testing.T) {
	users := newFakeUserRepo()
	dispatcher := &recordingDispatcher{}
	svc := NewUserService(users, dispatcher)
	seeded := seedUser(t, users, domain.UserStatusActive)

	updated, err := svc.VerifyEmail(context.Background(), seeded.ID)
	require.NoError(t, err)
	require.True(t, updated.EmailVerified)
	require.False(t, updated.PhoneVerified)

	published := dispatcher.published()
	require.Len(t, published, 1)
	require.Equal(t, events.EventUserVerified, published[0].Type)
	payload, ok := published[0].Payload.(events.UserVerifiedPayload)
	require.True(t, ok)
	require.Equal(t, "email", payload.Channel)
}

func TestStatusChangePublishesOldAndNew(t *testing.T) {
	users := newFakeUserRepo()
	dispatcher := &recordingDispatcher{}
	svc := NewUserService(users, dispatcher)
	seeded := seedUser(t, users, domain.UserStatusPending)

	updated, err := svc.Activate(context.Background(), seeded.ID)
	require.NoError(t, err)
	require.Equal(t, domain.UserStatusActive, updated.Status)

	published := dispatcher.published()
	require.Len(t, published, 1)
	payload, ok := published[0].Payload.(events.UserStatusChangedPayload)
	require.True(t, ok)
	require.Equal(t, domain.UserStatusPending, payload.OldStatus)
	require.Equal(t, domain.UserStatusActive, payload.NewStatus)
}

func TestBanIsUnconditional(t *testing.T) {
	users := newFakeUserRepo()
	svc := NewUserService(users, nil)
	seeded := seedUser(t, users, domain.UserStatusPending)

	updated, err := svc.Ban(context.Background(), seeded.ID)
	require.NoError(t, err)
	require.Equal(t, domain.UserStatusBanned, updated.Status)
}

func TestDeleteHidesUserFromReads(t *testing.T) {
	users := newFakeUserRepo()
	svc := NewUserService(users, nil)
	seeded := seedUser(t, users, domain.UserStatusActive)

	require.NoError(t, svc.Delete(context.Background(), seeded.ID))

	_, err := svc.Get(context.Background(), seeded.ID)
	require.Error(t, err)
}

func TestSummaryOmitsSensitiveFields(t *testing.T) {
	users := newFakeUserRepo()
	svc := NewUserService(users, nil)
	seeded := seedUser(t, users, domain.UserStatusActive)

	summary, err := svc.Summary(context.Background(), seeded.ID)
	require.NoError(t, err)
	require.Equal(t, seeded.ID, summary.ID)
	require.Equal(t, seeded.Name, summary.Name)
}
