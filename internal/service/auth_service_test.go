package service

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/rafaelmelo2/maonamassa/internal/config"
	"github.com/rafaelmelo2/maonamassa/internal/domain"
	"github.com/rafaelmelo2/maonamassa/internal/events"
	apperrors "github.com/rafaelmelo2/maonamassa/pkg/util"
)

func testAuthConfig() config.Config {
	return config.Config{
		Auth: config.AuthConfig{
			JWTSecret:               "test-secret",
			AccessTokenTTLMinutes:   60,
			PasswordResetTTLMinutes: 30,
			BcryptCost:              4,
		},
	}
}

func newTestAuthService() (*AuthService, *fakeUserRepo, *fakeResetRepo, *recordingDispatcher) {
	users := newFakeUserRepo()
	resets := newFakeResetRepo()
	dispatcher := &recordingDispatcher{}
	svc := NewAuthService(testAuthConfig(), AuthDependencies{
		UserRepo:          users,
		PasswordResetRepo: resets,
		Dispatcher:        dispatcher,
	})
	return svc, users, resets, dispatcher
}

func TestRegisterCreatesPendingAccount(t *testing.T) {
	svc, _, _, dispatcher := newTestAuthService()

	user, token, exp, err := svc.Register(context.Background(), RegisterInput{
		Name:     "Maria Silva",
		Email:    "  Maria@Example.COM ",
		Password: "s3cret-pass",
		Role:     domain.RoleProfessional,
	})
	require.NoError(t, err)
	require.Equal(t, "maria@example.com", user.Email)
	require.Equal(t, domain.UserStatusPending, user.Status)
	require.Equal(t, domain.RoleProfessional, user.Role)
	require.NotEmpty(t, token)
	require.True(t, exp.After(time.Now()))
	require.NotEqual(t, "s3cret-pass", user.PasswordHash, "password must be stored hashed")

	published := dispatcher.published()
	require.Len(t, published, 1)
	require.Equal(t, events.EventUserRegistered, published[0].Type)
	require.Equal(t, user.ID, published[0].EntityID)
}

func TestRegisterDefaultsToClientRole(t *testing.T) {
	svc, _, _, _ := newTestAuthService()

	user, _, _, err := svc.Register(context.Background(), RegisterInput{
		Name:     "Joana",
		Email:    "joana@example.com",
		Password: "pw123456",
	})
	require.NoError(t, err)
	require.Equal(t, domain.RoleClient, user.Role)
}

func TestRegisterRejectsDuplicateEmail(t *testing.T) {
	svc, _, _, _ := newTestAuthService()
	ctx := context.Background()

	_, _, _, err := svc.Register(ctx, RegisterInput{Name: "A", Email: "dup@example.com", Password: "pw123456"})
	require.NoError(t, err)

	_, _, _, err = svc.Register(ctx, RegisterInput{Name: "B", Email: "DUP@example.com", Password: "pw123456"})
	require.Error(t, err)
	var domainErr *apperrors.DomainError
	require.ErrorAs(t, err, &domainErr)
	require.Equal(t, "CONFLICT", domainErr.Code)
}

func TestLoginRequiresActiveAccount(t *testing.T) {
	svc, users, _, _ := newTestAuthService()
	ctx := context.Background()

	registered, _, _, err := svc.Register(ctx, RegisterInput{Name: "P", Email: "p@example.com", Password: "pw123456"})
	require.NoError(t, err)

	_, _, _, err = svc.Login(ctx, "p@example.com", "pw123456")
	var domainErr *apperrors.DomainError
	require.ErrorAs(t, err, &domainErr)
	require.Equal(t, "FORBIDDEN", domainErr.Code)

	stored, err := users.GetByID(ctx, registered.ID)
	require.NoError(t, err)
	stored.Status = domain.UserStatusActive
	require.NoError(t, users.Update(ctx, stored))

	user, token, _, err := svc.Login(ctx, "p@example.com", "pw123456")
	require.NoError(t, err)
	require.NotEmpty(t, token)
	require.NotNil(t, user.LastLoginAt)
}

func TestLoginRejectsBadCredentials(t *testing.T) {
	svc, users, _, _ := newTestAuthService()
	ctx := context.Background()

	registered, _, _, err := svc.Register(ctx, RegisterInput{Name: "Q", Email: "q@example.com", Password: "pw123456"})
	require.NoError(t, err)
	stored, _ := users.GetByID(ctx, registered.ID)
	stored.Status = domain.UserStatusActive
	require.NoError(t, users.Update(ctx, stored))

	_, _, _, err = svc.Login(ctx, "q@example.com", "wrong-password")
	var domainErr *apperrors.DomainError
	require.ErrorAs(t, err, &domainErr)
	require.Equal(t, "UNAUTHORIZED", domainErr.Code)

	_, _, _, err = svc.Login(ctx, "nobody@example.com", "pw123456")
	require.ErrorAs(t, err, &domainErr)
	require.Equal(t, "UNAUTHORIZED", domainErr.Code)
}

func TestChangePasswordVerifiesCurrent(t *testing.T) {
	svc, users, _, _ := newTestAuthService()
	ctx := context.Background()

	registered, _, _, err := svc.Register(ctx, RegisterInput{Name: "R", Email: "r@example.com", Password: "old-pass-1"})
	require.NoError(t, err)
	stored, _ := users.GetByID(ctx, registered.ID)
	stored.Status = domain.UserStatusActive
	require.NoError(t, users.Update(ctx, stored))

	err = svc.ChangePassword(ctx, registered.ID, "wrong", "new-pass-1")
	require.Error(t, err)

	require.NoError(t, svc.ChangePassword(ctx, registered.ID, "old-pass-1", "new-pass-1"))

	_, _, _, err = svc.Login(ctx, "r@example.com", "new-pass-1")
	require.NoError(t, err)
}

func TestPasswordResetFlow(t *testing.T) {
	svc, users, _, _ := newTestAuthService()
	ctx := context.Background()

	registered, _, _, err := svc.Register(ctx, RegisterInput{Name: "S", Email: "s@example.com", Password: "first-pass"})
	require.NoError(t, err)
	stored, _ := users.GetByID(ctx, registered.ID)
	stored.Status = domain.UserStatusActive
	require.NoError(t, users.Update(ctx, stored))

	token, err := svc.RequestPasswordReset(ctx, "s@example.com")
	require.NoError(t, err)
	require.Equal(t, registered.ID, token.UserID)
	require.True(t, token.ExpiresAt.After(time.Now()))

	require.NoError(t, svc.ConfirmPasswordReset(ctx, token.Token, "second-pass"))

	_, _, _, err = svc.Login(ctx, "s@example.com", "second-pass")
	require.NoError(t, err)

	// A consumed token cannot be replayed.
	err = svc.ConfirmPasswordReset(ctx, token.Token, "third-pass")
	require.Error(t, err)
}
