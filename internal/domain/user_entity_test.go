package domain

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func strPtr(s string) *string { return &s }

func newTestUser() *User {
	return &User{
		ID:           "u-1",
		Email:        "joao@example.com",
		PasswordHash: "$2a$12$secret-hash",
		Name:         "João Silva",
		Phone:        "+55 64 99999-0001",
		Role:         RoleClient,
		Status:       UserStatusPending,
		CreatedAt:    time.Now().Add(-time.Hour),
		UpdatedAt:    time.Now().Add(-time.Hour),
	}
}

func TestUserEntity_UpdateProfilePartial(t *testing.T) {
	user := newTestUser()
	entity := NewUserEntity(user)
	before := user.UpdatedAt

	entity.UpdateProfile(UserProfilePatch{
		Name: strPtr("João S. Oliveira"),
	})

	require.Equal(t, "João S. Oliveira", user.Name)
	require.Equal(t, "+55 64 99999-0001", user.Phone, "absent field must stay untouched")
	require.Nil(t, user.Avatar)
	require.True(t, user.UpdatedAt.After(before))
}

func TestUserEntity_UpdateProfileAllFields(t *testing.T) {
	user := newTestUser()
	entity := NewUserEntity(user)

	addr := &Address{
		Street:       "Rua Principal",
		Number:       "100",
		Neighborhood: "Centro",
		City:         "Catalão",
		State:        "GO",
		ZipCode:      "75701-000",
	}
	prefs := &Preferences{Language: "pt-BR", Currency: "BRL"}

	entity.UpdateProfile(UserProfilePatch{
		Name:        strPtr("Maria"),
		Phone:       strPtr("+55 64 98888-0002"),
		Avatar:      strPtr("https://cdn.example.com/a.png"),
		Address:     addr,
		Preferences: prefs,
	})

	require.Equal(t, "Maria", user.Name)
	require.Equal(t, "+55 64 98888-0002", user.Phone)
	require.Equal(t, "https://cdn.example.com/a.png", *user.Avatar)
	require.Equal(t, addr, user.Address)
	require.Equal(t, prefs, user.Preferences)
}

func TestUserEntity_Verification(t *testing.T) {
	entity := NewUserEntity(newTestUser())

	require.False(t, entity.IsVerified())

	entity.VerifyEmail()
	require.False(t, entity.IsVerified(), "email alone is not enough")

	entity.VerifyPhone()
	require.True(t, entity.IsVerified())

	// idempotent
	entity.VerifyEmail()
	entity.VerifyPhone()
	require.True(t, entity.Record().EmailVerified)
	require.True(t, entity.Record().PhoneVerified)
}

func TestUserEntity_StatusTransitionsUnguarded(t *testing.T) {
	entity := NewUserEntity(newTestUser())

	entity.Activate()
	require.True(t, entity.IsActive())

	entity.Ban()
	require.Equal(t, UserStatusBanned, entity.Status())

	// banning twice succeeds silently
	entity.Ban()
	require.Equal(t, UserStatusBanned, entity.Status())

	entity.Activate()
	require.True(t, entity.IsActive(), "any state may transition to any other")

	entity.Deactivate()
	require.Equal(t, UserStatusInactive, entity.Status())
}

func TestUserEntity_UpdateLastLogin(t *testing.T) {
	user := newTestUser()
	entity := NewUserEntity(user)
	before := user.UpdatedAt

	entity.UpdateLastLogin()

	require.NotNil(t, user.LastLoginAt)
	require.True(t, user.UpdatedAt.After(before))
}

func TestUserEntity_FullAddress(t *testing.T) {
	user := newTestUser()
	entity := NewUserEntity(user)

	require.Equal(t, "", entity.FullAddress())

	user.Address = &Address{
		Street:       "Rua Principal",
		Number:       "100",
		Neighborhood: "Centro",
		City:         "Catalão",
		State:        "GO",
	}
	require.Equal(t, "Rua Principal, 100, Centro, Catalão - GO", entity.FullAddress())

	user.Address.Complement = "Apto 12"
	require.Equal(t, "Rua Principal, 100, Apto 12, Centro, Catalão - GO", entity.FullAddress())
}

func TestUserEntity_ToSummaryAvatarOmitted(t *testing.T) {
	user := newTestUser()
	entity := NewUserEntity(user)

	raw, err := json.Marshal(entity.ToSummary())
	require.NoError(t, err)

	var decoded map[string]any
	require.NoError(t, json.Unmarshal(raw, &decoded))
	_, present := decoded["avatar"]
	require.False(t, present, "avatar key must be absent when not set")

	user.Avatar = strPtr("https://cdn.example.com/a.png")
	raw, err = json.Marshal(entity.ToSummary())
	require.NoError(t, err)
	require.NoError(t, json.Unmarshal(raw, &decoded))
	require.Equal(t, "https://cdn.example.com/a.png", decoded["avatar"])
}

func TestUserEntity_ToJSONNeverLeaksPassword(t *testing.T) {
	user := newTestUser()
	entity := NewUserEntity(user)

	out := entity.ToJSON()
	require.Empty(t, out.PasswordHash)
	require.Equal(t, "$2a$12$secret-hash", user.PasswordHash, "record itself keeps the hash")

	raw, err := json.Marshal(out)
	require.NoError(t, err)
	require.NotContains(t, string(raw), "password")
	require.NotContains(t, string(raw), "secret-hash")
}

func TestUserEntity_UpdatedAtMonotonic(t *testing.T) {
	user := newTestUser()
	entity := NewUserEntity(user)

	prev := user.UpdatedAt
	for _, mutate := range []func(){
		func() { entity.UpdateProfile(UserProfilePatch{Name: strPtr("x")}) },
		entity.VerifyEmail,
		entity.Activate,
		entity.UpdateLastLogin,
	} {
		mutate()
		require.False(t, user.UpdatedAt.Before(prev))
		prev = user.UpdatedAt
	}
}
