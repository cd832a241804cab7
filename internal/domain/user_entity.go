package domain

import (
	"fmt"
	"time"
)

// UserEntity owns one User record and exposes controlled mutation over it.
// Every mutating operation refreshes UpdatedAt. The wrapper performs no I/O
// and no locking; the caller holds exclusive access to the record and is
// responsible for persisting it afterwards.
type UserEntity struct {
	user *User
}

// NewUserEntity wraps an existing record.
func NewUserEntity(user *User) *UserEntity {
	return &UserEntity{user: user}
}

// Record returns the underlying record for persistence.
func (e *UserEntity) Record() *User {
	return e.user
}

func (e *UserEntity) ID() string         { return e.user.ID }
func (e *UserEntity) Email() string      { return e.user.Email }
func (e *UserEntity) Name() string       { return e.user.Name }
func (e *UserEntity) Role() UserRole     { return e.user.Role }
func (e *UserEntity) Status() UserStatus { return e.user.Status }

// IsActive reports whether the account status is active.
func (e *UserEntity) IsActive() bool {
	return e.user.Status == UserStatusActive
}

// IsVerified is true only when both email and phone are verified.
func (e *UserEntity) IsVerified() bool {
	return e.user.EmailVerified && e.user.PhoneVerified
}

// FullAddress renders the address as a single line, or "" when none is set.
func (e *UserEntity) FullAddress() string {
	addr := e.user.Address
	if addr == nil {
		return ""
	}
	complement := ""
	if addr.Complement != "" {
		complement = ", " + addr.Complement
	}
	return fmt.Sprintf("%s, %s%s, %s, %s - %s",
		addr.Street, addr.Number, complement, addr.Neighborhood, addr.City, addr.State)
}

// UpdateProfile applies a partial patch. Fields absent from the patch keep
// their previous values; no content validation happens here.
func (e *UserEntity) UpdateProfile(patch UserProfilePatch) {
	if patch.Name != nil {
		e.user.Name = *patch.Name
	}
	if patch.Phone != nil {
		e.user.Phone = *patch.Phone
	}
	if patch.Avatar != nil {
		e.user.Avatar = patch.Avatar
	}
	if patch.Address != nil {
		e.user.Address = patch.Address
	}
	if patch.Preferences != nil {
		e.user.Preferences = patch.Preferences
	}
	e.touch()
}

// VerifyEmail marks the email as verified. Idempotent.
func (e *UserEntity) VerifyEmail() {
	e.user.EmailVerified = true
	e.touch()
}

// VerifyPhone marks the phone as verified. Idempotent.
func (e *UserEntity) VerifyPhone() {
	e.user.PhoneVerified = true
	e.touch()
}

// Activate sets the status to active. Transitions are not guarded.
func (e *UserEntity) Activate() {
	e.user.Status = UserStatusActive
	e.touch()
}

// Deactivate sets the status to inactive.
func (e *UserEntity) Deactivate() {
	e.user.Status = UserStatusInactive
	e.touch()
}

// Ban sets the status to banned.
func (e *UserEntity) Ban() {
	e.user.Status = UserStatusBanned
	e.touch()
}

// UpdateLastLogin stamps the last login time.
func (e *UserEntity) UpdateLastLogin() {
	now := time.Now()
	e.user.LastLoginAt = &now
	e.user.UpdatedAt = now
}

// ToSummary builds the reduced projection for transport.
func (e *UserEntity) ToSummary() UserSummary {
	return UserSummary{
		ID:        e.user.ID,
		Name:      e.user.Name,
		Email:     e.user.Email,
		Avatar:    e.user.Avatar,
		Role:      e.user.Role,
		Status:    e.user.Status,
		CreatedAt: e.user.CreatedAt,
	}
}

// ToJSON returns a copy of the record safe for serialization. The password
// hash is cleared and additionally excluded by its struct tag, so it cannot
// leak through any marshaling path.
func (e *UserEntity) ToJSON() User {
	out := *e.user
	out.PasswordHash = ""
	return out
}

func (e *UserEntity) touch() {
	e.user.UpdatedAt = time.Now()
}
