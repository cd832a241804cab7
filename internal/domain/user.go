package domain

import "time"

// UserRole distinguishes account kinds on the marketplace.
type UserRole string

const (
	RoleClient       UserRole = "client"
	RoleProfessional UserRole = "professional"
	RoleAdmin        UserRole = "admin"
)

// UserStatus enumerates account lifecycle states.
type UserStatus string

const (
	UserStatusActive   UserStatus = "active"
	UserStatusInactive UserStatus = "inactive"
	UserStatusPending  UserStatus = "pending"
	UserStatusBanned   UserStatus = "banned"
)

// Coordinates holds a geographic point.
type Coordinates struct {
	Lat float64 `json:"lat"`
	Lng float64 `json:"lng"`
}

// Address is a street-level location with optional geocoordinates.
type Address struct {
	Street       string       `json:"street"`
	Number       string       `json:"number"`
	Complement   string       `json:"complement,omitempty"`
	Neighborhood string       `json:"neighborhood"`
	City         string       `json:"city"`
	State        string       `json:"state"`
	ZipCode      string       `json:"zip_code"`
	Coordinates  *Coordinates `json:"coordinates,omitempty"`
}

// NotificationPrefs toggles notification channels.
type NotificationPrefs struct {
	Email bool `json:"email"`
	Push  bool `json:"push"`
	SMS   bool `json:"sms"`
}

// PrivacyPrefs controls what profile data other users may see.
type PrivacyPrefs struct {
	ShowPhone   bool `json:"show_phone"`
	ShowEmail   bool `json:"show_email"`
	ShowAddress bool `json:"show_address"`
}

// Preferences groups per-account settings.
type Preferences struct {
	Notifications NotificationPrefs `json:"notifications"`
	Privacy       PrivacyPrefs      `json:"privacy"`
	Language      string            `json:"language"`
	Currency      string            `json:"currency"`
}

// User is the domain model for one account holder.
type User struct {
	ID            string     `json:"id"`
	Email         string     `json:"email"`
	PasswordHash  string     `json:"-"`
	Name          string     `json:"name"`
	Phone         string     `json:"phone"`
	BirthDate     *time.Time `json:"birth_date,omitempty"`
	Gender        *string    `json:"gender,omitempty"`
	Avatar        *string    `json:"avatar,omitempty"`
	Role          UserRole   `json:"role"`
	Status        UserStatus `json:"status"`
	EmailVerified bool       `json:"email_verified"`
	PhoneVerified bool       `json:"phone_verified"`

	Address     *Address     `json:"address,omitempty"`
	Preferences *Preferences `json:"preferences,omitempty"`

	// Opaque extension points, stored and returned as-is.
	NotificationSettings map[string]any `json:"notification_settings,omitempty"`
	Metadata             map[string]any `json:"metadata,omitempty"`

	CreatedAt   time.Time  `json:"created_at"`
	UpdatedAt   time.Time  `json:"updated_at"`
	LastLoginAt *time.Time `json:"last_login_at,omitempty"`
	DeletedAt   *time.Time `json:"deleted_at,omitempty"`
}

// UserProfilePatch is a partial profile update; nil fields are left untouched.
type UserProfilePatch struct {
	Name        *string
	Phone       *string
	Avatar      *string
	Address     *Address
	Preferences *Preferences
}

// UserSummary is the reduced projection exposed to other layers.
// Avatar is left out of serialization entirely when absent.
type UserSummary struct {
	ID        string     `json:"id"`
	Name      string     `json:"name"`
	Email     string     `json:"email"`
	Avatar    *string    `json:"avatar,omitempty"`
	Role      UserRole   `json:"role"`
	Status    UserStatus `json:"status"`
	CreatedAt time.Time  `json:"created_at"`
}
