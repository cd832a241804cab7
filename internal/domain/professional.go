package domain

import "time"

// ProfessionalStatus enumerates provider lifecycle states.
type ProfessionalStatus string

const (
	ProfessionalStatusActive    ProfessionalStatus = "active"
	ProfessionalStatusInactive  ProfessionalStatus = "inactive"
	ProfessionalStatusSuspended ProfessionalStatus = "suspended"
	ProfessionalStatusPending   ProfessionalStatus = "pending"
)

// ProfessionalPlan enumerates subscription tiers.
type ProfessionalPlan string

const (
	PlanFree    ProfessionalPlan = "free"
	PlanPremium ProfessionalPlan = "premium"
)

// VerificationStatus tracks the document review outcome, independent from
// the owning user's own email/phone verification.
type VerificationStatus string

const (
	VerificationPending  VerificationStatus = "pending"
	VerificationVerified VerificationStatus = "verified"
	VerificationRejected VerificationStatus = "rejected"
)

// PayoutMethod enumerates how earnings are paid out.
type PayoutMethod string

const (
	PayoutPix          PayoutMethod = "pix"
	PayoutBankTransfer PayoutMethod = "bank_transfer"
	PayoutCard         PayoutMethod = "card"
)

// WorkingDay describes availability for one weekday.
type WorkingDay struct {
	Start     string `json:"start"`
	End       string `json:"end"`
	Available bool   `json:"available"`
}

// WorkingHours is the per-weekday availability table.
type WorkingHours struct {
	Monday    WorkingDay `json:"monday"`
	Tuesday   WorkingDay `json:"tuesday"`
	Wednesday WorkingDay `json:"wednesday"`
	Thursday  WorkingDay `json:"thursday"`
	Friday    WorkingDay `json:"friday"`
	Saturday  WorkingDay `json:"saturday"`
	Sunday    WorkingDay `json:"sunday"`
}

// Documents holds optional tax ids and certifications.
type Documents struct {
	CPF            *string  `json:"cpf,omitempty"`
	CNPJ           *string  `json:"cnpj,omitempty"`
	RG             *string  `json:"rg,omitempty"`
	Certifications []string `json:"certifications,omitempty"`
}

// PortfolioItem is one work sample. ID and CreatedAt are generated at
// insertion time and never reused.
type PortfolioItem struct {
	ID          string    `json:"id"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	Images      []string  `json:"images"`
	Category    string    `json:"category"`
	CreatedAt   time.Time `json:"created_at"`
}

// PortfolioItemInput carries caller-supplied fields for a new work sample.
type PortfolioItemInput struct {
	Title       string
	Description string
	Images      []string
	Category    string
}

// ProfessionalMetrics is an aggregated snapshot owned by an external
// aggregation job. The entity stores the latest merge and does not
// guarantee cross-field consistency.
type ProfessionalMetrics struct {
	TotalJobs     int     `json:"total_jobs"`
	CompletedJobs int     `json:"completed_jobs"`
	CancelledJobs int     `json:"cancelled_jobs"`
	AverageRating float64 `json:"average_rating"`
	TotalReviews  int     `json:"total_reviews"`
	ResponseTime  float64 `json:"response_time"`
	ProfileViews  int     `json:"profile_views"`
}

// MetricsPatch is a partial metrics merge; nil fields keep prior values.
type MetricsPatch struct {
	TotalJobs     *int
	CompletedJobs *int
	CancelledJobs *int
	AverageRating *float64
	TotalReviews  *int
	ResponseTime  *float64
	ProfileViews  *int
}

// BankAccount holds payout bank details.
type BankAccount struct {
	Bank        string `json:"bank"`
	Agency      string `json:"agency"`
	Account     string `json:"account"`
	AccountType string `json:"account_type"`
}

// Financial is the provider's earnings snapshot.
type Financial struct {
	TotalEarnings   float64      `json:"total_earnings"`
	PendingPayments float64      `json:"pending_payments"`
	LastPaymentDate *time.Time   `json:"last_payment_date,omitempty"`
	PayoutMethod    PayoutMethod `json:"payout_method"`
	PixKey          *string      `json:"pix_key,omitempty"`
	BankAccount     *BankAccount `json:"bank_account,omitempty"`
}

// Professional is one service provider's extended profile, owned 1:1 by a
// User via UserID. Referential integrity is a storage concern.
type Professional struct {
	ID     string `json:"id"`
	UserID string `json:"user_id"`

	BusinessName string   `json:"business_name"`
	Description  string   `json:"description"`
	Specialties  []string `json:"specialties"`
	Experience   int      `json:"experience"`

	Documents          Documents          `json:"documents"`
	Plan               ProfessionalPlan   `json:"plan"`
	Status             ProfessionalStatus `json:"status"`
	VerificationStatus VerificationStatus `json:"verification_status"`

	WorkingHours     WorkingHours `json:"working_hours"`
	ServiceRadius    float64      `json:"service_radius"`
	EmergencyService bool         `json:"emergency_service"`

	Portfolio []PortfolioItem     `json:"portfolio"`
	Metrics   ProfessionalMetrics `json:"metrics"`
	Financial Financial           `json:"financial"`

	CreatedAt    time.Time  `json:"created_at"`
	UpdatedAt    time.Time  `json:"updated_at"`
	LastActiveAt *time.Time `json:"last_active_at,omitempty"`
	DeletedAt    *time.Time `json:"deleted_at,omitempty"`
}

// ProfessionalPatch is a partial profile update; nil fields are left untouched.
type ProfessionalPatch struct {
	BusinessName     *string
	Description      *string
	Specialties      *[]string
	Experience       *int
	ServiceRadius    *float64
	EmergencyService *bool
	WorkingHours     *WorkingHours
	Documents        *Documents
}

// ProfessionalSummary is the transport projection. Financial and document
// fields are deliberately excluded.
type ProfessionalSummary struct {
	ID                 string             `json:"id"`
	UserID             string             `json:"user_id"`
	BusinessName       string             `json:"business_name"`
	Description        string             `json:"description"`
	Specialties        []string           `json:"specialties"`
	Plan               ProfessionalPlan   `json:"plan"`
	Status             ProfessionalStatus `json:"status"`
	VerificationStatus VerificationStatus `json:"verification_status"`
	AverageRating      float64            `json:"average_rating"`
	TotalReviews       int                `json:"total_reviews"`
	ServiceRadius      float64            `json:"service_radius"`
	EmergencyService   bool               `json:"emergency_service"`
	CreatedAt          time.Time          `json:"created_at"`
}
