package domain

import "time"

// ContractStatus enumerates agreement lifecycle states.
type ContractStatus string

const (
	ContractStatusPending    ContractStatus = "pending"
	ContractStatusAccepted   ContractStatus = "accepted"
	ContractStatusInProgress ContractStatus = "in_progress"
	ContractStatusCompleted  ContractStatus = "completed"
	ContractStatusCancelled  ContractStatus = "cancelled"
	ContractStatusDisputed   ContractStatus = "disputed"
)

// PaymentMethod enumerates how a client pays for a contract.
type PaymentMethod string

const (
	PaymentCreditCard   PaymentMethod = "credit_card"
	PaymentDebitCard    PaymentMethod = "debit_card"
	PaymentPix          PaymentMethod = "pix"
	PaymentBankTransfer PaymentMethod = "bank_transfer"
	PaymentCash         PaymentMethod = "cash"
)

// Contract binds a client and a professional over one service. Payment and
// escrow orchestration live outside this service; this is the agreement
// record only.
type Contract struct {
	ID             string `json:"id"`
	ServiceID      string `json:"service_id"`
	ClientID       string `json:"client_id"`
	ProfessionalID string `json:"professional_id"`

	Status        ContractStatus `json:"status"`
	Scope         string         `json:"scope"`
	Amount        float64        `json:"amount"`
	Currency      string         `json:"currency"`
	PaymentMethod PaymentMethod  `json:"payment_method"`

	StartDate *time.Time `json:"start_date,omitempty"`
	EndDate   *time.Time `json:"end_date,omitempty"`

	CreatedAt   time.Time  `json:"created_at"`
	UpdatedAt   time.Time  `json:"updated_at"`
	StartedAt   *time.Time `json:"started_at,omitempty"`
	CompletedAt *time.Time `json:"completed_at,omitempty"`
	CancelledAt *time.Time `json:"cancelled_at,omitempty"`
}
