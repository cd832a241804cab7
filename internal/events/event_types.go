package events

import (
	"time"

	"github.com/rafaelmelo2/maonamassa/internal/domain"
)

// EventType enumerates supported event identifiers.
type EventType string

const (
	EventUserRegistered            EventType = "user_registered"
	EventUserStatusChanged         EventType = "user_status_changed"
	EventUserVerified              EventType = "user_verified"
	EventProfessionalCreated       EventType = "professional_created"
	EventProfessionalStatusChanged EventType = "professional_status_changed"
	EventProfessionalVerified      EventType = "professional_verified"
	EventPlanChanged               EventType = "plan_changed"
	EventPortfolioItemAdded        EventType = "portfolio_item_added"
	EventContractStatusChanged     EventType = "contract_status_changed"
)

// Event represents a domain event emitted by services.
type Event struct {
	ID        string      `json:"id"`
	Type      EventType   `json:"type"`
	EntityID  string      `json:"entity_id"`
	ActorID   string      `json:"actor_id,omitempty"`
	Timestamp time.Time   `json:"timestamp"`
	Payload   interface{} `json:"payload"`
}

// UserRegisteredPayload payload.
type UserRegisteredPayload struct {
	Email string          `json:"email"`
	Role  domain.UserRole `json:"role"`
}

// UserStatusChangedPayload payload.
type UserStatusChangedPayload struct {
	OldStatus domain.UserStatus `json:"old_status"`
	NewStatus domain.UserStatus `json:"new_status"`
}

// UserVerifiedPayload payload.
type UserVerifiedPayload struct {
	Channel string `json:"channel"`
}

// ProfessionalStatusChangedPayload payload.
type ProfessionalStatusChangedPayload struct {
	OldStatus domain.ProfessionalStatus `json:"old_status"`
	NewStatus domain.ProfessionalStatus `json:"new_status"`
}

// ProfessionalVerifiedPayload payload.
type ProfessionalVerifiedPayload struct {
	UserID string `json:"user_id"`
}

// PlanChangedPayload payload.
type PlanChangedPayload struct {
	OldPlan domain.ProfessionalPlan `json:"old_plan"`
	NewPlan domain.ProfessionalPlan `json:"new_plan"`
}

// PortfolioItemAddedPayload payload.
type PortfolioItemAddedPayload struct {
	ItemID   string `json:"item_id"`
	Title    string `json:"title"`
	Category string `json:"category"`
}

// ContractStatusChangedPayload payload.
type ContractStatusChangedPayload struct {
	OldStatus domain.ContractStatus `json:"old_status"`
	NewStatus domain.ContractStatus `json:"new_status"`
}
