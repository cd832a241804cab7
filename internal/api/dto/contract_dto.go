package dto

import (
	"time"

	"github.com/rafaelmelo2/maonamassa/internal/domain"
	"github.com/rafaelmelo2/maonamassa/internal/service"
)

// CreateContractRequest payload.
type CreateContractRequest struct {
	ServiceID     string               `json:"service_id" validate:"required,uuid4"`
	Scope         string               `json:"scope" validate:"required,min=10,max=5000"`
	Amount        float64              `json:"amount" validate:"gt=0"`
	Currency      string               `json:"currency" validate:"omitempty,len=3"`
	PaymentMethod domain.PaymentMethod `json:"payment_method" validate:"required,oneof=credit_card debit_card pix bank_transfer cash"`
	StartDate     *time.Time           `json:"start_date"`
	EndDate       *time.Time           `json:"end_date"`
}

// ToInput converts the request to the service input.
func (r CreateContractRequest) ToInput() service.CreateContractInput {
	return service.CreateContractInput{
		ServiceID:     r.ServiceID,
		Scope:         r.Scope,
		Amount:        r.Amount,
		Currency:      r.Currency,
		PaymentMethod: r.PaymentMethod,
		StartDate:     r.StartDate,
		EndDate:       r.EndDate,
	}
}

// UpdateContractStatusRequest payload.
type UpdateContractStatusRequest struct {
	Status domain.ContractStatus `json:"status" validate:"required,oneof=pending accepted in_progress completed cancelled disputed"`
}
