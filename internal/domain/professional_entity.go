package domain

import (
	"time"

	"github.com/google/uuid"
)

// ProfessionalEntity owns one Professional record and exposes controlled
// mutation and derived metrics. Same ownership contract as UserEntity: no
// I/O, no locking, caller persists the record.
type ProfessionalEntity struct {
	professional *Professional
}

// NewProfessionalEntity wraps an existing record.
func NewProfessionalEntity(p *Professional) *ProfessionalEntity {
	return &ProfessionalEntity{professional: p}
}

// Record returns the underlying record for persistence.
func (e *ProfessionalEntity) Record() *Professional {
	return e.professional
}

func (e *ProfessionalEntity) ID() string                 { return e.professional.ID }
func (e *ProfessionalEntity) UserID() string             { return e.professional.UserID }
func (e *ProfessionalEntity) BusinessName() string       { return e.professional.BusinessName }
func (e *ProfessionalEntity) Status() ProfessionalStatus { return e.professional.Status }
func (e *ProfessionalEntity) Plan() ProfessionalPlan     { return e.professional.Plan }

// IsActive reports whether the provider status is active.
func (e *ProfessionalEntity) IsActive() bool {
	return e.professional.Status == ProfessionalStatusActive
}

// IsVerified reports whether document review concluded with approval.
func (e *ProfessionalEntity) IsVerified() bool {
	return e.professional.VerificationStatus == VerificationVerified
}

// IsPremium reports whether the provider holds the premium plan.
func (e *ProfessionalEntity) IsPremium() bool {
	return e.professional.Plan == PlanPremium
}

// AverageRating passes through the metrics snapshot.
func (e *ProfessionalEntity) AverageRating() float64 {
	return e.professional.Metrics.AverageRating
}

// CompletionRate is completedJobs/totalJobs*100, or 0 when no jobs exist.
func (e *ProfessionalEntity) CompletionRate() float64 {
	total := e.professional.Metrics.TotalJobs
	if total <= 0 {
		return 0
	}
	return float64(e.professional.Metrics.CompletedJobs) / float64(total) * 100
}

// UpdateProfile applies a partial patch. Fields absent from the patch keep
// their previous values.
func (e *ProfessionalEntity) UpdateProfile(patch ProfessionalPatch) {
	p := e.professional
	if patch.BusinessName != nil {
		p.BusinessName = *patch.BusinessName
	}
	if patch.Description != nil {
		p.Description = *patch.Description
	}
	if patch.Specialties != nil {
		p.Specialties = *patch.Specialties
	}
	if patch.Experience != nil {
		p.Experience = *patch.Experience
	}
	if patch.ServiceRadius != nil {
		p.ServiceRadius = *patch.ServiceRadius
	}
	if patch.EmergencyService != nil {
		p.EmergencyService = *patch.EmergencyService
	}
	if patch.WorkingHours != nil {
		p.WorkingHours = *patch.WorkingHours
	}
	if patch.Documents != nil {
		p.Documents = *patch.Documents
	}
	e.touch()
}

// Activate sets the status to active. Transitions are not guarded; even a
// suspended provider can be reactivated directly.
func (e *ProfessionalEntity) Activate() {
	e.professional.Status = ProfessionalStatusActive
	e.touch()
}

// Deactivate sets the status to inactive.
func (e *ProfessionalEntity) Deactivate() {
	e.professional.Status = ProfessionalStatusInactive
	e.touch()
}

// Suspend sets the status to suspended.
func (e *ProfessionalEntity) Suspend() {
	e.professional.Status = ProfessionalStatusSuspended
	e.touch()
}

// Verify marks document review as approved. Status and plan are untouched.
func (e *ProfessionalEntity) Verify() {
	e.professional.VerificationStatus = VerificationVerified
	e.touch()
}

// UpgradeToPremium assigns the premium plan unconditionally.
func (e *ProfessionalEntity) UpgradeToPremium() {
	e.professional.Plan = PlanPremium
	e.touch()
}

// DowngradeToFree assigns the free plan unconditionally.
func (e *ProfessionalEntity) DowngradeToFree() {
	e.professional.Plan = PlanFree
	e.touch()
}

// AddPortfolioItem appends a work sample, generating its id and creation
// timestamp. Insertion order is preserved. Image URLs are not validated.
func (e *ProfessionalEntity) AddPortfolioItem(input PortfolioItemInput) PortfolioItem {
	item := PortfolioItem{
		ID:          uuid.NewString(),
		Title:       input.Title,
		Description: input.Description,
		Images:      input.Images,
		Category:    input.Category,
		CreatedAt:   time.Now(),
	}
	e.professional.Portfolio = append(e.professional.Portfolio, item)
	e.touch()
	return item
}

// UpdateMetrics shallow-merges the patch into the metrics snapshot. Fields
// absent from the patch keep prior values. No recomputation or cross-field
// checks happen here; the caller supplies aggregated values.
func (e *ProfessionalEntity) UpdateMetrics(patch MetricsPatch) {
	m := &e.professional.Metrics
	if patch.TotalJobs != nil {
		m.TotalJobs = *patch.TotalJobs
	}
	if patch.CompletedJobs != nil {
		m.CompletedJobs = *patch.CompletedJobs
	}
	if patch.CancelledJobs != nil {
		m.CancelledJobs = *patch.CancelledJobs
	}
	if patch.AverageRating != nil {
		m.AverageRating = *patch.AverageRating
	}
	if patch.TotalReviews != nil {
		m.TotalReviews = *patch.TotalReviews
	}
	if patch.ResponseTime != nil {
		m.ResponseTime = *patch.ResponseTime
	}
	if patch.ProfileViews != nil {
		m.ProfileViews = *patch.ProfileViews
	}
	e.touch()
}

// UpdateLastActive stamps the last activity time.
func (e *ProfessionalEntity) UpdateLastActive() {
	now := time.Now()
	e.professional.LastActiveAt = &now
	e.professional.UpdatedAt = now
}

// ToSummary builds the transport projection.
func (e *ProfessionalEntity) ToSummary() ProfessionalSummary {
	p := e.professional
	return ProfessionalSummary{
		ID:                 p.ID,
		UserID:             p.UserID,
		BusinessName:       p.BusinessName,
		Description:        p.Description,
		Specialties:        p.Specialties,
		Plan:               p.Plan,
		Status:             p.Status,
		VerificationStatus: p.VerificationStatus,
		AverageRating:      p.Metrics.AverageRating,
		TotalReviews:       p.Metrics.TotalReviews,
		ServiceRadius:      p.ServiceRadius,
		EmergencyService:   p.EmergencyService,
		CreatedAt:          p.CreatedAt,
	}
}

func (e *ProfessionalEntity) touch() {
	e.professional.UpdatedAt = time.Now()
}
