package dto

import (
	"github.com/rafaelmelo2/maonamassa/internal/domain"
	"github.com/rafaelmelo2/maonamassa/internal/repository"
	"github.com/rafaelmelo2/maonamassa/internal/service"
)

// CreateProfessionalRequest payload.
type CreateProfessionalRequest struct {
	BusinessName     string              `json:"business_name" validate:"required,min=2,max=160"`
	Description      string              `json:"description" validate:"max=2000"`
	Specialties      []string            `json:"specialties" validate:"required,min=1,dive,min=2"`
	Experience       int                 `json:"experience" validate:"gte=0"`
	ServiceRadius    float64             `json:"service_radius" validate:"gte=0"`
	EmergencyService bool                `json:"emergency_service"`
	WorkingHours     domain.WorkingHours `json:"working_hours"`
	Documents        domain.Documents    `json:"documents"`
}

// ToInput converts the request to the service input.
func (r CreateProfessionalRequest) ToInput() service.CreateProfessionalInput {
	return service.CreateProfessionalInput{
		BusinessName:     r.BusinessName,
		Description:      r.Description,
		Specialties:      r.Specialties,
		Experience:       r.Experience,
		ServiceRadius:    r.ServiceRadius,
		EmergencyService: r.EmergencyService,
		WorkingHours:     r.WorkingHours,
		Documents:        r.Documents,
	}
}

// UpdateProfessionalRequest is a partial update; absent fields stay as-is.
type UpdateProfessionalRequest struct {
	BusinessName     *string              `json:"business_name" validate:"omitempty,min=2,max=160"`
	Description      *string              `json:"description" validate:"omitempty,max=2000"`
	Specialties      *[]string            `json:"specialties" validate:"omitempty,min=1,dive,min=2"`
	Experience       *int                 `json:"experience" validate:"omitempty,gte=0"`
	ServiceRadius    *float64             `json:"service_radius" validate:"omitempty,gte=0"`
	EmergencyService *bool                `json:"emergency_service"`
	WorkingHours     *domain.WorkingHours `json:"working_hours"`
	Documents        *domain.Documents    `json:"documents"`
}

// ToPatch converts the request to the domain patch.
func (r UpdateProfessionalRequest) ToPatch() domain.ProfessionalPatch {
	return domain.ProfessionalPatch{
		BusinessName:     r.BusinessName,
		Description:      r.Description,
		Specialties:      r.Specialties,
		Experience:       r.Experience,
		ServiceRadius:    r.ServiceRadius,
		EmergencyService: r.EmergencyService,
		WorkingHours:     r.WorkingHours,
		Documents:        r.Documents,
	}
}

// AddPortfolioItemRequest payload.
type AddPortfolioItemRequest struct {
	Title       string   `json:"title" validate:"required,min=2,max=160"`
	Description string   `json:"description" validate:"max=2000"`
	Images      []string `json:"images" validate:"dive,url"`
	Category    string   `json:"category" validate:"required,min=2"`
}

// ToInput converts the request to the domain input.
func (r AddPortfolioItemRequest) ToInput() domain.PortfolioItemInput {
	return domain.PortfolioItemInput{
		Title:       r.Title,
		Description: r.Description,
		Images:      r.Images,
		Category:    r.Category,
	}
}

// UpdateMetricsRequest is a partial metrics snapshot merge.
type UpdateMetricsRequest struct {
	TotalJobs     *int     `json:"total_jobs" validate:"omitempty,gte=0"`
	CompletedJobs *int     `json:"completed_jobs" validate:"omitempty,gte=0"`
	CancelledJobs *int     `json:"cancelled_jobs" validate:"omitempty,gte=0"`
	AverageRating *float64 `json:"average_rating" validate:"omitempty,gte=0,lte=5"`
	TotalReviews  *int     `json:"total_reviews" validate:"omitempty,gte=0"`
	ResponseTime  *float64 `json:"response_time" validate:"omitempty,gte=0"`
	ProfileViews  *int     `json:"profile_views" validate:"omitempty,gte=0"`
}

// ToPatch converts the request to the domain patch.
func (r UpdateMetricsRequest) ToPatch() domain.MetricsPatch {
	return domain.MetricsPatch{
		TotalJobs:     r.TotalJobs,
		CompletedJobs: r.CompletedJobs,
		CancelledJobs: r.CancelledJobs,
		AverageRating: r.AverageRating,
		TotalReviews:  r.TotalReviews,
		ResponseTime:  r.ResponseTime,
		ProfileViews:  r.ProfileViews,
	}
}

// ProfessionalListQuery captures query filters for list endpoints.
type ProfessionalListQuery struct {
	Status        *domain.ProfessionalStatus
	Plan          *domain.ProfessionalPlan
	Specialty     *string
	EmergencyOnly bool
	MinRating     *float64
	Search        *string
	Page          int
	PageSize      int
}

// ToFilter converts the query to the repository filter.
func (q ProfessionalListQuery) ToFilter() repository.ProfessionalFilter {
	page := q.Page
	if page < 1 {
		page = 1
	}
	size := q.PageSize
	if size < 1 || size > 100 {
		size = 20
	}
	return repository.ProfessionalFilter{
		Status:        q.Status,
		Plan:          q.Plan,
		Specialty:     q.Specialty,
		EmergencyOnly: q.EmergencyOnly,
		MinRating:     q.MinRating,
		SearchTerm:    q.Search,
		Limit:         size,
		Offset:        (page - 1) * size,
	}
}
