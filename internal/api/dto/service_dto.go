package dto

import (
	"github.com/rafaelmelo2/maonamassa/internal/domain"
	"github.com/rafaelmelo2/maonamassa/internal/repository"
	"github.com/rafaelmelo2/maonamassa/internal/service"
)

// CreateServiceRequest payload.
type CreateServiceRequest struct {
	Title       string                 `json:"title" validate:"required,min=2,max=160"`
	Description string                 `json:"description" validate:"max=5000"`
	Category    string                 `json:"category" validate:"required,min=2"`
	Subcategory *string                `json:"subcategory" validate:"omitempty,min=2"`
	Tags        []string               `json:"tags" validate:"dive,min=1"`
	Images      []string               `json:"images" validate:"dive,url"`
	Pricing     domain.ServicePricing  `json:"pricing"`
	Location    domain.ServiceLocation `json:"location"`
	Emergency   bool                   `json:"emergency"`
}

// ToInput converts the request to the service input.
func (r CreateServiceRequest) ToInput() service.CreateServiceInput {
	return service.CreateServiceInput{
		Title:       r.Title,
		Description: r.Description,
		Category:    r.Category,
		Subcategory: r.Subcategory,
		Tags:        r.Tags,
		Images:      r.Images,
		Pricing:     r.Pricing,
		Location:    r.Location,
		Emergency:   r.Emergency,
	}
}

// UpdateServiceRequest is a partial update; absent fields stay as-is.
type UpdateServiceRequest struct {
	Title       *string                 `json:"title" validate:"omitempty,min=2,max=160"`
	Description *string                 `json:"description" validate:"omitempty,max=5000"`
	Category    *string                 `json:"category" validate:"omitempty,min=2"`
	Subcategory *string                 `json:"subcategory" validate:"omitempty,min=2"`
	Tags        *[]string               `json:"tags"`
	Images      *[]string               `json:"images"`
	Pricing     *domain.ServicePricing  `json:"pricing"`
	Location    *domain.ServiceLocation `json:"location"`
	Emergency   *bool                   `json:"emergency"`
}

// ToPatch converts the request to the service patch.
func (r UpdateServiceRequest) ToPatch() service.ServicePatch {
	return service.ServicePatch{
		Title:       r.Title,
		Description: r.Description,
		Category:    r.Category,
		Subcategory: r.Subcategory,
		Tags:        r.Tags,
		Images:      r.Images,
		Pricing:     r.Pricing,
		Location:    r.Location,
		Emergency:   r.Emergency,
	}
}

// SetServiceStatusRequest payload.
type SetServiceStatusRequest struct {
	Status domain.ServiceStatus `json:"status" validate:"required,oneof=active inactive suspended draft"`
}

// ServiceListQuery captures query filters for catalog search.
type ServiceListQuery struct {
	ProfessionalID *string
	Category       *string
	Statuses       []domain.ServiceStatus
	EmergencyOnly  bool
	FeaturedOnly   bool
	MaxBasePrice   *float64
	Search         *string
	Page           int
	PageSize       int
}

// ToFilter converts the query to the repository filter.
func (q ServiceListQuery) ToFilter() repository.ServiceFilter {
	page := q.Page
	if page < 1 {
		page = 1
	}
	size := q.PageSize
	if size < 1 || size > 100 {
		size = 20
	}
	return repository.ServiceFilter{
		ProfessionalID: q.ProfessionalID,
		Category:       q.Category,
		Statuses:       q.Statuses,
		EmergencyOnly:  q.EmergencyOnly,
		FeaturedOnly:   q.FeaturedOnly,
		MaxBasePrice:   q.MaxBasePrice,
		SearchTerm:     q.Search,
		Limit:          size,
		Offset:         (page - 1) * size,
	}
}
