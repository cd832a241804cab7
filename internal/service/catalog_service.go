package service

import (
	"context"
	"time"

	"github.com/rafaelmelo2/maonamassa/internal/domain"
	"github.com/rafaelmelo2/maonamassa/internal/repository"
	apperrors "github.com/rafaelmelo2/maonamassa/pkg/util"
)

// CatalogService manages the service listings offered by professionals.
type CatalogService struct {
	services      repository.ServiceRepository
	professionals repository.ProfessionalRepository
}

// CreateServiceInput describes a new listing.
type CreateServiceInput struct {
	Title       string
	Description string
	Category    string
	Subcategory *string
	Tags        []string
	Images      []string
	Pricing     domain.ServicePricing
	Location    domain.ServiceLocation
	Emergency   bool
}

// ServicePatch is a partial listing update; nil fields are left untouched.
type ServicePatch struct {
	Title       *string
	Description *string
	Category    *string
	Subcategory *string
	Tags        *[]string
	Images      *[]string
	Pricing     *domain.ServicePricing
	Location    *domain.ServiceLocation
	Emergency   *bool
}

// NewCatalogService constructs the service.
func NewCatalogService(services repository.ServiceRepository, professionals repository.ProfessionalRepository) *CatalogService {
	return &CatalogService{services: services, professionals: professionals}
}

// Create opens a draft listing owned by the caller's professional profile.
func (s *CatalogService) Create(ctx context.Context, userID string, input CreateServiceInput) (*domain.Service, error) {
	professional, err := s.professionals.GetByUserID(ctx, userID)
	if err != nil {
		return nil, err
	}
	listing := &domain.Service{
		ProfessionalID: professional.ID,
		Title:          input.Title,
		Description:    input.Description,
		Category:       input.Category,
		Subcategory:    input.Subcategory,
		Tags:           input.Tags,
		Images:         input.Images,
		Pricing:        input.Pricing,
		Location:       input.Location,
		Status:         domain.ServiceStatusDraft,
		Emergency:      input.Emergency,
	}
	if err := s.services.Create(ctx, listing); err != nil {
		return nil, err
	}
	return listing, nil
}

// Get returns one listing.
func (s *CatalogService) Get(ctx context.Context, id string) (*domain.Service, error) {
	return s.services.GetByID(ctx, id)
}

// List returns listings matching the filter.
func (s *CatalogService) List(ctx context.Context, filter repository.ServiceFilter) ([]domain.Service, error) {
	return s.services.ListWithFilter(ctx, filter)
}

// Update applies a partial patch to a listing owned by the caller.
func (s *CatalogService) Update(ctx context.Context, userID, id string, patch ServicePatch) (*domain.Service, error) {
	listing, err := s.ownedListing(ctx, userID, id)
	if err != nil {
		return nil, err
	}
	if patch.Title != nil {
		listing.Title = *patch.Title
	}
	if patch.Description != nil {
		listing.Description = *patch.Description
	}
	if patch.Category != nil {
		listing.Category = *patch.Category
	}
	if patch.Subcategory != nil {
		listing.Subcategory = patch.Subcategory
	}
	if patch.Tags != nil {
		listing.Tags = *patch.Tags
	}
	if patch.Images != nil {
		listing.Images = *patch.Images
	}
	if patch.Pricing != nil {
		listing.Pricing = *patch.Pricing
	}
	if patch.Location != nil {
		listing.Location = *patch.Location
	}
	if patch.Emergency != nil {
		listing.Emergency = *patch.Emergency
	}
	listing.UpdatedAt = time.Now()
	if err := s.services.Update(ctx, listing); err != nil {
		return nil, err
	}
	return listing, nil
}

// SetStatus moves a listing owned by the caller to the given status.
func (s *CatalogService) SetStatus(ctx context.Context, userID, id string, status domain.ServiceStatus) (*domain.Service, error) {
	listing, err := s.ownedListing(ctx, userID, id)
	if err != nil {
		return nil, err
	}
	listing.Status = status
	listing.UpdatedAt = time.Now()
	if err := s.services.Update(ctx, listing); err != nil {
		return nil, err
	}
	return listing, nil
}

// Delete soft-deletes a listing owned by the caller.
func (s *CatalogService) Delete(ctx context.Context, userID, id string) error {
	if _, err := s.ownedListing(ctx, userID, id); err != nil {
		return err
	}
	return s.services.SoftDelete(ctx, id)
}

func (s *CatalogService) ownedListing(ctx context.Context, userID, id string) (*domain.Service, error) {
	listing, err := s.services.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	professional, err := s.professionals.GetByUserID(ctx, userID)
	if err != nil {
		return nil, err
	}
	if listing.ProfessionalID != professional.ID {
		return nil, apperrors.NewForbidden("listing belongs to another professional")
	}
	return listing, nil
}
