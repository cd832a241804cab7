package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/rafaelmelo2/maonamassa/internal/domain"
)

func newCatalogFixture(t *testing.T) (*CatalogService, *fakeServiceRepo, *domain.Professional) {
	t.Helper()
	listings := newFakeServiceRepo()
	professionals := newFakeProfessionalRepo()
	professional := &domain.Professional{UserID: "owner-user", BusinessName: "Obras"}
	require.NoError(t, professionals.Create(context.Background(), professional))
	return NewCatalogService(listings, professionals), listings, professional
}

func TestCreateListingStartsDraft(t *testing.T) {
	svc, _, professional := newCatalogFixture(t)

	listing, err := svc.Create(context.Background(), "owner-user", CreateServiceInput{
		Title:    "Reforma de banheiro",
		Category: "construction",
		Pricing:  domain.ServicePricing{Type: domain.PricingQuote},
	})
	require.NoError(t, err)
	require.Equal(t, domain.ServiceStatusDraft, listing.Status)
	require.Equal(t, professional.ID, listing.ProfessionalID)
}

func TestUpdateListingRejectsNonOwner(t *testing.T) {
	svc, _, _ := newCatalogFixture(t)
	listing, err := svc.Create(context.Background(), "owner-user", CreateServiceInput{Title: "T"})
	require.NoError(t, err)

	title := "Hijacked"
	_, err = svc.Update(context.Background(), "someone-else", listing.ID, ServicePatch{Title: &title})
	require.Error(t, err)
}

func TestUpdateListingAppliesPatch(t *testing.T) {
	svc, listings, _ := newCatalogFixture(t)
	listing, err := svc.Create(context.Background(), "owner-user", CreateServiceInput{Title: "Old", Category: "cleaning"})
	require.NoError(t, err)

	title := "New"
	emergency := true
	updated, err := svc.Update(context.Background(), "owner-user", listing.ID, ServicePatch{
		Title:     &title,
		Emergency: &emergency,
	})
	require.NoError(t, err)
	require.Equal(t, "New", updated.Title)
	require.True(t, updated.Emergency)
	require.Equal(t, "cleaning", updated.Category)

	stored, err := listings.GetByID(context.Background(), listing.ID)
	require.NoError(t, err)
	require.Equal(t, "New", stored.Title)
}

func TestSetStatusAndDelete(t *testing.T) {
	svc, _, _ := newCatalogFixture(t)
	ctx := context.Background()
	listing, err := svc.Create(ctx, "owner-user", CreateServiceInput{Title: "S"})
	require.NoError(t, err)

	activated, err := svc.SetStatus(ctx, "owner-user", listing.ID, domain.ServiceStatusActive)
	require.NoError(t, err)
	require.Equal(t, domain.ServiceStatusActive, activated.Status)

	require.NoError(t, svc.Delete(ctx, "owner-user", listing.ID))
	_, err = svc.Get(ctx, listing.ID)
	require.Error(t, err)
}
