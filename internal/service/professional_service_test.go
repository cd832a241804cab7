package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/rafaelmelo2/maonamassa/internal/domain"
	"github.com/rafaelmelo2/maonamassa/internal/events"
)

func newTestProfessionalService() (*ProfessionalService, *fakeUserRepo, *fakeProfessionalRepo, *recordingDispatcher) {
	users := newFakeUserRepo()
	professionals := newFakeProfessionalRepo()
	dispatcher := &recordingDispatcher{}
	svc := NewProfessionalService(ProfessionalDependencies{
		ProfessionalRepo: professionals,
		UserRepo:         users,
		Dispatcher:       dispatcher,
	})
	return svc, users, professionals, dispatcher
}

func seedProfessionalUser(t *testing.T, users *fakeUserRepo, role domain.UserRole) *domain.User {
	t.Helper()
	user := &domain.User{
		Email:  "pro@example.com",
		Name:   "Pro",
		Role:   role,
		Status: domain.UserStatusActive,
	}
	require.NoError(t, users.Create(context.Background(), user))
	return user
}

func TestCreateProfessionalDefaults(t *testing.T) {
	svc, users, _, dispatcher := newTestProfessionalService()
	user := seedProfessionalUser(t, users, domain.RoleProfessional)

	professional, err := svc.Create(context.Background(), user.ID, CreateProfessionalInput{
		BusinessName: "Eletricista Catalão",
		Specialties:  []string{"electrical"},
	})
	require.NoError(t, err)
	require.Equal(t, domain.PlanFree, professional.Plan)
	require.Equal(t, domain.ProfessionalStatusPending, professional.Status)
	require.Equal(t, domain.VerificationPending, professional.VerificationStatus)
	require.Empty(t, professional.Portfolio)

	published := dispatcher.published()
	require.Len(t, published, 1)
	require.Equal(t, events.EventProfessionalCreated, published[0].Type)
}

func TestCreateProfessionalRequiresRole(t *testing.T) {
	svc, users, _, _ := newTestProfessionalService()
	user := seedProfessionalUser(t, users, domain.RoleClient)

	_, err := svc.Create(context.Background(), user.ID, CreateProfessionalInput{BusinessName: "X"})
	require.Error(t, err)
}

func TestCreateProfessionalRejectsSecondProfile(t *testing.T) {
	svc, users, _, _ := newTestProfessionalService()
	user := seedProfessionalUser(t, users, domain.RoleProfessional)

	_, err := svc.Create(context.Background(), user.ID, CreateProfessionalInput{BusinessName: "A"})
	require.NoError(t, err)
	_, err = svc.Create(context.Background(), user.ID, CreateProfessionalInput{BusinessName: "B"})
	require.Error(t, err)
}

func TestVerifyLeavesStatusAndPlanAlone(t *testing.T) {
	svc, users, _, dispatcher := newTestProfessionalService()
	user := seedProfessionalUser(t, users, domain.RoleProfessional)
	created, err := svc.Create(context.Background(), user.ID, CreateProfessionalInput{BusinessName: "V"})
	require.NoError(t, err)

	verified, err := svc.Verify(context.Background(), created.ID)
	require.NoError(t, err)
	require.Equal(t, domain.VerificationVerified, verified.VerificationStatus)
	require.Equal(t, domain.ProfessionalStatusPending, verified.Status)
	require.Equal(t, domain.PlanFree, verified.Plan)

	published := dispatcher.published()
	require.Equal(t, events.EventProfessionalVerified, published[len(published)-1].Type)
}

func TestPlanChangePublishesOldAndNew(t *testing.T) {
	svc, users, _, dispatcher := newTestProfessionalService()
	user := seedProfessionalUser(t, users, domain.RoleProfessional)
	created, err := svc.Create(context.Background(), user.ID, CreateProfessionalInput{BusinessName: "P"})
	require.NoError(t, err)

	upgraded, err := svc.UpgradeToPremium(context.Background(), created.ID)
	require.NoError(t, err)
	require.Equal(t, domain.PlanPremium, upgraded.Plan)

	published := dispatcher.published()
	payload, ok := published[len(published)-1].Payload.(events.PlanChangedPayload)
	require.True(t, ok)
	require.Equal(t, domain.PlanFree, payload.OldPlan)
	require.Equal(t, domain.PlanPremium, payload.NewPlan)

	downgraded, err := svc.DowngradeToFree(context.Background(), created.ID)
	require.NoError(t, err)
	require.Equal(t, domain.PlanFree, downgraded.Plan)
}

func TestAddPortfolioItemAssignsID(t *testing.T) {
	svc, users, professionals, dispatcher := newTestProfessionalService()
	user := seedProfessionalUser(t, users, domain.RoleProfessional)
	created, err := svc.Create(context.Background(), user.ID, CreateProfessionalInput{BusinessName: "W"})
	require.NoError(t, err)

	item, err := svc.AddPortfolioItem(context.Background(), created.ID, domain.PortfolioItemInput{
		Title:    "Instalação de chuveiro",
		Category: "electrical",
	})
	require.NoError(t, err)
	require.NotEmpty(t, item.ID)
	require.False(t, item.CreatedAt.IsZero())

	stored, err := professionals.GetByID(context.Background(), created.ID)
	require.NoError(t, err)
	require.Len(t, stored.Portfolio, 1)
	require.Equal(t, item.ID, stored.Portfolio[0].ID)

	published := dispatcher.published()
	require.Equal(t, events.EventPortfolioItemAdded, published[len(published)-1].Type)
}

func TestUpdateMetricsMergesSnapshot(t *testing.T) {
	svc, users, professionals, _ := newTestProfessionalService()
	user := seedProfessionalUser(t, users, domain.RoleProfessional)
	created, err := svc.Create(context.Background(), user.ID, CreateProfessionalInput{BusinessName: "M"})
	require.NoError(t, err)

	total := 20
	completed := 15
	rating := 4.6
	_, err = svc.UpdateMetrics(context.Background(), created.ID, domain.MetricsPatch{
		TotalJobs:     &total,
		CompletedJobs: &completed,
		AverageRating: &rating,
	})
	require.NoError(t, err)

	reviews := 9
	_, err = svc.UpdateMetrics(context.Background(), created.ID, domain.MetricsPatch{TotalReviews: &reviews})
	require.NoError(t, err)

	stored, err := professionals.GetByID(context.Background(), created.ID)
	require.NoError(t, err)
	require.Equal(t, 20, stored.Metrics.TotalJobs)
	require.Equal(t, 15, stored.Metrics.CompletedJobs)
	require.Equal(t, 4.6, stored.Metrics.AverageRating)
	require.Equal(t, 9, stored.Metrics.TotalReviews)
}

func TestSummaryWithoutCacheFallsBackToRepo(t *testing.T) {
	svc, users, _, _ := newTestProfessionalService()
	user := seedProfessionalUser(t, users, domain.RoleProfessional)
	created, err := svc.Create(context.Background(), user.ID, CreateProfessionalInput{
		BusinessName: "Summary Co",
		Specialties:  []string{"plumbing"},
	})
	require.NoError(t, err)

	summary, err := svc.Summary(context.Background(), created.ID)
	require.NoError(t, err)
	require.Equal(t, created.ID, summary.ID)
	require.Equal(t, "Summary Co", summary.BusinessName)
}
