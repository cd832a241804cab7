package domain

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func intPtr(i int) *int           { return &i }
func floatPtr(f float64) *float64 { return &f }
func boolPtr(b bool) *bool        { return &b }

func newTestProfessional() *Professional {
	return &Professional{
		ID:                 "p-1",
		UserID:             "u-1",
		BusinessName:       "Elétrica Silva",
		Description:        "Instalações residenciais",
		Specialties:        []string{"elétrica"},
		Experience:         8,
		Plan:               PlanFree,
		Status:             ProfessionalStatusPending,
		VerificationStatus: VerificationPending,
		ServiceRadius:      25,
		CreatedAt:          time.Now().Add(-time.Hour),
		UpdatedAt:          time.Now().Add(-time.Hour),
	}
}

func TestProfessionalEntity_CompletionRate(t *testing.T) {
	tests := []struct {
		name      string
		total     int
		completed int
		want      float64
	}{
		{"no jobs", 0, 0, 0},
		{"all completed", 10, 10, 100},
		{"partial", 10, 7, 70},
		{"single job", 1, 0, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := newTestProfessional()
			p.Metrics.TotalJobs = tt.total
			p.Metrics.CompletedJobs = tt.completed
			require.InDelta(t, tt.want, NewProfessionalEntity(p).CompletionRate(), 1e-9)
		})
	}
}

func TestProfessionalEntity_MetricsMergeKeepsAbsentFields(t *testing.T) {
	p := newTestProfessional()
	p.Metrics = ProfessionalMetrics{TotalJobs: 10, CompletedJobs: 7, AverageRating: 4.5}
	entity := NewProfessionalEntity(p)

	require.InDelta(t, 70, entity.CompletionRate(), 1e-9)

	entity.UpdateMetrics(MetricsPatch{TotalJobs: intPtr(12)})

	require.Equal(t, 12, p.Metrics.TotalJobs)
	require.Equal(t, 7, p.Metrics.CompletedJobs, "absent field keeps prior value")
	require.InDelta(t, 4.5, p.Metrics.AverageRating, 1e-9)
	require.InDelta(t, 100.0*7/12, entity.CompletionRate(), 1e-9)
}

func TestProfessionalEntity_UpdateProfilePartial(t *testing.T) {
	p := newTestProfessional()
	entity := NewProfessionalEntity(p)
	before := p.UpdatedAt

	entity.UpdateProfile(ProfessionalPatch{
		Description:      strPtr("Instalações e manutenção"),
		ServiceRadius:    floatPtr(40),
		EmergencyService: boolPtr(true),
	})

	require.Equal(t, "Elétrica Silva", p.BusinessName, "absent field untouched")
	require.Equal(t, "Instalações e manutenção", p.Description)
	require.InDelta(t, 40, p.ServiceRadius, 1e-9)
	require.True(t, p.EmergencyService)
	require.True(t, p.UpdatedAt.After(before))
}

func TestProfessionalEntity_StatusAndPlanIndependent(t *testing.T) {
	entity := NewProfessionalEntity(newTestProfessional())

	entity.UpgradeToPremium()
	entity.Suspend()

	require.Equal(t, ProfessionalStatusSuspended, entity.Status())
	require.True(t, entity.IsPremium(), "a suspended professional can still hold premium")

	entity.Activate()
	require.True(t, entity.IsActive(), "suspend then activate ends active; no transition is rejected")

	entity.DowngradeToFree()
	require.Equal(t, PlanFree, entity.Plan())
	require.True(t, entity.IsActive(), "plan change leaves status alone")
}

func TestProfessionalEntity_VerifyOnlyTouchesVerification(t *testing.T) {
	p := newTestProfessional()
	entity := NewProfessionalEntity(p)

	entity.Verify()

	require.True(t, entity.IsVerified())
	require.Equal(t, ProfessionalStatusPending, p.Status, "verify does not imply active")
	require.Equal(t, PlanFree, p.Plan)
}

func TestProfessionalEntity_AddPortfolioItems(t *testing.T) {
	p := newTestProfessional()
	entity := NewProfessionalEntity(p)

	const n = 5
	seen := map[string]bool{}
	for i := 0; i < n; i++ {
		item := entity.AddPortfolioItem(PortfolioItemInput{
			Title:    "Trabalho",
			Category: "elétrica",
			Images:   []string{"https://cdn.example.com/w.jpg"},
		})
		require.NotEmpty(t, item.ID)
		require.False(t, seen[item.ID], "ids must be distinct")
		require.False(t, item.CreatedAt.IsZero())
		seen[item.ID] = true
	}

	require.Len(t, p.Portfolio, n)
	for i := 1; i < n; i++ {
		require.False(t, p.Portfolio[i].CreatedAt.Before(p.Portfolio[i-1].CreatedAt),
			"insertion order preserved")
	}
}

func TestProfessionalEntity_ToSummaryExcludesSensitiveFields(t *testing.T) {
	p := newTestProfessional()
	cpf := "000.000.000-00"
	p.Documents.CPF = &cpf
	p.Financial.TotalEarnings = 1234.56
	p.Metrics.AverageRating = 4.8
	p.Metrics.TotalReviews = 31
	entity := NewProfessionalEntity(p)

	summary := entity.ToSummary()
	require.Equal(t, p.ID, summary.ID)
	require.InDelta(t, 4.8, summary.AverageRating, 1e-9)
	require.Equal(t, 31, summary.TotalReviews)

	raw, err := json.Marshal(summary)
	require.NoError(t, err)
	require.NotContains(t, string(raw), "cpf")
	require.NotContains(t, string(raw), "financial")
	require.NotContains(t, string(raw), "earnings")
}

func TestProfessionalEntity_UpdateLastActive(t *testing.T) {
	p := newTestProfessional()
	entity := NewProfessionalEntity(p)
	before := p.UpdatedAt

	entity.UpdateLastActive()

	require.NotNil(t, p.LastActiveAt)
	require.True(t, p.UpdatedAt.After(before))
}
