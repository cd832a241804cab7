package repository

import (
	"context"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/rafaelmelo2/maonamassa/internal/domain"
)

// ProfessionalFilter captures search parameters for provider listings.
type ProfessionalFilter struct {
	Status             *domain.ProfessionalStatus
	Plan               *domain.ProfessionalPlan
	VerificationStatus *domain.VerificationStatus
	Specialty          *string
	EmergencyOnly      bool
	MinRating          *float64
	SearchTerm         *string
	Limit              int
	Offset             int
}

// ProfessionalRepository encapsulates provider persistence.
type ProfessionalRepository interface {
	Create(ctx context.Context, professional *domain.Professional) error
	Update(ctx context.Context, professional *domain.Professional) error
	GetByID(ctx context.Context, id string) (*domain.Professional, error)
	GetByUserID(ctx context.Context, userID string) (*domain.Professional, error)
	ListWithFilter(ctx context.Context, filter ProfessionalFilter) ([]domain.Professional, error)
}

type professionalRepository struct {
	pool *pgxpool.Pool
}

// NewProfessionalRepository instantiates repository.
func NewProfessionalRepository(pool *pgxpool.Pool) ProfessionalRepository {
	return &professionalRepository{pool: pool}
}

const professionalColumns = `id, user_id, business_name, description, specialties, experience,
               documents, plan, status, verification_status, working_hours, service_radius,
               emergency_service, portfolio, metrics, financial, created_at, updated_at, last_active_at`

func (r *professionalRepository) Create(ctx context.Context, professional *domain.Professional) error {
	const query = `
        INSERT INTO professionals (user_id, business_name, description, specialties, experience,
            documents, plan, status, verification_status, working_hours, service_radius,
            emergency_service, portfolio, metrics, financial)
        VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9,$10,$11,$12,$13,$14,$15)
        RETURNING id, created_at, updated_at`

	return r.pool.QueryRow(ctx, query,
		professional.UserID,
		professional.BusinessName,
		professional.Description,
		professional.Specialties,
		professional.Experience,
		professional.Documents,
		professional.Plan,
		professional.Status,
		professional.VerificationStatus,
		professional.WorkingHours,
		professional.ServiceRadius,
		professional.EmergencyService,
		professional.Portfolio,
		professional.Metrics,
		professional.Financial,
	).Scan(&professional.ID, &professional.CreatedAt, &professional.UpdatedAt)
}

func (r *professionalRepository) Update(ctx context.Context, professional *domain.Professional) error {
	const query = `
        UPDATE professionals SET business_name=$1, description=$2, specialties=$3, experience=$4,
            documents=$5, plan=$6, status=$7, verification_status=$8, working_hours=$9,
            service_radius=$10, emergency_service=$11, portfolio=$12, metrics=$13, financial=$14,
            updated_at=$15, last_active_at=$16
        WHERE id=$17 AND deleted_at IS NULL`

	cmd, err := r.pool.Exec(ctx, query,
		professional.BusinessName,
		professional.Description,
		professional.Specialties,
		professional.Experience,
		professional.Documents,
		professional.Plan,
		professional.Status,
		professional.VerificationStatus,
		professional.WorkingHours,
		professional.ServiceRadius,
		professional.EmergencyService,
		professional.Portfolio,
		professional.Metrics,
		professional.Financial,
		professional.UpdatedAt,
		professional.LastActiveAt,
		professional.ID,
	)
	if err != nil {
		return err
	}
	if cmd.RowsAffected() == 0 {
		return pgx.ErrNoRows
	}
	return nil
}

func (r *professionalRepository) GetByID(ctx context.Context, id string) (*domain.Professional, error) {
	const query = `
        SELECT ` + professionalColumns + `
        FROM professionals WHERE id=$1 AND deleted_at IS NULL`
	return r.fetchSingle(ctx, query, id)
}

func (r *professionalRepository) GetByUserID(ctx context.Context, userID string) (*domain.Professional, error) {
	const query = `
        SELECT ` + professionalColumns + `
        FROM professionals WHERE user_id=$1 AND deleted_at IS NULL`
	return r.fetchSingle(ctx, query, userID)
}

func (r *professionalRepository) fetchSingle(ctx context.Context, query string, arg any) (*domain.Professional, error) {
	var p domain.Professional
	if err := r.pool.QueryRow(ctx, query, arg).Scan(
		&p.ID,
		&p.UserID,
		&p.BusinessName,
		&p.Description,
		&p.Specialties,
		&p.Experience,
		&p.Documents,
		&p.Plan,
		&p.Status,
		&p.VerificationStatus,
		&p.WorkingHours,
		&p.ServiceRadius,
		&p.EmergencyService,
		&p.Portfolio,
		&p.Metrics,
		&p.Financial,
		&p.CreatedAt,
		&p.UpdatedAt,
		&p.LastActiveAt,
	); err != nil {
		return nil, err
	}
	return &p, nil
}

func (r *professionalRepository) ListWithFilter(ctx context.Context, filter ProfessionalFilter) ([]domain.Professional, error) {
	base := `SELECT ` + professionalColumns + ` FROM professionals`
	clauses := []string{"deleted_at IS NULL"}
	args := []any{}

	if filter.Status != nil {
		args = append(args, *filter.Status)
		clauses = append(clauses, fmt.Sprintf("status=$%d", len(args)))
	}
	if filter.Plan != nil {
		args = append(args, *filter.Plan)
		clauses = append(clauses, fmt.Sprintf("plan=$%d", len(args)))
	}
	if filter.VerificationStatus != nil {
		args = append(args, *filter.VerificationStatus)
		clauses = append(clauses, fmt.Sprintf("verification_status=$%d", len(args)))
	}
	if filter.Specialty != nil && strings.TrimSpace(*filter.Specialty) != "" {
		args = append(args, *filter.Specialty)
		clauses = append(clauses, fmt.Sprintf("specialties @> ARRAY[$%d]::text[]", len(args)))
	}
	if filter.EmergencyOnly {
		clauses = append(clauses, "emergency_service=TRUE")
	}
	if filter.MinRating != nil {
		args = append(args, *filter.MinRating)
		clauses = append(clauses, fmt.Sprintf("(metrics->>'average_rating')::numeric >= $%d", len(args)))
	}
	if filter.SearchTerm != nil && strings.TrimSpace(*filter.SearchTerm) != "" {
		search := "%" + strings.ToLower(strings.TrimSpace(*filter.SearchTerm)) + "%"
		args = append(args, search)
		placeholder := fmt.Sprintf("$%d", len(args))
		clauses = append(clauses, fmt.Sprintf("(LOWER(business_name) LIKE %s OR LOWER(description) LIKE %s)", placeholder, placeholder))
	}

	limit := filter.Limit
	if limit <= 0 {
		limit = 20
	}
	offset := filter.Offset
	if offset < 0 {
		offset = 0
	}

	query := fmt.Sprintf(`%s WHERE %s ORDER BY updated_at DESC LIMIT %d OFFSET %d`,
		base, strings.Join(clauses, " AND "), limit, offset)

	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var result []domain.Professional
	for rows.Next() {
		var p domain.Professional
		if err := rows.Scan(
			&p.ID,
			&p.UserID,
			&p.BusinessName,
			&p.Description,
			&p.Specialties,
			&p.Experience,
			&p.Documents,
			&p.Plan,
			&p.Status,
			&p.VerificationStatus,
			&p.WorkingHours,
			&p.ServiceRadius,
			&p.EmergencyService,
			&p.Portfolio,
			&p.Metrics,
			&p.Financial,
			&p.CreatedAt,
			&p.UpdatedAt,
			&p.LastActiveAt,
		); err != nil {
			return nil, err
		}
		result = append(result, p)
	}
	return result, rows.Err()
}
