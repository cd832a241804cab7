package repository

import (
	"context"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/rafaelmelo2/maonamassa/internal/domain"
)

// ServiceFilter captures catalog search parameters.
type ServiceFilter struct {
	ProfessionalID *string
	Category       *string
	Statuses       []domain.ServiceStatus
	EmergencyOnly  bool
	FeaturedOnly   bool
	MaxBasePrice   *float64
	SearchTerm     *string
	Limit          int
	Offset         int
}

// ServiceRepository encapsulates catalog listing persistence.
type ServiceRepository interface {
	Create(ctx context.Context, service *domain.Service) error
	Update(ctx context.Context, service *domain.Service) error
	GetByID(ctx context.Context, id string) (*domain.Service, error)
	ListWithFilter(ctx context.Context, filter ServiceFilter) ([]domain.Service, error)
	SoftDelete(ctx context.Context, id string) error
}

type serviceRepository struct {
	pool *pgxpool.Pool
}

// NewServiceRepository instantiates repository.
func NewServiceRepository(pool *pgxpool.Pool) ServiceRepository {
	return &serviceRepository{pool: pool}
}

const serviceColumns = `id, professional_id, title, description, category, subcategory, tags,
               images, pricing, location, status, featured, emergency, metrics, created_at, updated_at`

func (r *serviceRepository) Create(ctx context.Context, service *domain.Service) error {
	const query = `
        INSERT INTO services (professional_id, title, description, category, subcategory, tags,
            images, pricing, location, status, featured, emergency, metrics)
        VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9,$10,$11,$12,$13)
        RETURNING id, created_at, updated_at`

	return r.pool.QueryRow(ctx, query,
		service.ProfessionalID,
		service.Title,
		service.Description,
		service.Category,
		service.Subcategory,
		service.Tags,
		service.Images,
		service.Pricing,
		service.Location,
		service.Status,
		service.Featured,
		service.Emergency,
		service.Metrics,
	).Scan(&service.ID, &service.CreatedAt, &service.UpdatedAt)
}

func (r *serviceRepository) Update(ctx context.Context, service *domain.Service) error {
	const query = `
        UPDATE services SET title=$1, description=$2, category=$3, subcategory=$4, tags=$5,
            images=$6, pricing=$7, location=$8, status=$9, featured=$10, emergency=$11,
            metrics=$12, updated_at=NOW()
        WHERE id=$13 AND deleted_at IS NULL`

	cmd, err := r.pool.Exec(ctx, query,
		service.Title,
		service.Description,
		service.Category,
		service.Subcategory,
		service.Tags,
		service.Images,
		service.Pricing,
		service.Location,
		service.Status,
		service.Featured,
		service.Emergency,
		service.Metrics,
		service.ID,
	)
	if err != nil {
		return err
	}
	if cmd.RowsAffected() == 0 {
		return pgx.ErrNoRows
	}
	return nil
}

func (r *serviceRepository) GetByID(ctx context.Context, id string) (*domain.Service, error) {
	const query = `
        SELECT ` + serviceColumns + `
        FROM services WHERE id=$1 AND deleted_at IS NULL`

	var s domain.Service
	if err := r.pool.QueryRow(ctx, query, id).Scan(
		&s.ID,
		&s.ProfessionalID,
		&s.Title,
		&s.Description,
		&s.Category,
		&s.Subcategory,
		&s.Tags,
		&s.Images,
		&s.Pricing,
		&s.Location,
		&s.Status,
		&s.Featured,
		&s.Emergency,
		&s.Metrics,
		&s.CreatedAt,
		&s.UpdatedAt,
	); err != nil {
		return nil, err
	}
	return &s, nil
}

func (r *serviceRepository) ListWithFilter(ctx context.Context, filter ServiceFilter) ([]domain.Service, error) {
	base := `SELECT ` + serviceColumns + ` FROM services`
	clauses := []string{"deleted_at IS NULL"}
	args := []any{}

	if filter.ProfessionalID != nil {
		args = append(args, *filter.ProfessionalID)
		clauses = append(clauses, fmt.Sprintf("professional_id=$%d", len(args)))
	}
	if filter.Category != nil && *filter.Category != "" {
		args = append(args, *filter.Category)
		clauses = append(clauses, fmt.Sprintf("category=$%d", len(args)))
	}
	if len(filter.Statuses) > 0 {
		placeholders := make([]string, len(filter.Statuses))
		for i, status := range filter.Statuses {
			args = append(args, status)
			placeholders[i] = fmt.Sprintf("$%d", len(args))
		}
		clauses = append(clauses, fmt.Sprintf("status IN (%s)", strings.Join(placeholders, ",")))
	}
	if filter.EmergencyOnly {
		clauses = append(clauses, "emergency=TRUE")
	}
	if filter.FeaturedOnly {
		clauses = append(clauses, "featured=TRUE")
	}
	if filter.MaxBasePrice != nil {
		args = append(args, *filter.MaxBasePrice)
		clauses = append(clauses, fmt.Sprintf("(pricing->>'base_price')::numeric <= $%d", len(args)))
	}
	if filter.SearchTerm != nil && strings.TrimSpace(*filter.SearchTerm) != "" {
		search := "%" + strings.ToLower(strings.TrimSpace(*filter.SearchTerm)) + "%"
		args = append(args, search)
		placeholder := fmt.Sprintf("$%d", len(args))
		clauses = append(clauses, fmt.Sprintf("(LOWER(title) LIKE %s OR LOWER(description) LIKE %s)", placeholder, placeholder))
	}

	limit := filter.Limit
	if limit <= 0 {
		limit = 20
	}
	offset := filter.Offset
	if offset < 0 {
		offset = 0
	}

	query := fmt.Sprintf(`%s WHERE %s ORDER BY featured DESC, updated_at DESC LIMIT %d OFFSET %d`,
		base, strings.Join(clauses, " AND "), limit, offset)

	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var result []domain.Service
	for rows.Next() {
		var s domain.Service
		if err := rows.Scan(
			&s.ID,
			&s.ProfessionalID,
			&s.Title,
			&s.Description,
			&s.Category,
			&s.Subcategory,
			&s.Tags,
			&s.Images,
			&s.Pricing,
			&s.Location,
			&s.Status,
			&s.Featured,
			&s.Emergency,
			&s.Metrics,
			&s.CreatedAt,
			&s.UpdatedAt,
		); err != nil {
			return nil, err
		}
		result = append(result, s)
	}
	return result, rows.Err()
}

func (r *serviceRepository) SoftDelete(ctx context.Context, id string) error {
	const query = `
        UPDATE services SET deleted_at=NOW(), updated_at=NOW()
        WHERE id=$1 AND deleted_at IS NULL`
	cmd, err := r.pool.Exec(ctx, query, id)
	if err != nil {
		return err
	}
	if cmd.RowsAffected() == 0 {
		return pgx.ErrNoRows
	}
	return nil
}
