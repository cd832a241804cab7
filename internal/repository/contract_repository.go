package repository

import (
	"context"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/rafaelmelo2/maonamassa/internal/domain"
)

// ContractRepository stores service agreements.
type ContractRepository interface {
	Create(ctx context.Context, contract *domain.Contract) error
	Update(ctx context.Context, contract *domain.Contract) error
	GetByID(ctx context.Context, id string) (*domain.Contract, error)
	ListByClient(ctx context.Context, clientID string, limit, offset int) ([]domain.Contract, error)
	ListByProfessional(ctx context.Context, professionalID string, limit, offset int) ([]domain.Contract, error)
}

type contractRepository struct {
	pool *pgxpool.Pool
}

// NewContractRepository builds repository.
func NewContractRepository(pool *pgxpool.Pool) ContractRepository {
	return &contractRepository{pool: pool}
}

const contractColumns = `id, service_id, client_id, professional_id, status, scope, amount,
               currency, payment_method, start_date, end_date, created_at, updated_at,
               started_at, completed_at, cancelled_at`

func (r *contractRepository) Create(ctx context.Context, contract *domain.Contract) error {
	const query = `
        INSERT INTO contracts (service_id, client_id, professional_id, status, scope, amount,
            currency, payment_method, start_date, end_date)
        VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9,$10)
        RETURNING id, created_at, updated_at`

	return r.pool.QueryRow(ctx, query,
		contract.ServiceID,
		contract.ClientID,
		contract.ProfessionalID,
		contract.Status,
		contract.Scope,
		contract.Amount,
		contract.Currency,
		contract.PaymentMethod,
		contract.StartDate,
		contract.EndDate,
	).Scan(&contract.ID, &contract.CreatedAt, &contract.UpdatedAt)
}

func (r *contractRepository) Update(ctx context.Context, contract *domain.Contract) error {
	const query = `
        UPDATE contracts SET status=$1, scope=$2, amount=$3, currency=$4, payment_method=$5,
            start_date=$6, end_date=$7, started_at=$8, completed_at=$9, cancelled_at=$10,
            updated_at=NOW()
        WHERE id=$11`

	cmd, err := r.pool.Exec(ctx, query,
		contract.Status,
		contract.Scope,
		contract.Amount,
		contract.Currency,
		contract.PaymentMethod,
		contract.StartDate,
		contract.EndDate,
		contract.StartedAt,
		contract.CompletedAt,
		contract.CancelledAt,
		contract.ID,
	)
	if err != nil {
		return err
	}
	if cmd.RowsAffected() == 0 {
		return pgx.ErrNoRows
	}
	return nil
}

func (r *contractRepository) GetByID(ctx context.Context, id string) (*domain.Contract, error) {
	const query = `
        SELECT ` + contractColumns + `
        FROM contracts WHERE id=$1`

	var c domain.Contract
	if err := r.pool.QueryRow(ctx, query, id).Scan(
		&c.ID,
		&c.ServiceID,
		&c.ClientID,
		&c.ProfessionalID,
		&c.Status,
		&c.Scope,
		&c.Amount,
		&c.Currency,
		&c.PaymentMethod,
		&c.StartDate,
		&c.EndDate,
		&c.CreatedAt,
		&c.UpdatedAt,
		&c.StartedAt,
		&c.CompletedAt,
		&c.CancelledAt,
	); err != nil {
		return nil, err
	}
	return &c, nil
}

func (r *contractRepository) ListByClient(ctx context.Context, clientID string, limit, offset int) ([]domain.Contract, error) {
	const query = `
        SELECT ` + contractColumns + `
        FROM contracts WHERE client_id=$1 ORDER BY created_at DESC LIMIT $2 OFFSET $3`
	return r.list(ctx, query, clientID, limit, offset)
}

func (r *contractRepository) ListByProfessional(ctx context.Context, professionalID string, limit, offset int) ([]domain.Contract, error) {
	const query = `
        SELECT ` + contractColumns + `
        FROM contracts WHERE professional_id=$1 ORDER BY created_at DESC LIMIT $2 OFFSET $3`
	return r.list(ctx, query, professionalID, limit, offset)
}

func (r *contractRepository) list(ctx context.Context, query, id string, limit, offset int) ([]domain.Contract, error) {
	if limit <= 0 {
		limit = 20
	}
	if offset < 0 {
		offset = 0
	}
	rows, err := r.pool.Query(ctx, query, id, limit, offset)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var result []domain.Contract
	for rows.Next() {
		var c domain.Contract
		if err := rows.Scan(
			&c.ID,
			&c.ServiceID,
			&c.ClientID,
			&c.ProfessionalID,
			&c.Status,
			&c.Scope,
			&c.Amount,
			&c.Currency,
			&c.PaymentMethod,
			&c.StartDate,
			&c.EndDate,
			&c.CreatedAt,
			&c.UpdatedAt,
			&c.StartedAt,
			&c.CompletedAt,
			&c.CancelledAt,
		); err != nil {
			return nil, err
		}
		result = append(result, c)
	}
	return result, rows.Err()
}
