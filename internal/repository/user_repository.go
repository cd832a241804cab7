package repository

import (
	"context"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/rafaelmelo2/maonamassa/internal/domain"
)

// UserRepository defines persistence access for accounts. Reads never return
// soft-deleted rows.
type UserRepository interface {
	Create(ctx context.Context, user *domain.User) error
	Update(ctx context.Context, user *domain.User) error
	GetByID(ctx context.Context, id string) (*domain.User, error)
	GetByEmail(ctx context.Context, email string) (*domain.User, error)
	SoftDelete(ctx context.Context, id string) error
}

type userRepository struct {
	pool *pgxpool.Pool
}

// NewUserRepository returns a Postgres-backed implementation.
func NewUserRepository(pool *pgxpool.Pool) UserRepository {
	return &userRepository{pool: pool}
}

const userColumns = `id, email, password_hash, name, phone, birth_date, gender, avatar,
        role, status, email_verified, phone_verified, address, preferences,
        notification_settings, metadata, created_at, updated_at, last_login_at`

func (r *userRepository) Create(ctx context.Context, user *domain.User) error {
	const query = `
        INSERT INTO users (email, password_hash, name, phone, birth_date, gender, avatar,
            role, status, email_verified, phone_verified, address, preferences,
            notification_settings, metadata)
        VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9,$10,$11,$12,$13,$14,$15)
        RETURNING id, created_at, updated_at`

	return r.pool.QueryRow(ctx, query,
		user.Email,
		user.PasswordHash,
		user.Name,
		user.Phone,
		user.BirthDate,
		user.Gender,
		user.Avatar,
		user.Role,
		user.Status,
		user.EmailVerified,
		user.PhoneVerified,
		user.Address,
		user.Preferences,
		user.NotificationSettings,
		user.Metadata,
	).Scan(&user.ID, &user.CreatedAt, &user.UpdatedAt)
}

func (r *userRepository) Update(ctx context.Context, user *domain.User) error {
	const query = `
        UPDATE users SET email=$1, password_hash=$2, name=$3, phone=$4, birth_date=$5,
            gender=$6, avatar=$7, role=$8, status=$9, email_verified=$10, phone_verified=$11,
            address=$12, preferences=$13, notification_settings=$14, metadata=$15,
            updated_at=$16, last_login_at=$17
        WHERE id=$18 AND deleted_at IS NULL`

	cmd, err := r.pool.Exec(ctx, query,
		user.Email,
		user.PasswordHash,
		user.Name,
		user.Phone,
		user.BirthDate,
		user.Gender,
		user.Avatar,
		user.Role,
		user.Status,
		user.EmailVerified,
		user.PhoneVerified,
		user.Address,
		user.Preferences,
		user.NotificationSettings,
		user.Metadata,
		user.UpdatedAt,
		user.LastLoginAt,
		user.ID,
	)
	if err != nil {
		return err
	}
	if cmd.RowsAffected() == 0 {
		return pgx.ErrNoRows
	}
	return nil
}

func (r *userRepository) GetByID(ctx context.Context, id string) (*domain.User, error) {
	const query = `
        SELECT ` + userColumns + `
        FROM users WHERE id=$1 AND deleted_at IS NULL`
	return r.scanUser(r.pool.QueryRow(ctx, query, id))
}

func (r *userRepository) GetByEmail(ctx context.Context, email string) (*domain.User, error) {
	const query = `
        SELECT ` + userColumns + `
        FROM users WHERE email=$1 AND deleted_at IS NULL`
	return r.scanUser(r.pool.QueryRow(ctx, query, email))
}

func (r *userRepository) SoftDelete(ctx context.Context, id string) error {
	const query = `
        UPDATE users SET deleted_at=NOW(), updated_at=NOW()
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

func (r *userRepository) scanUser(row pgx.Row) (*domain.User, error) {
	var user domain.User
	if err := row.Scan(
		&user.ID,
		&user.Email,
		&user.PasswordHash,
		&user.Name,
		&user.Phone,
		&user.BirthDate,
		&user.Gender,
		&user.Avatar,
		&user.Role,
		&user.Status,
		&user.EmailVerified,
		&user.PhoneVerified,
		&user.Address,
		&user.Preferences,
		&user.NotificationSettings,
		&user.Metadata,
		&user.CreatedAt,
		&user.UpdatedAt,
		&user.LastLoginAt,
	); err != nil {
		return nil, err
	}
	return &user, nil
}
