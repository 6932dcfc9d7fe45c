package postgres

import (
	"context"
	"errors"
	"strings"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/healthcare24/backend/domain"
	"github.com/healthcare24/backend/repository"
)

type userRepository struct {
	pool *pgxpool.Pool
}

// NewUserRepository returns a Postgres-backed implementation of UserRepository.
func NewUserRepository(pool *pgxpool.Pool) repository.UserRepository {
	return &userRepository{pool: pool}
}

const userColumns = `id, email, name, role, phone, timezone, password_hash, active, created_at, updated_at`

func (r *userRepository) GetByID(ctx context.Context, id string) (*domain.User, error) {
	const query = `SELECT ` + userColumns + ` FROM users WHERE id = $1`
	return scanUser(r.pool.QueryRow(ctx, query, id))
}

func (r *userRepository) GetByEmail(ctx context.Context, email string) (*domain.User, error) {
	const query = `SELECT ` + userColumns + ` FROM users WHERE lower(email) = lower($1)`
	return scanUser(r.pool.QueryRow(ctx, query, strings.TrimSpace(email)))
}

func (r *userRepository) List(ctx context.Context, filter repository.UserFilter) ([]domain.User, error) {
	const query = `
	SELECT ` + userColumns + `
	FROM users
	WHERE ($1 = '' OR role = $1)
	  AND ($2::boolean IS NULL OR active = $2)
	ORDER BY created_at
	LIMIT $3 OFFSET $4
	`
	rows, err := r.pool.Query(ctx, query, string(filter.Role), filter.Active, clampLimit(filter.Limit), filter.Offset)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var users []domain.User
	for rows.Next() {
		user, err := scanUser(rows)
		if err != nil {
			return nil, err
		}
		users = append(users, *user)
	}
	return users, rows.Err()
}

func (r *userRepository) Create(ctx context.Context, user *domain.User) (*domain.User, error) {
	if user == nil {
		return nil, domain.ErrInvalidPayload
	}
	if user.ID == "" {
		user.ID = uuid.NewString()
	}

	const query = `
	INSERT INTO users (id, email, name, role, phone, timezone, password_hash, active)
	VALUES ($1, lower($2), $3, $4, $5, $6, $7, $8)
	RETURNING created_at, updated_at
	`
	err := r.pool.QueryRow(ctx, query,
		user.ID,
		strings.TrimSpace(user.Email),
		user.Name,
		string(user.Role),
		nullIfEmpty(user.Phone),
		nullIfEmpty(user.Timezone),
		user.PasswordHash,
		user.Active,
	).Scan(&user.CreatedAt, &user.UpdatedAt)
	if err != nil {
		if isUniqueViolation(err) {
			return nil, domain.ErrEmailTaken
		}
		return nil, err
	}
	return user, nil
}

func (r *userRepository) Update(ctx context.Context, user *domain.User) error {
	if user == nil {
		return domain.ErrInvalidPayload
	}

	const query = `
	UPDATE users
	SET name = $2,
		phone = $3,
		timezone = $4,
		password_hash = $5,
		active = $6,
		updated_at = NOW()
	WHERE id = $1
	RETURNING updated_at
	`
	err := r.pool.QueryRow(ctx, query,
		user.ID,
		user.Name,
		nullIfEmpty(user.Phone),
		nullIfEmpty(user.Timezone),
		user.PasswordHash,
		user.Active,
	).Scan(&user.UpdatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return domain.ErrUserNotFound
	}
	return err
}

func scanUser(row pgx.Row) (*domain.User, error) {
	var user domain.User
	var role string
	var phone, timezone *string

	if err := row.Scan(
		&user.ID,
		&user.Email,
		&user.Name,
		&role,
		&phone,
		&timezone,
		&user.PasswordHash,
		&user.Active,
		&user.CreatedAt,
		&user.UpdatedAt,
	); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrUserNotFound
		}
		return nil, err
	}

	user.Role = domain.Role(role)
	if phone != nil {
		user.Phone = *phone
	}
	if timezone != nil {
		user.Timezone = *timezone
	}
	return &user, nil
}

func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == "23505"
}
