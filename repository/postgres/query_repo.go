package postgres

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/healthcare24/backend/domain"
	"github.com/healthcare24/backend/repository"
)

type queryRepository struct {
	pool *pgxpool.Pool
}

// NewQueryRepository returns a Postgres-backed implementation of QueryRepository.
func NewQueryRepository(pool *pgxpool.Pool) repository.QueryRepository {
	return &queryRepository{pool: pool}
}

const queryColumns = `id, title, message, category, status, created_by, patient_id, created_at, updated_at`

func (r *queryRepository) GetByID(ctx context.Context, id string) (*domain.Query, error) {
	const query = `SELECT ` + queryColumns + ` FROM queries WHERE id = $1`
	return scanQuery(r.pool.QueryRow(ctx, query, id))
}

func (r *queryRepository) List(ctx context.Context, filter repository.QueryFilter) ([]domain.Query, error) {
	const query = `
	SELECT ` + queryColumns + `
	FROM queries
	WHERE ($1 = '' OR created_by = $1)
	  AND ($2 = '' OR status = $2)
	  AND ($3 = '' OR category = $3)
	ORDER BY created_at DESC
	LIMIT $4
	`
	rows, err := r.pool.Query(ctx, query,
		filter.CreatedBy,
		string(filter.Status),
		string(filter.Category),
		clampLimit(filter.Limit),
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var queries []domain.Query
	for rows.Next() {
		q, err := scanQuery(rows)
		if err != nil {
			return nil, err
		}
		queries = append(queries, *q)
	}
	return queries, rows.Err()
}

func (r *queryRepository) Create(ctx context.Context, q *domain.Query) (*domain.Query, error) {
	if q == nil {
		return nil, domain.ErrInvalidPayload
	}
	if q.ID == "" {
		q.ID = uuid.NewString()
	}

	const query = `
	INSERT INTO queries (id, title, message, category, status, created_by, patient_id)
	VALUES ($1, $2, $3, $4, $5, $6, $7)
	RETURNING created_at, updated_at
	`
	if err := r.pool.QueryRow(ctx, query,
		q.ID,
		q.Title,
		q.Message,
		string(q.Category),
		string(q.Status),
		q.CreatedBy,
		nullIfEmpty(q.PatientID),
	).Scan(&q.CreatedAt, &q.UpdatedAt); err != nil {
		return nil, err
	}
	return q, nil
}

func (r *queryRepository) UpdateStatus(ctx context.Context, id string, status domain.QueryStatus) (*domain.Query, error) {
	const query = `
	UPDATE queries
	SET status = $2, updated_at = NOW()
	WHERE id = $1
	RETURNING ` + queryColumns + `
	`
	return scanQuery(r.pool.QueryRow(ctx, query, id, string(status)))
}

func (r *queryRepository) Delete(ctx context.Context, id string) error {
	const query = `DELETE FROM queries WHERE id = $1`
	tag, err := r.pool.Exec(ctx, query, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrQueryNotFound
	}
	return nil
}

func scanQuery(row pgx.Row) (*domain.Query, error) {
	var q domain.Query
	var category, status string
	var patientID *string

	if err := row.Scan(
		&q.ID,
		&q.Title,
		&q.Message,
		&category,
		&status,
		&q.CreatedBy,
		&patientID,
		&q.CreatedAt,
		&q.UpdatedAt,
	); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrQueryNotFound
		}
		return nil, err
	}

	q.Category = domain.Role(category)
	q.Status = domain.QueryStatus(status)
	if patientID != nil {
		q.PatientID = *patientID
	}
	return &q, nil
}
