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

type libraryRepository struct {
	pool *pgxpool.Pool
}

// NewLibraryRepository returns a Postgres-backed implementation of LibraryRepository.
func NewLibraryRepository(pool *pgxpool.Pool) repository.LibraryRepository {
	return &libraryRepository{pool: pool}
}

func (r *libraryRepository) GetByID(ctx context.Context, id string) (*domain.LibraryTemplate, error) {
	const query = `
	SELECT id, name, description, scheduled_time, created_at
	FROM template_library
	WHERE id = $1
	`
	return scanLibraryTemplate(r.pool.QueryRow(ctx, query, id))
}

func (r *libraryRepository) List(ctx context.Context) ([]domain.LibraryTemplate, error) {
	const query = `
	SELECT id, name, description, scheduled_time, created_at
	FROM template_library
	ORDER BY name
	`
	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var templates []domain.LibraryTemplate
	for rows.Next() {
		template, err := scanLibraryTemplate(rows)
		if err != nil {
			return nil, err
		}
		templates = append(templates, *template)
	}
	return templates, rows.Err()
}

func (r *libraryRepository) Seed(ctx context.Context, templates []domain.LibraryTemplate) (int, error) {
	const query = `
	INSERT INTO template_library (id, name, description, scheduled_time)
	VALUES ($1, $2, $3, $4)
	ON CONFLICT (name) DO NOTHING
	`
	inserted := 0
	for _, template := range templates {
		id := template.ID
		if id == "" {
			id = uuid.NewString()
		}
		tag, err := r.pool.Exec(ctx, query, id, template.Name, nullIfEmpty(template.Description), nullIfEmpty(template.ScheduledTime))
		if err != nil {
			return inserted, err
		}
		inserted += int(tag.RowsAffected())
	}
	return inserted, nil
}

func scanLibraryTemplate(row pgx.Row) (*domain.LibraryTemplate, error) {
	var template domain.LibraryTemplate
	var description, scheduledTime *string

	if err := row.Scan(&template.ID, &template.Name, &description, &scheduledTime, &template.CreatedAt); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrTemplateNotFound
		}
		return nil, err
	}

	if description != nil {
		template.Description = *description
	}
	if scheduledTime != nil {
		template.ScheduledTime = *scheduledTime
	}
	return &template, nil
}
