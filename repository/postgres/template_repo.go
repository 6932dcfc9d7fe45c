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

type templateRepository struct {
	pool *pgxpool.Pool
}

// NewTaskTemplateRepository returns a Postgres-backed implementation of TaskTemplateRepository.
func NewTaskTemplateRepository(pool *pgxpool.Pool) repository.TaskTemplateRepository {
	return &templateRepository{pool: pool}
}

const templateColumns = `id, owner_id, name, description, scheduled_time, display_order, active, created_at, updated_at`

func (r *templateRepository) GetByID(ctx context.Context, id string) (*domain.TaskTemplate, error) {
	const query = `SELECT ` + templateColumns + ` FROM task_templates WHERE id = $1`
	return scanTemplate(r.pool.QueryRow(ctx, query, id))
}

func (r *templateRepository) List(ctx context.Context, ownerID string, activeOnly bool) ([]domain.TaskTemplate, error) {
	const query = `
	SELECT ` + templateColumns + `
	FROM task_templates
	WHERE owner_id = $1
	  AND ($2 = false OR active = true)
	ORDER BY display_order, created_at
	`
	rows, err := r.pool.Query(ctx, query, ownerID, activeOnly)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var templates []domain.TaskTemplate
	for rows.Next() {
		template, err := scanTemplate(rows)
		if err != nil {
			return nil, err
		}
		templates = append(templates, *template)
	}
	return templates, rows.Err()
}

func (r *templateRepository) Create(ctx context.Context, template *domain.TaskTemplate) (*domain.TaskTemplate, error) {
	if template == nil {
		return nil, domain.ErrInvalidPayload
	}
	if template.ID == "" {
		template.ID = uuid.NewString()
	}

	const query = `
	INSERT INTO task_templates (id, owner_id, name, description, scheduled_time, display_order, active)
	VALUES ($1, $2, $3, $4, $5, $6, $7)
	RETURNING created_at, updated_at
	`
	if err := r.pool.QueryRow(ctx, query,
		template.ID,
		template.OwnerID,
		template.Name,
		nullIfEmpty(template.Description),
		nullIfEmpty(template.ScheduledTime),
		template.Order,
		template.Active,
	).Scan(&template.CreatedAt, &template.UpdatedAt); err != nil {
		return nil, err
	}
	return template, nil
}

func (r *templateRepository) Update(ctx context.Context, template *domain.TaskTemplate) error {
	if template == nil {
		return domain.ErrInvalidPayload
	}

	const query = `
	UPDATE task_templates
	SET name = $2,
		description = $3,
		scheduled_time = $4,
		updated_at = NOW()
	WHERE id = $1
	RETURNING updated_at
	`
	err := r.pool.QueryRow(ctx, query,
		template.ID,
		template.Name,
		nullIfEmpty(template.Description),
		nullIfEmpty(template.ScheduledTime),
	).Scan(&template.UpdatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return domain.ErrTemplateNotFound
	}
	return err
}

// Reorder applies the whole batch inside one transaction so a failing update
// rolls every prior one back.
func (r *templateRepository) Reorder(ctx context.Context, ownerID string, updates []domain.OrderUpdate) error {
	if len(updates) == 0 {
		return nil
	}

	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return err
	}
	defer tx.Rollback(ctx)

	const query = `
	UPDATE task_templates
	SET display_order = $3, updated_at = NOW()
	WHERE id = $1 AND owner_id = $2
	`
	for _, update := range updates {
		tag, err := tx.Exec(ctx, query, update.ID, ownerID, update.Order)
		if err != nil {
			return err
		}
		if tag.RowsAffected() == 0 {
			return domain.ErrTemplateNotFound
		}
	}
	return tx.Commit(ctx)
}

func (r *templateRepository) Delete(ctx context.Context, id string) error {
	const query = `DELETE FROM task_templates WHERE id = $1`
	tag, err := r.pool.Exec(ctx, query, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrTemplateNotFound
	}
	return nil
}

func (r *templateRepository) Deactivate(ctx context.Context, id string) error {
	const query = `UPDATE task_templates SET active = false, updated_at = NOW() WHERE id = $1`
	tag, err := r.pool.Exec(ctx, query, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrTemplateNotFound
	}
	return nil
}

func (r *templateRepository) HasEntries(ctx context.Context, id string) (bool, error) {
	const query = `SELECT EXISTS (SELECT 1 FROM completion_entries WHERE owner_task_id = $1)`
	var exists bool
	if err := r.pool.QueryRow(ctx, query, id).Scan(&exists); err != nil {
		return false, err
	}
	return exists, nil
}

func scanTemplate(row pgx.Row) (*domain.TaskTemplate, error) {
	var template domain.TaskTemplate
	var description, scheduledTime *string

	if err := row.Scan(
		&template.ID,
		&template.OwnerID,
		&template.Name,
		&description,
		&scheduledTime,
		&template.Order,
		&template.Active,
		&template.CreatedAt,
		&template.UpdatedAt,
	); err != nil {
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
