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

type entryRepository struct {
	pool *pgxpool.Pool
}

// NewCompletionEntryRepository returns a Postgres-backed implementation of
// CompletionEntryRepository. The table has no UPDATE or DELETE paths; the
// ledger only ever grows.
func NewCompletionEntryRepository(pool *pgxpool.Pool) repository.CompletionEntryRepository {
	return &entryRepository{pool: pool}
}

func (r *entryRepository) Create(ctx context.Context, entry *domain.CompletionEntry) (*domain.CompletionEntry, error) {
	if entry == nil {
		return nil, domain.ErrInvalidPayload
	}
	if entry.ID == "" {
		entry.ID = uuid.NewString()
	}

	const query = `
	INSERT INTO completion_entries (id, owner_task_id, patient_id, nurse_id, note, is_late, expected_completion_time, submitted_at)
	VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
	`
	_, err := r.pool.Exec(ctx, query,
		entry.ID,
		entry.OwnerTaskID,
		entry.PatientID,
		entry.NurseID,
		entry.Note,
		entry.IsLate,
		nullIfEmpty(entry.ExpectedCompletionTime),
		entry.SubmittedAt,
	)
	if err != nil {
		return nil, err
	}
	return entry, nil
}

// List filters by owner transitively through patients; entries carry no owner
// column of their own.
func (r *entryRepository) List(ctx context.Context, filter repository.EntryFilter) ([]domain.CompletionEntry, error) {
	const query = `
	SELECT e.id, e.owner_task_id, e.patient_id, e.nurse_id, e.note, e.is_late, e.expected_completion_time, e.submitted_at
	FROM completion_entries e
	JOIN patients p ON p.id = e.patient_id
	WHERE ($1 = '' OR e.patient_id = $1)
	  AND ($2 = '' OR e.nurse_id = $2)
	  AND ($3 = '' OR p.owner_id = $3)
	  AND ($4 = '' OR e.owner_task_id = $4)
	  AND ($5::timestamptz IS NULL OR e.submitted_at >= $5)
	  AND ($6::timestamptz IS NULL OR e.submitted_at < $6)
	ORDER BY e.submitted_at
	LIMIT $7
	`
	rows, err := r.pool.Query(ctx, query,
		filter.PatientID,
		filter.NurseID,
		filter.OwnerID,
		filter.TemplateID,
		nullTime(filter.From),
		nullTime(filter.To),
		clampLimit(filter.Limit),
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var entries []domain.CompletionEntry
	for rows.Next() {
		entry, err := scanEntry(rows)
		if err != nil {
			return nil, err
		}
		entries = append(entries, *entry)
	}
	return entries, rows.Err()
}

func scanEntry(row pgx.Row) (*domain.CompletionEntry, error) {
	var entry domain.CompletionEntry
	var expected *string

	if err := row.Scan(
		&entry.ID,
		&entry.OwnerTaskID,
		&entry.PatientID,
		&entry.NurseID,
		&entry.Note,
		&entry.IsLate,
		&expected,
		&entry.SubmittedAt,
	); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrEntryNotFound
		}
		return nil, err
	}

	if expected != nil {
		entry.ExpectedCompletionTime = *expected
	}
	return &entry, nil
}
