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

type assignmentRepository struct {
	pool *pgxpool.Pool
}

// NewAssignmentRepository returns a Postgres-backed implementation of AssignmentRepository.
func NewAssignmentRepository(pool *pgxpool.Pool) repository.AssignmentRepository {
	return &assignmentRepository{pool: pool}
}

func (r *assignmentRepository) Create(ctx context.Context, assignment *domain.Assignment) (*domain.Assignment, error) {
	if assignment == nil {
		return nil, domain.ErrInvalidPayload
	}
	if assignment.ID == "" {
		assignment.ID = uuid.NewString()
	}

	const query = `
	INSERT INTO assignments (id, nurse_id, patient_id, assigned_by, active)
	VALUES ($1, $2, $3, $4, $5)
	RETURNING created_at, updated_at
	`
	if err := r.pool.QueryRow(ctx, query,
		assignment.ID,
		assignment.NurseID,
		assignment.PatientID,
		assignment.AssignedBy,
		assignment.Active,
	).Scan(&assignment.CreatedAt, &assignment.UpdatedAt); err != nil {
		return nil, err
	}
	return assignment, nil
}

func (r *assignmentRepository) List(ctx context.Context, filter repository.AssignmentFilter) ([]domain.Assignment, error) {
	const query = `
	SELECT id, nurse_id, patient_id, assigned_by, active, created_at, updated_at
	FROM assignments
	WHERE ($1 = '' OR nurse_id = $1)
	  AND ($2 = '' OR patient_id = $2)
	  AND ($3::boolean IS NULL OR active = $3)
	ORDER BY created_at DESC
	`
	rows, err := r.pool.Query(ctx, query, filter.NurseID, filter.PatientID, filter.Active)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var assignments []domain.Assignment
	for rows.Next() {
		var a domain.Assignment
		if err := rows.Scan(&a.ID, &a.NurseID, &a.PatientID, &a.AssignedBy, &a.Active, &a.CreatedAt, &a.UpdatedAt); err != nil {
			return nil, err
		}
		assignments = append(assignments, a)
	}
	return assignments, rows.Err()
}

func (r *assignmentRepository) ActiveExists(ctx context.Context, nurseID, patientID string) (bool, error) {
	const query = `
	SELECT EXISTS (
		SELECT 1 FROM assignments
		WHERE nurse_id = $1 AND patient_id = $2 AND active = true
	)
	`
	var exists bool
	err := r.pool.QueryRow(ctx, query, nurseID, patientID).Scan(&exists)
	if err != nil && !errors.Is(err, pgx.ErrNoRows) {
		return false, err
	}
	return exists, nil
}

func (r *assignmentRepository) Deactivate(ctx context.Context, nurseID, patientID string) error {
	const query = `
	UPDATE assignments
	SET active = false, updated_at = NOW()
	WHERE nurse_id = $1 AND patient_id = $2 AND active = true
	`
	_, err := r.pool.Exec(ctx, query, nurseID, patientID)
	return err
}
