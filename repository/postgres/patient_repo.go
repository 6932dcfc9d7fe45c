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

type patientRepository struct {
	pool *pgxpool.Pool
}

// NewPatientRepository returns a Postgres-backed implementation of PatientRepository.
func NewPatientRepository(pool *pgxpool.Pool) repository.PatientRepository {
	return &patientRepository{pool: pool}
}

const patientColumns = `id, owner_id, name, address, notes, active, created_at, updated_at`

func (r *patientRepository) GetByID(ctx context.Context, id string) (*domain.Patient, error) {
	const query = `SELECT ` + patientColumns + ` FROM patients WHERE id = $1`
	return scanPatient(r.pool.QueryRow(ctx, query, id))
}

func (r *patientRepository) ListByOwner(ctx context.Context, ownerID string, activeOnly bool) ([]domain.Patient, error) {
	const query = `
	SELECT ` + patientColumns + `
	FROM patients
	WHERE owner_id = $1
	  AND ($2 = false OR active = true)
	ORDER BY created_at
	`
	rows, err := r.pool.Query(ctx, query, ownerID, activeOnly)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return collectPatients(rows)
}

func (r *patientRepository) ListForNurse(ctx context.Context, nurseID string) ([]domain.Patient, error) {
	const query = `
	SELECT p.id, p.owner_id, p.name, p.address, p.notes, p.active, p.created_at, p.updated_at
	FROM patients p
	JOIN assignments a ON a.patient_id = p.id
	WHERE a.nurse_id = $1
	  AND a.active = true
	  AND p.active = true
	ORDER BY p.created_at
	`
	rows, err := r.pool.Query(ctx, query, nurseID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return collectPatients(rows)
}

func (r *patientRepository) Create(ctx context.Context, patient *domain.Patient) (*domain.Patient, error) {
	if patient == nil {
		return nil, domain.ErrInvalidPayload
	}
	if patient.ID == "" {
		patient.ID = uuid.NewString()
	}

	const query = `
	INSERT INTO patients (id, owner_id, name, address, notes, active)
	VALUES ($1, $2, $3, $4, $5, $6)
	RETURNING created_at, updated_at
	`
	if err := r.pool.QueryRow(ctx, query,
		patient.ID,
		patient.OwnerID,
		patient.Name,
		nullIfEmpty(patient.Address),
		nullIfEmpty(patient.Notes),
		patient.Active,
	).Scan(&patient.CreatedAt, &patient.UpdatedAt); err != nil {
		return nil, err
	}
	return patient, nil
}

func (r *patientRepository) Update(ctx context.Context, patient *domain.Patient) error {
	if patient == nil {
		return domain.ErrInvalidPayload
	}

	const query = `
	UPDATE patients
	SET name = $2,
		address = $3,
		notes = $4,
		active = $5,
		updated_at = NOW()
	WHERE id = $1
	RETURNING updated_at
	`
	err := r.pool.QueryRow(ctx, query,
		patient.ID,
		patient.Name,
		nullIfEmpty(patient.Address),
		nullIfEmpty(patient.Notes),
		patient.Active,
	).Scan(&patient.UpdatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return domain.ErrPatientNotFound
	}
	return err
}

func (r *patientRepository) Deactivate(ctx context.Context, id string) error {
	const query = `UPDATE patients SET active = false, updated_at = NOW() WHERE id = $1`
	tag, err := r.pool.Exec(ctx, query, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrPatientNotFound
	}
	return nil
}

func scanPatient(row pgx.Row) (*domain.Patient, error) {
	var patient domain.Patient
	var address, notes *string

	if err := row.Scan(
		&patient.ID,
		&patient.OwnerID,
		&patient.Name,
		&address,
		&notes,
		&patient.Active,
		&patient.CreatedAt,
		&patient.UpdatedAt,
	); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrPatientNotFound
		}
		return nil, err
	}

	if address != nil {
		patient.Address = *address
	}
	if notes != nil {
		patient.Notes = *notes
	}
	return &patient, nil
}

func collectPatients(rows pgx.Rows) ([]domain.Patient, error) {
	var patients []domain.Patient
	for rows.Next() {
		patient, err := scanPatient(rows)
		if err != nil {
			return nil, err
		}
		patients = append(patients, *patient)
	}
	return patients, rows.Err()
}
