package repository

import (
	"context"

	"github.com/healthcare24/backend/domain"
)

type AssignmentFilter struct {
	NurseID   string
	PatientID string
	Active    *bool
}

type AssignmentRepository interface {
	Create(ctx context.Context, assignment *domain.Assignment) (*domain.Assignment, error)
	List(ctx context.Context, filter AssignmentFilter) ([]domain.Assignment, error)
	// ActiveExists reports whether the nurse currently holds an active
	// assignment for the patient. Gate for completion submissions.
	ActiveExists(ctx context.Context, nurseID, patientID string) (bool, error)
	// Deactivate retires any active assignment of this nurse to this patient.
	Deactivate(ctx context.Context, nurseID, patientID string) error
}
