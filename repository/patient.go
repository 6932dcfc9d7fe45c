package repository

import (
	"context"

	"github.com/healthcare24/backend/domain"
)

type PatientRepository interface {
	GetByID(ctx context.Context, id string) (*domain.Patient, error)
	ListByOwner(ctx context.Context, ownerID string, activeOnly bool) ([]domain.Patient, error)
	// ListForNurse returns active patients the nurse holds an active assignment for.
	ListForNurse(ctx context.Context, nurseID string) ([]domain.Patient, error)
	Create(ctx context.Context, patient *domain.Patient) (*domain.Patient, error)
	Update(ctx context.Context, patient *domain.Patient) error
	// Deactivate soft-deletes; historical completion entries keep referencing the row.
	Deactivate(ctx context.Context, id string) error
}
