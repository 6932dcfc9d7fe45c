package patients

import (
	"context"
	"strings"

	"go.uber.org/zap"

	"github.com/healthcare24/backend/domain"
	"github.com/healthcare24/backend/repository"
)

// UseCase covers patient records: owner-side CRUD and the nurse's read view
// over assigned patients.
type UseCase struct {
	patients    repository.PatientRepository
	assignments repository.AssignmentRepository
	logger      *zap.Logger
}

func New(patients repository.PatientRepository, assignments repository.AssignmentRepository, logger *zap.Logger) *UseCase {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &UseCase{
		patients:    patients,
		assignments: assignments,
		logger:      logger,
	}
}

type Input struct {
	Name    string
	Address string
	Notes   string
}

func (uc *UseCase) Create(ctx context.Context, ownerID string, input Input) (*domain.Patient, error) {
	name := strings.TrimSpace(input.Name)
	if name == "" {
		return nil, domain.NewError(domain.ErrCodeInvalid, "patient name is required")
	}
	patient := &domain.Patient{
		OwnerID: ownerID,
		Name:    name,
		Address: strings.TrimSpace(input.Address),
		Notes:   strings.TrimSpace(input.Notes),
		Active:  true,
	}
	return uc.patients.Create(ctx, patient)
}

func (uc *UseCase) Get(ctx context.Context, ownerID, patientID string) (*domain.Patient, error) {
	return uc.owned(ctx, ownerID, patientID)
}

func (uc *UseCase) List(ctx context.Context, ownerID string, activeOnly bool) ([]domain.Patient, error) {
	patients, err := uc.patients.ListByOwner(ctx, ownerID, activeOnly)
	if err != nil {
		return nil, err
	}
	if patients == nil {
		patients = []domain.Patient{}
	}
	return patients, nil
}

type UpdateInput struct {
	Name    *string
	Address *string
	Notes   *string
}

func (uc *UseCase) Update(ctx context.Context, ownerID, patientID string, input UpdateInput) (*domain.Patient, error) {
	patient, err := uc.owned(ctx, ownerID, patientID)
	if err != nil {
		return nil, err
	}

	if input.Name != nil {
		name := strings.TrimSpace(*input.Name)
		if name == "" {
			return nil, domain.NewError(domain.ErrCodeInvalid, "patient name is required")
		}
		patient.Name = name
	}
	if input.Address != nil {
		patient.Address = strings.TrimSpace(*input.Address)
	}
	if input.Notes != nil {
		patient.Notes = strings.TrimSpace(*input.Notes)
	}

	if err := uc.patients.Update(ctx, patient); err != nil {
		return nil, err
	}
	return patient, nil
}

// Delete deactivates rather than removes; completion entries keep their
// patient reference.
func (uc *UseCase) Delete(ctx context.Context, ownerID, patientID string) error {
	if _, err := uc.owned(ctx, ownerID, patientID); err != nil {
		return err
	}
	return uc.patients.Deactivate(ctx, patientID)
}

// ListForNurse returns the active patients the nurse is assigned to.
func (uc *UseCase) ListForNurse(ctx context.Context, nurseID string) ([]domain.Patient, error) {
	patients, err := uc.patients.ListForNurse(ctx, nurseID)
	if err != nil {
		return nil, err
	}
	if patients == nil {
		patients = []domain.Patient{}
	}
	return patients, nil
}

// GetForNurse returns one patient, gated on an active assignment.
func (uc *UseCase) GetForNurse(ctx context.Context, nurseID, patientID string) (*domain.Patient, error) {
	assigned, err := uc.assignments.ActiveExists(ctx, nurseID, patientID)
	if err != nil {
		return nil, err
	}
	if !assigned {
		return nil, domain.ErrNotAssigned
	}
	return uc.patients.GetByID(ctx, patientID)
}

// owned rejects cross-tenant patient access with NOT_FOUND.
func (uc *UseCase) owned(ctx context.Context, ownerID, patientID string) (*domain.Patient, error) {
	patient, err := uc.patients.GetByID(ctx, patientID)
	if err != nil {
		return nil, err
	}
	if patient.OwnerID != ownerID {
		return nil, domain.ErrPatientNotFound
	}
	return patient, nil
}
