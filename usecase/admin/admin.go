package admin

import (
	"context"
	"strings"

	"go.uber.org/zap"

	"github.com/healthcare24/backend/domain"
	"github.com/healthcare24/backend/repository"
	"github.com/healthcare24/backend/usecase/auth"
)

// UseCase covers platform administration: account provisioning, nurse
// assignments and the shared template library.
type UseCase struct {
	users       repository.UserRepository
	patients    repository.PatientRepository
	assignments repository.AssignmentRepository
	library     repository.LibraryRepository
	logger      *zap.Logger
}

func New(
	users repository.UserRepository,
	patients repository.PatientRepository,
	assignments repository.AssignmentRepository,
	library repository.LibraryRepository,
	logger *zap.Logger,
) *UseCase {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &UseCase{
		users:       users,
		patients:    patients,
		assignments: assignments,
		library:     library,
		logger:      logger,
	}
}

// CreateUserInput provisions an owner or nurse account.
type CreateUserInput struct {
	Email    string
	Name     string
	Password string
	Phone    string
	Timezone string
}

func (uc *UseCase) CreateUser(ctx context.Context, role domain.Role, input CreateUserInput) (*domain.User, error) {
	if role != domain.RoleOwner && role != domain.RoleNurse {
		return nil, domain.NewError(domain.ErrCodeInvalid, "role must be owner or nurse")
	}
	email := strings.TrimSpace(strings.ToLower(input.Email))
	name := strings.TrimSpace(input.Name)
	if email == "" || name == "" {
		return nil, domain.NewError(domain.ErrCodeInvalid, "email and name are required")
	}

	hash, err := auth.HashPassword(input.Password)
	if err != nil {
		return nil, err
	}

	user := &domain.User{
		Email:        email,
		Name:         name,
		Role:         role,
		Phone:        strings.TrimSpace(input.Phone),
		Timezone:     strings.TrimSpace(input.Timezone),
		PasswordHash: hash,
		Active:       true,
	}
	created, err := uc.users.Create(ctx, user)
	if err != nil {
		return nil, err
	}

	uc.logger.Info("account provisioned",
		zap.String("user_id", created.ID),
		zap.String("role", string(role)))
	return created, nil
}

func (uc *UseCase) ListUsers(ctx context.Context, role domain.Role) ([]domain.User, error) {
	if role != "" && !domain.KnownRole(role) {
		return nil, domain.NewError(domain.ErrCodeInvalid, "unknown role")
	}
	users, err := uc.users.List(ctx, repository.UserFilter{Role: role})
	if err != nil {
		return nil, err
	}
	if users == nil {
		users = []domain.User{}
	}
	return users, nil
}

// AssignNurse links a nurse to a patient. An earlier active assignment of the
// same nurse to the same patient is retired first so repeated assignments do
// not pile up; other nurses' assignments are left alone.
func (uc *UseCase) AssignNurse(ctx context.Context, adminID, nurseID, patientID string) (*domain.Assignment, error) {
	nurse, err := uc.users.GetByID(ctx, nurseID)
	if err != nil {
		return nil, err
	}
	if nurse.Role != domain.RoleNurse {
		return nil, domain.NewError(domain.ErrCodeInvalid, "user is not a nurse")
	}
	if !nurse.IsActive() {
		return nil, domain.NewError(domain.ErrCodeInvalid, "nurse account is disabled")
	}

	if _, err := uc.patients.GetByID(ctx, patientID); err != nil {
		return nil, err
	}

	if err := uc.assignments.Deactivate(ctx, nurseID, patientID); err != nil {
		return nil, err
	}

	assignment := &domain.Assignment{
		NurseID:    nurseID,
		PatientID:  patientID,
		AssignedBy: adminID,
		Active:     true,
	}
	created, err := uc.assignments.Create(ctx, assignment)
	if err != nil {
		return nil, err
	}

	uc.logger.Info("nurse assigned",
		zap.String("nurse_id", nurseID),
		zap.String("patient_id", patientID))
	return created, nil
}

func (uc *UseCase) ListAssignments(ctx context.Context, filter repository.AssignmentFilter) ([]domain.Assignment, error) {
	assignments, err := uc.assignments.List(ctx, filter)
	if err != nil {
		return nil, err
	}
	if assignments == nil {
		assignments = []domain.Assignment{}
	}
	return assignments, nil
}

// SeedLibrary installs the default template library. Names already present
// are skipped, so reseeding is harmless.
func (uc *UseCase) SeedLibrary(ctx context.Context) (int, error) {
	return uc.library.Seed(ctx, defaultLibrary)
}

func (uc *UseCase) ListLibrary(ctx context.Context) ([]domain.LibraryTemplate, error) {
	templates, err := uc.library.List(ctx)
	if err != nil {
		return nil, err
	}
	if templates == nil {
		templates = []domain.LibraryTemplate{}
	}
	return templates, nil
}

var defaultLibrary = []domain.LibraryTemplate{
	{Name: "Morning Medication", Description: "Administer prescribed morning medication", ScheduledTime: "08:00"},
	{Name: "Blood Pressure Check", Description: "Measure and record blood pressure", ScheduledTime: "09:00"},
	{Name: "Lunch Assistance", Description: "Assist with lunch and record intake", ScheduledTime: "12:30"},
	{Name: "Afternoon Medication", Description: "Administer prescribed afternoon medication", ScheduledTime: "14:00"},
	{Name: "Mobility Exercise", Description: "Guided mobility and stretching session", ScheduledTime: "16:00"},
	{Name: "Evening Medication", Description: "Administer prescribed evening medication", ScheduledTime: "20:00"},
	{Name: "Wellness Check", Description: "General wellbeing and symptom check"},
	{Name: "Hydration Reminder", Description: "Ensure adequate fluid intake through the day"},
}
