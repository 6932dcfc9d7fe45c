package admin

import (
	"context"
	"testing"

	"github.com/google/uuid"

	"github.com/healthcare24/backend/domain"
	"github.com/healthcare24/backend/repository"
)

type mockUserRepo struct {
	users map[string]*domain.User
}

func (m *mockUserRepo) GetByID(_ context.Context, id string) (*domain.User, error) {
	u, ok := m.users[id]
	if !ok {
		return nil, domain.ErrUserNotFound
	}
	return u, nil
}

func (m *mockUserRepo) GetByEmail(_ context.Context, email string) (*domain.User, error) {
	for _, u := range m.users {
		if u.Email == email {
			return u, nil
		}
	}
	return nil, domain.ErrUserNotFound
}

func (m *mockUserRepo) List(_ context.Context, filter repository.UserFilter) ([]domain.User, error) {
	var out []domain.User
	for _, u := range m.users {
		if filter.Role != "" && u.Role != filter.Role {
			continue
		}
		out = append(out, *u)
	}
	return out, nil
}

func (m *mockUserRepo) Create(_ context.Context, u *domain.User) (*domain.User, error) {
	for _, existing := range m.users {
		if existing.Email == u.Email {
			return nil, domain.ErrEmailTaken
		}
	}
	if u.ID == "" {
		u.ID = uuid.NewString()
	}
	copied := *u
	m.users[u.ID] = &copied
	return u, nil
}

func (m *mockUserRepo) Update(context.Context, *domain.User) error { return nil }

type mockPatientRepo struct {
	patients map[string]*domain.Patient
}

func (m *mockPatientRepo) GetByID(_ context.Context, id string) (*domain.Patient, error) {
	p, ok := m.patients[id]
	if !ok {
		return nil, domain.ErrPatientNotFound
	}
	return p, nil
}

func (m *mockPatientRepo) ListByOwner(context.Context, string, bool) ([]domain.Patient, error) {
	return nil, nil
}

func (m *mockPatientRepo) ListForNurse(context.Context, string) ([]domain.Patient, error) {
	return nil, nil
}

func (m *mockPatientRepo) Create(_ context.Context, p *domain.Patient) (*domain.Patient, error) {
	return p, nil
}

func (m *mockPatientRepo) Update(context.Context, *domain.Patient) error { return nil }

func (m *mockPatientRepo) Deactivate(context.Context, string) error { return nil }

type mockAssignmentRepo struct {
	assignments []*domain.Assignment
}

func (m *mockAssignmentRepo) Create(_ context.Context, a *domain.Assignment) (*domain.Assignment, error) {
	if a.ID == "" {
		a.ID = uuid.NewString()
	}
	copied := *a
	m.assignments = append(m.assignments, &copied)
	return a, nil
}

func (m *mockAssignmentRepo) List(_ context.Context, filter repository.AssignmentFilter) ([]domain.Assignment, error) {
	var out []domain.Assignment
	for _, a := range m.assignments {
		if filter.NurseID != "" && a.NurseID != filter.NurseID {
			continue
		}
		if filter.PatientID != "" && a.PatientID != filter.PatientID {
			continue
		}
		if filter.Active != nil && a.Active != *filter.Active {
			continue
		}
		out = append(out, *a)
	}
	return out, nil
}

func (m *mockAssignmentRepo) ActiveExists(_ context.Context, nurseID, patientID string) (bool, error) {
	for _, a := range m.assignments {
		if a.Active && a.NurseID == nurseID && a.PatientID == patientID {
			return true, nil
		}
	}
	return false, nil
}

func (m *mockAssignmentRepo) Deactivate(_ context.Context, nurseID, patientID string) error {
	for _, a := range m.assignments {
		if a.NurseID == nurseID && a.PatientID == patientID {
			a.Active = false
		}
	}
	return nil
}

type mockLibraryRepo struct {
	names map[string]bool
}

func (m *mockLibraryRepo) GetByID(context.Context, string) (*domain.LibraryTemplate, error) {
	return nil, domain.ErrTemplateNotFound
}

func (m *mockLibraryRepo) List(context.Context) ([]domain.LibraryTemplate, error) {
	return nil, nil
}

func (m *mockLibraryRepo) Seed(_ context.Context, templates []domain.LibraryTemplate) (int, error) {
	added := 0
	for _, t := range templates {
		if m.names[t.Name] {
			continue
		}
		m.names[t.Name] = true
		added++
	}
	return added, nil
}

func newFixture() (*UseCase, *mockUserRepo, *mockPatientRepo, *mockAssignmentRepo, *mockLibraryRepo) {
	users := &mockUserRepo{users: make(map[string]*domain.User)}
	patients := &mockPatientRepo{patients: make(map[string]*domain.Patient)}
	assignments := &mockAssignmentRepo{}
	library := &mockLibraryRepo{names: make(map[string]bool)}
	return New(users, patients, assignments, library, nil), users, patients, assignments, library
}

func TestCreateUserRoleGate(t *testing.T) {
	uc, _, _, _, _ := newFixture()

	if _, err := uc.CreateUser(context.Background(), domain.RoleAdmin, CreateUserInput{Email: "a@x.io", Name: "A", Password: "longenough"}); !domain.IsDomainError(err, domain.ErrCodeInvalid) {
		t.Fatalf("admin role: got %v, want INVALID", err)
	}

	owner, err := uc.CreateUser(context.Background(), domain.RoleOwner, CreateUserInput{Email: "Owner@X.io", Name: "Owner", Password: "longenough"})
	if err != nil {
		t.Fatalf("create owner: %v", err)
	}
	if owner.Email != "owner@x.io" {
		t.Fatalf("email not normalized: %q", owner.Email)
	}
	if !owner.Active {
		t.Fatal("new accounts start active")
	}
	if owner.PasswordHash == "" || owner.PasswordHash == "longenough" {
		t.Fatal("password must be stored hashed")
	}
}

func TestCreateUserDuplicateEmail(t *testing.T) {
	uc, _, _, _, _ := newFixture()

	if _, err := uc.CreateUser(context.Background(), domain.RoleNurse, CreateUserInput{Email: "n@x.io", Name: "N", Password: "longenough"}); err != nil {
		t.Fatalf("first create: %v", err)
	}
	_, err := uc.CreateUser(context.Background(), domain.RoleNurse, CreateUserInput{Email: "n@x.io", Name: "N2", Password: "longenough"})
	if !domain.IsDomainError(err, domain.ErrCodeConflict) {
		t.Fatalf("duplicate: got %v, want CONFLICT", err)
	}
}

func TestAssignNurseChecks(t *testing.T) {
	uc, users, patients, _, _ := newFixture()
	users.users["owner-1"] = &domain.User{ID: "owner-1", Role: domain.RoleOwner, Active: true}
	users.users["nurse-1"] = &domain.User{ID: "nurse-1", Role: domain.RoleNurse, Active: true}
	users.users["nurse-2"] = &domain.User{ID: "nurse-2", Role: domain.RoleNurse, Active: false}
	patients.patients["p-1"] = &domain.Patient{ID: "p-1", OwnerID: "owner-1", Active: true}

	if _, err := uc.AssignNurse(context.Background(), "admin-1", "owner-1", "p-1"); !domain.IsDomainError(err, domain.ErrCodeInvalid) {
		t.Fatalf("non-nurse: got %v, want INVALID", err)
	}
	if _, err := uc.AssignNurse(context.Background(), "admin-1", "nurse-2", "p-1"); !domain.IsDomainError(err, domain.ErrCodeInvalid) {
		t.Fatalf("disabled nurse: got %v, want INVALID", err)
	}
	if _, err := uc.AssignNurse(context.Background(), "admin-1", "nurse-1", "missing"); !domain.IsDomainError(err, domain.ErrCodeNotFound) {
		t.Fatalf("missing patient: got %v, want NOT_FOUND", err)
	}

	assignment, err := uc.AssignNurse(context.Background(), "admin-1", "nurse-1", "p-1")
	if err != nil {
		t.Fatalf("assign: %v", err)
	}
	if !assignment.Active || assignment.AssignedBy != "admin-1" {
		t.Fatalf("unexpected assignment: %+v", assignment)
	}
}

func TestAssignNurseRetiresPriorAssignment(t *testing.T) {
	uc, users, patients, assignments, _ := newFixture()
	users.users["nurse-1"] = &domain.User{ID: "nurse-1", Role: domain.RoleNurse, Active: true}
	patients.patients["p-1"] = &domain.Patient{ID: "p-1", Active: true}

	if _, err := uc.AssignNurse(context.Background(), "admin-1", "nurse-1", "p-1"); err != nil {
		t.Fatalf("first assign: %v", err)
	}
	if _, err := uc.AssignNurse(context.Background(), "admin-1", "nurse-1", "p-1"); err != nil {
		t.Fatalf("second assign: %v", err)
	}

	active := 0
	for _, a := range assignments.assignments {
		if a.Active {
			active++
		}
	}
	if active != 1 {
		t.Fatalf("active assignments = %d, want exactly 1", active)
	}
}

func TestSeedLibraryIdempotent(t *testing.T) {
	uc, _, _, _, _ := newFixture()

	first, err := uc.SeedLibrary(context.Background())
	if err != nil {
		t.Fatalf("seed: %v", err)
	}
	if first == 0 {
		t.Fatal("first seed should install defaults")
	}

	second, err := uc.SeedLibrary(context.Background())
	if err != nil {
		t.Fatalf("reseed: %v", err)
	}
	if second != 0 {
		t.Fatalf("reseed added %d, want 0", second)
	}
}
