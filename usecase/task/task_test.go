package task

import (
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"

	"github.com/healthcare24/backend/domain"
	"github.com/healthcare24/backend/repository"
)

type mockTemplateRepo struct {
	templates  map[string]*domain.TaskTemplate
	reorderErr error
}

func newMockTemplateRepo() *mockTemplateRepo {
	return &mockTemplateRepo{templates: make(map[string]*domain.TaskTemplate)}
}

func (m *mockTemplateRepo) GetByID(_ context.Context, id string) (*domain.TaskTemplate, error) {
	t, ok := m.templates[id]
	if !ok {
		return nil, domain.ErrTemplateNotFound
	}
	copied := *t
	return &copied, nil
}

func (m *mockTemplateRepo) List(_ context.Context, ownerID string, activeOnly bool) ([]domain.TaskTemplate, error) {
	var out []domain.TaskTemplate
	for _, t := range m.templates {
		if t.OwnerID != ownerID {
			continue
		}
		if activeOnly && !t.Active {
			continue
		}
		out = append(out, *t)
	}
	return out, nil
}

func (m *mockTemplateRepo) Create(_ context.Context, template *domain.TaskTemplate) (*domain.TaskTemplate, error) {
	if template.ID == "" {
		template.ID = uuid.NewString()
	}
	copied := *template
	m.templates[template.ID] = &copied
	return template, nil
}

func (m *mockTemplateRepo) Update(_ context.Context, template *domain.TaskTemplate) error {
	if _, ok := m.templates[template.ID]; !ok {
		return domain.ErrTemplateNotFound
	}
	copied := *template
	m.templates[template.ID] = &copied
	return nil
}

func (m *mockTemplateRepo) Reorder(_ context.Context, ownerID string, updates []domain.OrderUpdate) error {
	if m.reorderErr != nil {
		return m.reorderErr
	}
	for _, u := range updates {
		t, ok := m.templates[u.ID]
		if !ok || t.OwnerID != ownerID {
			return domain.ErrTemplateNotFound
		}
	}
	for _, u := range updates {
		m.templates[u.ID].Order = u.Order
	}
	return nil
}

func (m *mockTemplateRepo) Delete(_ context.Context, id string) error {
	if _, ok := m.templates[id]; !ok {
		return domain.ErrTemplateNotFound
	}
	delete(m.templates, id)
	return nil
}

func (m *mockTemplateRepo) Deactivate(_ context.Context, id string) error {
	t, ok := m.templates[id]
	if !ok {
		return domain.ErrTemplateNotFound
	}
	t.Active = false
	return nil
}

func (m *mockTemplateRepo) HasEntries(context.Context, string) (bool, error) {
	return false, nil
}

type mockLibraryRepo struct {
	items map[string]*domain.LibraryTemplate
}

func (m *mockLibraryRepo) GetByID(_ context.Context, id string) (*domain.LibraryTemplate, error) {
	item, ok := m.items[id]
	if !ok {
		return nil, domain.ErrTemplateNotFound
	}
	return item, nil
}

func (m *mockLibraryRepo) List(context.Context) ([]domain.LibraryTemplate, error) {
	var out []domain.LibraryTemplate
	for _, item := range m.items {
		out = append(out, *item)
	}
	return out, nil
}

func (m *mockLibraryRepo) Seed(context.Context, []domain.LibraryTemplate) (int, error) {
	return 0, nil
}

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
	active map[string]bool // nurseID + "/" + patientID
}

func (m *mockAssignmentRepo) Create(_ context.Context, a *domain.Assignment) (*domain.Assignment, error) {
	return a, nil
}

func (m *mockAssignmentRepo) List(context.Context, repository.AssignmentFilter) ([]domain.Assignment, error) {
	return nil, nil
}

func (m *mockAssignmentRepo) ActiveExists(_ context.Context, nurseID, patientID string) (bool, error) {
	return m.active[nurseID+"/"+patientID], nil
}

func (m *mockAssignmentRepo) Deactivate(_ context.Context, nurseID, patientID string) error {
	delete(m.active, nurseID+"/"+patientID)
	return nil
}

func newUseCase(templates *mockTemplateRepo) (*UseCase, *mockPatientRepo, *mockAssignmentRepo) {
	patients := &mockPatientRepo{patients: make(map[string]*domain.Patient)}
	assignments := &mockAssignmentRepo{active: make(map[string]bool)}
	library := &mockLibraryRepo{items: make(map[string]*domain.LibraryTemplate)}
	uc := New(templates, library, patients, assignments, nil, nil)
	return uc, patients, assignments
}

func TestCreateTemplateAssignsNextOrder(t *testing.T) {
	repo := newMockTemplateRepo()
	uc, _, _ := newUseCase(repo)

	first, err := uc.CreateTemplate(context.Background(), "owner-1", CreateInput{Name: "Morning Medication", ScheduledTime: "08:00"})
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	if first.Order != 0 {
		t.Fatalf("first order = %d, want 0", first.Order)
	}

	second, err := uc.CreateTemplate(context.Background(), "owner-1", CreateInput{Name: "Lunch"})
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	if second.Order != 1 {
		t.Fatalf("second order = %d, want 1", second.Order)
	}
}

func TestCreateTemplateValidation(t *testing.T) {
	repo := newMockTemplateRepo()
	uc, _, _ := newUseCase(repo)

	if _, err := uc.CreateTemplate(context.Background(), "owner-1", CreateInput{Name: "   "}); !domain.IsDomainError(err, domain.ErrCodeInvalid) {
		t.Fatalf("blank name: got %v, want INVALID", err)
	}
	if _, err := uc.CreateTemplate(context.Background(), "owner-1", CreateInput{Name: "X", ScheduledTime: "8:00"}); !domain.IsDomainError(err, domain.ErrCodeInvalid) {
		t.Fatalf("malformed time: got %v, want INVALID", err)
	}
	if _, err := uc.CreateTemplate(context.Background(), "owner-1", CreateInput{Name: "X", ScheduledTime: "25:00"}); !domain.IsDomainError(err, domain.ErrCodeInvalid) {
		t.Fatalf("out-of-range time: got %v, want INVALID", err)
	}
	// No schedule at all is legal.
	if _, err := uc.CreateTemplate(context.Background(), "owner-1", CreateInput{Name: "Unscheduled"}); err != nil {
		t.Fatalf("unscheduled: %v", err)
	}
}

func TestCreateTemplateFromLibrary(t *testing.T) {
	repo := newMockTemplateRepo()
	uc, _, _ := newUseCase(repo)
	uc.library = &mockLibraryRepo{items: map[string]*domain.LibraryTemplate{
		"lib-1": {ID: "lib-1", Name: "Evening Vitals", Description: "BP and pulse", ScheduledTime: "18:00"},
	}}

	created, err := uc.CreateTemplate(context.Background(), "owner-1", CreateInput{FromTemplateID: "lib-1"})
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	if created.Name != "Evening Vitals" || created.ScheduledTime != "18:00" {
		t.Fatalf("library seed not applied: %+v", created)
	}

	// Explicit fields win over the seed.
	custom, err := uc.CreateTemplate(context.Background(), "owner-1", CreateInput{FromTemplateID: "lib-1", Name: "Night Vitals", ScheduledTime: "21:30"})
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	if custom.Name != "Night Vitals" || custom.ScheduledTime != "21:30" {
		t.Fatalf("explicit fields overridden: %+v", custom)
	}
}

func TestUpdateTemplateCrossTenant(t *testing.T) {
	repo := newMockTemplateRepo()
	uc, _, _ := newUseCase(repo)
	repo.templates["t-1"] = &domain.TaskTemplate{ID: "t-1", OwnerID: "owner-1", Name: "Meds", Active: true}

	name := "Stolen"
	_, err := uc.UpdateTemplate(context.Background(), "owner-2", "t-1", UpdateInput{Name: &name})
	if !domain.IsDomainError(err, domain.ErrCodeNotFound) {
		t.Fatalf("cross-tenant update: got %v, want NOT_FOUND", err)
	}
}

func TestReorderValidation(t *testing.T) {
	repo := newMockTemplateRepo()
	uc, _, _ := newUseCase(repo)

	if err := uc.Reorder(context.Background(), "owner-1", nil); !domain.IsDomainError(err, domain.ErrCodeInvalid) {
		t.Fatalf("empty list: got %v, want INVALID", err)
	}
	if err := uc.Reorder(context.Background(), "owner-1", []domain.OrderUpdate{{Order: 1}}); !domain.IsDomainError(err, domain.ErrCodeInvalid) {
		t.Fatalf("missing id: got %v, want INVALID", err)
	}
}

func TestReorderRollsBackOnUnknownID(t *testing.T) {
	repo := newMockTemplateRepo()
	uc, _, _ := newUseCase(repo)
	repo.templates["t-1"] = &domain.TaskTemplate{ID: "t-1", OwnerID: "owner-1", Name: "A", Order: 0, Active: true}
	repo.templates["t-2"] = &domain.TaskTemplate{ID: "t-2", OwnerID: "owner-1", Name: "B", Order: 1, Active: true}

	err := uc.Reorder(context.Background(), "owner-1", []domain.OrderUpdate{
		{ID: "t-1", Order: 1},
		{ID: "missing", Order: 0},
	})
	if !errors.Is(err, domain.ErrTemplateNotFound) {
		t.Fatalf("got %v, want template not found", err)
	}
	if repo.templates["t-1"].Order != 0 {
		t.Fatalf("partial reorder applied; t-1 order = %d", repo.templates["t-1"].Order)
	}
}

func TestDeleteTemplateSoftDeletesWhenReferenced(t *testing.T) {
	repo := newMockTemplateRepo()
	uc, _, _ := newUseCase(repo)

	hard := &domain.TaskTemplate{ID: "t-1", OwnerID: "owner-1", Name: "A", Active: true}
	repo.templates["t-1"] = hard
	if err := uc.DeleteTemplate(context.Background(), "owner-1", "t-1"); err != nil {
		t.Fatalf("delete: %v", err)
	}
	if _, ok := repo.templates["t-1"]; ok {
		t.Fatal("unreferenced template should be removed")
	}

	referenced := &referencedTemplateRepo{mockTemplateRepo: repo}
	uc.templates = referenced
	repo.templates["t-2"] = &domain.TaskTemplate{ID: "t-2", OwnerID: "owner-1", Name: "B", Active: true}
	if err := uc.DeleteTemplate(context.Background(), "owner-1", "t-2"); err != nil {
		t.Fatalf("delete: %v", err)
	}
	survivor, ok := repo.templates["t-2"]
	if !ok {
		t.Fatal("referenced template must survive as inactive")
	}
	if survivor.Active {
		t.Fatal("referenced template should be deactivated")
	}
}

type referencedTemplateRepo struct {
	*mockTemplateRepo
}

func (r *referencedTemplateRepo) HasEntries(context.Context, string) (bool, error) {
	return true, nil
}

func TestTasksForPatientReturnsEmptySlice(t *testing.T) {
	repo := newMockTemplateRepo()
	uc, patients, _ := newUseCase(repo)
	patients.patients["p-1"] = &domain.Patient{ID: "p-1", OwnerID: "owner-1", Active: true}

	templates, err := uc.TasksForPatient(context.Background(), "p-1")
	if err != nil {
		t.Fatalf("resolve: %v", err)
	}
	if templates == nil {
		t.Fatal("expected empty slice, got nil")
	}
	if len(templates) != 0 {
		t.Fatalf("expected no templates, got %d", len(templates))
	}
}

func TestTasksForPatientSkipsInactive(t *testing.T) {
	repo := newMockTemplateRepo()
	uc, patients, _ := newUseCase(repo)
	patients.patients["p-1"] = &domain.Patient{ID: "p-1", OwnerID: "owner-1", Active: true}
	repo.templates["t-1"] = &domain.TaskTemplate{ID: "t-1", OwnerID: "owner-1", Name: "A", Active: true}
	repo.templates["t-2"] = &domain.TaskTemplate{ID: "t-2", OwnerID: "owner-1", Name: "B", Active: false}
	repo.templates["t-3"] = &domain.TaskTemplate{ID: "t-3", OwnerID: "owner-2", Name: "C", Active: true}

	templates, err := uc.TasksForPatient(context.Background(), "p-1")
	if err != nil {
		t.Fatalf("resolve: %v", err)
	}
	if len(templates) != 1 || templates[0].ID != "t-1" {
		t.Fatalf("expected only t-1, got %+v", templates)
	}
}

func TestTasksForNurseRequiresAssignment(t *testing.T) {
	repo := newMockTemplateRepo()
	uc, patients, assignments := newUseCase(repo)
	patients.patients["p-1"] = &domain.Patient{ID: "p-1", OwnerID: "owner-1", Active: true}

	if _, err := uc.TasksForNurse(context.Background(), "nurse-1", "p-1"); !domain.IsDomainError(err, domain.ErrCodeForbidden) {
		t.Fatalf("unassigned nurse: got %v, want FORBIDDEN", err)
	}

	assignments.active["nurse-1/p-1"] = true
	if _, err := uc.TasksForNurse(context.Background(), "nurse-1", "p-1"); err != nil {
		t.Fatalf("assigned nurse: %v", err)
	}
}
