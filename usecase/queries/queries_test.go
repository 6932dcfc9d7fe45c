package queries

import (
	"context"
	"testing"

	"github.com/google/uuid"

	"github.com/healthcare24/backend/domain"
	"github.com/healthcare24/backend/repository"
)

type mockQueryRepo struct {
	queries map[string]*domain.Query
}

func newMockQueryRepo() *mockQueryRepo {
	return &mockQueryRepo{queries: make(map[string]*domain.Query)}
}

func (m *mockQueryRepo) GetByID(_ context.Context, id string) (*domain.Query, error) {
	q, ok := m.queries[id]
	if !ok {
		return nil, domain.ErrQueryNotFound
	}
	copied := *q
	return &copied, nil
}

func (m *mockQueryRepo) List(_ context.Context, filter repository.QueryFilter) ([]domain.Query, error) {
	var out []domain.Query
	for _, q := range m.queries {
		if filter.CreatedBy != "" && q.CreatedBy != filter.CreatedBy {
			continue
		}
		if filter.Status != "" && q.Status != filter.Status {
			continue
		}
		if filter.Category != "" && q.Category != filter.Category {
			continue
		}
		out = append(out, *q)
	}
	return out, nil
}

func (m *mockQueryRepo) Create(_ context.Context, q *domain.Query) (*domain.Query, error) {
	if q.ID == "" {
		q.ID = uuid.NewString()
	}
	copied := *q
	m.queries[q.ID] = &copied
	return q, nil
}

func (m *mockQueryRepo) UpdateStatus(_ context.Context, id string, status domain.QueryStatus) (*domain.Query, error) {
	q, ok := m.queries[id]
	if !ok {
		return nil, domain.ErrQueryNotFound
	}
	q.Status = status
	copied := *q
	return &copied, nil
}

func (m *mockQueryRepo) Delete(_ context.Context, id string) error {
	if _, ok := m.queries[id]; !ok {
		return domain.ErrQueryNotFound
	}
	delete(m.queries, id)
	return nil
}

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

func (m *mockUserRepo) GetByEmail(context.Context, string) (*domain.User, error) {
	return nil, domain.ErrUserNotFound
}

func (m *mockUserRepo) List(context.Context, repository.UserFilter) ([]domain.User, error) {
	return nil, nil
}

func (m *mockUserRepo) Create(_ context.Context, u *domain.User) (*domain.User, error) { return u, nil }

func (m *mockUserRepo) Update(context.Context, *domain.User) error { return nil }

func newUseCase() (*UseCase, *mockQueryRepo) {
	repo := newMockQueryRepo()
	users := &mockUserRepo{users: map[string]*domain.User{
		"owner-1": {ID: "owner-1", Role: domain.RoleOwner, Active: true},
		"nurse-1": {ID: "nurse-1", Role: domain.RoleNurse, Active: true},
		"admin-1": {ID: "admin-1", Role: domain.RoleAdmin, Active: true},
	}}
	return New(repo, users, nil, nil), repo
}

func TestCreateDerivesCategoryFromRole(t *testing.T) {
	uc, _ := newUseCase()

	fromOwner, err := uc.Create(context.Background(), "owner-1", CreateInput{Title: "Billing", Message: "Invoice looks off"})
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	if fromOwner.Category != domain.RoleOwner {
		t.Fatalf("category = %q, want owner", fromOwner.Category)
	}
	if fromOwner.Status != domain.QueryStatusPending {
		t.Fatalf("status = %q, want pending", fromOwner.Status)
	}

	fromNurse, err := uc.Create(context.Background(), "nurse-1", CreateInput{Title: "Schedule", Message: "Shift clash"})
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	if fromNurse.Category != domain.RoleNurse {
		t.Fatalf("category = %q, want nurse", fromNurse.Category)
	}
}

func TestCreateValidation(t *testing.T) {
	uc, _ := newUseCase()

	if _, err := uc.Create(context.Background(), "owner-1", CreateInput{Title: " ", Message: "x"}); !domain.IsDomainError(err, domain.ErrCodeInvalid) {
		t.Fatalf("blank title: got %v, want INVALID", err)
	}
	if _, err := uc.Create(context.Background(), "owner-1", CreateInput{Title: "x", Message: ""}); !domain.IsDomainError(err, domain.ErrCodeInvalid) {
		t.Fatalf("blank message: got %v, want INVALID", err)
	}
	if _, err := uc.Create(context.Background(), "admin-1", CreateInput{Title: "x", Message: "y"}); !domain.IsDomainError(err, domain.ErrCodeForbidden) {
		t.Fatalf("admin creator: got %v, want FORBIDDEN", err)
	}
}

func TestUpdateStatusValidatesEnum(t *testing.T) {
	uc, repo := newUseCase()
	repo.queries["q-1"] = &domain.Query{ID: "q-1", Status: domain.QueryStatusPending, CreatedBy: "owner-1"}

	if _, err := uc.UpdateStatus(context.Background(), "admin-1", "q-1", "escalated"); !domain.IsDomainError(err, domain.ErrCodeInvalid) {
		t.Fatalf("unknown status: got %v, want INVALID", err)
	}
}

func TestUpdateStatusTransitionsAreFree(t *testing.T) {
	uc, repo := newUseCase()
	repo.queries["q-1"] = &domain.Query{ID: "q-1", Status: domain.QueryStatusResolved, CreatedBy: "owner-1"}

	// Resolved back to pending is allowed; no transition order is enforced.
	updated, err := uc.UpdateStatus(context.Background(), "admin-1", "q-1", domain.QueryStatusPending)
	if err != nil {
		t.Fatalf("update: %v", err)
	}
	if updated.Status != domain.QueryStatusPending {
		t.Fatalf("status = %q, want pending", updated.Status)
	}
}

func TestListMineEmptyIsSlice(t *testing.T) {
	uc, _ := newUseCase()
	queries, err := uc.ListMine(context.Background(), "owner-1", "")
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if queries == nil {
		t.Fatal("expected empty slice, got nil")
	}
}

func TestDeleteCreatorOnly(t *testing.T) {
	uc, repo := newUseCase()
	repo.queries["q-1"] = &domain.Query{ID: "q-1", Status: domain.QueryStatusPending, CreatedBy: "owner-1"}

	if err := uc.Delete(context.Background(), "nurse-1", "q-1"); !domain.IsDomainError(err, domain.ErrCodeForbidden) {
		t.Fatalf("foreign delete: got %v, want FORBIDDEN", err)
	}
	if err := uc.Delete(context.Background(), "owner-1", "q-1"); err != nil {
		t.Fatalf("creator delete: %v", err)
	}
	if _, ok := repo.queries["q-1"]; ok {
		t.Fatal("query should be gone")
	}
}
