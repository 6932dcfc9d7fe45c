package repository

import (
	"context"

	"github.com/healthcare24/backend/domain"
)

type TaskTemplateRepository interface {
	GetByID(ctx context.Context, id string) (*domain.TaskTemplate, error)
	// List returns the owner's templates ordered by display order, ties
	// broken by creation time.
	List(ctx context.Context, ownerID string, activeOnly bool) ([]domain.TaskTemplate, error)
	Create(ctx context.Context, template *domain.TaskTemplate) (*domain.TaskTemplate, error)
	Update(ctx context.Context, template *domain.TaskTemplate) error
	// Reorder batch-assigns display orders inside a single transaction.
	// Either every update applies or none does.
	Reorder(ctx context.Context, ownerID string, updates []domain.OrderUpdate) error
	Delete(ctx context.Context, id string) error
	Deactivate(ctx context.Context, id string) error
	// HasEntries reports whether any completion entry references the template.
	HasEntries(ctx context.Context, id string) (bool, error)
}

type LibraryRepository interface {
	GetByID(ctx context.Context, id string) (*domain.LibraryTemplate, error)
	List(ctx context.Context) ([]domain.LibraryTemplate, error)
	// Seed inserts the defaults, skipping names that already exist.
	Seed(ctx context.Context, templates []domain.LibraryTemplate) (int, error)
}
