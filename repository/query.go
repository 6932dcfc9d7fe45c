package repository

import (
	"context"

	"github.com/healthcare24/backend/domain"
)

type QueryFilter struct {
	CreatedBy string
	Status    domain.QueryStatus
	Category  domain.Role
	Limit     int
}

type QueryRepository interface {
	GetByID(ctx context.Context, id string) (*domain.Query, error)
	List(ctx context.Context, filter QueryFilter) ([]domain.Query, error)
	Create(ctx context.Context, query *domain.Query) (*domain.Query, error)
	UpdateStatus(ctx context.Context, id string, status domain.QueryStatus) (*domain.Query, error)
	Delete(ctx context.Context, id string) error
}
