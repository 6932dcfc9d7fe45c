package queries

import (
	"context"
	"strings"

	"go.uber.org/zap"

	"github.com/healthcare24/backend/domain"
	"github.com/healthcare24/backend/repository"
	"github.com/healthcare24/backend/usecase"
)

// UseCase owns the support query workflow: owners and nurses raise queries,
// admins triage them.
type UseCase struct {
	queries repository.QueryRepository
	users   repository.UserRepository
	audit   usecase.AuditTrail
	logger  *zap.Logger
}

func New(queries repository.QueryRepository, users repository.UserRepository, audit usecase.AuditTrail, logger *zap.Logger) *UseCase {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &UseCase{
		queries: queries,
		users:   users,
		audit:   audit,
		logger:  logger,
	}
}

type CreateInput struct {
	Title     string
	Message   string
	PatientID string
}

// Create opens a query for an owner or nurse. The category mirrors the
// creator's role at this moment and is never taken from the request.
func (uc *UseCase) Create(ctx context.Context, creatorID string, input CreateInput) (*domain.Query, error) {
	title := strings.TrimSpace(input.Title)
	message := strings.TrimSpace(input.Message)
	if title == "" || message == "" {
		return nil, domain.NewError(domain.ErrCodeInvalid, "title and message are required")
	}

	creator, err := uc.users.GetByID(ctx, creatorID)
	if err != nil {
		return nil, err
	}
	if creator.Role != domain.RoleOwner && creator.Role != domain.RoleNurse {
		return nil, domain.ErrForbidden
	}

	query := &domain.Query{
		Title:     title,
		Message:   message,
		Category:  creator.Role,
		Status:    domain.QueryStatusPending,
		CreatedBy: creatorID,
		PatientID: input.PatientID,
	}
	return uc.queries.Create(ctx, query)
}

// ListMine returns the caller's own queries, optionally filtered by status.
func (uc *UseCase) ListMine(ctx context.Context, userID string, status domain.QueryStatus) ([]domain.Query, error) {
	if status != "" && !domain.KnownQueryStatus(status) {
		return nil, domain.NewError(domain.ErrCodeInvalid, "unknown status")
	}
	queries, err := uc.queries.List(ctx, repository.QueryFilter{CreatedBy: userID, Status: status})
	if err != nil {
		return nil, err
	}
	if queries == nil {
		queries = []domain.Query{}
	}
	return queries, nil
}

// ListAll is the admin triage view.
func (uc *UseCase) ListAll(ctx context.Context, filter repository.QueryFilter) ([]domain.Query, error) {
	if filter.Status != "" && !domain.KnownQueryStatus(filter.Status) {
		return nil, domain.NewError(domain.ErrCodeInvalid, "unknown status")
	}
	queries, err := uc.queries.List(ctx, filter)
	if err != nil {
		return nil, err
	}
	if queries == nil {
		queries = []domain.Query{}
	}
	return queries, nil
}

// UpdateStatus sets any status on any query. Transitions are deliberately
// unconstrained within the enum; only the value itself is validated.
func (uc *UseCase) UpdateStatus(ctx context.Context, actorID, queryID string, status domain.QueryStatus) (*domain.Query, error) {
	if !domain.KnownQueryStatus(status) {
		return nil, domain.NewError(domain.ErrCodeInvalid, "unknown status")
	}

	updated, err := uc.queries.UpdateStatus(ctx, queryID, status)
	if err != nil {
		return nil, err
	}

	if uc.audit != nil {
		if auditErr := uc.audit.RecordQueryStatus(ctx, updated, actorID); auditErr != nil {
			uc.logger.Warn("audit record failed", zap.Error(auditErr))
		}
	}
	return updated, nil
}

// Delete removes a query; only its creator may do so.
func (uc *UseCase) Delete(ctx context.Context, callerID, queryID string) error {
	query, err := uc.queries.GetByID(ctx, queryID)
	if err != nil {
		return err
	}
	if query.CreatedBy != callerID {
		return domain.ErrForbidden
	}
	return uc.queries.Delete(ctx, queryID)
}
