package usecase

import (
	"context"

	"github.com/healthcare24/backend/domain"
)

// AuditTrail abstracts the local audit journal so use cases stay
// storage-agnostic. Recording is best-effort: implementations log failures
// instead of failing the business operation.
type AuditTrail interface {
	RecordCompletion(ctx context.Context, entry *domain.CompletionEntry) error
	RecordQueryStatus(ctx context.Context, query *domain.Query, actorID string) error
	RecordTemplateRemoval(ctx context.Context, templateID, ownerID string, deactivated bool) error
}
