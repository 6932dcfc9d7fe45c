package services

import (
	"context"
	"encoding/json"

	"go.uber.org/zap"

	"github.com/healthcare24/backend/domain"
	"github.com/healthcare24/backend/internal/infrastructure/audit"
	"github.com/healthcare24/backend/usecase"
)

// AuditRecorder translates domain events into journal records. It satisfies
// usecase.AuditTrail so use cases never touch BoltDB directly.
type AuditRecorder struct {
	journal *audit.Journal
	logger  *zap.Logger
}

func NewAuditRecorder(journal *audit.Journal, logger *zap.Logger) *AuditRecorder {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &AuditRecorder{journal: journal, logger: logger}
}

func (r *AuditRecorder) RecordCompletion(_ context.Context, entry *domain.CompletionEntry) error {
	if r.journal == nil || entry == nil {
		return domain.ErrInvalidPayload
	}
	detail, err := json.Marshal(map[string]interface{}{
		"ownerTaskId":            entry.OwnerTaskID,
		"patientId":              entry.PatientID,
		"isLate":                 entry.IsLate,
		"expectedCompletionTime": entry.ExpectedCompletionTime,
	})
	if err != nil {
		return err
	}
	return r.journal.Append(audit.Event{
		Kind:      audit.EventCompletionSubmitted,
		ActorID:   entry.NurseID,
		SubjectID: entry.ID,
		Detail:    detail,
		At:        entry.SubmittedAt,
	})
}

func (r *AuditRecorder) RecordQueryStatus(_ context.Context, query *domain.Query, actorID string) error {
	if r.journal == nil || query == nil {
		return domain.ErrInvalidPayload
	}
	detail, err := json.Marshal(map[string]interface{}{
		"status":   string(query.Status),
		"category": string(query.Category),
	})
	if err != nil {
		return err
	}
	return r.journal.Append(audit.Event{
		Kind:      audit.EventQueryStatusChanged,
		ActorID:   actorID,
		SubjectID: query.ID,
		Detail:    detail,
	})
}

func (r *AuditRecorder) RecordTemplateRemoval(_ context.Context, templateID, ownerID string, deactivated bool) error {
	if r.journal == nil {
		return domain.ErrInvalidPayload
	}
	detail, err := json.Marshal(map[string]interface{}{
		"deactivated": deactivated,
	})
	if err != nil {
		return err
	}
	return r.journal.Append(audit.Event{
		Kind:      audit.EventTemplateRemoved,
		ActorID:   ownerID,
		SubjectID: templateID,
		Detail:    detail,
	})
}

var _ usecase.AuditTrail = (*AuditRecorder)(nil)
