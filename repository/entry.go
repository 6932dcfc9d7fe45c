package repository

import (
	"context"
	"time"

	"github.com/healthcare24/backend/domain"
)

// NoLimit asks for an unbounded scan. Day aggregations need every entry in
// range; only the pageable feeds get clamped.
const NoLimit = -1

// EntryFilter narrows ledger scans. OwnerID filters transitively through the
// patient's owner; entries themselves carry no owner column. Limit zero means
// the implementation's default page size; NoLimit disables it.
type EntryFilter struct {
	PatientID  string
	NurseID    string
	OwnerID    string
	TemplateID string
	From       time.Time
	To         time.Time
	Limit      int
}

// CompletionEntryRepository is append-only: entries are never updated or
// deleted once written.
type CompletionEntryRepository interface {
	Create(ctx context.Context, entry *domain.CompletionEntry) (*domain.CompletionEntry, error)
	List(ctx context.Context, filter EntryFilter) ([]domain.CompletionEntry, error)
}
