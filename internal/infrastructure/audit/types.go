package audit

import (
	"encoding/json"
	"time"

	"github.com/google/uuid"
)

const (
	EventCompletionSubmitted = "completion_submitted"
	EventQueryStatusChanged  = "query_status_changed"
	EventTemplateRemoved     = "template_removed"
)

// Event is one immutable audit record. Events mirror ledger mutations so a
// local trail survives even when the primary database is later repaired or
// migrated.
type Event struct {
	ID        string          `json:"id"`
	Kind      string          `json:"kind"`
	ActorID   string          `json:"actorId,omitempty"`
	SubjectID string          `json:"subjectId"`
	Detail    json.RawMessage `json:"detail,omitempty"`
	At        time.Time       `json:"at"`

	journalKey []byte
}

func (e *Event) normalize() {
	if e.ID == "" {
		e.ID = uuid.NewString()
	}
	if e.At.IsZero() {
		e.At = time.Now().UTC()
	}
}
