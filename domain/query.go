package domain

import "time"

// QueryStatus is a free-form three-value enum. Any status may be set at any
// time by an admin; there is no enforced transition order.
type QueryStatus string

const (
	QueryStatusPending  QueryStatus = "pending"
	QueryStatusPriority QueryStatus = "priority"
	QueryStatusResolved QueryStatus = "resolved"
)

// KnownQueryStatus reports whether the value is a member of the status enum.
func KnownQueryStatus(s QueryStatus) bool {
	switch s {
	case QueryStatusPending, QueryStatusPriority, QueryStatusResolved:
		return true
	}
	return false
}

// Query is a support ticket raised by an owner or nurse. Category is derived
// from the creator's role at creation time, never supplied by the caller.
type Query struct {
	ID        string      `json:"id"`
	Title     string      `json:"title"`
	Message   string      `json:"message"`
	Category  Role        `json:"category"`
	Status    QueryStatus `json:"status"`
	CreatedBy string      `json:"createdBy"`
	PatientID string      `json:"patientId,omitempty"`
	CreatedAt time.Time   `json:"createdAt"`
	UpdatedAt time.Time   `json:"updatedAt"`
}
