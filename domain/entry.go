package domain

import "time"

// CompletionEntry records a nurse fulfilling a task for a patient. Entries are
// append-only: IsLate and ExpectedCompletionTime are frozen at submission and
// never recomputed, even if the parent template's schedule changes later.
type CompletionEntry struct {
	ID                     string    `json:"id"`
	OwnerTaskID            string    `json:"ownerTaskId"`
	PatientID              string    `json:"patientId"`
	NurseID                string    `json:"nurseId"`
	Note                   string    `json:"note"`
	IsLate                 bool      `json:"isLate"`
	ExpectedCompletionTime string    `json:"expectedCompletionTime,omitempty"`
	SubmittedAt            time.Time `json:"submittedAt"`
}
