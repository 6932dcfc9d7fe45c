package domain

import "time"

// Assignment links a nurse to a patient. Created by admins; deactivated, never deleted.
type Assignment struct {
	ID         string    `json:"id"`
	NurseID    string    `json:"nurseId"`
	PatientID  string    `json:"patientId"`
	AssignedBy string    `json:"assignedBy"`
	Active     bool      `json:"active"`
	CreatedAt  time.Time `json:"createdAt"`
	UpdatedAt  time.Time `json:"updatedAt"`
}
