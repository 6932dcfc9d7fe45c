package domain

import "time"

// TaskTemplate is a reusable definition of a recurring care task owned by a
// facility owner. ScheduledTime, when set, is a local wall-clock "HH:MM"
// string with no date or zone attached; it is interpreted in the owner's
// timezone at submission time.
type TaskTemplate struct {
	ID            string    `json:"id"`
	OwnerID       string    `json:"ownerId"`
	Name          string    `json:"name"`
	Description   string    `json:"description,omitempty"`
	ScheduledTime string    `json:"scheduledTime,omitempty"`
	Order         int       `json:"order"`
	Active        bool      `json:"active"`
	CreatedAt     time.Time `json:"createdAt"`
	UpdatedAt     time.Time `json:"updatedAt"`
}

func (t *TaskTemplate) IsActive() bool {
	return t != nil && t.Active
}

// LibraryTemplate is an admin-curated starting point owners can clone a task
// template from. Global, not tenant-scoped.
type LibraryTemplate struct {
	ID            string    `json:"id"`
	Name          string    `json:"name"`
	Description   string    `json:"description,omitempty"`
	ScheduledTime string    `json:"scheduledTime,omitempty"`
	CreatedAt     time.Time `json:"createdAt"`
}

// TaskStatus is the per-template day-board verdict for a single local day.
type TaskStatus string

const (
	TaskStatusPending  TaskStatus = "pending"
	TaskStatusDone     TaskStatus = "done"
	TaskStatusDoneLate TaskStatus = "done-late"
)

// OrderUpdate is one element of a batch reorder request.
type OrderUpdate struct {
	ID    string `json:"id"`
	Order int    `json:"order"`
}
