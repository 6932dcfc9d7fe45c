package transport

// LoginRequest carries credentials for the login endpoint.
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// RefreshRequest extends an existing session.
type RefreshRequest struct {
	SessionID string `json:"sessionId"`
}

// ProfileUpdateRequest carries partial profile edits. Nil fields are left
// untouched.
type ProfileUpdateRequest struct {
	Name     *string `json:"name"`
	Phone    *string `json:"phone"`
	Timezone *string `json:"timezone"`
}

// ChangePasswordRequest rotates the caller's password.
type ChangePasswordRequest struct {
	CurrentPassword string `json:"currentPassword"`
	NewPassword     string `json:"newPassword"`
}

// CreateUserRequest is used by admins to provision owner and nurse accounts.
type CreateUserRequest struct {
	Email    string `json:"email"`
	Name     string `json:"name"`
	Password string `json:"password"`
	Phone    string `json:"phone"`
	Timezone string `json:"timezone"`
}

// AssignNurseRequest links a nurse to a patient.
type AssignNurseRequest struct {
	NurseID   string `json:"nurseId"`
	PatientID string `json:"patientId"`
}

// PatientCreateRequest registers a patient under the calling owner.
type PatientCreateRequest struct {
	Name    string `json:"name"`
	Address string `json:"address"`
	Notes   string `json:"notes"`
}

// PatientUpdateRequest carries partial patient edits.
type PatientUpdateRequest struct {
	Name    *string `json:"name"`
	Address *string `json:"address"`
	Notes   *string `json:"notes"`
}

// TaskCreateRequest creates a task template for the calling owner.
type TaskCreateRequest struct {
	Name          string `json:"name"`
	Description   string `json:"description"`
	ScheduledTime string `json:"scheduledTime"`
	Order         *int   `json:"order"`
	// FromTemplateID seeds the new task from a library template.
	FromTemplateID string `json:"fromTemplateId"`
}

// TaskUpdateRequest carries partial template edits.
type TaskUpdateRequest struct {
	Name          *string `json:"name"`
	Description   *string `json:"description"`
	ScheduledTime *string `json:"scheduledTime"`
}

// ReorderItem pairs a template id with its new display position.
type ReorderItem struct {
	ID    string `json:"id"`
	Order int    `json:"order"`
}

// ReorderRequest reorders the calling owner's task templates in one shot.
type ReorderRequest struct {
	Tasks []ReorderItem `json:"tasks"`
}

// SubmitTaskRequest records a nurse completing a task for a patient.
type SubmitTaskRequest struct {
	OwnerTaskID string `json:"ownerTaskId"`
	PatientID   string `json:"patientId"`
	Note        string `json:"note"`
}

// QueryCreateRequest opens a support query.
type QueryCreateRequest struct {
	Title     string `json:"title"`
	Message   string `json:"message"`
	PatientID string `json:"patientId"`
}

// QueryStatusRequest moves a query to a new status.
type QueryStatusRequest struct {
	Status string `json:"status"`
}
