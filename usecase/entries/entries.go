package entries

import (
	"context"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/healthcare24/backend/domain"
	"github.com/healthcare24/backend/pkg/wallclock"
	"github.com/healthcare24/backend/repository"
	"github.com/healthcare24/backend/usecase"
)

// UseCase owns the completion entry ledger and the day-board aggregation
// computed over it.
type UseCase struct {
	entries     repository.CompletionEntryRepository
	templates   repository.TaskTemplateRepository
	patients    repository.PatientRepository
	assignments repository.AssignmentRepository
	users       repository.UserRepository
	audit       usecase.AuditTrail
	logger      *zap.Logger

	// now is swapped out in tests to pin submission instants.
	now func() time.Time
}

func New(
	entries repository.CompletionEntryRepository,
	templates repository.TaskTemplateRepository,
	patients repository.PatientRepository,
	assignments repository.AssignmentRepository,
	users repository.UserRepository,
	audit usecase.AuditTrail,
	logger *zap.Logger,
) *UseCase {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &UseCase{
		entries:     entries,
		templates:   templates,
		patients:    patients,
		assignments: assignments,
		users:       users,
		audit:       audit,
		logger:      logger,
		now:         time.Now,
	}
}

// SubmitInput describes one nurse completion submission. At is optional; a
// zero value means "now".
type SubmitInput struct {
	NurseID    string
	PatientID  string
	TemplateID string
	Note       string
	At         time.Time
}

// Submit appends one completion entry to the ledger. The lateness verdict and
// the expected completion time are computed here, from the template's current
// schedule and the facility's local clock, and frozen into the entry. Later
// template edits never touch what was written.
func (uc *UseCase) Submit(ctx context.Context, input SubmitInput) (*domain.CompletionEntry, error) {
	if strings.TrimSpace(input.Note) == "" {
		return nil, domain.NewError(domain.ErrCodeInvalid, "note is required")
	}

	assigned, err := uc.assignments.ActiveExists(ctx, input.NurseID, input.PatientID)
	if err != nil {
		return nil, err
	}
	if !assigned {
		return nil, domain.ErrNotAssigned
	}

	template, err := uc.templates.GetByID(ctx, input.TemplateID)
	if err != nil {
		return nil, err
	}
	if !template.Active {
		return nil, domain.ErrTemplateNotFound
	}

	patient, err := uc.patients.GetByID(ctx, input.PatientID)
	if err != nil {
		return nil, err
	}
	if patient.OwnerID != template.OwnerID {
		return nil, domain.ErrTemplateNotFound
	}

	loc, err := uc.ownerLocation(ctx, patient.OwnerID)
	if err != nil {
		return nil, err
	}

	at := input.At
	if at.IsZero() {
		at = uc.now()
	}

	localTime := wallclock.TimeOfDay(at, loc)
	entry := &domain.CompletionEntry{
		OwnerTaskID:            template.ID,
		PatientID:              patient.ID,
		NurseID:                input.NurseID,
		Note:                   strings.TrimSpace(input.Note),
		IsLate:                 wallclock.IsLate(template.ScheduledTime, localTime),
		ExpectedCompletionTime: template.ScheduledTime,
		SubmittedAt:            at.UTC(),
	}

	created, err := uc.entries.Create(ctx, entry)
	if err != nil {
		return nil, err
	}

	uc.logger.Info("completion entry submitted",
		zap.String("entry_id", created.ID),
		zap.String("template_id", template.ID),
		zap.String("patient_id", patient.ID),
		zap.Bool("is_late", created.IsLate))

	if uc.audit != nil {
		if auditErr := uc.audit.RecordCompletion(ctx, created); auditErr != nil {
			uc.logger.Warn("audit record failed", zap.Error(auditErr))
		}
	}
	return created, nil
}

// ListOptions narrows history listings.
type ListOptions struct {
	From       time.Time
	To         time.Time
	PatientID  string
	TemplateID string
	Limit      int
}

// ListForPatient returns the patient's entries, oldest first. The patient
// must belong to the requesting owner.
func (uc *UseCase) ListForPatient(ctx context.Context, ownerID, patientID string, opts ListOptions) ([]domain.CompletionEntry, error) {
	patient, err := uc.patients.GetByID(ctx, patientID)
	if err != nil {
		return nil, err
	}
	if patient.OwnerID != ownerID {
		return nil, domain.ErrPatientNotFound
	}
	return uc.list(ctx, repository.EntryFilter{
		PatientID:  patientID,
		TemplateID: opts.TemplateID,
		From:       opts.From,
		To:         opts.To,
		Limit:      opts.Limit,
	})
}

// ListForNurse returns the nurse's own submission history for calendar views.
func (uc *UseCase) ListForNurse(ctx context.Context, nurseID string, opts ListOptions) ([]domain.CompletionEntry, error) {
	return uc.list(ctx, repository.EntryFilter{
		NurseID:    nurseID,
		PatientID:  opts.PatientID,
		TemplateID: opts.TemplateID,
		From:       opts.From,
		To:         opts.To,
		Limit:      opts.Limit,
	})
}

// ListForOwner aggregates across all the owner's patients. Tenant scoping
// runs through the patient's owner; entries never record an owner directly.
// The owner's timezone is returned alongside so clients bucket days the same
// way the server does.
func (uc *UseCase) ListForOwner(ctx context.Context, ownerID string, opts ListOptions) ([]domain.CompletionEntry, string, error) {
	owner, err := uc.users.GetByID(ctx, ownerID)
	if err != nil {
		return nil, "", err
	}
	entries, err := uc.list(ctx, repository.EntryFilter{
		OwnerID:    ownerID,
		PatientID:  opts.PatientID,
		TemplateID: opts.TemplateID,
		From:       opts.From,
		To:         opts.To,
		Limit:      opts.Limit,
	})
	if err != nil {
		return nil, "", err
	}
	return entries, owner.Timezone, nil
}

// DayBoard computes the owner's per-template status for one local calendar
// day: pending when no entry matches, done-late when any matching entry was
// late, done otherwise. The board is a pure view over the ledger and is
// recomputed on every call.
func (uc *UseCase) DayBoard(ctx context.Context, ownerID, dateKey string) (map[string]domain.TaskStatus, error) {
	loc, err := uc.ownerLocation(ctx, ownerID)
	if err != nil {
		return nil, err
	}

	dayStart, err := wallclock.ParseDate(dateKey, loc)
	if err != nil {
		return nil, domain.NewError(domain.ErrCodeInvalid, "date must be YYYY-MM-DD")
	}
	dayEnd := dayStart.AddDate(0, 0, 1)

	templates, err := uc.templates.List(ctx, ownerID, true)
	if err != nil {
		return nil, err
	}

	// The board must see every entry of the day; a page limit would leave
	// later submissions uncounted and mark their templates pending.
	entries, err := uc.entries.List(ctx, repository.EntryFilter{
		OwnerID: ownerID,
		From:    dayStart,
		To:      dayEnd,
		Limit:   repository.NoLimit,
	})
	if err != nil {
		return nil, err
	}

	board := make(map[string]domain.TaskStatus, len(templates))
	for _, template := range templates {
		board[template.ID] = domain.TaskStatusPending
	}
	for _, entry := range entries {
		status, tracked := board[entry.OwnerTaskID]
		if !tracked {
			continue
		}
		if wallclock.DateKey(entry.SubmittedAt, loc) != dateKey {
			continue
		}
		// Late wins over done when a template somehow has multiple
		// entries on the same day.
		if entry.IsLate || status == domain.TaskStatusDoneLate {
			board[entry.OwnerTaskID] = domain.TaskStatusDoneLate
		} else {
			board[entry.OwnerTaskID] = domain.TaskStatusDone
		}
	}
	return board, nil
}

func (uc *UseCase) list(ctx context.Context, filter repository.EntryFilter) ([]domain.CompletionEntry, error) {
	entries, err := uc.entries.List(ctx, filter)
	if err != nil {
		return nil, err
	}
	if entries == nil {
		entries = []domain.CompletionEntry{}
	}
	return entries, nil
}

func (uc *UseCase) ownerLocation(ctx context.Context, ownerID string) (*time.Location, error) {
	owner, err := uc.users.GetByID(ctx, ownerID)
	if err != nil {
		return nil, err
	}
	loc, err := wallclock.Location(owner.Timezone)
	if err != nil {
		uc.logger.Warn("falling back to UTC",
			zap.String("owner_id", ownerID),
			zap.String("timezone", owner.Timezone))
		return time.UTC, nil
	}
	return loc, nil
}
