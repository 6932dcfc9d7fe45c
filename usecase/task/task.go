package task

import (
	"context"
	"strings"

	"go.uber.org/zap"

	"github.com/healthcare24/backend/domain"
	"github.com/healthcare24/backend/pkg/wallclock"
	"github.com/healthcare24/backend/repository"
	"github.com/healthcare24/backend/usecase"
)

// UseCase owns the task template store and the per-patient task resolver.
type UseCase struct {
	templates   repository.TaskTemplateRepository
	library     repository.LibraryRepository
	patients    repository.PatientRepository
	assignments repository.AssignmentRepository
	audit       usecase.AuditTrail
	logger      *zap.Logger
}

func New(
	templates repository.TaskTemplateRepository,
	library repository.LibraryRepository,
	patients repository.PatientRepository,
	assignments repository.AssignmentRepository,
	audit usecase.AuditTrail,
	logger *zap.Logger,
) *UseCase {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &UseCase{
		templates:   templates,
		library:     library,
		patients:    patients,
		assignments: assignments,
		audit:       audit,
		logger:      logger,
	}
}

// CreateInput carries a new template's fields. When FromTemplateID is set the
// library template seeds name, description and scheduled time; explicit
// fields still win.
type CreateInput struct {
	Name           string
	Description    string
	ScheduledTime  string
	Order          *int
	FromTemplateID string
}

func (uc *UseCase) CreateTemplate(ctx context.Context, ownerID string, input CreateInput) (*domain.TaskTemplate, error) {
	template := &domain.TaskTemplate{
		OwnerID:       ownerID,
		Name:          strings.TrimSpace(input.Name),
		Description:   strings.TrimSpace(input.Description),
		ScheduledTime: input.ScheduledTime,
		Active:        true,
	}

	if input.FromTemplateID != "" {
		seed, err := uc.library.GetByID(ctx, input.FromTemplateID)
		if err != nil {
			return nil, err
		}
		if template.Name == "" {
			template.Name = seed.Name
		}
		if template.Description == "" {
			template.Description = seed.Description
		}
		if template.ScheduledTime == "" {
			template.ScheduledTime = seed.ScheduledTime
		}
	}

	if template.Name == "" {
		return nil, domain.NewError(domain.ErrCodeInvalid, "task name is required")
	}
	if template.ScheduledTime != "" && !wallclock.Valid(template.ScheduledTime) {
		return nil, domain.NewError(domain.ErrCodeInvalid, "scheduledTime must be HH:MM")
	}

	if input.Order != nil {
		template.Order = *input.Order
	} else {
		order, err := uc.nextOrder(ctx, ownerID)
		if err != nil {
			return nil, err
		}
		template.Order = order
	}

	created, err := uc.templates.Create(ctx, template)
	if err != nil {
		return nil, err
	}
	uc.logger.Info("task template created",
		zap.String("template_id", created.ID),
		zap.String("owner_id", ownerID))
	return created, nil
}

// UpdateInput mutates name, description and scheduled time only. Historical
// completion entries are untouched; their lateness snapshots stay frozen.
type UpdateInput struct {
	Name          *string
	Description   *string
	ScheduledTime *string
}

func (uc *UseCase) UpdateTemplate(ctx context.Context, ownerID, templateID string, input UpdateInput) (*domain.TaskTemplate, error) {
	template, err := uc.ownedTemplate(ctx, ownerID, templateID)
	if err != nil {
		return nil, err
	}

	if input.Name != nil {
		name := strings.TrimSpace(*input.Name)
		if name == "" {
			return nil, domain.NewError(domain.ErrCodeInvalid, "task name is required")
		}
		template.Name = name
	}
	if input.Description != nil {
		template.Description = strings.TrimSpace(*input.Description)
	}
	if input.ScheduledTime != nil {
		if *input.ScheduledTime != "" && !wallclock.Valid(*input.ScheduledTime) {
			return nil, domain.NewError(domain.ErrCodeInvalid, "scheduledTime must be HH:MM")
		}
		template.ScheduledTime = *input.ScheduledTime
	}

	if err := uc.templates.Update(ctx, template); err != nil {
		return nil, err
	}
	return template, nil
}

// Reorder batch-assigns display orders. The repository applies the batch
// atomically; a single unknown or foreign id rolls the whole request back.
func (uc *UseCase) Reorder(ctx context.Context, ownerID string, updates []domain.OrderUpdate) error {
	if len(updates) == 0 {
		return domain.NewError(domain.ErrCodeInvalid, "tasks list is empty")
	}
	for _, update := range updates {
		if update.ID == "" {
			return domain.NewError(domain.ErrCodeInvalid, "task id is required")
		}
	}
	return uc.templates.Reorder(ctx, ownerID, updates)
}

// DeleteTemplate removes a template outright when nothing references it, and
// deactivates it otherwise so historical entries keep a valid parent.
func (uc *UseCase) DeleteTemplate(ctx context.Context, ownerID, templateID string) error {
	template, err := uc.ownedTemplate(ctx, ownerID, templateID)
	if err != nil {
		return err
	}

	referenced, err := uc.templates.HasEntries(ctx, template.ID)
	if err != nil {
		return err
	}

	if referenced {
		err = uc.templates.Deactivate(ctx, template.ID)
	} else {
		err = uc.templates.Delete(ctx, template.ID)
	}
	if err != nil {
		return err
	}

	if uc.audit != nil {
		if auditErr := uc.audit.RecordTemplateRemoval(ctx, template.ID, ownerID, referenced); auditErr != nil {
			uc.logger.Warn("audit record failed", zap.Error(auditErr))
		}
	}
	return nil
}

func (uc *UseCase) ListTemplates(ctx context.Context, ownerID string, activeOnly bool) ([]domain.TaskTemplate, error) {
	return uc.templates.List(ctx, ownerID, activeOnly)
}

func (uc *UseCase) GetTemplate(ctx context.Context, ownerID, templateID string) (*domain.TaskTemplate, error) {
	return uc.ownedTemplate(ctx, ownerID, templateID)
}

// TasksForPatient resolves the patient's actionable task list: the active
// templates of the owner the patient belongs to, in display order. Templates
// are not date-scoped, so the list is the same for any day; an empty slice is
// a valid result, not an error.
func (uc *UseCase) TasksForPatient(ctx context.Context, patientID string) ([]domain.TaskTemplate, error) {
	patient, err := uc.patients.GetByID(ctx, patientID)
	if err != nil {
		return nil, err
	}
	templates, err := uc.templates.List(ctx, patient.OwnerID, true)
	if err != nil {
		return nil, err
	}
	if templates == nil {
		templates = []domain.TaskTemplate{}
	}
	return templates, nil
}

// TasksForNurse is TasksForPatient gated on an active nurse assignment.
func (uc *UseCase) TasksForNurse(ctx context.Context, nurseID, patientID string) ([]domain.TaskTemplate, error) {
	assigned, err := uc.assignments.ActiveExists(ctx, nurseID, patientID)
	if err != nil {
		return nil, err
	}
	if !assigned {
		return nil, domain.ErrNotAssigned
	}
	return uc.TasksForPatient(ctx, patientID)
}

func (uc *UseCase) ListLibrary(ctx context.Context) ([]domain.LibraryTemplate, error) {
	return uc.library.List(ctx)
}

// ownedTemplate rejects cross-tenant access with NOT_FOUND rather than
// FORBIDDEN so foreign template ids are indistinguishable from unknown ones.
func (uc *UseCase) ownedTemplate(ctx context.Context, ownerID, templateID string) (*domain.TaskTemplate, error) {
	template, err := uc.templates.GetByID(ctx, templateID)
	if err != nil {
		return nil, err
	}
	if template.OwnerID != ownerID {
		return nil, domain.ErrTemplateNotFound
	}
	return template, nil
}

func (uc *UseCase) nextOrder(ctx context.Context, ownerID string) (int, error) {
	templates, err := uc.templates.List(ctx, ownerID, false)
	if err != nil {
		return 0, err
	}
	next := 0
	for _, t := range templates {
		if t.Order >= next {
			next = t.Order + 1
		}
	}
	return next, nil
}
