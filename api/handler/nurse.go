package handler

import (
	"net/http"

	"github.com/valyala/fasthttp"
	"go.uber.org/zap"

	"github.com/healthcare24/backend/api/transport"
	"github.com/healthcare24/backend/pkg/httpcontext"
	entriesUC "github.com/healthcare24/backend/usecase/entries"
	patientsUC "github.com/healthcare24/backend/usecase/patients"
	taskUC "github.com/healthcare24/backend/usecase/task"
)

// NurseHandler serves the nurse's working surface: assigned patients, the
// day's tasks per patient and completion submission.
type NurseHandler struct {
	baseHandler
	patients *patientsUC.UseCase
	tasks    *taskUC.UseCase
	entries  *entriesUC.UseCase
}

func NewNurseHandler(patients *patientsUC.UseCase, tasks *taskUC.UseCase, entries *entriesUC.UseCase, adapter *httpcontext.Adapter, logger *zap.Logger) *NurseHandler {
	return &NurseHandler{
		baseHandler: newBaseHandler(adapter, logger),
		patients:    patients,
		tasks:       tasks,
		entries:     entries,
	}
}

// @Summary Assigned patients
// @Tags nurse
// @Router /api/nurse/patients [get]
func (h *NurseHandler) Patients(ctx *fasthttp.RequestCtx) {
	nurseID := h.userID(ctx)
	if nurseID == "" {
		return
	}

	stdCtx, cancel := h.requestContext(ctx)
	defer cancel()

	patients, err := h.patients.ListForNurse(stdCtx, nurseID)
	if err != nil {
		h.respondError(ctx, err)
		return
	}
	h.respondSuccess(ctx, http.StatusOK, patients)
}

// @Summary Assigned patient detail
// @Tags nurse
// @Router /api/nurse/patients/{id} [get]
func (h *NurseHandler) Patient(ctx *fasthttp.RequestCtx) {
	nurseID := h.userID(ctx)
	if nurseID == "" {
		return
	}
	patientID := h.pathParam(ctx, "id")
	if patientID == "" {
		h.respondInvalid(ctx, "missing patient id")
		return
	}

	stdCtx, cancel := h.requestContext(ctx)
	defer cancel()

	patient, err := h.patients.GetForNurse(stdCtx, nurseID, patientID)
	if err != nil {
		h.respondError(ctx, err)
		return
	}
	h.respondSuccess(ctx, http.StatusOK, patient)
}

// @Summary Patient's task list
// @Tags nurse
// @Router /api/nurse/patients/{id}/tasks [get]
func (h *NurseHandler) PatientTasks(ctx *fasthttp.RequestCtx) {
	nurseID := h.userID(ctx)
	if nurseID == "" {
		return
	}
	patientID := h.pathParam(ctx, "id")
	if patientID == "" {
		h.respondInvalid(ctx, "missing patient id")
		return
	}

	stdCtx, cancel := h.requestContext(ctx)
	defer cancel()

	templates, err := h.tasks.TasksForNurse(stdCtx, nurseID, patientID)
	if err != nil {
		h.respondError(ctx, err)
		return
	}
	h.respondSuccess(ctx, http.StatusOK, templates)
}

// @Summary Submit task completion
// @Tags nurse
// @Router /api/nurse/entries [post]
func (h *NurseHandler) SubmitTask(ctx *fasthttp.RequestCtx) {
	nurseID := h.userID(ctx)
	if nurseID == "" {
		return
	}

	var req transport.SubmitTaskRequest
	if !h.decode(ctx, &req) {
		return
	}
	if req.OwnerTaskID == "" || req.PatientID == "" {
		h.respondInvalid(ctx, "ownerTaskId and patientId are required")
		return
	}

	stdCtx, cancel := h.requestContext(ctx)
	defer cancel()

	entry, err := h.entries.Submit(stdCtx, entriesUC.SubmitInput{
		NurseID:    nurseID,
		PatientID:  req.PatientID,
		TemplateID: req.OwnerTaskID,
		Note:       req.Note,
	})
	if err != nil {
		h.respondError(ctx, err)
		return
	}
	h.respondSuccess(ctx, http.StatusCreated, entry)
}

// @Summary My submitted entries
// @Tags nurse
// @Router /api/nurse/entries [get]
func (h *NurseHandler) MyEntries(ctx *fasthttp.RequestCtx) {
	nurseID := h.userID(ctx)
	if nurseID == "" {
		return
	}

	opts, ok := h.listOptions(ctx)
	if !ok {
		return
	}

	stdCtx, cancel := h.requestContext(ctx)
	defer cancel()

	entries, err := h.entries.ListForNurse(stdCtx, nurseID, opts)
	if err != nil {
		h.respondError(ctx, err)
		return
	}
	h.respondSuccess(ctx, http.StatusOK, entries)
}
