package handler

import (
	"net/http"

	"github.com/valyala/fasthttp"
	"go.uber.org/zap"

	"github.com/healthcare24/backend/api/transport"
	"github.com/healthcare24/backend/domain"
	"github.com/healthcare24/backend/pkg/httpcontext"
	entriesUC "github.com/healthcare24/backend/usecase/entries"
	taskUC "github.com/healthcare24/backend/usecase/task"
)

// TaskHandler serves the owner's task surface: the template list, ordering,
// the completion feed and the day board.
type TaskHandler struct {
	baseHandler
	tasks   *taskUC.UseCase
	entries *entriesUC.UseCase
}

func NewTaskHandler(tasks *taskUC.UseCase, entries *entriesUC.UseCase, adapter *httpcontext.Adapter, logger *zap.Logger) *TaskHandler {
	return &TaskHandler{
		baseHandler: newBaseHandler(adapter, logger),
		tasks:       tasks,
		entries:     entries,
	}
}

// @Summary Create task
// @Tags tasks
// @Router /api/owner/tasks [post]
func (h *TaskHandler) Create(ctx *fasthttp.RequestCtx) {
	ownerID := h.userID(ctx)
	if ownerID == "" {
		return
	}

	var req transport.TaskCreateRequest
	if !h.decode(ctx, &req) {
		return
	}

	stdCtx, cancel := h.requestContext(ctx)
	defer cancel()

	template, err := h.tasks.CreateTemplate(stdCtx, ownerID, taskUC.CreateInput{
		Name:           req.Name,
		Description:    req.Description,
		ScheduledTime:  req.ScheduledTime,
		Order:          req.Order,
		FromTemplateID: req.FromTemplateID,
	})
	if err != nil {
		h.respondError(ctx, err)
		return
	}
	h.respondSuccess(ctx, http.StatusCreated, template)
}

// @Summary List tasks
// @Tags tasks
// @Router /api/owner/tasks [get]
func (h *TaskHandler) List(ctx *fasthttp.RequestCtx) {
	ownerID := h.userID(ctx)
	if ownerID == "" {
		return
	}
	activeOnly := string(ctx.QueryArgs().Peek("active")) != "false"

	stdCtx, cancel := h.requestContext(ctx)
	defer cancel()

	templates, err := h.tasks.ListTemplates(stdCtx, ownerID, activeOnly)
	if err != nil {
		h.respondError(ctx, err)
		return
	}
	h.respondSuccess(ctx, http.StatusOK, templates)
}

// @Summary Get task
// @Tags tasks
// @Router /api/owner/tasks/{id} [get]
func (h *TaskHandler) Get(ctx *fasthttp.RequestCtx) {
	ownerID := h.userID(ctx)
	if ownerID == "" {
		return
	}
	templateID := h.pathParam(ctx, "id")
	if templateID == "" {
		h.respondInvalid(ctx, "missing task id")
		return
	}

	stdCtx, cancel := h.requestContext(ctx)
	defer cancel()

	template, err := h.tasks.GetTemplate(stdCtx, ownerID, templateID)
	if err != nil {
		h.respondError(ctx, err)
		return
	}
	h.respondSuccess(ctx, http.StatusOK, template)
}

// @Summary Update task
// @Tags tasks
// @Router /api/owner/tasks/{id} [put]
func (h *TaskHandler) Update(ctx *fasthttp.RequestCtx) {
	ownerID := h.userID(ctx)
	if ownerID == "" {
		return
	}
	templateID := h.pathParam(ctx, "id")
	if templateID == "" {
		h.respondInvalid(ctx, "missing task id")
		return
	}

	var req transport.TaskUpdateRequest
	if !h.decode(ctx, &req) {
		return
	}

	stdCtx, cancel := h.requestContext(ctx)
	defer cancel()

	template, err := h.tasks.UpdateTemplate(stdCtx, ownerID, templateID, taskUC.UpdateInput{
		Name:          req.Name,
		Description:   req.Description,
		ScheduledTime: req.ScheduledTime,
	})
	if err != nil {
		h.respondError(ctx, err)
		return
	}
	h.respondSuccess(ctx, http.StatusOK, template)
}

// @Summary Delete task
// @Tags tasks
// @Router /api/owner/tasks/{id} [delete]
func (h *TaskHandler) Delete(ctx *fasthttp.RequestCtx) {
	ownerID := h.userID(ctx)
	if ownerID == "" {
		return
	}
	templateID := h.pathParam(ctx, "id")
	if templateID == "" {
		h.respondInvalid(ctx, "missing task id")
		return
	}

	stdCtx, cancel := h.requestContext(ctx)
	defer cancel()

	if err := h.tasks.DeleteTemplate(stdCtx, ownerID, templateID); err != nil {
		h.respondError(ctx, err)
		return
	}
	h.respondSuccess(ctx, http.StatusNoContent, nil)
}

// @Summary Reorder tasks
// @Tags tasks
// @Router /api/owner/tasks/reorder [put]
func (h *TaskHandler) Reorder(ctx *fasthttp.RequestCtx) {
	ownerID := h.userID(ctx)
	if ownerID == "" {
		return
	}

	var req transport.ReorderRequest
	if !h.decode(ctx, &req) {
		return
	}

	updates := make([]domain.OrderUpdate, 0, len(req.Tasks))
	for _, item := range req.Tasks {
		updates = append(updates, domain.OrderUpdate{ID: item.ID, Order: item.Order})
	}

	stdCtx, cancel := h.requestContext(ctx)
	defer cancel()

	if err := h.tasks.Reorder(stdCtx, ownerID, updates); err != nil {
		h.respondError(ctx, err)
		return
	}
	h.respondSuccess(ctx, http.StatusOK, nil)
}

// @Summary Library templates
// @Tags tasks
// @Router /api/owner/template-library [get]
func (h *TaskHandler) Library(ctx *fasthttp.RequestCtx) {
	stdCtx, cancel := h.requestContext(ctx)
	defer cancel()

	templates, err := h.tasks.ListLibrary(stdCtx)
	if err != nil {
		h.respondError(ctx, err)
		return
	}
	h.respondSuccess(ctx, http.StatusOK, templates)
}

// @Summary Completion feed
// @Tags tasks
// @Router /api/owner/entries [get]
func (h *TaskHandler) Entries(ctx *fasthttp.RequestCtx) {
	ownerID := h.userID(ctx)
	if ownerID == "" {
		return
	}

	opts, ok := h.listOptions(ctx)
	if !ok {
		return
	}

	stdCtx, cancel := h.requestContext(ctx)
	defer cancel()

	entries, timezone, err := h.entries.ListForOwner(stdCtx, ownerID, opts)
	if err != nil {
		h.respondError(ctx, err)
		return
	}
	h.respondSuccessMeta(ctx, http.StatusOK, entries, map[string]string{"ownerTimezone": timezone})
}

// @Summary Patient completion history
// @Tags tasks
// @Router /api/owner/patients/{id}/entries [get]
func (h *TaskHandler) PatientEntries(ctx *fasthttp.RequestCtx) {
	ownerID := h.userID(ctx)
	if ownerID == "" {
		return
	}
	patientID := h.pathParam(ctx, "id")
	if patientID == "" {
		h.respondInvalid(ctx, "missing patient id")
		return
	}

	opts, ok := h.listOptions(ctx)
	if !ok {
		return
	}

	stdCtx, cancel := h.requestContext(ctx)
	defer cancel()

	entries, err := h.entries.ListForPatient(stdCtx, ownerID, patientID, opts)
	if err != nil {
		h.respondError(ctx, err)
		return
	}
	h.respondSuccess(ctx, http.StatusOK, entries)
}

// @Summary Day board
// @Tags tasks
// @Router /api/owner/board [get]
func (h *TaskHandler) DayBoard(ctx *fasthttp.RequestCtx) {
	ownerID := h.userID(ctx)
	if ownerID == "" {
		return
	}
	dateKey := string(ctx.QueryArgs().Peek("date"))
	if dateKey == "" {
		h.respondInvalid(ctx, "date query parameter is required")
		return
	}

	stdCtx, cancel := h.requestContext(ctx)
	defer cancel()

	board, err := h.entries.DayBoard(stdCtx, ownerID, dateKey)
	if err != nil {
		h.respondError(ctx, err)
		return
	}
	h.respondSuccess(ctx, http.StatusOK, board)
}
