package handler

import (
	"net/http"

	"github.com/valyala/fasthttp"
	"go.uber.org/zap"

	"github.com/healthcare24/backend/api/transport"
	"github.com/healthcare24/backend/domain"
	"github.com/healthcare24/backend/pkg/httpcontext"
	"github.com/healthcare24/backend/repository"
	queriesUC "github.com/healthcare24/backend/usecase/queries"
)

// QueryHandler serves the support query surface for all three roles.
type QueryHandler struct {
	baseHandler
	uc *queriesUC.UseCase
}

func NewQueryHandler(uc *queriesUC.UseCase, adapter *httpcontext.Adapter, logger *zap.Logger) *QueryHandler {
	return &QueryHandler{
		baseHandler: newBaseHandler(adapter, logger),
		uc:          uc,
	}
}

// @Summary Open query
// @Tags queries
// @Router /api/queries [post]
func (h *QueryHandler) Create(ctx *fasthttp.RequestCtx) {
	userID := h.userID(ctx)
	if userID == "" {
		return
	}

	var req transport.QueryCreateRequest
	if !h.decode(ctx, &req) {
		return
	}

	stdCtx, cancel := h.requestContext(ctx)
	defer cancel()

	query, err := h.uc.Create(stdCtx, userID, queriesUC.CreateInput{
		Title:     req.Title,
		Message:   req.Message,
		PatientID: req.PatientID,
	})
	if err != nil {
		h.respondError(ctx, err)
		return
	}
	h.respondSuccess(ctx, http.StatusCreated, query)
}

// @Summary My queries
// @Tags queries
// @Router /api/queries/mine [get]
func (h *QueryHandler) Mine(ctx *fasthttp.RequestCtx) {
	userID := h.userID(ctx)
	if userID == "" {
		return
	}
	status := domain.QueryStatus(ctx.QueryArgs().Peek("status"))

	stdCtx, cancel := h.requestContext(ctx)
	defer cancel()

	queries, err := h.uc.ListMine(stdCtx, userID, status)
	if err != nil {
		h.respondError(ctx, err)
		return
	}
	h.respondSuccess(ctx, http.StatusOK, queries)
}

// @Summary All queries
// @Tags queries
// @Router /api/admin/queries [get]
func (h *QueryHandler) ListAll(ctx *fasthttp.RequestCtx) {
	filter := repository.QueryFilter{
		Status:   domain.QueryStatus(ctx.QueryArgs().Peek("status")),
		Category: domain.Role(ctx.QueryArgs().Peek("category")),
		Limit:    parseInt(string(ctx.QueryArgs().Peek("limit")), 0),
	}

	stdCtx, cancel := h.requestContext(ctx)
	defer cancel()

	queries, err := h.uc.ListAll(stdCtx, filter)
	if err != nil {
		h.respondError(ctx, err)
		return
	}
	h.respondSuccess(ctx, http.StatusOK, queries)
}

// @Summary Update query status
// @Tags queries
// @Router /api/admin/queries/{id}/status [put]
func (h *QueryHandler) UpdateStatus(ctx *fasthttp.RequestCtx) {
	actorID := h.userID(ctx)
	if actorID == "" {
		return
	}
	queryID := h.pathParam(ctx, "id")
	if queryID == "" {
		h.respondInvalid(ctx, "missing query id")
		return
	}

	var req transport.QueryStatusRequest
	if !h.decode(ctx, &req) {
		return
	}

	stdCtx, cancel := h.requestContext(ctx)
	defer cancel()

	query, err := h.uc.UpdateStatus(stdCtx, actorID, queryID, domain.QueryStatus(req.Status))
	if err != nil {
		h.respondError(ctx, err)
		return
	}
	h.respondSuccess(ctx, http.StatusOK, query)
}

// @Summary Delete own query
// @Tags queries
// @Router /api/queries/{id} [delete]
func (h *QueryHandler) Delete(ctx *fasthttp.RequestCtx) {
	userID := h.userID(ctx)
	if userID == "" {
		return
	}
	queryID := h.pathParam(ctx, "id")
	if queryID == "" {
		h.respondInvalid(ctx, "missing query id")
		return
	}

	stdCtx, cancel := h.requestContext(ctx)
	defer cancel()

	if err := h.uc.Delete(stdCtx, userID, queryID); err != nil {
		h.respondError(ctx, err)
		return
	}
	h.respondSuccess(ctx, http.StatusNoContent, nil)
}
