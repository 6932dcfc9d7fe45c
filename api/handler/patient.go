package handler

import (
	"net/http"

	"github.com/valyala/fasthttp"
	"go.uber.org/zap"

	"github.com/healthcare24/backend/api/transport"
	"github.com/healthcare24/backend/pkg/httpcontext"
	patientsUC "github.com/healthcare24/backend/usecase/patients"
)

// PatientHandler serves the owner's patient roster.
type PatientHandler struct {
	baseHandler
	uc *patientsUC.UseCase
}

func NewPatientHandler(uc *patientsUC.UseCase, adapter *httpcontext.Adapter, logger *zap.Logger) *PatientHandler {
	return &PatientHandler{
		baseHandler: newBaseHandler(adapter, logger),
		uc:          uc,
	}
}

// @Summary Register patient
// @Tags patients
// @Router /api/owner/patients [post]
func (h *PatientHandler) Create(ctx *fasthttp.RequestCtx) {
	ownerID := h.userID(ctx)
	if ownerID == "" {
		return
	}

	var req transport.PatientCreateRequest
	if !h.decode(ctx, &req) {
		return
	}

	stdCtx, cancel := h.requestContext(ctx)
	defer cancel()

	patient, err := h.uc.Create(stdCtx, ownerID, patientsUC.Input{
		Name:    req.Name,
		Address: req.Address,
		Notes:   req.Notes,
	})
	if err != nil {
		h.respondError(ctx, err)
		return
	}
	h.respondSuccess(ctx, http.StatusCreated, patient)
}

// @Summary List patients
// @Tags patients
// @Router /api/owner/patients [get]
func (h *PatientHandler) List(ctx *fasthttp.RequestCtx) {
	ownerID := h.userID(ctx)
	if ownerID == "" {
		return
	}
	activeOnly := string(ctx.QueryArgs().Peek("active")) != "false"

	stdCtx, cancel := h.requestContext(ctx)
	defer cancel()

	patients, err := h.uc.List(stdCtx, ownerID, activeOnly)
	if err != nil {
		h.respondError(ctx, err)
		return
	}
	h.respondSuccess(ctx, http.StatusOK, patients)
}

// @Summary Get patient
// @Tags patients
// @Router /api/owner/patients/{id} [get]
func (h *PatientHandler) Get(ctx *fasthttp.RequestCtx) {
	ownerID := h.userID(ctx)
	if ownerID == "" {
		return
	}
	patientID := h.pathParam(ctx, "id")
	if patientID == "" {
		h.respondInvalid(ctx, "missing patient id")
		return
	}

	stdCtx, cancel := h.requestContext(ctx)
	defer cancel()

	patient, err := h.uc.Get(stdCtx, ownerID, patientID)
	if err != nil {
		h.respondError(ctx, err)
		return
	}
	h.respondSuccess(ctx, http.StatusOK, patient)
}

// @Summary Update patient
// @Tags patients
// @Router /api/owner/patients/{id} [put]
func (h *PatientHandler) Update(ctx *fasthttp.RequestCtx) {
	ownerID := h.userID(ctx)
	if ownerID == "" {
		return
	}
	patientID := h.pathParam(ctx, "id")
	if patientID == "" {
		h.respondInvalid(ctx, "missing patient id")
		return
	}

	var req transport.PatientUpdateRequest
	if !h.decode(ctx, &req) {
		return
	}

	stdCtx, cancel := h.requestContext(ctx)
	defer cancel()

	patient, err := h.uc.Update(stdCtx, ownerID, patientID, patientsUC.UpdateInput{
		Name:    req.Name,
		Address: req.Address,
		Notes:   req.Notes,
	})
	if err != nil {
		h.respondError(ctx, err)
		return
	}
	h.respondSuccess(ctx, http.StatusOK, patient)
}

// @Summary Remove patient
// @Tags patients
// @Router /api/owner/patients/{id} [delete]
func (h *PatientHandler) Delete(ctx *fasthttp.RequestCtx) {
	ownerID := h.userID(ctx)
	if ownerID == "" {
		return
	}
	patientID := h.pathParam(ctx, "id")
	if patientID == "" {
		h.respondInvalid(ctx, "missing patient id")
		return
	}

	stdCtx, cancel := h.requestContext(ctx)
	defer cancel()

	if err := h.uc.Delete(stdCtx, ownerID, patientID); err != nil {
		h.respondError(ctx, err)
		return
	}
	h.respondSuccess(ctx, http.StatusNoContent, nil)
}
