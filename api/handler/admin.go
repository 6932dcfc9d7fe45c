package handler

import (
	"net/http"

	"github.com/valyala/fasthttp"
	"go.uber.org/zap"

	"github.com/healthcare24/backend/api/transport"
	"github.com/healthcare24/backend/domain"
	"github.com/healthcare24/backend/pkg/httpcontext"
	"github.com/healthcare24/backend/repository"
	adminUC "github.com/healthcare24/backend/usecase/admin"
)

// AdminHandler serves the platform administration surface: provisioning
// owner and nurse accounts, nurse-to-patient assignments and the shared
// task template library.
type AdminHandler struct {
	baseHandler
	uc *adminUC.UseCase
}

func NewAdminHandler(uc *adminUC.UseCase, adapter *httpcontext.Adapter, logger *zap.Logger) *AdminHandler {
	return &AdminHandler{
		baseHandler: newBaseHandler(adapter, logger),
		uc:          uc,
	}
}

// @Summary Create owner account
// @Tags admin
// @Router /api/admin/owners [post]
func (h *AdminHandler) CreateOwner(ctx *fasthttp.RequestCtx) {
	h.createUser(ctx, domain.RoleOwner)
}

// @Summary Create nurse account
// @Tags admin
// @Router /api/admin/nurses [post]
func (h *AdminHandler) CreateNurse(ctx *fasthttp.RequestCtx) {
	h.createUser(ctx, domain.RoleNurse)
}

func (h *AdminHandler) createUser(ctx *fasthttp.RequestCtx, role domain.Role) {
	var req transport.CreateUserRequest
	if !h.decode(ctx, &req) {
		return
	}

	stdCtx, cancel := h.requestContext(ctx)
	defer cancel()

	user, err := h.uc.CreateUser(stdCtx, role, adminUC.CreateUserInput{
		Email:    req.Email,
		Name:     req.Name,
		Password: req.Password,
		Phone:    req.Phone,
		Timezone: req.Timezone,
	})
	if err != nil {
		h.respondError(ctx, err)
		return
	}
	h.respondSuccess(ctx, http.StatusCreated, user)
}

// @Summary List owner accounts
// @Tags admin
// @Router /api/admin/owners [get]
func (h *AdminHandler) ListOwners(ctx *fasthttp.RequestCtx) {
	h.listUsers(ctx, domain.RoleOwner)
}

// @Summary List nurse accounts
// @Tags admin
// @Router /api/admin/nurses [get]
func (h *AdminHandler) ListNurses(ctx *fasthttp.RequestCtx) {
	h.listUsers(ctx, domain.RoleNurse)
}

func (h *AdminHandler) listUsers(ctx *fasthttp.RequestCtx, role domain.Role) {
	stdCtx, cancel := h.requestContext(ctx)
	defer cancel()

	users, err := h.uc.ListUsers(stdCtx, role)
	if err != nil {
		h.respondError(ctx, err)
		return
	}
	h.respondSuccess(ctx, http.StatusOK, users)
}

// @Summary Assign nurse to patient
// @Tags admin
// @Router /api/admin/assignments [post]
func (h *AdminHandler) AssignNurse(ctx *fasthttp.RequestCtx) {
	adminID := h.userID(ctx)
	if adminID == "" {
		return
	}

	var req transport.AssignNurseRequest
	if !h.decode(ctx, &req) {
		return
	}
	if req.NurseID == "" || req.PatientID == "" {
		h.respondInvalid(ctx, "nurseId and patientId are required")
		return
	}

	stdCtx, cancel := h.requestContext(ctx)
	defer cancel()

	assignment, err := h.uc.AssignNurse(stdCtx, adminID, req.NurseID, req.PatientID)
	if err != nil {
		h.respondError(ctx, err)
		return
	}
	h.respondSuccess(ctx, http.StatusCreated, assignment)
}

// @Summary List assignments
// @Tags admin
// @Router /api/admin/assignments [get]
func (h *AdminHandler) ListAssignments(ctx *fasthttp.RequestCtx) {
	filter := repository.AssignmentFilter{
		NurseID:   string(ctx.QueryArgs().Peek("nurseId")),
		PatientID: string(ctx.QueryArgs().Peek("patientId")),
	}
	if ctx.QueryArgs().Has("active") {
		active := string(ctx.QueryArgs().Peek("active")) == "true"
		filter.Active = &active
	}

	stdCtx, cancel := h.requestContext(ctx)
	defer cancel()

	assignments, err := h.uc.ListAssignments(stdCtx, filter)
	if err != nil {
		h.respondError(ctx, err)
		return
	}
	h.respondSuccess(ctx, http.StatusOK, assignments)
}

// @Summary Seed template library
// @Tags admin
// @Router /api/admin/template-library/seed [post]
func (h *AdminHandler) SeedLibrary(ctx *fasthttp.RequestCtx) {
	stdCtx, cancel := h.requestContext(ctx)
	defer cancel()

	added, err := h.uc.SeedLibrary(stdCtx)
	if err != nil {
		h.respondError(ctx, err)
		return
	}
	h.respondSuccess(ctx, http.StatusOK, map[string]int{"seeded": added})
}

// @Summary List template library
// @Tags admin
// @Router /api/admin/template-library [get]
func (h *AdminHandler) ListLibrary(ctx *fasthttp.RequestCtx) {
	stdCtx, cancel := h.requestContext(ctx)
	defer cancel()

	templates, err := h.uc.ListLibrary(stdCtx)
	if err != nil {
		h.respondError(ctx, err)
		return
	}
	h.respondSuccess(ctx, http.StatusOK, templates)
}
