package handler

import (
	"net/http"

	"github.com/valyala/fasthttp"
	"go.uber.org/zap"

	"github.com/healthcare24/backend/api/transport"
	"github.com/healthcare24/backend/pkg/httpcontext"
	authUC "github.com/healthcare24/backend/usecase/auth"
	profileUC "github.com/healthcare24/backend/usecase/profile"
)

// AuthHandler serves login, session refresh and the caller's own profile.
type AuthHandler struct {
	baseHandler
	auth    *authUC.UseCase
	profile *profileUC.UseCase
}

func NewAuthHandler(auth *authUC.UseCase, profile *profileUC.UseCase, adapter *httpcontext.Adapter, logger *zap.Logger) *AuthHandler {
	return &AuthHandler{
		baseHandler: newBaseHandler(adapter, logger),
		auth:        auth,
		profile:     profile,
	}
}

// @Summary Log in
// @Tags auth
// @Router /api/auth/login [post]
func (h *AuthHandler) Login(ctx *fasthttp.RequestCtx) {
	var req transport.LoginRequest
	if !h.decode(ctx, &req) {
		return
	}
	if req.Email == "" || req.Password == "" {
		h.respondInvalid(ctx, "email and password are required")
		return
	}

	stdCtx, cancel := h.requestContext(ctx)
	defer cancel()

	result, err := h.auth.Login(stdCtx, req.Email, req.Password)
	if err != nil {
		h.respondError(ctx, err)
		return
	}
	h.respondSuccess(ctx, http.StatusOK, result)
}

// @Summary Refresh session
// @Tags auth
// @Router /api/auth/refresh [post]
func (h *AuthHandler) Refresh(ctx *fasthttp.RequestCtx) {
	var req transport.RefreshRequest
	if !h.decode(ctx, &req) {
		return
	}
	if req.SessionID == "" {
		h.respondInvalid(ctx, "sessionId is required")
		return
	}

	stdCtx, cancel := h.requestContext(ctx)
	defer cancel()

	result, err := h.auth.RefreshSession(stdCtx, req.SessionID)
	if err != nil {
		h.respondError(ctx, err)
		return
	}
	h.respondSuccess(ctx, http.StatusOK, result)
}

// @Summary Log out
// @Tags auth
// @Router /api/auth/logout [post]
func (h *AuthHandler) Logout(ctx *fasthttp.RequestCtx) {
	var req transport.RefreshRequest
	if !h.decode(ctx, &req) {
		return
	}

	stdCtx, cancel := h.requestContext(ctx)
	defer cancel()

	if req.SessionID != "" {
		if err := h.auth.RevokeSession(stdCtx, req.SessionID); err != nil {
			h.respondError(ctx, err)
			return
		}
	}
	h.respondSuccess(ctx, http.StatusOK, nil)
}

// @Summary Current profile
// @Tags auth
// @Router /api/profile [get]
func (h *AuthHandler) Me(ctx *fasthttp.RequestCtx) {
	userID := h.userID(ctx)
	if userID == "" {
		return
	}

	stdCtx, cancel := h.requestContext(ctx)
	defer cancel()

	user, err := h.profile.Get(stdCtx, userID)
	if err != nil {
		h.respondError(ctx, err)
		return
	}
	h.respondSuccess(ctx, http.StatusOK, user)
}

// @Summary Update profile
// @Tags auth
// @Router /api/profile [put]
func (h *AuthHandler) UpdateMe(ctx *fasthttp.RequestCtx) {
	userID := h.userID(ctx)
	if userID == "" {
		return
	}

	var req transport.ProfileUpdateRequest
	if !h.decode(ctx, &req) {
		return
	}

	stdCtx, cancel := h.requestContext(ctx)
	defer cancel()

	user, err := h.profile.Update(stdCtx, userID, profileUC.UpdateInput{
		Name:     req.Name,
		Phone:    req.Phone,
		Timezone: req.Timezone,
	})
	if err != nil {
		h.respondError(ctx, err)
		return
	}
	h.respondSuccess(ctx, http.StatusOK, user)
}

// @Summary Change password
// @Tags auth
// @Router /api/profile/password [put]
func (h *AuthHandler) ChangePassword(ctx *fasthttp.RequestCtx) {
	userID := h.userID(ctx)
	if userID == "" {
		return
	}

	var req transport.ChangePasswordRequest
	if !h.decode(ctx, &req) {
		return
	}

	stdCtx, cancel := h.requestContext(ctx)
	defer cancel()

	if err := h.profile.ChangePassword(stdCtx, userID, req.CurrentPassword, req.NewPassword); err != nil {
		h.respondError(ctx, err)
		return
	}
	h.respondSuccess(ctx, http.StatusOK, nil)
}
