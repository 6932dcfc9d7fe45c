package handler

import (
	"context"
	"encoding/json"
	"net/http"
	"strconv"
	"time"

	"github.com/valyala/fasthttp"
	"go.uber.org/zap"

	"github.com/healthcare24/backend/api/transport"
	"github.com/healthcare24/backend/domain"
	"github.com/healthcare24/backend/pkg/httpcontext"
	"github.com/healthcare24/backend/pkg/wallclock"
	entriesUC "github.com/healthcare24/backend/usecase/entries"
)

type baseHandler struct {
	adapter *httpcontext.Adapter
	logger  *zap.Logger
}

func newBaseHandler(adapter *httpcontext.Adapter, logger *zap.Logger) baseHandler {
	if logger == nil {
		logger = zap.NewNop()
	}
	return baseHandler{adapter: adapter, logger: logger}
}

func (h baseHandler) requestContext(ctx *fasthttp.RequestCtx) (context.Context, context.CancelFunc) {
	if h.adapter != nil {
		return h.adapter.Attach(ctx)
	}
	return context.WithCancel(context.Background())
}

func (h baseHandler) respondJSON(ctx *fasthttp.RequestCtx, status int, payload transport.Envelope) {
	ctx.Response.Header.SetContentType("application/json")
	ctx.SetStatusCode(status)
	body, _ := json.Marshal(payload)
	ctx.SetBody(body)
}

func (h baseHandler) respondSuccess(ctx *fasthttp.RequestCtx, status int, data interface{}) {
	h.respondJSON(ctx, status, transport.NewSuccess(data, nil))
}

func (h baseHandler) respondSuccessMeta(ctx *fasthttp.RequestCtx, status int, data interface{}, meta interface{}) {
	h.respondJSON(ctx, status, transport.NewSuccess(data, meta))
}

func (h baseHandler) respondError(ctx *fasthttp.RequestCtx, err error) {
	status, code := mapError(err)
	h.respondJSON(ctx, status, transport.NewError(code, err.Error(), nil))
}

func (h baseHandler) respondInvalid(ctx *fasthttp.RequestCtx, message string) {
	h.respondJSON(ctx, http.StatusBadRequest, transport.NewError(string(domain.ErrCodeInvalid), message, nil))
}

// userID returns the authenticated user id injected by the auth middleware.
// An empty return means the response has already been written.
func (h baseHandler) userID(ctx *fasthttp.RequestCtx) string {
	userID := string(ctx.Request.Header.Peek(httpcontext.HeaderUserID))
	if userID == "" {
		h.respondJSON(ctx, http.StatusUnauthorized, transport.NewError(string(domain.ErrCodeUnauthorized), "missing user id", nil))
	}
	return userID
}

func (h baseHandler) userRole(ctx *fasthttp.RequestCtx) domain.Role {
	return domain.Role(ctx.Request.Header.Peek(httpcontext.HeaderUserRole))
}

func (h baseHandler) pathParam(ctx *fasthttp.RequestCtx, name string) string {
	value, _ := ctx.UserValue(name).(string)
	return value
}

func (h baseHandler) decode(ctx *fasthttp.RequestCtx, out interface{}) bool {
	if err := json.Unmarshal(ctx.PostBody(), out); err != nil {
		h.respondInvalid(ctx, "invalid payload")
		return false
	}
	return true
}

// listOptions reads the shared entry-feed query parameters. Dates are
// calendar days; the end bound is inclusive.
func (h baseHandler) listOptions(ctx *fasthttp.RequestCtx) (entriesUC.ListOptions, bool) {
	opts := entriesUC.ListOptions{
		PatientID:  string(ctx.QueryArgs().Peek("patientId")),
		TemplateID: string(ctx.QueryArgs().Peek("taskId")),
		Limit:      parseInt(string(ctx.QueryArgs().Peek("limit")), 0),
	}

	if raw := string(ctx.QueryArgs().Peek("startDate")); raw != "" {
		from, err := wallclock.ParseDate(raw, time.UTC)
		if err != nil {
			h.respondInvalid(ctx, "startDate must be YYYY-MM-DD")
			return opts, false
		}
		opts.From = from
	}
	if raw := string(ctx.QueryArgs().Peek("endDate")); raw != "" {
		to, err := wallclock.ParseDate(raw, time.UTC)
		if err != nil {
			h.respondInvalid(ctx, "endDate must be YYYY-MM-DD")
			return opts, false
		}
		opts.To = to.AddDate(0, 0, 1)
	}
	return opts, true
}

func mapError(err error) (int, string) {
	switch {
	case domain.IsDomainError(err, domain.ErrCodeUnauthorized):
		return http.StatusUnauthorized, string(domain.ErrCodeUnauthorized)
	case domain.IsDomainError(err, domain.ErrCodeForbidden):
		return http.StatusForbidden, string(domain.ErrCodeForbidden)
	case domain.IsDomainError(err, domain.ErrCodeInvalid):
		return http.StatusBadRequest, string(domain.ErrCodeInvalid)
	case domain.IsDomainError(err, domain.ErrCodeNotFound):
		return http.StatusNotFound, string(domain.ErrCodeNotFound)
	case domain.IsDomainError(err, domain.ErrCodeConflict):
		return http.StatusConflict, string(domain.ErrCodeConflict)
	default:
		return http.StatusInternalServerError, string(domain.ErrCodeInternal)
	}
}

func parseInt(value string, fallback int) int {
	if v, err := strconv.Atoi(value); err == nil {
		return v
	}
	return fallback
}
