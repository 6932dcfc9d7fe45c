package router

import (
	"github.com/fasthttp/router"
	"github.com/valyala/fasthttp"

	apiHandler "github.com/healthcare24/backend/api/handler"
	"github.com/healthcare24/backend/domain"
	"github.com/healthcare24/backend/internal/middleware"
)

type Handlers struct {
	Auth    *apiHandler.AuthHandler
	Admin   *apiHandler.AdminHandler
	Patient *apiHandler.PatientHandler
	Task    *apiHandler.TaskHandler
	Nurse   *apiHandler.NurseHandler
	Query   *apiHandler.QueryHandler
	Health  *apiHandler.HealthHandler
}

// New builds the route table. Every /api route except login and refresh goes
// through JWT auth; role-scoped groups add a role gate on top.
func New(handlers Handlers, auth func(fasthttp.RequestHandler) fasthttp.RequestHandler) *router.Router {
	r := router.New()

	admin := func(h fasthttp.RequestHandler) fasthttp.RequestHandler {
		return auth(middleware.RequireRole(domain.RoleAdmin)(h))
	}
	owner := func(h fasthttp.RequestHandler) fasthttp.RequestHandler {
		return auth(middleware.RequireRole(domain.RoleOwner)(h))
	}
	nurse := func(h fasthttp.RequestHandler) fasthttp.RequestHandler {
		return auth(middleware.RequireRole(domain.RoleNurse)(h))
	}

	r.GET("/health", handlers.Health.Check)

	// Auth
	r.POST("/api/auth/login", handlers.Auth.Login)
	r.POST("/api/auth/refresh", handlers.Auth.Refresh)
	r.POST("/api/auth/logout", auth(handlers.Auth.Logout))

	// Profile (any authenticated role)
	r.GET("/api/profile", auth(handlers.Auth.Me))
	r.PUT("/api/profile", auth(handlers.Auth.UpdateMe))
	r.PUT("/api/profile/password", auth(handlers.Auth.ChangePassword))

	// Admin
	r.POST("/api/admin/owners", admin(handlers.Admin.CreateOwner))
	r.GET("/api/admin/owners", admin(handlers.Admin.ListOwners))
	r.POST("/api/admin/nurses", admin(handlers.Admin.CreateNurse))
	r.GET("/api/admin/nurses", admin(handlers.Admin.ListNurses))
	r.POST("/api/admin/assignments", admin(handlers.Admin.AssignNurse))
	r.GET("/api/admin/assignments", admin(handlers.Admin.ListAssignments))
	r.POST("/api/admin/template-library/seed", admin(handlers.Admin.SeedLibrary))
	r.GET("/api/admin/template-library", admin(handlers.Admin.ListLibrary))
	r.GET("/api/admin/queries", admin(handlers.Query.ListAll))
	r.PUT("/api/admin/queries/{id}/status", admin(handlers.Query.UpdateStatus))

	// Owner: patients
	r.POST("/api/owner/patients", owner(handlers.Patient.Create))
	r.GET("/api/owner/patients", owner(handlers.Patient.List))
	r.GET("/api/owner/patients/{id}", owner(handlers.Patient.Get))
	r.PUT("/api/owner/patients/{id}", owner(handlers.Patient.Update))
	r.DELETE("/api/owner/patients/{id}", owner(handlers.Patient.Delete))
	r.GET("/api/owner/patients/{id}/entries", owner(handlers.Task.PatientEntries))

	// Owner: tasks and the completion feed
	r.POST("/api/owner/tasks", owner(handlers.Task.Create))
	r.GET("/api/owner/tasks", owner(handlers.Task.List))
	r.PUT("/api/owner/tasks/reorder", owner(handlers.Task.Reorder))
	r.GET("/api/owner/tasks/{id}", owner(handlers.Task.Get))
	r.PUT("/api/owner/tasks/{id}", owner(handlers.Task.Update))
	r.DELETE("/api/owner/tasks/{id}", owner(handlers.Task.Delete))
	r.GET("/api/owner/template-library", owner(handlers.Task.Library))
	r.GET("/api/owner/entries", owner(handlers.Task.Entries))
	r.GET("/api/owner/board", owner(handlers.Task.DayBoard))

	// Nurse
	r.GET("/api/nurse/patients", nurse(handlers.Nurse.Patients))
	r.GET("/api/nurse/patients/{id}", nurse(handlers.Nurse.Patient))
	r.GET("/api/nurse/patients/{id}/tasks", nurse(handlers.Nurse.PatientTasks))
	r.POST("/api/nurse/entries", nurse(handlers.Nurse.SubmitTask))
	r.GET("/api/nurse/entries", nurse(handlers.Nurse.MyEntries))

	// Queries (owner and nurse create and manage their own)
	r.POST("/api/queries", auth(handlers.Query.Create))
	r.GET("/api/queries/mine", auth(handlers.Query.Mine))
	r.DELETE("/api/queries/{id}", auth(handlers.Query.Delete))

	return r
}
