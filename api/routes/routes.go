package routes

import (
	"time"

	"jobhive/api/handler"
	"jobhive/api/middleware"
	"jobhive/internal/entity"

	"github.com/labstack/echo/v4"
	"golang.org/x/time/rate"
)

type Router struct {
	Echo           *echo.Echo
	Auth           *handler.AuthHandler
	Jobs           *handler.JobHandler
	Applications   *handler.ApplicationHandler
	Profiles       *handler.ProfileHandler
	AuthMiddleware middleware.AuthMiddleware
	RegisterRate   *middleware.RateLimiter
	LoginRate      *middleware.RateLimiter
}

func NewRouter(
	e *echo.Echo,
	auth *handler.AuthHandler,
	jobs *handler.JobHandler,
	applications *handler.ApplicationHandler,
	profiles *handler.ProfileHandler,
	authMiddleware middleware.AuthMiddleware,
) *Router {
	return &Router{
		Echo:           e,
		Auth:           auth,
		Jobs:           jobs,
		Applications:   applications,
		Profiles:       profiles,
		AuthMiddleware: authMiddleware,
		RegisterRate:   middleware.NewRateLimiter(rate.Limit(5), 10, 5*time.Minute),
		LoginRate:      middleware.NewRateLimiter(rate.Limit(2), 4, 10*time.Minute),
	}
}

func (r *Router) RegisterRoutes() {
	e := r.Echo

	// Every request resolves the session cookie once; handlers read the
	// result from context.
	e.Use(r.AuthMiddleware.LoadSession)

	requireAuth := r.AuthMiddleware.RequireAuth
	employerOnly := middleware.RequireRole(entity.UserRoleEmployer)
	applicantOnly := middleware.RequireRole(entity.UserRoleApplicant)
	adminOnly := middleware.RequireRole(entity.UserRoleAdmin)

	e.POST("/auth/register", r.Auth.Register, r.RegisterRate.Middleware())
	e.POST("/auth/login", r.Auth.Login, r.LoginRate.Middleware())
	e.POST("/auth/logout", r.Auth.Logout)
	e.GET("/me", r.Auth.Me, requireAuth)

	e.GET("/jobs", r.Jobs.List, requireAuth)
	e.GET("/jobs/:id", r.Jobs.Get, requireAuth)
	e.POST("/jobs/:id/apply", r.Applications.Apply, requireAuth, applicantOnly)
	e.GET("/applications", r.Applications.Mine, requireAuth, applicantOnly)

	e.POST("/employer/jobs", r.Jobs.Create, requireAuth, employerOnly)
	e.GET("/employer/jobs", r.Jobs.ListMine, requireAuth, employerOnly)
	e.PUT("/employer/jobs/:id", r.Jobs.Update, requireAuth, employerOnly)
	e.DELETE("/employer/jobs/:id", r.Jobs.Delete, requireAuth, employerOnly)
	e.GET("/employer/candidates", r.Applications.Candidates, requireAuth, employerOnly)
	e.GET("/employer/candidates/:id", r.Applications.Candidate, requireAuth, employerOnly)
	e.PATCH("/employer/candidates/:id/status", r.Applications.UpdateStatus, requireAuth, employerOnly)

	e.GET("/employer/profile", r.Profiles.GetEmployer, requireAuth, employerOnly)
	e.PUT("/employer/profile", r.Profiles.UpdateEmployer, requireAuth, employerOnly)
	e.GET("/applicant/profile", r.Profiles.GetApplicant, requireAuth, applicantOnly)
	e.PUT("/applicant/profile", r.Profiles.UpdateApplicant, requireAuth, applicantOnly)
	e.PUT("/settings/account", r.Profiles.UpdateAccount, requireAuth)
	e.PUT("/settings/password", r.Profiles.ChangePassword, requireAuth)

	e.GET("/admin/users", r.Auth.AdminListUsers, requireAuth, adminOnly)
	e.POST("/admin/users/:id/revoke-sessions", r.Auth.AdminRevokeUserSessions, requireAuth, adminOnly)
}
