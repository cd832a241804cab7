package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/rafaelmelo2/maonamassa/internal/api/http/handlers"
	"github.com/rafaelmelo2/maonamassa/internal/auth"
	"github.com/rafaelmelo2/maonamassa/internal/domain"
)

// RouteConfig bundles dependencies for route registration.
type RouteConfig struct {
	Health         *handlers.HealthHandler
	Auth           *handlers.AuthHandler
	Users          *handlers.UsersHandler
	Professionals  *handlers.ProfessionalsHandler
	Services       *handlers.ServicesHandler
	Contracts      *handlers.ContractsHandler
	AuthMiddleware *auth.Middleware
}

// RegisterRoutes wires HTTP routes.
func RegisterRoutes(app *fiber.App, cfg RouteConfig) {
	app.Get("/health/live", cfg.Health.Live)
	app.Get("/health/ready", cfg.Health.Ready)

	authGroup := app.Group("/auth")
	authGroup.Post("/register", cfg.Auth.Register)
	authGroup.Post("/login", cfg.Auth.Login)
	authGroup.Post("/password/reset/request", cfg.Auth.RequestPasswordReset)
	authGroup.Post("/password/reset/confirm", cfg.Auth.ConfirmPasswordReset)
	authGroup.Post("/password/change", cfg.AuthMiddleware.Handle, auth.RequireAuthenticated(), cfg.Auth.ChangePassword)

	users := app.Group("/users", cfg.AuthMiddleware.Handle, auth.RequireAuthenticated())
	users.Get("/me", cfg.Users.Me)
	users.Patch("/me", cfg.Users.UpdateMe)
	users.Delete("/me", cfg.Users.DeleteMe)
	users.Post("/me/verify/email", cfg.Users.VerifyEmail)
	users.Post("/me/verify/phone", cfg.Users.VerifyPhone)
	users.Get("/:id/summary", cfg.Users.GetSummary)

	professionals := app.Group("/professionals")
	professionals.Get("/", cfg.Professionals.List)
	professionals.Post("/", cfg.AuthMiddleware.Handle, auth.RequireRole(domain.RoleProfessional), cfg.Professionals.Create)
	professionals.Get("/me", cfg.AuthMiddleware.Handle, auth.RequireRole(domain.RoleProfessional), cfg.Professionals.Me)
	professionals.Patch("/me", cfg.AuthMiddleware.Handle, auth.RequireRole(domain.RoleProfessional), cfg.Professionals.UpdateMe)
	professionals.Post("/me/portfolio", cfg.AuthMiddleware.Handle, auth.RequireRole(domain.RoleProfessional), cfg.Professionals.AddPortfolioItem)
	professionals.Get("/:id", cfg.Professionals.GetSummary)

	services := app.Group("/services")
	services.Get("/", cfg.Services.List)
	services.Get("/:id", cfg.Services.Get)
	services.Post("/", cfg.AuthMiddleware.Handle, auth.RequireRole(domain.RoleProfessional), cfg.Services.Create)
	services.Patch("/:id", cfg.AuthMiddleware.Handle, auth.RequireRole(domain.RoleProfessional), cfg.Services.Update)
	services.Patch("/:id/status", cfg.AuthMiddleware.Handle, auth.RequireRole(domain.RoleProfessional), cfg.Services.SetStatus)
	services.Delete("/:id", cfg.AuthMiddleware.Handle, auth.RequireRole(domain.RoleProfessional), cfg.Services.Delete)

	contracts := app.Group("/contracts", cfg.AuthMiddleware.Handle, auth.RequireAuthenticated())
	contracts.Post("/", cfg.Contracts.Create)
	contracts.Get("/", cfg.Contracts.List)
	contracts.Get("/:id", cfg.Contracts.Get)
	contracts.Patch("/:id/status", cfg.Contracts.UpdateStatus)

	admin := app.Group("/admin", cfg.AuthMiddleware.Handle, auth.RequireRole(domain.RoleAdmin))
	admin.Patch("/users/:id/status", cfg.Users.SetStatus)
	admin.Patch("/professionals/:id/status", cfg.Professionals.SetStatus)
	admin.Post("/professionals/:id/verify", cfg.Professionals.Verify)
	admin.Patch("/professionals/:id/plan", cfg.Professionals.SetPlan)
	admin.Put("/professionals/:id/metrics", cfg.Professionals.UpdateMetrics)
}
