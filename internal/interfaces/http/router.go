package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/crimsng/crims-api/internal/application/auth"
	"github.com/crimsng/crims-api/internal/application/usecase"
	"github.com/crimsng/crims-api/internal/domain/entity"
)

// RouterDeps carries the wired use cases and auth collaborators.
type RouterDeps struct {
	AuthUC        *auth.AuthUseCase
	CriminalUC    *usecase.CriminalUseCase
	SuspectUC     *usecase.SuspectUseCase
	ComplainantUC *usecase.ComplainantUseCase
	StatsUC       *usecase.StatsUseCase

	Users        UserFinder
	JWTSecret    string
	LoginLimiter fiber.Handler
}

// Router registers the API routes. Record reads and writes are open to any
// authenticated role; every delete and all user administration is admin only.
func Router(app *fiber.App, deps RouterDeps) {
	api := app.Group("/api")

	staff := RequireRole(entity.RoleOfficer, entity.RoleAdmin)
	adminOnly := RequireRole(entity.RoleAdmin)

	// Auth (public entry points, then admin user management)
	authHandler := NewAuthHandler(deps.AuthUC)
	authGroup := api.Group("/auth")
	authGroup.Post("/register", authHandler.Register)
	if deps.LoginLimiter != nil {
		authGroup.Post("/login", deps.LoginLimiter, authHandler.Login)
	} else {
		authGroup.Post("/login", authHandler.Login)
	}

	protected := api.Group("/", AuthMiddleware(deps.JWTSecret, deps.Users))

	users := protected.Group("/auth")
	users.Get("/users", adminOnly, authHandler.ListUsers)
	users.Delete("/users/:id", adminOnly, authHandler.DeleteUser)
	users.Put("/promote/:id", adminOnly, authHandler.Promote)

	// Criminals
	criminals := protected.Group("/criminals", staff)
	criminalHandler := NewCriminalHandler(deps.CriminalUC)
	criminals.Post("/", criminalHandler.Create)
	criminals.Get("/", criminalHandler.List)
	criminals.Get("/photo/:id", criminalHandler.Photo)
	criminals.Get("/thumbprint/:id", criminalHandler.Thumbprint)
	criminals.Get("/export/pdf", criminalHandler.ExportPDF)
	criminals.Put("/:id", criminalHandler.Update)
	criminals.Delete("/:id", adminOnly, criminalHandler.Delete)

	// Suspects
	suspects := protected.Group("/suspects", staff)
	suspectHandler := NewSuspectHandler(deps.SuspectUC)
	suspects.Post("/", suspectHandler.Create)
	suspects.Get("/", suspectHandler.List)
	suspects.Get("/photo/:id", suspectHandler.Photo)
	suspects.Get("/thumbprint/:id", suspectHandler.Thumbprint)
	suspects.Put("/:id", suspectHandler.Update)
	suspects.Delete("/:id", adminOnly, suspectHandler.Delete)

	// Complainants
	complainants := protected.Group("/complainants", staff)
	complainantHandler := NewComplainantHandler(deps.ComplainantUC)
	complainants.Post("/", complainantHandler.Create)
	complainants.Get("/", complainantHandler.List)
	complainants.Get("/photo/:id", complainantHandler.Photo)
	complainants.Put("/:id", complainantHandler.Update)
	complainants.Delete("/:id", adminOnly, complainantHandler.Delete)

	// Stats
	statsHandler := NewStatsHandler(deps.StatsUC)
	protected.Get("/stats", staff, statsHandler.Summary)
}
