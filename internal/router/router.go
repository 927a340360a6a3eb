package router

import (
	"net/http"
	"time"

	middleware2 "task-manager-service/pkg/middleware"

	"task-manager-service/internal/handler"
	"task-manager-service/internal/middleware"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	httpSwagger "github.com/swaggo/http-swagger"
)

func SetupRouter(
	authHandler *handler.AuthHandler,
	teamHandler *handler.TeamHandler,
	taskHandler *handler.TaskHandler,
	healthHandler *handler.HealthHandler,
	verifier middleware.TokenVerifier,
) http.Handler {
	r := chi.NewRouter()

	// Global middlewares
	r.Use(chimiddleware.RequestID)
	r.Use(chimiddleware.RealIP)
	r.Use(chimiddleware.Recoverer)
	r.Use(middleware2.LoggingMiddleware)
	r.Use(chimiddleware.Timeout(15 * time.Second))

	// Swagger documentation
	r.Get("/swagger/*", httpSwagger.WrapHandler)

	// Public endpoints
	r.Get("/health", healthHandler.Health)
	r.Post("/auth/register", authHandler.Register)
	r.Post("/auth/login", authHandler.Login)

	// Protected endpoints (require JWT authentication)
	r.Group(func(r chi.Router) {
		r.Use(middleware.AuthMiddleware(verifier))

		r.Get("/teams/{teamId}/tasks", taskHandler.ListTeamTasks)
		r.Put("/tasks/{taskId}", taskHandler.UpdateTask)
	})

	// Admin-only endpoints (require JWT + ADMIN role)
	r.Group(func(r chi.Router) {
		r.Use(middleware.AuthMiddleware(verifier))
		r.Use(middleware.AdminMiddleware())

		r.Get("/tasks", taskHandler.ListTasks)
		r.Post("/tasks/{teamId}/{assignedTo}", taskHandler.CreateTask)
		r.Delete("/tasks/{taskId}", taskHandler.DeleteTask)

		r.Get("/teams", teamHandler.ListTeams)
		r.Get("/teams/{teamId}/members", teamHandler.ListTeamMembers)
		r.Post("/teams", teamHandler.CreateTeam)
		r.Put("/teams/{teamId}", teamHandler.UpdateTeam)
		r.Post("/teams/{teamId}/members", teamHandler.AddMembers)
		r.Delete("/teams/{teamId}/members", teamHandler.RemoveMembers)
	})

	return r
}
