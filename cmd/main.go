package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	config2 "task-manager-service/pkg/config"

	_ "task-manager-service/docs"
	"task-manager-service/internal/handler"
	"task-manager-service/internal/repository"
	"task-manager-service/internal/router"
	"task-manager-service/internal/service"
	"task-manager-service/migrations"

	"github.com/go-playground/validator/v10"
)

// @title Task Manager Service API
// @version 1.0
// @description Role-based task and team management service
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description Type "Bearer" followed by a space and JWT token.
func main() {
	// Configure logger
	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))
	slog.SetDefault(logger)

	// Load configuration
	cfg, err := config2.Load()
	if err != nil {
		slog.Error("failed to load config", "error", err)
		os.Exit(1)
	}

	// Apply migrations
	if err := config2.RunMigrations(*cfg, migrations.FS); err != nil {
		slog.Error("failed to run migrations", "error", err)
		os.Exit(1)
	}

	// Connect to database
	pool, err := config2.MustInitDB(context.Background(), *cfg)
	if err != nil {
		slog.Error("failed to connect to database", "error", err)
		os.Exit(1)
	}
	defer pool.Close()

	slog.Info("successfully connected to database")

	// Initialize repositories
	userRepo := repository.NewUserRepository(pool)
	teamRepo := repository.NewTeamRepository(pool)
	taskRepo := repository.NewTaskRepository(pool)

	// Initialize validator
	validate := validator.New()

	// Initialize services
	policy := service.NewAccessPolicy(teamRepo)
	authService := service.NewAuthService(userRepo, cfg.JWTSecret, cfg.JWTTTL)
	teamService := service.NewTeamService(teamRepo, userRepo)
	taskService := service.NewTaskService(taskRepo, teamRepo, userRepo, policy)

	// Initialize handlers
	authHandler := handler.NewAuthHandler(authService, validate)
	teamHandler := handler.NewTeamHandler(teamService, validate)
	taskHandler := handler.NewTaskHandler(taskService, validate)
	healthHandler := handler.NewHealthHandler()

	slog.Info("successfully configured services and handlers")

	// Setup router
	r := router.SetupRouter(
		authHandler,
		teamHandler,
		taskHandler,
		healthHandler,
		authService,
	)

	// Create HTTP server
	srv := &http.Server{
		Addr:         ":" + cfg.Port,
		Handler:      r,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	// Start server in goroutine
	go func() {
		slog.Info("starting server", "port", cfg.Port)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			slog.Error("server error", "error", err)
		}
	}()

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	slog.Info("shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		slog.Error("server forced to shutdown", "error", err)
	}

	slog.Info("server stopped")
}
