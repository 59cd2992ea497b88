package main

import (
	"context"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/cors"
	"github.com/joho/godotenv"
	"go.mongodb.org/mongo-driver/mongo/readpref"

	"github.com/taskboard/taskboard-go/internal/config"
	"github.com/taskboard/taskboard-go/internal/handler"
	"github.com/taskboard/taskboard-go/internal/middleware"
	"github.com/taskboard/taskboard-go/internal/repository"
	"github.com/taskboard/taskboard-go/internal/service"
)

func main() {
	if err := godotenv.Load(); err != nil {
		slog.Warn("no .env file found, using environment variables")
	}

	cfg := config.Load()

	connectCtx, connectCancel := context.WithTimeout(context.Background(), 10*time.Second)
	client, err := repository.Connect(connectCtx, cfg.MongoURI)
	connectCancel()
	if err != nil {
		slog.Error("database connection failed", "error", err)
		os.Exit(1)
	}
	db := client.Database(cfg.MongoDB)

	taskRepo := repository.NewTaskRepository(db)
	credRepo := repository.NewCredentialRepository(db)
	profileRepo := repository.NewProfileRepository(db)

	taskService := service.NewTaskService(taskRepo)
	authService := service.NewAuthService(credRepo, profileRepo, cfg.JWTSecret, cfg.JWTExpiry)
	userService := service.NewUserService(profileRepo)

	taskHandler := handler.NewTaskHandler(taskService)
	authHandler := handler.NewAuthHandler(authService)
	userHandler := handler.NewUserHandler(userService)

	r := chi.NewRouter()
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: []string{"*"},
		AllowedMethods: []string{"GET", "POST", "PATCH", "DELETE", "OPTIONS"},
		AllowedHeaders: []string{"Accept", "Authorization", "Content-Type"},
	}))
	r.Use(middleware.Logger)

	r.Get("/", handler.HealthCheck(func(ctx context.Context) error {
		return client.Ping(ctx, readpref.Primary())
	}))

	r.Get("/todos", taskHandler.HandleList)
	r.Post("/create", taskHandler.HandleCreate)
	r.Get("/todos/{id}", taskHandler.HandleGet)

	// Paths the original frontend calls, mutating via GET.
	r.Get("/todos/update/{id}/{columnId}", taskHandler.HandleUpdateStatusPath)
	r.Get("/todos/delete/{id}", taskHandler.HandleDelete)

	r.Patch("/todos/{id}/status", taskHandler.HandleUpdateStatus)
	r.Delete("/todos/{id}", taskHandler.HandleDelete)

	r.Post("/user/update/name", userHandler.HandleUpdateName)

	r.Group(func(r chi.Router) {
		r.Use(middleware.RateLimit(5, 10))
		r.Post("/signup", authHandler.HandleSignup)
		r.Post("/login", authHandler.HandleLogin)
	})

	r.Group(func(r chi.Router) {
		r.Use(middleware.JWTAuth(cfg.JWTSecret))
		r.Get("/user", userHandler.HandleProfile)
	})

	srv := &http.Server{
		Addr:    ":" + cfg.Port,
		Handler: r,
	}

	go func() {
		slog.Info("server starting", "port", cfg.Port, "env", cfg.Env)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			slog.Error("server error", "error", err)
			os.Exit(1)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	slog.Info("shutting down server")
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		slog.Error("server forced shutdown", "error", err)
	}

	if err := client.Disconnect(ctx); err != nil {
		slog.Error("database disconnect failed", "error", err)
	}

	slog.Info("server stopped")
}
