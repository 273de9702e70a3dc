package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/kwhite/taskboard/internal/api"
	"github.com/kwhite/taskboard/internal/authz"
	"github.com/kwhite/taskboard/internal/config"
	"github.com/kwhite/taskboard/internal/domain"
	"github.com/kwhite/taskboard/internal/metrics"
	"github.com/kwhite/taskboard/internal/repository"
	"github.com/kwhite/taskboard/internal/repository/postgres"
	"github.com/kwhite/taskboard/internal/service"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	// Initialize database
	db, err := postgres.NewConnection(cfg.DatabaseURL)
	if err != nil {
		log.Fatalf("failed to connect to database: %v", err)
	}

	// Initialize repositories and services
	repos := postgres.NewRepositories(db)
	services := service.NewServices(repos, cfg)
	gate := authz.NewGate()
	collector := metrics.NewCollector()

	ctx := context.Background()
	if err := seed(ctx, repos, services); err != nil {
		log.Fatalf("failed to seed database: %v", err)
	}
	logSeededToken(ctx, repos, services, "testuser@example.com")
	logSeededToken(ctx, repos, services, "admin@example.com")

	// Initialize router
	router, err := api.NewRouter(services, gate, collector, cfg)
	if err != nil {
		log.Fatalf("failed to build router: %v", err)
	}

	// Create server
	srv := &http.Server{
		Addr:         "0.0.0.0:" + cfg.Port,
		Handler:      router,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	// Start server in goroutine
	go func() {
		log.Printf("Server starting on port %s", cfg.Port)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("failed to start server: %v", err)
		}
	}()

	// Wait for interrupt signal
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Println("Shutting down server...")

	// Graceful shutdown with timeout
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Fatalf("server forced to shutdown: %v", err)
	}

	log.Println("Server stopped")
}

// seed ensures the well-known roles and development accounts exist.
// Safe to run on every startup.
func seed(ctx context.Context, repos *repository.Repositories, services *service.Services) error {
	for _, name := range domain.SeedRoles {
		if _, err := repos.Role.Ensure(ctx, name); err != nil {
			return err
		}
	}

	users := []struct {
		displayName string
		email       string
		role        string
	}{
		{displayName: "TestUser", email: "testuser@example.com", role: domain.RoleUser},
		{displayName: "Admin", email: "admin@example.com", role: domain.RoleAdmin},
	}

	for _, u := range users {
		user, err := services.Auth.Register(ctx, service.RegisterInput{
			DisplayName: u.displayName,
			Email:       u.email,
			Password:    "Password123!",
		})
		if err != nil {
			if errors.Is(err, service.ErrEmailExists) {
				existing, lookupErr := repos.User.GetByEmail(ctx, u.email)
				if lookupErr != nil {
					return lookupErr
				}
				user = existing
			} else {
				return err
			}
		}

		if err := repos.User.AddToRole(ctx, user.ID, u.role); err != nil {
			return err
		}
	}

	return nil
}

// logSeededToken prints a ready-to-use token for a seeded account so
// developers can exercise the API without signing in first.
func logSeededToken(ctx context.Context, repos *repository.Repositories, services *service.Services, email string) {
	user, err := repos.User.GetByEmail(ctx, email)
	if err != nil {
		log.Printf("WARN [main.logSeededToken] lookup %s failed: %v", email, err)
		return
	}

	roles, err := repos.User.ListRoles(ctx, user.ID)
	if err != nil {
		log.Printf("WARN [main.logSeededToken] roles for %s failed: %v", email, err)
		return
	}

	token, err := services.Auth.IssueToken(user, roles)
	if err != nil {
		log.Printf("WARN [main.logSeededToken] token for %s failed: %v", email, err)
		return
	}

	log.Printf("User: %s, Token: %s", user.DisplayName, token)
}
