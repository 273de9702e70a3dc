package api

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	chiMiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/graphql-go/handler"
	"github.com/kwhite/taskboard/internal/api/middleware"
	"github.com/kwhite/taskboard/internal/authz"
	"github.com/kwhite/taskboard/internal/config"
	"github.com/kwhite/taskboard/internal/graph"
	"github.com/kwhite/taskboard/internal/metrics"
	"github.com/kwhite/taskboard/internal/service"
)

func NewRouter(services *service.Services, gate *authz.Gate, collector *metrics.Collector, cfg *config.Config) (http.Handler, error) {
	schema, err := graph.NewSchema(services, gate)
	if err != nil {
		return nil, err
	}

	r := chi.NewRouter()

	// Global middleware
	r.Use(chiMiddleware.Logger)
	r.Use(chiMiddleware.Recoverer)
	r.Use(chiMiddleware.RequestID)
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   cfg.CORSAllowedOrigins,
		AllowedMethods:   []string{"GET", "POST", "OPTIONS"},
		AllowedHeaders:   []string{"Authorization", "Content-Type"},
		AllowCredentials: true,
		MaxAge:           300,
	}))
	r.Use(collector.Middleware)
	if cfg.IsDevelopment() && cfg.SimulatedLatency {
		r.Use(middleware.SimulatedLatency())
	}

	// Health check
	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("OK"))
	})

	r.Handle("/metrics", collector.Handler())

	gqlHandler := handler.New(&handler.Config{
		Schema:   &schema,
		Pretty:   cfg.IsDevelopment(),
		GraphiQL: cfg.IsDevelopment(),
	})

	limiter := middleware.NewRateLimiter(20, 40)

	r.Group(func(r chi.Router) {
		r.Use(limiter.Middleware)
		r.Use(middleware.Auth(services.Auth))
		r.Handle("/graphql", gqlHandler)
	})

	return r, nil
}
