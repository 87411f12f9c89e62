package handler

import (
	"context"
	"net/http"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/passforge/passforge-go/internal/middleware"
	"github.com/rs/cors"
)

// RouterConfig holds the handlers and settings the router is built from.
// Auth and Profiles may be nil when no database is available; their routes
// are then not registered.
type RouterConfig struct {
	Generator   *GeneratorHandler
	Auth        *AuthHandler
	Profiles    *ProfileHandler
	JWTSecret   string
	CORSOrigins []string

	// Per-IP limits for generation and for login/registration.
	GenerateRPS   float64
	GenerateBurst int
	AuthRPS       float64
	AuthBurst     int
}

// NewRouter builds the HTTP API. Background work started for the router,
// such as rate limiter cleanup, stops when ctx is done.
func NewRouter(ctx context.Context, cfg RouterConfig) *chi.Mux {
	r := chi.NewRouter()

	r.Use(cors.New(cors.Options{
		AllowedOrigins: cfg.CORSOrigins,
		AllowedMethods: []string{http.MethodGet, http.MethodPost, http.MethodPut, http.MethodDelete, http.MethodOptions},
		AllowedHeaders: []string{"Authorization", "Content-Type"},
	}).Handler)
	r.Use(chimw.RequestID)
	r.Use(chimw.RealIP)
	r.Use(middleware.Logger)
	r.Use(chimw.Recoverer)

	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("ok"))
	})

	r.Get("/api/v1/presets", cfg.Generator.HandlePresets)
	r.With(middleware.RateLimit(ctx, cfg.GenerateRPS, cfg.GenerateBurst)).
		Post("/api/v1/generate", cfg.Generator.HandleGenerate)

	if cfg.Auth == nil || cfg.Profiles == nil {
		return r
	}

	r.Group(func(r chi.Router) {
		r.Use(middleware.RateLimit(ctx, cfg.AuthRPS, cfg.AuthBurst))
		r.Post("/api/v1/auth/register", cfg.Auth.HandleRegister)
		r.Post("/api/v1/auth/login", cfg.Auth.HandleLogin)
	})

	r.Group(func(r chi.Router) {
		r.Use(middleware.JWTAuth(cfg.JWTSecret))
		r.Get("/api/v1/auth/me", cfg.Auth.HandleMe)

		r.Get("/api/v1/profiles", cfg.Profiles.HandleListProfiles)
		r.Post("/api/v1/profiles", cfg.Profiles.HandleCreateProfile)
		r.Put("/api/v1/profiles/{profile_id}", cfg.Profiles.HandleUpdateProfile)
		r.Delete("/api/v1/profiles/{profile_id}", cfg.Profiles.HandleDeleteProfile)
		r.Post("/api/v1/profiles/{profile_id}/generate", cfg.Profiles.HandleGenerateFromProfile)
	})

	return r
}
