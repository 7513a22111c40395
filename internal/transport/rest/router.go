package rest

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/heartmarshall/fairway-backend/internal/config"
	"github.com/heartmarshall/fairway-backend/internal/domain"
	"github.com/heartmarshall/fairway-backend/internal/transport/graphql"
	"github.com/heartmarshall/fairway-backend/internal/transport/middleware"
)

type sessionResolver interface {
	ResolveSession(ctx context.Context, token string) (domain.UserProfile, error)
}

// Handlers groups everything NewRouter mounts.
type Handlers struct {
	Health   *HealthHandler
	Auth     *AuthHandler
	Admin    *AdminHandler
	Records  *RecordHandler
	Upload   *UploadHandler
	Transfer *TransferHandler
	GraphQL  *graphql.Handler
}

// RouterConfig carries the cross-cutting pieces of the HTTP surface.
type RouterConfig struct {
	Sessions  sessionResolver
	Limiter   *middleware.RateLimiter
	RateLimit config.RateLimitConfig
	CORS      config.CORSConfig
	Logger    *slog.Logger
}

// NewRouter builds the HTTP handler: health checks at the root, the API under /api.
func NewRouter(h Handlers, cfg RouterConfig) http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.Stack(middleware.StackConfig{
		Logger:   cfg.Logger,
		CORS:     cfg.CORS,
		Sessions: cfg.Sessions,
	}))

	r.Get("/live", h.Health.Live)
	r.Get("/ready", h.Health.Ready)
	r.Get("/health", h.Health.Health)

	r.Route("/api", func(r chi.Router) {
		r.Route("/auth", func(r chi.Router) {
			r.Post("/register", h.Auth.Register)
			r.With(cfg.Limiter.Limit("login", cfg.RateLimit.LoginsPerMinute)).Post("/login", h.Auth.Login)
			r.With(middleware.RequireUser).Get("/me", h.Auth.Me)
		})

		r.Group(func(r chi.Router) {
			r.Use(middleware.RequireUser)

			r.Route("/courses", h.Records.CourseRoutes)
			r.Route("/people", h.Records.PersonRoutes)
			r.Route("/logs", h.Records.LogRoutes)
			r.Route("/todos", h.Records.TodoRoutes)

			r.With(cfg.Limiter.Limit("upload", cfg.RateLimit.UploadsPerMinute)).Post("/uploads", h.Upload.Upload)

			r.Handle("/graphql", h.GraphQL)
			r.Get("/graphql/schema", h.GraphQL.ServeSchema)
		})

		r.Group(func(r chi.Router) {
			r.Use(middleware.RequireAdmin)

			r.Get("/export", h.Transfer.ExportJSON)
			r.Get("/export/xlsx", h.Transfer.ExportWorkbook)
			r.Post("/import", h.Transfer.Import)

			r.Route("/admin/users", func(r chi.Router) {
				r.Get("/", h.Admin.ListUsers)
				r.Post("/{id}/approve", h.Admin.Approve)
				r.Post("/{id}/reject", h.Admin.Reject)
				r.Post("/{id}/reinstate", h.Admin.Reinstate)
				r.Put("/{id}/role", h.Admin.ChangeRole)
			})
		})
	})

	return r
}
