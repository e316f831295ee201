package rest

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/wigac/wigac-backend/internal/config"
	"github.com/wigac/wigac-backend/internal/transport/middleware"
)

// RouterConfig holds everything the router mounts.
type RouterConfig struct {
	Logger    *slog.Logger
	CORS      config.CORSConfig
	RateLimit config.RateLimitConfig
	Metrics   *middleware.Metrics
	Gatherer  prometheus.Gatherer
	Validator middleware.TokenValidator

	Health     *HealthHandler
	Auth       *AuthHandler
	Users      *UserHandler
	Projects   *ProjectHandler
	Tasks      *TaskHandler
	Subtasks   *SubtaskHandler
	Activities *ActivityHandler
	Wiki       *WikiHandler
	Notes      *NotesHandler
	Reports    *ReportHandler
	Backup     *BackupHandler
}

// NewRouter builds the HTTP handler for the whole API.
func NewRouter(cfg RouterConfig) http.Handler {
	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(middleware.Recovery(cfg.Logger))
	r.Use(middleware.Logger(cfg.Logger))
	r.Use(cfg.Metrics.Middleware)
	r.Use(middleware.CORS(cfg.CORS))
	r.Use(middleware.SecurityHeaders)

	r.Get("/live", cfg.Health.Live)
	r.Get("/ready", cfg.Health.Ready)
	r.Get("/health", cfg.Health.Health)
	r.Method(http.MethodGet, "/metrics", promhttp.HandlerFor(cfg.Gatherer, promhttp.HandlerOpts{}))

	authenticate := middleware.Auth(cfg.Validator)

	r.Route("/api", func(r chi.Router) {
		r.Route("/auth", func(r chi.Router) {
			r.Group(func(r chi.Router) {
				r.Use(middleware.RateLimit(cfg.RateLimit, cfg.Metrics.RateLimited))
				r.Post("/register", cfg.Auth.Register)
				r.Post("/login", cfg.Auth.Login)
				r.Post("/refresh", cfg.Auth.Refresh)
			})
			r.With(authenticate).Post("/logout", cfg.Auth.Logout)
		})

		r.Group(func(r chi.Router) {
			r.Use(authenticate)

			r.Route("/users", func(r chi.Router) {
				r.Get("/", cfg.Users.List)
				r.Get("/profile", cfg.Users.Profile)
				r.Put("/profile", cfg.Users.UpdateProfile)
				r.Get("/{id}", cfg.Users.Get)
			})

			r.Route("/projects", func(r chi.Router) {
				r.Get("/", cfg.Projects.List)
				r.Post("/", cfg.Projects.Create)
				r.Get("/{id}", cfg.Projects.Get)
				r.Put("/{id}", cfg.Projects.Update)
				r.Delete("/{id}", cfg.Projects.Delete)
			})

			r.Route("/tasks", func(r chi.Router) {
				r.Get("/", cfg.Tasks.List)
				r.Post("/", cfg.Tasks.Create)
				r.Get("/range", cfg.Tasks.Range)
				r.Get("/{id}", cfg.Tasks.Get)
				r.Put("/{id}", cfg.Tasks.Update)
				r.Patch("/{id}/status", cfg.Tasks.UpdateStatus)
				r.Patch("/{id}/position", cfg.Tasks.UpdatePosition)
				r.Delete("/{id}", cfg.Tasks.Delete)
			})

			r.Route("/subtasks", func(r chi.Router) {
				r.Get("/", cfg.Subtasks.List)
				r.Post("/", cfg.Subtasks.Create)
				r.Get("/{id}", cfg.Subtasks.Get)
				r.Put("/{id}", cfg.Subtasks.Update)
				r.Delete("/{id}", cfg.Subtasks.Delete)
			})

			r.Route("/activities", func(r chi.Router) {
				r.Get("/", cfg.Activities.List)
				r.Post("/", cfg.Activities.Create)
				r.Delete("/{id}", cfg.Activities.Delete)
			})

			r.Route("/wiki", func(r chi.Router) {
				r.Get("/", cfg.Wiki.List)
				r.Post("/", cfg.Wiki.Create)
				r.Get("/slug/{slug}", cfg.Wiki.GetBySlug)
				r.Get("/{id}", cfg.Wiki.Get)
				r.Put("/{id}", cfg.Wiki.Update)
				r.Delete("/{id}", cfg.Wiki.Delete)
			})

			r.Get("/quicknotes", cfg.Notes.GetQuickNote)
			r.Put("/quicknotes", cfg.Notes.SaveQuickNote)

			r.Route("/regac", func(r chi.Router) {
				r.Post("/batch", cfg.Notes.BatchRegac)
				r.Get("/{date}", cfg.Notes.GetRegac)
				r.Put("/{date}", cfg.Notes.SetRegac)
			})

			r.Get("/timesheet", cfg.Reports.Timesheet)

			r.Route("/reports", func(r chi.Router) {
				r.Get("/daily", cfg.Reports.DailyPDF)
				r.Post("/daily/send", cfg.Reports.SendDaily)
				r.Get("/daily/text", cfg.Reports.DailyText)
				r.Get("/progress", cfg.Reports.Progress)
				r.Get("/email", cfg.Reports.Email)
			})

			r.With(middleware.RequireAdmin).Get("/backup/download", cfg.Backup.Download)
		})
	})

	r.NotFound(func(w http.ResponseWriter, r *http.Request) {
		writeError(w, http.StatusNotFound, "not found")
	})
	r.MethodNotAllowed(func(w http.ResponseWriter, r *http.Request) {
		writeError(w, http.StatusMethodNotAllowed, "method not allowed")
	})

	return r
}
