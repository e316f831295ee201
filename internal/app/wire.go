package app

import (
	"log/slog"
	"net/http"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"

	"github.com/wigac/wigac-backend/internal/access"
	"github.com/wigac/wigac-backend/internal/adapter/mailer"
	"github.com/wigac/wigac-backend/internal/adapter/pdf"
	"github.com/wigac/wigac-backend/internal/adapter/pgdump"
	"github.com/wigac/wigac-backend/internal/adapter/postgres"
	activityrepo "github.com/wigac/wigac-backend/internal/adapter/postgres/activity"
	projectrepo "github.com/wigac/wigac-backend/internal/adapter/postgres/project"
	quicknoterepo "github.com/wigac/wigac-backend/internal/adapter/postgres/quicknote"
	regacrepo "github.com/wigac/wigac-backend/internal/adapter/postgres/regac"
	subtaskrepo "github.com/wigac/wigac-backend/internal/adapter/postgres/subtask"
	taskrepo "github.com/wigac/wigac-backend/internal/adapter/postgres/task"
	tokenrepo "github.com/wigac/wigac-backend/internal/adapter/postgres/token"
	userrepo "github.com/wigac/wigac-backend/internal/adapter/postgres/user"
	wikirepo "github.com/wigac/wigac-backend/internal/adapter/postgres/wiki"
	"github.com/wigac/wigac-backend/internal/auth"
	"github.com/wigac/wigac-backend/internal/config"
	"github.com/wigac/wigac-backend/internal/report"
	"github.com/wigac/wigac-backend/internal/service/activity"
	authservice "github.com/wigac/wigac-backend/internal/service/auth"
	"github.com/wigac/wigac-backend/internal/service/backup"
	"github.com/wigac/wigac-backend/internal/service/project"
	"github.com/wigac/wigac-backend/internal/service/quicknote"
	"github.com/wigac/wigac-backend/internal/service/regac"
	"github.com/wigac/wigac-backend/internal/service/reports"
	"github.com/wigac/wigac-backend/internal/service/subtask"
	"github.com/wigac/wigac-backend/internal/service/task"
	"github.com/wigac/wigac-backend/internal/service/user"
	"github.com/wigac/wigac-backend/internal/service/wiki"
	"github.com/wigac/wigac-backend/internal/transport/middleware"
	"github.com/wigac/wigac-backend/internal/transport/rest"
)

// api is the wired HTTP surface plus the services the process runs in the
// background.
type api struct {
	handler http.Handler
	auth    *authservice.Service
}

// wire builds repositories, services and handlers on top of pool.
func wire(cfg *config.Config, logger *slog.Logger, pool *pgxpool.Pool) (*api, error) {
	// Repositories
	users := userrepo.New(pool)
	tokens := tokenrepo.New(pool)
	projects := projectrepo.New(pool)
	tasks := taskrepo.New(pool)
	entries := subtaskrepo.New(pool)
	activities := activityrepo.New(pool)
	pages := wikirepo.New(pool)
	notes := quicknoterepo.New(pool)
	regacLogs := regacrepo.New(pool)
	tx := postgres.NewTxManager(pool)

	// Adapters
	jwtManager := auth.NewJWTManager(cfg.Auth.JWTSecret, cfg.Auth.JWTIssuer, cfg.Auth.AccessTokenTTL)
	mail, err := mailer.New(logger, cfg.Mail)
	if err != nil {
		return nil, err
	}
	dumper, err := pgdump.New(logger, cfg.Backup, cfg.Database.DSN, cfg.Report.Location)
	if err != nil {
		return nil, err
	}
	gen := report.New(report.Options{Location: cfg.Report.Location, Issuer: cfg.Report.Issuer})

	// Services
	guard := access.NewGuard(logger)
	authSvc := authservice.NewService(logger, users, tokens, tx, jwtManager, cfg.Auth)
	userSvc := user.NewService(logger, users, cfg.Auth.PasswordHashCost)
	projectSvc := project.NewService(logger, projects, guard)
	taskSvc := task.NewService(logger, tasks, entries, projects, guard)
	subtaskSvc := subtask.NewService(logger, entries, tasks, tx, guard)
	activitySvc := activity.NewService(logger, activities, tasks, guard)
	wikiSvc := wiki.NewService(logger, pages, guard)
	noteSvc := quicknote.NewService(logger, notes)
	regacSvc := regac.NewService(logger, regacLogs)
	reportSvc := reports.NewService(logger, taskSvc, activitySvc, users, pdf.New(), mail, gen, guard)
	backupSvc := backup.NewService(logger, dumper)

	// Transport
	reg := prometheus.NewRegistry()
	reg.MustRegister(collectors.NewGoCollector(), collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))

	rs := rest.NewResponder(logger, !cfg.App.IsProduction())
	router := rest.NewRouter(rest.RouterConfig{
		Logger:     logger,
		CORS:       cfg.CORS,
		RateLimit:  cfg.RateLimit,
		Metrics:    middleware.NewMetrics(reg),
		Gatherer:   reg,
		Validator:  authSvc,
		Health: rest.NewHealthHandler(Version,
			rest.Check{Name: "database", Required: true, Run: pool.Ping},
			rest.Check{Name: "pg_dump", Run: dumper.Check},
			rest.Check{Name: "mail", Run: mail.Check},
		),
		Auth:       rest.NewAuthHandler(authSvc, rs),
		Users:      rest.NewUserHandler(userSvc, rs),
		Projects:   rest.NewProjectHandler(projectSvc, rs),
		Tasks:      rest.NewTaskHandler(taskSvc, rs),
		Subtasks:   rest.NewSubtaskHandler(subtaskSvc, rs),
		Activities: rest.NewActivityHandler(activitySvc, rs),
		Wiki:       rest.NewWikiHandler(wikiSvc, rs),
		Notes:      rest.NewNotesHandler(noteSvc, regacSvc, rs),
		Reports:    rest.NewReportHandler(reportSvc, rs),
		Backup:     rest.NewBackupHandler(backupSvc, rs, logger, cfg.Backup.Timeout),
	})

	return &api{handler: router, auth: authSvc}, nil
}
