// Package app wires the application components together.
package app

import (
	"time"

	"github.com/deptltd/dept-portal/internal/auth"
	"github.com/deptltd/dept-portal/internal/common"
	"github.com/deptltd/dept-portal/internal/config"
	"github.com/deptltd/dept-portal/internal/handlers"
	"github.com/deptltd/dept-portal/internal/portfolio"
	"github.com/deptltd/dept-portal/internal/uploads"
)

// App holds all application components and dependencies.
type App struct {
	Config *config.Config
	Logger *common.Logger

	Store    *portfolio.Store
	Repo     *portfolio.Repository
	Uploads  *uploads.Service
	Sessions *auth.SessionStore

	// HTTP handlers
	PageHandler      *handlers.PageHandler
	DataHandler      *handlers.PortfolioDataHandler
	AuthHandler      *handlers.AuthHandler
	DashboardHandler *handlers.DashboardHandler
	PortfolioHandler *handlers.PortfolioHandler
	UploadsHandler   *handlers.UploadsHandler
	HealthHandler    *handlers.HealthHandler
	VersionHandler   *handlers.VersionHandler
}

// New initializes the application with all dependencies.
func New(cfg *config.Config, logger *common.Logger) (*App, error) {
	a := &App{
		Config: cfg,
		Logger: logger,
	}

	a.Store = portfolio.NewStore(cfg.Portfolio.DataFile, logger)
	a.Repo = portfolio.NewRepository(a.Store, logger)
	a.Uploads = uploads.NewService(cfg.Uploads.Dir, cfg.Uploads.MaxFileSize, cfg.Uploads.AllowedExtensions, logger)

	ttl := time.Duration(cfg.Admin.SessionTTLHours) * time.Hour
	if ttl <= 0 {
		ttl = 24 * time.Hour
	}
	a.Sessions = auth.NewSessionStore(ttl)

	a.initHandlers()

	if _, source := a.Store.Load(); source == portfolio.SourceMissing {
		logger.Info().Str("path", a.Store.Path()).Msg("no portfolio document yet, starting empty")
	}

	logger.Info().Msg("application initialization complete")

	return a, nil
}

// initHandlers initializes all HTTP handlers.
func (a *App) initHandlers() {
	credentials := auth.Credentials{
		Login:        a.Config.Admin.Login,
		PasswordHash: a.Config.Admin.PasswordHash,
	}

	a.PageHandler = handlers.NewPageHandler(a.Logger)
	a.DataHandler = handlers.NewPortfolioDataHandler(a.Logger, a.Store)
	a.AuthHandler = handlers.NewAuthHandler(a.Logger, credentials, a.Sessions)
	a.DashboardHandler = handlers.NewDashboardHandler(a.Logger, a.Repo, a.Uploads)
	a.PortfolioHandler = handlers.NewPortfolioHandler(a.Logger, a.Repo, a.Uploads)
	a.UploadsHandler = handlers.NewUploadsHandler(a.Logger, a.Uploads)
	a.HealthHandler = handlers.NewHealthHandler(a.Logger)
	a.VersionHandler = handlers.NewVersionHandler(a.Logger)

	a.Logger.Debug().Msg("HTTP handlers initialized")
}

// Close closes all application resources.
func (a *App) Close() error {
	return nil
}
