package handlers

import (
	"html/template"
	"net/http"

	"github.com/deptltd/dept-portal/internal/common"
	"github.com/deptltd/dept-portal/internal/config"
	"github.com/deptltd/dept-portal/internal/portfolio"
	"github.com/deptltd/dept-portal/internal/uploads"
)

// DashboardHandler serves the admin dashboard with portfolio and upload stats.
type DashboardHandler struct {
	logger    *common.Logger
	templates *template.Template
	repo      *portfolio.Repository
	uploads   *uploads.Service
}

// NewDashboardHandler creates a new dashboard handler.
func NewDashboardHandler(logger *common.Logger, repo *portfolio.Repository, uploadSvc *uploads.Service) *DashboardHandler {
	return &DashboardHandler{
		logger:    logger,
		templates: LoadTemplates(),
		repo:      repo,
		uploads:   uploadSvc,
	}
}

// ServeHTTP renders the dashboard page.
func (h *DashboardHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	if !RequireMethod(w, r, "GET") {
		return
	}

	stats := h.repo.Stats()

	data := map[string]interface{}{
		"Page":         "dashboard",
		"WalletCount":  stats.Wallets,
		"DataFileSize": common.FormatFileSize(stats.FileSize),
		"UploadCount":  len(h.uploads.ListImages()),
		"Version":      config.GetVersion(),
	}

	if err := h.templates.ExecuteTemplate(w, "dashboard.html", data); err != nil {
		if h.logger != nil {
			h.logger.Error().Str("template", "dashboard.html").Str("error", err.Error()).Msg("failed to render dashboard")
		}
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
	}
}
