package handlers

import (
	"net/http"
	"os"

	"github.com/deptltd/dept-portal/internal/common"
	"github.com/deptltd/dept-portal/internal/portfolio"
)

// PortfolioDataHandler serves the published portfolio document consumed by
// the client-side portfolio widget.
type PortfolioDataHandler struct {
	logger *common.Logger
	store  *portfolio.Store
}

// NewPortfolioDataHandler creates a handler for the published JSON document.
func NewPortfolioDataHandler(logger *common.Logger, store *portfolio.Store) *PortfolioDataHandler {
	return &PortfolioDataHandler{
		logger: logger,
		store:  store,
	}
}

// ServeHTTP handles GET /data/portfolio-data.json. The file is served exactly
// as persisted; a missing document yields the empty document shape so the
// widget always receives valid JSON.
func (h *PortfolioDataHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	if !RequireMethod(w, r, "GET") {
		return
	}

	if _, err := os.Stat(h.store.Path()); err != nil {
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte("{\n    \"wallets\": [],\n    \"activeWalletId\": null\n}\n"))
		return
	}

	w.Header().Set("Content-Type", "application/json")
	http.ServeFile(w, r, h.store.Path())
}
