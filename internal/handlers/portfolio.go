package handlers

import (
	"errors"
	"fmt"
	"html/template"
	"net/http"
	"strconv"

	"github.com/deptltd/dept-portal/internal/common"
	"github.com/deptltd/dept-portal/internal/models"
	"github.com/deptltd/dept-portal/internal/portfolio"
	"github.com/deptltd/dept-portal/internal/uploads"
)

// PortfolioHandler serves the wallet management page: the wallet table plus
// create/edit/delete/move form actions, one action per request.
type PortfolioHandler struct {
	logger    *common.Logger
	templates *template.Template
	repo      *portfolio.Repository
	uploads   *uploads.Service
}

// NewPortfolioHandler creates a new portfolio admin handler.
func NewPortfolioHandler(logger *common.Logger, repo *portfolio.Repository, uploadSvc *uploads.Service) *PortfolioHandler {
	return &PortfolioHandler{
		logger:    logger,
		templates: LoadTemplates(),
		repo:      repo,
		uploads:   uploadSvc,
	}
}

// walletRow is one row of the wallet table.
type walletRow struct {
	ID           int
	Name         string
	Capital      string
	WinRate      string
	AnnualReturn string
	Active       bool
	First        bool
	Last         bool
}

// walletForm carries wallet fields into the create/edit form.
type walletForm struct {
	ID             int
	Name           string
	Capital        string
	WinRate        string
	AnnualReturn   string
	YearlyReturn   string
	PortfolioChart string
	SharpeChart    string
	Assets         string
	IsActive       bool
}

// ServeHTTP renders the page on GET and dispatches a single form action on
// POST, re-rendering the page with a success or error message. Core errors
// are recovered here; none are fatal.
func (h *PortfolioHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	switch r.Method {
	case http.MethodGet, http.MethodHead:
		h.render(w, r, "", "")
	case http.MethodPost:
		h.handleAction(w, r)
	default:
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
	}
}

func (h *PortfolioHandler) handleAction(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		h.render(w, r, "", "invalid form submission")
		return
	}

	var success string
	var actionErr error

	switch action := r.FormValue("action"); action {
	case "create":
		wallet, err := h.repo.Create(formFields(r), r.FormValue("assets"), r.FormValue("isActive") != "")
		if err != nil {
			actionErr = err
			break
		}
		success = fmt.Sprintf("wallet %q created", wallet.Name)

	case "edit":
		id, _ := strconv.Atoi(r.FormValue("wallet_id"))
		wallet, err := h.repo.Update(id, formFields(r), r.FormValue("assets"), r.FormValue("isActive") != "")
		if err != nil {
			actionErr = err
			break
		}
		success = fmt.Sprintf("wallet %q updated", wallet.Name)

	case "delete":
		id, _ := strconv.Atoi(r.FormValue("wallet_id"))
		wallet, err := h.repo.Delete(id)
		if err != nil {
			actionErr = err
			break
		}
		success = fmt.Sprintf("wallet %q deleted", wallet.Name)

	case "move":
		id, _ := strconv.Atoi(r.FormValue("wallet_id"))
		if err := h.repo.Move(id, r.FormValue("direction")); err != nil {
			actionErr = err
			break
		}
		success = "wallet order updated"

	default:
		actionErr = fmt.Errorf("unknown action %q", action)
	}

	h.render(w, r, success, errorMessage(actionErr))
}

// errorMessage maps core errors to the user-facing flash message.
func errorMessage(err error) string {
	if err == nil {
		return ""
	}

	var validation *portfolio.ValidationError
	if errors.As(err, &validation) {
		return validation.Message
	}
	if errors.Is(err, portfolio.ErrWalletNotFound) {
		return "wallet not found"
	}

	var persist *portfolio.PersistError
	if errors.As(err, &persist) {
		return "failed to save portfolio data"
	}

	return err.Error()
}

func (h *PortfolioHandler) render(w http.ResponseWriter, r *http.Request, success, errMsg string) {
	doc := h.repo.Document()

	rows := make([]walletRow, len(doc.Wallets))
	for i, wallet := range doc.Wallets {
		rows[i] = walletRow{
			ID:           wallet.ID,
			Name:         wallet.Name,
			Capital:      wallet.Capital,
			WinRate:      wallet.WinRate,
			AnnualReturn: wallet.AnnualReturn,
			Active:       doc.IsActive(wallet.ID),
			First:        i == 0,
			Last:         i == len(doc.Wallets)-1,
		}
	}

	var edit *walletForm
	if v := r.URL.Query().Get("edit"); v != "" {
		if id, err := strconv.Atoi(v); err == nil {
			if _, wallet := doc.WalletByID(id); wallet != nil {
				edit = &walletForm{
					ID:             wallet.ID,
					Name:           wallet.Name,
					Capital:        wallet.Capital,
					WinRate:        wallet.WinRate,
					AnnualReturn:   wallet.AnnualReturn,
					YearlyReturn:   wallet.YearlyReturn,
					PortfolioChart: wallet.PortfolioChart,
					SharpeChart:    wallet.SharpeChart,
					Assets:         portfolio.FormatComposition(wallet.Assets),
					IsActive:       doc.IsActive(wallet.ID),
				}
			}
		}
	}

	data := map[string]interface{}{
		"Page":       "portfolio",
		"Success":    success,
		"Error":      errMsg,
		"CSRFToken":  common.CSRFToken(r.Context()),
		"Wallets":    rows,
		"EditWallet": edit,
		"Images":     h.uploads.ListImages(),
	}

	if err := h.templates.ExecuteTemplate(w, "portfolio.html", data); err != nil {
		if h.logger != nil {
			h.logger.Error().Str("template", "portfolio.html").Str("error", err.Error()).Msg("failed to render portfolio page")
		}
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
	}
}

// formFields extracts the editable wallet fields from the submitted form.
func formFields(r *http.Request) models.WalletFields {
	return models.WalletFields{
		Name:           r.FormValue("name"),
		Capital:        r.FormValue("capital"),
		WinRate:        r.FormValue("winRate"),
		AnnualReturn:   r.FormValue("annualReturn"),
		YearlyReturn:   r.FormValue("yearlyReturn"),
		PortfolioChart: r.FormValue("portfolioChart"),
		SharpeChart:    r.FormValue("sharpeChart"),
	}
}
