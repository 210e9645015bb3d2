package handlers

import (
	"html/template"
	"net/http"
	"strings"

	"github.com/deptltd/dept-portal/internal/auth"
	"github.com/deptltd/dept-portal/internal/common"
)

// AuthHandler handles admin login and logout.
type AuthHandler struct {
	logger      *common.Logger
	templates   *template.Template
	credentials auth.Credentials
	sessions    *auth.SessionStore
}

// NewAuthHandler creates a new auth handler.
func NewAuthHandler(logger *common.Logger, credentials auth.Credentials, sessions *auth.SessionStore) *AuthHandler {
	return &AuthHandler{
		logger:      logger,
		templates:   LoadTemplates(),
		credentials: credentials,
		sessions:    sessions,
	}
}

// HandleLoginPage renders the login form. An already-authenticated admin is
// redirected straight to the dashboard.
func (h *AuthHandler) HandleLoginPage(w http.ResponseWriter, r *http.Request) {
	if token := auth.SessionToken(r); token != "" {
		if _, ok := h.sessions.Get(token); ok {
			http.Redirect(w, r, "/admin", http.StatusFound)
			return
		}
	}

	h.renderLogin(w, r, "")
}

// HandleLogin handles the login form submission. On success a session is
// created and the session cookie set; on failure the form is re-rendered with
// an error message.
func (h *AuthHandler) HandleLogin(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		h.renderLogin(w, r, "invalid form submission")
		return
	}

	login := strings.TrimSpace(r.FormValue("login"))
	password := r.FormValue("password")

	if !h.credentials.Verify(login, password) {
		if h.logger != nil {
			h.logger.Warn().Str("login", login).Str("remote", r.RemoteAddr).Msg("failed admin login attempt")
		}
		h.renderLogin(w, r, "invalid login or password")
		return
	}

	sess := h.sessions.Create()
	auth.SetSessionCookie(w, sess)

	if h.logger != nil {
		h.logger.Info().Str("login", login).Msg("admin logged in")
	}
	http.Redirect(w, r, "/admin", http.StatusFound)
}

// HandleLogout deletes the session, clears the cookie and returns to the
// public site.
func (h *AuthHandler) HandleLogout(w http.ResponseWriter, r *http.Request) {
	if token := auth.SessionToken(r); token != "" {
		h.sessions.Delete(token)
	}
	auth.ClearSessionCookie(w)
	http.Redirect(w, r, "/", http.StatusFound)
}

func (h *AuthHandler) renderLogin(w http.ResponseWriter, r *http.Request, errMsg string) {
	data := map[string]interface{}{
		"Page":      "login",
		"Error":     errMsg,
		"CSRFToken": common.CSRFToken(r.Context()),
	}

	if errMsg != "" {
		w.WriteHeader(http.StatusUnauthorized)
	}
	if err := h.templates.ExecuteTemplate(w, "login.html", data); err != nil {
		if h.logger != nil {
			h.logger.Error().Str("template", "login.html").Str("error", err.Error()).Msg("failed to render login page")
		}
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
	}
}
