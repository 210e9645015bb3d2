package server

import "net/http"

// setupRoutes configures all HTTP routes.
func (s *Server) setupRoutes() *http.ServeMux {
	mux := http.NewServeMux()

	// Public site
	mux.HandleFunc("/", s.handleRoot)
	mux.HandleFunc("/static/", s.app.PageHandler.StaticFileHandler)
	mux.Handle("/data/portfolio-data.json", s.app.DataHandler)
	mux.HandleFunc("/uploads/images/", s.app.UploadsHandler.ServeImage)

	// Admin session gate
	mux.HandleFunc("/admin/login", s.handleLogin)
	mux.HandleFunc("/admin/logout", s.app.AuthHandler.HandleLogout)

	// Admin back office (session required)
	mux.Handle("/admin", s.requireAdmin(s.app.DashboardHandler))
	mux.Handle("/admin/portfolio", s.requireAdmin(s.app.PortfolioHandler))
	mux.Handle("/admin/uploads", s.requireAdmin(s.app.UploadsHandler))

	// API routes
	mux.HandleFunc("/api/health", s.app.HealthHandler.ServeHTTP)
	mux.HandleFunc("/api/version", s.app.VersionHandler.ServeHTTP)

	// 404 handler for unmatched API routes
	mux.HandleFunc("/api/", s.handleNotFound)

	return mux
}

// handleRoot serves the landing page for "/" only; every other unmatched path
// is a 404.
func (s *Server) handleRoot(w http.ResponseWriter, r *http.Request) {
	if r.URL.Path != "/" {
		http.NotFound(w, r)
		return
	}
	s.app.PageHandler.ServePage("landing.html", "home")(w, r)
}

// handleLogin dispatches the login page and the login form submission.
func (s *Server) handleLogin(w http.ResponseWriter, r *http.Request) {
	switch r.Method {
	case http.MethodGet, http.MethodHead:
		s.app.AuthHandler.HandleLoginPage(w, r)
	case http.MethodPost:
		s.app.AuthHandler.HandleLogin(w, r)
	default:
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
	}
}

// handleNotFound returns a JSON 404 for unmatched API routes.
func (s *Server) handleNotFound(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusNotFound)
	w.Write([]byte(`{"error":"Not Found","message":"The requested endpoint does not exist"}`))
}
