package handlers

import (
	"errors"
	"fmt"
	"html/template"
	"net/http"
	"path/filepath"
	"strings"

	"github.com/deptltd/dept-portal/internal/common"
	"github.com/deptltd/dept-portal/internal/uploads"
)

// UploadsHandler serves the file management page: upload form, file table,
// and deletion. It also serves the stored images to the public site.
type UploadsHandler struct {
	logger    *common.Logger
	templates *template.Template
	service   *uploads.Service
}

// NewUploadsHandler creates a new uploads admin handler.
func NewUploadsHandler(logger *common.Logger, service *uploads.Service) *UploadsHandler {
	return &UploadsHandler{
		logger:    logger,
		templates: LoadTemplates(),
		service:   service,
	}
}

// fileRow is one row of the uploaded files table.
type fileRow struct {
	Name        string
	Path        string
	SizeDisplay string
	DateDisplay string
	IsImage     bool
}

// ServeHTTP renders the page on GET and dispatches upload/delete on POST.
func (h *UploadsHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	switch r.Method {
	case http.MethodGet, http.MethodHead:
		h.render(w, r, "", "")
	case http.MethodPost:
		h.handleAction(w, r)
	default:
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
	}
}

func (h *UploadsHandler) handleAction(w http.ResponseWriter, r *http.Request) {
	if r.FormValue("action") == "delete" {
		filename := r.FormValue("filename")
		if h.service.Delete(filename) {
			h.render(w, r, fmt.Sprintf("file %q deleted", filename), "")
		} else {
			h.render(w, r, "", "failed to delete file")
		}
		return
	}

	file, header, err := r.FormFile("file")
	if err != nil {
		h.render(w, r, "", "no file submitted")
		return
	}
	defer file.Close()

	// An optional custom base name replaces the original's base; the original
	// extension is preserved.
	name := header.Filename
	if custom := strings.TrimSpace(r.FormValue("custom_name")); custom != "" {
		name = custom + filepath.Ext(header.Filename)
	}

	stored, err := h.service.Store(name, header.Size, file)
	if err != nil {
		h.render(w, r, "", uploadErrorMessage(err))
		return
	}

	h.render(w, r, fmt.Sprintf("file %q uploaded", stored), "")
}

// uploadErrorMessage maps upload errors to the user-facing flash message.
func uploadErrorMessage(err error) string {
	switch {
	case errors.Is(err, uploads.ErrUnsupportedType),
		errors.Is(err, uploads.ErrFileTooLarge):
		return err.Error()
	default:
		return "failed to store uploaded file"
	}
}

func (h *UploadsHandler) render(w http.ResponseWriter, r *http.Request, success, errMsg string) {
	files := h.service.ListFiles()

	rows := make([]fileRow, len(files))
	for i, f := range files {
		ext := strings.ToLower(strings.TrimPrefix(filepath.Ext(f.Name), "."))
		rows[i] = fileRow{
			Name:        f.Name,
			Path:        "/uploads/images/" + f.Name,
			SizeDisplay: common.FormatFileSize(f.Size),
			DateDisplay: f.ModTime.Format("02.01.2006 15:04"),
			IsImage:     ext == "jpg" || ext == "jpeg" || ext == "png" || ext == "gif",
		}
	}

	data := map[string]interface{}{
		"Page":       "uploads",
		"Success":    success,
		"Error":      errMsg,
		"CSRFToken":  common.CSRFToken(r.Context()),
		"Files":      rows,
		"MaxSize":    common.FormatFileSize(h.service.MaxSize()),
		"Extensions": strings.Join(h.service.AllowedExtensions(), ", "),
	}

	if err := h.templates.ExecuteTemplate(w, "uploads.html", data); err != nil {
		if h.logger != nil {
			h.logger.Error().Str("template", "uploads.html").Str("error", err.Error()).Msg("failed to render uploads page")
		}
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
	}
}

// ServeImage serves a stored image at /uploads/images/<filename>.
func (h *UploadsHandler) ServeImage(w http.ResponseWriter, r *http.Request) {
	name := strings.TrimPrefix(r.URL.Path, "/uploads/images/")
	if name == "" || name != uploads.SanitizeFilename(name) {
		http.NotFound(w, r)
		return
	}

	http.ServeFile(w, r, filepath.Join(h.service.Dir(), name))
}
