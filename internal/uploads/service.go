// Package uploads validates and persists chart images into a single flat
// directory referenced by wallet fields as /uploads/images/<filename>.
package uploads

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"

	"github.com/deptltd/dept-portal/internal/common"
)

// Upload failure kinds. ErrUnsupportedType and ErrFileTooLarge are rejected
// before any filesystem access.
var (
	ErrUnsupportedType = errors.New("unsupported file type")
	ErrFileTooLarge    = errors.New("file too large")
)

// StorageError reports a failed write of an accepted upload.
type StorageError struct {
	Err error
}

func (e *StorageError) Error() string {
	return fmt.Sprintf("failed to store uploaded file: %v", e.Err)
}

func (e *StorageError) Unwrap() error {
	return e.Err
}

// FileInfo describes a stored upload for the admin file table.
type FileInfo struct {
	Name    string
	Size    int64
	ModTime time.Time
}

// Service manages the flat images directory.
type Service struct {
	dir     string
	maxSize int64
	allowed []string
	logger  *common.Logger
}

// NewService creates an upload service. Extensions are matched
// case-insensitively and stored lowercase.
func NewService(dir string, maxSize int64, extensions []string, logger *common.Logger) *Service {
	allowed := make([]string, 0, len(extensions))
	for _, ext := range extensions {
		allowed = append(allowed, strings.ToLower(strings.TrimPrefix(ext, ".")))
	}
	return &Service{
		dir:     dir,
		maxSize: maxSize,
		allowed: allowed,
		logger:  logger,
	}
}

// Dir returns the images directory.
func (s *Service) Dir() string {
	return s.dir
}

// MaxSize returns the upload size ceiling in bytes.
func (s *Service) MaxSize() int64 {
	return s.maxSize
}

// AllowedExtensions returns the extension allow-list.
func (s *Service) AllowedExtensions() []string {
	return s.allowed
}

// SanitizeFilename replaces every character outside [A-Za-z0-9._-] with an
// underscore. Idempotent; collisions after sanitization overwrite.
func SanitizeFilename(name string) string {
	var b strings.Builder
	b.Grow(len(name))
	for _, r := range name {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9',
			r == '.', r == '_', r == '-':
			b.WriteRune(r)
		default:
			b.WriteByte('_')
		}
	}
	return b.String()
}

// extensionAllowed checks the file's extension against the allow-list,
// case-insensitively.
func (s *Service) extensionAllowed(name string) bool {
	ext := strings.ToLower(strings.TrimPrefix(filepath.Ext(name), "."))
	for _, allowed := range s.allowed {
		if ext == allowed {
			return true
		}
	}
	return false
}

// ListImages returns the filenames in the images directory whose extension is
// on the allow-list, sorted for deterministic display. A missing directory
// yields an empty list.
func (s *Service) ListImages() []string {
	entries, err := os.ReadDir(s.dir)
	if err != nil {
		return []string{}
	}

	files := []string{}
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		if s.extensionAllowed(entry.Name()) {
			files = append(files, entry.Name())
		}
	}
	sort.Strings(files)
	return files
}

// ListFiles returns name, size and modification time for every allowed file
// in the images directory, sorted by name.
func (s *Service) ListFiles() []FileInfo {
	files := []FileInfo{}
	for _, name := range s.ListImages() {
		info, err := os.Stat(filepath.Join(s.dir, name))
		if err != nil {
			continue
		}
		files = append(files, FileInfo{
			Name:    name,
			Size:    info.Size(),
			ModTime: info.ModTime(),
		})
	}
	return files
}

// Store validates and persists an incoming file. The extension and declared
// size are checked before anything touches the filesystem; then the directory
// is created if missing, the name sanitized, and the content written,
// overwriting any existing file of the same sanitized name. Returns the
// stored filename.
func (s *Service) Store(name string, size int64, r io.Reader) (string, error) {
	if !s.extensionAllowed(name) {
		return "", fmt.Errorf("%w: allowed extensions are %s", ErrUnsupportedType, strings.Join(s.allowed, ", "))
	}
	if size > s.maxSize {
		return "", fmt.Errorf("%w: maximum size is %s", ErrFileTooLarge, common.FormatFileSize(s.maxSize))
	}

	if err := os.MkdirAll(s.dir, 0o755); err != nil {
		return "", &StorageError{Err: err}
	}

	filename := SanitizeFilename(name)
	target := filepath.Join(s.dir, filename)

	f, err := os.Create(target)
	if err != nil {
		return "", &StorageError{Err: err}
	}

	if _, err := io.Copy(f, r); err != nil {
		f.Close()
		os.Remove(target)
		return "", &StorageError{Err: err}
	}
	if err := f.Close(); err != nil {
		return "", &StorageError{Err: err}
	}

	if s.logger != nil {
		s.logger.Info().Str("filename", filename).Int("size", int(size)).Msg("file uploaded")
	}
	return filename, nil
}

// Delete removes the named file from the images directory. The name is
// sanitized first so a crafted name cannot reach outside the directory.
// Returns whether a file was actually removed; a missing file is not an error.
func (s *Service) Delete(name string) bool {
	filename := SanitizeFilename(name)
	if filename == "" {
		return false
	}

	if err := os.Remove(filepath.Join(s.dir, filename)); err != nil {
		return false
	}

	if s.logger != nil {
		s.logger.Info().Str("filename", filename).Msg("file deleted")
	}
	return true
}
