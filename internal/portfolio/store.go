package portfolio

import (
	"bytes"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/deptltd/dept-portal/internal/common"
	"github.com/deptltd/dept-portal/internal/models"
)

// Source tags where a loaded document came from, so callers can tell a fresh
// install apart from a corrupt file without changing the degrade-to-empty
// behavior the front-end relies on.
type Source string

const (
	SourceLoaded  Source = "loaded"
	SourceMissing Source = "missing"
	SourceCorrupt Source = "corrupt"
)

// Store reads and writes the single JSON document holding the wallet list and
// the active-wallet pointer. Pure data access, no business rules, no locking:
// concurrent saves race and the last write wins.
type Store struct {
	path   string
	logger *common.Logger
}

// NewStore creates a store backed by the JSON file at path.
func NewStore(path string, logger *common.Logger) *Store {
	return &Store{
		path:   path,
		logger: logger,
	}
}

// Path returns the backing file path.
func (s *Store) Path() string {
	return s.path
}

// Load reads the document. A missing file or unparsable content degrades to
// an empty document rather than an error; the Source return value records
// which case applied. A corrupt file is logged at warn level.
func (s *Store) Load() (*models.Document, Source) {
	data, err := os.ReadFile(s.path)
	if err != nil {
		if !os.IsNotExist(err) && s.logger != nil {
			s.logger.Warn().Str("path", s.path).Str("error", err.Error()).Msg("portfolio document unreadable, starting empty")
			return models.NewDocument(), SourceCorrupt
		}
		return models.NewDocument(), SourceMissing
	}

	var doc models.Document
	if err := json.Unmarshal(data, &doc); err != nil {
		if s.logger != nil {
			s.logger.Warn().Str("path", s.path).Str("error", err.Error()).Msg("portfolio document corrupt, starting empty")
		}
		return models.NewDocument(), SourceCorrupt
	}

	doc.Normalize()
	return &doc, SourceLoaded
}

// Save serializes the whole document pretty-printed with non-ASCII text left
// unescaped, and replaces the backing file via a temp file + rename so readers
// never observe a partial write.
func (s *Store) Save(doc *models.Document) error {
	doc.Normalize()

	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", "    ")
	if err := enc.Encode(doc); err != nil {
		return fmt.Errorf("failed to encode portfolio document: %w", err)
	}

	dir := filepath.Dir(s.path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("failed to create data directory %s: %w", dir, err)
	}

	tmp, err := os.CreateTemp(dir, ".portfolio-*.json")
	if err != nil {
		return fmt.Errorf("failed to create temp file in %s: %w", dir, err)
	}
	tmpPath := tmp.Name()

	if _, err := tmp.Write(buf.Bytes()); err != nil {
		tmp.Close()
		os.Remove(tmpPath)
		return fmt.Errorf("failed to write portfolio document: %w", err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpPath)
		return fmt.Errorf("failed to close temp file: %w", err)
	}

	if err := os.Rename(tmpPath, s.path); err != nil {
		os.Remove(tmpPath)
		return fmt.Errorf("failed to replace %s: %w", s.path, err)
	}

	return nil
}

// FileSize returns the size of the backing file in bytes, or 0 if it does not
// exist.
func (s *Store) FileSize() int64 {
	info, err := os.Stat(s.path)
	if err != nil {
		return 0
	}
	return info.Size()
}
