// Package file implements the JSON-file audit source. The document carries a
// top-level RECORDS array; the file's modification time is the change signal.
package file

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"os"
	"strconv"

	"github.com/user/audit-scope/internal/domain"
)

type envelope struct {
	Records []domain.RawRecord `json:"RECORDS"`
}

// Source reads the audit log from a JSON document on disk.
type Source struct {
	path   string
	logger *slog.Logger
}

// NewSource creates a new file-backed audit source.
func NewSource(path string, logger *slog.Logger) *Source {
	return &Source{
		path:   path,
		logger: logger.With("component", "file_source", "path", path),
	}
}

// Version returns the file's modification timestamp.
func (s *Source) Version(ctx context.Context) (string, error) {
	info, err := os.Stat(s.path)
	if err != nil {
		return "", fmt.Errorf("stat audit file: %w", err)
	}
	return strconv.FormatInt(info.ModTime().UnixNano(), 10), nil
}

// Fetch reads and parses the whole document. A document without the RECORDS
// collection is an error, not an empty result.
func (s *Source) Fetch(ctx context.Context) ([]domain.RawRecord, error) {
	data, err := os.ReadFile(s.path)
	if err != nil {
		return nil, fmt.Errorf("read audit file: %w", err)
	}

	var env envelope
	if err := json.Unmarshal(data, &env); err != nil {
		return nil, fmt.Errorf("parse audit file: %w", err)
	}
	if env.Records == nil {
		return nil, fmt.Errorf("parse audit file: %w", domain.ErrMissingRecords)
	}

	s.logger.Debug("read audit file", "records", len(env.Records))
	return env.Records, nil
}
