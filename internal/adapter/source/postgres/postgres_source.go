// Package postgres implements a read-only audit source backed by an
// audit_records table, for deployments where the export lands in SQL instead
// of on disk.
package postgres

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"

	"github.com/user/audit-scope/internal/domain"
)

// Source reads the audit log from PostgreSQL. The table is append-only, so
// the row count combined with the highest identifier is a sufficient change
// signal.
type Source struct {
	db     *sql.DB
	logger *slog.Logger
}

// NewSource creates a new PostgreSQL-backed audit source.
func NewSource(db *sql.DB, logger *slog.Logger) *Source {
	return &Source{
		db:     db,
		logger: logger.With("component", "postgres_source"),
	}
}

// Version fingerprints the table as "<count>:<max id>".
func (s *Source) Version(ctx context.Context) (string, error) {
	var count int64
	var maxID sql.NullString

	query := `SELECT COUNT(*), MAX(id) FROM audit_records`
	if err := s.db.QueryRowContext(ctx, query).Scan(&count, &maxID); err != nil {
		return "", fmt.Errorf("fingerprint audit_records: %w", err)
	}
	return fmt.Sprintf("%d:%s", count, maxID.String), nil
}

// Fetch reads every row in identifier order, preserving the source order the
// aggregations rely on.
func (s *Source) Fetch(ctx context.Context) ([]domain.RawRecord, error) {
	query := `SELECT id, created, email, risk, risk_level, meta, active
		FROM audit_records
		ORDER BY id`

	rows, err := s.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("query audit_records: %w", err)
	}
	defer rows.Close()

	var records []domain.RawRecord
	for rows.Next() {
		var r domain.RawRecord
		if err := rows.Scan(&r.ID, &r.Created, &r.Email, &r.Risk, &r.RiskLevel, &r.Meta, &r.Active); err != nil {
			return nil, fmt.Errorf("scan audit record: %w", err)
		}
		records = append(records, r)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate audit_records: %w", err)
	}

	s.logger.Debug("read audit table", "records", len(records))
	return records, nil
}
