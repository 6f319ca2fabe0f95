package domain

import (
	"context"
	"errors"
)

// ErrMissingRecords indicates the audit document exists but does not carry
// the expected top-level RECORDS collection.
var ErrMissingRecords = errors.New("audit document missing RECORDS collection")

// AuditSource abstracts where the raw audit log lives (JSON file, SQL table,
// Redis document). Implementations are read-only.
type AuditSource interface {
	// Version returns an opaque identifier that changes whenever the
	// underlying data changes. The cache compares versions to decide
	// whether a Fetch is needed.
	Version(ctx context.Context) (string, error)

	// Fetch reads the full raw record collection from the source.
	Fetch(ctx context.Context) ([]RawRecord, error)
}

// DecodeFailure records one audit entry that could not be decoded, identified
// by the record it belongs to. Failures travel alongside the successful set
// instead of being printed from inside the decoder.
type DecodeFailure struct {
	RecordID string `json:"recordId"`
	Err      error  `json:"-"`
}

func (f DecodeFailure) Error() string {
	if f.Err == nil {
		return "decode failure for record " + f.RecordID
	}
	return "decode failure for record " + f.RecordID + ": " + f.Err.Error()
}

func (f DecodeFailure) Unwrap() error {
	return f.Err
}
