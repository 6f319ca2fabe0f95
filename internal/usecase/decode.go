package usecase

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"strconv"
	"strings"

	"github.com/user/audit-scope/internal/domain"
)

// activeFlag is the source's marker for an active record.
const activeFlag = "t"

// RecordDecoder turns raw audit entries into typed records. The meta field is
// a separately-serialized JSON document; its failure is the record's failure.
type RecordDecoder struct {
	logger *slog.Logger
}

// NewRecordDecoder creates a new RecordDecoder.
func NewRecordDecoder(logger *slog.Logger) *RecordDecoder {
	return &RecordDecoder{
		logger: logger.With("component", "record_decoder"),
	}
}

// Decode parses one raw entry into an AuditRecord. Risk level parsing never
// fails (unparseable input normalizes to 0); only an undecodable meta
// document makes the record fail.
func (d *RecordDecoder) Decode(raw domain.RawRecord) (domain.AuditRecord, error) {
	var doc map[string]any
	if err := json.Unmarshal([]byte(raw.Meta), &doc); err != nil {
		return domain.AuditRecord{}, fmt.Errorf("parse meta: %w", err)
	}
	if doc == nil {
		return domain.AuditRecord{}, fmt.Errorf("parse meta: document is not an object")
	}

	meta := coerceMetadata(doc)

	level, err := strconv.Atoi(strings.TrimSpace(raw.RiskLevel))
	if err != nil {
		level = 0
	}

	return domain.AuditRecord{
		ID:         raw.ID,
		Created:    raw.Created,
		Email:      raw.Email,
		Risk:       raw.Risk,
		RiskLevel:  level,
		Active:     raw.Active == activeFlag,
		BrowserID:  meta.BrowserID,
		Content:    meta.Content,
		IPExternal: meta.IPExternal,
		IPInternal: meta.IPInternal,
		UserAgent:  meta.UserAgent,
	}, nil
}

// DecodeBatch decodes every entry in source order. A failing record is
// reported with its identifier and excluded; the batch never aborts.
func (d *RecordDecoder) DecodeBatch(raws []domain.RawRecord) ([]domain.AuditRecord, []domain.DecodeFailure) {
	records := make([]domain.AuditRecord, 0, len(raws))
	var failures []domain.DecodeFailure

	for _, raw := range raws {
		record, err := d.Decode(raw)
		if err != nil {
			d.logger.Warn("failed to decode audit record, skipping", "record_id", raw.ID, "error", err)
			failures = append(failures, domain.DecodeFailure{RecordID: raw.ID, Err: err})
			continue
		}
		records = append(records, record)
	}

	return records, failures
}

// coerceMetadata maps the untyped meta document onto MetadataPayload with
// explicit presence checks. Absent or mistyped fields keep their zero value.
func coerceMetadata(doc map[string]any) domain.MetadataPayload {
	return domain.MetadataPayload{
		BrowserID:  stringField(doc, "browser_uuid"),
		Content:    stringField(doc, "content"),
		IPExternal: stringField(doc, "ip_external"),
		IPInternal: stringListField(doc, "ip_internal"),
		UserAgent:  stringField(doc, "user_agent"),
	}
}

func stringField(doc map[string]any, key string) string {
	s, _ := doc[key].(string)
	return s
}

// stringListField accepts both a single address and an array of addresses;
// the source emits either shape for ip_internal.
func stringListField(doc map[string]any, key string) []string {
	switch v := doc[key].(type) {
	case string:
		return []string{v}
	case []any:
		out := make([]string, 0, len(v))
		for _, item := range v {
			if s, ok := item.(string); ok {
				out = append(out, s)
			}
		}
		return out
	default:
		return nil
	}
}
