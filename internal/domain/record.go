package domain

// RawRecord is the verbatim shape of one entry in the audit source.
// All fields arrive string-encoded; the meta field is itself a JSON document.
type RawRecord struct {
	ID        string `json:"id"`
	Created   string `json:"created"`
	Email     string `json:"email"`
	Risk      string `json:"risk"`
	RiskLevel string `json:"risk_level"`
	Meta      string `json:"meta"`
	Active    string `json:"active"`
}

// MetadataPayload holds the fields decoded from a raw record's meta document.
// Absent fields keep their zero value; schema is not validated beyond a
// successful decode.
type MetadataPayload struct {
	BrowserID  string
	Content    string
	IPExternal string
	IPInternal []string
	UserAgent  string
}

// AuditRecord is the canonical typed record: the raw scalars merged with the
// decoded metadata, a normalized risk level, and a boolean active flag.
type AuditRecord struct {
	ID         string   `json:"id"`
	Created    string   `json:"created"`
	Email      string   `json:"email"`
	Risk       string   `json:"risk"`
	RiskLevel  int      `json:"riskLevel"`
	Active     bool     `json:"active"`
	BrowserID  string   `json:"browserId"`
	Content    string   `json:"content"`
	IPExternal string   `json:"ipExternal"`
	IPInternal []string `json:"ipInternal"`
	UserAgent  string   `json:"userAgent"`
}

// AtRisk reports whether the record was flagged by the risk engine.
func (r AuditRecord) AtRisk() bool {
	return r.RiskLevel > 0
}
