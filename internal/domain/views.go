package domain

// AuditStatistics is the corpus-wide summary shown on the dashboard.
type AuditStatistics struct {
	TotalRecordsCount int `json:"totalRecordsCount"`
	UniqueUsersCount  int `json:"uniqueUsersCount"`
	UniqueRisksCount  int `json:"uniqueRisksCount"`
}

// AtRiskUser groups one browser identity's risk-positive records.
// TotalRisk is always the sum of RiskLevel over Records.
type AtRiskUser struct {
	BrowserID string        `json:"browserId"`
	TotalRisk int           `json:"totalRisk"`
	Records   []AuditRecord `json:"records"`
}

// RiskData is the risk leaderboard view: the flat filtered record list in
// source order, plus per-user groups sorted descending by total risk.
type RiskData struct {
	AllRisks        []AuditRecord `json:"allRisks"`
	AllRisksCount   int           `json:"allRisksCount"`
	AtRiskUsers     []AtRiskUser  `json:"atRiskUsers"`
	AtRiskUserCount int           `json:"atRiskUserCount"`
}

// UserRecord is the display projection of one record inside a user profile.
type UserRecord struct {
	ID         string   `json:"id"`
	Created    string   `json:"created"`
	Risk       string   `json:"risk"`
	RiskLevel  int      `json:"riskLevel"`
	Content    string   `json:"content"`
	UserAgent  string   `json:"userAgent"`
	IPExternal string   `json:"ipExternal"`
	IPInternal []string `json:"ipInternal"`
}

// RiskByHour is one hour-of-day histogram bucket: a mapping from risk label
// to the number of risk-positive records created in that hour.
type RiskByHour struct {
	Hour  string         `json:"hour"`
	Risks map[string]int `json:"risks"`
}

// UserProfile reconstructs one browser identity: every record it produced,
// its aggregate risk, the distinct risk labels seen, and a 24-bucket
// hour-of-day risk histogram. The histogram always has exactly 24 entries,
// hour ascending, even when the profile is empty.
type UserProfile struct {
	BrowserID  string       `json:"browserId"`
	TotalRisk  int          `json:"totalRisk"`
	Records    []UserRecord `json:"records"`
	RiskByHour []RiskByHour `json:"riskByHour"`
	RiskTypes  []string     `json:"riskTypes"`
}
