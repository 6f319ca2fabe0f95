package handler

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/user/audit-scope/internal/adapter/metrics"
	"github.com/user/audit-scope/internal/domain"
	"github.com/user/audit-scope/internal/usecase"
)

// AuditHandler serves the read-model views over HTTP. Each request opens one
// request-scoped view, so everything it renders comes from a single snapshot.
type AuditHandler struct {
	query   *usecase.AuditQueryUseCase
	logger  *slog.Logger
	metrics *metrics.AuditMetrics
}

// NewAuditHandler creates a new AuditHandler. Metrics are optional.
func NewAuditHandler(query *usecase.AuditQueryUseCase, logger *slog.Logger, m *metrics.AuditMetrics) *AuditHandler {
	return &AuditHandler{
		query:   query,
		logger:  logger.With("component", "audit_handler"),
		metrics: m,
	}
}

// ListRecords returns the full decoded record collection.
func (h *AuditHandler) ListRecords(w http.ResponseWriter, r *http.Request) {
	h.countView("records")
	records := h.query.View().LoadAll(r.Context())
	h.writeJSON(w, listResponse{Records: records, Count: len(records)})
}

// Statistics returns the corpus-wide summary.
func (h *AuditHandler) Statistics(w http.ResponseWriter, r *http.Request) {
	h.countView("statistics")
	h.writeJSON(w, h.query.View().Statistics(r.Context()))
}

// Risks returns the risk leaderboard.
func (h *AuditHandler) Risks(w http.ResponseWriter, r *http.Request) {
	h.countView("risks")
	h.writeJSON(w, h.query.View().RiskView(r.Context()))
}

// UserProfile returns one browser identity's profile. Unknown identities get
// the default empty profile, not a 404.
func (h *AuditHandler) UserProfile(w http.ResponseWriter, r *http.Request) {
	h.countView("profile")
	browserID := r.PathValue("browserId")
	h.writeJSON(w, h.query.View().UserProfile(r.Context(), browserID))
}

// Dashboard returns the statistics together with a risk summary, both
// computed from the same request-scoped snapshot.
func (h *AuditHandler) Dashboard(w http.ResponseWriter, r *http.Request) {
	h.countView("dashboard")
	view := h.query.View()

	stats := view.Statistics(r.Context())
	risks := view.RiskView(r.Context())

	top := risks.AtRiskUsers
	if len(top) > dashboardTopUsers {
		top = top[:dashboardTopUsers]
	}
	summaries := make([]atRiskUserSummary, 0, len(top))
	for _, user := range top {
		summaries = append(summaries, atRiskUserSummary{
			BrowserID:   user.BrowserID,
			TotalRisk:   user.TotalRisk,
			RecordCount: len(user.Records),
		})
	}

	h.writeJSON(w, dashboardResponse{
		Statistics:      stats,
		AllRisksCount:   risks.AllRisksCount,
		AtRiskUserCount: risks.AtRiskUserCount,
		TopAtRiskUsers:  summaries,
	})
}

const dashboardTopUsers = 5

type listResponse struct {
	Records []domain.AuditRecord `json:"records"`
	Count   int                  `json:"count"`
}

type atRiskUserSummary struct {
	BrowserID   string `json:"browserId"`
	TotalRisk   int    `json:"totalRisk"`
	RecordCount int    `json:"recordCount"`
}

type dashboardResponse struct {
	Statistics      domain.AuditStatistics `json:"statistics"`
	AllRisksCount   int                    `json:"allRisksCount"`
	AtRiskUserCount int                    `json:"atRiskUserCount"`
	TopAtRiskUsers  []atRiskUserSummary    `json:"topAtRiskUsers"`
}

func (h *AuditHandler) writeJSON(w http.ResponseWriter, v any) {
	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(v); err != nil {
		h.logger.Error("failed to encode response", "error", err)
	}
}

func (h *AuditHandler) countView(view string) {
	if h.metrics != nil {
		h.metrics.ViewRequests.WithLabelValues(view).Inc()
	}
}
