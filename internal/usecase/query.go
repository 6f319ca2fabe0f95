package usecase

import (
	"context"
	"log/slog"
	"sync"

	"github.com/user/audit-scope/internal/domain"
)

// AuditQueryUseCase exposes the read-model operations over the cached audit
// data. All operations degrade to well-defined empty results at this
// boundary; the presentation layer never handles a failure state beyond
// "empty data".
type AuditQueryUseCase struct {
	cache  *AuditCache
	logger *slog.Logger
}

// NewAuditQueryUseCase creates a new AuditQueryUseCase.
func NewAuditQueryUseCase(cache *AuditCache, logger *slog.Logger) *AuditQueryUseCase {
	return &AuditQueryUseCase{
		cache:  cache,
		logger: logger.With("component", "audit_query"),
	}
}

// View opens a request-scoped view. Every operation derived from one view
// reads the same snapshot, so statistics and risk data computed together can
// never mix two source versions.
func (uc *AuditQueryUseCase) View() *RequestView {
	return &RequestView{uc: uc}
}

// RequestView memoizes a single cache load for the lifetime of one request.
// It is cheap to create and must not outlive the request that opened it.
type RequestView struct {
	uc   *AuditQueryUseCase
	once sync.Once
	snap *Snapshot
}

// Snapshot returns the view's pinned snapshot, loading it on first use.
func (v *RequestView) Snapshot(ctx context.Context) *Snapshot {
	v.once.Do(func() {
		v.snap = v.uc.cache.Load(ctx)
	})
	return v.snap
}

// LoadAll returns the full decoded record collection.
func (v *RequestView) LoadAll(ctx context.Context) []domain.AuditRecord {
	return v.Snapshot(ctx).Records
}

// Statistics computes the corpus-wide summary.
func (v *RequestView) Statistics(ctx context.Context) domain.AuditStatistics {
	return computeStatistics(v.Snapshot(ctx).Records)
}

// RiskView computes the risk leaderboard.
func (v *RequestView) RiskView(ctx context.Context) domain.RiskData {
	return groupRisks(v.Snapshot(ctx).Records)
}

// UserProfile reconstructs one browser identity. An identity with no records,
// or a build failure (e.g. an unparseable timestamp), yields the default
// empty profile.
func (v *RequestView) UserProfile(ctx context.Context, browserID string) domain.UserProfile {
	profile, err := buildProfile(browserID, v.Snapshot(ctx).Records)
	if err != nil {
		v.uc.logger.Error("failed to build user profile, returning empty profile",
			"browser_id", browserID, "error", err)
		return emptyProfile(browserID)
	}
	return profile
}
