package usecase

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"github.com/user/audit-scope/internal/adapter/metrics"
	"github.com/user/audit-scope/internal/domain"
)

// Snapshot is one immutable decoded view of the audit source. The cache hands
// out the same *Snapshot until the source version changes, so consumers that
// hold one always compute from a single consistent data set.
type Snapshot struct {
	Records  []domain.AuditRecord
	Failures []domain.DecodeFailure
	Version  string
	LoadedAt time.Time
}

// AuditCache owns the decoded record set for the process. On each Load it
// compares the source's version with the last successful load: unchanged
// versions are served from memory without touching the source; a changed
// version triggers a full re-read and re-decode, replacing the snapshot and
// version together.
type AuditCache struct {
	source  domain.AuditSource
	decoder *RecordDecoder
	logger  *slog.Logger
	metrics *metrics.AuditMetrics

	mu       sync.RWMutex
	snapshot *Snapshot
}

// NewAuditCache creates a new AuditCache. Metrics are optional; pass nil to
// disable instrumentation (e.g. in one-shot tooling).
func NewAuditCache(source domain.AuditSource, decoder *RecordDecoder, logger *slog.Logger, m *metrics.AuditMetrics) *AuditCache {
	return &AuditCache{
		source:  source,
		decoder: decoder,
		logger:  logger.With("component", "audit_cache"),
		metrics: m,
	}
}

// Load returns the current snapshot. It never returns an error: a source that
// cannot be checked or read degrades to an empty snapshot so that callers
// wanting best-available data see empty views rather than a failure.
func (c *AuditCache) Load(ctx context.Context) *Snapshot {
	version, err := c.source.Version(ctx)
	if err != nil {
		c.logger.Error("failed to check audit source version", "error", err)
		if c.metrics != nil {
			c.metrics.SourceErrors.Inc()
		}
		return emptySnapshot()
	}

	// Fast path: serve the cached snapshot with a read lock.
	c.mu.RLock()
	snap := c.snapshot
	c.mu.RUnlock()

	if snap != nil && snap.Version == version {
		if c.metrics != nil {
			c.metrics.CacheHits.Inc()
		}
		return snap
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	// Double-check in case another goroutine refreshed while waiting for
	// the write lock.
	if c.snapshot != nil && c.snapshot.Version == version {
		if c.metrics != nil {
			c.metrics.CacheHits.Inc()
		}
		return c.snapshot
	}

	raws, err := c.source.Fetch(ctx)
	if err != nil {
		c.logger.Error("failed to read audit source", "error", err)
		if c.metrics != nil {
			c.metrics.SourceErrors.Inc()
		}
		// The previous snapshot stays in place for the next attempt.
		return emptySnapshot()
	}

	records, failures := c.decoder.DecodeBatch(raws)

	c.snapshot = &Snapshot{
		Records:  records,
		Failures: failures,
		Version:  version,
		LoadedAt: time.Now().UTC(),
	}

	if c.metrics != nil {
		c.metrics.SourceReloads.Inc()
		c.metrics.DecodeFailures.Add(float64(len(failures)))
		c.metrics.CachedRecords.Set(float64(len(records)))
	}
	c.logger.Info("reloaded audit data",
		"records", len(records),
		"decode_failures", len(failures),
		"version", version,
	)

	return c.snapshot
}

func emptySnapshot() *Snapshot {
	return &Snapshot{
		Records:  []domain.AuditRecord{},
		LoadedAt: time.Now().UTC(),
	}
}
