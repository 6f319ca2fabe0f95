package usecase

import (
	"testing"

	"github.com/user/audit-scope/internal/domain"
)

func TestComputeStatistics(t *testing.T) {
	t.Run("Empty Input Yields Zero Statistics", func(t *testing.T) {
		stats := computeStatistics(nil)
		if stats != (domain.AuditStatistics{}) {
			t.Errorf("expected zero statistics, got %+v", stats)
		}
	})

	t.Run("Single At-Risk Record", func(t *testing.T) {
		records := []domain.AuditRecord{
			{ID: "1", BrowserID: "b1", Risk: "sql-injection", RiskLevel: 3},
		}
		stats := computeStatistics(records)

		want := domain.AuditStatistics{TotalRecordsCount: 1, UniqueUsersCount: 1, UniqueRisksCount: 1}
		if stats != want {
			t.Errorf("got %+v, want %+v", stats, want)
		}
	})

	t.Run("Zero-Risk Records Count Users But Not Risks", func(t *testing.T) {
		records := []domain.AuditRecord{
			{ID: "1", BrowserID: "b1", Risk: "", RiskLevel: 0},
			{ID: "2", BrowserID: "b2", Risk: "xss", RiskLevel: 2},
		}
		stats := computeStatistics(records)

		want := domain.AuditStatistics{TotalRecordsCount: 2, UniqueUsersCount: 2, UniqueRisksCount: 1}
		if stats != want {
			t.Errorf("got %+v, want %+v", stats, want)
		}
	})

	t.Run("Risk Signature Is Label Plus Level", func(t *testing.T) {
		records := []domain.AuditRecord{
			{ID: "1", BrowserID: "b1", Risk: "xss", RiskLevel: 2},
			{ID: "2", BrowserID: "b1", Risk: "xss", RiskLevel: 2},
			{ID: "3", BrowserID: "b1", Risk: "xss", RiskLevel: 3},
		}
		stats := computeStatistics(records)

		if stats.UniqueRisksCount != 2 {
			t.Errorf("expected 2 distinct signatures, got %d", stats.UniqueRisksCount)
		}
		if stats.UniqueUsersCount != 1 {
			t.Errorf("expected 1 distinct user, got %d", stats.UniqueUsersCount)
		}
	})
}
