package usecase

import (
	"fmt"

	"github.com/user/audit-scope/internal/domain"
)

// computeStatistics aggregates the full record set into corpus-wide counts.
// Unique users span all records; unique risk signatures only count
// risk-positive ones. Empty input yields all-zero statistics.
func computeStatistics(records []domain.AuditRecord) domain.AuditStatistics {
	uniqueUsers := make(map[string]struct{})
	uniqueRisks := make(map[string]struct{})

	for _, record := range records {
		uniqueUsers[record.BrowserID] = struct{}{}
		if record.AtRisk() {
			uniqueRisks[fmt.Sprintf("%s:%d", record.Risk, record.RiskLevel)] = struct{}{}
		}
	}

	return domain.AuditStatistics{
		TotalRecordsCount: len(records),
		UniqueUsersCount:  len(uniqueUsers),
		UniqueRisksCount:  len(uniqueRisks),
	}
}
