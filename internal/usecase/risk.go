package usecase

import (
	"sort"

	"github.com/user/audit-scope/internal/domain"
)

// groupRisks filters the record set to risk-positive records, groups them by
// browser identity, and ranks the groups descending by aggregate risk. Record
// order within a group follows source order; users with equal total risk keep
// first-encounter order (stable sort).
func groupRisks(records []domain.AuditRecord) domain.RiskData {
	data := domain.RiskData{
		AllRisks:    []domain.AuditRecord{},
		AtRiskUsers: []domain.AtRiskUser{},
	}

	groups := make(map[string]*domain.AtRiskUser)
	var order []string

	for _, record := range records {
		if !record.AtRisk() {
			continue
		}
		data.AllRisks = append(data.AllRisks, record)

		group, ok := groups[record.BrowserID]
		if !ok {
			group = &domain.AtRiskUser{BrowserID: record.BrowserID}
			groups[record.BrowserID] = group
			order = append(order, record.BrowserID)
		}
		group.Records = append(group.Records, record)
		group.TotalRisk += record.RiskLevel
	}

	users := make([]domain.AtRiskUser, 0, len(order))
	for _, browserID := range order {
		users = append(users, *groups[browserID])
	}
	sort.SliceStable(users, func(i, j int) bool {
		return users[i].TotalRisk > users[j].TotalRisk
	})

	data.AllRisksCount = len(data.AllRisks)
	data.AtRiskUsers = users
	data.AtRiskUserCount = len(users)

	return data
}
