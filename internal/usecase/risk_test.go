package usecase

import (
	"testing"

	"github.com/user/audit-scope/internal/domain"
)

func TestGroupRisks(t *testing.T) {
	t.Run("No At-Risk Records Yields Empty Lists", func(t *testing.T) {
		records := []domain.AuditRecord{
			{ID: "1", BrowserID: "b1", RiskLevel: 0},
		}
		data := groupRisks(records)

		if data.AllRisksCount != 0 || data.AtRiskUserCount != 0 {
			t.Errorf("expected zero counts, got %+v", data)
		}
		if data.AllRisks == nil || data.AtRiskUsers == nil {
			t.Error("expected empty, non-nil lists")
		}
	})

	t.Run("Single Record", func(t *testing.T) {
		records := []domain.AuditRecord{
			{ID: "1", BrowserID: "b1", Risk: "sql-injection", RiskLevel: 3},
		}
		data := groupRisks(records)

		if data.AllRisksCount != 1 || data.AtRiskUserCount != 1 {
			t.Fatalf("unexpected counts: %+v", data)
		}
		user := data.AtRiskUsers[0]
		if user.BrowserID != "b1" || user.TotalRisk != 3 {
			t.Errorf("unexpected user: %+v", user)
		}
	})

	t.Run("Groups Sum Risk And Sort Descending", func(t *testing.T) {
		records := []domain.AuditRecord{
			{ID: "1", BrowserID: "b1", Risk: "xss", RiskLevel: 1},
			{ID: "2", BrowserID: "b2", Risk: "sql-injection", RiskLevel: 4},
			{ID: "3", BrowserID: "b1", Risk: "xss", RiskLevel: 2},
			{ID: "4", BrowserID: "b3", RiskLevel: 0},
		}
		data := groupRisks(records)

		if data.AllRisksCount != 3 {
			t.Errorf("expected 3 at-risk records, got %d", data.AllRisksCount)
		}
		if data.AtRiskUserCount != 2 {
			t.Fatalf("expected 2 at-risk users, got %d", data.AtRiskUserCount)
		}
		if data.AtRiskUsers[0].BrowserID != "b2" || data.AtRiskUsers[0].TotalRisk != 4 {
			t.Errorf("unexpected leader: %+v", data.AtRiskUsers[0])
		}
		if data.AtRiskUsers[1].BrowserID != "b1" || data.AtRiskUsers[1].TotalRisk != 3 {
			t.Errorf("unexpected runner-up: %+v", data.AtRiskUsers[1])
		}

		// Per-user record order follows source order.
		b1 := data.AtRiskUsers[1]
		if b1.Records[0].ID != "1" || b1.Records[1].ID != "3" {
			t.Errorf("expected source order within group, got %+v", b1.Records)
		}

		// Invariant: totalRisk equals the sum over the group's records.
		for _, user := range data.AtRiskUsers {
			sum := 0
			for _, r := range user.Records {
				sum += r.RiskLevel
			}
			if sum != user.TotalRisk {
				t.Errorf("user %s: totalRisk %d != sum %d", user.BrowserID, user.TotalRisk, sum)
			}
		}
	})

	t.Run("Equal Totals Keep First-Encounter Order", func(t *testing.T) {
		records := []domain.AuditRecord{
			{ID: "1", BrowserID: "b1", Risk: "xss", RiskLevel: 2},
			{ID: "2", BrowserID: "b2", Risk: "xss", RiskLevel: 2},
			{ID: "3", BrowserID: "b3", Risk: "xss", RiskLevel: 2},
		}
		data := groupRisks(records)

		got := []string{
			data.AtRiskUsers[0].BrowserID,
			data.AtRiskUsers[1].BrowserID,
			data.AtRiskUsers[2].BrowserID,
		}
		want := []string{"b1", "b2", "b3"}
		for i := range want {
			if got[i] != want[i] {
				t.Fatalf("expected stable order %v, got %v", want, got)
			}
		}
	})

	t.Run("Flat List Preserves Encounter Order Across Users", func(t *testing.T) {
		records := []domain.AuditRecord{
			{ID: "1", BrowserID: "b2", Risk: "xss", RiskLevel: 1},
			{ID: "2", BrowserID: "b1", Risk: "xss", RiskLevel: 5},
			{ID: "3", BrowserID: "b2", Risk: "xss", RiskLevel: 1},
		}
		data := groupRisks(records)

		for i, wantID := range []string{"1", "2", "3"} {
			if data.AllRisks[i].ID != wantID {
				t.Fatalf("expected allRisks in source order, got %+v", data.AllRisks)
			}
		}
	})
}
