package usecase

import (
	"fmt"
	"strconv"

	"github.com/user/audit-scope/internal/domain"
	"github.com/user/audit-scope/internal/pkg/datefmt"
)

const hoursPerDay = 24

// buildProfile reconstructs one browser identity from the full record set.
// Every record of that identity lands in the display projection; only
// risk-positive records feed the histogram, the total risk, and the distinct
// label list. A record whose creation timestamp cannot be parsed makes the
// whole build fail, since it cannot be placed in a bucket.
func buildProfile(browserID string, records []domain.AuditRecord) (domain.UserProfile, error) {
	profile := emptyProfile(browserID)
	seenRisks := make(map[string]struct{})

	for _, record := range records {
		if record.BrowserID != browserID {
			continue
		}

		if record.AtRisk() {
			created, err := datefmt.Parse(record.Created)
			if err != nil {
				return domain.UserProfile{}, fmt.Errorf("record %s: %w", record.ID, err)
			}
			profile.RiskByHour[created.Hour()].Risks[record.Risk]++
			profile.TotalRisk += record.RiskLevel

			if _, seen := seenRisks[record.Risk]; !seen {
				seenRisks[record.Risk] = struct{}{}
				profile.RiskTypes = append(profile.RiskTypes, record.Risk)
			}
		}

		profile.Records = append(profile.Records, domain.UserRecord{
			ID:         record.ID,
			Created:    record.Created,
			Risk:       record.Risk,
			RiskLevel:  record.RiskLevel,
			Content:    record.Content,
			UserAgent:  record.UserAgent,
			IPExternal: record.IPExternal,
			IPInternal: record.IPInternal,
		})
	}

	return profile, nil
}

// emptyProfile is the default returned for an unknown identity: zero totals,
// no records, and an all-zero 24-bucket histogram. There is no explicit
// not-found state.
func emptyProfile(browserID string) domain.UserProfile {
	buckets := make([]domain.RiskByHour, hoursPerDay)
	for hour := range buckets {
		buckets[hour] = domain.RiskByHour{
			Hour:  strconv.Itoa(hour),
			Risks: make(map[string]int),
		}
	}

	return domain.UserProfile{
		BrowserID:  browserID,
		Records:    []domain.UserRecord{},
		RiskByHour: buckets,
		RiskTypes:  []string{},
	}
}
