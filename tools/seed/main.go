package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"log"
	"math/rand"
	"os"

	"github.com/google/uuid"

	"github.com/user/audit-scope/internal/domain"
)

// seed generates a synthetic audit JSON file for local development and load
// experiments: a mix of clean and risk-positive records across a pool of
// browser identities, with a configurable share of broken meta blobs.
func main() {
	out := flag.String("out", "data/audit.json", "Output path for the audit file")
	count := flag.Int("n", 5000, "Number of records to generate")
	users := flag.Int("users", 50, "Number of distinct browser identities")
	brokenPct := flag.Int("broken", 2, "Percent of records with undecodable meta")
	seed := flag.Int64("seed", 1, "PRNG seed")
	flag.Parse()

	rng := rand.New(rand.NewSource(*seed))

	browserIDs := make([]string, *users)
	for i := range browserIDs {
		browserIDs[i] = uuid.NewString()
	}

	risks := []struct {
		label string
		level int
	}{
		{"", 0},
		{"", 0},
		{"", 0},
		{"sql-injection", 3},
		{"xss", 2},
		{"path-traversal", 2},
		{"credential-stuffing", 4},
		{"scraper", 1},
	}
	pages := []string{"/login", "/search", "/account", "/admin", "/export", "/api/orders"}
	agents := []string{
		"Mozilla/5.0 (Windows NT 10.0; Win64; x64)",
		"Mozilla/5.0 (Macintosh; Intel Mac OS X 10_15_7)",
		"curl/8.5.0",
	}

	records := make([]domain.RawRecord, 0, *count)
	for i := 0; i < *count; i++ {
		risk := risks[rng.Intn(len(risks))]

		meta := fmt.Sprintf(`{"browser_uuid":"%s","content":"%s","ip_external":"203.0.113.%d","ip_internal":["10.0.0.%d"],"user_agent":"%s"}`,
			browserIDs[rng.Intn(len(browserIDs))],
			pages[rng.Intn(len(pages))],
			rng.Intn(254)+1,
			rng.Intn(254)+1,
			agents[rng.Intn(len(agents))],
		)
		if rng.Intn(100) < *brokenPct {
			meta = meta[:len(meta)/2] // Truncated JSON, decoder must skip it
		}

		created := fmt.Sprintf("%d/%02d/2024 %02d:%02d:%02d.%06d+02",
			rng.Intn(28)+1, rng.Intn(12)+1, rng.Intn(24), rng.Intn(60), rng.Intn(60), rng.Intn(1000000))

		active := "f"
		if rng.Intn(2) == 0 {
			active = "t"
		}

		records = append(records, domain.RawRecord{
			ID:        fmt.Sprintf("%d", i+1),
			Created:   created,
			Email:     fmt.Sprintf("user%d@example.com", rng.Intn(*users)),
			Risk:      risk.label,
			RiskLevel: fmt.Sprintf("%d", risk.level),
			Meta:      meta,
			Active:    active,
		})
	}

	doc, err := json.MarshalIndent(map[string][]domain.RawRecord{"RECORDS": records}, "", "  ")
	if err != nil {
		log.Fatalf("marshal audit document: %v", err)
	}
	if err := os.WriteFile(*out, doc, 0644); err != nil {
		log.Fatalf("write %s: %v", *out, err)
	}

	log.Printf("Wrote %d records (%d identities) to %s", len(records), *users, *out)
}
