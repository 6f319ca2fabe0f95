package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"os"

	filesource "github.com/user/audit-scope/internal/adapter/source/file"
	"github.com/user/audit-scope/internal/pkg/config"
	"github.com/user/audit-scope/internal/pkg/datefmt"
	"github.com/user/audit-scope/internal/pkg/logger"
	"github.com/user/audit-scope/internal/usecase"
)

// report is a one-shot collaborator of the core: it loads the audit file
// once and prints the derived views to stdout.
func main() {
	path := flag.String("file", "", "audit JSON file (defaults to AUDIT_FILE_PATH)")
	top := flag.Int("top", 10, "number of at-risk users to print")
	user := flag.String("user", "", "print the profile for this browser id instead of the summary")
	flag.Parse()

	cfg, err := config.Load()
	if err != nil {
		slog.Error("failed to load config", "error", err)
		os.Exit(1)
	}
	if *path == "" {
		*path = cfg.AuditFilePath
	}

	log := logger.New(cfg.LogLevel)
	slog.SetDefault(log)

	ctx := context.Background()
	source := filesource.NewSource(*path, log)
	decoder := usecase.NewRecordDecoder(log)
	cache := usecase.NewAuditCache(source, decoder, log, nil)
	query := usecase.NewAuditQueryUseCase(cache, log)

	view := query.View()

	if *user != "" {
		printProfile(ctx, view, *user)
		return
	}

	stats := view.Statistics(ctx)
	risks := view.RiskView(ctx)
	failures := view.Snapshot(ctx).Failures

	fmt.Printf("Audit report for %s\n\n", *path)
	fmt.Printf("Records:          %d\n", stats.TotalRecordsCount)
	fmt.Printf("Unique users:     %d\n", stats.UniqueUsersCount)
	fmt.Printf("Risk signatures:  %d\n", stats.UniqueRisksCount)
	fmt.Printf("At-risk records:  %d\n", risks.AllRisksCount)
	fmt.Printf("At-risk users:    %d\n", risks.AtRiskUserCount)
	fmt.Printf("Decode failures:  %d\n", len(failures))

	if risks.AtRiskUserCount == 0 {
		return
	}

	fmt.Printf("\nTop at-risk users:\n")
	for i, u := range risks.AtRiskUsers {
		if i >= *top {
			break
		}
		fmt.Printf("%3d. %-40s risk %4d over %d records\n", i+1, u.BrowserID, u.TotalRisk, len(u.Records))
	}
}

func printProfile(ctx context.Context, view *usecase.RequestView, browserID string) {
	profile := view.UserProfile(ctx, browserID)

	fmt.Printf("Profile %s\n\n", profile.BrowserID)
	fmt.Printf("Records:     %d\n", len(profile.Records))
	fmt.Printf("Total risk:  %d\n", profile.TotalRisk)
	fmt.Printf("Risk types:  %v\n", profile.RiskTypes)

	if len(profile.Records) == 0 {
		return
	}

	fmt.Printf("\nActivity:\n")
	for _, rec := range profile.Records {
		created := rec.Created
		if t, err := datefmt.Parse(rec.Created); err == nil {
			created = datefmt.Format(t)
		}
		fmt.Printf("  %-30s level %d  %-20s %s\n", created, rec.RiskLevel, rec.Risk, rec.Content)
	}
}
