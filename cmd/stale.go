package cmd

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/DavidLiedle/gitorg/internal/display"
	"github.com/DavidLiedle/gitorg/internal/domain"
)

var staleCmd = &cobra.Command{
	Use:   "stale",
	Short: "Find stale repositories with no recent pushes",
	RunE:  runStale,
}

func init() {
	rootCmd.AddCommand(staleCmd)
	staleCmd.Flags().String("org", "", "Filter to a specific organization")
	staleCmd.Flags().Int("days", 90, "Number of days without a push to consider stale")
}

func runStale(cmd *cobra.Command, args []string) error {
	p, err := newPipeline(cmd)
	if err != nil {
		return err
	}
	org, _ := cmd.Flags().GetString("org")
	days, _ := cmd.Flags().GetInt("days")
	ctx := cmd.Context()

	orgs, err := p.resolveOrgs(ctx, org)
	if err != nil {
		return err
	}
	stale := p.agg.Stale(ctx, orgs, days)

	display.Output(p.json, stale, func() {
		if len(stale) == 0 {
			display.Success(fmt.Sprintf("No repositories stale for more than %d days.", days))
			return
		}
		fmt.Print(formatStaleTable(stale, days))
	})
	p.checkRateLimitIfVerbose(ctx)
	return nil
}

func formatStaleTable(stale []domain.StaleRepo, days int) string {
	tbl := display.NewTable("Org", "Name", "Last Push", "Days Stale", "Stars", "Language")
	for _, repo := range stale {
		tbl.Row(repo.Org, repo.Name, repo.LastPush,
			strconv.Itoa(repo.DaysStale), strconv.Itoa(repo.Stars), repo.Language)
	}
	return display.SectionHeader(fmt.Sprintf("Stale Repositories (>%d days)", days)) + "\n" +
		tbl.String() + "\n" +
		fmt.Sprintf("\n%d stale repository(ies) found.\n", len(stale))
}
