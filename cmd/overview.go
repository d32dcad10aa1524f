package cmd

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/DavidLiedle/gitorg/internal/display"
	"github.com/DavidLiedle/gitorg/internal/domain"
)

var overviewCmd = &cobra.Command{
	Use:   "overview",
	Short: "Show a full dashboard overview",
	RunE:  runOverview,
}

func init() {
	rootCmd.AddCommand(overviewCmd)
	overviewCmd.Flags().String("org", "", "Filter to a specific organization")
	overviewCmd.Flags().Int("days", 90, "Days threshold for stale repos in overview")
}

func runOverview(cmd *cobra.Command, args []string) error {
	p, err := newPipeline(cmd)
	if err != nil {
		return err
	}
	org, _ := cmd.Flags().GetString("org")
	days, _ := cmd.Flags().GetInt("days")
	ctx := cmd.Context()

	p.agg.WarnIfRateLimited(ctx)
	orgs, err := p.resolveOrgs(ctx, org)
	if err != nil {
		return err
	}
	data := p.agg.Overview(ctx, orgs, days)

	display.Output(p.json, data, func() {
		fmt.Print(formatOverview(data))
	})
	p.checkRateLimitIfVerbose(ctx)
	return nil
}

// formatOverview renders the dashboard. The summary line always prints;
// the remaining sections are omitted when they have nothing to show.
func formatOverview(data domain.OverviewData) string {
	var sb strings.Builder
	sb.WriteString(display.SectionHeader("Summary"))
	sb.WriteString("\n")
	sb.WriteString(fmt.Sprintf("  %s %d   %s %d   %s %d   %s %d\n",
		display.Bold("Repos:"), data.TotalRepos,
		display.Bold("Stars:"), data.TotalStars,
		display.Bold("Forks:"), data.TotalForks,
		display.Bold("Issues:"), data.TotalOpenIssues))

	if len(data.TopLanguages) > 0 {
		sb.WriteString(display.SectionHeader("Top Languages"))
		sb.WriteString("\n")
		for _, lang := range data.TopLanguages {
			sb.WriteString(fmt.Sprintf("  %s (%d)\n", lang.Language, lang.Count))
		}
	}

	if len(data.RecentlyActive) > 0 {
		sb.WriteString(display.SectionHeader("Recently Active Repos"))
		sb.WriteString("\n")
		tbl := display.NewTable("Org", "Name", "Stars", "Last Push")
		for _, repo := range data.RecentlyActive {
			tbl.Row(repo.Org, repo.Name, strconv.Itoa(repo.Stars), repo.LastPush)
		}
		sb.WriteString(tbl.String())
		sb.WriteString("\n")
	}

	if len(data.StaleRepos) > 0 {
		sb.WriteString(display.SectionHeader("Stale Repos"))
		sb.WriteString("\n")
		tbl := display.NewTable("Org", "Name", "Stars", "Last Push", "Days Stale")
		for _, repo := range data.StaleRepos {
			tbl.Row(repo.Org, repo.Name, strconv.Itoa(repo.Stars), repo.LastPush, strconv.Itoa(repo.DaysSincePush))
		}
		sb.WriteString(tbl.String())
		sb.WriteString("\n")
	}

	if len(data.RecentIssues) > 0 {
		sb.WriteString(display.SectionHeader("Recent Issues"))
		sb.WriteString("\n")
		tbl := display.NewTable("Org", "Repo", "#", "Title", "Updated")
		for _, issue := range data.RecentIssues {
			tbl.Row(issue.Org, issue.Repo, strconv.Itoa(issue.Number), issue.Title, issue.Updated)
		}
		sb.WriteString(tbl.String())
		sb.WriteString("\n")
	}
	return sb.String()
}
