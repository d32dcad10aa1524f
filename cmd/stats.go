package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/DavidLiedle/gitorg/internal/display"
	"github.com/DavidLiedle/gitorg/internal/domain"
)

// statsRenderLanguages caps the languages printed in table mode. The JSON
// output carries the full histogram.
const statsRenderLanguages = 10

var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Show aggregate statistics across organizations",
	RunE:  runStats,
}

func init() {
	rootCmd.AddCommand(statsCmd)
	statsCmd.Flags().String("org", "", "Filter to a specific organization")
}

func runStats(cmd *cobra.Command, args []string) error {
	p, err := newPipeline(cmd)
	if err != nil {
		return err
	}
	org, _ := cmd.Flags().GetString("org")
	ctx := cmd.Context()

	orgs, err := p.resolveOrgs(ctx, org)
	if err != nil {
		return err
	}
	stats, err := p.agg.Stats(ctx, orgs)
	if err != nil {
		return err
	}

	display.Output(p.json, stats, func() {
		fmt.Print(formatStats(stats))
	})
	p.checkRateLimitIfVerbose(ctx)
	return nil
}

func formatStats(stats domain.OrgStats) string {
	var sb strings.Builder
	sb.WriteString(display.SectionHeader("Organization Statistics"))
	sb.WriteString("\n")
	sb.WriteString(fmt.Sprintf("  %s %d\n", display.Bold("Repositories:"), stats.TotalRepos))
	sb.WriteString(fmt.Sprintf("  %s %d\n", display.Bold("Total Stars:"), stats.TotalStars))
	sb.WriteString(fmt.Sprintf("  %s %d\n", display.Bold("Total Forks:"), stats.TotalForks))
	sb.WriteString(fmt.Sprintf("  %s %d\n", display.Bold("Open Issues:"), stats.TotalOpenIssues))
	sb.WriteString(fmt.Sprintf("  %s %.1f\n", display.Bold("Avg Stars:"), stats.AvgStars))
	sb.WriteString(fmt.Sprintf("  %s %.1f\n", display.Bold("Median Days Since Push:"), stats.MedianDaysSincePush))
	if ref := stats.MostStarred; ref != nil {
		sb.WriteString(fmt.Sprintf("  %s %s/%s (%d)\n", display.Bold("Most Starred:"), ref.Org, ref.Name, ref.Count))
	}
	if ref := stats.MostForked; ref != nil {
		sb.WriteString(fmt.Sprintf("  %s %s/%s (%d)\n", display.Bold("Most Forked:"), ref.Org, ref.Name, ref.Count))
	}
	if len(stats.Languages) > 0 {
		sb.WriteString(fmt.Sprintf("\n  %s\n", display.Bold("Top Languages:")))
		for i, lang := range stats.Languages {
			if i == statsRenderLanguages {
				break
			}
			sb.WriteString(fmt.Sprintf("    %d. %s (%d)\n", i+1, lang.Language, lang.Count))
		}
	}
	return sb.String()
}
