package cmd

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/DavidLiedle/gitorg/internal/display"
	"github.com/DavidLiedle/gitorg/internal/domain"
)

var issuesCmd = &cobra.Command{
	Use:   "issues",
	Short: "List open issues across organizations",
	RunE:  runIssues,
}

func init() {
	rootCmd.AddCommand(issuesCmd)
	issuesCmd.Flags().String("org", "", "Filter to a specific organization")
}

func runIssues(cmd *cobra.Command, args []string) error {
	p, err := newPipeline(cmd)
	if err != nil {
		return err
	}
	org, _ := cmd.Flags().GetString("org")
	ctx := cmd.Context()

	p.agg.WarnIfRateLimited(ctx)
	orgs, err := p.resolveOrgs(ctx, org)
	if err != nil {
		return err
	}
	issues := p.agg.Issues(ctx, orgs)

	display.Output(p.json, issues, func() {
		if len(issues) == 0 {
			display.Success("No open issues found.")
			return
		}
		fmt.Print(formatIssuesTable(issues))
	})
	p.checkRateLimitIfVerbose(ctx)
	return nil
}

func formatIssuesTable(issues []domain.IssueSummary) string {
	tbl := display.NewTable("Org", "Repo", "#", "Title", "Author", "Labels", "Updated")
	for _, issue := range issues {
		tbl.Row(issue.Org, issue.Repo, strconv.Itoa(issue.Number),
			issue.Title, issue.Author, issue.Labels, issue.Updated)
	}
	return display.SectionHeader("Open Issues") + "\n" +
		tbl.String() + "\n" +
		fmt.Sprintf("\n%d open issue(s) found.\n", len(issues))
}
