package cmd

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/DavidLiedle/gitorg/internal/display"
	"github.com/DavidLiedle/gitorg/internal/domain"
)

var reposCmd = &cobra.Command{
	Use:   "repos",
	Short: "List repositories across organizations",
	RunE:  runRepos,
}

func init() {
	rootCmd.AddCommand(reposCmd)
	reposCmd.Flags().String("org", "", "Filter to a specific organization")
	reposCmd.Flags().String("sort", domain.SortActivity, "Sort by: activity, stars, staleness, name")
}

func runRepos(cmd *cobra.Command, args []string) error {
	p, err := newPipeline(cmd)
	if err != nil {
		return err
	}
	org, _ := cmd.Flags().GetString("org")
	sortKey, _ := cmd.Flags().GetString("sort")
	ctx := cmd.Context()

	orgs, err := p.resolveOrgs(ctx, org)
	if err != nil {
		return err
	}
	repos := p.agg.Repos(ctx, orgs, sortKey)

	display.Output(p.json, repos, func() {
		if len(repos) == 0 {
			display.Warn("No repositories found.")
			return
		}
		fmt.Print(formatReposTable(repos))
	})
	p.checkRateLimitIfVerbose(ctx)
	return nil
}

func formatReposTable(repos []domain.RepoSummary) string {
	tbl := display.NewTable("Org", "Name", "Language", "Stars", "Forks", "Issues", "Last Push", "Status")
	for _, repo := range repos {
		tbl.Row(repo.Org, repo.Name, repo.Language,
			strconv.Itoa(repo.Stars), strconv.Itoa(repo.Forks), strconv.Itoa(repo.OpenIssues),
			repo.LastPush, repo.Status)
	}
	return display.SectionHeader("Repositories") + "\n" +
		tbl.String() + "\n" +
		fmt.Sprintf("\n%d repository(ies) found.\n", len(repos))
}
