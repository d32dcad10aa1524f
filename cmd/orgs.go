package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/DavidLiedle/gitorg/internal/display"
	"github.com/DavidLiedle/gitorg/internal/domain"
)

var orgsCmd = &cobra.Command{
	Use:   "orgs",
	Short: "List your GitHub organizations",
	RunE:  runOrgs,
}

func init() {
	rootCmd.AddCommand(orgsCmd)
}

func runOrgs(cmd *cobra.Command, args []string) error {
	p, err := newPipeline(cmd)
	if err != nil {
		return err
	}
	ctx := cmd.Context()

	orgs, err := p.agg.Orgs(ctx)
	if err != nil {
		return err
	}

	display.Output(p.json, orgs, func() {
		if len(orgs) == 0 {
			display.Warn("No organizations found.")
			return
		}
		fmt.Print(formatOrgsTable(orgs))
	})
	p.checkRateLimitIfVerbose(ctx)
	return nil
}

func formatOrgsTable(orgs []domain.OrgSummary) string {
	tbl := display.NewTable("Name", "Description", "URL")
	for _, org := range orgs {
		tbl.Row(org.Name, org.Description, org.URL)
	}
	return display.SectionHeader("Organizations") + "\n" +
		tbl.String() + "\n" +
		fmt.Sprintf("\n%d organization(s) found.\n", len(orgs))
}
