package usecase

import (
	"context"
	"fmt"

	"github.com/DavidLiedle/gitorg/internal/domain"
)

// Issues flattens open issues across every organization, excluding pull
// requests. Archived repositories and repositories with no open issues are
// skipped without an API call, and a repository whose issue listing fails
// costs a warning while the rest of the run continues.
func (a *Aggregator) Issues(ctx context.Context, orgs []string) []domain.IssueSummary {
	issues := make([]domain.IssueSummary, 0)
	for _, repo := range a.reposByOrg(ctx, orgs) {
		if repo.Archived || repo.OpenIssues == 0 {
			continue
		}
		fetched, err := a.fetcher.ListOpenIssues(ctx, repo.Org, repo.Name)
		if err != nil {
			a.warn(fmt.Sprintf("Failed to fetch issues for %s/%s: %v", repo.Org, repo.Name, err))
			continue
		}
		for _, issue := range fetched {
			if issue.PullRequest {
				continue
			}
			issues = append(issues, domain.IssueSummary{
				Org:     repo.Org,
				Repo:    repo.Name,
				Number:  issue.Number,
				Title:   issue.Title,
				Author:  issue.Author,
				Labels:  domain.JoinLabels(issue.Labels),
				Updated: domain.DateString(issue.UpdatedAt),
			})
		}
	}
	return issues
}
