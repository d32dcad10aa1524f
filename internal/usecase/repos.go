package usecase

import (
	"context"

	"github.com/DavidLiedle/gitorg/internal/domain"
)

// Repos flattens every organization's repositories into summary rows and
// sorts them by the requested key.
func (a *Aggregator) Repos(ctx context.Context, orgs []string, sortKey string) []domain.RepoSummary {
	now := a.now()
	summaries := make([]domain.RepoSummary, 0)
	for _, repo := range a.reposByOrg(ctx, orgs) {
		summaries = append(summaries, domain.NewRepoSummary(now, repo))
	}
	domain.SortRepos(summaries, sortKey)
	return summaries
}
