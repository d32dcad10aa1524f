package usecase

import (
	"context"
	"sort"

	"github.com/DavidLiedle/gitorg/internal/domain"
)

// Stale lists non-archived repositories whose last push is at least the
// threshold old, most stale first.
func (a *Aggregator) Stale(ctx context.Context, orgs []string, days int) []domain.StaleRepo {
	now := a.now()
	stale := make([]domain.StaleRepo, 0)
	for _, repo := range a.reposByOrg(ctx, orgs) {
		if repo.Archived {
			continue
		}
		staleDays := domain.DaysSincePush(now, repo.PushedAt)
		if staleDays < days {
			continue
		}
		stale = append(stale, domain.StaleRepo{
			Org:       repo.Org,
			Name:      repo.Name,
			LastPush:  domain.LastPushString(repo.PushedAt),
			DaysStale: staleDays,
			Stars:     repo.Stars,
			Language:  domain.DisplayLanguage(repo.Language),
		})
	}
	sort.SliceStable(stale, func(i, j int) bool {
		return stale[i].DaysStale > stale[j].DaysStale
	})
	return stale
}
