package usecase

import (
	"context"
	"sort"

	"github.com/DavidLiedle/gitorg/internal/domain"
)

const (
	overviewListCap     = 10
	overviewLanguageCap = 5
	overviewIssuesPer   = 3
)

// Overview builds the dashboard summary: totals and top languages over
// every repository (archived included), the most recently active and most
// stale repositories against the threshold, and a sample of recently
// updated issues.
func (a *Aggregator) Overview(ctx context.Context, orgs []string, days int) domain.OverviewData {
	now := a.now()
	overview := domain.OverviewData{
		TopLanguages:   make([]domain.LanguageCount, 0),
		RecentlyActive: make([]domain.RepoEntry, 0),
		StaleRepos:     make([]domain.RepoEntry, 0),
		RecentIssues:   make([]domain.IssueEntry, 0),
	}

	languages := make(map[string]int)
	var entries []domain.RepoEntry

	for _, repo := range a.reposByOrg(ctx, orgs) {
		overview.TotalRepos++
		overview.TotalStars += repo.Stars
		overview.TotalForks += repo.Forks
		overview.TotalOpenIssues += repo.OpenIssues
		languages[histogramLanguage(repo.Language)]++

		entries = append(entries, domain.RepoEntry{
			Org:           repo.Org,
			Name:          repo.Name,
			Stars:         repo.Stars,
			LastPush:      domain.LastPushString(repo.PushedAt),
			DaysSincePush: domain.DaysSincePush(now, repo.PushedAt),
		})

		if repo.Archived || repo.OpenIssues == 0 {
			continue
		}
		fetched, err := a.fetcher.ListOpenIssues(ctx, repo.Org, repo.Name)
		if err != nil {
			// Issue failures are silently skipped here; the dashboard stays
			// best-effort while the issues command warns instead.
			continue
		}
		// The per-repository cap applies to the fetched list, before pull
		// requests are filtered out.
		if len(fetched) > overviewIssuesPer {
			fetched = fetched[:overviewIssuesPer]
		}
		for _, issue := range fetched {
			if issue.PullRequest {
				continue
			}
			overview.RecentIssues = append(overview.RecentIssues, domain.IssueEntry{
				Org:     repo.Org,
				Repo:    repo.Name,
				Number:  issue.Number,
				Title:   issue.Title,
				Updated: domain.DateString(issue.UpdatedAt),
			})
		}
	}

	sort.SliceStable(entries, func(i, j int) bool {
		return entries[i].DaysSincePush < entries[j].DaysSincePush
	})
	for _, entry := range entries {
		if entry.DaysSincePush >= days || len(overview.RecentlyActive) == overviewListCap {
			break
		}
		overview.RecentlyActive = append(overview.RecentlyActive, entry)
	}
	// The stale list walks the activity order backwards so the most stale
	// repositories come first.
	for i := len(entries) - 1; i >= 0; i-- {
		if entries[i].DaysSincePush < days || len(overview.StaleRepos) == overviewListCap {
			break
		}
		overview.StaleRepos = append(overview.StaleRepos, entries[i])
	}

	sort.SliceStable(overview.RecentIssues, func(i, j int) bool {
		return overview.RecentIssues[i].Updated > overview.RecentIssues[j].Updated
	})
	if len(overview.RecentIssues) > overviewListCap {
		overview.RecentIssues = overview.RecentIssues[:overviewListCap]
	}

	overview.TopLanguages = languageHistogram(languages, overviewLanguageCap)
	return overview
}
