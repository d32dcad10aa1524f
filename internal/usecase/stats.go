package usecase

import (
	"context"
	"sort"

	"github.com/montanaflynn/stats"

	"github.com/DavidLiedle/gitorg/internal/domain"
)

// Stats computes aggregate statistics across every repository of the given
// organizations: totals, a language histogram, the single most starred and
// most forked repositories, plus mean stars and median days since push.
func (a *Aggregator) Stats(ctx context.Context, orgs []string) (domain.OrgStats, error) {
	now := a.now()
	repos := a.reposByOrg(ctx, orgs)

	result := domain.OrgStats{Languages: make([]domain.LanguageCount, 0)}
	if len(repos) == 0 {
		return result, nil
	}

	starValues := make([]float64, 0, len(repos))
	pushAges := make([]float64, 0, len(repos))
	languages := make(map[string]int)

	for _, repo := range repos {
		result.TotalRepos++
		result.TotalStars += repo.Stars
		result.TotalForks += repo.Forks
		result.TotalOpenIssues += repo.OpenIssues

		starValues = append(starValues, float64(repo.Stars))
		pushAges = append(pushAges, float64(domain.DaysSincePush(now, repo.PushedAt)))
		languages[histogramLanguage(repo.Language)]++

		// Strictly-greater comparison, so the first repository encountered
		// keeps the title on a tie. Counts of zero never qualify.
		if repo.Stars > 0 && (result.MostStarred == nil || repo.Stars > result.MostStarred.Count) {
			result.MostStarred = &domain.RepoRef{Org: repo.Org, Name: repo.Name, Count: repo.Stars}
		}
		if repo.Forks > 0 && (result.MostForked == nil || repo.Forks > result.MostForked.Count) {
			result.MostForked = &domain.RepoRef{Org: repo.Org, Name: repo.Name, Count: repo.Forks}
		}
	}

	avg, err := stats.Mean(starValues)
	if err != nil {
		return domain.OrgStats{}, err
	}
	median, err := stats.Median(pushAges)
	if err != nil {
		return domain.OrgStats{}, err
	}
	result.AvgStars = avg
	result.MedianDaysSincePush = median
	result.Languages = languageHistogram(languages, 0)
	return result, nil
}

// histogramLanguage buckets repositories without a detected language under
// "Unknown". The per-repository views use "-" for the same case.
func histogramLanguage(language string) string {
	if language == "" {
		return "Unknown"
	}
	return language
}

// languageHistogram flattens a language count map into a deterministic
// order: most common first, ties broken alphabetically. A positive limit
// caps the list length.
func languageHistogram(counts map[string]int, limit int) []domain.LanguageCount {
	histogram := make([]domain.LanguageCount, 0, len(counts))
	for language, count := range counts {
		histogram = append(histogram, domain.LanguageCount{Language: language, Count: count})
	}
	sort.Slice(histogram, func(i, j int) bool {
		if histogram[i].Count != histogram[j].Count {
			return histogram[i].Count > histogram[j].Count
		}
		return histogram[i].Language < histogram[j].Language
	})
	if limit > 0 && len(histogram) > limit {
		histogram = histogram[:limit]
	}
	return histogram
}
