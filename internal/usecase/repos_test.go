package usecase

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/DavidLiedle/gitorg/internal/domain"
)

func TestAggregator_Repos(t *testing.T) {
	t.Run("star sort puts the most starred first", func(t *testing.T) {
		fetcher := new(mockFetcher)
		fetcher.On("ListOrgRepos", mock.Anything, "acme").Return([]domain.Repo{
			{Org: "acme", Name: "low", Stars: 5, PushedAt: pushedDaysAgo(1)},
			{Org: "acme", Name: "high", Stars: 100, PushedAt: pushedDaysAgo(1)},
			{Org: "acme", Name: "mid", Stars: 50, PushedAt: pushedDaysAgo(1)},
		}, nil)
		aggregator := newTestAggregator(fetcher, nil)

		summaries := aggregator.Repos(context.Background(), []string{"acme"}, domain.SortStars)

		names := make([]string, 0, len(summaries))
		for _, s := range summaries {
			names = append(names, s.Name)
		}
		assert.Equal(t, []string{"high", "mid", "low"}, names)
	})

	t.Run("summaries derive status, language, and push date", func(t *testing.T) {
		fetcher := new(mockFetcher)
		fetcher.On("ListOrgRepos", mock.Anything, "acme").Return([]domain.Repo{
			{Org: "acme", Name: "fresh", Language: "Go", Stars: 3, Forks: 1, OpenIssues: 2, PushedAt: pushedDaysAgo(7)},
			{Org: "acme", Name: "dusty", PushedAt: pushedDaysAgo(400)},
			{Org: "acme", Name: "frozen", Archived: true, PushedAt: pushedDaysAgo(3)},
			{Org: "acme", Name: "ghost"},
		}, nil)
		aggregator := newTestAggregator(fetcher, nil)

		summaries := aggregator.Repos(context.Background(), []string{"acme"}, domain.SortName)
		require.Len(t, summaries, 4)

		byName := make(map[string]domain.RepoSummary, len(summaries))
		for _, s := range summaries {
			byName[s.Name] = s
		}
		assert.Equal(t, "active", byName["fresh"].Status)
		assert.Equal(t, "Go", byName["fresh"].Language)
		assert.Equal(t, "stale", byName["dusty"].Status)
		assert.Equal(t, "-", byName["dusty"].Language)
		assert.Equal(t, "archived", byName["frozen"].Status)
		assert.Equal(t, "stale", byName["ghost"].Status)
		assert.Equal(t, "never", byName["ghost"].LastPush)
	})

	t.Run("no organizations yields an empty slice, not nil", func(t *testing.T) {
		fetcher := new(mockFetcher)
		aggregator := newTestAggregator(fetcher, nil)

		summaries := aggregator.Repos(context.Background(), nil, domain.SortActivity)
		assert.NotNil(t, summaries)
		assert.Empty(t, summaries)
	})
}
