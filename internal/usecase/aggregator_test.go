package usecase

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/DavidLiedle/gitorg/internal/domain"
)

// testNow pins the clock so day arithmetic in fixtures is exact.
var testNow = time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)

// pushedDaysAgo builds a push timestamp exactly n days before testNow.
func pushedDaysAgo(n int) *time.Time {
	ts := testNow.Add(-time.Duration(n) * 24 * time.Hour)
	return &ts
}

// mockFetcher is a mock implementation of the gateway.Fetcher interface. It
// lets the pipeline run against scripted data instead of real API calls.
type mockFetcher struct {
	mock.Mock
}

func (m *mockFetcher) ValidateToken(ctx context.Context) (domain.AuthenticatedUser, error) {
	args := m.Called(ctx)
	return args.Get(0).(domain.AuthenticatedUser), args.Error(1)
}

func (m *mockFetcher) ListUserOrgs(ctx context.Context) ([]domain.Org, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Org), args.Error(1)
}

func (m *mockFetcher) ListOrgRepos(ctx context.Context, org string) ([]domain.Repo, error) {
	args := m.Called(ctx, org)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Repo), args.Error(1)
}

func (m *mockFetcher) ListOpenIssues(ctx context.Context, org, repo string) ([]domain.Issue, error) {
	args := m.Called(ctx, org, repo)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Issue), args.Error(1)
}

func (m *mockFetcher) RateLimitStatus(ctx context.Context) (domain.RateLimit, error) {
	args := m.Called(ctx)
	return args.Get(0).(domain.RateLimit), args.Error(1)
}

// newTestAggregator wires an Aggregator to the mock with a pinned clock and
// a sequential worker pool, collecting warnings when a sink is given.
func newTestAggregator(fetcher *mockFetcher, warnings *[]string) *Aggregator {
	opts := Options{
		Now:     func() time.Time { return testNow },
		Workers: 1,
	}
	if warnings != nil {
		opts.Warn = func(msg string) { *warnings = append(*warnings, msg) }
	}
	return NewAggregator(fetcher, opts)
}

func TestAggregator_ResolveOrgs(t *testing.T) {
	testCases := []struct {
		name        string
		explicit    string
		defaults    []string
		remoteOrgs  []domain.Org
		remoteErr   error
		expected    []string
		expectError bool
		remoteUsed  bool
	}{
		{
			name:     "explicit org wins over everything",
			explicit: "acme",
			defaults: []string{"configured"},
			expected: []string{"acme"},
		},
		{
			name:     "configured defaults win over remote lookup",
			defaults: []string{"one", "two"},
			expected: []string{"one", "two"},
		},
		{
			name:       "empty defaults fall through to remote lookup",
			remoteOrgs: []domain.Org{{Login: "remote-a"}, {Login: "remote-b"}},
			expected:   []string{"remote-a", "remote-b"},
			remoteUsed: true,
		},
		{
			name:        "remote lookup failure is fatal",
			remoteErr:   errors.New("boom"),
			expectError: true,
			remoteUsed:  true,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			fetcher := new(mockFetcher)
			if tc.remoteUsed {
				fetcher.On("ListUserOrgs", mock.Anything).Return(tc.remoteOrgs, tc.remoteErr)
			}
			aggregator := newTestAggregator(fetcher, nil)

			orgs, err := aggregator.ResolveOrgs(context.Background(), tc.explicit, tc.defaults)
			if tc.expectError {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
				assert.Equal(t, tc.expected, orgs)
			}
			if !tc.remoteUsed {
				fetcher.AssertNotCalled(t, "ListUserOrgs", mock.Anything)
			}
			fetcher.AssertExpectations(t)
		})
	}
}

func TestAggregator_WarnIfRateLimited(t *testing.T) {
	reset := time.Date(2026, 3, 1, 18, 45, 0, 0, time.UTC)

	testCases := []struct {
		name     string
		limit    domain.RateLimit
		err      error
		expected []string
	}{
		{
			name:     "low remaining budget warns with the reset time",
			limit:    domain.RateLimit{Limit: 5000, Remaining: 42, Reset: reset},
			expected: []string{"Only 42 API calls remaining (resets at 18:45:00 UTC)"},
		},
		{
			name:  "plenty of budget stays quiet",
			limit: domain.RateLimit{Limit: 5000, Remaining: 100, Reset: reset},
		},
		{
			name: "status check failure is swallowed",
			err:  errors.New("boom"),
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			fetcher := new(mockFetcher)
			fetcher.On("RateLimitStatus", mock.Anything).Return(tc.limit, tc.err)
			var warnings []string
			aggregator := newTestAggregator(fetcher, &warnings)

			aggregator.WarnIfRateLimited(context.Background())

			if tc.expected == nil {
				assert.Empty(t, warnings)
			} else {
				assert.Equal(t, tc.expected, warnings)
			}
			fetcher.AssertExpectations(t)
		})
	}
}

// Repositories must fold back in organization order no matter how the
// parallel fetches interleave, and one failing organization only costs a
// warning.
func TestAggregator_RepoFanOutKeepsOrganizationOrder(t *testing.T) {
	push := pushedDaysAgo(10)
	fetcher := new(mockFetcher)
	fetcher.On("ListOrgRepos", mock.Anything, "alpha").
		Run(func(mock.Arguments) { time.Sleep(50 * time.Millisecond) }).
		Return([]domain.Repo{{Org: "alpha", Name: "slow-one", PushedAt: push}}, nil)
	fetcher.On("ListOrgRepos", mock.Anything, "beta").
		Return(nil, errors.New("kaboom"))
	fetcher.On("ListOrgRepos", mock.Anything, "gamma").
		Return([]domain.Repo{
			{Org: "gamma", Name: "fast-one", PushedAt: push},
			{Org: "gamma", Name: "fast-two", PushedAt: push},
		}, nil)

	var warnings []string
	aggregator := NewAggregator(fetcher, Options{
		Now:     func() time.Time { return testNow },
		Warn:    func(msg string) { warnings = append(warnings, msg) },
		Workers: 4,
	})

	// Identical push dates make the default sort a no-op, so the result
	// order is exactly the fold order.
	summaries := aggregator.Repos(context.Background(), []string{"alpha", "beta", "gamma"}, domain.SortActivity)

	require.Len(t, summaries, 3)
	assert.Equal(t, "slow-one", summaries[0].Name)
	assert.Equal(t, "fast-one", summaries[1].Name)
	assert.Equal(t, "fast-two", summaries[2].Name)
	assert.Equal(t, []string{"Failed to fetch repos for beta: kaboom"}, warnings)
	fetcher.AssertExpectations(t)
}
