// Package usecase contains the business logic of the application: resolving
// which organizations to inspect and aggregating their repositories and
// issues into the summaries the commands emit.
package usecase

import (
	"context"
	"fmt"
	"io"
	"log"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/DavidLiedle/gitorg/internal/domain"
	"github.com/DavidLiedle/gitorg/internal/gateway"
)

// DefaultWorkers is how many organizations are fetched in parallel unless
// the caller asks otherwise.
const DefaultWorkers = 4

// lowCallBudget is the remaining-call count below which WarnIfRateLimited
// starts warning.
const lowCallBudget = 100

// Options tunes an Aggregator. Zero values fall back to quiet defaults, so
// callers and tests only set the pieces they care about.
type Options struct {
	Logger  *log.Logger      // verbose diagnostics; discarded when nil
	Warn    func(msg string) // non-fatal warnings; discarded when nil
	Now     func() time.Time // clock override
	Workers int              // parallel organization fetches; 1 means sequential
}

// Aggregator is the use case for aggregating organization data. It
// orchestrates fetching through the gateway and derives the summary
// structures the commands emit.
type Aggregator struct {
	fetcher gateway.Fetcher
	logger  *log.Logger
	warn    func(msg string)
	now     func() time.Time
	workers int
}

// NewAggregator creates a new Aggregator instance.
func NewAggregator(fetcher gateway.Fetcher, opts Options) *Aggregator {
	logger := opts.Logger
	if logger == nil {
		logger = log.New(io.Discard, "", 0)
	}
	warn := opts.Warn
	if warn == nil {
		warn = func(string) {}
	}
	now := opts.Now
	if now == nil {
		now = time.Now
	}
	workers := opts.Workers
	if workers < 1 {
		workers = DefaultWorkers
	}
	return &Aggregator{
		fetcher: fetcher,
		logger:  logger,
		warn:    warn,
		now:     now,
		workers: workers,
	}
}

// ResolveOrgs picks the organizations a command operates on: an explicit
// --org value wins, then non-empty configured defaults, then every
// organization visible to the authenticated user.
func (a *Aggregator) ResolveOrgs(ctx context.Context, explicit string, defaults []string) ([]string, error) {
	if explicit != "" {
		return []string{explicit}, nil
	}
	if len(defaults) > 0 {
		return append([]string(nil), defaults...), nil
	}
	orgs, err := a.fetcher.ListUserOrgs(ctx)
	if err != nil {
		return nil, err
	}
	logins := make([]string, 0, len(orgs))
	for _, org := range orgs {
		logins = append(logins, org.Login)
	}
	return logins, nil
}

// WarnIfRateLimited emits an advisory warning when the remaining call
// budget is low. Rate problems never fail a command from here, and a failed
// status check is silently ignored.
func (a *Aggregator) WarnIfRateLimited(ctx context.Context) {
	limit, err := a.fetcher.RateLimitStatus(ctx)
	if err != nil {
		return
	}
	if limit.Remaining < lowCallBudget {
		a.warn(fmt.Sprintf("Only %d API calls remaining (resets at %s)", limit.Remaining, limit.ResetClock()))
	}
}

// reposByOrg lists repositories for each organization, fanning out across a
// bounded worker group. Results fold back in organization order, so output
// rows and warnings land exactly where a sequential loop would put them. A
// failed organization costs a warning, never the whole run.
func (a *Aggregator) reposByOrg(ctx context.Context, orgs []string) []domain.Repo {
	a.logger.Printf("Aggregating repositories for %d organization(s)...\n", len(orgs))
	results := make([][]domain.Repo, len(orgs))
	failures := make([]error, len(orgs))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(a.workers)
	for i, org := range orgs {
		g.Go(func() error {
			results[i], failures[i] = a.fetcher.ListOrgRepos(gctx, org)
			return nil
		})
	}
	// Workers only record failures, they never return them, so Wait cannot
	// fail and every organization gets its attempt.
	_ = g.Wait()

	var repos []domain.Repo
	for i, org := range orgs {
		if failures[i] != nil {
			a.warn(fmt.Sprintf("Failed to fetch repos for %s: %v", org, failures[i]))
			continue
		}
		repos = append(repos, results[i]...)
	}
	return repos
}
