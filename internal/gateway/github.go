// Package gateway provides a gateway to the GitHub REST API, abstracting
// away the underlying go-github client.
package gateway

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net/http"
	"time"

	"github.com/google/go-github/v84/github"
	"golang.org/x/oauth2"

	"github.com/gofri/go-github-ratelimit/github_ratelimit"

	"github.com/DavidLiedle/gitorg/internal/domain"
)

// perPage is the page size requested from every listing endpoint.
const perPage = 100

// maxPages caps how many pages a single listing may fetch. Termination
// otherwise depends entirely on the server signaling "no more pages", and a
// misbehaving endpoint could loop forever.
const maxPages = 100

// Fetcher defines the behavior of a gateway for reading organization data
// from GitHub.
type Fetcher interface {
	ValidateToken(ctx context.Context) (domain.AuthenticatedUser, error)
	ListUserOrgs(ctx context.Context) ([]domain.Org, error)
	ListOrgRepos(ctx context.Context, org string) ([]domain.Repo, error)
	ListOpenIssues(ctx context.Context, org, repo string) ([]domain.Issue, error)
	RateLimitStatus(ctx context.Context) (domain.RateLimit, error)
}

// Gateway is the concrete implementation of the Fetcher interface.
type Gateway struct {
	client *github.Client
	logger *log.Logger
}

// NewGateway builds a Gateway whose HTTP stack injects the token and sleeps
// through GitHub's secondary rate limits (up to an hour) instead of failing.
func NewGateway(token string, logger *log.Logger) (*Gateway, error) {
	rateLimitWaiter, err := github_ratelimit.NewRateLimitWaiter(nil, github_ratelimit.WithSingleSleepLimit(1*time.Hour, nil))
	if err != nil {
		return nil, fmt.Errorf("failed to create rate limit waiter: %w", err)
	}
	ts := oauth2.StaticTokenSource(&oauth2.Token{AccessToken: token})
	httpClient := &http.Client{
		Transport: &oauth2.Transport{
			Base:   rateLimitWaiter,
			Source: ts,
		},
	}
	return &Gateway{
		client: github.NewClient(httpClient),
		logger: logger,
	}, nil
}

// ValidateToken confirms the token is accepted and returns the identity it
// belongs to.
func (g *Gateway) ValidateToken(ctx context.Context) (domain.AuthenticatedUser, error) {
	user, _, err := g.client.Users.Get(ctx, "")
	if err != nil {
		return domain.AuthenticatedUser{}, &APIError{Message: fmt.Sprintf("Token validation failed: %v", err)}
	}
	return domain.AuthenticatedUser{
		Login: user.GetLogin(),
		Name:  user.GetName(),
	}, nil
}

// ListUserOrgs returns every organization visible to the authenticated
// user.
func (g *Gateway) ListUserOrgs(ctx context.Context) ([]domain.Org, error) {
	g.logger.Println("Fetching organizations...")
	opts := &github.ListOptions{Page: 1, PerPage: perPage}
	var orgs []domain.Org
	for fetched := 0; ; fetched++ {
		if fetched == maxPages {
			return nil, &APIError{Message: fmt.Sprintf("organization listing exceeded %d pages", maxPages)}
		}
		result, resp, err := g.client.Organizations.List(ctx, "", opts)
		if err != nil {
			return nil, mapError(err)
		}
		if len(result) == 0 {
			break
		}
		for _, org := range result {
			orgs = append(orgs, domain.Org{
				Login:       org.GetLogin(),
				Description: org.GetDescription(),
			})
		}
		if resp.NextPage == 0 {
			break
		}
		opts.Page = resp.NextPage
		g.logger.Println("  Fetching next page of organizations...")
	}
	return orgs, nil
}

// ListOrgRepos returns every repository of an organization, including forks
// and archived ones. A 404 from the listing becomes an OrgNotFoundError.
func (g *Gateway) ListOrgRepos(ctx context.Context, org string) ([]domain.Repo, error) {
	g.logger.Printf("Fetching repositories for %s...\n", org)
	opts := &github.RepositoryListByOrgOptions{
		Type:        "all",
		ListOptions: github.ListOptions{Page: 1, PerPage: perPage},
	}
	var repos []domain.Repo
	for fetched := 0; ; fetched++ {
		if fetched == maxPages {
			return nil, &APIError{Message: fmt.Sprintf("repository listing for %s exceeded %d pages", org, maxPages)}
		}
		result, resp, err := g.client.Repositories.ListByOrg(ctx, org, opts)
		if err != nil {
			var errResp *github.ErrorResponse
			if errors.As(err, &errResp) && errResp.Response != nil && errResp.Response.StatusCode == http.StatusNotFound {
				return nil, &OrgNotFoundError{Org: org}
			}
			return nil, mapError(err)
		}
		if len(result) == 0 {
			break
		}
		for _, repo := range result {
			repos = append(repos, convertRepo(org, repo))
		}
		if resp.NextPage == 0 {
			break
		}
		opts.Page = resp.NextPage
		g.logger.Printf("  Fetching next page of repositories for %s...\n", org)
	}
	return repos, nil
}

// ListOpenIssues returns the open issues of a repository. Pull requests come
// back too, flagged, because the issues endpoint does not distinguish them
// server-side.
func (g *Gateway) ListOpenIssues(ctx context.Context, org, repo string) ([]domain.Issue, error) {
	g.logger.Printf("Fetching issues for %s/%s...\n", org, repo)
	opts := &github.IssueListByRepoOptions{
		State:       "open",
		ListOptions: github.ListOptions{Page: 1, PerPage: perPage},
	}
	var issues []domain.Issue
	for fetched := 0; ; fetched++ {
		if fetched == maxPages {
			return nil, &APIError{Message: fmt.Sprintf("issue listing for %s/%s exceeded %d pages", org, repo, maxPages)}
		}
		result, resp, err := g.client.Issues.ListByRepo(ctx, org, repo, opts)
		if err != nil {
			return nil, mapError(err)
		}
		if len(result) == 0 {
			break
		}
		for _, issue := range result {
			issues = append(issues, convertIssue(issue))
		}
		if resp.NextPage == 0 {
			break
		}
		// IssueListByRepoOptions embeds ListCursorOptions too, so a plain
		// opts.Page selector is ambiguous between the two Page fields.
		opts.ListOptions.Page = resp.NextPage
		g.logger.Printf("  Fetching next page of issues for %s/%s...\n", org, repo)
	}
	return issues, nil
}

// RateLimitStatus reports the core rate-limit bucket.
func (g *Gateway) RateLimitStatus(ctx context.Context) (domain.RateLimit, error) {
	limits, _, err := g.client.RateLimit.Get(ctx)
	if err != nil {
		return domain.RateLimit{}, mapError(err)
	}
	core := limits.GetCore()
	if core == nil {
		return domain.RateLimit{}, &APIError{Message: "rate limit response has no core bucket"}
	}
	return domain.RateLimit{
		Limit:     core.Limit,
		Remaining: core.Remaining,
		Reset:     core.Reset.Time,
	}, nil
}

func convertRepo(org string, repo *github.Repository) domain.Repo {
	converted := domain.Repo{
		Org:        org,
		Name:       repo.GetName(),
		Language:   repo.GetLanguage(),
		Stars:      repo.GetStargazersCount(),
		Forks:      repo.GetForksCount(),
		OpenIssues: repo.GetOpenIssuesCount(),
		Archived:   repo.GetArchived(),
	}
	if ts := repo.PushedAt; ts != nil {
		pushed := ts.Time
		converted.PushedAt = &pushed
	}
	return converted
}

func convertIssue(issue *github.Issue) domain.Issue {
	labels := make([]string, 0, len(issue.Labels))
	for _, label := range issue.Labels {
		labels = append(labels, label.GetName())
	}
	return domain.Issue{
		Number:      issue.GetNumber(),
		Title:       issue.GetTitle(),
		Author:      issue.GetUser().GetLogin(),
		Labels:      labels,
		UpdatedAt:   issue.GetUpdatedAt().Time,
		PullRequest: issue.IsPullRequest(),
	}
}

// mapError collapses transport and API failures into the gateway's error
// kinds.
func mapError(err error) error {
	var rateErr *github.RateLimitError
	if errors.As(err, &rateErr) {
		return &RateLimitedError{Reset: rateErr.Rate.Reset.Time}
	}
	return &APIError{Message: err.Error()}
}
