// Package domain contains the core data structures and derivation logic for
// the application.
package domain

import "time"

// Org is an organization as returned by the GitHub API.
type Org struct {
	Login       string
	Description string
}

// AuthenticatedUser identifies the owner of a validated token.
type AuthenticatedUser struct {
	Login string
	Name  string
}

// Repo is a repository record fetched from the GitHub API. A nil PushedAt
// means the repository has never received a push.
type Repo struct {
	Org        string
	Name       string
	Language   string
	Stars      int
	Forks      int
	OpenIssues int
	Archived   bool
	PushedAt   *time.Time
}

// Issue is an open issue fetched from the GitHub API. PullRequest is true
// when the underlying payload is actually a pull request; such records must
// be filtered out before they reach any summary.
type Issue struct {
	Number      int
	Title       string
	Author      string
	Labels      []string
	UpdatedAt   time.Time
	PullRequest bool
}

// RateLimit reports the state of the core API rate-limit bucket.
type RateLimit struct {
	Limit     int
	Remaining int
	Reset     time.Time
}

// ResetClock renders the reset instant as a wall-clock time for diagnostics.
func (r RateLimit) ResetClock() string {
	return r.Reset.UTC().Format("15:04:05 UTC")
}
