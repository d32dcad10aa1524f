package domain

import (
	"sort"
	"strings"
	"time"
)

// NeverPushedDays is the day count assigned to repositories without any push
// timestamp, so they rank as stale under any sensible threshold.
const NeverPushedDays = 99999

// staleAfterDays is the number of days without a push after which a
// non-archived repository's status flips from "active" to "stale".
const staleAfterDays = 365

// Sort keys accepted by the repos command. Unknown keys fall back to
// SortActivity.
const (
	SortActivity  = "activity"
	SortStars     = "stars"
	SortStaleness = "staleness"
	SortName      = "name"
)

// OrgSummary is a single row of the orgs command.
type OrgSummary struct {
	Name        string `json:"name"`
	Description string `json:"description"`
	URL         string `json:"url"`
}

// RepoSummary is the flattened per-repository view used by the repos command.
type RepoSummary struct {
	Org        string `json:"org"`
	Name       string `json:"name"`
	Language   string `json:"language"`
	Stars      int    `json:"stars"`
	Forks      int    `json:"forks"`
	OpenIssues int    `json:"open_issues"`
	LastPush   string `json:"last_push"`
	Status     string `json:"status"`
}

// StaleRepo is a single row of the stale command.
type StaleRepo struct {
	Org       string `json:"org"`
	Name      string `json:"name"`
	LastPush  string `json:"last_push"`
	DaysStale int    `json:"days_stale"`
	Stars     int    `json:"stars"`
	Language  string `json:"language"`
}

// IssueSummary is a single row of the issues command. Labels is the
// pre-joined display form, not the raw list.
type IssueSummary struct {
	Org     string `json:"org"`
	Repo    string `json:"repo"`
	Number  int    `json:"number"`
	Title   string `json:"title"`
	Author  string `json:"author"`
	Labels  string `json:"labels"`
	Updated string `json:"updated"`
}

// DaysSincePush returns the whole days elapsed between the last push and
// now. Repositories that were never pushed get NeverPushedDays.
func DaysSincePush(now time.Time, pushedAt *time.Time) int {
	if pushedAt == nil {
		return NeverPushedDays
	}
	return int(now.Sub(*pushedAt).Hours() / 24)
}

// DateString formats a timestamp as the fixed-width UTC date used across all
// summaries.
func DateString(t time.Time) string {
	return t.UTC().Format("2006-01-02")
}

// LastPushString formats a push timestamp as a UTC date, or "never" when the
// repository has no pushes. The fixed-width date is what makes the
// lexicographic activity and staleness orderings agree with time order.
func LastPushString(pushedAt *time.Time) string {
	if pushedAt == nil {
		return "never"
	}
	return DateString(*pushedAt)
}

// RepoStatus derives the display status of a repository: "archived" wins,
// then "stale" after more than a year without pushes, otherwise "active".
func RepoStatus(now time.Time, r Repo) string {
	if r.Archived {
		return "archived"
	}
	if DaysSincePush(now, r.PushedAt) > staleAfterDays {
		return "stale"
	}
	return "active"
}

// DisplayLanguage substitutes "-" for repositories without a detected
// primary language.
func DisplayLanguage(language string) string {
	if language == "" {
		return "-"
	}
	return language
}

// NewRepoSummary flattens a repository record into its summary row.
func NewRepoSummary(now time.Time, r Repo) RepoSummary {
	return RepoSummary{
		Org:        r.Org,
		Name:       r.Name,
		Language:   DisplayLanguage(r.Language),
		Stars:      r.Stars,
		Forks:      r.Forks,
		OpenIssues: r.OpenIssues,
		LastPush:   LastPushString(r.PushedAt),
		Status:     RepoStatus(now, r),
	}
}

// JoinLabels renders an issue's label names as a single display cell.
func JoinLabels(labels []string) string {
	if len(labels) == 0 {
		return "-"
	}
	return strings.Join(labels, ", ")
}

// SortRepos orders summaries in place by the requested key. Every ordering
// is stable, so rows that compare equal keep their fetch order. The activity
// and staleness keys compare the formatted last-push strings, which means
// "never" sorts after any date.
func SortRepos(repos []RepoSummary, key string) {
	switch key {
	case SortStars:
		sort.SliceStable(repos, func(i, j int) bool {
			return repos[i].Stars > repos[j].Stars
		})
	case SortName:
		sort.SliceStable(repos, func(i, j int) bool {
			return strings.ToLower(repos[i].Name) < strings.ToLower(repos[j].Name)
		})
	case SortStaleness:
		sort.SliceStable(repos, func(i, j int) bool {
			return repos[i].LastPush < repos[j].LastPush
		})
	default:
		sort.SliceStable(repos, func(i, j int) bool {
			return repos[i].LastPush > repos[j].LastPush
		})
	}
}
