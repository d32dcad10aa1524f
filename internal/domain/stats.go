package domain

// LanguageCount is one bucket of a language histogram, ordered most common
// first.
type LanguageCount struct {
	Language string `json:"language"`
	Count    int    `json:"count"`
}

// RepoRef names a single repository together with the count that earned it
// the ranking.
type RepoRef struct {
	Org   string `json:"org"`
	Name  string `json:"name"`
	Count int    `json:"count"`
}

// OrgStats holds the aggregate statistics computed by the stats command. A
// nil MostStarred or MostForked means no repository had a nonzero count.
type OrgStats struct {
	TotalRepos          int             `json:"total_repos"`
	TotalStars          int             `json:"total_stars"`
	TotalForks          int             `json:"total_forks"`
	TotalOpenIssues     int             `json:"total_open_issues"`
	AvgStars            float64         `json:"avg_stars"`
	MedianDaysSincePush float64         `json:"median_days_since_push"`
	Languages           []LanguageCount `json:"languages"`
	MostStarred         *RepoRef        `json:"most_starred"`
	MostForked          *RepoRef        `json:"most_forked"`
}

// RepoEntry is a compact repository line used by the overview lists.
type RepoEntry struct {
	Org           string `json:"org"`
	Name          string `json:"name"`
	Stars         int    `json:"stars"`
	LastPush      string `json:"last_push"`
	DaysSincePush int    `json:"days_since_push"`
}

// IssueEntry is a compact issue line used by the overview recent-issues
// list.
type IssueEntry struct {
	Org     string `json:"org"`
	Repo    string `json:"repo"`
	Number  int    `json:"number"`
	Title   string `json:"title"`
	Updated string `json:"updated"`
}

// OverviewData is the dashboard summary produced by the overview command.
type OverviewData struct {
	TotalRepos      int             `json:"total_repos"`
	TotalStars      int             `json:"total_stars"`
	TotalForks      int             `json:"total_forks"`
	TotalOpenIssues int             `json:"total_open_issues"`
	TopLanguages    []LanguageCount `json:"top_languages"`
	RecentlyActive  []RepoEntry     `json:"recently_active"`
	StaleRepos      []RepoEntry     `json:"stale_repos"`
	RecentIssues    []IssueEntry    `json:"recent_issues"`
}
