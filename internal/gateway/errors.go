package gateway

import (
	"fmt"
	"time"
)

// APIError is the unified failure kind for remote calls. Every rejection
// that is not a rate limit surfaces as one of these, carrying the
// underlying message.
type APIError struct {
	Message string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("GitHub API error: %s", e.Message)
}

// RateLimitedError reports an exhausted primary rate limit.
type RateLimitedError struct {
	Reset time.Time
}

func (e *RateLimitedError) Error() string {
	return fmt.Sprintf("Rate limited. Resets at %s. Please wait and retry.", e.Reset.UTC().Format("15:04:05 UTC"))
}

// OrgNotFoundError reports a repository listing against an organization the
// API does not know about.
type OrgNotFoundError struct {
	Org string
}

func (e *OrgNotFoundError) Error() string {
	return fmt.Sprintf("Organization not found: %s", e.Org)
}
