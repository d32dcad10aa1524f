package cmd

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/DavidLiedle/gitorg/internal/domain"
)

func TestFormatStaleTable(t *testing.T) {
	stale := []domain.StaleRepo{
		{Org: "acme", Name: "legacy", LastPush: "2022-01-15", DaysStale: 1502, Stars: 40, Language: "Ruby"},
		{Org: "acme", Name: "dormant", LastPush: "2025-10-01", DaysStale: 151, Stars: 2, Language: "-"},
	}

	out := formatStaleTable(stale, 120)

	assert.Contains(t, out, "Stale Repositories (>120 days)")
	for _, want := range []string{"Org", "Name", "Last Push", "Days Stale", "Stars", "Language"} {
		assert.Contains(t, out, want)
	}
	assert.Contains(t, out, "1502")
	assert.Contains(t, out, "dormant")
	assert.Contains(t, out, "\n2 stale repository(ies) found.\n")
}
