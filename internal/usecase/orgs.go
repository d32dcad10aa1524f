package usecase

import (
	"context"

	"github.com/DavidLiedle/gitorg/internal/domain"
)

// Orgs lists every organization visible to the authenticated user. Unlike
// the repository aggregations, a listing failure here is fatal: there is
// nothing to fall back on.
func (a *Aggregator) Orgs(ctx context.Context) ([]domain.OrgSummary, error) {
	orgs, err := a.fetcher.ListUserOrgs(ctx)
	if err != nil {
		return nil, err
	}
	summaries := make([]domain.OrgSummary, 0, len(orgs))
	for _, org := range orgs {
		summaries = append(summaries, domain.OrgSummary{
			Name:        org.Login,
			Description: org.Description,
			URL:         "https://github.com/" + org.Login,
		})
	}
	return summaries, nil
}
