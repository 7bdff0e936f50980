package postgres

import (
	"cla/pkg/domain"
	"context"
	"fmt"

	"github.com/doug-martin/goqu/v9"
)

const (
	individualTable = "individual"
)

// IndividualsByEmails fetches individuals whose GitHub or Launchpad email
// matches any of the given emails. Returns nothing for an empty input.
func (p *PgSQL) IndividualsByEmails(ctx context.Context, emails []string) ([]domain.Individual, error) {
	if len(emails) == 0 {
		return nil, nil
	}

	var rows []PgIndividual
	if err := p.Builder.From(individualTable).
		Where(goqu.Or(
			goqu.I("github_email").In(emails),
			goqu.I("launchpad_email").In(emails),
		)).
		Executor().ScanStructsContext(ctx, &rows); err != nil {
		return nil, fmt.Errorf("could not get individuals by emails from pg: %w", err)
	}

	return pgIndividualsToDomain(rows), nil
}

// IndividualsByGithubUsernames fetches individuals by their GitHub username.
// Returns nothing for an empty input.
func (p *PgSQL) IndividualsByGithubUsernames(ctx context.Context, usernames []string) ([]domain.Individual, error) {
	if len(usernames) == 0 {
		return nil, nil
	}

	var rows []PgIndividual
	if err := p.Builder.From(individualTable).
		Where(goqu.I("github_username").In(usernames)).
		Executor().ScanStructsContext(ctx, &rows); err != nil {
		return nil, fmt.Errorf("could not get individuals by github usernames from pg: %w", err)
	}

	return pgIndividualsToDomain(rows), nil
}

// IndividualsByLaunchpadUsernames fetches individuals by their Launchpad
// username. Returns nothing for an empty input.
func (p *PgSQL) IndividualsByLaunchpadUsernames(ctx context.Context, usernames []string) ([]domain.Individual, error) {
	if len(usernames) == 0 {
		return nil, nil
	}

	var rows []PgIndividual
	if err := p.Builder.From(individualTable).
		Where(goqu.I("launchpad_username").In(usernames)).
		Executor().ScanStructsContext(ctx, &rows); err != nil {
		return nil, fmt.Errorf("could not get individuals by launchpad usernames from pg: %w", err)
	}

	return pgIndividualsToDomain(rows), nil
}
