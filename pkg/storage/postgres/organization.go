package postgres

import (
	"cla/pkg/domain"
	"cla/pkg/storage"
	"context"
	"fmt"

	"github.com/doug-martin/goqu/v9"
)

const (
	organizationTable = "organization"
)

// OrganizationsByEmailDomains fetches organizations whose email domain matches
// any of the given domains. Returns nothing for an empty input.
func (p *PgSQL) OrganizationsByEmailDomains(ctx context.Context, emailDomains []string) ([]domain.Organization, error) {
	if len(emailDomains) == 0 {
		return nil, nil
	}

	var rows []PgOrganization
	if err := p.Builder.From(organizationTable).
		Where(goqu.I("email_domain").In(emailDomains)).
		Executor().ScanStructsContext(ctx, &rows); err != nil {
		return nil, fmt.Errorf("could not get organizations by email domains from pg: %w", err)
	}

	return pgOrganizationsToDomain(rows), nil
}

// Ensure PgSQL conforms to the storage.Storage interface at compile time.
var _ storage.Storage = (*PgSQL)(nil)
