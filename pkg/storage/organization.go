package storage

import (
	"cla/pkg/domain"
	"context"
)

// OrganizationStorage defines the lookup operations over organization CLA
// signatures used by the compliance matcher.
type OrganizationStorage interface {
	// OrganizationsByEmailDomains returns organizations whose email domain is in
	// the given set. An empty input returns an empty result without querying.
	OrganizationsByEmailDomains(ctx context.Context, emailDomains []string) ([]domain.Organization, error)
}
