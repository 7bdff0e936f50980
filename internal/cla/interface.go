package cla

import (
	"cla/pkg/domain"
	"context"
)

// Service resolves CLA compliance for sets of contributor identifiers. It
// backs both the public check endpoint and the webhook pipeline.
type Service interface {
	// CheckCLA reports, for every supplied email and username, whether it is
	// covered by an individual or organization CLA signature. Result maps are
	// keyed by the original, unnormalized identifiers.
	CheckCLA(ctx context.Context, emails, githubUsernames, launchpadUsernames []string) (domain.CLACheck, error)
}
