package storage

import (
	"cla/pkg/domain"
	"context"
)

// IndividualStorage defines the lookup operations over individual CLA
// signatures used by the compliance matcher. All methods must return an empty
// result for an empty input without touching the database.
type IndividualStorage interface {
	// IndividualsByEmails returns individuals whose GitHub or Launchpad email is
	// in the given set. Revocation filtering is left to the caller.
	IndividualsByEmails(ctx context.Context, emails []string) ([]domain.Individual, error)
	// IndividualsByGithubUsernames returns individuals whose GitHub username is
	// in the given set.
	IndividualsByGithubUsernames(ctx context.Context, usernames []string) ([]domain.Individual, error)
	// IndividualsByLaunchpadUsernames returns individuals whose Launchpad
	// username is in the given set.
	IndividualsByLaunchpadUsernames(ctx context.Context, usernames []string) ([]domain.Individual, error)
}
