// Package cla implements the compliance-matching algorithm: given sets of
// emails and usernames, it decides which of them are covered by an individual
// or organization CLA signature.
package cla

import (
	"cla/pkg/domain"
	"cla/pkg/storage"
	"context"
	"fmt"
)

// service is the concrete implementation of the Service interface. It is a
// pure read-side consumer of the signature storage.
type service struct {
	storage storage.Storage
}

// CheckCLA resolves compliance for the given identifier sets. Empty input
// slices short-circuit to empty maps without querying storage.
func (s service) CheckCLA(ctx context.Context,
	emails, githubUsernames, launchpadUsernames []string) (domain.CLACheck, error) {
	out := domain.CLACheck{
		Emails:             map[string]bool{},
		GithubUsernames:    map[string]bool{},
		LaunchpadUsernames: map[string]bool{},
	}

	var err error
	if len(emails) > 0 {
		if out.Emails, err = s.checkEmails(ctx, emails); err != nil {
			return domain.CLACheck{}, err
		}
	}
	if len(githubUsernames) > 0 {
		if out.GithubUsernames, err = s.checkGithubUsernames(ctx, githubUsernames); err != nil {
			return domain.CLACheck{}, err
		}
	}
	if len(launchpadUsernames) > 0 {
		if out.LaunchpadUsernames, err = s.checkLaunchpadUsernames(ctx, launchpadUsernames); err != nil {
			return domain.CLACheck{}, err
		}
	}

	return out, nil
}

// checkEmails resolves compliance per email. Individual signatures are
// consulted first; emails they cover are excluded from the organization
// domain check, so an individual signature always takes priority.
func (s service) checkEmails(ctx context.Context, emails []string) (map[string]bool, error) {
	// map the caller's raw emails to normalized ones so results can be reported
	// under the caller's original keys
	normalized := make(map[string]string, len(emails))
	emailSet := make(map[string]struct{}, len(emails))
	for _, raw := range emails {
		clean := CleanEmail(raw)
		normalized[raw] = clean
		emailSet[clean] = struct{}{}
	}

	signedIndividuals, err := s.individualsSignedCLA(ctx, setKeys(emailSet))
	if err != nil {
		return nil, err
	}

	remaining := make(map[string]struct{}, len(emailSet))
	for email := range emailSet {
		if _, ok := signedIndividuals[email]; !ok {
			remaining[email] = struct{}{}
		}
	}

	signedOrganizations, err := s.organizationsSignedCLA(ctx, setKeys(remaining))
	if err != nil {
		return nil, err
	}

	out := make(map[string]bool, len(normalized))
	for raw, clean := range normalized {
		_, byIndividual := signedIndividuals[clean]
		_, byOrganization := signedOrganizations[clean]
		out[raw] = byIndividual || byOrganization
	}

	return out, nil
}

// individualsSignedCLA returns the set of emails covered by a non-revoked
// individual signature.
func (s service) individualsSignedCLA(ctx context.Context, emails []string) (map[string]struct{}, error) {
	individuals, err := s.storage.IndividualsByEmails(ctx, emails)
	if err != nil {
		return nil, fmt.Errorf("could not get individuals: %w", err)
	}

	signed := make(map[string]struct{})
	for _, individual := range individuals {
		if individual.Revoked() {
			continue
		}
		if individual.GithubEmail != "" {
			signed[individual.GithubEmail] = struct{}{}
		}
		if individual.LaunchpadEmail != "" {
			signed[individual.LaunchpadEmail] = struct{}{}
		}
	}

	return signed, nil
}

// organizationsSignedCLA returns the subset of emails whose domain belongs to
// an active organization signature.
func (s service) organizationsSignedCLA(ctx context.Context, emails []string) (map[string]struct{}, error) {
	if len(emails) == 0 {
		return map[string]struct{}{}, nil
	}

	byDomain := make(map[string][]string)
	for _, email := range emails {
		emailDomain := EmailDomain(email)
		byDomain[emailDomain] = append(byDomain[emailDomain], email)
	}

	organizations, err := s.storage.OrganizationsByEmailDomains(ctx, setKeys(byDomain))
	if err != nil {
		return nil, fmt.Errorf("could not get organizations: %w", err)
	}

	signed := make(map[string]struct{})
	for _, organization := range organizations {
		if !organization.Active() {
			continue
		}
		for _, email := range byDomain[organization.EmailDomain] {
			signed[email] = struct{}{}
		}
	}

	return signed, nil
}

func (s service) checkGithubUsernames(ctx context.Context, usernames []string) (map[string]bool, error) {
	individuals, err := s.storage.IndividualsByGithubUsernames(ctx, usernames)
	if err != nil {
		return nil, fmt.Errorf("could not get individuals by github usernames: %w", err)
	}

	signed := make(map[string]struct{}, len(individuals))
	for _, individual := range individuals {
		if individual.GithubUsername != "" {
			signed[individual.GithubUsername] = struct{}{}
		}
	}

	out := make(map[string]bool, len(usernames))
	for _, username := range usernames {
		_, ok := signed[username]
		out[username] = ok
	}

	return out, nil
}

func (s service) checkLaunchpadUsernames(ctx context.Context, usernames []string) (map[string]bool, error) {
	individuals, err := s.storage.IndividualsByLaunchpadUsernames(ctx, usernames)
	if err != nil {
		return nil, fmt.Errorf("could not get individuals by launchpad usernames: %w", err)
	}

	signed := make(map[string]struct{}, len(individuals))
	for _, individual := range individuals {
		if individual.LaunchpadUsername != "" {
			signed[individual.LaunchpadUsername] = struct{}{}
		}
	}

	out := make(map[string]bool, len(usernames))
	for _, username := range usernames {
		_, ok := signed[username]
		out[username] = ok
	}

	return out, nil
}

func setKeys[V any](m map[string]V) []string {
	out := make([]string, 0, len(m))
	for k := range m {
		out = append(out, k)
	}

	return out
}

// New creates a new Service backed by the provided signature storage.
func New(storage storage.Storage) Service {
	return &service{storage: storage}
}
