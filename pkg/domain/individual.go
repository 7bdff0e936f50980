package domain

import "time"

// IndividualID uniquely identifies an individual CLA signatory.
type IndividualID int64

// Individual represents a single contributor who signed the CLA. A contributor
// may have signed with a GitHub identity, a Launchpad identity, or both; the
// unused identity fields are empty.
type Individual struct {
	// ID is the unique identifier of the individual record.
	ID IndividualID `json:"id"`

	// FirstName and LastName are the signatory's legal name.
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`

	// GithubUsername is the GitHub login the CLA was signed with, if any.
	GithubUsername string `json:"githubUsername,omitempty"`
	// GithubEmail is the verified GitHub email the CLA was signed with, if any.
	GithubEmail string `json:"githubEmail,omitempty"`

	// LaunchpadUsername is the Launchpad login the CLA was signed with, if any.
	LaunchpadUsername string `json:"launchpadUsername,omitempty"`
	// LaunchpadEmail is the verified Launchpad email the CLA was signed with, if any.
	LaunchpadEmail string `json:"launchpadEmail,omitempty"`

	// SignedAt is the time the CLA was signed.
	SignedAt time.Time `json:"signedAt"`
	// RevokedAt marks when the signature was revoked; zero value means active.
	RevokedAt time.Time `json:"-"`
}

// Revoked reports whether the individual's CLA signature has been revoked.
func (i Individual) Revoked() bool {
	return !i.RevokedAt.IsZero()
}
