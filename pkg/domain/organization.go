package domain

import "time"

// OrganizationID uniquely identifies an organization CLA signatory.
type OrganizationID int64

// Organization represents a company or other group that signed the CLA on
// behalf of its members. Membership is inferred purely from an author email's
// domain matching EmailDomain; no per-member record exists.
type Organization struct {
	// ID is the unique identifier of the organization record.
	ID OrganizationID `json:"id"`

	// Name is the organization's display name.
	Name string `json:"name"`
	// EmailDomain is the unique email domain covered by this signature.
	EmailDomain string `json:"emailDomain"`

	// ContactName and ContactEmail identify the signing contact person.
	ContactName  string `json:"contactName"`
	ContactEmail string `json:"contactEmail"`
	// Country is the organization's registered country.
	Country string `json:"country"`

	// SignedAt is the time the CLA was signed; zero value means not signed yet.
	SignedAt time.Time `json:"signedAt"`
	// RevokedAt marks when the signature was revoked; zero value means not revoked.
	RevokedAt time.Time `json:"-"`
}

// Active reports whether the organization's CLA signature currently covers its
// email domain: it must be signed and not revoked.
func (o Organization) Active() bool {
	return !o.SignedAt.IsZero() && o.RevokedAt.IsZero()
}
