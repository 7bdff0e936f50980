package postgres

import (
	"cla/pkg/domain"
	"database/sql"
	"time"
)

type PgIndividual struct {
	ID int64 `db:"id" goqu:"skipinsert"`

	FirstName   string `db:"first_name"`
	LastName    string `db:"last_name"`
	PhoneNumber string `db:"phone_number"`
	Address     string `db:"address"`
	Country     string `db:"country"`

	GithubUsername  sql.NullString `db:"github_username"`
	GithubAccountID sql.NullInt64  `db:"github_account_id"`
	GithubEmail     sql.NullString `db:"github_email"`

	LaunchpadUsername  sql.NullString `db:"launchpad_username"`
	LaunchpadAccountID sql.NullString `db:"launchpad_account_id"`
	LaunchpadEmail     sql.NullString `db:"launchpad_email"`

	SignedAt  time.Time    `db:"signed_at"`
	RevokedAt sql.NullTime `db:"revoked_at"`
}

func (p *PgIndividual) ToDomain() domain.Individual {
	return domain.Individual{
		ID:                domain.IndividualID(p.ID),
		FirstName:         p.FirstName,
		LastName:          p.LastName,
		GithubUsername:    p.GithubUsername.String,
		GithubEmail:       p.GithubEmail.String,
		LaunchpadUsername: p.LaunchpadUsername.String,
		LaunchpadEmail:    p.LaunchpadEmail.String,
		SignedAt:          p.SignedAt,
		RevokedAt:         p.RevokedAt.Time,
	}
}

type PgOrganization struct {
	ID int64 `db:"id" goqu:"skipinsert"`

	Name        string `db:"name"`
	EmailDomain string `db:"email_domain"`

	ContactName  string         `db:"contact_name"`
	ContactEmail string         `db:"contact_email"`
	PhoneNumber  sql.NullString `db:"phone_number"`
	Address      sql.NullString `db:"address"`
	Country      string         `db:"country"`

	SignedAt  sql.NullTime `db:"signed_at"`
	RevokedAt sql.NullTime `db:"revoked_at"`
}

func (p *PgOrganization) ToDomain() domain.Organization {
	return domain.Organization{
		ID:           domain.OrganizationID(p.ID),
		Name:         p.Name,
		EmailDomain:  p.EmailDomain,
		ContactName:  p.ContactName,
		ContactEmail: p.ContactEmail,
		Country:      p.Country,
		SignedAt:     p.SignedAt.Time,
		RevokedAt:    p.RevokedAt.Time,
	}
}

func pgIndividualsToDomain(individuals []PgIndividual) []domain.Individual {
	out := make([]domain.Individual, 0, len(individuals))
	for i := range individuals {
		out = append(out, individuals[i].ToDomain())
	}

	return out
}

func pgOrganizationsToDomain(organizations []PgOrganization) []domain.Organization {
	out := make([]domain.Organization, 0, len(organizations))
	for i := range organizations {
		out = append(out, organizations[i].ToDomain())
	}

	return out
}
