package postgres_test

import (
	"context"
	"database/sql"
	"fmt"
	"path/filepath"
	"testing"
	"time"

	"github.com/pressly/goose/v3"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/wait"

	"cla/pkg/storage/postgres"
)

const (
	testUser     = "postgres"
	testPassword = "postgres"
	testDB       = "testdb"
)

type postgresContainer struct {
	Container testcontainers.Container
	Host      string
	Port      int
}

func startPostgresContainer(ctx context.Context) (*postgresContainer, error) {
	req := testcontainers.ContainerRequest{
		Image:        "postgres:17",
		ExposedPorts: []string{"5432"},
		Env: map[string]string{
			"POSTGRES_USER":     testUser,
			"POSTGRES_PASSWORD": testPassword,
			"POSTGRES_DB":       testDB,
		},
		WaitingFor: wait.ForListeningPort("5432"),
	}
	container, err := testcontainers.GenericContainer(ctx, testcontainers.GenericContainerRequest{
		ContainerRequest: req,
		Started:          true,
	})
	if err != nil {
		return nil, fmt.Errorf("could not start container: %w", err)
	}

	host, err := container.Host(ctx)
	if err != nil {
		return nil, fmt.Errorf("could not get container host: %w", err)
	}

	mappedPort, err := container.MappedPort(ctx, "5432")
	if err != nil {
		return nil, fmt.Errorf("could not get mapped port: %w", err)
	}

	return &postgresContainer{
		Container: container,
		Host:      host,
		Port:      mappedPort.Int(),
	}, nil
}

func runMigrations(db *sql.DB, migrationsDir string) error {
	if err := goose.SetDialect("postgres"); err != nil {
		return fmt.Errorf("could not set dialect: %w", err)
	}

	if err := goose.Up(db, migrationsDir); err != nil {
		return fmt.Errorf("could not run migrations: %w", err)
	}

	return nil
}

func setupTestDB(t *testing.T) (*postgres.PgSQL, func()) {
	t.Helper()
	ctx := context.Background()

	// start container
	pgContainer, err := startPostgresContainer(ctx)
	require.NoError(t, err)

	// create postgres instance
	pgSQL, err := postgres.New(ctx, postgres.Options{
		Username:           testUser,
		Password:           testPassword,
		Host:               pgContainer.Host,
		Port:               pgContainer.Port,
		Database:           testDB,
		SslMode:            "disable",
		ConnMaxLifetime:    time.Minute,
		ConnMaxIdleTime:    time.Minute,
		MaxOpenConnections: 5,
		MaxIdleConnections: 5,
	})
	require.NoError(t, err)

	// run migrations
	migrationsDir := filepath.Join("..", "..", "..", "migrations")
	err = runMigrations(pgSQL.DB.(*sql.DB), migrationsDir)
	require.NoError(t, err)

	return pgSQL, func() {
		_ = pgSQL.Close()
		_ = pgContainer.Container.Terminate(ctx)
	}
}

func seedIndividual(t *testing.T, pgSQL *postgres.PgSQL,
	firstName, githubUsername, githubEmail, launchpadUsername, launchpadEmail string, revoked bool) {
	t.Helper()

	var revokedAt sql.NullTime
	if revoked {
		revokedAt = sql.NullTime{Time: time.Now(), Valid: true}
	}

	_, err := pgSQL.DB.ExecContext(context.Background(),
		`INSERT INTO individual
			(first_name, last_name, github_username, github_email, launchpad_username, launchpad_email, revoked_at)
		 VALUES ($1, $2, NULLIF($3, ''), NULLIF($4, ''), NULLIF($5, ''), NULLIF($6, ''), $7)`,
		firstName, "Tester", githubUsername, githubEmail, launchpadUsername, launchpadEmail, revokedAt)
	require.NoError(t, err)
}

func seedOrganization(t *testing.T, pgSQL *postgres.PgSQL, name, emailDomain string, signed, revoked bool) {
	t.Helper()

	var signedAt, revokedAt sql.NullTime
	if signed {
		signedAt = sql.NullTime{Time: time.Now(), Valid: true}
	}
	if revoked {
		revokedAt = sql.NullTime{Time: time.Now(), Valid: true}
	}

	_, err := pgSQL.DB.ExecContext(context.Background(),
		`INSERT INTO organization (name, email_domain, contact_name, contact_email, signed_at, revoked_at)
		 VALUES ($1, $2, 'Contact', 'contact@example.com', $3, $4)`,
		name, emailDomain, signedAt, revokedAt)
	require.NoError(t, err)
}

func TestPgSQL_IndividualsByEmails(t *testing.T) {
	pgSQL, cleanup := setupTestDB(t)
	defer cleanup()
	ctx := context.Background()

	seedIndividual(t, pgSQL, "Amy", "amy", "amy@example.com", "", "", false)
	seedIndividual(t, pgSQL, "Bob", "", "", "bob", "bob@example.com", false)
	seedIndividual(t, pgSQL, "Eve", "eve", "eve@example.com", "", "", true)

	// matches on either the github or the launchpad email
	individuals, err := pgSQL.IndividualsByEmails(ctx, []string{"amy@example.com", "bob@example.com"})
	require.NoError(t, err)
	require.Len(t, individuals, 2)

	// revoked rows are returned, filtering is the caller's concern
	individuals, err = pgSQL.IndividualsByEmails(ctx, []string{"eve@example.com"})
	require.NoError(t, err)
	require.Len(t, individuals, 1)
	require.True(t, individuals[0].Revoked())

	individuals, err = pgSQL.IndividualsByEmails(ctx, []string{"nobody@example.com"})
	require.NoError(t, err)
	require.Empty(t, individuals)

	// empty input short-circuits without touching the database
	individuals, err = pgSQL.IndividualsByEmails(ctx, nil)
	require.NoError(t, err)
	require.Empty(t, individuals)
}

func TestPgSQL_IndividualsByGithubUsernames(t *testing.T) {
	pgSQL, cleanup := setupTestDB(t)
	defer cleanup()
	ctx := context.Background()

	seedIndividual(t, pgSQL, "Amy", "amy", "amy@example.com", "", "", false)

	individuals, err := pgSQL.IndividualsByGithubUsernames(ctx, []string{"amy", "bob"})
	require.NoError(t, err)
	require.Len(t, individuals, 1)
	require.Equal(t, "amy", individuals[0].GithubUsername)
	require.Equal(t, "amy@example.com", individuals[0].GithubEmail)
}

func TestPgSQL_IndividualsByLaunchpadUsernames(t *testing.T) {
	pgSQL, cleanup := setupTestDB(t)
	defer cleanup()
	ctx := context.Background()

	seedIndividual(t, pgSQL, "Bob", "", "", "bob", "bob@example.com", false)

	individuals, err := pgSQL.IndividualsByLaunchpadUsernames(ctx, []string{"bob"})
	require.NoError(t, err)
	require.Len(t, individuals, 1)
	require.Equal(t, "bob", individuals[0].LaunchpadUsername)
}

func TestPgSQL_OrganizationsByEmailDomains(t *testing.T) {
	pgSQL, cleanup := setupTestDB(t)
	defer cleanup()
	ctx := context.Background()

	seedOrganization(t, pgSQL, "Ubuntu", "ubuntu.com", true, false)
	seedOrganization(t, pgSQL, "Revoked Inc", "revoked.com", true, true)

	organizations, err := pgSQL.OrganizationsByEmailDomains(ctx, []string{"ubuntu.com", "revoked.com", "missing.com"})
	require.NoError(t, err)
	require.Len(t, organizations, 2)

	byDomain := map[string]bool{}
	for _, organization := range organizations {
		byDomain[organization.EmailDomain] = organization.Active()
	}
	require.Equal(t, map[string]bool{"ubuntu.com": true, "revoked.com": false}, byDomain)
}
