// Package githubapi defines the GitHub API surface the application relies on.
// Implementations live in provider subpackages (e.g. githubrest).
package githubapi

import (
	"context"
	"iter"
)

// CommitSummary is one entry of a pull request's commit listing. URL points at
// the full commit object.
type CommitSummary struct {
	SHA string
	URL string
}

// Commit is the subset of a full commit object consumed by the compliance
// engine.
type Commit struct {
	// SHA is the commit hash.
	SHA string
	// Message is the full commit message including trailers.
	Message string
	// AuthorEmail is the commit author email from the git metadata; may be empty.
	AuthorEmail string
	// AuthorLogin is the GitHub login linked to the commit; empty when GitHub
	// could not attribute the commit to an account.
	AuthorLogin string
}

// CheckRunOutput is the human-readable part of a check run.
type CheckRunOutput struct {
	Title   string `json:"title"`
	Summary string `json:"summary"`
}

// CheckRun describes an existing check run attached to a commit.
type CheckRun struct {
	ID         int64
	Name       string
	URL        string
	Status     string
	Conclusion string
}

// NewCheckRun carries the fields for creating a check run on a commit.
type NewCheckRun struct {
	Name       string
	HeadSHA    string
	Status     string
	Conclusion string
	Output     CheckRunOutput
}

// CheckRunUpdate carries the fields for updating an existing check run.
type CheckRunUpdate struct {
	Status     string
	Conclusion string
	Output     CheckRunOutput
}

// Client is an installation-scoped GitHub API client. All methods translate
// GitHub API failures into errors; none of them retries internally.
type Client interface {
	// PullCommits returns a lazy, single-pass sequence over the commit summaries
	// of a pull request, following GitHub's page links as it is consumed. The
	// sequence must not be restarted after partial consumption.
	PullCommits(ctx context.Context, repo string, number int) iter.Seq2[CommitSummary, error]
	// Commit fetches a full commit object by its API URL.
	Commit(ctx context.Context, url string) (*Commit, error)
	// CheckRuns lists the check runs attached to a commit.
	CheckRuns(ctx context.Context, repo, sha string) ([]CheckRun, error)
	// CreateCheckRun creates a new check run on a commit.
	CreateCheckRun(ctx context.Context, repo string, run NewCheckRun) error
	// UpdateCheckRun updates an existing check run identified by its API URL.
	UpdateCheckRun(ctx context.Context, url string, update CheckRunUpdate) error
}

// Dialer mints installation-scoped clients for a GitHub App. Tokens are
// short-lived per-call credentials and are never cached.
type Dialer interface {
	// Installation exchanges an app JWT for an installation access token and
	// returns a Client scoped to that installation.
	Installation(ctx context.Context, installationID int64) (Client, error)
}
