package webhook

import (
	"context"
	"sort"
	"strings"

	"cla/pkg/domain"
	"cla/pkg/githubapi"
)

// CollectAuthors walks every commit of a pull request and returns its distinct
// authors, keyed by lowercased email with the first-seen username kept.
// Commits carrying an accepted license trailer for the repository are skipped,
// as are commits without an author email. Authors are returned sorted by
// username, with the email breaking ties, so output built from them is stable
// across deliveries.
func CollectAuthors(ctx context.Context, gh githubapi.Client, repo string, number int) ([]domain.CommitAuthor, error) {
	seen := make(map[string]domain.CommitAuthor)

	for summary, err := range gh.PullCommits(ctx, repo, number) {
		if err != nil {
			return nil, err
		}

		commit, err := gh.Commit(ctx, summary.URL)
		if err != nil {
			return nil, err
		}

		if ImplicitLicense(repo, commit.Message) != "" {
			continue
		}

		if commit.AuthorEmail == "" {
			continue
		}

		email := strings.ToLower(commit.AuthorEmail)
		if _, ok := seen[email]; ok {
			continue
		}

		seen[email] = domain.CommitAuthor{
			Email:    email,
			Username: commit.AuthorLogin,
		}
	}

	authors := make([]domain.CommitAuthor, 0, len(seen))
	for _, author := range seen {
		authors = append(authors, author)
	}

	sort.Slice(authors, func(i, j int) bool {
		if authors[i].Username != authors[j].Username {
			return authors[i].Username < authors[j].Username
		}

		return authors[i].Email < authors[j].Email
	})

	return authors, nil
}
