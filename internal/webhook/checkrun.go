package webhook

import (
	"context"
	"fmt"
	"strings"
	"sync"

	"cla/pkg/domain"
	"cla/pkg/githubapi"
)

const (
	// checkRunName is the single check run this service owns per commit.
	checkRunName = "Canonical CLA"

	checkRunStatusCompleted  = "completed"
	checkRunConclusionPassed = "success"
	checkRunConclusionFailed = "failure"

	passedTitle   = "All contributors have signed the CLA."
	passedSummary = "All contributors have signed the CLA. Thank you!"

	failedTitle   = "CLA Check Failed"
	failedSummary = "Some commit authors have not signed the Canonical CLA " +
		"which is required to get this contribution merged on this project.\n\n" +
		"The following shows the status of all commit authors:\n"
	failedFooter = "\n\nPlease head over to https://ubuntu.com/legal/contributors to sign the CLA."
)

// authorLine renders one author's CLA status for the check run summary.
func authorLine(author domain.CommitAuthor) string {
	username := author.Username
	if username == "" {
		username = "Unknown user"
	}

	if author.Signed {
		return fmt.Sprintf("- %s ✓ (CLA signed)", username)
	}

	return fmt.Sprintf("- %s (%s) ✗ (CLA not signed)", username, author.Email)
}

// buildCheckRunOutput derives the conclusion and rendered output for a set of
// commit authors. Authors must already be sorted so that repeated deliveries
// for the same head produce byte-identical output.
func buildCheckRunOutput(authors []domain.CommitAuthor) (string, githubapi.CheckRunOutput) {
	var signed, unsigned []string

	for _, author := range authors {
		if author.Signed {
			signed = append(signed, authorLine(author))
		} else {
			unsigned = append(unsigned, authorLine(author))
		}
	}

	if len(unsigned) == 0 {
		summary := passedSummary
		if len(signed) > 0 {
			summary += "\n\n" + strings.Join(signed, "\n")
		}

		return checkRunConclusionPassed, githubapi.CheckRunOutput{
			Title:   passedTitle,
			Summary: summary,
		}
	}

	lines := make([]string, 0, len(authors))
	lines = append(lines, unsigned...)
	lines = append(lines, signed...)

	return checkRunConclusionFailed, githubapi.CheckRunOutput{
		Title:   failedTitle,
		Summary: failedSummary + strings.Join(lines, "\n") + failedFooter,
	}
}

// keyedMutex serializes critical sections per key. It is used to make the
// check run list-then-write on a given (repository, head SHA) pair atomic
// within this process, so concurrent deliveries for the same head cannot both
// observe "no run" and create duplicates.
//
// Entries are never evicted: the map holds one mutex per distinct head seen
// over the process lifetime.
type keyedMutex struct {
	mu    sync.Mutex
	locks map[string]*sync.Mutex
}

func newKeyedMutex() *keyedMutex {
	return &keyedMutex{locks: make(map[string]*sync.Mutex)}
}

func (k *keyedMutex) lock(key string) func() {
	k.mu.Lock()
	lock, ok := k.locks[key]
	if !ok {
		lock = &sync.Mutex{}
		k.locks[key] = lock
	}
	k.mu.Unlock()

	lock.Lock()

	return lock.Unlock
}

// reconcileCheckRun upserts the "Canonical CLA" check run on a head commit:
// if a run with that name already exists it is updated in place, otherwise a
// new completed run is created. Runs under other names are left untouched.
func (s *service) reconcileCheckRun(ctx context.Context, gh githubapi.Client, repo, sha string, authors []domain.CommitAuthor) error {
	conclusion, output := buildCheckRunOutput(authors)

	unlock := s.checkRunLocks.lock(repo + "@" + sha)
	defer unlock()

	runs, err := gh.CheckRuns(ctx, repo, sha)
	if err != nil {
		return fmt.Errorf("could not list check runs: %w", err)
	}

	for _, run := range runs {
		if run.Name != checkRunName {
			continue
		}

		err = gh.UpdateCheckRun(ctx, run.URL, githubapi.CheckRunUpdate{
			Status:     checkRunStatusCompleted,
			Conclusion: conclusion,
			Output:     output,
		})
		if err != nil {
			return fmt.Errorf("could not update check run: %w", err)
		}

		return nil
	}

	err = gh.CreateCheckRun(ctx, repo, githubapi.NewCheckRun{
		Name:       checkRunName,
		HeadSHA:    sha,
		Status:     checkRunStatusCompleted,
		Conclusion: conclusion,
		Output:     output,
	})
	if err != nil {
		return fmt.Errorf("could not create check run: %w", err)
	}

	return nil
}
