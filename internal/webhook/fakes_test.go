package webhook_test

import (
	"context"
	"fmt"
	"iter"
	"sync"
	"time"

	"cla/pkg/domain"
	"cla/pkg/githubapi"
)

// fakeClient is an in-memory githubapi.Client, safe for concurrent use.
// Commits are served in slice order; check run writes are recorded for
// assertions. With trackCreated set, CheckRuns also reflects runs created
// through CreateCheckRun, and listDelay stretches the gap between listing
// and the caller's subsequent write.
type fakeClient struct {
	mu sync.Mutex

	commits    []githubapi.Commit
	commitsErr error

	checkRuns    []githubapi.CheckRun
	checkRunsErr error
	trackCreated bool
	listDelay    time.Duration

	created []githubapi.NewCheckRun
	updated map[string]githubapi.CheckRunUpdate
	updates int
}

var _ githubapi.Client = (*fakeClient)(nil)

func (f *fakeClient) PullCommits(_ context.Context, _ string, _ int) iter.Seq2[githubapi.CommitSummary, error] {
	return func(yield func(githubapi.CommitSummary, error) bool) {
		for _, commit := range f.commits {
			summary := githubapi.CommitSummary{
				SHA: commit.SHA,
				URL: "https://api.github.test/commits/" + commit.SHA,
			}
			if !yield(summary, nil) {
				return
			}
		}
		if f.commitsErr != nil {
			yield(githubapi.CommitSummary{}, f.commitsErr)
		}
	}
}

func (f *fakeClient) Commit(_ context.Context, url string) (*githubapi.Commit, error) {
	for _, commit := range f.commits {
		if url == "https://api.github.test/commits/"+commit.SHA {
			c := commit

			return &c, nil
		}
	}

	return nil, fmt.Errorf("unknown commit url %q", url)
}

func (f *fakeClient) CheckRuns(_ context.Context, _, _ string) ([]githubapi.CheckRun, error) {
	if f.checkRunsErr != nil {
		return nil, f.checkRunsErr
	}

	f.mu.Lock()
	snapshot := make([]githubapi.CheckRun, len(f.checkRuns))
	copy(snapshot, f.checkRuns)
	if f.trackCreated {
		for i, run := range f.created {
			snapshot = append(snapshot, githubapi.CheckRun{
				ID:         int64(i + 1),
				Name:       run.Name,
				URL:        fmt.Sprintf("https://api.github.test/check-runs/%d", i+1),
				Status:     run.Status,
				Conclusion: run.Conclusion,
			})
		}
	}
	f.mu.Unlock()

	// with a delay, an unserialized caller acts on a stale listing
	time.Sleep(f.listDelay)

	return snapshot, nil
}

func (f *fakeClient) CreateCheckRun(_ context.Context, _ string, run githubapi.NewCheckRun) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.created = append(f.created, run)

	return nil
}

func (f *fakeClient) UpdateCheckRun(_ context.Context, url string, update githubapi.CheckRunUpdate) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.updated == nil {
		f.updated = map[string]githubapi.CheckRunUpdate{}
	}
	f.updated[url] = update
	f.updates++

	return nil
}

// fakeDialer hands out the same fake client for every installation and
// records the requested installation IDs.
type fakeDialer struct {
	mu              sync.Mutex
	client          *fakeClient
	installationIDs []int64
	err             error
}

var _ githubapi.Dialer = (*fakeDialer)(nil)

func (f *fakeDialer) Installation(_ context.Context, installationID int64) (githubapi.Client, error) {
	if f.err != nil {
		return nil, f.err
	}

	f.mu.Lock()
	f.installationIDs = append(f.installationIDs, installationID)
	f.mu.Unlock()

	return f.client, nil
}

// fakeCLA resolves CLA status from static sets and records what it was asked.
type fakeCLA struct {
	signedEmails    map[string]bool
	signedUsernames map[string]bool

	mu             sync.Mutex
	calls          int
	gotEmails      []string
	gotUsernames   []string
	gotLaunchpadUs []string
	err            error
}

func (f *fakeCLA) CheckCLA(_ context.Context,
	emails, githubUsernames, launchpadUsernames []string) (domain.CLACheck, error) {
	f.mu.Lock()
	f.calls++
	f.gotEmails = emails
	f.gotUsernames = githubUsernames
	f.gotLaunchpadUs = launchpadUsernames
	f.mu.Unlock()

	if f.err != nil {
		return domain.CLACheck{}, f.err
	}

	out := domain.CLACheck{
		Emails:             map[string]bool{},
		GithubUsernames:    map[string]bool{},
		LaunchpadUsernames: map[string]bool{},
	}
	for _, email := range emails {
		out.Emails[email] = f.signedEmails[email]
	}
	for _, username := range githubUsernames {
		out.GithubUsernames[username] = f.signedUsernames[username]
	}

	return out, nil
}
