package webhook

import (
	"context"
	"fmt"
	"strings"

	"go.uber.org/zap"

	"cla/internal/cla"
	"cla/pkg/domain"
	"cla/pkg/githubapi"
	"cla/pkg/logger"
	"cla/pkg/serrors"
)

// botSuffix marks GitHub machine accounts, which are exempt from the CLA.
const botSuffix = "[bot]"

// pullRequestActions are the pull_request event actions that trigger a
// compliance evaluation of the pull request head.
//nolint: gochecknoglobals
var pullRequestActions = map[string]struct{}{
	"opened":      {},
	"reopened":    {},
	"synchronize": {},
}

type service struct {
	cla           cla.Service
	dialer        githubapi.Dialer
	checkRunLocks *keyedMutex
}

var _ Service = (*service)(nil)

// Process routes a webhook delivery. Pull request openings, reopenings and
// head updates trigger a full compliance evaluation, as does a re-run request
// on the check run from the GitHub UI. Everything else is acknowledged without
// side effects.
func (s *service) Process(ctx context.Context, payload *Payload) (string, error) {
	_, handled := pullRequestActions[payload.Action]
	if payload.PullRequest != nil && handled {
		if payload.Installation.ID == 0 {
			return "", serrors.With(serrors.ErrBadRequest, "Invalid webhook payload")
		}

		err := s.updateCheckRun(ctx,
			payload.Repository.FullName,
			payload.PullRequest.Head.SHA,
			payload.PullRequest.Number,
			payload.Installation.ID)
		if err != nil {
			return "", err
		}

		return "Pull request event processed", nil
	}

	if payload.CheckRun != nil && payload.Action == "rerequested" {
		if len(payload.CheckRun.PullRequests) == 0 {
			return "Re-run event ignored, no pull request", nil
		}
		if payload.Installation.ID == 0 {
			return "", serrors.With(serrors.ErrBadRequest, "Invalid webhook payload")
		}

		err := s.updateCheckRun(ctx,
			payload.Repository.FullName,
			payload.CheckRun.HeadSHA,
			payload.CheckRun.PullRequests[0].Number,
			payload.Installation.ID)
		if err != nil {
			return "", err
		}

		return "Re-run event processed", nil
	}

	return "Event not processed", nil
}

// updateCheckRun runs the full pipeline for one pull request head: mint an
// installation client, collect the commit authors, resolve their CLA status
// and reconcile the check run on the head commit.
func (s *service) updateCheckRun(ctx context.Context, repo, sha string, number int, installationID int64) error {
	logger.Info(ctx, "evaluating pull request",
		zap.String("repository", repo),
		zap.String("sha", sha),
		zap.Int("number", number))

	gh, err := s.dialer.Installation(ctx, installationID)
	if err != nil {
		return fmt.Errorf("could not authenticate installation: %w", err)
	}

	authors, err := CollectAuthors(ctx, gh, repo, number)
	if err != nil {
		return fmt.Errorf("could not collect commit authors: %w", err)
	}

	authors, err = s.applyCLAStatus(ctx, authors)
	if err != nil {
		return fmt.Errorf("could not check CLA status: %w", err)
	}

	return s.reconcileCheckRun(ctx, gh, repo, sha, authors)
}

// applyCLAStatus resolves the signed flag of every author. Bot accounts are
// exempt without a lookup; the rest are resolved in a single query against the
// signatory records, matching on either the author email or the GitHub
// username.
func (s *service) applyCLAStatus(ctx context.Context, authors []domain.CommitAuthor) ([]domain.CommitAuthor, error) {
	var emails, usernames []string

	for i, author := range authors {
		if strings.HasSuffix(author.Username, botSuffix) {
			authors[i].Signed = true

			continue
		}

		emails = append(emails, author.Email)
		if author.Username != "" {
			usernames = append(usernames, author.Username)
		}
	}

	if len(emails) == 0 {
		return authors, nil
	}

	status, err := s.cla.CheckCLA(ctx, emails, usernames, nil)
	if err != nil {
		return nil, err
	}

	for i, author := range authors {
		if author.Signed {
			continue
		}

		if status.Emails[author.Email] || (author.Username != "" && status.GithubUsernames[author.Username]) {
			authors[i].Signed = true
		}
	}

	return authors, nil
}

// New returns a webhook processor backed by the given CLA service and GitHub
// App dialer.
func New(claService cla.Service, dialer githubapi.Dialer) Service {
	return &service{
		cla:           claService,
		dialer:        dialer,
		checkRunLocks: newKeyedMutex(),
	}
}
