package webhook

import (
	"cla/pkg/serrors"
)

// Payload is the subset of a GitHub webhook delivery the service acts on.
// Only pull request and check run re-run events carry the fields below; other
// event types unmarshal into a payload that fails Validate or falls through
// the dispatch table.
type Payload struct {
	Action       string       `json:"action"`
	Repository   Repository   `json:"repository"`
	Installation Installation `json:"installation"`
	PullRequest  *PullRequest `json:"pull_request"`
	CheckRun     *CheckRunRef `json:"check_run"`
}

type Repository struct {
	FullName string `json:"full_name"`
}

type Installation struct {
	ID int64 `json:"id"`
}

type PullRequest struct {
	Number int  `json:"number"`
	Head   Head `json:"head"`
}

type Head struct {
	SHA string `json:"sha"`
}

// CheckRunRef is the check run embedded in a check_run event, carrying the
// head SHA it was created for and the pull requests it is associated with.
type CheckRunRef struct {
	HeadSHA      string              `json:"head_sha"`
	PullRequests []PullRequestNumber `json:"pull_requests"`
}

type PullRequestNumber struct {
	Number int `json:"number"`
}

// Validate checks that the delivery carries the fields every event needs.
// The installation is only required by deliveries that trigger the pipeline
// and is checked at dispatch; events like ping carry none and still get the
// no-op acknowledgement.
func (p *Payload) Validate() error {
	if p.Repository.FullName == "" {
		return serrors.With(serrors.ErrBadRequest, "Invalid webhook payload")
	}

	return nil
}
