// Package githubrest provides githubapi.Client and githubapi.Dialer
// implementations backed by the GitHub REST API.
package githubrest

import (
	"bytes"
	"cla/pkg/githubapi"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"iter"
	"net/http"
	"strings"
)

const (
	// DefaultBaseURL is the public GitHub REST API endpoint.
	DefaultBaseURL = "https://api.github.com"

	// perPage is the page size used when listing pull request commits.
	perPage = 100
)

// Client talks to the GitHub REST API with an installation access token and
// fulfills the githubapi.Client interface. It is safe for concurrent use.
type Client struct {
	httpClient *http.Client // httpClient performs HTTP requests to GitHub
	baseURL    string       // baseURL of the REST API, without trailing slash
	token      string       // token is the installation access token
}

// do sends an authenticated request and returns the response. Callers own the
// response body.
func (c *Client) do(ctx context.Context, method, url string, body any) (*http.Response, error) {
	var reader io.Reader
	if body != nil {
		b, err := json.Marshal(body)
		if err != nil {
			return nil, fmt.Errorf("could not marshal request: %w", err)
		}
		reader = bytes.NewReader(b)
	}

	req, err := http.NewRequestWithContext(ctx, method, url, reader)
	if err != nil {
		return nil, fmt.Errorf("could not create request: %w", err)
	}
	req.Header.Set("Accept", "application/vnd.github+json")
	req.Header.Set("Authorization", "Bearer "+c.token)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("could not send request: %w", err)
	}

	return resp, nil
}

// getJSON sends a GET request, decodes the 2xx response body into out and
// returns the URL of the next page from the Link header, if any.
func (c *Client) getJSON(ctx context.Context, url string, out any) (string, error) {
	resp, err := c.do(ctx, http.MethodGet, url, nil)
	if err != nil {
		return "", err
	}
	defer func() {
		_ = resp.Body.Close()
	}()

	b, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", fmt.Errorf("could not read response body: %w", err)
	}
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return "", fmt.Errorf("github request failed (%d): %s", resp.StatusCode, strings.TrimSpace(string(b)))
	}
	if err := json.Unmarshal(b, out); err != nil {
		return "", fmt.Errorf("could not decode response: %w", err)
	}

	return nextPageURL(resp.Header), nil
}

// nextPageURL extracts the rel="next" target from a Link header, or "" when
// there is no further page.
func nextPageURL(h http.Header) string {
	for link := range strings.SplitSeq(h.Get("Link"), ",") {
		part := strings.Split(link, ";")
		if len(part) < 2 {
			continue
		}
		url := strings.Trim(strings.TrimSpace(part[0]), "<>")
		for _, param := range part[1:] {
			if strings.TrimSpace(param) == `rel="next"` {
				return url
			}
		}
	}

	return ""
}

// PullCommits returns a lazy sequence over the commit summaries of a pull
// request, fetching pages on demand. The sequence stops at the first error,
// yielding it as the second value.
func (c *Client) PullCommits(ctx context.Context, repo string, number int) iter.Seq2[githubapi.CommitSummary, error] {
	// https://docs.github.com/en/rest/pulls/pulls#list-commits-on-a-pull-request
	url := fmt.Sprintf("%s/repos/%s/pulls/%d/commits?per_page=%d", c.baseURL, repo, number, perPage)

	return func(yield func(githubapi.CommitSummary, error) bool) {
		for url != "" {
			var page []struct {
				SHA string `json:"sha"`
				URL string `json:"url"`
			}
			next, err := c.getJSON(ctx, url, &page)
			if err != nil {
				yield(githubapi.CommitSummary{}, fmt.Errorf("could not list pull request commits: %w", err))

				return
			}
			for _, summary := range page {
				if !yield(githubapi.CommitSummary{SHA: summary.SHA, URL: summary.URL}, nil) {
					return
				}
			}
			url = next
		}
	}
}

// Commit fetches and decodes a full commit object by its API URL.
func (c *Client) Commit(ctx context.Context, url string) (*githubapi.Commit, error) {
	// https://docs.github.com/en/rest/commits/commits#get-a-commit
	var body struct {
		SHA    string `json:"sha"`
		Commit struct {
			Message string `json:"message"`
			Author  struct {
				Email string `json:"email"`
			} `json:"author"`
		} `json:"commit"`
		Author *struct {
			Login string `json:"login"`
		} `json:"author"`
	}
	if _, err := c.getJSON(ctx, url, &body); err != nil {
		return nil, fmt.Errorf("could not get commit: %w", err)
	}

	out := &githubapi.Commit{
		SHA:         body.SHA,
		Message:     body.Commit.Message,
		AuthorEmail: body.Commit.Author.Email,
	}
	if body.Author != nil {
		out.AuthorLogin = body.Author.Login
	}

	return out, nil
}

// CheckRuns lists the check runs attached to the given commit SHA.
func (c *Client) CheckRuns(ctx context.Context, repo, sha string) ([]githubapi.CheckRun, error) {
	// https://docs.github.com/en/rest/checks/runs#list-check-runs-for-a-git-reference
	var body struct {
		CheckRuns []struct {
			ID         int64  `json:"id"`
			Name       string `json:"name"`
			URL        string `json:"url"`
			Status     string `json:"status"`
			Conclusion string `json:"conclusion"`
		} `json:"check_runs"`
	}
	url := fmt.Sprintf("%s/repos/%s/commits/%s/check-runs", c.baseURL, repo, sha)
	if _, err := c.getJSON(ctx, url, &body); err != nil {
		return nil, fmt.Errorf("could not list check runs: %w", err)
	}

	out := make([]githubapi.CheckRun, 0, len(body.CheckRuns))
	for _, run := range body.CheckRuns {
		out = append(out, githubapi.CheckRun{
			ID:         run.ID,
			Name:       run.Name,
			URL:        run.URL,
			Status:     run.Status,
			Conclusion: run.Conclusion,
		})
	}

	return out, nil
}

// CreateCheckRun creates a new check run on a commit.
func (c *Client) CreateCheckRun(ctx context.Context, repo string, run githubapi.NewCheckRun) error {
	// https://docs.github.com/en/rest/checks/runs#create-a-check-run
	payload := struct {
		Name       string                   `json:"name"`
		HeadSHA    string                   `json:"head_sha"`
		Status     string                   `json:"status"`
		Conclusion string                   `json:"conclusion"`
		Output     githubapi.CheckRunOutput `json:"output"`
	}{
		Name:       run.Name,
		HeadSHA:    run.HeadSHA,
		Status:     run.Status,
		Conclusion: run.Conclusion,
		Output:     run.Output,
	}

	resp, err := c.do(ctx, http.MethodPost, c.baseURL+"/repos/"+repo+"/check-runs", payload)
	if err != nil {
		return fmt.Errorf("could not create check run: %w", err)
	}
	defer func() {
		_ = resp.Body.Close()
	}()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		b, _ := io.ReadAll(resp.Body)

		return fmt.Errorf("create check run failed (%d): %s", resp.StatusCode, strings.TrimSpace(string(b)))
	}

	return nil
}

// UpdateCheckRun updates an existing check run identified by its API URL.
func (c *Client) UpdateCheckRun(ctx context.Context, url string, update githubapi.CheckRunUpdate) error {
	// https://docs.github.com/en/rest/checks/runs#update-a-check-run
	payload := struct {
		Status     string                   `json:"status"`
		Conclusion string                   `json:"conclusion"`
		Output     githubapi.CheckRunOutput `json:"output"`
	}{
		Status:     update.Status,
		Conclusion: update.Conclusion,
		Output:     update.Output,
	}

	resp, err := c.do(ctx, http.MethodPatch, url, payload)
	if err != nil {
		return fmt.Errorf("could not update check run: %w", err)
	}
	defer func() {
		_ = resp.Body.Close()
	}()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		b, _ := io.ReadAll(resp.Body)

		return fmt.Errorf("update check run failed (%d): %s", resp.StatusCode, strings.TrimSpace(string(b)))
	}

	return nil
}

// Ensure Client conforms to the githubapi.Client interface at compile time.
var _ githubapi.Client = (*Client)(nil)

// New constructs a Client that uses the provided http.Client and installation
// access token to interact with the GitHub REST API rooted at baseURL.
func New(httpClient *http.Client, baseURL, token string) *Client {
	return &Client{
		httpClient: httpClient,
		baseURL:    strings.TrimSuffix(baseURL, "/"),
		token:      token,
	}
}
