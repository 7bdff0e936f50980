package handler_test

import (
	"context"
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"cla/internal/api/handler"
	"cla/internal/webhook"
	"cla/pkg/domain"
	"cla/pkg/logger"
)

func TestMain(m *testing.M) {
	// Initialize logger to avoid nil pointer deref during tests
	logger.Setup(logger.DevelopmentEnvironment)
	m.Run()
}

const testSecret = "It's a Secret to Everybody"

type fakeWebhook struct {
	message string
	err     error
	got     *webhook.Payload
}

func (f *fakeWebhook) Process(_ context.Context, payload *webhook.Payload) (string, error) {
	f.got = payload

	return f.message, f.err
}

type fakeCLA struct {
	result domain.CLACheck
	err    error

	gotEmails             []string
	gotGithubUsernames    []string
	gotLaunchpadUsernames []string
}

func (f *fakeCLA) CheckCLA(_ context.Context,
	emails, githubUsernames, launchpadUsernames []string) (domain.CLACheck, error) {
	f.gotEmails = emails
	f.gotGithubUsernames = githubUsernames
	f.gotLaunchpadUsernames = launchpadUsernames

	return f.result, f.err
}

func sign(body string) string {
	mac := hmac.New(sha256.New, []byte(testSecret))
	mac.Write([]byte(body))

	return "sha256=" + hex.EncodeToString(mac.Sum(nil))
}

func newWebhookRequest(body, signature string) *http.Request {
	req := httptest.NewRequest(http.MethodPost, "/github/webhook", strings.NewReader(body))
	if signature != "" {
		req.Header.Set("x-hub-signature-256", signature)
	}

	return req
}

func TestHandler_Webhook_processed(t *testing.T) {
	wh := &fakeWebhook{message: "Pull request event processed"}
	h := handler.New(handler.Deps{Webhook: wh})

	body := `{
		"action": "opened",
		"repository": {"full_name": "canonical/snapd"},
		"installation": {"id": 42},
		"pull_request": {"number": 7, "head": {"sha": "abc123"}}
	}`
	rec := httptest.NewRecorder()
	h.Webhook(testSecret)(rec, newWebhookRequest(body, sign(body)))

	require.Equal(t, http.StatusOK, rec.Code)
	require.JSONEq(t, `{"message": "Pull request event processed"}`, rec.Body.String())

	require.NotNil(t, wh.got)
	require.Equal(t, "canonical/snapd", wh.got.Repository.FullName)
	require.Equal(t, int64(42), wh.got.Installation.ID)
	require.Equal(t, 7, wh.got.PullRequest.Number)
	require.Equal(t, "abc123", wh.got.PullRequest.Head.SHA)
}

func TestHandler_Webhook_missingSignature(t *testing.T) {
	wh := &fakeWebhook{}
	h := handler.New(handler.Deps{Webhook: wh})

	rec := httptest.NewRecorder()
	h.Webhook(testSecret)(rec, newWebhookRequest("{}", ""))

	require.Equal(t, http.StatusForbidden, rec.Code)
	require.JSONEq(t, `{"error": "x-hub-signature-256 header is missing!"}`, rec.Body.String())
	require.Nil(t, wh.got)
}

func TestHandler_Webhook_badSignature(t *testing.T) {
	wh := &fakeWebhook{}
	h := handler.New(handler.Deps{Webhook: wh})

	rec := httptest.NewRecorder()
	h.Webhook(testSecret)(rec, newWebhookRequest(`{"a": 1}`, sign(`{"a": 2}`)))

	require.Equal(t, http.StatusForbidden, rec.Code)
	require.JSONEq(t, `{"error": "Request signatures didn't match!"}`, rec.Body.String())
	require.Nil(t, wh.got)
}

func TestHandler_Webhook_invalidPayload(t *testing.T) {
	h := handler.New(handler.Deps{Webhook: &fakeWebhook{}})

	for _, body := range []string{"not json", `{"action": "opened"}`} {
		rec := httptest.NewRecorder()
		h.Webhook(testSecret)(rec, newWebhookRequest(body, sign(body)))

		require.Equal(t, http.StatusBadRequest, rec.Code)
		require.JSONEq(t, `{"error": "Invalid webhook payload"}`, rec.Body.String())
	}
}

func TestHandler_Webhook_processingError(t *testing.T) {
	wh := &fakeWebhook{err: errors.New("github is down")}
	h := handler.New(handler.Deps{Webhook: wh})

	body := `{"repository": {"full_name": "canonical/snapd"}, "installation": {"id": 42}}`
	rec := httptest.NewRecorder()
	h.Webhook(testSecret)(rec, newWebhookRequest(body, sign(body)))

	// internal failures never leak their message
	require.Equal(t, http.StatusInternalServerError, rec.Code)
	require.JSONEq(t, `{"error": "internal server error"}`, rec.Body.String())
}

func TestHandler_Check(t *testing.T) {
	claSvc := &fakeCLA{result: domain.CLACheck{
		Emails:             map[string]bool{"dev1@ubuntu.com": true, "dev2@example.com": false},
		GithubUsernames:    map[string]bool{"amy": true},
		LaunchpadUsernames: map[string]bool{},
	}}
	h := handler.New(handler.Deps{CLA: claSvc})

	req := httptest.NewRequest(http.MethodGet,
		"/cla/check?emails=dev1@ubuntu.com&emails=dev2@example.com&github_usernames=amy", nil)
	rec := httptest.NewRecorder()
	h.Check(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	require.Equal(t, []string{"dev1@ubuntu.com", "dev2@example.com"}, claSvc.gotEmails)
	require.Equal(t, []string{"amy"}, claSvc.gotGithubUsernames)
	require.Empty(t, claSvc.gotLaunchpadUsernames)

	var body struct {
		Emails             map[string]bool `json:"emails"`
		GithubUsernames    map[string]bool `json:"github_usernames"`
		LaunchpadUsernames map[string]bool `json:"launchpad_usernames"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	require.Equal(t, map[string]bool{"dev1@ubuntu.com": true, "dev2@example.com": false}, body.Emails)
	require.Equal(t, map[string]bool{"amy": true}, body.GithubUsernames)
	require.Empty(t, body.LaunchpadUsernames)
}

func TestHandler_Check_tooManyValues(t *testing.T) {
	h := handler.New(handler.Deps{CLA: &fakeCLA{}})

	var sb strings.Builder
	sb.WriteString("/cla/check?")
	for range 101 {
		sb.WriteString("emails=dev@example.com&")
	}

	rec := httptest.NewRecorder()
	h.Check(rec, httptest.NewRequest(http.MethodGet, sb.String(), nil))

	require.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestHandler_Check_serviceError(t *testing.T) {
	h := handler.New(handler.Deps{CLA: &fakeCLA{err: errors.New("db down")}})

	rec := httptest.NewRecorder()
	h.Check(rec, httptest.NewRequest(http.MethodGet, "/cla/check?emails=dev@example.com", nil))

	require.Equal(t, http.StatusInternalServerError, rec.Code)
}
