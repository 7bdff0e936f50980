package githubrest

import (
	"cla/pkg/githubapi"
	"context"
	"crypto/rsa"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

const (
	// appJWTBackdate compensates for clock drift between us and GitHub.
	appJWTBackdate = time.Minute
	// appJWTLifetime keeps the app JWT comfortably inside GitHub's 10 minute cap.
	appJWTLifetime = 9 * time.Minute
)

// App holds a GitHub App's credentials and mints installation-scoped clients.
// It implements githubapi.Dialer. Installation tokens are fetched fresh per
// call and never cached.
type App struct {
	httpClient *http.Client
	baseURL    string
	appID      int64
	privateKey *rsa.PrivateKey
}

// AppJWT signs a short-lived RS256 JWT identifying the GitHub App, used to
// authenticate the installation token exchange.
func (a *App) AppJWT(now time.Time) (string, error) {
	claims := jwt.RegisteredClaims{
		Issuer:    strconv.FormatInt(a.appID, 10),
		IssuedAt:  jwt.NewNumericDate(now.Add(-appJWTBackdate)),
		ExpiresAt: jwt.NewNumericDate(now.Add(appJWTLifetime)),
	}
	signed, err := jwt.NewWithClaims(jwt.SigningMethodRS256, claims).SignedString(a.privateKey)
	if err != nil {
		return "", fmt.Errorf("could not sign app JWT: %w", err)
	}

	return signed, nil
}

// Installation exchanges an app JWT for an installation access token and
// returns a Client scoped to that installation.
func (a *App) Installation(ctx context.Context, installationID int64) (githubapi.Client, error) {
	// https://docs.github.com/en/rest/apps/apps#create-an-installation-access-token-for-an-app
	appJWT, err := a.AppJWT(time.Now())
	if err != nil {
		return nil, err
	}

	url := fmt.Sprintf("%s/app/installations/%d/access_tokens", a.baseURL, installationID)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, nil)
	if err != nil {
		return nil, fmt.Errorf("could not create request: %w", err)
	}
	req.Header.Set("Accept", "application/vnd.github+json")
	req.Header.Set("Authorization", "Bearer "+appJWT)

	resp, err := a.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("could not send request: %w", err)
	}
	defer func() {
		_ = resp.Body.Close()
	}()

	b, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("could not read response body: %w", err)
	}
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, fmt.Errorf("installation token exchange failed (%d): %s",
			resp.StatusCode,
			strings.TrimSpace(string(b)))
	}

	var tokenResp struct {
		Token string `json:"token"`
	}
	if err := json.Unmarshal(b, &tokenResp); err != nil {
		return nil, fmt.Errorf("could not decode response: %w", err)
	}

	return New(a.httpClient, a.baseURL, tokenResp.Token), nil
}

// Ensure App conforms to the githubapi.Dialer interface at compile time.
var _ githubapi.Dialer = (*App)(nil)

// NewApp constructs an App from the GitHub App id and its PEM-encoded RSA
// private key.
func NewApp(httpClient *http.Client, baseURL string, appID int64, privateKeyPEM []byte) (*App, error) {
	key, err := jwt.ParseRSAPrivateKeyFromPEM(privateKeyPEM)
	if err != nil {
		return nil, fmt.Errorf("could not parse RSA private key: %w", err)
	}

	return &App{
		httpClient: httpClient,
		baseURL:    strings.TrimSuffix(baseURL, "/"),
		appID:      appID,
		privateKey: key,
	}, nil
}
