package webhook_test

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"testing"

	"github.com/stretchr/testify/require"

	"cla/internal/webhook"
	"cla/pkg/serrors"
)

func sign(secret string, body []byte) string {
	mac := hmac.New(sha256.New, []byte(secret))
	mac.Write(body)

	return "sha256=" + hex.EncodeToString(mac.Sum(nil))
}

func TestVerifySignature_valid(t *testing.T) {
	body := []byte(`{"action":"opened"}`)

	err := webhook.VerifySignature("It's a Secret to Everybody", body, sign("It's a Secret to Everybody", body))
	require.NoError(t, err)
}

func TestVerifySignature_missingHeader(t *testing.T) {
	err := webhook.VerifySignature("secret", []byte("{}"), "")
	require.Error(t, err)
	require.ErrorIs(t, err, serrors.ErrForbidden)
	require.EqualError(t, err, "x-hub-signature-256 header is missing!")
}

func TestVerifySignature_mismatch(t *testing.T) {
	body := []byte("{}")

	err := webhook.VerifySignature("secret", body, sign("other-secret", body))
	require.Error(t, err)
	require.ErrorIs(t, err, serrors.ErrForbidden)
	require.EqualError(t, err, "Request signatures didn't match!")
}

func TestVerifySignature_tamperedBody(t *testing.T) {
	header := sign("secret", []byte(`{"action":"opened"}`))

	err := webhook.VerifySignature("secret", []byte(`{"action":"closed"}`), header)
	require.ErrorIs(t, err, serrors.ErrForbidden)
}
