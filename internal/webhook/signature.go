package webhook

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"

	"cla/pkg/serrors"
)

// signaturePrefix is prepended by GitHub to the hex digest in the
// x-hub-signature-256 header.
const signaturePrefix = "sha256="

// VerifySignature checks the x-hub-signature-256 header of a webhook delivery
// against the HMAC-SHA256 of the raw request body keyed with the configured
// webhook secret. The raw body must be the exact bytes received on the wire,
// before any decoding.
func VerifySignature(secret string, body []byte, header string) error {
	if header == "" {
		return serrors.With(serrors.ErrForbidden, "x-hub-signature-256 header is missing!")
	}

	mac := hmac.New(sha256.New, []byte(secret))
	mac.Write(body)
	expected := signaturePrefix + hex.EncodeToString(mac.Sum(nil))

	if !hmac.Equal([]byte(expected), []byte(header)) {
		return serrors.With(serrors.ErrForbidden, "Request signatures didn't match!")
	}

	return nil
}
