package handler

import (
	"encoding/json"
	"io"
	"net/http"

	"cla/internal/webhook"
	"cla/pkg/serrors"
)

// maxWebhookBody caps the webhook payload size. GitHub caps deliveries at
// 25 MB.
const maxWebhookBody = 25 << 20

// messageBody is the JSON shape of the webhook acknowledgement.
type messageBody struct {
	Message string `json:"message"`
}

// Webhook receives a GitHub webhook delivery. The signature is verified over
// the raw body before any decoding, so the bytes hashed are exactly the bytes
// GitHub signed.
func (h Handler) Webhook(secret string) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		body, err := io.ReadAll(io.LimitReader(r.Body, maxWebhookBody))
		if err != nil {
			h.writeError(w, r, serrors.Wrap(serrors.ErrBadRequest, err, "Invalid webhook payload"))

			return
		}

		if err := webhook.VerifySignature(secret, body, r.Header.Get("x-hub-signature-256")); err != nil {
			h.writeError(w, r, err)

			return
		}

		var payload webhook.Payload
		if err := json.Unmarshal(body, &payload); err != nil {
			h.writeError(w, r, serrors.Wrap(serrors.ErrBadRequest, err, "Invalid webhook payload"))

			return
		}

		if err := payload.Validate(); err != nil {
			h.writeError(w, r, err)

			return
		}

		message, err := h.deps.Webhook.Process(r.Context(), &payload)
		if err != nil {
			h.writeError(w, r, err)

			return
		}

		writeJSON(w, http.StatusOK, messageBody{Message: message})
	}
}
