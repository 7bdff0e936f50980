// Package handler implements the HTTP handlers of the CLA service.
package handler

import (
	"encoding/json"
	"errors"
	"net/http"

	"cla/internal/cla"
	"cla/internal/webhook"
	"cla/pkg/logger"
	"cla/pkg/serrors"
)

// Deps holds the services the handlers delegate to.
type Deps struct {
	Webhook webhook.Service
	CLA     cla.Service
}

type Handler struct {
	deps Deps
}

func New(deps Deps) *Handler {
	return &Handler{deps: deps}
}

func writeJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(body)
}

// errorBody is the JSON shape of every error response.
type errorBody struct {
	Error string `json:"error"`
}

// writeError maps a semantic error to its HTTP status. The error message is
// exposed to the client for every kind except internal failures, which are
// logged and masked.
func (h Handler) writeError(w http.ResponseWriter, r *http.Request, err error) {
	var serr *serrors.Error
	if errors.As(err, &serr) {
		switch {
		case serr.Is(serrors.ErrBadRequest):
			writeJSON(w, http.StatusBadRequest, errorBody{Error: serr.Message()})

			return
		case serr.Is(serrors.ErrUnauthorized):
			writeJSON(w, http.StatusUnauthorized, errorBody{Error: serr.Message()})

			return
		case serr.Is(serrors.ErrForbidden):
			writeJSON(w, http.StatusForbidden, errorBody{Error: serr.Message()})

			return
		case serr.Is(serrors.ErrNotFound):
			writeJSON(w, http.StatusNotFound, errorBody{Error: serr.Message()})

			return
		case serr.Is(serrors.ErrUnavailable):
			writeJSON(w, http.StatusServiceUnavailable, errorBody{Error: serr.Message()})

			return
		}
	}

	logger.Error(r.Context(), err.Error())
	writeJSON(w, http.StatusInternalServerError, errorBody{Error: "internal server error"})
}
