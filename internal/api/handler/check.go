package handler

import (
	"net/http"

	"cla/pkg/serrors"
)

// maxCheckInputs caps how many identifiers a single check request may carry
// per parameter.
const maxCheckInputs = 100

// Check resolves the CLA status of a set of contributors. Each query
// parameter may be repeated; every provided value appears as a key in the
// corresponding response map.
func (h Handler) Check(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()
	emails := query["emails"]
	githubUsernames := query["github_usernames"]
	launchpadUsernames := query["launchpad_usernames"]

	if len(emails) > maxCheckInputs || len(githubUsernames) > maxCheckInputs || len(launchpadUsernames) > maxCheckInputs {
		h.writeError(w, r, serrors.With(serrors.ErrBadRequest, "too many values, at most %d allowed per parameter", maxCheckInputs))

		return
	}

	result, err := h.deps.CLA.CheckCLA(r.Context(), emails, githubUsernames, launchpadUsernames)
	if err != nil {
		h.writeError(w, r, err)

		return
	}

	writeJSON(w, http.StatusOK, result)
}
