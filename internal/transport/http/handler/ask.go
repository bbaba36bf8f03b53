package handler

import (
	"encoding/json"
	"errors"
	stdhttp "net/http"
	"strings"

	DTO_http "openrouter_relay/internal/DTO/http"
	"openrouter_relay/internal/apierror"
	"openrouter_relay/internal/service/relay"
)

// NewAskHandler wires the single relay route onto the relay service.
func NewAskHandler(svc relay.Relay) stdhttp.HandlerFunc {
	return func(w stdhttp.ResponseWriter, r *stdhttp.Request) {
		if ct := r.Header.Get("Content-Type"); ct != "" && !strings.Contains(ct, "application/json") {
			writeError(w, stdhttp.StatusUnsupportedMediaType, "Content-Type must be application/json")
			return
		}

		var req DTO_http.Request
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			writeError(w, stdhttp.StatusBadRequest, "invalid request body")
			return
		}
		// Presence-only check: whitespace content is the upstream's problem.
		if req.Question == "" {
			writeError(w, stdhttp.StatusBadRequest, "question is required")
			return
		}

		answer, err := svc.Ask(r.Context(), req.Question, r.Header.Get("X-API-Key"))
		if err != nil {
			apiErr := asAPIError(err)
			writeError(w, apiErr.Status, apiErr.Message)
			return
		}

		writeJSON(w, stdhttp.StatusOK, DTO_http.Response{Response: answer})
	}
}

// asAPIError recovers the relay error carried by err; anything untyped
// becomes a generic 500 with the cause preserved.
func asAPIError(err error) *apierror.Error {
	var apiErr *apierror.Error
	if errors.As(err, &apiErr) {
		return apiErr
	}
	return apierror.Internal(err)
}

func writeError(w stdhttp.ResponseWriter, code int, message string) {
	writeJSON(w, code, DTO_http.ErrorResponse{Detail: DTO_http.ErrorDetail{Message: message}})
}

func writeJSON(w stdhttp.ResponseWriter, code int, v any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(code)
	_ = json.NewEncoder(w).Encode(v)
}
