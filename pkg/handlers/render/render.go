// Package render writes handler responses and maps the error taxonomy to
// HTTP status codes.
package render

import (
	"net/http"

	"github.com/costlens/costlens/pkg/apperrors"
	json "github.com/goccy/go-json"
	"github.com/rs/zerolog"
)

type errorBody struct {
	Error         string   `json:"error"`
	MissingFields []string `json:"missing_fields,omitempty"`
	Key           string   `json:"key,omitempty"`
}

// JSON writes v with the given status. Encode failures are logged; by then
// the status line is already on the wire so nothing else can be done.
func JSON(w http.ResponseWriter, r *http.Request, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)

	if err := json.NewEncoder(w).Encode(v); err != nil {
		zerolog.Ctx(r.Context()).Error().
			Err(err).
			Msg("failed to encode response")
	}
}

// Error maps err onto the wire: validation failures list the missing
// fields, missing keys are echoed back, anything else is a generic 500
// logged server-side without exposing internals.
func Error(w http.ResponseWriter, r *http.Request, err error) {
	appErr, ok := apperrors.As(err)
	if !ok {
		appErr = apperrors.Internal("internal error", err)
	}

	switch appErr.Type {
	case apperrors.TypeValidation:
		JSON(w, r, http.StatusBadRequest, errorBody{
			Error:         "validation failed",
			MissingFields: appErr.Fields,
		})
	case apperrors.TypeNotFound:
		JSON(w, r, http.StatusNotFound, errorBody{
			Error: appErr.Message,
			Key:   appErr.Key,
		})
	default:
		zerolog.Ctx(r.Context()).Error().
			Err(err).
			Msg("request failed")
		JSON(w, r, http.StatusInternalServerError, errorBody{Error: "internal error"})
	}
}

// BadRequest reports a malformed payload before it reaches a service.
func BadRequest(w http.ResponseWriter, r *http.Request, message string) {
	JSON(w, r, http.StatusBadRequest, errorBody{Error: message})
}
