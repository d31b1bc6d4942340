package handler

import (
	"encoding/json"
	"errors"
	"net/http"
	"strings"

	"github.com/goydb/alldocs/pkg/model"
	"github.com/goydb/alldocs/pkg/port"
)

func WriteError(w http.ResponseWriter, status int, reason string) {
	writeJSON(w, status, ErrorResponse{
		Error:  ErrorName(status),
		Reason: reason,
	})
}

func writeJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v) // nolint: errcheck
}

type OkResponse struct {
	Ok bool `json:"ok"`
}

// ErrorName returns the CouchDB error name of the status e.g. not_found
func ErrorName(status int) string {
	if status == http.StatusConflict {
		return "conflict"
	}
	statusText := strings.ToLower(http.StatusText(status))
	statusText = strings.ReplaceAll(statusText, " ", "_")
	statusText = strings.ReplaceAll(statusText, "'", "")
	return statusText
}

// WriteErrorFor writes the error using the status matching the error
func WriteErrorFor(w http.ResponseWriter, err error) {
	WriteError(w, errorStatus(err), err.Error())
}

func errorStatus(err error) int {
	switch {
	case errors.Is(err, model.ErrInvalidOptions):
		return http.StatusBadRequest
	case errors.Is(err, port.ErrNotFound), errors.Is(err, port.ErrUnknownDatabase):
		return http.StatusNotFound
	case errors.Is(err, port.ErrConflict):
		return http.StatusConflict
	case errors.Is(err, port.ErrDatabaseExists):
		return http.StatusPreconditionFailed
	default:
		return http.StatusInternalServerError
	}
}

type ErrorResponse struct {
	Error  string `json:"error"`
	Reason string `json:"reason"`
}

// errorResponse is the body for err, used where the
// status is already sent
func errorResponse(err error) ErrorResponse {
	return ErrorResponse{
		Error:  ErrorName(errorStatus(err)),
		Reason: err.Error(),
	}
}
