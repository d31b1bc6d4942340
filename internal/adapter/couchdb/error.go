package couchdb

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"

	"github.com/goydb/alldocs/pkg/model"
	"github.com/goydb/alldocs/pkg/port"
)

// Error is a failed request, the server reports
// the error name and reason in the body
type Error struct {
	StatusCode int
	ErrorName  string `json:"error"`
	Reason     string `json:"reason"`
}

func (e *Error) Error() string {
	return fmt.Sprintf("couchdb: %d %s: %s", e.StatusCode, e.ErrorName, e.Reason)
}

// Is maps status codes to the port errors
func (e *Error) Is(target error) bool {
	switch e.StatusCode {
	case http.StatusNotFound:
		return target == port.ErrNotFound
	case http.StatusConflict:
		return target == port.ErrConflict
	case http.StatusBadRequest:
		return target == model.ErrInvalidOptions
	}
	return false
}

func newError(resp *http.Response) error {
	e := &Error{StatusCode: resp.StatusCode}
	data, err := io.ReadAll(io.LimitReader(resp.Body, 1<<16))
	if err == nil {
		err = json.Unmarshal(data, e)
	}
	if err != nil || e.ErrorName == "" {
		e.ErrorName = http.StatusText(resp.StatusCode)
		e.Reason = string(data)
	}
	return e
}

func IsNotFound(err error) bool {
	return errors.Is(err, port.ErrNotFound)
}
