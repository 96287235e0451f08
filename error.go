package skemabind

import (
	"errors"
	"fmt"
	"net/http"

	goskema "github.com/reoring/goskema"
)

// Defaults applied whenever a caller omits an explicit status or message.
const (
	DefaultStatusCode    = http.StatusUnprocessableEntity
	DefaultStatusMessage = "Data validation failed"
)

// Error is the normalized validation failure. It carries an HTTP-style status
// code and message for the surrounding framework plus the engine's original
// failure as Cause, preserved in full for caller inspection and logging.
//
// Error is constructed fresh on every failure and never reused.
type Error struct {
	StatusCode    int
	StatusMessage string
	Cause         error
}

// Error summarizes the failure; the full diagnostic stays in Cause.
func (e *Error) Error() string {
	if e.Cause == nil {
		return fmt.Sprintf("skemabind: %s (status %d)", e.StatusMessage, e.StatusCode)
	}
	return fmt.Sprintf("skemabind: %s (status %d): %v", e.StatusMessage, e.StatusCode, e.Cause)
}

// Unwrap exposes the engine failure to errors.Is/As chains.
func (e *Error) Unwrap() error { return e.Cause }

// Issues returns the engine's structured issue list when the cause carries
// one. Mirrors goskema.AsIssues for the wrapped error.
func (e *Error) Issues() (goskema.Issues, bool) {
	if e.Cause == nil {
		return nil, false
	}
	return goskema.AsIssues(e.Cause)
}

// AsError unwraps err into *Error when it is (or wraps) one.
func AsError(err error) (*Error, bool) {
	var e *Error
	if errors.As(err, &e) {
		return e, true
	}
	return nil, false
}
