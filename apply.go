package skemabind

import (
	"context"

	goskema "github.com/reoring/goskema"
)

// Opt configures the error produced when validation fails. Zero fields fall
// back to the previous option in the list, then to the package defaults, so
// callers can override the status code and the message independently.
type Opt struct {
	StatusCode    int
	StatusMessage string
}

// resolveOpt merges opts left to right on top of the package defaults.
// Later non-zero fields win.
func resolveOpt(opts []Opt) Opt {
	out := Opt{StatusCode: DefaultStatusCode, StatusMessage: DefaultStatusMessage}
	for _, o := range opts {
		if o.StatusCode != 0 {
			out.StatusCode = o.StatusCode
		}
		if o.StatusMessage != "" {
			out.StatusMessage = o.StatusMessage
		}
	}
	return out
}

// Apply runs s.Parse against raw exactly once and normalizes the outcome.
//
// On success it returns the engine's parsed value verbatim, coercions
// included. On failure it returns a *Error carrying the resolved status
// code/message and the engine's failure as Cause. Apply never retries and
// never logs.
func Apply[T any](ctx context.Context, s goskema.Schema[T], raw any, opts ...Opt) (T, error) {
	var zero T
	opt := resolveOpt(opts)
	if s == nil {
		// Align with the engine: ParseFrom reports a nil schema as a parse
		// issue rather than panicking.
		return zero, &Error{
			StatusCode:    opt.StatusCode,
			StatusMessage: opt.StatusMessage,
			Cause:         goskema.Issues{goskema.Issue{Path: "/", Code: goskema.CodeParseError, Message: "nil schema"}},
		}
	}
	v, err := s.Parse(ctx, raw)
	if err != nil {
		return zero, &Error{StatusCode: opt.StatusCode, StatusMessage: opt.StatusMessage, Cause: err}
	}
	return v, nil
}
