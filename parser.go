package skemabind

import (
	"context"
	"errors"

	goskema "github.com/reoring/goskema"
)

// ValueFunc produces a raw value that is not available yet: a deferred body
// read, a pending lookup, the result of another handler. Its error is an
// extraction failure and propagates unchanged.
type ValueFunc func(ctx context.Context) (any, error)

// ErrNilValueFunc reports a nil ValueFunc passed where a value producer was
// required.
var ErrNilValueFunc = errors.New("skemabind: nil ValueFunc")

// ParseData validates a plain value against s. The value is passed to the
// engine as-is; it is never treated as a future. Use ParseDataFrom for
// deferred values.
func ParseData[T any](ctx context.Context, v any, s goskema.Schema[T], opts ...Opt) (T, error) {
	return Apply(ctx, s, v, opts...)
}

// ParseDataFrom awaits fn and validates the produced value against s.
// An error from fn is an extraction failure and is returned unchanged.
func ParseDataFrom[T any](ctx context.Context, fn ValueFunc, s goskema.Schema[T], opts ...Opt) (T, error) {
	var zero T
	if fn == nil {
		return zero, ErrNilValueFunc
	}
	v, err := fn(ctx)
	if err != nil {
		return zero, err
	}
	return Apply(ctx, s, v, opts...)
}

// Parser binds one schema and one default error configuration so callers can
// validate many values against the same shape, e.g. as a response-transform
// hook. The bound defaults are fixed at construction; per-call opts override
// them for that call only.
type Parser[T any] struct {
	schema goskema.Schema[T]
	opt    Opt
}

// NewParser binds s with the given default error configuration.
func NewParser[T any](s goskema.Schema[T], opts ...Opt) *Parser[T] {
	return &Parser[T]{schema: s, opt: resolveOpt(opts)}
}

// Parse validates a plain value against the bound schema.
func (p *Parser[T]) Parse(ctx context.Context, v any, opts ...Opt) (T, error) {
	return Apply(ctx, p.schema, v, p.callOpts(opts)...)
}

// ParseFrom awaits fn and validates the produced value against the bound
// schema. An error from fn propagates unchanged.
func (p *Parser[T]) ParseFrom(ctx context.Context, fn ValueFunc, opts ...Opt) (T, error) {
	return ParseDataFrom(ctx, fn, p.schema, p.callOpts(opts)...)
}

// callOpts layers per-call opts over the bound default without mutating it.
func (p *Parser[T]) callOpts(opts []Opt) []Opt {
	merged := make([]Opt, 0, len(opts)+1)
	merged = append(merged, p.opt)
	return append(merged, opts...)
}
