package skemabind_test

import (
	"context"
	"strconv"

	goskema "github.com/reoring/goskema"
	js "github.com/reoring/goskema/jsonschema"
)

// numberMapSchema is a stub Schema[map[string]any] that coerces
// numeric-looking string fields to int and rejects non-object input. It
// stands in for a real engine schema so these tests exercise only the
// adapter's contract.
type numberMapSchema struct{}

func (numberMapSchema) Parse(ctx context.Context, v any) (map[string]any, error) {
	m, ok := v.(map[string]any)
	if !ok {
		return nil, goskema.Issues{goskema.Issue{Path: "/", Code: goskema.CodeInvalidType, Message: "expected object"}}
	}
	out := make(map[string]any, len(m))
	for k, fv := range m {
		if s, ok := fv.(string); ok {
			if n, err := strconv.Atoi(s); err == nil {
				out[k] = n
				continue
			}
		}
		out[k] = fv
	}
	return out, nil
}

func (s numberMapSchema) ParseWithMeta(ctx context.Context, v any) (goskema.Decoded[map[string]any], error) {
	m, err := s.Parse(ctx, v)
	return goskema.Decoded[map[string]any]{Value: m, Presence: goskema.PresenceMap{"/": goskema.PresenceSeen}}, err
}

func (numberMapSchema) TypeCheck(ctx context.Context, v any) error { return nil }
func (numberMapSchema) RuleCheck(ctx context.Context, v any) error { return nil }
func (numberMapSchema) Validate(ctx context.Context, v any) error  { return nil }
func (numberMapSchema) ValidateValue(ctx context.Context, v map[string]any) error {
	return nil
}
func (numberMapSchema) JSONSchema() (*js.Schema, error) { return &js.Schema{}, nil }
