package contentschema

import (
	"context"

	js "github.com/wcc-platform/contentschema/jsonschema"
)

// Schema is a declarative shape constraint. Implementations hold no mutable
// state after construction, so one value can be shared by any number of parent
// schemas and goroutines.
type Schema interface {
	// Validate checks v (a generic tree as produced by a Source: map[string]any,
	// []any, string, json.Number, bool or nil) and returns Issues when it does
	// not conform. Paths are relative to v.
	Validate(ctx context.Context, v any) error

	// JSONSchema projects the schema into a JSON Schema representation.
	JSONSchema() (*js.Schema, error)
}

// Is returns true if v conforms to the schema s.
func Is(ctx context.Context, s Schema, v any) bool {
	return s.Validate(ctx, v) == nil
}

// Validate runs s against v and normalizes any error to Issues.
func Validate(ctx context.Context, s Schema, v any) error {
	if s == nil {
		return singleIssue(CodeParseError, "nil schema")
	}
	if err := s.Validate(ctx, v); err != nil {
		return IssuesFromErr("/", err)
	}
	return nil
}

// ---- validation-time context options ----

type contextKey int

const (
	_ctxKeyFailFast contextKey = iota
)

// WithFailFast returns a child context that marks fail-fast validation.
// Schema implementations stop at the first issue when it is set.
func WithFailFast(ctx context.Context, enabled bool) context.Context {
	return context.WithValue(ctx, _ctxKeyFailFast, enabled)
}

// IsFailFast reports whether the current validation should stop on the first issue.
func IsFailFast(ctx context.Context) bool {
	b, _ := ctx.Value(_ctxKeyFailFast).(bool)
	return b
}

func singleIssue(code, msg string) Issues {
	return AppendIssues(nil, Issue{Path: "/", Code: code, Message: msg})
}
