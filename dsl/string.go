package dsl

import (
	"context"
	"strconv"
	"unicode/utf8"

	cs "github.com/wcc-platform/contentschema"
	"github.com/wcc-platform/contentschema/i18n"
	js "github.com/wcc-platform/contentschema/jsonschema"
)

// StringBuilder exposes chaining options for string schemas while implementing Schema.
// Every option returns a new value; the receiver is left untouched.
type StringBuilder interface {
	cs.Schema
	Min(n int) StringBuilder
	Max(n int) StringBuilder
	Describe(desc string) StringBuilder
}

// String returns a string schema without length bounds.
func String() StringBuilder { return stringSchema{minLen: -1, maxLen: -1} }

type stringSchema struct {
	minLen int
	maxLen int
	desc   string
}

func (s stringSchema) Min(n int) StringBuilder         { s.minLen = n; return s }
func (s stringSchema) Max(n int) StringBuilder         { s.maxLen = n; return s }
func (s stringSchema) Describe(d string) StringBuilder { s.desc = d; return s }

func (s stringSchema) Validate(ctx context.Context, v any) error {
	str, ok := v.(string)
	if !ok {
		return cs.Issues{{Path: "/", Code: cs.CodeInvalidType, Message: i18n.T(cs.CodeInvalidType, map[string]string{"expected": "string"}), Hint: "expected string", Params: map[string]any{"expected": "string", "got": typeName(v)}}}
	}
	// JSON Schema counts code points, not bytes.
	n := utf8.RuneCountInString(str)
	if s.minLen >= 0 && n < s.minLen {
		return cs.Issues{{Path: "/", Code: cs.CodeTooShort, Message: i18n.T(cs.CodeTooShort, map[string]string{"min": strconv.Itoa(s.minLen)}), Params: map[string]any{"min": s.minLen, "got": n}}}
	}
	if s.maxLen >= 0 && n > s.maxLen {
		return cs.Issues{{Path: "/", Code: cs.CodeTooLong, Message: i18n.T(cs.CodeTooLong, map[string]string{"max": strconv.Itoa(s.maxLen)}), Params: map[string]any{"max": s.maxLen, "got": n}}}
	}
	return nil
}

func (s stringSchema) JSONSchema() (*js.Schema, error) {
	out := &js.Schema{Type: "string", Description: s.desc}
	if s.minLen >= 0 {
		out.MinLength = js.Int(s.minLen)
	}
	if s.maxLen >= 0 {
		out.MaxLength = js.Int(s.maxLen)
	}
	return out, nil
}

// typeName names the JSON type of a decoded value for issue params.
func typeName(v any) string {
	switch v.(type) {
	case nil:
		return "null"
	case string:
		return "string"
	case bool:
		return "boolean"
	case map[string]any:
		return "object"
	case []any:
		return "array"
	default:
		return "number"
	}
}
