package dsl

import (
	"context"
	"fmt"
	"strconv"

	cs "github.com/wcc-platform/contentschema"
	"github.com/wcc-platform/contentschema/i18n"
	js "github.com/wcc-platform/contentschema/jsonschema"
)

// ArrayBuilder exposes chaining methods for array schemas while implementing Schema.
// Every option returns a new value.
type ArrayBuilder interface {
	cs.Schema
	Min(n int) ArrayBuilder
	Max(n int) ArrayBuilder
}

// Array returns a schema whose every element must conform to elem.
func Array(elem cs.Schema) ArrayBuilder {
	return arraySchema{elem: elem, minLen: -1, maxLen: -1}
}

// Tuple returns the positional form of draft-07 "items": element i is checked
// against elems[i]; elements beyond len(elems) are not checked.
func Tuple(elems ...cs.Schema) ArrayBuilder {
	return arraySchema{tuple: append([]cs.Schema{}, elems...), minLen: -1, maxLen: -1}
}

type arraySchema struct {
	elem   cs.Schema   // set for Array
	tuple  []cs.Schema // set for Tuple (non-nil, maybe empty)
	minLen int
	maxLen int
}

func (a arraySchema) Min(n int) ArrayBuilder { a.minLen = n; return a }
func (a arraySchema) Max(n int) ArrayBuilder { a.maxLen = n; return a }

// schemaAt returns the schema element i is checked against, or nil.
func (a arraySchema) schemaAt(i int) cs.Schema {
	if a.tuple == nil {
		return a.elem
	}
	if i < len(a.tuple) {
		return a.tuple[i]
	}
	return nil
}

func (a arraySchema) Validate(ctx context.Context, v any) error {
	src, ok := v.([]any)
	if !ok {
		return cs.Issues{{Path: "/", Code: cs.CodeInvalidType, Message: i18n.T(cs.CodeInvalidType, map[string]string{"expected": "array"}), Hint: "expected array", Params: map[string]any{"expected": "array", "got": typeName(v)}}}
	}
	failFast := cs.IsFailFast(ctx)
	var iss cs.Issues
	if a.minLen >= 0 && len(src) < a.minLen {
		iss = cs.AppendIssues(iss, cs.Issue{Path: "/", Code: cs.CodeTooSmall, Message: i18n.T(cs.CodeTooSmall, nil), Params: map[string]any{"min": a.minLen, "got": len(src)}})
		if failFast {
			return iss
		}
	}
	if a.maxLen >= 0 && len(src) > a.maxLen {
		iss = cs.AppendIssues(iss, cs.Issue{Path: "/", Code: cs.CodeTooBig, Message: i18n.T(cs.CodeTooBig, nil), Params: map[string]any{"max": a.maxLen, "got": len(src)}})
		if failFast {
			return iss
		}
	}
	for i, ev := range src {
		s := a.schemaAt(i)
		if s == nil {
			break
		}
		if err := s.Validate(ctx, ev); err != nil {
			iss = cs.AppendIssues(iss, cs.Rebase("/"+strconv.Itoa(i), cs.IssuesFromErr("/", err))...)
			if failFast {
				return iss
			}
		}
	}
	if len(iss) > 0 {
		return iss
	}
	return nil
}

func (a arraySchema) JSONSchema() (*js.Schema, error) {
	out := &js.Schema{Type: "array"}
	if a.tuple == nil {
		if a.elem != nil {
			es, err := a.elem.JSONSchema()
			if err != nil {
				return nil, fmt.Errorf("items: %w", err)
			}
			out.Items = &js.Items{Schema: es}
		}
	} else {
		it := &js.Items{Tuple: make([]*js.Schema, 0, len(a.tuple))}
		for i, e := range a.tuple {
			es, err := e.JSONSchema()
			if err != nil {
				return nil, fmt.Errorf("items[%d]: %w", i, err)
			}
			it.Tuple = append(it.Tuple, es)
		}
		out.Items = it
	}
	if a.minLen >= 0 {
		out.MinItems = js.Int(a.minLen)
	}
	if a.maxLen >= 0 {
		out.MaxItems = js.Int(a.maxLen)
	}
	return out, nil
}
