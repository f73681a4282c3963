package dsl

import (
	"context"
	"errors"
	"fmt"
	"sort"

	cs "github.com/wcc-platform/contentschema"
	"github.com/wcc-platform/contentschema/i18n"
	js "github.com/wcc-platform/contentschema/jsonschema"
)

// ObjectBuilder accumulates fields and policies for an object schema.
// A builder is not safe for concurrent use; the schema it builds is.
type ObjectBuilder struct {
	fields   map[string]cs.Schema
	required []string
	unknown  cs.UnknownPolicy
	desc     string
	errs     []error
}

// Object starts an object schema. Unknown keys are accepted unless
// UnknownStrict is called, matching JSON Schema's default.
func Object() *ObjectBuilder {
	return &ObjectBuilder{fields: map[string]cs.Schema{}}
}

// Field declares a property. Declaring the same name twice is a build error.
func (b *ObjectBuilder) Field(name string, s cs.Schema) *ObjectBuilder {
	switch {
	case name == "":
		b.errs = append(b.errs, errors.New("dsl: empty field name"))
	case s == nil:
		b.errs = append(b.errs, fmt.Errorf("dsl: field %q has nil schema", name))
	default:
		if _, dup := b.fields[name]; dup {
			b.errs = append(b.errs, fmt.Errorf("dsl: field %q declared twice", name))
			return b
		}
		b.fields[name] = s
	}
	return b
}

// Require marks declared fields as required. Order is kept for JSON Schema output.
func (b *ObjectBuilder) Require(names ...string) *ObjectBuilder {
	b.required = append(b.required, names...)
	return b
}

// UnknownStrict rejects keys that were not declared (additionalProperties: false).
func (b *ObjectBuilder) UnknownStrict() *ObjectBuilder {
	b.unknown = cs.UnknownStrict
	return b
}

// UnknownPassthrough accepts undeclared keys without checking them.
func (b *ObjectBuilder) UnknownPassthrough() *ObjectBuilder {
	b.unknown = cs.UnknownPassthrough
	return b
}

// Describe sets the JSON Schema description.
func (b *ObjectBuilder) Describe(desc string) *ObjectBuilder {
	b.desc = desc
	return b
}

// Build validates the declaration and returns an immutable schema.
func (b *ObjectBuilder) Build() (cs.Schema, error) {
	errs := append([]error(nil), b.errs...)
	seen := make(map[string]struct{}, len(b.required))
	for _, r := range b.required {
		if _, ok := b.fields[r]; !ok {
			errs = append(errs, fmt.Errorf("dsl: required field %q is not declared", r))
		}
		if _, dup := seen[r]; dup {
			errs = append(errs, fmt.Errorf("dsl: field %q required twice", r))
		}
		seen[r] = struct{}{}
	}
	if len(errs) > 0 {
		return nil, errors.Join(errs...)
	}
	o := &objectSchema{
		fields:   make(map[string]cs.Schema, len(b.fields)),
		required: seen,
		reqOrder: append([]string(nil), b.required...),
		unknown:  b.unknown,
		desc:     b.desc,
	}
	for k, v := range b.fields {
		o.fields[k] = v
	}
	o.keys = make([]string, 0, len(o.fields))
	for k := range o.fields {
		o.keys = append(o.keys, k)
	}
	sort.Strings(o.keys)
	return o, nil
}

// MustBuild is Build for package-level declarations; it panics on a bad declaration.
func (b *ObjectBuilder) MustBuild() cs.Schema {
	s, err := b.Build()
	if err != nil {
		panic(err)
	}
	return s
}

type objectSchema struct {
	fields   map[string]cs.Schema
	keys     []string // sorted declared keys
	required map[string]struct{}
	reqOrder []string
	unknown  cs.UnknownPolicy
	desc     string
}

var _ cs.Schema = (*objectSchema)(nil)

func (o *objectSchema) Validate(ctx context.Context, v any) error {
	src, ok := v.(map[string]any)
	if !ok {
		return cs.Issues{{Path: "/", Code: cs.CodeInvalidType, Message: i18n.T(cs.CodeInvalidType, map[string]string{"expected": "object"}), Hint: "expected object", Params: map[string]any{"expected": "object", "got": typeName(v)}}}
	}
	failFast := cs.IsFailFast(ctx)
	var iss cs.Issues
	for _, k := range o.keys {
		at := cs.Root().Field(k)
		val, exists := src[k]
		if !exists {
			if _, req := o.required[k]; req {
				iss = cs.AppendIssues(iss, cs.Issue{Path: at.Pointer(), Code: cs.CodeRequired, Message: i18n.T(cs.CodeRequired, nil), Hint: "required property missing", Params: map[string]any{"property": k}})
				if failFast {
					return iss
				}
			}
			continue
		}
		if err := o.fields[k].Validate(ctx, val); err != nil {
			iss = cs.AppendIssues(iss, cs.Rebase(at.Pointer(), cs.IssuesFromErr("/", err))...)
			if failFast {
				return iss
			}
		}
	}
	if o.unknown == cs.UnknownStrict {
		unknown := make([]string, 0)
		for k := range src {
			if _, known := o.fields[k]; !known {
				unknown = append(unknown, k)
			}
		}
		sort.Strings(unknown)
		for _, k := range unknown {
			iss = cs.AppendIssues(iss, cs.Issue{Path: cs.Root().Field(k).Pointer(), Code: cs.CodeUnknownKey, Message: i18n.T(cs.CodeUnknownKey, nil), Params: map[string]any{"property": k}})
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

func (o *objectSchema) JSONSchema() (*js.Schema, error) {
	out := &js.Schema{Type: "object", Description: o.desc, Properties: make(map[string]*js.Schema, len(o.fields))}
	for _, k := range o.keys {
		fs, err := o.fields[k].JSONSchema()
		if err != nil {
			return nil, fmt.Errorf("property %q: %w", k, err)
		}
		out.Properties[k] = fs
	}
	if len(o.reqOrder) > 0 {
		out.Required = append([]string(nil), o.reqOrder...)
	}
	if o.unknown == cs.UnknownStrict {
		out.AdditionalProperties = js.Bool(false)
	}
	return out, nil
}
