// Package draft7 validates documents against published schema documents with a
// general-purpose draft-07 validator. It serves as a second engine next to the
// native one, so a published document can be checked for agreement with the
// schema it was projected from.
package draft7

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"regexp"
	"sort"
	"strings"

	"github.com/santhosh-tekuri/jsonschema/v5"

	cs "github.com/wcc-platform/contentschema"
	"github.com/wcc-platform/contentschema/i18n"
	js "github.com/wcc-platform/contentschema/jsonschema"
)

const resourceURL = "mem:///schema.json"

// Validator is a compiled schema document. It implements contentschema.Schema.
type Validator struct {
	doc      *js.Schema
	compiled *jsonschema.Schema
}

var _ cs.Schema = (*Validator)(nil)

// Compile compiles doc under draft-07 rules.
func Compile(doc *js.Schema) (*Validator, error) {
	if doc == nil {
		return nil, errors.New("draft7: nil document")
	}
	b, err := js.Marshal(doc)
	if err != nil {
		return nil, err
	}
	c := jsonschema.NewCompiler()
	c.Draft = jsonschema.Draft7
	if err := c.AddResource(resourceURL, bytes.NewReader(b)); err != nil {
		return nil, fmt.Errorf("draft7: load schema: %w", err)
	}
	compiled, err := c.Compile(resourceURL)
	if err != nil {
		return nil, fmt.Errorf("draft7: compile schema: %w", err)
	}
	return &Validator{doc: doc.Clone(), compiled: compiled}, nil
}

// MustCompile is Compile for documents known to be well formed.
func MustCompile(doc *js.Schema) *Validator {
	v, err := Compile(doc)
	if err != nil {
		panic(err)
	}
	return v
}

// Validate checks v and reports violations as contentschema.Issues, ordered by path.
func (d *Validator) Validate(ctx context.Context, v any) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	err := d.compiled.Validate(v)
	if err == nil {
		return nil
	}
	var ve *jsonschema.ValidationError
	if !errors.As(err, &ve) {
		return cs.IssuesFromErr("/", err)
	}
	var out cs.Issues
	collect(ve, &out)
	sort.SliceStable(out, func(i, j int) bool { return out[i].Path < out[j].Path })
	if cs.IsFailFast(ctx) && len(out) > 1 {
		out = out[:1]
	}
	return out
}

// JSONSchema returns a copy of the compiled document.
func (d *Validator) JSONSchema() (*js.Schema, error) { return d.doc.Clone(), nil }

func collect(ve *jsonschema.ValidationError, out *cs.Issues) {
	if len(ve.Causes) > 0 {
		for _, c := range ve.Causes {
			collect(c, out)
		}
		return
	}
	*out = cs.AppendIssues(*out, toIssues(ve)...)
}

var quoted = regexp.MustCompile(`'([^']*)'`)

func toIssues(ve *jsonschema.ValidationError) []cs.Issue {
	at := cs.At(ve.InstanceLocation)
	keyword := ve.KeywordLocation
	if i := strings.LastIndexByte(keyword, '/'); i >= 0 {
		keyword = keyword[i+1:]
	}
	switch keyword {
	case "required":
		return perName(at, ve.Message, cs.CodeRequired)
	case "additionalProperties":
		return perName(at, ve.Message, cs.CodeUnknownKey)
	case "type":
		return []cs.Issue{at.Issue(cs.CodeInvalidType, ve.Message)}
	case "minLength":
		return []cs.Issue{at.Issue(cs.CodeTooShort, ve.Message)}
	case "maxLength":
		return []cs.Issue{at.Issue(cs.CodeTooLong, ve.Message)}
	case "minItems":
		return []cs.Issue{at.Issue(cs.CodeTooSmall, ve.Message)}
	case "maxItems":
		return []cs.Issue{at.Issue(cs.CodeTooBig, ve.Message)}
	}
	return []cs.Issue{at.Issue(keyword, ve.Message)}
}

// perName splits messages such as "missing properties: 'id', 'page'" into one
// issue per property, located at the property itself.
func perName(at cs.PathRef, msg, code string) []cs.Issue {
	m := quoted.FindAllStringSubmatch(msg, -1)
	if len(m) == 0 {
		return []cs.Issue{at.Issue(code, msg)}
	}
	out := make([]cs.Issue, 0, len(m))
	for _, sm := range m {
		out = append(out, at.Field(sm[1]).Issue(code, i18n.T(code, nil), "property", sm[1]))
	}
	return out
}
