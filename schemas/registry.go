package schemas

import (
	"fmt"
	"sort"

	cs "github.com/wcc-platform/contentschema"
	js "github.com/wcc-platform/contentschema/jsonschema"
)

// Published schema names.
const (
	LinkName          = "linkSchema"
	ImageName         = "imageSchema"
	SectionName       = "sectionSchema"
	HeroSectionName   = "heroSectionSchema"
	CodeOfConductName = "codeofconductSchema"
)

var registry = map[string]cs.Schema{
	LinkName:          link,
	ImageName:         image,
	SectionName:       section,
	HeroSectionName:   heroSection,
	CodeOfConductName: codeOfConduct,
}

// UnknownSchemaError is returned for names that are not registered.
type UnknownSchemaError struct{ Name string }

func (e *UnknownSchemaError) Error() string { return fmt.Sprintf("schemas: unknown schema %q", e.Name) }

// Lookup returns the schema registered under name.
func Lookup(name string) (cs.Schema, error) {
	s, ok := registry[name]
	if !ok {
		return nil, &UnknownSchemaError{Name: name}
	}
	return s, nil
}

// Names lists registered schema names in sorted order.
func Names() []string {
	out := make([]string, 0, len(registry))
	for k := range registry {
		out = append(out, k)
	}
	sort.Strings(out)
	return out
}

// Document returns the published JSON Schema document for name: a root $ref
// pointing at the single entry of definitions. The result is freshly built on
// every call and may be modified by the caller.
func Document(name string) (*js.Schema, error) {
	s, err := Lookup(name)
	if err != nil {
		return nil, err
	}
	def, err := s.JSONSchema()
	if err != nil {
		return nil, fmt.Errorf("schemas: project %s: %w", name, err)
	}
	return &js.Schema{
		Ref:         "#/definitions/" + name,
		Definitions: map[string]*js.Schema{name: def},
	}, nil
}

// MustDocument is Document for registered names known at compile time.
func MustDocument(name string) *js.Schema {
	d, err := Document(name)
	if err != nil {
		panic(err)
	}
	return d
}
