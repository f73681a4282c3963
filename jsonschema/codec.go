package jsonschema

import (
	"fmt"

	j "github.com/goccy/go-json"
	"gopkg.in/yaml.v3"
)

// Marshal renders s as indented JSON with a trailing newline, the form schema
// files are published in.
func Marshal(s *Schema) ([]byte, error) {
	b, err := j.MarshalIndent(s, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("jsonschema: marshal: %w", err)
	}
	return append(b, '\n'), nil
}

// Unmarshal parses a JSON schema document.
func Unmarshal(b []byte) (*Schema, error) {
	var s Schema
	if err := j.Unmarshal(b, &s); err != nil {
		return nil, fmt.Errorf("jsonschema: unmarshal: %w", err)
	}
	return &s, nil
}

// UnmarshalYAML parses a schema document written in YAML. The YAML is decoded
// to a generic tree first and re-read through the JSON path so the "items"
// union decodes the same way in both formats.
func UnmarshalYAML(b []byte) (*Schema, error) {
	var tree any
	if err := yaml.Unmarshal(b, &tree); err != nil {
		return nil, fmt.Errorf("jsonschema: yaml: %w", err)
	}
	jb, err := j.Marshal(tree)
	if err != nil {
		return nil, fmt.Errorf("jsonschema: yaml: %w", err)
	}
	return Unmarshal(jb)
}
