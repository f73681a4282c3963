// Package jsonschema is the draft-07 subset used to publish content schemas.
package jsonschema

// Draft07 is the meta-schema URI written into published documents on request.
const Draft07 = "http://json-schema.org/draft-07/schema#"

// Schema is a JSON Schema representation covering the keywords content
// schemas use. Field order follows the order keywords are usually written in.
type Schema struct {
	SchemaURI   string             `json:"$schema,omitempty"`
	Ref         string             `json:"$ref,omitempty"`
	Definitions map[string]*Schema `json:"definitions,omitempty"`

	Type        string `json:"type,omitempty"`
	Description string `json:"description,omitempty"`

	// String
	MinLength *int `json:"minLength,omitempty"`
	MaxLength *int `json:"maxLength,omitempty"`

	// Object
	Properties           map[string]*Schema `json:"properties,omitempty"`
	AdditionalProperties *bool              `json:"additionalProperties,omitempty"`
	Required             []string           `json:"required,omitempty"`

	// Array
	Items    *Items `json:"items,omitempty"`
	MinItems *int   `json:"minItems,omitempty"`
	MaxItems *int   `json:"maxItems,omitempty"`
}

// Int returns a pointer to n for the optional numeric keywords.
func Int(n int) *int { return &n }

// Bool returns a pointer to b for additionalProperties.
func Bool(b bool) *bool { return &b }

// Clone returns a deep copy of s. Published documents are assembled from
// shared fragment projections, so callers that want to edit a document clone it first.
func (s *Schema) Clone() *Schema {
	if s == nil {
		return nil
	}
	out := *s
	if s.Definitions != nil {
		out.Definitions = make(map[string]*Schema, len(s.Definitions))
		for k, v := range s.Definitions {
			out.Definitions[k] = v.Clone()
		}
	}
	if s.Properties != nil {
		out.Properties = make(map[string]*Schema, len(s.Properties))
		for k, v := range s.Properties {
			out.Properties[k] = v.Clone()
		}
	}
	if s.Required != nil {
		out.Required = append([]string(nil), s.Required...)
	}
	if s.Items != nil {
		it := Items{Schema: s.Items.Schema.Clone()}
		for _, e := range s.Items.Tuple {
			it.Tuple = append(it.Tuple, e.Clone())
		}
		out.Items = &it
	}
	out.MinLength = cloneInt(s.MinLength)
	out.MaxLength = cloneInt(s.MaxLength)
	out.MinItems = cloneInt(s.MinItems)
	out.MaxItems = cloneInt(s.MaxItems)
	if s.AdditionalProperties != nil {
		out.AdditionalProperties = Bool(*s.AdditionalProperties)
	}
	return &out
}

func cloneInt(p *int) *int {
	if p == nil {
		return nil
	}
	return Int(*p)
}
