package jsonschema

import (
	"bytes"
	"errors"

	j "github.com/goccy/go-json"
)

// Items holds the draft-07 "items" keyword, which is either one schema applied
// to every element or a tuple of positional schemas. Exactly one of Schema and
// Tuple is set. An empty Tuple marshals as [].
type Items struct {
	Schema *Schema
	Tuple  []*Schema
}

// IsTuple reports whether the keyword is in positional form.
func (it Items) IsTuple() bool { return it.Schema == nil }

func (it Items) MarshalJSON() ([]byte, error) {
	if it.Schema != nil {
		return j.Marshal(it.Schema)
	}
	if it.Tuple == nil {
		return []byte("[]"), nil
	}
	return j.Marshal(it.Tuple)
}

func (it *Items) UnmarshalJSON(b []byte) error {
	b = bytes.TrimSpace(b)
	if len(b) == 0 {
		return errors.New("jsonschema: empty items")
	}
	switch b[0] {
	case '[':
		var tuple []*Schema
		if err := j.Unmarshal(b, &tuple); err != nil {
			return err
		}
		*it = Items{Tuple: tuple}
		if it.Tuple == nil {
			it.Tuple = []*Schema{}
		}
		return nil
	case '{':
		var s Schema
		if err := j.Unmarshal(b, &s); err != nil {
			return err
		}
		*it = Items{Schema: &s}
		return nil
	}
	return errors.New("jsonschema: items must be an object or an array")
}
