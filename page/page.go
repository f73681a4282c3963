// Package page holds the typed form of CMS page documents. The JSON tags match
// the published schemas, so a value encodes to a document those schemas accept
// once its required fields are set.
package page

import (
	"bytes"
	"fmt"

	j "github.com/goccy/go-json"
)

// Link is a call-to-action link.
type Link struct {
	Title string `json:"title,omitempty"`
	Label string `json:"label"`
	URI   string `json:"uri"`
}

// Image is a responsive image reference. Type is "desktop" or "mobile".
type Image struct {
	Path string `json:"path"`
	Alt  string `json:"alt"`
	Type string `json:"type"`
}

// Section is a generic titled block of page content.
type Section struct {
	Title       string   `json:"title"`
	Description string   `json:"description,omitempty"`
	Link        *Link    `json:"link,omitempty"`
	Topics      []string `json:"topics,omitempty"`
}

// HeroSection is the banner at the top of a page.
type HeroSection struct {
	Title       string  `json:"title"`
	Description string  `json:"description,omitempty"`
	Images      []Image `json:"images,omitempty"`
}

// ConductItem is one entry of the code of conduct list.
type ConductItem struct {
	Title       string   `json:"title"`
	Description string   `json:"description,omitempty"`
	Link        *Link    `json:"link,omitempty"`
	Items       []string `json:"items,omitempty"`
}

// CodeOfConduct is the code of conduct page.
type CodeOfConduct struct {
	ID          string        `json:"id"`
	HeroSection HeroSection   `json:"heroSection"`
	Page        Section       `json:"page"`
	Items       []ConductItem `json:"items"`
}

// ToDocument converts a typed value into the generic tree validated by
// schemas: map[string]any, []any, string, json.Number, bool and nil.
func ToDocument(v any) (any, error) {
	b, err := j.Marshal(v)
	if err != nil {
		return nil, fmt.Errorf("page: encode: %w", err)
	}
	dec := j.NewDecoder(bytes.NewReader(b))
	dec.UseNumber()
	var out any
	if err := dec.Decode(&out); err != nil {
		return nil, fmt.Errorf("page: decode: %w", err)
	}
	return out, nil
}
