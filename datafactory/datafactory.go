// Package datafactory builds valid page documents for tests and fixtures. Every
// document it hands out has been validated against its registered schema.
package datafactory

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	cs "github.com/wcc-platform/contentschema"
	"github.com/wcc-platform/contentschema/page"
	"github.com/wcc-platform/contentschema/schemas"
)

// Option customises a generated code of conduct page.
type Option func(*page.CodeOfConduct)

// WithID sets the page id.
func WithID(id string) Option { return func(p *page.CodeOfConduct) { p.ID = id } }

// WithItems replaces the conduct items.
func WithItems(items ...page.ConductItem) Option {
	return func(p *page.CodeOfConduct) { p.Items = append([]page.ConductItem{}, items...) }
}

// WithItem appends one conduct item.
func WithItem(item page.ConductItem) Option {
	return func(p *page.CodeOfConduct) { p.Items = append(p.Items, item) }
}

// WithHero replaces the hero section.
func WithHero(h page.HeroSection) Option { return func(p *page.CodeOfConduct) { p.HeroSection = h } }

// WithPage replaces the page section.
func WithPage(s page.Section) Option { return func(p *page.CodeOfConduct) { p.Page = s } }

// NewID returns a fresh page id of the form coc-<uuid>.
func NewID() string { return "coc-" + uuid.NewString() }

// Item returns a complete conduct item numbered n.
func Item(n int) page.ConductItem {
	return page.ConductItem{
		Title:       fmt.Sprintf("Principle %d", n),
		Description: fmt.Sprintf("What principle %d asks of every participant.", n),
		Link:        &page.Link{Title: "Read more", Label: "Details", URI: fmt.Sprintf("/code-of-conduct#principle-%d", n)},
		Items:       []string{"Be respectful", "Be considerate"},
	}
}

// CodeOfConduct returns a code of conduct page with a generated id, a hero
// section, a page section and one conduct item, then applies opts in order.
func CodeOfConduct(opts ...Option) page.CodeOfConduct {
	p := page.CodeOfConduct{
		ID: NewID(),
		HeroSection: page.HeroSection{
			Title:       "Code of Conduct",
			Description: "Our community guidelines.",
			Images: []page.Image{
				{Path: "/images/code-of-conduct-desktop.png", Alt: "Community members", Type: "desktop"},
				{Path: "/images/code-of-conduct-mobile.png", Alt: "Community members", Type: "mobile"},
			},
		},
		Page: page.Section{
			Title:       "Our Pledge",
			Description: "We pledge to make participation in our community a harassment-free experience for everyone.",
			Link:        &page.Link{Label: "Report an incident", URI: "mailto:conduct@example.org"},
		},
		Items: []page.ConductItem{Item(1)},
	}
	for _, o := range opts {
		o(&p)
	}
	if p.Items == nil {
		p.Items = []page.ConductItem{}
	}
	return p
}

// Document converts p to a generic tree and validates it against the code of
// conduct schema. A failing document is returned together with the Issues.
func Document(ctx context.Context, p page.CodeOfConduct) (any, error) {
	doc, err := page.ToDocument(p)
	if err != nil {
		return nil, err
	}
	if err := cs.Validate(ctx, schemas.CodeOfConduct(), doc); err != nil {
		return doc, err
	}
	return doc, nil
}

// MustDocument is Document for tests; it panics when p does not conform.
func MustDocument(p page.CodeOfConduct) any {
	doc, err := Document(context.Background(), p)
	if err != nil {
		panic(fmt.Sprintf("datafactory: %s does not conform: %v", p.ID, err))
	}
	return doc
}
