package page_test

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/wcc-platform/contentschema/page"
)

func TestToDocument_CodeOfConduct(t *testing.T) {
	doc, err := page.ToDocument(page.CodeOfConduct{
		ID:          "coc-1",
		HeroSection: page.HeroSection{Title: "Code of Conduct"},
		Page:        page.Section{Title: "Pledge", Link: &page.Link{Label: "Report", URI: "/report"}},
		Items:       []page.ConductItem{{Title: "Respect", Items: []string{"Be polite"}}},
	})
	require.NoError(t, err)

	want := map[string]any{
		"id":          "coc-1",
		"heroSection": map[string]any{"title": "Code of Conduct"},
		"page": map[string]any{
			"title": "Pledge",
			"link":  map[string]any{"label": "Report", "uri": "/report"},
		},
		"items": []any{map[string]any{"title": "Respect", "items": []any{"Be polite"}}},
	}
	assert.Equal(t, want, doc)
}

func TestToDocument_NumbersStayExact(t *testing.T) {
	doc, err := page.ToDocument(map[string]any{"n": 12345678901234567})
	require.NoError(t, err)
	assert.Equal(t, json.Number("12345678901234567"), doc.(map[string]any)["n"])
}

func TestToDocument_EncodeError(t *testing.T) {
	_, err := page.ToDocument(map[string]any{"ch": make(chan int)})
	assert.Error(t, err)
}

func TestType(t *testing.T) {
	assert.Equal(t, "code_of_conduct", page.CodeOfConductPage.ID())
	assert.Equal(t, "CODE_OF_CONDUCT", page.CodeOfConductPage.String())
	assert.Len(t, page.Types(), 4)

	for _, in := range []string{"CODE_OF_CONDUCT", "code_of_conduct"} {
		got, err := page.ParseType(in)
		require.NoError(t, err)
		assert.Equal(t, page.CodeOfConductPage, got)
	}
	_, err := page.ParseType("events")
	assert.Error(t, err)
}
