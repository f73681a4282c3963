package draft7_test

import (
	"context"
	"sort"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	cs "github.com/wcc-platform/contentschema"
	"github.com/wcc-platform/contentschema/draft7"
	js "github.com/wcc-platform/contentschema/jsonschema"
	"github.com/wcc-platform/contentschema/schemas"
)

func compile(t *testing.T) *draft7.Validator {
	t.Helper()
	v, err := draft7.Compile(schemas.MustDocument(schemas.CodeOfConductName))
	require.NoError(t, err)
	return v
}

func decode(t *testing.T, doc string) any {
	t.Helper()
	v, err := cs.Decode(cs.JSONBytes([]byte(doc)), cs.DecodeOpt{})
	require.NoError(t, err)
	return v
}

type finding struct{ Code, Path string }

func findings(err error) []finding {
	if err == nil {
		return nil
	}
	iss, _ := cs.AsIssues(err)
	out := make([]finding, 0, len(iss))
	for _, it := range iss {
		out = append(out, finding{it.Code, it.Path})
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Path != out[j].Path {
			return out[i].Path < out[j].Path
		}
		return out[i].Code < out[j].Code
	})
	return out
}

const minimal = `{"id":"coc-1","heroSection":{"title":"h"},"page":{"title":"p"},"items":[{"title":"Respect"}]}`

func TestValidate_AgreesWithNativeEngine(t *testing.T) {
	v := compile(t)
	ctx := context.Background()

	cases := map[string]struct {
		doc  string
		want []finding
	}{
		"minimal": {doc: minimal},
		"extra top-level key": {
			doc:  `{"id":"coc-1","heroSection":{"title":"h"},"page":{"title":"p"},"items":[],"extra":"x"}`,
			want: []finding{{cs.CodeUnknownKey, "/extra"}},
		},
		"empty item title": {
			doc:  `{"id":"coc-1","heroSection":{"title":"h"},"page":{"title":"p"},"items":[{"title":""}]}`,
			want: []finding{{cs.CodeTooShort, "/items/0/title"}},
		},
		"full item": {
			doc: `{"id":"coc-1","heroSection":{"title":"h"},"page":{"title":"p"},"items":[
				{"title":"Respect","description":"Be kind","link":{"label":"More","uri":"/coc"},"items":["Be polite","Listen"]}]}`,
		},
		"missing fields": {
			doc:  `{"page":{}}`,
			want: []finding{{cs.CodeRequired, "/heroSection"}, {cs.CodeRequired, "/id"}, {cs.CodeRequired, "/items"}, {cs.CodeRequired, "/page/title"}},
		},
		"wrong types": {
			doc:  `{"id":7,"heroSection":{"title":"h"},"page":{"title":"p"},"items":{}}`,
			want: []finding{{cs.CodeInvalidType, "/id"}, {cs.CodeInvalidType, "/items"}},
		},
		"root not an object": {
			doc:  `[]`,
			want: []finding{{cs.CodeInvalidType, "/"}},
		},
		"only first item checked": {
			doc: `{"id":"coc-1","heroSection":{"title":"h"},"page":{"title":"p"},"items":[
				{"title":"a","items":["x",""]},{"title":""}]}`,
		},
		"nested fragments": {
			doc:  `{"id":"coc-1","heroSection":{"title":"h","images":[{"path":"p","alt":"a"}]},"page":{"title":"p","link":{"label":"l","uri":""}},"items":[]}`,
			want: []finding{{cs.CodeRequired, "/heroSection/images/0/type"}, {cs.CodeTooShort, "/page/link/uri"}},
		},
	}
	for name, tc := range cases {
		t.Run(name, func(t *testing.T) {
			doc := decode(t, tc.doc)
			native := findings(schemas.CodeOfConduct().Validate(ctx, doc))
			compiled := findings(v.Validate(ctx, doc))
			assert.Equal(t, tc.want, native, "native")
			assert.Equal(t, tc.want, compiled, "draft7")
		})
	}
}

func TestValidate_RequiredCarriesPropertyName(t *testing.T) {
	err := compile(t).Validate(context.Background(), decode(t, `{"id":"x","heroSection":{"title":"h"},"page":{"title":"p"}}`))
	iss, ok := cs.AsIssues(err)
	require.True(t, ok)
	require.Len(t, iss, 1)
	assert.Equal(t, "items", iss[0].Params["property"])
}

func TestValidate_FailFast(t *testing.T) {
	ctx := cs.WithFailFast(context.Background(), true)
	err := compile(t).Validate(ctx, decode(t, `{}`))
	iss, ok := cs.AsIssues(err)
	require.True(t, ok)
	assert.Len(t, iss, 1)
}

func TestValidate_CanceledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	assert.ErrorIs(t, compile(t).Validate(ctx, decode(t, minimal)), context.Canceled)
}

func TestValidatorIsASchema(t *testing.T) {
	v := compile(t)
	_, err := cs.ValidateFrom(context.Background(), v, cs.YAMLBytes([]byte("id: coc-1\nheroSection: {title: h}\npage: {title: p}\nitems: [{title: ''}]\n")))
	iss, ok := cs.AsIssues(err)
	require.True(t, ok)
	assert.True(t, iss.HasCode(cs.CodeTooShort, "/items/0/title"))

	doc, err := v.JSONSchema()
	require.NoError(t, err)
	assert.Equal(t, "#/definitions/codeofconductSchema", doc.Ref)
}

func TestCompile_Errors(t *testing.T) {
	_, err := draft7.Compile(nil)
	assert.Error(t, err)

	_, err = draft7.Compile(&js.Schema{Ref: "#/definitions/missing"})
	assert.Error(t, err)
	assert.Panics(t, func() { draft7.MustCompile(nil) })
}
