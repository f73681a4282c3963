package contentschema

import (
	"io"

	eng "github.com/wcc-platform/contentschema/internal/engine"
	"github.com/wcc-platform/contentschema/source/gojson"
	yamlsrc "github.com/wcc-platform/contentschema/source/yaml"
)

// Source abstracts over the wire formats a content document can arrive in.
// Sources are single-use: each one is consumed by exactly one ValidateFrom call.
type Source interface {
	// Format names the wire format ("json", "yaml") for diagnostics.
	Format() string
	tokens() eng.TokenSource
}

type engineSource struct {
	format string
	inner  eng.TokenSource
}

func (s engineSource) Format() string          { return s.format }
func (s engineSource) tokens() eng.TokenSource { return s.inner }

// JSONReader wraps an io.Reader as a JSON Source.
func JSONReader(r io.Reader) Source { return engineSource{format: "json", inner: gojson.NewReader(r)} }

// JSONBytes wraps a byte slice as a JSON Source.
func JSONBytes(b []byte) Source { return engineSource{format: "json", inner: gojson.NewBytes(b)} }

// YAMLBytes wraps a YAML document as a Source.
func YAMLBytes(b []byte) Source { return engineSource{format: "yaml", inner: yamlsrc.NewBytes(b)} }

// YAMLReader wraps an io.Reader holding a YAML document as a Source.
func YAMLReader(r io.Reader) Source { return engineSource{format: "yaml", inner: yamlsrc.NewReader(r)} }

// SourceFor picks a Source by format name; anything but "yaml"/"yml" is JSON.
func SourceFor(format string, b []byte) Source {
	switch format {
	case "yaml", "yml":
		return YAMLBytes(b)
	default:
		return JSONBytes(b)
	}
}

func toEngineDup(s Severity) eng.DuplicateStrictness {
	switch s {
	case Warn:
		return eng.DupWarn
	case Error:
		return eng.DupError
	default:
		return eng.DupIgnore
	}
}
