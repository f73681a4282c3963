// Package yaml turns YAML documents into engine tokens using gopkg.in/yaml.v3.
//
// The document is parsed into a yaml.Node tree first, then replayed as the same
// token stream a JSON driver would emit, so duplicate-key and depth enforcement
// apply to YAML fixtures unchanged. Scalars keep their resolved YAML type:
// !!int and !!float become numbers, !!bool booleans, !!null null, everything
// else strings.
package yaml

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"

	eng "github.com/wcc-platform/contentschema/internal/engine"
)

// NewBytes parses b and returns a replaying token source. Parse errors surface
// on the first NextToken call.
func NewBytes(b []byte) eng.TokenSource {
	var doc yaml.Node
	if err := yaml.Unmarshal(b, &doc); err != nil {
		return &source{err: fmt.Errorf("yaml: %w", err)}
	}
	s := &source{budget: tokenBudget(len(b))}
	if len(doc.Content) == 0 {
		// empty document decodes as null
		s.toks = []eng.Token{{Kind: eng.KindNull, Offset: -1}}
		return s
	}
	if err := s.emit(doc.Content[0], 0); err != nil {
		return &source{err: err}
	}
	return s
}

// NewReader reads r fully and delegates to NewBytes.
func NewReader(r io.Reader) eng.TokenSource {
	b, err := io.ReadAll(r)
	if err != nil {
		return &source{err: err}
	}
	return NewBytes(b)
}

type source struct {
	toks   []eng.Token
	pos    int
	err    error
	budget int
}

func (s *source) NextToken() (eng.Token, error) {
	if s.err != nil {
		return eng.Token{}, s.err
	}
	if s.pos >= len(s.toks) {
		return eng.Token{}, io.EOF
	}
	t := s.toks[s.pos]
	s.pos++
	return t, nil
}

// Location has no byte offsets for YAML; the line of the current token is not
// a byte position either, so -1 is reported.
func (s *source) Location() int64 { return -1 }

// maxAliasDepth bounds alias expansion so self-referencing anchors cannot loop.
const maxAliasDepth = 64

// Without aliases a document never yields more tokens than it has bytes.
// Reused anchors may expand it up to aliasExpansion times that, plus a floor
// for small documents; anything beyond is rejected like yaml.v3 rejects
// excessive aliasing.
const (
	aliasExpansion = 16
	minTokenBudget = 4096
)

func tokenBudget(size int) int { return aliasExpansion*size + minTokenBudget }

func (s *source) emit(n *yaml.Node, aliasDepth int) error {
	if len(s.toks) > s.budget {
		return fmt.Errorf("yaml: document is too large after alias expansion (more than %d tokens)", s.budget)
	}
	switch n.Kind {
	case yaml.DocumentNode:
		if len(n.Content) == 0 {
			s.push(eng.Token{Kind: eng.KindNull})
			return nil
		}
		return s.emit(n.Content[0], aliasDepth)
	case yaml.AliasNode:
		if aliasDepth >= maxAliasDepth {
			return fmt.Errorf("yaml: alias nesting exceeds %d at line %d", maxAliasDepth, n.Line)
		}
		return s.emit(n.Alias, aliasDepth+1)
	case yaml.MappingNode:
		s.push(eng.Token{Kind: eng.KindBeginObject})
		for i := 0; i+1 < len(n.Content); i += 2 {
			k := n.Content[i]
			if k.Kind != yaml.ScalarNode {
				return fmt.Errorf("yaml: non-scalar mapping key at line %d", k.Line)
			}
			s.push(eng.Token{Kind: eng.KindKey, String: k.Value})
			if err := s.emit(n.Content[i+1], aliasDepth); err != nil {
				return err
			}
		}
		s.push(eng.Token{Kind: eng.KindEndObject})
		return nil
	case yaml.SequenceNode:
		s.push(eng.Token{Kind: eng.KindBeginArray})
		for _, c := range n.Content {
			if err := s.emit(c, aliasDepth); err != nil {
				return err
			}
		}
		s.push(eng.Token{Kind: eng.KindEndArray})
		return nil
	case yaml.ScalarNode:
		s.push(scalarToken(n))
		return nil
	}
	return fmt.Errorf("yaml: unsupported node kind %d at line %d", n.Kind, n.Line)
}

func (s *source) push(t eng.Token) {
	t.Offset = -1
	s.toks = append(s.toks, t)
}

func scalarToken(n *yaml.Node) eng.Token {
	switch n.ShortTag() {
	case "!!null":
		return eng.Token{Kind: eng.KindNull}
	case "!!bool":
		b, err := strconv.ParseBool(strings.ToLower(n.Value))
		if err != nil {
			return eng.Token{Kind: eng.KindString, String: n.Value}
		}
		return eng.Token{Kind: eng.KindBool, Bool: b}
	case "!!int", "!!float":
		var num any
		if err := n.Decode(&num); err == nil {
			switch v := num.(type) {
			case int:
				return eng.Token{Kind: eng.KindNumber, Number: strconv.Itoa(v)}
			case float64:
				return eng.Token{Kind: eng.KindNumber, Number: strconv.FormatFloat(v, 'g', -1, 64)}
			}
		}
		return eng.Token{Kind: eng.KindNumber, Number: n.Value}
	}
	return eng.Token{Kind: eng.KindString, String: n.Value}
}
