package engine

import (
	"strconv"
	"strings"
)

// Enforcement wrapper for TokenSource to apply duplicate key handling and
// max depth checks while tokens stream through.

// DuplicateStrictness controls duplicate key handling.
type DuplicateStrictness int

const (
	DupIgnore DuplicateStrictness = iota
	DupWarn
	DupError
)

// SimpleIssue is a minimal issue representation used inside the engine.
type SimpleIssue struct {
	Code    string
	Path    string
	Message string
}

// IssueError is a lightweight error carrying a SimpleIssue.
type IssueError struct{ SimpleIssue }

func (e IssueError) Error() string { return e.SimpleIssue.Message }

// EnforceOptions controls runtime enforcement behavior.
type EnforceOptions struct {
	OnDuplicate DuplicateStrictness
	MaxDepth    int
	// IssueSink receives non-fatal issues (DupWarn). If nil they are dropped.
	IssueSink func(SimpleIssue)
	// FailFast turns every finding into a fatal error.
	FailFast bool
}

type containerKind int

const (
	kindObject containerKind = iota
	kindArray
)

type frame struct {
	kind       containerKind
	keys       map[string]struct{}
	path       string
	nextIndex  int
	pendingKey string
}

// WrapWithEnforcement returns a TokenSource that enforces the duplicate key
// policy and maximum nesting depth. Options that are all zero return inner as is.
func WrapWithEnforcement(inner TokenSource, opt EnforceOptions) TokenSource {
	if opt.OnDuplicate == DupIgnore && opt.MaxDepth <= 0 {
		return inner
	}
	return &enforcingTokenSource{inner: inner, opt: opt}
}

type enforcingTokenSource struct {
	inner TokenSource
	opt   EnforceOptions
	stack []frame
}

func (e *enforcingTokenSource) NextToken() (Token, error) {
	tok, err := e.inner.NextToken()
	if err != nil {
		return Token{}, err
	}
	path := e.pathFor(tok)

	switch tok.Kind {
	case KindBeginObject, KindBeginArray:
		f := frame{kind: kindArray, path: path}
		if tok.Kind == KindBeginObject {
			f.kind = kindObject
			f.keys = make(map[string]struct{})
		}
		e.stack = append(e.stack, f)
		if e.opt.MaxDepth > 0 && len(e.stack) > e.opt.MaxDepth {
			return Token{}, IssueError{SimpleIssue{Code: "parse_error", Path: normalizeIssuePath(path), Message: "max depth exceeded"}}
		}
	case KindEndObject, KindEndArray:
		if n := len(e.stack); n > 0 {
			e.stack = e.stack[:n-1]
		}
	case KindKey:
		if n := len(e.stack); n > 0 && e.stack[n-1].kind == kindObject {
			top := &e.stack[n-1]
			if _, dup := top.keys[tok.String]; dup && e.opt.OnDuplicate != DupIgnore {
				si := SimpleIssue{Code: "duplicate_key", Path: path, Message: "key '" + tok.String + "' duplicated"}
				if e.opt.OnDuplicate == DupError || e.opt.FailFast {
					return Token{}, IssueError{si}
				}
				if e.opt.IssueSink != nil {
					e.opt.IssueSink(si)
				}
			}
			top.keys[tok.String] = struct{}{}
		}
	}
	return tok, nil
}

// pathFor computes the JSON Pointer of the value (or key) carried by tok and
// advances the bookkeeping of the enclosing container.
func (e *enforcingTokenSource) pathFor(tok Token) string {
	if len(e.stack) == 0 {
		return ""
	}
	top := &e.stack[len(e.stack)-1]
	switch tok.Kind {
	case KindKey:
		top.pendingKey = tok.String
		return joinJSONPointer(top.path, tok.String)
	case KindEndObject, KindEndArray:
		return top.path
	}
	if top.kind == kindArray {
		p := joinJSONPointer(top.path, strconv.Itoa(top.nextIndex))
		top.nextIndex++
		return p
	}
	return joinJSONPointer(top.path, top.pendingKey)
}

func (e *enforcingTokenSource) Location() int64 { return e.inner.Location() }

func normalizeIssuePath(p string) string {
	if p == "" {
		return "/"
	}
	return p
}

var jsonPointerEscaper = strings.NewReplacer("~", "~0", "/", "~1")

func joinJSONPointer(base, token string) string {
	return base + "/" + jsonPointerEscaper.Replace(token)
}
