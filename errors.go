package contentschema

import (
	"errors"
	"fmt"
	"strings"
)

// Issue codes reported by the validation engine.
const (
	CodeInvalidType  = "invalid_type"
	CodeRequired     = "required"
	CodeUnknownKey   = "unknown_key"
	CodeDuplicateKey = "duplicate_key"
	CodeTooSmall     = "too_small"
	CodeTooBig       = "too_big"
	CodeTooShort     = "too_short"
	CodeTooLong      = "too_long"
	CodeParseError   = "parse_error"
	CodeTruncated    = "truncated"
)

// Issue represents a single validation entry.
type Issue struct {
	Path    string // JSON Pointer (for example: /items/0/title).
	Code    string // One of the codes listed above.
	Message string
	Hint    string // Optional: expected type, missing key name, etc.
	Cause   error  // Optional: underlying error.
	// Params carries structured parameters (e.g., {"min":1, "got":0}).
	Params map[string]any
}

// Issues is a collection of validation errors that implements error.
type Issues []Issue

// Error summarizes the first few issues.
func (iss Issues) Error() string {
	if len(iss) == 0 {
		return ""
	}
	const maxShown = 3
	b := &strings.Builder{}
	lim := min(len(iss), maxShown)
	for i := 0; i < lim; i++ {
		if i > 0 {
			b.WriteString("; ")
		}
		// e.g. too_short at /items/0/title
		fmt.Fprintf(b, "%s at %s", iss[i].Code, iss[i].Path)
	}
	if len(iss) > lim {
		fmt.Fprintf(b, "; ... (total %d)", len(iss))
	}
	return b.String()
}

// HasCode reports whether any issue carries code at path. An empty path matches any path.
func (iss Issues) HasCode(code, path string) bool {
	for _, it := range iss {
		if it.Code == code && (path == "" || it.Path == path) {
			return true
		}
	}
	return false
}

// AppendIssues appends issues to the destination, initializing the slice when
// needed.
func AppendIssues(dst Issues, more ...Issue) Issues {
	if dst == nil {
		dst = Issues{}
	}
	return append(dst, more...)
}

// AsIssues extracts Issues from an error using errors.As internally.
func AsIssues(err error) (Issues, bool) {
	if err == nil {
		return nil, false
	}
	var iss Issues
	if errors.As(err, &iss) {
		return iss, true
	}
	return nil, false
}

// Rebase prefixes every issue path with base. Child schemas report paths
// relative to their own root ("/"), so parents call Rebase with the pointer of
// the slot the child was validated in.
func Rebase(base string, iss Issues) Issues {
	out := make(Issues, 0, len(iss))
	for _, it := range iss {
		p := it.Path
		switch {
		case p == "" || p == "/":
			p = base
		case p[0] == '/':
			p = base + p
		default:
			p = base + "/" + p
		}
		it.Path = p
		out = append(out, it)
	}
	return out
}

// IssuesFromErr converts an error into Issues, wrapping non-Issues errors with
// CodeParseError at path.
func IssuesFromErr(path string, err error) Issues {
	if err == nil {
		return nil
	}
	if iss, ok := AsIssues(err); ok {
		return iss
	}
	return Issues{{Path: path, Code: CodeParseError, Message: err.Error(), Cause: err}}
}
