package cms

import (
	"errors"
	"fmt"

	cs "github.com/wcc-platform/contentschema"
	"github.com/wcc-platform/contentschema/page"
)

// ErrNotFound is returned by repositories and caches when no content is stored
// under the requested key.
var ErrNotFound = errors.New("not found")

// ContentNotFoundError reports that a page has no stored content.
type ContentNotFoundError struct {
	Page page.Type
}

func (e *ContentNotFoundError) Error() string {
	return fmt.Sprintf("Content of Page %s not found", e.Page)
}

func (e *ContentNotFoundError) Unwrap() error { return ErrNotFound }

// InternalError reports stored content that could not be served: it failed to
// decode or no longer conforms to its schema. Message is the underlying
// failure's message.
type InternalError struct {
	Message string
	Err     error
}

func (e *InternalError) Error() string { return e.Message }

func (e *InternalError) Unwrap() error { return e.Err }

func internal(err error) *InternalError { return &InternalError{Message: err.Error(), Err: err} }

// ValidationError rejects a write whose content does not conform.
type ValidationError struct {
	Page   page.Type
	Issues cs.Issues
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid content for page %s: %s", e.Page, e.Issues.Error())
}

func (e *ValidationError) Unwrap() error { return e.Issues }
