package cms

import (
	"context"
	"time"

	"github.com/wcc-platform/contentschema/page"
)

// Repository stores raw page documents keyed by page type.
type Repository interface {
	// FindByID returns the stored document or ErrNotFound.
	FindByID(ctx context.Context, t page.Type) ([]byte, error)
	// Save creates or replaces the stored document.
	Save(ctx context.Context, t page.Type, content []byte) error
}

// Cache holds documents that have already been validated.
type Cache interface {
	// Get returns the cached document or ErrNotFound.
	Get(ctx context.Context, t page.Type) ([]byte, error)
	Set(ctx context.Context, t page.Type, content []byte, ttl time.Duration) error
	Delete(ctx context.Context, t page.Type) error
}
