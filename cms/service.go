// Package cms serves CMS page content. Every document is checked against its
// published schema on the way in and again on the way out, so a page that no
// longer conforms is reported instead of served.
package cms

import (
	"context"
	"errors"
	"fmt"
	"time"

	j "github.com/goccy/go-json"
	"go.uber.org/zap"

	cs "github.com/wcc-platform/contentschema"
	"github.com/wcc-platform/contentschema/page"
	"github.com/wcc-platform/contentschema/schemas"
)

// DefaultCacheTTL is used when a cache is configured without a TTL.
const DefaultCacheTTL = 5 * time.Minute

// Service reads and writes validated page content.
type Service struct {
	repo     Repository
	cache    Cache
	cacheTTL time.Duration
	metrics  *Metrics
	logger   *zap.Logger
}

// Option configures a Service.
type Option func(*Service)

// WithCache puts c in front of the repository. A ttl of zero or less uses
// DefaultCacheTTL.
func WithCache(c Cache, ttl time.Duration) Option {
	return func(s *Service) {
		s.cache = c
		if ttl > 0 {
			s.cacheTTL = ttl
		}
	}
}

// WithMetrics records validation outcomes in m.
func WithMetrics(m *Metrics) Option { return func(s *Service) { s.metrics = m } }

// WithLogger sets the service logger.
func WithLogger(l *zap.Logger) Option {
	return func(s *Service) {
		if l != nil {
			s.logger = l
		}
	}
}

// NewService builds a Service over repo.
func NewService(repo Repository, opts ...Option) *Service {
	s := &Service{repo: repo, cacheTTL: DefaultCacheTTL, logger: zap.NewNop()}
	for _, o := range opts {
		if o != nil {
			o(s)
		}
	}
	return s
}

// pageSchemas maps each page type to the published schema its content must
// satisfy. Types without an entry have no content.
var pageSchemas = map[page.Type]string{
	page.CodeOfConductPage: schemas.CodeOfConductName,
}

// GetCodeOfConduct returns the stored code of conduct page.
func (s *Service) GetCodeOfConduct(ctx context.Context) (page.CodeOfConduct, error) {
	var out page.CodeOfConduct
	raw, err := s.Document(ctx, page.CodeOfConductPage)
	if err != nil {
		return out, err
	}
	if err := j.Unmarshal(raw, &out); err != nil {
		return page.CodeOfConduct{}, internal(err)
	}
	return out, nil
}

// PutCodeOfConduct validates raw and stores it as the code of conduct page.
// Duplicate keys are rejected, and so is any list element that would not
// decode into page.CodeOfConduct.
func (s *Service) PutCodeOfConduct(ctx context.Context, raw []byte) error {
	return s.store(ctx, page.CodeOfConductPage, raw)
}

// Document returns the stored document of t exactly as it was written, after
// checking it against the schema of t.
func (s *Service) Document(ctx context.Context, t page.Type) ([]byte, error) {
	name, ok := pageSchemas[t]
	if !ok {
		return nil, &ContentNotFoundError{Page: t}
	}
	return s.load(ctx, t, name)
}

func (s *Service) load(ctx context.Context, t page.Type, schemaName string) ([]byte, error) {
	log := s.logger.With(zap.Stringer("page", t))
	if s.cache != nil {
		raw, err := s.cache.Get(ctx, t)
		switch {
		case err == nil:
			s.metrics.ObserveCache("hit")
			return raw, nil
		case errors.Is(err, ErrNotFound):
			s.metrics.ObserveCache("miss")
		default:
			s.metrics.ObserveCache("error")
			log.Warn("page cache read failed", zap.Error(err))
		}
	}

	raw, err := s.repo.FindByID(ctx, t)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			return nil, &ContentNotFoundError{Page: t}
		}
		return nil, internal(fmt.Errorf("load page %s: %w", t, err))
	}

	schema, err := schemas.Lookup(schemaName)
	if err != nil {
		return nil, internal(err)
	}
	_, err = cs.ValidateFrom(ctx, schema, cs.JSONBytes(raw))
	s.metrics.ObserveValidation(schemaName, err == nil)
	if err != nil {
		log.Error("stored page does not conform", zap.String("schema", schemaName), zap.Error(err))
		return nil, internal(err)
	}

	if s.cache != nil {
		if err := s.cache.Set(ctx, t, raw, s.cacheTTL); err != nil {
			log.Warn("page cache write failed", zap.Error(err))
		}
	}
	return raw, nil
}

func (s *Service) store(ctx context.Context, t page.Type, raw []byte) error {
	schemaName, ok := pageSchemas[t]
	if !ok {
		return internal(fmt.Errorf("no schema for page %s", t))
	}
	schema, err := schemas.Lookup(schemaName)
	if err != nil {
		return internal(err)
	}
	tree, err := cs.ValidateFrom(ctx, schema, cs.JSONBytes(raw), cs.DecodeOpt{
		Strictness: cs.Strictness{OnDuplicateKey: cs.Error},
	})
	if err == nil {
		err = readable(ctx, t, raw, tree)
	}
	s.metrics.ObserveValidation(schemaName, err == nil)
	if err != nil {
		if iss, ok := cs.AsIssues(err); ok {
			return &ValidationError{Page: t, Issues: iss}
		}
		return internal(err)
	}

	if err := s.repo.Save(ctx, t, raw); err != nil {
		return internal(fmt.Errorf("save page %s: %w", t, err))
	}
	if s.cache != nil {
		if err := s.cache.Delete(ctx, t); err != nil {
			s.logger.Warn("page cache invalidation failed", zap.Stringer("page", t), zap.Error(err))
		}
	}
	s.logger.Info("page content updated", zap.Stringer("page", t), zap.Int("bytes", len(raw)))
	return nil
}

// readable checks that a conforming document also decodes into the typed
// page, so an accepted write is never unreadable later.
func readable(ctx context.Context, t page.Type, raw []byte, tree any) error {
	if t != page.CodeOfConductPage {
		return nil
	}
	if err := schemas.CodeOfConductEveryItem().Validate(ctx, tree); err != nil {
		return cs.IssuesFromErr("/", err)
	}
	var p page.CodeOfConduct
	if err := j.Unmarshal(raw, &p); err != nil {
		return cs.Issues{cs.Root().Issue(cs.CodeInvalidType, err.Error())}
	}
	return nil
}
