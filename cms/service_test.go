package cms_test

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	j "github.com/goccy/go-json"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"

	cs "github.com/wcc-platform/contentschema"
	"github.com/wcc-platform/contentschema/cms"
	"github.com/wcc-platform/contentschema/datafactory"
	"github.com/wcc-platform/contentschema/page"
)

type fakeCache struct {
	mu      sync.Mutex
	entries map[page.Type][]byte
	ttls    map[page.Type]time.Duration
	getErr  error
}

func newFakeCache() *fakeCache {
	return &fakeCache{entries: map[page.Type][]byte{}, ttls: map[page.Type]time.Duration{}}
}

func (c *fakeCache) Get(_ context.Context, t page.Type) ([]byte, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.getErr != nil {
		return nil, c.getErr
	}
	b, ok := c.entries[t]
	if !ok {
		return nil, cms.ErrNotFound
	}
	return b, nil
}

func (c *fakeCache) Set(_ context.Context, t page.Type, b []byte, ttl time.Duration) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.entries[t] = b
	c.ttls[t] = ttl
	return nil
}

func (c *fakeCache) Delete(_ context.Context, t page.Type) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	delete(c.entries, t)
	return nil
}

type failingRepo struct{ err error }

func (r failingRepo) FindByID(context.Context, page.Type) ([]byte, error) { return nil, r.err }
func (r failingRepo) Save(context.Context, page.Type, []byte) error       { return r.err }

func encode(t *testing.T, p page.CodeOfConduct) []byte {
	t.Helper()
	b, err := j.Marshal(p)
	require.NoError(t, err)
	return b
}

func TestGetCodeOfConduct_NotStored(t *testing.T) {
	svc := cms.NewService(cms.NewMemoryStore())

	_, err := svc.GetCodeOfConduct(context.Background())

	var notFound *cms.ContentNotFoundError
	require.ErrorAs(t, err, &notFound)
	assert.Equal(t, "Content of Page CODE_OF_CONDUCT not found", err.Error())
	assert.ErrorIs(t, err, cms.ErrNotFound)
}

func TestGetCodeOfConduct_ValidDocument(t *testing.T) {
	ctx := context.Background()
	repo := cms.NewMemoryStore()
	want := datafactory.CodeOfConduct()
	require.NoError(t, repo.Save(ctx, page.CodeOfConductPage, encode(t, want)))

	got, err := cms.NewService(repo).GetCodeOfConduct(ctx)
	require.NoError(t, err)
	assert.Equal(t, want, got)
}

func TestGetCodeOfConduct_InvalidJSON(t *testing.T) {
	ctx := context.Background()
	repo := cms.NewMemoryStore()
	require.NoError(t, repo.Save(ctx, page.CodeOfConductPage, []byte(`{"id":`)))

	_, err := cms.NewService(repo).GetCodeOfConduct(ctx)

	var internal *cms.InternalError
	require.ErrorAs(t, err, &internal)
	iss, ok := cs.AsIssues(err)
	require.True(t, ok)
	assert.Equal(t, cs.CodeParseError, iss[0].Code)
	assert.Equal(t, internal.Message, err.Error())
}

func TestGetCodeOfConduct_StoredDocumentNoLongerConforms(t *testing.T) {
	ctx := context.Background()
	repo := cms.NewMemoryStore()
	require.NoError(t, repo.Save(ctx, page.CodeOfConductPage,
		[]byte(`{"id":"coc-1","heroSection":{"title":"h"},"page":{"title":"p"},"items":[{"title":""}]}`)))

	core, logs := observer.New(zapcore.InfoLevel)
	reg := prometheus.NewRegistry()
	m := cms.NewMetrics(reg)
	svc := cms.NewService(repo, cms.WithLogger(zap.New(core)), cms.WithMetrics(m))

	_, err := svc.GetCodeOfConduct(ctx)

	var internal *cms.InternalError
	require.ErrorAs(t, err, &internal)
	assert.Equal(t, "too_short at /items/0/title", internal.Message)
	assert.Equal(t, 1, logs.FilterMessage("stored page does not conform").Len())
	assert.Equal(t, 1.0, testutil.ToFloat64(m.Validations.WithLabelValues("codeofconductSchema", "invalid")))
}

func TestGetCodeOfConduct_RepositoryFailure(t *testing.T) {
	svc := cms.NewService(failingRepo{err: errors.New("connection reset")})

	_, err := svc.GetCodeOfConduct(context.Background())

	var internal *cms.InternalError
	require.ErrorAs(t, err, &internal)
	assert.Contains(t, internal.Message, "connection reset")
}

func TestGetCodeOfConduct_UsesCache(t *testing.T) {
	ctx := context.Background()
	repo := cms.NewMemoryStore()
	cache := newFakeCache()
	m := cms.NewMetrics(prometheus.NewRegistry())
	svc := cms.NewService(repo, cms.WithCache(cache, time.Minute), cms.WithMetrics(m))

	want := datafactory.CodeOfConduct()
	require.NoError(t, repo.Save(ctx, page.CodeOfConductPage, encode(t, want)))

	_, err := svc.GetCodeOfConduct(ctx)
	require.NoError(t, err)
	assert.Equal(t, time.Minute, cache.ttls[page.CodeOfConductPage])

	// A second read is served from the cache even though the row changed underneath.
	require.NoError(t, repo.Save(ctx, page.CodeOfConductPage, []byte(`{}`)))
	got, err := svc.GetCodeOfConduct(ctx)
	require.NoError(t, err)
	assert.Equal(t, want, got)

	assert.Equal(t, 1.0, testutil.ToFloat64(m.CacheLookups.WithLabelValues("miss")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.CacheLookups.WithLabelValues("hit")))
}

func TestGetCodeOfConduct_CacheErrorFallsBackToRepository(t *testing.T) {
	ctx := context.Background()
	repo := cms.NewMemoryStore()
	require.NoError(t, repo.Save(ctx, page.CodeOfConductPage, cms.CodeOfConductSeed()))
	cache := newFakeCache()
	cache.getErr = errors.New("redis down")

	core, logs := observer.New(zapcore.WarnLevel)
	svc := cms.NewService(repo, cms.WithCache(cache, 0), cms.WithLogger(zap.New(core)))

	_, err := svc.GetCodeOfConduct(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, logs.FilterMessage("page cache read failed").Len())
	assert.Equal(t, cms.DefaultCacheTTL, cache.ttls[page.CodeOfConductPage])
}

func TestPutCodeOfConduct(t *testing.T) {
	ctx := context.Background()
	repo := cms.NewMemoryStore()
	cache := newFakeCache()
	svc := cms.NewService(repo, cms.WithCache(cache, 0))

	first := encode(t, datafactory.CodeOfConduct(datafactory.WithID("coc-first")))
	require.NoError(t, svc.PutCodeOfConduct(ctx, first))
	got, err := svc.GetCodeOfConduct(ctx)
	require.NoError(t, err)
	assert.Equal(t, "coc-first", got.ID)

	second := encode(t, datafactory.CodeOfConduct(datafactory.WithID("coc-second")))
	require.NoError(t, svc.PutCodeOfConduct(ctx, second))
	got, err = svc.GetCodeOfConduct(ctx)
	require.NoError(t, err)
	assert.Equal(t, "coc-second", got.ID, "write must invalidate the cached copy")
}

func TestPutCodeOfConduct_Rejected(t *testing.T) {
	ctx := context.Background()
	repo := cms.NewMemoryStore()
	svc := cms.NewService(repo)

	cases := map[string]struct {
		body string
		code string
		path string
	}{
		"unknown top-level key": {
			body: `{"id":"coc-1","heroSection":{"title":"h"},"page":{"title":"p"},"items":[],"extra":1}`,
			code: cs.CodeUnknownKey, path: "/extra",
		},
		"duplicate key": {
			body: `{"id":"coc-1","id":"coc-2","heroSection":{"title":"h"},"page":{"title":"p"},"items":[]}`,
			code: cs.CodeDuplicateKey, path: "/id",
		},
		"malformed": {
			body: `{"id":`,
			code: cs.CodeParseError,
		},
	}
	for name, tc := range cases {
		t.Run(name, func(t *testing.T) {
			err := svc.PutCodeOfConduct(ctx, []byte(tc.body))

			var verr *cms.ValidationError
			require.ErrorAs(t, err, &verr)
			assert.True(t, verr.Issues.HasCode(tc.code, tc.path), "issues: %v", verr.Issues)

			_, err = repo.FindByID(ctx, page.CodeOfConductPage)
			assert.ErrorIs(t, err, cms.ErrNotFound)
		})
	}
}

func TestPutCodeOfConduct_SaveFailure(t *testing.T) {
	svc := cms.NewService(failingRepo{err: errors.New("disk full")})
	err := svc.PutCodeOfConduct(context.Background(), cms.CodeOfConductSeed())

	var internal *cms.InternalError
	require.ErrorAs(t, err, &internal)
	assert.Contains(t, err.Error(), "disk full")
}

func TestPutCodeOfConduct_EveryItemMustBeReadable(t *testing.T) {
	ctx := context.Background()
	repo := cms.NewMemoryStore()
	m := cms.NewMetrics(prometheus.NewRegistry())
	svc := cms.NewService(repo, cms.WithMetrics(m))

	body := `{"id":"coc-1","heroSection":{"title":"h"},"page":{"title":"p"},` +
		`"items":[{"title":"ok"},"not an object",{"title":7}]}`
	err := svc.PutCodeOfConduct(ctx, []byte(body))

	var verr *cms.ValidationError
	require.ErrorAs(t, err, &verr)
	assert.True(t, verr.Issues.HasCode(cs.CodeInvalidType, "/items/1"), "issues: %v", verr.Issues)
	assert.True(t, verr.Issues.HasCode(cs.CodeInvalidType, "/items/2/title"), "issues: %v", verr.Issues)
	assert.Equal(t, 1.0, testutil.ToFloat64(m.Validations.WithLabelValues("codeofconductSchema", "invalid")))

	_, err = repo.FindByID(ctx, page.CodeOfConductPage)
	assert.ErrorIs(t, err, cms.ErrNotFound)
}

func TestPutCodeOfConduct_AcceptedWriteReadsBack(t *testing.T) {
	ctx := context.Background()
	svc := cms.NewService(cms.NewMemoryStore())

	body := `{"id":"coc-1","heroSection":{"title":"h","images":[],"theme":"dark"},` +
		`"page":{"title":"p"},"items":[{"title":"one"},{"title":"two","items":["a","b"]}]}`
	require.NoError(t, svc.PutCodeOfConduct(ctx, []byte(body)))

	got, err := svc.GetCodeOfConduct(ctx)
	require.NoError(t, err)
	require.Len(t, got.Items, 2)
	assert.Equal(t, []string{"a", "b"}, got.Items[1].Items)

	doc, err := svc.Document(ctx, page.CodeOfConductPage)
	require.NoError(t, err)
	assert.JSONEq(t, body, string(doc))
}

func TestDocument_PageWithoutSchema(t *testing.T) {
	svc := cms.NewService(cms.NewMemoryStore())

	_, err := svc.Document(context.Background(), page.TeamPage)

	var notFound *cms.ContentNotFoundError
	require.ErrorAs(t, err, &notFound)
	assert.Equal(t, "Content of Page TEAM not found", err.Error())
}
