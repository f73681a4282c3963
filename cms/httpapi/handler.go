// Package httpapi exposes CMS page content and the published schemas over HTTP.
package httpapi

import (
	"context"
	"errors"
	"io"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	j "github.com/goccy/go-json"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"

	"github.com/wcc-platform/contentschema/cms"
	js "github.com/wcc-platform/contentschema/jsonschema"
	"github.com/wcc-platform/contentschema/page"
	"github.com/wcc-platform/contentschema/schemas"
)

// MaxBodyBytes caps request bodies accepted by write endpoints.
const MaxBodyBytes = 1 << 20

// Service is the subset of cms.Service the handlers use.
type Service interface {
	Document(ctx context.Context, t page.Type) ([]byte, error)
	PutCodeOfConduct(ctx context.Context, raw []byte) error
}

// Handler serves the CMS API.
type Handler struct {
	svc     Service
	logger  *zap.Logger
	metrics *Metrics
}

// New creates a Handler. A nil logger disables logging; a nil metrics value
// disables request metrics.
func New(svc Service, logger *zap.Logger, metrics *Metrics) *Handler {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Handler{svc: svc, logger: logger, metrics: metrics}
}

// Register mounts the CMS routes on r.
func (h *Handler) Register(r chi.Router) {
	r.Route("/api/cms/v1", func(r chi.Router) {
		r.Use(h.metrics.Middleware)
		r.Get("/code-of-conduct", h.handleGetCodeOfConduct)
		r.Put("/code-of-conduct", h.handlePutCodeOfConduct)
		r.Get("/pages/{type}", h.handleGetPage)
		r.Get("/schemas", h.handleListSchemas)
		r.Get("/schemas/{name}", h.handleGetSchema)
	})
}

// NewRouter builds the complete HTTP surface: request id, panic recovery,
// request logging, the CMS routes and /metrics served from gatherer.
func NewRouter(h *Handler, gatherer prometheus.Gatherer) http.Handler {
	r := chi.NewRouter()
	r.Use(chimw.RequestID)
	r.Use(chimw.Recoverer)
	r.Use(h.requestLogger)
	r.Use(chimw.Timeout(30 * time.Second))
	h.Register(r)
	if gatherer != nil {
		r.Handle("/metrics", promhttp.HandlerFor(gatherer, promhttp.HandlerOpts{}))
	}
	r.NotFound(func(w http.ResponseWriter, r *http.Request) {
		writeError(w, r, http.StatusNotFound, "Not Found", nil)
	})
	return r
}

func (h *Handler) handleGetCodeOfConduct(w http.ResponseWriter, r *http.Request) {
	h.writeDocument(w, r, page.CodeOfConductPage)
}

// handleGetPage serves any page by name or storage key, e.g. CODE_OF_CONDUCT
// or code_of_conduct.
func (h *Handler) handleGetPage(w http.ResponseWriter, r *http.Request) {
	t, err := page.ParseType(chi.URLParam(r, "type"))
	if err != nil {
		writeError(w, r, http.StatusNotFound, err.Error(), nil)
		return
	}
	h.writeDocument(w, r, t)
}

// writeDocument sends the stored document byte for byte.
func (h *Handler) writeDocument(w http.ResponseWriter, r *http.Request, t page.Type) {
	doc, err := h.svc.Document(r.Context(), t)
	if err != nil {
		h.writeServiceError(w, r, err)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(doc)
}

func (h *Handler) handlePutCodeOfConduct(w http.ResponseWriter, r *http.Request) {
	body, err := io.ReadAll(http.MaxBytesReader(w, r.Body, MaxBodyBytes))
	if err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			writeError(w, r, http.StatusRequestEntityTooLarge, "request body too large", nil)
			return
		}
		writeError(w, r, http.StatusBadRequest, "unreadable request body", nil)
		return
	}
	if err := h.svc.PutCodeOfConduct(r.Context(), body); err != nil {
		h.writeServiceError(w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) handleListSchemas(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, map[string][]string{"schemas": schemas.Names()})
}

func (h *Handler) handleGetSchema(w http.ResponseWriter, r *http.Request) {
	name := chi.URLParam(r, "name")
	doc, err := schemas.Document(name)
	if err != nil {
		var unknown *schemas.UnknownSchemaError
		if errors.As(err, &unknown) {
			writeError(w, r, http.StatusNotFound, err.Error(), nil)
			return
		}
		h.writeServiceError(w, r, err)
		return
	}
	b, err := js.Marshal(doc)
	if err != nil {
		h.writeServiceError(w, r, err)
		return
	}
	w.Header().Set("Content-Type", "application/schema+json")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(b)
}

// writeServiceError maps service errors to statuses: missing content is 404,
// rejected content is 400 and everything else is 500.
func (h *Handler) writeServiceError(w http.ResponseWriter, r *http.Request, err error) {
	var (
		notFound *cms.ContentNotFoundError
		invalid  *cms.ValidationError
		internal *cms.InternalError
	)
	switch {
	case errors.As(err, &notFound):
		writeError(w, r, http.StatusNotFound, notFound.Error(), nil)
	case errors.As(err, &invalid):
		writeError(w, r, http.StatusBadRequest, invalid.Error(), issueViews(invalid))
	case errors.As(err, &internal):
		h.logger.Error("request failed", zap.String("uri", r.URL.Path), zap.Error(err))
		writeError(w, r, http.StatusInternalServerError, internal.Message, nil)
	default:
		h.logger.Error("request failed", zap.String("uri", r.URL.Path), zap.Error(err))
		writeError(w, r, http.StatusInternalServerError, err.Error(), nil)
	}
}

func (h *Handler) requestLogger(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		ww := chimw.NewWrapResponseWriter(w, r.ProtoMajor)
		next.ServeHTTP(ww, r)
		h.logger.Debug("http request",
			zap.String("method", r.Method),
			zap.String("uri", r.URL.Path),
			zap.Int("status", ww.Status()),
			zap.Duration("duration", time.Since(start)),
			zap.String("request_id", chimw.GetReqID(r.Context())),
		)
	})
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = j.NewEncoder(w).Encode(v)
}
