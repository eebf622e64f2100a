// Package http exposes a book as a read-only JSON/HTML API.
package http

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"primer"
	"primer/internal/logging"
	"primer/internal/metrics"
	"primer/pkg/domain"
)

// RenderCache sits in front of the HTML pipeline. The Redis adapter
// implements it; nil disables caching.
type RenderCache interface {
	Get(ctx context.Context, chapterID string) ([]byte, bool)
	Set(ctx context.Context, chapterID string, html []byte) error
}

// Server serves a primer book over HTTP.
type Server struct {
	book    *primer.Book
	cache   RenderCache
	metrics *metrics.Metrics
	logger  *slog.Logger
}

// Option configures the Server.
type Option func(*Server)

// WithCache installs a render cache.
func WithCache(cache RenderCache) Option {
	return func(s *Server) { s.cache = cache }
}

// WithLogger sets the server logger.
func WithLogger(logger *slog.Logger) Option {
	return func(s *Server) { s.logger = logger }
}

// NewHandler builds the HTTP handler for a book. It validates the embedded
// OpenAPI contract before wiring any route.
func NewHandler(ctx context.Context, book *primer.Book, opts ...Option) (http.Handler, error) {
	if _, err := loadSpec(ctx); err != nil {
		return nil, err
	}

	s := &Server{
		book:    book,
		metrics: metrics.New(),
		logger:  logging.NewNop(),
	}
	for _, opt := range opts {
		opt(s)
	}

	r := chi.NewRouter()
	r.Use(s.metrics.Middleware)

	r.Get("/healthz", s.health)
	r.Get("/toc", s.getTOC)
	r.Get("/chapters", s.listChapters)
	r.Get("/chapters/{id}", s.getChapter)
	r.Get("/verify", s.verifyBook)
	r.Get("/events", s.subscribeEvents)

	r.Handle("/metrics", s.metrics.Handler())

	r.Get("/openapi.yaml", func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "text/yaml")
		w.Write(rawSpec)
	})
	r.Get("/swagger", func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "text/html")
		w.Write([]byte(swaggerHTML))
	})

	return r, nil
}

func (s *Server) health(w http.ResponseWriter, _ *http.Request) {
	w.WriteHeader(http.StatusOK)
	w.Write([]byte("ok"))
}

func (s *Server) getTOC(w http.ResponseWriter, r *http.Request) {
	toc, err := s.book.TOC()
	if err != nil {
		s.internalError(w, "toc", err)
		return
	}
	s.writeJSON(w, toc)
}

func (s *Server) listChapters(w http.ResponseWriter, r *http.Request) {
	ids, err := s.book.Loader().List()
	if err != nil {
		s.internalError(w, "list chapters", err)
		return
	}
	s.writeJSON(w, ids)
}

func (s *Server) getChapter(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	if s.cache != nil {
		if html, ok := s.cache.Get(r.Context(), id); ok {
			s.metrics.RendersTotal.WithLabelValues("html", "hit").Inc()
			w.Header().Set("Content-Type", "text/html; charset=utf-8")
			w.Write(html)
			return
		}
	}

	html, err := s.book.RenderHTML(id)
	if err != nil {
		if errors.Is(err, domain.ErrChapterNotFound) {
			http.Error(w, "chapter not found", http.StatusNotFound)
			return
		}
		s.internalError(w, "render chapter", err)
		return
	}

	if s.cache != nil {
		if err := s.cache.Set(r.Context(), id, html); err != nil {
			s.logger.Warn("render cache write failed", "chapter", id, "err", err)
		}
	}

	s.metrics.RendersTotal.WithLabelValues("html", "miss").Inc()
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.Write(html)
}

func (s *Server) verifyBook(w http.ResponseWriter, r *http.Request) {
	findings, err := s.book.Verify()
	if err != nil {
		s.internalError(w, "verify", err)
		return
	}

	s.metrics.VerifyRuns.Inc()
	s.metrics.VerifyFindings.Set(float64(len(findings)))

	if findings == nil {
		findings = []domain.Finding{}
	}
	s.writeJSON(w, map[string]any{
		"findings": findings,
		"errors":   domain.HasErrors(findings),
	})
}

// subscribeEvents streams book-change notifications as SSE. Used by
// authoring setups to live-reload the browser.
func (s *Server) subscribeEvents(w http.ResponseWriter, r *http.Request) {
	flusher, ok := w.(http.Flusher)
	if !ok {
		http.Error(w, "streaming not supported", http.StatusInternalServerError)
		return
	}

	events, err := s.book.Watch(r.Context())
	if err != nil {
		http.Error(w, fmt.Sprintf("watch unavailable: %v", err), http.StatusNotImplemented)
		return
	}

	w.Header().Set("Content-Type", "text/event-stream")
	w.Header().Set("Cache-Control", "no-cache")
	w.Header().Set("Connection", "keep-alive")

	fmt.Fprintf(w, "event: ping\ndata: connected\n\n")
	flusher.Flush()

	for {
		select {
		case <-r.Context().Done():
			return
		case _, ok := <-events:
			if !ok {
				return
			}
			s.logger.Debug("book changed, notifying subscriber")
			fmt.Fprintf(w, "event: reload\ndata: book changed\n\n")
			flusher.Flush()
		}
	}
}

func (s *Server) writeJSON(w http.ResponseWriter, v any) {
	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(v); err != nil {
		s.logger.Error("response encode failed", "err", err)
	}
}

func (s *Server) internalError(w http.ResponseWriter, op string, err error) {
	s.logger.Error("request failed", "op", op, "err", err)
	http.Error(w, fmt.Sprintf("%s: %v", op, err), http.StatusInternalServerError)
}

const swaggerHTML = `
<!DOCTYPE html>
<html lang="en">
<head>
    <meta charset="utf-8" />
    <meta name="viewport" content="width=device-width, initial-scale=1" />
    <title>Primer Book API</title>
    <link rel="stylesheet" href="https://unpkg.com/swagger-ui-dist@5.11.0/swagger-ui.css" />
</head>
<body>
<div id="swagger-ui"></div>
<script src="https://unpkg.com/swagger-ui-dist@5.11.0/swagger-ui-bundle.js" crossorigin></script>
<script>
    window.onload = () => {
    window.ui = SwaggerUIBundle({
        url: '/openapi.yaml',
        dom_id: '#swagger-ui',
    });
    };
</script>
</body>
</html>
`
