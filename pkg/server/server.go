// Package server exposes the session and action API over HTTP+JSON.
//
// Error taxonomy: missing request fields, unknown session ids, and unknown
// action kinds are client errors (4xx). Provisioning failures surface as
// 500 at session creation only. Action failures are not protocol errors:
// the call to the service succeeded, so the response is a normal 200 with
// the failure folded into the observation and error fields plus a
// best-effort screenshot.
package server

import (
	"context"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/playwright-community/playwright-go"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"

	"github.com/entrhq/browsergate/pkg/browser"
)

// sessionLifecycle creates and closes sessions against the remote
// provisioner.
type sessionLifecycle interface {
	Create(creds browser.Credentials) (*browser.Session, error)
	Close(id string)
}

// actionExecutor performs one action against a page.
type actionExecutor interface {
	Execute(page playwright.Page, req browser.ActionRequest) (string, error)
}

// screenshotter captures the page state, returning empty on failure.
type screenshotter interface {
	Capture(page playwright.Page) string
}

// Server hosts the JSON/HTTP API over the session store and lifecycle
// manager.
type Server struct {
	store      *browser.Store
	lifecycle  sessionLifecycle
	executor   actionExecutor
	shots      screenshotter
	log        *zap.Logger
	httpServer *http.Server
}

// New creates a server listening on addr.
func New(addr string, store *browser.Store, lifecycle sessionLifecycle, executor actionExecutor, shots screenshotter, log *zap.Logger) *Server {
	s := &Server{
		store:     store,
		lifecycle: lifecycle,
		executor:  executor,
		shots:     shots,
		log:       log,
	}

	s.httpServer = &http.Server{
		Addr:              addr,
		Handler:           s.routes(),
		ReadHeaderTimeout: 10 * time.Second,
	}
	return s
}

func (s *Server) routes() http.Handler {
	router := chi.NewRouter()
	router.Use(middleware.Recoverer)

	router.Get("/health", s.handleHealth)
	router.Get("/metrics", promhttp.Handler().ServeHTTP)
	router.Get("/sessions", s.handleListSessions)
	router.Post("/session/create", s.handleCreateSession)
	router.Route("/session/{id}", func(r chi.Router) {
		r.Post("/action", s.handleAction)
		r.Post("/close", s.handleCloseSession)
	})

	return router
}

// ListenAndServe blocks serving HTTP until Shutdown or a listener error.
func (s *Server) ListenAndServe() error {
	s.log.Info("http server listening", zap.String("addr", s.httpServer.Addr))
	return s.httpServer.ListenAndServe()
}

// Shutdown drains in-flight requests until ctx expires.
func (s *Server) Shutdown(ctx context.Context) error {
	return s.httpServer.Shutdown(ctx)
}
