// Package server exposes a content Store over the termfolio HTTP/JSON API.
package server

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"time"

	"github.com/charmbracelet/log"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"termfolio/internal/content"
	"termfolio/internal/logger"
	"termfolio/internal/sysinfo"
)

// shutdownTimeout bounds graceful shutdown after the context is cancelled.
const shutdownTimeout = 5 * time.Second

// Options configures a Server.
type Options struct {
	// Hostname is reported by the client and server info endpoints.
	Hostname string
	// Mailer sends contact notifications; nil disables email.
	Mailer Mailer
}

// Server serves the content API.
type Server struct {
	store    *content.Store
	host     *sysinfo.Collector
	hostname string
	contacts *content.ContactLog
	mailer   Mailer
	log      *log.Logger
	router   chi.Router
}

// New creates a server over store.
func New(store *content.Store, opts Options) *Server {
	host := sysinfo.NewCollector(opts.Hostname)
	s := &Server{
		store:    store,
		host:     host,
		hostname: host.Hostname(),
		contacts: content.NewContactLog(),
		mailer:   opts.Mailer,
		log:      logger.NewStyledLogger("Server"),
	}
	s.router = s.routes()
	return s
}

func (s *Server) routes() chi.Router {
	r := chi.NewRouter()
	r.Use(middleware.Recoverer)
	r.Use(s.requestLogger)

	r.Route("/api", func(r chi.Router) {
		r.Get("/client/info", s.handleClientInfo)
		r.Get("/server/info", s.handleServerInfo)
		r.Get("/server/boot-info", s.handleBootInfo)

		r.Route("/content", func(r chi.Router) {
			r.Get("/directory/{name}", s.handleDirectory)
			r.Get("/file", s.handleFile)
			r.Get("/blog/list", s.handleBlogList)
			r.Get("/blog/search", s.handleBlogSearch)
			r.Get("/portfolio/list", s.handlePortfolioList)
			r.Get("/portfolio/filter", s.handlePortfolioFilter)
			r.Get("/resume", s.handleResume)
			r.Get("/resume/download", s.handleResumeDownload)
		})

		r.Post("/contact", s.handleContact)
	})
	return r
}

// ServeHTTP implements http.Handler.
func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.router.ServeHTTP(w, r)
}

// Contacts returns the messages received so far.
func (s *Server) Contacts() *content.ContactLog {
	return s.contacts
}

// ListenAndServe serves on addr until ctx is cancelled, then shuts down gracefully.
func (s *Server) ListenAndServe(ctx context.Context, addr string) error {
	listener, err := net.Listen("tcp", addr)
	if err != nil {
		return fmt.Errorf("failed to listen on %s: %w", addr, err)
	}
	return s.Serve(ctx, listener)
}

// Serve serves on listener until ctx is cancelled.
func (s *Server) Serve(ctx context.Context, listener net.Listener) error {
	srv := &http.Server{
		Handler:           s,
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		s.log.Info("Content API listening", "addr", listener.Addr().String(), "hostname", s.hostname, "email", s.mailer != nil)
		errCh <- srv.Serve(listener)
	}()

	select {
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		s.log.Info("Shutting down content API")
		if err := srv.Shutdown(shutdownCtx); err != nil {
			return fmt.Errorf("failed to shut down server: %w", err)
		}
		return nil
	}
}

func (s *Server) requestLogger(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
		start := time.Now()
		next.ServeHTTP(ww, r)
		s.log.Debug("Request", "method", r.Method, "path", r.URL.Path, "status", ww.Status(), "duration", time.Since(start).String())
	})
}
