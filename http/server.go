// Package http serves docview pages over HTTP.
package http

import (
	"bytes"
	"context"
	"errors"
	"log/slog"
	"net"
	"net/http"
	"strconv"
	"time"

	"github.com/fwojciec/docview"
	"github.com/fwojciec/docview/html"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

// DefaultAddr is the loopback address the server listens on by default.
const DefaultAddr = "127.0.0.1:8080"

// ShutdownTimeout is the time given to in-flight requests on shutdown.
const ShutdownTimeout = 5 * time.Second

// Server serves the file listing and the pages of an index.
type Server struct {
	server *http.Server
	router chi.Router

	// Bind address for ListenAndServe.
	Addr string

	// Index is the read-only set of servable files.
	Index *docview.Index

	// Pages decides how each requested file is served.
	Pages docview.PageRenderer

	// Templates assembles HTML pages.
	Templates *html.Templates

	Logger *slog.Logger
}

// NewServer returns a new instance of Server. Fields must be set before
// the server handles requests.
func NewServer() *Server {
	s := &Server{
		Addr:   DefaultAddr,
		router: chi.NewRouter(),
		Logger: slog.Default(),
	}

	s.router.Use(middleware.Recoverer)
	s.router.Use(s.logRequests)
	s.router.Use(middleware.GetHead)

	s.router.Get("/", s.handleIndex)
	s.router.Get("/*", s.handlePage)

	s.server = &http.Server{
		Handler:           s.router,
		ReadHeaderTimeout: 10 * time.Second,
	}
	return s
}

// ServeHTTP implements http.Handler.
func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.router.ServeHTTP(w, r)
}

// ListenAndServe listens on s.Addr and serves until Shutdown is called.
func (s *Server) ListenAndServe() error {
	ln, err := net.Listen("tcp", s.Addr)
	if err != nil {
		return err
	}
	return s.Serve(ln)
}

// Serve accepts connections on ln. Returns nil after a clean Shutdown.
func (s *Server) Serve(ln net.Listener) error {
	s.Logger.Info("listening", "addr", ln.Addr().String(), "files", s.Index.Len())
	if err := s.server.Serve(ln); !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}

// Shutdown gracefully stops the server.
func (s *Server) Shutdown(ctx context.Context) error {
	return s.server.Shutdown(ctx)
}

func (s *Server) handleIndex(w http.ResponseWriter, r *http.Request) {
	var buf bytes.Buffer
	if err := s.Templates.RenderIndex(&buf, s.Index.Paths()); err != nil {
		s.Error(w, r, err)
		return
	}
	writeHTML(w, buf.Bytes())
}

func (s *Server) handlePage(w http.ResponseWriter, r *http.Request) {
	req, err := parseRenderRequest(r)
	if err != nil {
		s.Error(w, r, err)
		return
	}

	out, err := s.Pages.RenderPage(r.Context(), req)
	if err != nil {
		s.Error(w, r, err)
		return
	}

	if out.IsRaw() {
		s.serveRaw(w, r, out.Path)
		return
	}

	var buf bytes.Buffer
	if err := s.Templates.RenderPage(&buf, out.Page); err != nil {
		s.Error(w, r, err)
		return
	}
	writeHTML(w, buf.Bytes())
}

// parseRenderRequest reads the raw and format query parameters.
// The router has already percent-decoded the path.
func parseRenderRequest(r *http.Request) (docview.RenderRequest, error) {
	req := docview.NewRenderRequest(r.URL.Path)
	q := r.URL.Query()

	if v := q.Get("raw"); v != "" {
		raw, err := strconv.ParseBool(v)
		if err != nil {
			return req, docview.Errorf(docview.EINVALID, "invalid raw parameter %q", v)
		}
		req.Raw = raw
	}
	req.Format = docview.ParseFormat(q.Get("format"))
	return req, nil
}

func writeHTML(w http.ResponseWriter, body []byte) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.Header().Set("Content-Length", strconv.Itoa(len(body)))
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(body)
}

// Error writes the response for err. Not-found responses have an empty body.
func (s *Server) Error(w http.ResponseWriter, r *http.Request, err error) {
	switch docview.ErrorCode(err) {
	case docview.ENOTFOUND:
		w.WriteHeader(http.StatusNotFound)
	case docview.EINVALID:
		http.Error(w, docview.ErrorMessage(err), http.StatusBadRequest)
	default:
		s.Logger.Error("request failed",
			"method", r.Method,
			"path", r.URL.Path,
			"err", err,
		)
		http.Error(w, "Internal error.", http.StatusInternalServerError)
	}
}
