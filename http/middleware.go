package http

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5/middleware"
	"github.com/google/uuid"
)

// RequestIDHeader carries a client-supplied request identifier.
const RequestIDHeader = "X-Request-Id"

// logRequests writes one access log line per request. A request ID sent by
// the client is logged and echoed back; otherwise one is generated for the
// log only, so identical requests get identical responses.
func (s *Server) logRequests(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		id := r.Header.Get(RequestIDHeader)
		if id != "" {
			w.Header().Set(RequestIDHeader, id)
		} else {
			id = uuid.NewString()
		}

		ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
		defer func(begin time.Time) {
			s.Logger.Info("request",
				"id", id,
				"method", r.Method,
				"path", r.URL.Path,
				"query", r.URL.RawQuery,
				"status", ww.Status(),
				"bytes", ww.BytesWritten(),
				"duration", time.Since(begin),
			)
		}(time.Now())

		next.ServeHTTP(ww, r)
	})
}
