package transport

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5/middleware"
)

type sessionKey struct{}

// SessionIDFromContext returns the session ID from context, if present.
func SessionIDFromContext(ctx context.Context) (string, bool) {
	sessionID, ok := ctx.Value(sessionKey{}).(string)
	return sessionID, ok
}

// SessionMiddleware extracts Mcp-Session-Id and stores it in context.
func SessionMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if sessionID := r.Header.Get("Mcp-Session-Id"); sessionID != "" {
			r = r.WithContext(context.WithValue(r.Context(), sessionKey{}, sessionID))
		}
		next.ServeHTTP(w, r)
	})
}

// RequestLogger logs one line per request, at a level picked by status.
// It must run after SessionMiddleware to report the session.
func RequestLogger(logger *slog.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()
			ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
			next.ServeHTTP(ww, r)

			args := []any{
				"method", r.Method,
				"path", r.URL.Path,
				"query", r.URL.RawQuery,
				"status", ww.Status(),
				"latency", time.Since(start),
				"bytes", ww.BytesWritten(),
			}
			if requestID := middleware.GetReqID(r.Context()); requestID != "" {
				args = append(args, "request_id", requestID)
			}
			if sessionID, ok := SessionIDFromContext(r.Context()); ok {
				args = append(args, "session_id", sessionID)
			}

			status := ww.Status()
			switch {
			case status >= 500:
				logger.Error("HTTP request completed with server error", args...)
			case status >= 400:
				logger.Warn("HTTP request completed with client error", args...)
			default:
				logger.Debug("HTTP request completed", args...)
			}
		})
	}
}
