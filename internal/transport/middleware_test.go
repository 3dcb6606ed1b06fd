package transport

import (
	"bytes"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestSessionMiddleware(t *testing.T) {
	var (
		got string
		ok  bool
	)
	handler := SessionMiddleware(http.HandlerFunc(func(_ http.ResponseWriter, r *http.Request) {
		got, ok = SessionIDFromContext(r.Context())
	}))

	req := httptest.NewRequest(http.MethodPost, "/mcp", nil)
	req.Header.Set("Mcp-Session-Id", "sess-42")
	handler.ServeHTTP(httptest.NewRecorder(), req)
	require.True(t, ok)
	require.Equal(t, "sess-42", got)

	handler.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/health", nil))
	require.False(t, ok)
}

func TestRequestLogger_IncludesSession(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(slog.NewJSONHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug}))
	router := NewServer(&testPortal{}, Options{Logger: logger})

	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	req.Header.Set("Mcp-Session-Id", "sess-7")
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	require.Equal(t, http.StatusOK, rec.Code)

	require.Contains(t, buf.String(), `"session_id":"sess-7"`)
	require.Contains(t, buf.String(), `"path":"/health"`)
}
