package transport

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/gloovup/portal/internal/export"
	"github.com/gloovup/portal/internal/listing"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

// Portal is the command surface the HTTP server exposes.
type Portal interface {
	Handle(ctx context.Context, method string, params json.RawMessage) (any, error)
	Export(ctx context.Context, entity string, q listing.Query) (export.File, error)
	View(ctx context.Context, name string, q listing.Query) (any, error)
	Dashboard(ctx context.Context) (any, error)
	IsView(name string) bool
	// AuditedExport reports whether exporting entity writes an audit entry.
	AuditedExport(entity string) bool
}

// CodedError is implemented by errors that carry a portal error code.
type CodedError interface {
	error
	CodeValue() string
	MessageValue() string
	DetailsValue() any
	HTTPStatus() int
}

// Options configures NewServer.
type Options struct {
	// MCP is mounted at /mcp when set.
	MCP    http.Handler
	Logger *slog.Logger
}

// Server wires HTTP handlers.
type Server struct {
	portal Portal
	logger *slog.Logger
}

// NewServer creates an HTTP server router with middleware.
func NewServer(portal Portal, opts Options) *chi.Mux {
	logger := opts.Logger
	if logger == nil {
		logger = slog.Default()
	}
	srv := &Server{portal: portal, logger: logger}

	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.Recoverer)
	r.Use(SessionMiddleware)
	r.Use(RequestLogger(logger))

	if opts.MCP != nil {
		r.Handle("/mcp", opts.MCP)
		r.Handle("/mcp/*", opts.MCP)
	}
	r.Get("/health", srv.handleHealth)
	r.Post("/rpc", srv.handleRPC)
	r.Get("/export/{entity}", srv.handleExport)
	r.Post("/export/{entity}", srv.handleExport)
	r.Get("/", srv.handleDashboard)
	r.Get("/{view}", srv.handleView)
	r.NotFound(redirectHome)

	return r
}

func (s *Server) handleHealth(w http.ResponseWriter, _ *http.Request) {
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte("ok"))
}

func (s *Server) handleRPC(w http.ResponseWriter, r *http.Request) {
	req, err := ParseRequest(r.Body)
	if err != nil {
		s.logger.Debug("rejected rpc payload", "error", err)
		WriteError(w, req.ID, parseFailure(err))
		return
	}

	result, err := s.portal.Handle(r.Context(), req.Method, req.Params)
	if err != nil {
		rpcErr := domainFailure(err)
		if rpcErr.Code == ErrInternal {
			sessionID, _ := SessionIDFromContext(r.Context())
			s.logger.Error("rpc failed", "method", req.Method, "session_id", sessionID, "error", err)
		}
		WriteError(w, req.ID, rpcErr)
		return
	}

	WriteResult(w, req.ID, result)
}

// handleExport serves CSV downloads. Exports that write to the audit log
// are POST only.
func (s *Server) handleExport(w http.ResponseWriter, r *http.Request) {
	entity := chi.URLParam(r, "entity")
	if r.Method == http.MethodGet && s.portal.AuditedExport(entity) {
		w.Header().Set("Allow", http.MethodPost)
		writeBody(w, http.StatusMethodNotAllowed, map[string]any{
			"code":    "METHOD_NOT_ALLOWED",
			"message": fmt.Sprintf("%s export is recorded in the audit log; use POST", entity),
		})
		return
	}
	file, err := s.portal.Export(r.Context(), entity, ParseQuery(r))
	if err != nil {
		s.writeError(w, err)
		return
	}
	w.Header().Set("Content-Type", file.MIMEType+"; charset=utf-8")
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", file.Filename))
	w.Header().Set("X-Export-Rows", strconv.Itoa(file.Rows))
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte(file.Content))
}

func (s *Server) handleDashboard(w http.ResponseWriter, r *http.Request) {
	summary, err := s.portal.Dashboard(r.Context())
	if err != nil {
		s.writeError(w, err)
		return
	}
	writeBody(w, http.StatusOK, summary)
}

func (s *Server) handleView(w http.ResponseWriter, r *http.Request) {
	name := chi.URLParam(r, "view")
	if !s.portal.IsView(name) {
		redirectHome(w, r)
		return
	}
	rows, err := s.portal.View(r.Context(), name, ParseQuery(r))
	if err != nil {
		s.writeError(w, err)
		return
	}
	writeBody(w, http.StatusOK, rows)
}

// redirectHome sends unknown paths to the dashboard.
func redirectHome(w http.ResponseWriter, r *http.Request) {
	http.Redirect(w, r, "/", http.StatusFound)
}

func (s *Server) writeError(w http.ResponseWriter, err error) {
	var coded CodedError
	if errors.As(err, &coded) {
		writeBody(w, coded.HTTPStatus(), map[string]any{
			"code":    coded.CodeValue(),
			"message": coded.MessageValue(),
			"details": coded.DetailsValue(),
		})
		return
	}
	s.logger.Error("request failed", "error", err)
	writeBody(w, http.StatusInternalServerError, map[string]any{"code": "INTERNAL_ERROR", "message": "internal error"})
}

func writeBody(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(body)
}
