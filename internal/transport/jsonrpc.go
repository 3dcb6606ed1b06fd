package transport

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
)

const jsonrpcVersion = "2.0"

// maxRPCBody caps a single /rpc payload.
const maxRPCBody = 1 << 20

// JSON-RPC 2.0 error codes.
const (
	ErrParseCode      = -32700
	ErrInvalidReq     = -32600
	ErrMethodNotFound = -32601
	ErrInvalidParams  = -32602
	ErrInternal       = -32603
	// ErrDomain carries a portal error code in data.code.
	ErrDomain = -32000
)

var (
	ErrParse          = errors.New("parse error")
	ErrInvalidRequest = errors.New("invalid request")
)

// Request is one JSON-RPC 2.0 call. Batches are not accepted.
type Request struct {
	JSONRPC string          `json:"jsonrpc"`
	Method  string          `json:"method"`
	Params  json.RawMessage `json:"params,omitempty"`
	ID      any             `json:"id,omitempty"`
}

// Response carries either Result or Error.
type Response struct {
	JSONRPC string `json:"jsonrpc"`
	Result  any    `json:"result,omitempty"`
	Error   *Error `json:"error,omitempty"`
	ID      any    `json:"id,omitempty"`
}

type Error struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
	Data    any    `json:"data,omitempty"`
}

func (e *Error) Error() string {
	return fmt.Sprintf("jsonrpc %d: %s", e.Code, e.Message)
}

// ParseRequest decodes a single call. A malformed body wraps ErrParse; a
// batch, or a well-formed body without version or method, wraps
// ErrInvalidRequest and still returns any decoded ID so the reply can echo it.
func ParseRequest(body io.Reader) (Request, error) {
	raw, err := io.ReadAll(io.LimitReader(body, maxRPCBody))
	if err != nil {
		return Request{}, fmt.Errorf("%w: %w", ErrParse, err)
	}
	raw = bytes.TrimSpace(raw)
	if len(raw) > 0 && raw[0] == '[' {
		if !json.Valid(raw) {
			return Request{}, fmt.Errorf("%w: malformed batch", ErrParse)
		}
		return Request{}, fmt.Errorf("%w: batch requests are not supported", ErrInvalidRequest)
	}

	var req Request
	if err := json.Unmarshal(raw, &req); err != nil {
		return Request{}, fmt.Errorf("%w: %w", ErrParse, err)
	}
	if req.JSONRPC != jsonrpcVersion {
		return req, fmt.Errorf("%w: jsonrpc must be %q", ErrInvalidRequest, jsonrpcVersion)
	}
	if req.Method == "" {
		return req, fmt.Errorf("%w: method is required", ErrInvalidRequest)
	}
	return req, nil
}

// parseFailure maps a ParseRequest error onto its JSON-RPC error object.
func parseFailure(err error) *Error {
	if errors.Is(err, ErrParse) {
		return &Error{Code: ErrParseCode, Message: "parse error"}
	}
	return &Error{Code: ErrInvalidReq, Message: "invalid request"}
}

// domainFailure translates a handler error. Coded portal errors keep their
// code in data.code; anything else is internal.
func domainFailure(err error) *Error {
	var coded CodedError
	if !errors.As(err, &coded) {
		return &Error{Code: ErrInternal, Message: err.Error()}
	}
	data := map[string]any{"code": coded.CodeValue()}
	if details := coded.DetailsValue(); details != nil {
		data["details"] = details
	}
	rpcErr := &Error{Code: ErrDomain, Message: coded.MessageValue(), Data: data}
	switch coded.CodeValue() {
	case "METHOD_NOT_FOUND":
		rpcErr.Code = ErrMethodNotFound
	case "INVALID_INPUT":
		rpcErr.Code = ErrInvalidParams
	}
	return rpcErr
}

// WriteResult writes a success response.
func WriteResult(w http.ResponseWriter, id any, result any) {
	writeBody(w, http.StatusOK, Response{JSONRPC: jsonrpcVersion, Result: result, ID: id})
}

// WriteError writes an error response. JSON-RPC errors still use HTTP 200.
func WriteError(w http.ResponseWriter, id any, rpcErr *Error) {
	writeBody(w, http.StatusOK, Response{JSONRPC: jsonrpcVersion, Error: rpcErr, ID: id})
}
