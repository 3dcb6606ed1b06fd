// Package testserver runs the portal over HTTP on a shared in-memory SQLite
// database for end-to-end tests.
package testserver

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gloovup/portal/internal/app"
	"github.com/gloovup/portal/internal/mcp"
	"github.com/gloovup/portal/internal/sqlite"
	"github.com/gloovup/portal/internal/transport"
	sdkmcp "github.com/modelcontextprotocol/go-sdk/mcp"
	"github.com/stretchr/testify/require"
)

// Now is the clock every test server runs on.
var Now = time.Date(2023, 10, 26, 9, 30, 0, 0, time.UTC)

type TestServer struct {
	Server *httptest.Server
	DB     *sqlite.DB
	App    *app.App
}

// New starts a server backed by a database private to t.
func New(t *testing.T) *TestServer {
	t.Helper()

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", strings.ReplaceAll(t.Name(), "/", "_"))
	db, err := sqlite.New(dsn)
	require.NoError(t, err)
	require.NoError(t, db.RunMigrations())
	t.Cleanup(func() { _ = db.Close() })

	return Attach(t, db)
}

// Attach starts another server on db, rehydrating every collection from it.
func Attach(t *testing.T, db *sqlite.DB) *TestServer {
	t.Helper()

	a := app.New(context.Background(), sqlite.NewKVRepository(db), app.Options{
		Now: func() time.Time { return Now },
	})
	handler := mcp.NewHandler(mcp.ServicesFromApp(a))
	mcpServer := mcp.NewServer(mcp.Config{Handler: handler, Version: "test"})
	streamable := sdkmcp.NewStreamableHTTPHandler(
		func(*http.Request) *sdkmcp.Server { return mcpServer },
		&sdkmcp.StreamableHTTPOptions{Stateless: true},
	)

	server := httptest.NewServer(transport.NewServer(handler, transport.Options{MCP: streamable}))
	t.Cleanup(server.Close)

	return &TestServer{Server: server, DB: db, App: a}
}

// Call invokes method over the JSON-RPC endpoint and decodes the response.
func (ts *TestServer) Call(t *testing.T, method string, params any) transport.Response {
	t.Helper()

	payload := map[string]any{"jsonrpc": "2.0", "method": method, "id": 1}
	if params != nil {
		payload["params"] = params
	}
	body, err := json.Marshal(payload)
	require.NoError(t, err)

	resp, err := http.Post(ts.Server.URL+"/rpc", "application/json", bytes.NewReader(body))
	require.NoError(t, err)
	defer resp.Body.Close()
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var decoded transport.Response
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&decoded))
	return decoded
}

// Result calls method, requires success and decodes the result into out.
func (ts *TestServer) Result(t *testing.T, method string, params, out any) {
	t.Helper()

	resp := ts.Call(t, method, params)
	require.Nil(t, resp.Error, "%s failed: %+v", method, resp.Error)
	data, err := json.Marshal(resp.Result)
	require.NoError(t, err)
	require.NoError(t, json.Unmarshal(data, out))
}
