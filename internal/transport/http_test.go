package transport

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gloovup/portal/internal/app"
	"github.com/gloovup/portal/internal/domain/audit"
	"github.com/gloovup/portal/internal/export"
	"github.com/gloovup/portal/internal/listing"
	"github.com/gloovup/portal/internal/mcp"
	"github.com/stretchr/testify/require"
)

type testPortal struct {
	method string
	query  listing.Query
	err    error
}

func (p *testPortal) Handle(_ context.Context, method string, _ json.RawMessage) (any, error) {
	p.method = method
	if p.err != nil {
		return nil, p.err
	}
	return map[string]string{"method": method}, nil
}

func (p *testPortal) Export(_ context.Context, entity string, q listing.Query) (export.File, error) {
	p.query = q
	if p.err != nil {
		return export.File{}, p.err
	}
	return export.File{Filename: entity + "_export_2023-10-26.csv", MIMEType: "text/csv", Content: "ID\nc1\n", Rows: 1}, nil
}

func (p *testPortal) View(_ context.Context, name string, q listing.Query) (any, error) {
	p.query = q
	return []string{name}, p.err
}

func (p *testPortal) Dashboard(context.Context) (any, error) {
	return map[string]int{"projectsTotal": 4}, nil
}

func (p *testPortal) IsView(name string) bool { return name == "clients" }

func (p *testPortal) AuditedExport(entity string) bool { return entity == "payroll" }

func noRedirect(*http.Request, []*http.Request) error { return http.ErrUseLastResponse }

func TestHTTPServer_RPC(t *testing.T) {
	portal := &testPortal{}
	server := httptest.NewServer(NewServer(portal, Options{}))
	t.Cleanup(server.Close)

	body := bytes.NewBufferString(`{"jsonrpc":"2.0","method":"list_projects","id":1}`)
	req, err := http.NewRequest(http.MethodPost, server.URL+"/rpc", body)
	require.NoError(t, err)
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Mcp-Session-Id", "sess1")

	resp, err := http.DefaultClient.Do(req)
	require.NoError(t, err)
	defer resp.Body.Close()
	require.Equal(t, http.StatusOK, resp.StatusCode)
	require.Equal(t, "list_projects", portal.method)
}

func TestHTTPServer_RPCDomainError(t *testing.T) {
	portal := &testPortal{err: &mcp.APIError{Code: mcp.CodeNotFound, Message: "client not found"}}
	server := httptest.NewServer(NewServer(portal, Options{}))
	t.Cleanup(server.Close)

	resp, err := http.Post(server.URL+"/rpc", "application/json",
		bytes.NewBufferString(`{"jsonrpc":"2.0","method":"archive_client","params":{"id":"x"},"id":7}`))
	require.NoError(t, err)
	defer resp.Body.Close()

	var decoded Response
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&decoded))
	require.NotNil(t, decoded.Error)
	require.Equal(t, ErrDomain, decoded.Error.Code)
	require.Equal(t, map[string]any{"code": "NOT_FOUND"}, decoded.Error.Data)
}

func TestHTTPServer_Health(t *testing.T) {
	server := httptest.NewServer(NewServer(&testPortal{}, Options{}))
	t.Cleanup(server.Close)

	resp, err := http.Get(server.URL + "/health")
	require.NoError(t, err)
	defer resp.Body.Close()
	require.Equal(t, http.StatusOK, resp.StatusCode)
}

func TestHTTPServer_Export(t *testing.T) {
	portal := &testPortal{}
	server := httptest.NewServer(NewServer(portal, Options{}))
	t.Cleanup(server.Close)

	resp, err := http.Get(server.URL + "/export/clients?search=acme&payment=Overdue&show_archived=1")
	require.NoError(t, err)
	defer resp.Body.Close()

	require.Equal(t, http.StatusOK, resp.StatusCode)
	require.Equal(t, "text/csv; charset=utf-8", resp.Header.Get("Content-Type"))
	require.Equal(t, `attachment; filename="clients_export_2023-10-26.csv"`, resp.Header.Get("Content-Disposition"))
	require.Equal(t, "1", resp.Header.Get("X-Export-Rows"))
	content, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	require.Equal(t, "ID\nc1\n", string(content))
	require.Equal(t, listing.Query{Search: "acme", Filters: map[string]string{"payment": "Overdue"}, ShowArchived: true}, portal.query)
}

func TestHTTPServer_AuditedExportRequiresPost(t *testing.T) {
	portal := &testPortal{}
	server := httptest.NewServer(NewServer(portal, Options{}))
	t.Cleanup(server.Close)

	resp, err := http.Get(server.URL + "/export/payroll")
	require.NoError(t, err)
	resp.Body.Close()
	require.Equal(t, http.StatusMethodNotAllowed, resp.StatusCode)
	require.Equal(t, http.MethodPost, resp.Header.Get("Allow"))
	require.Nil(t, portal.query.Filters)

	resp, err = http.Post(server.URL+"/export/payroll", "application/json", nil)
	require.NoError(t, err)
	resp.Body.Close()
	require.Equal(t, http.StatusOK, resp.StatusCode)
	require.Equal(t, `attachment; filename="payroll_export_2023-10-26.csv"`, resp.Header.Get("Content-Disposition"))
}

func TestHTTPServer_RPCBatchRejected(t *testing.T) {
	portal := &testPortal{}
	server := httptest.NewServer(NewServer(portal, Options{}))
	t.Cleanup(server.Close)

	resp, err := http.Post(server.URL+"/rpc", "application/json",
		bytes.NewBufferString(`[{"jsonrpc":"2.0","method":"list_users","id":1}]`))
	require.NoError(t, err)
	defer resp.Body.Close()

	var out Response
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&out))
	require.NotNil(t, out.Error)
	require.Equal(t, ErrInvalidReq, out.Error.Code)
	require.Empty(t, portal.method)
}

func TestHTTPServer_ErrorStatus(t *testing.T) {
	portal := &testPortal{err: &mcp.APIError{Code: mcp.CodeInvalidInput, Message: "unknown filter"}}
	server := httptest.NewServer(NewServer(portal, Options{}))
	t.Cleanup(server.Close)

	resp, err := http.Get(server.URL + "/clients?tier=gold")
	require.NoError(t, err)
	defer resp.Body.Close()
	require.Equal(t, http.StatusBadRequest, resp.StatusCode)
}

func TestHTTPServer_UnknownPathsRedirectHome(t *testing.T) {
	server := httptest.NewServer(NewServer(&testPortal{}, Options{}))
	t.Cleanup(server.Close)
	client := &http.Client{CheckRedirect: noRedirect}

	for _, path := range []string{"/reviews", "/nope/deeper"} {
		resp, err := client.Get(server.URL + path)
		require.NoError(t, err)
		resp.Body.Close()
		require.Equal(t, http.StatusFound, resp.StatusCode, path)
		require.Equal(t, "/", resp.Header.Get("Location"), path)
	}
}

func TestHTTPServer_EndToEnd(t *testing.T) {
	now := time.Date(2023, 10, 26, 9, 30, 0, 0, time.UTC)
	a := app.New(context.Background(), nil, app.Options{Now: func() time.Time { return now }})
	server := httptest.NewServer(NewServer(mcp.NewHandler(mcp.ServicesFromApp(a)), Options{}))
	t.Cleanup(server.Close)

	resp, err := http.Get(server.URL + "/export/domains?env=prod")
	require.NoError(t, err)
	defer resp.Body.Close()
	require.Equal(t, http.StatusOK, resp.StatusCode)
	require.Equal(t, `attachment; filename="domains_export_2023-10-26.csv"`, resp.Header.Get("Content-Disposition"))
	require.Equal(t, "4", resp.Header.Get("X-Export-Rows"))

	resp2, err := http.Get(server.URL + "/export/invoices")
	require.NoError(t, err)
	defer resp2.Body.Close()
	require.Equal(t, http.StatusNotFound, resp2.StatusCode)

	resp3, err := http.Get(server.URL + "/export/payments?status=Pending&_=1")
	require.NoError(t, err)
	defer resp3.Body.Close()
	require.Equal(t, http.StatusOK, resp3.StatusCode)
	require.Equal(t, `attachment; filename="payments_export_2023-10-26.csv"`, resp3.Header.Get("Content-Disposition"))
	require.Equal(t, "2", resp3.Header.Get("X-Export-Rows"))

	resp4, err := http.Get(server.URL + "/export/payroll")
	require.NoError(t, err)
	defer resp4.Body.Close()
	require.Equal(t, http.StatusMethodNotAllowed, resp4.StatusCode)
	require.Empty(t, a.Audit.List(audit.ListOptions{Action: ptr(audit.ActionExportPayroll)}))
}

func ptr[T any](v T) *T { return &v }
