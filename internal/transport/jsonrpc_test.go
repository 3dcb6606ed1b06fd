package transport

import (
	"bytes"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestParseRequest(t *testing.T) {
	body := bytes.NewBufferString(`{"jsonrpc":"2.0","method":"list_clients","params":{"search":"wayne"},"id":1}`)
	req, err := ParseRequest(body)
	require.NoError(t, err)
	require.Equal(t, "list_clients", req.Method)
	require.JSONEq(t, `{"search":"wayne"}`, string(req.Params))
}

func TestParseRequest_Malformed(t *testing.T) {
	_, err := ParseRequest(bytes.NewBufferString(`{"jsonrpc":`))
	require.ErrorIs(t, err, ErrParse)
	require.Equal(t, ErrParseCode, parseFailure(err).Code)
}

func TestParseRequest_MissingMethodKeepsID(t *testing.T) {
	req, err := ParseRequest(bytes.NewBufferString(`{"jsonrpc":"2.0","id":9}`))
	require.ErrorIs(t, err, ErrInvalidRequest)
	require.EqualValues(t, 9, req.ID)
	require.Equal(t, ErrInvalidReq, parseFailure(err).Code)
}

func TestParseRequest_Batch(t *testing.T) {
	_, err := ParseRequest(bytes.NewBufferString(` [{"jsonrpc":"2.0","method":"list_users","id":1}]`))
	require.ErrorIs(t, err, ErrInvalidRequest)
	require.Equal(t, ErrInvalidReq, parseFailure(err).Code)

	_, err = ParseRequest(bytes.NewBufferString(`[{"jsonrpc":`))
	require.ErrorIs(t, err, ErrParse)
}

func TestParseRequest_WrongVersion(t *testing.T) {
	_, err := ParseRequest(bytes.NewBufferString(`{"jsonrpc":"1.0","method":"list_users"}`))
	require.ErrorIs(t, err, ErrInvalidRequest)
}

type codedStub struct {
	code    string
	details any
}

func (c codedStub) Error() string        { return c.code }
func (c codedStub) CodeValue() string    { return c.code }
func (c codedStub) MessageValue() string { return "msg " + c.code }
func (c codedStub) DetailsValue() any    { return c.details }
func (c codedStub) HTTPStatus() int      { return http.StatusBadRequest }

func TestDomainFailure(t *testing.T) {
	tests := []struct {
		code string
		want int
	}{
		{"METHOD_NOT_FOUND", ErrMethodNotFound},
		{"INVALID_INPUT", ErrInvalidParams},
		{"USER_ARCHIVED", ErrDomain},
		{"NOT_FOUND", ErrDomain},
	}
	for _, tt := range tests {
		t.Run(tt.code, func(t *testing.T) {
			rpcErr := domainFailure(codedStub{code: tt.code})
			require.Equal(t, tt.want, rpcErr.Code)
			require.Equal(t, "msg "+tt.code, rpcErr.Message)
			require.Equal(t, map[string]any{"code": tt.code}, rpcErr.Data)
		})
	}

	rpcErr := domainFailure(errors.New("disk gone"))
	require.Equal(t, ErrInternal, rpcErr.Code)
	require.Nil(t, rpcErr.Data)
}

func TestDomainFailure_Details(t *testing.T) {
	rpcErr := domainFailure(codedStub{code: "INVALID_INPUT", details: []string{"phone"}})
	require.Equal(t, []string{"phone"}, rpcErr.Data.(map[string]any)["details"])
}

func TestWriteError(t *testing.T) {
	rec := httptest.NewRecorder()
	WriteError(rec, 1, &Error{Code: ErrInvalidParams, Message: "bad params"})

	require.Equal(t, http.StatusOK, rec.Code)
	var resp Response
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	require.Equal(t, "2.0", resp.JSONRPC)
	require.NotNil(t, resp.Error)
	require.Equal(t, ErrInvalidParams, resp.Error.Code)
	require.Nil(t, resp.Result)
}
