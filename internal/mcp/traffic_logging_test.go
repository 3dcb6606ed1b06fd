package mcp

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestFormatPayload(t *testing.T) {
	require.Equal(t, "<nil>", formatPayload(nil))
	require.Equal(t, `{"id":"c1"}`, formatPayload(map[string]string{"id": "c1"}))
	require.Equal(t, "chan int", formatPayload(make(chan int)))

	long := formatPayload(map[string]string{"content": strings.Repeat("x", 3*maxLoggedPayload)})
	require.True(t, strings.HasSuffix(long, "bytes)"))
	require.Less(t, len(long), maxLoggedPayload+32)
}

func TestSafeHelpers_NilRequest(t *testing.T) {
	require.Empty(t, safeSessionID(nil))
	require.Nil(t, safeParams(nil))
}
