package handler

import (
	"encoding/json"
	"io"
	"log/slog"
	"testing"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/stretchr/testify/require"

	"github.com/askq-ai/askq-sidecar/sidecarserver/fsops"
	"github.com/askq-ai/askq-sidecar/sidecarserver/skills"
	"github.com/askq-ai/askq-sidecar/sidecarserver/uebridge"
)

// newTestHandler builds a handler over a fresh project root and skill
// library, returning the resolved root (t.TempDir may sit behind a symlink).
func newTestHandler(t *testing.T) (*SidecarHandler, string, string) {
	t.Helper()
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	accessor, err := fsops.NewAccessor(t.TempDir(), logger)
	require.NoError(t, err)

	skillsDir := t.TempDir()
	h := NewSidecarHandler(
		accessor,
		uebridge.NewManager(logger),
		skills.NewLibrary(skillsDir, logger),
		logger,
	)
	return h, accessor.Root(), skillsDir
}

func callRequest(args map[string]any) mcp.CallToolRequest {
	return mcp.CallToolRequest{
		Params: mcp.CallToolParams{
			Arguments: args,
		},
	}
}

// decodeEnvelope parses the JSON envelope out of a tool result.
func decodeEnvelope(t *testing.T, res *mcp.CallToolResult) map[string]any {
	t.Helper()
	require.Len(t, res.Content, 1)
	text, ok := res.Content[0].(mcp.TextContent)
	require.True(t, ok, "expected text content")

	var body map[string]any
	require.NoError(t, json.Unmarshal([]byte(text.Text), &body))
	return body
}

func requireFailure(t *testing.T, res *mcp.CallToolResult, errorType string) map[string]any {
	t.Helper()
	require.True(t, res.IsError)
	body := decodeEnvelope(t, res)
	require.Equal(t, false, body["success"])
	require.Equal(t, errorType, body["error_type"])
	require.NotEmpty(t, body["error"])
	require.NotEmpty(t, body["timestamp"])
	return body
}

func requireSuccess(t *testing.T, res *mcp.CallToolResult, action string) map[string]any {
	t.Helper()
	require.False(t, res.IsError)
	body := decodeEnvelope(t, res)
	require.Equal(t, true, body["success"])
	require.Equal(t, action, body["action"])
	require.NotEmpty(t, body["timestamp"])
	return body
}
