// Package handler binds the sidecar's tool surface to MCP. Each handler
// parses the request, delegates to the accessor, bridge, or skill library,
// and serializes the outcome into the JSON envelope the protocol promises.
package handler

import (
	"log/slog"

	"github.com/mark3labs/mcp-go/mcp"

	"github.com/askq-ai/askq-sidecar/sidecarserver/envelope"
	"github.com/askq-ai/askq-sidecar/sidecarserver/fsops"
	"github.com/askq-ai/askq-sidecar/sidecarserver/skills"
	"github.com/askq-ai/askq-sidecar/sidecarserver/uebridge"
)

// SidecarHandler holds the collaborators behind every tool.
type SidecarHandler struct {
	fs     *fsops.Accessor
	bridge *uebridge.Manager
	skills *skills.Library
	logger *slog.Logger
}

// NewSidecarHandler wires the tool handlers to their collaborators.
func NewSidecarHandler(fs *fsops.Accessor, bridge *uebridge.Manager, lib *skills.Library, logger *slog.Logger) *SidecarHandler {
	if logger == nil {
		logger = slog.Default()
	}
	return &SidecarHandler{fs: fs, bridge: bridge, skills: lib, logger: logger}
}

func textResult(text string, isError bool) *mcp.CallToolResult {
	return &mcp.CallToolResult{
		Content: []mcp.Content{
			mcp.TextContent{Type: "text", Text: text},
		},
		IsError: isError,
	}
}

// ok wraps an operation payload in a success envelope.
func (h *SidecarHandler) ok(action string, payload any) (*mcp.CallToolResult, error) {
	text, err := envelope.Success(action, payload)
	if err != nil {
		return nil, err
	}
	return textResult(text, false), nil
}

// fail wraps an operation error in a failure envelope. The envelope itself
// is the contract; the MCP error flag is set so agent runtimes surface it.
func (h *SidecarHandler) fail(err error, fields map[string]any) *mcp.CallToolResult {
	return textResult(envelope.Failure(err, fields), true)
}
