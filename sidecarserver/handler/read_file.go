package handler

import (
	"context"

	"github.com/mark3labs/mcp-go/mcp"
)

// HandleReadFile reads a single file, returning text or base64 content.
func (h *SidecarHandler) HandleReadFile(
	ctx context.Context,
	request mcp.CallToolRequest,
) (*mcp.CallToolResult, error) {
	path, err := request.RequireString("path")
	if err != nil {
		return nil, err
	}

	result, err := h.fs.Read(path)
	if err != nil {
		return h.fail(err, nil), nil
	}
	return h.ok("read", result)
}
