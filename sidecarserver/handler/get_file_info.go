package handler

import (
	"context"

	"github.com/mark3labs/mcp-go/mcp"
)

// HandleGetFileInfo returns metadata for a file or directory, including an
// exact line count for text files.
func (h *SidecarHandler) HandleGetFileInfo(
	ctx context.Context,
	request mcp.CallToolRequest,
) (*mcp.CallToolResult, error) {
	path, err := request.RequireString("path")
	if err != nil {
		return nil, err
	}

	result, err := h.fs.Info(path)
	if err != nil {
		return h.fail(err, nil), nil
	}
	return h.ok("info", result)
}
