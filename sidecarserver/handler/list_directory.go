package handler

import (
	"context"

	"github.com/mark3labs/mcp-go/mcp"
)

// HandleListDirectory lists the direct children of a directory inside the
// project root, optionally filtered by extension.
func (h *SidecarHandler) HandleListDirectory(
	ctx context.Context,
	request mcp.CallToolRequest,
) (*mcp.CallToolResult, error) {
	path := request.GetString("path", "")
	extensions := request.GetStringSlice("file_extensions", nil)

	result, err := h.fs.List(path, extensions)
	if err != nil {
		return h.fail(err, nil), nil
	}
	return h.ok("list", result)
}
