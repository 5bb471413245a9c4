package handler

import (
	"context"

	"github.com/mark3labs/mcp-go/mcp"
)

// HandleGetProjectRoot reports the directory all file access is confined to.
func (h *SidecarHandler) HandleGetProjectRoot(
	ctx context.Context,
	request mcp.CallToolRequest,
) (*mcp.CallToolResult, error) {
	return h.ok("get_project_root", map[string]any{
		"project_root": h.fs.Root(),
	})
}
