package handler

import (
	"context"

	"github.com/mark3labs/mcp-go/mcp"

	"github.com/askq-ai/askq-sidecar/sidecarserver/fsops"
)

// HandleSearchFiles searches for files by name substring under a path.
func (h *SidecarHandler) HandleSearchFiles(
	ctx context.Context,
	request mcp.CallToolRequest,
) (*mcp.CallToolResult, error) {
	path := request.GetString("path", "")
	term := request.GetString("search_term", "")
	extensions := request.GetStringSlice("file_extensions", nil)
	recursive := request.GetBool("recursive", false)
	maxResults := request.GetInt("max_results", fsops.DefaultMaxSearchResults)

	result, err := h.fs.Search(path, term, extensions, recursive, maxResults)
	if err != nil {
		return h.fail(err, nil), nil
	}
	return h.ok("search", result)
}
