package handler

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/mark3labs/mcp-go/mcp"

	"github.com/askq-ai/askq-sidecar/sidecarserver/fsops"
)

func pathToResourceURI(path string) string {
	return "file://" + path
}

// HandleReadResource serves file:// resources through the same confinement
// and classification the read_file tool uses. Directories return a plain
// listing, text files return inline text, binaries return a base64 blob.
func (h *SidecarHandler) HandleReadResource(
	ctx context.Context,
	request mcp.ReadResourceRequest,
) ([]mcp.ResourceContents, error) {
	uri := request.Params.URI
	if !strings.HasPrefix(uri, "file://") {
		return nil, fmt.Errorf("unsupported URI scheme: %s", uri)
	}
	path := strings.TrimPrefix(uri, "file://")

	validPath, err := h.fs.Resolve(path)
	if err != nil {
		return nil, err
	}

	info, err := os.Stat(validPath)
	if err != nil {
		return nil, err
	}

	if info.IsDir() {
		entries, err := os.ReadDir(validPath)
		if err != nil {
			return nil, err
		}

		var listing strings.Builder
		listing.WriteString(fmt.Sprintf("Directory listing for: %s\n\n", validPath))
		for _, entry := range entries {
			entryURI := pathToResourceURI(filepath.Join(validPath, entry.Name()))
			if entry.IsDir() {
				listing.WriteString(fmt.Sprintf("[DIR]  %s (%s)\n", entry.Name(), entryURI))
				continue
			}
			if fi, err := entry.Info(); err == nil {
				listing.WriteString(fmt.Sprintf("[FILE] %s (%s) - %d bytes\n", entry.Name(), entryURI, fi.Size()))
			} else {
				listing.WriteString(fmt.Sprintf("[FILE] %s (%s)\n", entry.Name(), entryURI))
			}
		}

		return []mcp.ResourceContents{
			mcp.TextResourceContents{
				URI:      uri,
				MIMEType: "text/plain",
				Text:     listing.String(),
			},
		}, nil
	}

	result, err := h.fs.Read(path)
	if err != nil {
		var opErr *fsops.Error
		if errors.As(err, &opErr) && opErr.Kind == fsops.KindTooLarge {
			return []mcp.ResourceContents{
				mcp.TextResourceContents{
					URI:      uri,
					MIMEType: "text/plain",
					Text: fmt.Sprintf(
						"File is too large to display inline (%d bytes). Use the read_file tool on a smaller file.",
						info.Size()),
				},
			}, nil
		}
		return nil, err
	}

	if result.IsText {
		return []mcp.ResourceContents{
			mcp.TextResourceContents{
				URI:      uri,
				MIMEType: result.MimeType,
				Text:     result.Content,
			},
		}, nil
	}
	return []mcp.ResourceContents{
		mcp.BlobResourceContents{
			URI:      uri,
			MIMEType: result.MimeType,
			Blob:     result.Content,
		},
	}, nil
}
