package fsops

const (
	// MaxReadSize is the content ceiling for Read (10MB). Larger files are
	// rejected outright, never truncated.
	MaxReadSize = 10 * 1024 * 1024

	// DefaultMaxSearchResults bounds Search matches when the caller gives no cap.
	DefaultMaxSearchResults = 50
)

// Content encodings reported in ReadResult.
const (
	EncodingText   = "text"
	EncodingBase64 = "base64"
)

// FileEntry describes one file encountered during listing or searching.
// Nullable fields use pointers so the JSON envelope carries explicit nulls.
type FileEntry struct {
	Name         string  `json:"name"`
	Path         string  `json:"path"`
	RelativePath string  `json:"relative_path"`
	Type         string  `json:"type"`
	Size         *int64  `json:"size"`
	ModifiedTime *string `json:"modified_time"`
	MimeType     *string `json:"mime_type"`
	Extension    *string `json:"extension"`
	LineCount    *int    `json:"line_count"`
}

// ListResult is the payload of a directory listing.
type ListResult struct {
	Path             string      `json:"path"`
	RelativePath     string      `json:"relative_path"`
	Files            []FileEntry `json:"files"`
	Subdirectories   []string    `json:"subdirectories"`
	TotalFiles       int         `json:"total_files"`
	TotalDirectories int         `json:"total_directories"`
}

// ReadResult is the payload of a file read.
type ReadResult struct {
	Path         string `json:"path"`
	RelativePath string `json:"relative_path"`
	Content      string `json:"content"`
	Encoding     string `json:"encoding"`
	LineCount    int    `json:"line_count"`
	Size         int64  `json:"size"`
	MimeType     string `json:"mime_type"`
	IsText       bool   `json:"is_text"`
}

// SearchResult is the payload of a filename search.
type SearchResult struct {
	SearchTerm   string      `json:"search_term"`
	Path         string      `json:"path"`
	Files        []FileEntry `json:"files"`
	TotalMatches int         `json:"total_matches"`
	MaxResults   int         `json:"max_results"`
	Recursive    bool        `json:"recursive"`
}

// InfoResult is the payload of a path info query.
type InfoResult struct {
	Path         string  `json:"path"`
	RelativePath string  `json:"relative_path"`
	Name         string  `json:"name"`
	Type         string  `json:"type"`
	Size         *int64  `json:"size"`
	ModifiedTime string  `json:"modified_time"`
	MimeType     *string `json:"mime_type"`
	Extension    *string `json:"extension"`
	LineCount    *int    `json:"line_count"`
}
