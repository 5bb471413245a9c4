package fsops

import (
	"path/filepath"
	"strings"
	"unicode/utf8"

	"github.com/gabriel-vasile/mimetype"
	"golang.org/x/text/encoding/charmap"
)

// mimeByExtension is the deterministic extension-to-MIME guess table used for
// every entry produced without opening the file. It intentionally stays small:
// unknown extensions guess as empty (null on the wire) rather than falling
// back to platform mime.types files, which vary between hosts.
var mimeByExtension = map[string]string{
	".txt":      "text/plain",
	".bat":      "text/plain",
	".c":        "text/plain",
	".h":        "text/plain",
	".ksh":      "text/plain",
	".pl":       "text/plain",
	".log":      "text/plain",
	".py":       "text/x-python",
	".js":       "application/javascript",
	".mjs":      "application/javascript",
	".json":     "application/json",
	".xml":      "application/xml",
	".html":     "text/html",
	".htm":      "text/html",
	".css":      "text/css",
	".csv":      "text/csv",
	".tsv":      "text/tab-separated-values",
	".md":       "text/markdown",
	".markdown": "text/markdown",
	".sh":       "application/x-sh",
	".pdf":      "application/pdf",
	".png":      "image/png",
	".jpg":      "image/jpeg",
	".jpeg":     "image/jpeg",
	".gif":      "image/gif",
	".svg":      "image/svg+xml",
	".ico":      "image/vnd.microsoft.icon",
	".zip":      "application/zip",
	".tar":      "application/x-tar",
	".gz":       "application/gzip",
	".mp3":      "audio/mpeg",
	".wav":      "audio/x-wav",
	".mp4":      "video/mp4",
	".avi":      "video/x-msvideo",
	".exe":      "application/octet-stream",
	".bin":      "application/octet-stream",
	".dll":      "application/octet-stream",
	".so":       "application/octet-stream",
}

// textualApplicationMimes are the non-text/* MIME types still treated as text.
var textualApplicationMimes = map[string]bool{
	"application/json":       true,
	"application/xml":        true,
	"application/javascript": true,
	"application/x-python":   true,
	"application/x-c++src":   true,
}

// textExtensions is the extension allow-list consulted by Read (and only by
// Read; Info classifies on MIME type alone).
var textExtensions = map[string]bool{
	".txt": true, ".md": true, ".markdown": true, ".py": true,
	".cpp": true, ".h": true, ".hpp": true, ".c": true, ".cc": true,
	".java": true, ".cs": true, ".go": true, ".rs": true,
	".js": true, ".ts": true, ".jsx": true, ".tsx": true,
	".html": true, ".htm": true, ".css": true, ".scss": true, ".less": true,
	".xml": true, ".json": true, ".yaml": true, ".yml": true, ".toml": true,
	".ini": true, ".cfg": true, ".conf": true,
	".php": true, ".rb": true, ".pl": true, ".pm": true, ".lua": true,
	".sql": true, ".sh": true, ".bash": true, ".bat": true, ".cmd": true, ".ps1": true,
	".asm": true, ".s": true, ".v": true, ".sv": true, ".vhd": true, ".vhdl": true,
	".tex": true, ".rst": true, ".log": true, ".csv": true, ".tsv": true,
	".proto": true, ".thrift": true, ".gradle": true,
	".m": true, ".mm": true, ".swift": true, ".kt": true, ".kts": true,
	".dart": true, ".elm": true, ".erl": true, ".ex": true, ".exs": true,
	".fs": true, ".fsx": true, ".fsi": true, ".hs": true, ".lhs": true,
	".ml": true, ".mli": true, ".nim": true, ".pas": true, ".pp": true,
	".r": true, ".rmd": true, ".scala": true, ".vb": true, ".vbs": true, ".zig": true,
	".uproject": true, ".uplugin": true, ".build.cs": true, ".target.cs": true,
}

// lowerExt returns the lowercased extension of path, empty when there is none.
func lowerExt(path string) string {
	return strings.ToLower(filepath.Ext(path))
}

// guessMimeType guesses a MIME type from the extension alone. It never opens
// the file, so listing and search stay stat-only. Empty means unknown.
func guessMimeType(path string) string {
	return mimeByExtension[lowerExt(path)]
}

// detectMimeType guesses by extension first and falls back to content
// sniffing for unknown extensions. Only Read and Info use it; both may open
// the file anyway.
func detectMimeType(path string) string {
	if mt := guessMimeType(path); mt != "" {
		return mt
	}
	mtype, err := mimetype.DetectFile(path)
	if err != nil {
		return ""
	}
	mt := mtype.String()
	if i := strings.IndexByte(mt, ';'); i >= 0 {
		mt = strings.TrimSpace(mt[:i])
	}
	return mt
}

// isTextMime reports whether a MIME type classifies as text.
func isTextMime(mt string) bool {
	return strings.HasPrefix(mt, "text/") || textualApplicationMimes[mt]
}

// isTextExtension reports whether the extension is on the text allow-list.
func isTextExtension(path string) bool {
	return textExtensions[lowerExt(path)]
}

// decodeText decodes raw bytes as UTF-8, falling back to Latin-1 when the
// bytes are not valid UTF-8. Latin-1 maps every byte to a rune, so the
// fallback cannot lose content; ok is false only on an unexpected decoder
// failure, in which case the caller treats the file as binary.
func decodeText(raw []byte) (string, bool) {
	if utf8.Valid(raw) {
		return string(raw), true
	}
	decoded, err := charmap.ISO8859_1.NewDecoder().Bytes(raw)
	if err != nil {
		return "", false
	}
	return string(decoded), true
}

// countLines counts newline-delimited records the way readline iteration
// does: a trailing partial line counts, an empty input has zero lines.
func countLines(s string) int {
	if s == "" {
		return 0
	}
	n := strings.Count(s, "\n")
	if !strings.HasSuffix(s, "\n") {
		n++
	}
	return n
}
