package fsops

import (
	"os"
	"path/filepath"
	"time"
)

// Info returns a FileEntry-shaped description of a file or directory. For
// text files it additionally computes an exact line count. The text decision
// here rests on the MIME type alone, without the extension allow-list Read
// consults, so the two operations can disagree for extensions the MIME
// tables do not cover.
func (a *Accessor) Info(path string) (*InfoResult, error) {
	resolved, err := a.Resolve(path)
	if err != nil {
		return nil, err
	}

	info, err := os.Stat(resolved)
	if os.IsNotExist(err) {
		return nil, notFound(resolved)
	}
	if err != nil {
		return nil, wrapError(KindInternal, err, "Cannot access path: %s", resolved)
	}

	result := &InfoResult{
		Path:         resolved,
		RelativePath: a.relative(resolved),
		Name:         filepath.Base(resolved),
		Type:         "directory",
		ModifiedTime: a.modTime(resolved, info).Format(time.RFC3339),
	}

	if info.IsDir() {
		if mt := guessMimeType(resolved); mt != "" {
			result.MimeType = &mt
		}
		return result, nil
	}

	result.Type = "file"
	size := info.Size()
	result.Size = &size
	ext := lowerExt(resolved)
	result.Extension = &ext

	mimeType := detectMimeType(resolved)
	if mimeType != "" {
		result.MimeType = &mimeType
	}
	if isTextMime(mimeType) {
		result.LineCount = a.countFileLines(resolved)
	}
	return result, nil
}

// countFileLines counts newline-delimited records; any failure is swallowed
// and reported as an absent count.
func (a *Accessor) countFileLines(path string) *int {
	raw, err := os.ReadFile(path)
	if err != nil {
		a.logger.Warn("cannot count lines", "path", path, "error", err)
		return nil
	}
	n := countLines(string(raw))
	return &n
}
