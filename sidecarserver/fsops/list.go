package fsops

import (
	"os"
	"path/filepath"
	"sort"
)

// List enumerates the direct children of a directory. Files convert to
// FileEntry values without opening their contents; subdirectories are
// collected by name only. Extension filters exclude non-matching files.
func (a *Accessor) List(path string, extensions []string) (*ListResult, error) {
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
	if !info.IsDir() {
		return nil, NewError(KindNotADirectory, "Path is not a directory: %s", resolved)
	}

	entries, err := os.ReadDir(resolved)
	if err != nil {
		return nil, wrapError(KindInternal, err, "Cannot read directory: %s", resolved)
	}

	files := []FileEntry{}
	subdirectories := []string{}
	for _, entry := range entries {
		if entry.IsDir() {
			subdirectories = append(subdirectories, entry.Name())
			continue
		}

		entryPath := filepath.Join(resolved, entry.Name())
		if !matchesExtensions(lowerExt(entry.Name()), extensions) {
			continue
		}

		// A single inaccessible child must not abort the whole listing.
		fi, err := entry.Info()
		if err != nil {
			a.logger.Warn("cannot access directory entry", "path", entryPath, "error", err)
			continue
		}
		files = append(files, a.fileEntry(entryPath, fi))
	}

	sort.Slice(files, func(i, j int) bool { return files[i].Name < files[j].Name })
	sort.Strings(subdirectories)

	return &ListResult{
		Path:             resolved,
		RelativePath:     a.relative(resolved),
		Files:            files,
		Subdirectories:   subdirectories,
		TotalFiles:       len(files),
		TotalDirectories: len(subdirectories),
	}, nil
}
