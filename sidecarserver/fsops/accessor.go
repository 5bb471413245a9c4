// Package fsops implements the sandboxed file accessor: a single project
// root established at construction, a path confinement step every operation
// runs first, and four read-only operations (list, read, search, info) that
// return typed payloads or categorized errors.
package fsops

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/djherbis/times"
)

// Accessor confines all file access to a single project root. It is
// immutable after construction; concurrent use needs no synchronization.
type Accessor struct {
	root   string
	logger *slog.Logger
}

// NewAccessor resolves root to an absolute, symlink-free directory path and
// returns an accessor confined to it.
func NewAccessor(root string, logger *slog.Logger) (*Accessor, error) {
	if logger == nil {
		logger = slog.Default()
	}

	abs, err := filepath.Abs(root)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve project root %s: %w", root, err)
	}
	resolved, err := filepath.EvalSymlinks(abs)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve project root %s: %w", abs, err)
	}
	info, err := os.Stat(resolved)
	if err != nil {
		return nil, fmt.Errorf("failed to access project root %s: %w", resolved, err)
	}
	if !info.IsDir() {
		return nil, fmt.Errorf("project root is not a directory: %s", resolved)
	}

	return &Accessor{root: filepath.Clean(resolved), logger: logger}, nil
}

// Root returns the project root all operations are confined to.
func (a *Accessor) Root() string {
	return a.root
}

// contains reports whether path is the root itself or a strict descendant.
// The separator suffix prevents /tmp/foo from matching /tmp/foobar.
func (a *Accessor) contains(path string) bool {
	return path == a.root || strings.HasPrefix(path, a.root+string(filepath.Separator))
}

// Resolve confines a caller-supplied path to the project root. Empty input
// resolves to the root, relative input is joined to it, absolute input must
// land inside it after normalization. The containment check runs before any
// other filesystem access, and symlinks on the existing portion of the path
// are resolved so a link cannot smuggle access outside the root.
func (a *Accessor) Resolve(raw string) (string, error) {
	path := raw
	switch {
	case path == "":
		path = a.root
	case !filepath.IsAbs(path):
		path = filepath.Join(a.root, path)
	}
	path = filepath.Clean(path)

	if !a.contains(path) {
		return "", accessDenied(raw)
	}

	if resolved, err := filepath.EvalSymlinks(path); err == nil {
		if !a.contains(resolved) {
			return "", accessDenied(raw)
		}
		return resolved, nil
	}

	// The target does not exist; verify its nearest existing ancestor still
	// resolves inside the root so the NotFound surfaces from the operation,
	// not from here.
	if parent, err := filepath.EvalSymlinks(filepath.Dir(path)); err == nil {
		if !a.contains(parent) {
			return "", accessDenied(raw)
		}
		return filepath.Join(parent, filepath.Base(path)), nil
	}
	return path, nil
}

// relative returns path relative to the root, or the absolute path itself
// when it cannot be expressed as a descendant.
func (a *Accessor) relative(path string) string {
	rel, err := filepath.Rel(a.root, path)
	if err != nil || rel == ".." || strings.HasPrefix(rel, ".."+string(filepath.Separator)) {
		return path
	}
	return rel
}

// modTime prefers the richer timespec from the times package and falls back
// to the plain stat value.
func (a *Accessor) modTime(path string, info os.FileInfo) time.Time {
	if ts, err := times.Stat(path); err == nil {
		return ts.ModTime()
	}
	return info.ModTime()
}

// fileEntry builds the FileEntry for a regular file. Line count stays unset;
// only Info computes it.
func (a *Accessor) fileEntry(path string, info os.FileInfo) FileEntry {
	size := info.Size()
	modified := a.modTime(path, info).Format(time.RFC3339)
	ext := lowerExt(path)

	var mimeType *string
	if mt := guessMimeType(path); mt != "" {
		mimeType = &mt
	}

	return FileEntry{
		Name:         filepath.Base(path),
		Path:         path,
		RelativePath: a.relative(path),
		Type:         "file",
		Size:         &size,
		ModifiedTime: &modified,
		MimeType:     mimeType,
		Extension:    &ext,
	}
}

// matchesExtensions applies the filter semantics shared by List and Search:
// case-insensitive substring match of any requested extension against the
// entry's actual extension.
func matchesExtensions(ext string, filters []string) bool {
	if len(filters) == 0 {
		return true
	}
	for _, f := range filters {
		if strings.Contains(ext, strings.ToLower(f)) {
			return true
		}
	}
	return false
}
