package fsops

import (
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/gobwas/glob"
)

// searchCandidate is the wildcard every directory-walk candidate must match.
// Extensionless files are never search candidates.
var searchCandidate = glob.MustCompile("*.*")

// Search finds files whose name contains term (case-insensitive). The root
// may be a file (single candidate) or a directory walked one level deep or
// recursively. Collection stops at maxResults in enumeration order; the cap
// bounds matches, not the traversal. Final order is modified-time descending.
func (a *Accessor) Search(path, term string, extensions []string, recursive bool, maxResults int) (*SearchResult, error) {
	if term == "" {
		return nil, NewError(KindInvalidArgument, "Search term is required")
	}
	if maxResults <= 0 {
		maxResults = DefaultMaxSearchResults
	}

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

	matches := []FileEntry{}
	termLower := strings.ToLower(term)

	// consider records a candidate and reports whether collection may continue.
	consider := func(candidate string, fi os.FileInfo) bool {
		if strings.Contains(strings.ToLower(filepath.Base(candidate)), termLower) {
			matches = append(matches, a.fileEntry(candidate, fi))
		}
		return len(matches) < maxResults
	}

	switch {
	case !info.IsDir():
		if matchesExtensions(lowerExt(resolved), extensions) {
			consider(resolved, info)
		}

	case recursive:
		walkErr := filepath.WalkDir(resolved, func(p string, d fs.DirEntry, err error) error {
			if err != nil || p == resolved || d.IsDir() {
				return nil
			}
			if !searchCandidate.Match(d.Name()) || !matchesExtensions(lowerExt(d.Name()), extensions) {
				return nil
			}
			fi, err := d.Info()
			if err != nil {
				a.logger.Warn("cannot access search candidate", "path", p, "error", err)
				return nil
			}
			if !consider(p, fi) {
				return fs.SkipAll
			}
			return nil
		})
		if walkErr != nil {
			return nil, wrapError(KindInternal, walkErr, "Search failed under: %s", resolved)
		}

	default:
		entries, err := os.ReadDir(resolved)
		if err != nil {
			return nil, wrapError(KindInternal, err, "Cannot read directory: %s", resolved)
		}
		for _, entry := range entries {
			if entry.IsDir() || !searchCandidate.Match(entry.Name()) {
				continue
			}
			if !matchesExtensions(lowerExt(entry.Name()), extensions) {
				continue
			}
			fi, err := entry.Info()
			if err != nil {
				a.logger.Warn("cannot access search candidate", "path", filepath.Join(resolved, entry.Name()), "error", err)
				continue
			}
			if !consider(filepath.Join(resolved, entry.Name()), fi) {
				break
			}
		}
	}

	// Newest first; entries without a timestamp sort as the empty string and
	// therefore land at the end of the descending order.
	sort.SliceStable(matches, func(i, j int) bool {
		return modKey(matches[i]) > modKey(matches[j])
	})

	return &SearchResult{
		SearchTerm:   term,
		Path:         resolved,
		Files:        matches,
		TotalMatches: len(matches),
		MaxResults:   maxResults,
		Recursive:    recursive,
	}, nil
}

func modKey(e FileEntry) string {
	if e.ModifiedTime == nil {
		return ""
	}
	return *e.ModifiedTime
}
