package settings

import (
	"path/filepath"

	"github.com/bmatcuk/doublestar/v4"
)

// Excluded reports whether path is skipped by the exclude or exclude_dir
// options. Exclude globs support ** and are tried against the whole path and
// its base name; a path lying in, or equal to, an exclude_dir entry is
// excluded too.
func (s ProjectSettings) Excluded(path string) bool {
	path = filepath.Clean(path)
	base := filepath.Base(path)

	for _, pattern := range s.Exclude {
		if matchGlob(pattern, path) || matchGlob(pattern, base) {
			return true
		}
	}
	for _, dir := range s.ExcludeDir {
		if isWithin(filepath.Clean(dir), path) {
			return true
		}
	}
	return false
}

// matchGlob matches a glob pattern, treating a malformed pattern as a literal
// path.
func matchGlob(pattern, name string) bool {
	matched, err := doublestar.PathMatch(pattern, name)
	if err != nil {
		return filepath.Clean(pattern) == name
	}
	return matched
}
