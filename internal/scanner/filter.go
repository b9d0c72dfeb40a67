package scanner

import (
	"path/filepath"
	"strings"
)

// FilterOptions defines criteria for including or excluding files.
type FilterOptions struct {
	// ExcludeDirs is a list of directory names to exclude.
	// Matching is segment-aware: "generated" excludes "generated/Foo.purs" and
	// "test/generated/Bar.purs", but not "generated_stuff/Baz.purs".
	ExcludeDirs []string
}

// FilterFiles applies the filter options to a list of file paths.
// Input order is preserved.
func FilterFiles(paths []string, opts FilterOptions) []string {
	if len(paths) == 0 {
		return nil
	}

	var filtered []string
	for _, path := range paths {
		if shouldExclude(path, opts.ExcludeDirs) {
			continue
		}
		filtered = append(filtered, path)
	}
	return filtered
}

// shouldExclude returns true if any directory segment of path is excluded.
func shouldExclude(path string, excludes []string) bool {
	if len(excludes) == 0 {
		return false
	}
	parts := strings.Split(filepath.ToSlash(filepath.Dir(path)), "/")
	for _, part := range parts {
		for _, exclude := range excludes {
			if part == exclude {
				return true
			}
		}
	}
	return false
}
