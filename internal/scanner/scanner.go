package scanner

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/bmatcuk/doublestar/v4"
)

// ErrBadPattern is returned for glob patterns that cannot be parsed.
var ErrBadPattern = errors.New("failed to read glob pattern")

// Finder expands a glob pattern into file paths.
type Finder interface {
	Glob(pattern string) ([]string, error)
}

// GlobFinder matches patterns against the filesystem below Root.
// Patterns may use "**" to cross directory boundaries.
type GlobFinder struct {
	Root string
}

// New creates a GlobFinder rooted at root ("" means the working directory).
func New(root string) *GlobFinder {
	if root == "" {
		root = "."
	}
	return &GlobFinder{Root: root}
}

// Glob returns the regular files matching pattern, in enumeration order.
// A leading "./" on the pattern is kept on every result.
func (g *GlobFinder) Glob(pattern string) ([]string, error) {
	if filepath.IsAbs(pattern) {
		if !doublestar.ValidatePathPattern(pattern) {
			return nil, fmt.Errorf("%w: %q", ErrBadPattern, pattern)
		}
		return doublestar.FilepathGlob(pattern, doublestar.WithFilesOnly())
	}

	slashed := filepath.ToSlash(pattern)
	prefix := ""
	for strings.HasPrefix(slashed, "./") {
		prefix = "./"
		slashed = strings.TrimPrefix(slashed, "./")
	}
	if !doublestar.ValidatePattern(slashed) {
		return nil, fmt.Errorf("%w: %q", ErrBadPattern, pattern)
	}

	matches, err := doublestar.Glob(os.DirFS(g.Root), slashed, doublestar.WithFilesOnly())
	if err != nil {
		return nil, fmt.Errorf("glob %q: %w", pattern, err)
	}

	paths := make([]string, 0, len(matches))
	for _, m := range matches {
		paths = append(paths, filepath.FromSlash(prefix+m))
	}
	return paths, nil
}
