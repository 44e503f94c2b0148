package fs

import (
	"fmt"
	"path/filepath"
	"slices"

	"github.com/bmatcuk/doublestar/v4"
)

// Glob expands each pattern to the files it matches. Patterns support ** for
// recursive matching. Each file is returned once, in the order it is first
// matched; files matched by one pattern are sorted lexically.
//
// Every pattern must match at least one file.
func Glob(patterns ...string) ([]string, error) {
	var (
		files []string
		seen  = make(map[string]bool)
	)
	for _, pattern := range patterns {
		if !doublestar.ValidatePattern(filepath.ToSlash(pattern)) {
			return nil, fmt.Errorf("invalid glob pattern: %s", pattern)
		}
		matches, err := doublestar.FilepathGlob(pattern, doublestar.WithFilesOnly())
		if err != nil {
			return nil, fmt.Errorf("match %s: %w", pattern, err)
		}
		if len(matches) == 0 {
			return nil, fmt.Errorf("%s: %w", pattern, ErrNoMatch)
		}
		slices.Sort(matches)
		for _, m := range matches {
			if seen[m] {
				continue
			}
			seen[m] = true
			files = append(files, m)
		}
	}
	return files, nil
}
