package main

import (
	"fmt"
	"os"
	"sort"

	"github.com/bmatcuk/doublestar"
)

// expandGlob resolves a doublestar glob expression into a sorted, deduped
// set of regular file paths, the same matching the asset embedder uses to
// turn a comma separated flag value into a concrete file list.
func expandGlob(pattern string) ([]string, error) {
	matches, err := doublestar.Glob(pattern)
	if err != nil {
		return nil, fmt.Errorf("vsprite: glob %q: %w", pattern, err)
	}

	set := make(map[string]struct{}, len(matches))
	for _, m := range matches {
		stat, err := os.Stat(m)
		if err != nil {
			return nil, fmt.Errorf("vsprite: glob %q: %w", pattern, err)
		}
		if stat.IsDir() {
			continue
		}
		set[m] = struct{}{}
	}

	paths := make([]string, 0, len(set))
	for p := range set {
		paths = append(paths, p)
	}
	sort.Strings(paths)

	return paths, nil
}
