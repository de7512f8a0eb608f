// Package utils contains shared helpers used across the system.
package utils

import (
	"strings"
	"time"

	"github.com/gobwas/glob"
)

// TimeNow returns epoch UTC.
func TimeNow() int64 {
	return time.Now().UTC().Unix()
}

// NormalizeDeviceName validates that final device name is correct.
func NormalizeDeviceName(raw string) string {
	raw = strings.ToLower(raw)
	replacer := strings.NewReplacer("%", "_",
		"/", "_",
		"\\", "_",
		":", "_",
		";", "_",
		".", "_",
		"$", "_",
		"-", "_",
		"(", "",
		")", "",
		" ", "_")
	return replacer.Replace(raw)
}

// CompileGlobs pre-compiles list of glob patterns.
// Device IDs are dot-separated.
func CompileGlobs(patterns []string) ([]glob.Glob, error) {
	result := make([]glob.Glob, 0, len(patterns))
	for _, v := range patterns {
		g, err := glob.Compile(strings.ToLower(v), '.')
		if err != nil {
			return nil, &ErrInvalidGlob{Pattern: v}
		}

		result = append(result, g)
	}

	return result, nil
}

// MatchAnyGlob checks whether ID matches any of the globs.
// Empty list matches everything.
func MatchAnyGlob(globs []glob.Glob, id string) bool {
	if 0 == len(globs) {
		return true
	}

	for _, g := range globs {
		if g.Match(id) {
			return true
		}
	}

	return false
}
