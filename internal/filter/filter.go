package filter

import (
	"fmt"
	"strings"
)

// DefaultMaxPatchChars is the patch-size cutoff above which a file is
// excluded from review.
const DefaultMaxPatchChars = 50000

// DefaultPatterns returns the built-in exclusion list. Patterns ending in "/"
// match anywhere in the path; all others match as filename suffixes.
func DefaultPatterns() []string {
	return []string{
		// Lock files
		"package-lock.json",
		"yarn.lock",
		"pnpm-lock.yaml",
		"Gemfile.lock",
		"Cargo.lock",
		"composer.lock",
		"poetry.lock",
		"go.sum",
		// Minified and bundled assets
		".min.js",
		".min.css",
		".bundle.js",
		".map",
		// VCS metadata
		".git/",
		// OS artifacts
		".DS_Store",
		"Thumbs.db",
		// Temp and log files
		".log",
		".tmp",
		".swp",
		"~",
	}
}

// Filter decides which changed files are excluded from review.
type Filter struct {
	patterns      []string
	maxPatchChars int
}

// New creates a Filter. Nil patterns or a non-positive size threshold fall
// back to the defaults.
func New(patterns []string, maxPatchChars int) *Filter {
	if patterns == nil {
		patterns = DefaultPatterns()
	}
	if maxPatchChars <= 0 {
		maxPatchChars = DefaultMaxPatchChars
	}
	return &Filter{patterns: patterns, maxPatchChars: maxPatchChars}
}

// Excluded reports whether the file should be skipped.
func (f *Filter) Excluded(filename, patch string) bool {
	_, excluded := f.ExcludeReason(filename, patch)
	return excluded
}

// ExcludeReason reports whether the file should be skipped and why.
func (f *Filter) ExcludeReason(filename, patch string) (string, bool) {
	for _, pat := range f.patterns {
		if matches(filename, pat) {
			return fmt.Sprintf("matches exclusion pattern %q", pat), true
		}
	}
	if len(patch) > f.maxPatchChars {
		return fmt.Sprintf("patch is %d characters (limit %d)", len(patch), f.maxPatchChars), true
	}
	return "", false
}

func matches(filename, pattern string) bool {
	if strings.HasSuffix(pattern, "/") {
		return strings.Contains(filename, pattern)
	}
	return strings.HasSuffix(filename, pattern)
}
