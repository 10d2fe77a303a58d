// Package filter implements the file-selection policy for reviews.
//
// Files are excluded either by name — lock files, minified and bundled
// assets, VCS metadata, OS artifacts, temp and log files — or by patch size,
// where anything past the character limit is considered machine-generated or
// too large to review usefully. The decision is a pure function of filename
// and patch text; callers log the returned reason.
package filter
