// Package review contains the prompt builder and the run orchestrator.
//
// A run is strictly sequential: PR metadata, changed files, filtering,
// prompt assembly, one model call, one comment. The prompt builder is a pure
// function over the filtered file list plus the PR title and description, so
// identical inputs always produce an identical prompt. The orchestrator takes
// its collaborators as interfaces ([GitHub], [Generator]) so tests can run
// the full pipeline against fakes.
package review
