// Package cli wires together the Cobra command tree for the gemreview binary.
//
// It defines the root command and subcommands (review, config, version),
// binds flags, reads configuration, runs the review pipeline, and returns
// deterministic exit codes for CI gating: 0 success, 2 usage error, 3
// credential error, 4 runtime failure.
package cli
