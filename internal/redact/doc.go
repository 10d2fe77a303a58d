// Package redact removes secrets from patch text before it is included in a
// review prompt.
//
// Detection uses regex heuristics covering common secret shapes: API keys,
// JWTs, private keys, AWS access key IDs and secret access keys, bearer
// tokens, and provider-specific tokens (GitHub, Google, Slack). Redaction is
// on by default and can be disabled through configuration for repositories
// where the heuristics misfire.
package redact
