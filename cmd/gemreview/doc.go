// Gemreview is a CI-oriented CLI that reviews GitHub pull requests with
// Google's Gemini API.
//
// It fetches the PR's changed files, filters out lock files, minified assets,
// and oversized patches, assembles a review prompt, and posts Gemini's answer
// as a single PR comment.
//
// Usage:
//
//	gemreview review 42                 # review PR #42 in the detected repo
//	gemreview review 42 --dry-run       # print the review instead of posting
//	gemreview config show               # show effective configuration
//
// Credentials come from the environment: GITHUB_TOKEN for the repository and
// GEMINI_API_KEY (or GOOGLE_API_KEY, or --api-key) for the model.
package main
