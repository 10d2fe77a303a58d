// Package github provides a minimal GitHub REST API client for the three
// pull-request operations gemreview needs: fetching PR metadata, listing
// changed files, and posting the review as an issue comment.
//
// Authentication uses the GITHUB_TOKEN environment variable. The API base URL
// can be overridden with GITHUB_API_URL for GitHub Enterprise or tests. The
// target repository is resolved from GITHUB_REPOSITORY (set by CI runners) or
// from the local git remote origin URL.
package github
