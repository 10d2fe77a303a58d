// Package gemini implements the client for Google's generateContent endpoint.
//
// One synchronous POST per review: the assembled prompt goes out as a single
// user content part together with fixed generation parameters (temperature,
// topK, topP, maxOutputTokens), and the first candidate's text comes back.
// There is no retry or backoff; any non-success status, embedded error field,
// or candidate-less response fails the run. The HTTP client is created with a
// fixed timeout, and the base URL can be overridden with GEMINI_API_URL so
// tests can point at a local httptest server.
package gemini
