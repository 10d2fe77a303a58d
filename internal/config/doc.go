// Package config loads and merges gemreview configuration from multiple sources.
//
// Precedence (highest to lowest):
//  1. CLI flags
//  2. Environment variables (GEMREVIEW_MODEL, GEMREVIEW_EXCLUDE, etc.)
//  3. Config file ($XDG_CONFIG_HOME/gemreview/config.json)
//  4. Built-in defaults
//
// Credentials are deliberately not part of [Config]: the Gemini API key and
// GitHub token are read from the environment by the client constructors.
//
// Use [Load] to obtain a merged [Config] and [SetField] to update a single
// key in the config file.
package config
