// Package config provides configuration loading, merging, and validation
// facilities for the application.
//
// Configuration is assembled from multiple sources in the following priority
// order (later sources override earlier non-zero fields):
//  1. JSON or YAML config file
//  2. Environment variables
//  3. Command-line flags
//
// Settings no source provides receive the package defaults. The entry point
// is [GetStructuredConfig].
package config
