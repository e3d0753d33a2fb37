// Package config provides configuration loading, merging, and validation
// facilities for the server.
//
// Configuration is assembled from several sources. A field is taken from the
// first source that sets it to a non-zero value:
//  1. Environment variables
//  2. Command-line flags
//  3. JSON config file
//  4. Built-in defaults
//
// The main entry point is [GetStructuredConfig].
package config
