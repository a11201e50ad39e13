// Package config provides configuration loading, merging, and validation
// facilities for the application.
//
// Values are collected from environment variables, command-line flags, and
// an optional JSON file, merged through a builder, and backed by package
// defaults. The token signing key deliberately has no default: a server
// without an explicitly configured key must refuse to start.
package config
