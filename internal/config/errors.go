package config

import "errors"

// Validation errors returned when required configuration groups are
// incomplete or invalid.
var (
	// ErrMissingTokenSignKey indicates that no JWT signing key was supplied
	// by any configuration source. The server must not fall back to a
	// hardcoded key.
	ErrMissingTokenSignKey = errors.New("token sign key is not configured")

	// ErrMissingDatabaseDSN indicates that no database connection string
	// was supplied.
	ErrMissingDatabaseDSN = errors.New("database DSN is not configured")

	// ErrInvalidAuthConfigs indicates invalid token issuer or duration
	// settings after all sources were merged.
	ErrInvalidAuthConfigs = errors.New("invalid auth configuration")

	// ErrInvalidServerConfigs indicates an empty or malformed HTTP listen
	// address.
	ErrInvalidServerConfigs = errors.New("invalid server configuration")

	// ErrInvalidClientConfigs indicates missing client transport settings
	// (server URL or request timeout).
	ErrInvalidClientConfigs = errors.New("invalid client configuration")
)
