// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Miguel Gallardo

package config

// validateServer checks that the merged [StructuredConfig] satisfies the
// invariants required to run the server.
//
// A missing token sign key or database DSN is a startup failure, not a
// condition to paper over with a built-in default.
func (cfg *StructuredConfig) validateServer() error {
	if cfg.Auth.TokenSignKey == "" {
		return ErrMissingTokenSignKey
	}

	if cfg.Storage.DB.DSN == "" {
		return ErrMissingDatabaseDSN
	}

	if cfg.Auth.TokenIssuer == "" || cfg.Auth.TokenDuration <= 0 {
		return ErrInvalidAuthConfigs
	}

	if cfg.Server.HTTPAddress == "" {
		return ErrInvalidServerConfigs
	}

	return nil
}

func (cfg *ClientConfig) validate() error {
	if cfg.ServerURL == "" || cfg.RequestTimeout <= 0 {
		return ErrInvalidClientConfigs
	}

	return nil
}
