package config

import "time"

// Default values applied when no other configuration source provides one.
// The token sign key has no default on purpose: tokens signed with a
// predictable key are forgeable, so the server refuses to start without an
// explicitly configured key.
const (
	DefaultHTTPAddress    = "localhost:3001"
	DefaultTokenIssuer    = "viajero"
	DefaultTokenDuration  = 2 * time.Hour
	DefaultRequestTimeout = 30 * time.Second
	DefaultServerURL      = "http://localhost:3001"
	DefaultClientTimeout  = 15 * time.Second
)

func defaultConfig() *StructuredConfig {
	return &StructuredConfig{
		Auth: Auth{
			TokenIssuer:   DefaultTokenIssuer,
			TokenDuration: DefaultTokenDuration,
		},
		Server: Server{
			HTTPAddress:    DefaultHTTPAddress,
			RequestTimeout: DefaultRequestTimeout,
		},
		Client: Client{
			ServerURL:      DefaultServerURL,
			RequestTimeout: DefaultClientTimeout,
		},
	}
}
