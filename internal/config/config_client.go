package config

import (
	"fmt"
	"time"
)

// ClientConfig is the client-specific view of the merged configuration.
// The terminal client needs only the server endpoint and a request timeout;
// database and signing settings stay server-side.
type ClientConfig struct {
	// ServerURL is the base URL of the booking server.
	ServerURL string
	// RequestTimeout is the default timeout for outbound client requests.
	RequestTimeout time.Duration
}

// GetClientConfig builds and validates a client-specific config view.
//
// It merges the same sources as the server config but skips server-side
// validation, so a client machine does not need a DSN or a signing key.
func GetClientConfig() (*ClientConfig, error) {
	cfg, err := newConfigBuilder().
		withEnv().
		withFlags().
		withJSON().
		withDefaults().
		build()
	if err != nil {
		return nil, fmt.Errorf("error building client config: %w", err)
	}

	clientCfg := &ClientConfig{
		ServerURL:      cfg.Client.ServerURL,
		RequestTimeout: cfg.Client.RequestTimeout,
	}

	return clientCfg, clientCfg.validate()
}
