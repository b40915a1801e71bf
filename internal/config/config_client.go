// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"fmt"
	"time"
)

// ClientAdapter holds network settings used by the client transport layer.
type ClientAdapter struct {
	// HTTPAddress is the base URL of the account server.
	HTTPAddress string
	// RequestTimeout is the default timeout for outbound client requests.
	RequestTimeout time.Duration
	// Token is the API token sent on authenticated requests. May be empty.
	Token string
}

// ClientConfig is the top-level client configuration assembled from
// [StructuredConfig].
type ClientConfig struct {
	// Adapter contains client transport address, timeout and token.
	Adapter ClientAdapter
	// LogLevel is a zerolog level name for the client logger.
	LogLevel string
	// Args holds the positional arguments left after flag parsing:
	// the command name followed by its operands.
	Args []string
}

// GetClientConfig builds and validates a client-specific config view from
// environment variables, the given command-line args and an optional JSON
// file, in that priority order.
func GetClientConfig(args []string) (*ClientConfig, error) {
	builder := newConfigBuilder().
		withEnv().
		withClientFlags(args).
		withJSON()

	cfg, err := builder.build()
	if err != nil {
		return nil, fmt.Errorf("error get structured config: %w", err)
	}

	clientCfg := &ClientConfig{
		Adapter: ClientAdapter{
			HTTPAddress:    cfg.Adapter.HTTPAddress,
			RequestTimeout: cfg.Adapter.RequestTimeout,
			Token:          cfg.Adapter.Token,
		},
		LogLevel: cfg.App.LogLevel,
		Args:     builder.args,
	}

	return clientCfg, clientCfg.validate()
}
