package main

import (
	"os"
	"strconv"
)

// config holds the demo's runtime configuration.
type config struct {
	// Debug enables debug logging
	Debug bool
}

// configFromEnv reads configuration from environment variables.
// COLLAPSIBLE_DEBUG enables debug mode.
func configFromEnv() *config {
	cfg := &config{}

	if debugStr := os.Getenv("COLLAPSIBLE_DEBUG"); debugStr != "" {
		if debug, err := strconv.ParseBool(debugStr); err == nil {
			cfg.Debug = debug
		}
	}

	return cfg
}
