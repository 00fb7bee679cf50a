// Package config loads service configuration with the precedence
// defaults -> optional YAML file -> environment variables.
package config

import (
	"fmt"
	"os"
	"strconv"

	"gopkg.in/yaml.v3"
)

// Environment variables honored by Load.
const (
	EnvPort       = "PORT"
	EnvConfigPath = "BROWSERGATE_CONFIG"
	EnvConnectURL = "BROWSERGATE_CONNECT_URL"
	EnvLogLevel   = "BROWSERGATE_LOG_LEVEL"
)

// Config holds the service configuration.
type Config struct {
	// Port the HTTP server listens on
	Port int `yaml:"port"`

	// ConnectURL is the base endpoint of the remote browser provisioner
	ConnectURL string `yaml:"connect_url"`

	// LogLevel is a zap level name: debug, info, warn, error
	LogLevel string `yaml:"log_level"`
}

// Default returns the built-in configuration.
func Default() Config {
	return Config{
		Port:       3000,
		ConnectURL: "wss://connect.browserbase.com",
		LogLevel:   "info",
	}
}

// Load builds the effective configuration: defaults, overridden by the
// YAML file named in BROWSERGATE_CONFIG (when set), overridden by
// individual environment variables.
func Load() (Config, error) {
	cfg := Default()

	if path := os.Getenv(EnvConfigPath); path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return Config{}, fmt.Errorf("failed to read config file: %w", err)
		}
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return Config{}, fmt.Errorf("failed to parse config file: %w", err)
		}
	}

	if raw := os.Getenv(EnvPort); raw != "" {
		port, err := strconv.Atoi(raw)
		if err != nil || port <= 0 || port > 65535 {
			return Config{}, fmt.Errorf("invalid %s value %q", EnvPort, raw)
		}
		cfg.Port = port
	}
	if v := os.Getenv(EnvConnectURL); v != "" {
		cfg.ConnectURL = v
	}
	if v := os.Getenv(EnvLogLevel); v != "" {
		cfg.LogLevel = v
	}

	return cfg, nil
}

// Addr returns the listen address for the HTTP server.
func (c Config) Addr() string {
	return fmt.Sprintf(":%d", c.Port)
}
