// Package config loads the proxy configuration from gatewire.yaml.
package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Config holds the proxy configuration.
type Config struct {
	// Listen is the client-facing TCP address.
	Listen string `yaml:"listen"`
	// Backend is the canonical-protocol server address.
	Backend string `yaml:"backend"`
	// BackendTransport is "tcp" (one socket per client) or "mux" (one yamux
	// session, one stream per client).
	BackendTransport string `yaml:"backend_transport"`

	// CompressionThreshold enables zlib above this many bytes; 0 disables.
	CompressionThreshold int32 `yaml:"compression_threshold"`
	// OnlineMode validates clients against the Mojang session server.
	OnlineMode bool `yaml:"online_mode"`

	// Status response fields.
	Motd       string `yaml:"motd"`
	Icon       string `yaml:"icon"` // base64 png, served as-is
	MaxPlayers int    `yaml:"max_players"`

	LogLevel      string `yaml:"log_level"`
	MetricsListen string `yaml:"metrics_listen"` // empty disables /metrics
}

// Load reads the configuration file and applies defaults.
func Load(path string) (*Config, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("could not open %s: %w", path, err)
	}
	defer f.Close()

	var cfg Config
	if err := yaml.NewDecoder(f).Decode(&cfg); err != nil {
		return nil, fmt.Errorf("invalid %s: %w", path, err)
	}
	cfg.applyDefaults()
	return &cfg, nil
}

// Default returns the configuration used when no file exists.
func Default() *Config {
	cfg := &Config{}
	cfg.applyDefaults()
	return cfg
}

func (c *Config) applyDefaults() {
	if c.Listen == "" {
		c.Listen = "0.0.0.0:25565"
	}
	if c.Backend == "" {
		c.Backend = "127.0.0.1:8483"
	}
	if c.BackendTransport == "" {
		c.BackendTransport = "tcp"
	}
	if c.Motd == "" {
		c.Motd = "A Gatewire proxy"
	}
	if c.MaxPlayers == 0 {
		c.MaxPlayers = 20
	}
	if c.LogLevel == "" {
		c.LogLevel = "info"
	}
}
