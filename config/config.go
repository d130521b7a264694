package config

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/rawbytes"
	"github.com/knadh/koanf/v2"
)

const (
	// DefaultServerURL is the observability server used when nothing is configured.
	DefaultServerURL = "http://localhost:4000"
	// DefaultTimeout bounds a single event delivery attempt.
	DefaultTimeout = 5 * time.Second

	envPrefix = "OBSERVABILITY_"
)

// Config holds the settings for event delivery.
type Config struct {
	// ServerURL is the base URL of the observability server.
	ServerURL string `koanf:"server"`
	// Timeout bounds a single delivery attempt.
	Timeout time.Duration `koanf:"timeout"`
	// SourceApp overrides the emitting application name. When empty the
	// caller derives it from the working directory.
	SourceApp string `koanf:"source_app"`
}

// Default returns a Config with hardcoded defaults applied.
func Default() Config {
	return Config{
		ServerURL: DefaultServerURL,
		Timeout:   DefaultTimeout,
	}
}

// Load reads configuration from environment variables on top of the defaults.
func Load() (Config, error) {
	return LoadWithFile("")
}

// LoadWithFile loads configuration from an optional YAML file, then overrides
// with OBSERVABILITY_* environment variables. A missing file is not an error;
// the defaults apply.
func LoadWithFile(configPath string) (Config, error) {
	k := koanf.New(".")

	if configPath != "" {
		content, err := os.ReadFile(configPath)
		if err != nil {
			if !os.IsNotExist(err) {
				return Config{}, fmt.Errorf("read config file %s: %w", configPath, err)
			}
		} else if err := k.Load(rawbytes.Provider(content), yaml.Parser()); err != nil {
			return Config{}, fmt.Errorf("parse config file %s: %w", configPath, err)
		}
	}

	// OBSERVABILITY_SERVER -> server, OBSERVABILITY_SOURCE_APP -> source_app
	if err := k.Load(env.Provider(envPrefix, ".", func(s string) string {
		return strings.ToLower(strings.TrimPrefix(s, envPrefix))
	}), nil); err != nil {
		return Config{}, fmt.Errorf("load environment variables: %w", err)
	}

	var cfg Config
	if err := k.Unmarshal("", &cfg); err != nil {
		return Config{}, fmt.Errorf("unmarshal config: %w", err)
	}

	applyDefaults(&cfg)

	if err := cfg.Validate(); err != nil {
		return Config{}, fmt.Errorf("config validation failed: %w", err)
	}

	return cfg, nil
}

// Validate checks the configuration for obvious mistakes.
func (c Config) Validate() error {
	if !strings.HasPrefix(c.ServerURL, "http://") && !strings.HasPrefix(c.ServerURL, "https://") {
		return fmt.Errorf("server url must start with http:// or https://, got %q", c.ServerURL)
	}

	if c.Timeout <= 0 {
		return fmt.Errorf("timeout must be positive, got %s", c.Timeout)
	}

	return nil
}

func applyDefaults(cfg *Config) {
	if cfg.ServerURL == "" {
		cfg.ServerURL = DefaultServerURL
	}

	if cfg.Timeout == 0 {
		cfg.Timeout = DefaultTimeout
	}
}
