package config

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"time"

	"github.com/BurntSushi/toml"
)

// Config represents the global ~/.flock/config.toml.
type Config struct {
	DefaultSession string     `toml:"default_session"`
	Log            Log        `toml:"log"`
	Simulation     Simulation `toml:"simulation"`
	AI             AI         `toml:"ai"`
	Metrics        Metrics    `toml:"metrics"`
}

// Log configures the daemon logger.
type Log struct {
	Level string `toml:"level"`
}

// Simulation configures the simulated inbound message timer.
type Simulation struct {
	Enabled  bool     `toml:"enabled"`
	Interval Duration `toml:"interval"`
	// Seed fixes the random sequence; zero means seed from the clock.
	Seed uint64 `toml:"seed"`
}

// AI configures the generative-AI gateway.
type AI struct {
	Model             string `toml:"model"`
	APIKeyEnv         string `toml:"api_key_env"`
	RequestsPerMinute int    `toml:"requests_per_minute"`
	Burst             int    `toml:"burst"`
}

// APIKey reads the credential from the configured environment variable.
func (a AI) APIKey() string {
	return os.Getenv(a.APIKeyEnv)
}

// Metrics configures the Prometheus endpoint. An empty Addr disables it.
type Metrics struct {
	Addr string `toml:"addr"`
}

// Duration is a time.Duration written as a string ("20s") in TOML.
type Duration struct {
	time.Duration
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (d *Duration) UnmarshalText(text []byte) error {
	v, err := time.ParseDuration(string(text))
	if err != nil {
		return err
	}
	d.Duration = v
	return nil
}

// MarshalText implements encoding.TextMarshaler.
func (d Duration) MarshalText() ([]byte, error) {
	return []byte(d.String()), nil
}

// Default returns the configuration used when no file exists.
func Default() *Config {
	return &Config{
		DefaultSession: "main",
		Log:            Log{Level: "info"},
		Simulation: Simulation{
			Enabled:  true,
			Interval: Duration{20 * time.Second},
		},
		AI: AI{
			Model:             "gemini-2.5-flash",
			APIKeyEnv:         "API_KEY",
			RequestsPerMinute: 30,
			Burst:             5,
		},
	}
}

// Load reads config from the given path on top of Default. Returns error if
// the file is missing or malformed.
func Load(path string) (*Config, error) {
	cfg := Default()
	if _, err := toml.DecodeFile(path, cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}

// LoadOrDefault behaves like Load but falls back to Default when the file
// does not exist.
func LoadOrDefault(path string) (*Config, error) {
	cfg, err := Load(path)
	if errors.Is(err, fs.ErrNotExist) {
		return Default(), nil
	}
	return cfg, err
}

// Save writes config to the given path, creating parent dirs as needed.
func Save(path string, cfg *Config) error {
	if err := os.MkdirAll(filepath.Dir(path), 0700); err != nil {
		return err
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_TRUNC, 0600)
	if err != nil {
		return err
	}
	encErr := toml.NewEncoder(f).Encode(cfg)
	if closeErr := f.Close(); closeErr != nil && encErr == nil {
		return closeErr
	}
	return encErr
}
