// Package config loads the application configuration from YAML. Every field
// has a working default so an empty config runs the service on in-memory
// stores with speech disabled.
package config

import (
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"gopkg.in/yaml.v3"
)

// Session backends.
const (
	BackendMemory = "memory"
	BackendRedis  = "redis"
)

// Config is the full application configuration.
type Config struct {
	Server   ServerConfig   `yaml:"server"`
	Log      LogConfig      `yaml:"log"`
	Session  SessionConfig  `yaml:"session"`
	Database DatabaseConfig `yaml:"database"`
	Speech   SpeechConfig   `yaml:"speech"`
	Catalog  CatalogConfig  `yaml:"catalog"`
}

// ServerConfig holds the HTTP listener settings.
type ServerConfig struct {
	Addr                   string `yaml:"addr"`
	ShutdownTimeoutSeconds int    `yaml:"shutdown_timeout_seconds"`
}

// LogConfig controls the structured logger.
type LogConfig struct {
	Level  string `yaml:"level"`
	Format string `yaml:"format"`
}

// SessionConfig selects the session store backend and the idle timeout.
type SessionConfig struct {
	Backend        string      `yaml:"backend"`
	TimeoutSeconds int         `yaml:"timeout_seconds"`
	Redis          RedisConfig `yaml:"redis"`
}

// RedisConfig holds Redis connection settings for the redis session backend.
type RedisConfig struct {
	Addr     string `yaml:"addr"`
	Password string `yaml:"password"`
	DB       int    `yaml:"db"`
}

// DatabaseConfig holds the order store connection. An empty DSN selects the
// in-memory order store.
type DatabaseConfig struct {
	DSN string `yaml:"dsn"`
}

// SpeechConfig controls TTS rendering of responses.
type SpeechConfig struct {
	Enabled          bool   `yaml:"enabled"`
	URL              string `yaml:"url"`
	AudioDir         string `yaml:"audio_dir"`
	RetentionSeconds int    `yaml:"retention_seconds"`
}

// CatalogConfig optionally points at a price catalog file. Empty means the
// built-in catalog.
type CatalogConfig struct {
	Path string `yaml:"path"`
}

// Default returns the configuration used when no file is given.
func Default() Config {
	return Config{
		Server: ServerConfig{
			Addr:                   ":8080",
			ShutdownTimeoutSeconds: 10,
		},
		Log: LogConfig{
			Level:  "info",
			Format: "text",
		},
		Session: SessionConfig{
			Backend:        BackendMemory,
			TimeoutSeconds: 300,
			Redis: RedisConfig{
				Addr: "localhost:6379",
			},
		},
		Speech: SpeechConfig{
			URL:              "http://localhost:5002",
			AudioDir:         "audio",
			RetentionSeconds: 3600,
		},
	}
}

// Load reads the config file at path. An empty path returns Default().
func Load(path string) (Config, error) {
	if path == "" {
		return Default(), nil
	}
	f, err := os.Open(path)
	if err != nil {
		return Config{}, fmt.Errorf("config: open %s: %w", path, err)
	}
	defer f.Close()
	cfg, err := LoadFromReader(f)
	if err != nil {
		return Config{}, fmt.Errorf("config: parse %s: %w", path, err)
	}
	return cfg, nil
}

// LoadFromReader parses YAML from r on top of the defaults. Unknown fields
// are rejected so typos fail loudly.
func LoadFromReader(r io.Reader) (Config, error) {
	cfg := Default()
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&cfg); err != nil {
		if err == io.EOF {
			return cfg, nil
		}
		return Config{}, err
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Validate checks settings the decoder cannot.
func (c Config) Validate() error {
	switch c.Session.Backend {
	case BackendMemory, BackendRedis:
	default:
		return fmt.Errorf("config: unknown session backend %q", c.Session.Backend)
	}
	if c.Session.TimeoutSeconds <= 0 {
		return fmt.Errorf("config: session timeout_seconds must be positive, got %d", c.Session.TimeoutSeconds)
	}
	if c.Session.Backend == BackendRedis && strings.TrimSpace(c.Session.Redis.Addr) == "" {
		return fmt.Errorf("config: redis backend selected but redis.addr is empty")
	}
	switch c.Log.Format {
	case "text", "json":
	default:
		return fmt.Errorf("config: unknown log format %q", c.Log.Format)
	}
	if c.Speech.Enabled {
		if strings.TrimSpace(c.Speech.URL) == "" {
			return fmt.Errorf("config: speech enabled but url is empty")
		}
		if c.Speech.RetentionSeconds <= 0 {
			return fmt.Errorf("config: speech retention_seconds must be positive, got %d", c.Speech.RetentionSeconds)
		}
	}
	return nil
}

// SessionTimeout returns the idle timeout as a duration.
func (c Config) SessionTimeout() time.Duration {
	return time.Duration(c.Session.TimeoutSeconds) * time.Second
}

// SpeechRetention returns the audio retention window as a duration.
func (c Config) SpeechRetention() time.Duration {
	return time.Duration(c.Speech.RetentionSeconds) * time.Second
}

// ShutdownTimeout returns the graceful shutdown window as a duration.
func (c Config) ShutdownTimeout() time.Duration {
	return time.Duration(c.Server.ShutdownTimeoutSeconds) * time.Second
}
