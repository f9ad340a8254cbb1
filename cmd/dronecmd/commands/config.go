// Package commands implements the dronecmd CLI commands.
package commands

import (
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/dronecmd/dronecmd-go/pkg/session"
)

// Config is the optional YAML configuration shared by the commands.
type Config struct {
	// Schema is a directory of feature YAMLs. Empty uses the built-in schema.
	Schema string `yaml:"schema"`

	DeviceName string        `yaml:"device_name"`
	Session    SessionConfig `yaml:"session"`
	Log        LogConfig     `yaml:"log"`
}

// SessionConfig tunes the replay session.
type SessionConfig struct {
	QueueSize             int `yaml:"queue_size"`
	UnknownWarnIntervalMs int `yaml:"unknown_warn_interval_ms"`
	MaxFrameSize          int `yaml:"max_frame_size"`
}

// LogConfig selects the operational log level, format and optional file.
type LogConfig struct {
	Level  string        `yaml:"level"`  // debug, info, warn, error
	Format string        `yaml:"format"` // text, json
	File   LogFileConfig `yaml:"file"`
}

// LogFileConfig configures the rolling log file.
type LogFileConfig struct {
	Filename   string `yaml:"filename"`
	MaxSizeMB  int    `yaml:"max_size_mb"`
	MaxBackups int    `yaml:"max_backups"`
	MaxAgeDays int    `yaml:"max_age_days"`
	Compress   bool   `yaml:"compress"`
}

// DefaultConfig returns the configuration used when no file is given.
func DefaultConfig() *Config {
	cfg := &Config{}
	Normalize(cfg)
	return cfg
}

// LoadConfig reads, validates and normalizes a configuration file. An empty
// path returns DefaultConfig.
func LoadConfig(path string) (*Config, error) {
	if path == "" {
		return DefaultConfig(), nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading config: %w", err)
	}
	cfg, err := ParseConfig(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return cfg, nil
}

// ParseConfig parses, validates and normalizes configuration bytes.
func ParseConfig(data []byte) (*Config, error) {
	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("parsing config: %w", err)
	}
	if err := Validate(&cfg); err != nil {
		return nil, err
	}
	Normalize(&cfg)
	return &cfg, nil
}

// Validate checks configuration correctness. It does not mutate cfg.
func Validate(cfg *Config) error {
	if cfg == nil {
		return errors.New("nil config")
	}
	if cfg.Session.QueueSize < 0 {
		return fmt.Errorf("session.queue_size must not be negative, got %d", cfg.Session.QueueSize)
	}
	if cfg.Session.UnknownWarnIntervalMs < 0 {
		return fmt.Errorf("session.unknown_warn_interval_ms must not be negative, got %d", cfg.Session.UnknownWarnIntervalMs)
	}
	if cfg.Session.MaxFrameSize < 0 {
		return fmt.Errorf("session.max_frame_size must not be negative, got %d", cfg.Session.MaxFrameSize)
	}
	if _, err := parseLevel(cfg.Log.Level); err != nil {
		return err
	}
	switch strings.ToLower(cfg.Log.Format) {
	case "", "text", "json":
	default:
		return fmt.Errorf("log.format must be text or json, got %q", cfg.Log.Format)
	}
	f := cfg.Log.File
	if f.MaxSizeMB < 0 || f.MaxBackups < 0 || f.MaxAgeDays < 0 {
		return errors.New("log.file limits must not be negative")
	}
	return nil
}

// Normalize fills defaults. It must be called after Validate.
func Normalize(cfg *Config) {
	if cfg.Session.QueueSize == 0 {
		cfg.Session.QueueSize = session.DefaultQueueSize
	}
	if cfg.Session.UnknownWarnIntervalMs == 0 {
		cfg.Session.UnknownWarnIntervalMs = int(session.DefaultConfig().UnknownWarnInterval / time.Millisecond)
	}
	if cfg.Log.Level == "" {
		cfg.Log.Level = "info"
	}
	if cfg.Log.Format == "" {
		cfg.Log.Format = "text"
	}
	if cfg.Log.File.Filename != "" && cfg.Log.File.MaxSizeMB == 0 {
		cfg.Log.File.MaxSizeMB = 10
	}
}

// SessionConfig returns the session configuration described by cfg.
func (cfg *Config) SessionConfig() session.Config {
	sc := session.DefaultConfig()
	sc.QueueSize = cfg.Session.QueueSize
	sc.DeviceName = cfg.DeviceName
	sc.UnknownWarnInterval = time.Duration(cfg.Session.UnknownWarnIntervalMs) * time.Millisecond
	return sc
}
