// Package config builds plog loggers and sinks from YAML files and PLOG_
// environment variables.
//
//	defaults:
//	  level: info
//	loggers:
//	  - name: root
//	    sinks:
//	      - {type: console, pattern: "%m%n"}
//	  - name: db
//	    level: warn
//	    sinks:
//	      - {type: rolling, path: /var/log/db.log, max_size_mb: 50}
package config

import (
	"fmt"
	"strings"

	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/confmap"
	env "github.com/knadh/koanf/providers/env/v2"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/providers/rawbytes"
	"github.com/knadh/koanf/v2"

	"github.com/trickstertwo/plog"
)

// EnvPrefix marks the environment variables read by Load and Parse.
// PLOG_DEFAULTS_LEVEL sets defaults.level.
const EnvPrefix = "PLOG_"

// Sink types.
const (
	SinkConsole = "console"
	SinkFile    = "file"
	SinkRolling = "rolling"
)

var sinkTypes = []string{SinkConsole, SinkFile, SinkRolling}

type Config struct {
	Defaults Defaults       `koanf:"defaults"`
	Loggers  []LoggerConfig `koanf:"loggers"`
}

// Defaults apply to every logger that leaves the setting empty.
type Defaults struct {
	Level   string `koanf:"level"`
	Pattern string `koanf:"pattern"`
}

type LoggerConfig struct {
	Name    string       `koanf:"name"`
	Level   string       `koanf:"level"`
	Pattern string       `koanf:"pattern"`
	Sinks   []SinkConfig `koanf:"sinks"`
}

// SinkConfig describes one sink. Level and Pattern are optional; a sink
// without a pattern renders with its logger's.
type SinkConfig struct {
	Type    string `koanf:"type"`
	Level   string `koanf:"level"`
	Pattern string `koanf:"pattern"`
	Path    string `koanf:"path"`

	// rolling only
	MaxSizeMB  int  `koanf:"max_size_mb"`
	MaxBackups int  `koanf:"max_backups"`
	MaxAgeDays int  `koanf:"max_age_days"`
	Compress   bool `koanf:"compress"`
}

// Load reads the YAML file at path, then applies environment overrides.
func Load(path string) (*Config, error) {
	return load(file.Provider(path))
}

// Parse reads YAML from data, then applies environment overrides.
func Parse(data []byte) (*Config, error) {
	return load(rawbytes.Provider(data))
}

func load(src koanf.Provider) (*Config, error) {
	k := koanf.New(".")

	if err := k.Load(confmap.Provider(map[string]any{
		"defaults.level":   plog.LevelDebug.String(),
		"defaults.pattern": plog.DefaultPattern,
	}, "."), nil); err != nil {
		return nil, fmt.Errorf("failed to load defaults: %w", err)
	}

	if err := k.Load(src, yaml.Parser()); err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}

	if err := k.Load(env.Provider(".", env.Opt{
		Prefix: EnvPrefix,
		TransformFunc: func(key, value string) (string, any) {
			// PLOG_DEFAULTS_LEVEL -> defaults.level
			key = strings.ToLower(strings.TrimPrefix(key, EnvPrefix))
			return strings.Replace(key, "_", ".", 1), value
		},
	}), nil); err != nil {
		return nil, fmt.Errorf("failed to load environment variables: %w", err)
	}

	var cfg Config
	if err := k.Unmarshal("", &cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}
	return &cfg, nil
}
