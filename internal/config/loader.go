// Package config loads daemon configuration from YAML, JSON, or TOML files.
package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	toml "github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"

	"embedd/pkg/types"
)

// Config holds runtime parameters for the daemon.
// Zero values mean "unspecified" and will be replaced by defaults in main.
type Config struct {
	Addr       string              `json:"addr" yaml:"addr" toml:"addr"`
	LogLevel   string              `json:"log_level" yaml:"log_level" toml:"log_level"`
	QueueDepth int                 `json:"queue_depth" yaml:"queue_depth" toml:"queue_depth"`
	MaxWaitMS  int                 `json:"max_wait_ms" yaml:"max_wait_ms" toml:"max_wait_ms"`
	Models     []types.ModelConfig `json:"models" yaml:"models" toml:"models"`

	// HTTP tunables
	MaxBodyBytes int64    `json:"max_body_bytes" yaml:"max_body_bytes" toml:"max_body_bytes"`
	CORSEnabled  bool     `json:"cors_enabled" yaml:"cors_enabled" toml:"cors_enabled"`
	CORSOrigins  []string `json:"cors_origins" yaml:"cors_origins" toml:"cors_origins"`
}

// Load reads a configuration file based on its extension.
// Supports: .yaml/.yml, .json, .toml
func Load(path string) (Config, error) {
	var cfg Config
	if path == "" {
		return cfg, fmt.Errorf("empty config path")
	}
	b, err := os.ReadFile(path)
	if err != nil {
		return cfg, err
	}
	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".yaml", ".yml":
		if err := yaml.Unmarshal(b, &cfg); err != nil {
			return cfg, err
		}
	case ".json":
		if err := json.Unmarshal(b, &cfg); err != nil {
			return cfg, err
		}
	case ".toml":
		if err := toml.Unmarshal(b, &cfg); err != nil {
			return cfg, err
		}
	default:
		return cfg, fmt.Errorf("unsupported config extension: %s", ext)
	}
	if err := cfg.expandModelPaths(); err != nil {
		return cfg, err
	}
	return cfg, nil
}

// expandModelPaths resolves '~' in configured model paths.
func (c *Config) expandModelPaths() error {
	for i := range c.Models {
		p, err := ExpandHome(c.Models[i].Path)
		if err != nil {
			return err
		}
		c.Models[i].Path = p
	}
	return nil
}

// ExpandHome expands a leading '~' to the user's home directory.
func ExpandHome(path string) (string, error) {
	if path == "" {
		return path, nil
	}
	if path[0] != '~' {
		return path, nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("home dir: %w", err)
	}
	if path == "~" {
		return home, nil
	}
	// handle cases like ~/models/embeddings
	return filepath.Join(home, strings.TrimPrefix(path, "~/")), nil
}
