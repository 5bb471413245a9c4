// Package sidecarserver assembles the AskQ sidecar: the sandboxed file
// accessor, the UE4 bridge, the skill library, and the MCP server that
// exposes them as tools.
package sidecarserver

import (
	"fmt"
	"log/slog"
	"os"

	"gopkg.in/yaml.v3"
)

// Config is the sidecar's YAML configuration.
type Config struct {
	// ProjectRoot is the directory all file access is confined to.
	ProjectRoot string `yaml:"project_root"`

	// SkillsDir holds skill packages; empty disables skill discovery.
	SkillsDir string `yaml:"skills_dir"`

	Bridge BridgeConfig `yaml:"bridge"`
	Log    LogConfig    `yaml:"log"`
}

// BridgeConfig controls the UE4 editor connection listener.
type BridgeConfig struct {
	Enabled    bool   `yaml:"enabled"`
	ListenAddr string `yaml:"listen_addr"`
}

// LogConfig controls the slog setup.
type LogConfig struct {
	Level string `yaml:"level"`
}

// DefaultConfig returns the configuration used when no file is given.
func DefaultConfig() Config {
	return Config{
		ProjectRoot: ".",
		Bridge: BridgeConfig{
			ListenAddr: "127.0.0.1:8765",
		},
		Log: LogConfig{
			Level: "info",
		},
	}
}

// LoadConfig reads a YAML config file over the defaults. An empty path
// returns the defaults unchanged.
func LoadConfig(path string) (Config, error) {
	cfg := DefaultConfig()
	if path == "" {
		return cfg, nil
	}

	raw, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("failed to read config %s: %w", path, err)
	}
	if err := yaml.Unmarshal(raw, &cfg); err != nil {
		return cfg, fmt.Errorf("failed to parse config %s: %w", path, err)
	}
	if cfg.ProjectRoot == "" {
		cfg.ProjectRoot = "."
	}
	if cfg.Bridge.ListenAddr == "" {
		cfg.Bridge.ListenAddr = DefaultConfig().Bridge.ListenAddr
	}
	return cfg, nil
}

// SlogLevel maps the configured level name to a slog level, defaulting to
// info for unknown names.
func (c LogConfig) SlogLevel() slog.Level {
	switch c.Level {
	case "debug":
		return slog.LevelDebug
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}
