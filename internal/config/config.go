package config

import (
	"os"
	"path/filepath"

	"github.com/adrg/xdg"
	"github.com/knadh/koanf/parsers/toml"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
)

const appName = "waves-lite"

type Config struct {
	Icons         string  `koanf:"icons"`  // "nerd", "unicode", or "none"
	Volume        float64 `koanf:"volume"` // initial volume, 0.0-1.0 (default: 1.0)
	Shuffle       bool    `koanf:"shuffle"`
	Repeat        string  `koanf:"repeat"` // "none", "all", or "one"
	MPRIS         *bool   `koanf:"mpris"`  // expose the player over D-Bus (default: true)
	Notifications bool    `koanf:"notifications"`
	LogFile       string  `koanf:"log_file"` // empty disables logging

	Visualizer VisualizerConfig `koanf:"visualizer"`
}

// VisualizerConfig holds the spectrum visualizer settings.
type VisualizerConfig struct {
	Enabled *bool `koanf:"enabled"` // default: true
	Bars    int   `koanf:"bars"`    // number of frequency bars (8-128, default: 32)
}

func Load() (*Config, error) {
	return loadFrom(getConfigPaths())
}

func loadFrom(paths []string) (*Config, error) {
	k := koanf.New(".")

	// Later files override earlier ones
	for _, path := range paths {
		if _, err := os.Stat(path); err == nil {
			if err := k.Load(file.Provider(path), toml.Parser()); err != nil {
				return nil, err
			}
		}
	}

	cfg := &Config{
		Volume: 1,
	}
	if err := k.Unmarshal("", cfg); err != nil {
		return nil, err
	}

	if cfg.LogFile != "" {
		cfg.LogFile = expandPath(cfg.LogFile)
	}

	return cfg, nil
}

func getConfigPaths() []string {
	return []string{
		// 1. $XDG_CONFIG_HOME/waves-lite/config.toml
		filepath.Join(xdg.ConfigHome, appName, "config.toml"),
		// 2. ./config.toml (pwd, highest priority)
		"config.toml",
	}
}

func expandPath(path string) string {
	if path != "" && path[0] == '~' {
		if home, err := os.UserHomeDir(); err == nil {
			return filepath.Join(home, path[1:])
		}
	}
	return path
}

// GetVolume returns the initial volume clamped to [0,1].
func (c *Config) GetVolume() float64 {
	return min(max(c.Volume, 0), 1)
}

// MPRISEnabled reports whether the D-Bus media player interface should be registered.
func (c *Config) MPRISEnabled() bool {
	return c.MPRIS == nil || *c.MPRIS
}

// GetVisualizerConfig returns the visualizer configuration with defaults applied.
func (c *Config) GetVisualizerConfig() VisualizerConfig {
	cfg := c.Visualizer
	if cfg.Enabled == nil {
		enabled := true
		cfg.Enabled = &enabled
	}
	if cfg.Bars < 8 || cfg.Bars > 128 {
		cfg.Bars = 32
	}
	return cfg
}

// VisualizerEnabled reports whether the spectrum visualizer is shown.
func (c *Config) VisualizerEnabled() bool {
	return *c.GetVisualizerConfig().Enabled
}
