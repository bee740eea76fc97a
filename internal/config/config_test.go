//nolint:goconst // test cases intentionally repeat strings for readability
package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExpandPath(t *testing.T) {
	home, err := os.UserHomeDir()
	if err != nil {
		t.Skipf("Could not get home dir: %v", err)
	}

	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{"tilde expands to home", "~/waves.log", filepath.Join(home, "waves.log")},
		{"absolute path unchanged", "/var/log/waves.log", "/var/log/waves.log"},
		{"relative path unchanged", "logs/waves.log", "logs/waves.log"},
		{"empty string unchanged", "", ""},
		{"tilde only", "~", home},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, expandPath(tt.input))
		})
	}
}

func TestGetConfigPaths(t *testing.T) {
	paths := getConfigPaths()

	require.Len(t, paths, 2)
	assert.Equal(t, filepath.Join(appName, "config.toml"), filepath.Join(filepath.Base(filepath.Dir(paths[0])), filepath.Base(paths[0])))
	assert.Equal(t, "config.toml", paths[len(paths)-1], "local config has the highest priority")
}

func writeConfig(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestLoadFrom_NoFiles(t *testing.T) {
	cfg, err := loadFrom([]string{filepath.Join(t.TempDir(), "missing.toml")})
	require.NoError(t, err)

	assert.InDelta(t, 1.0, cfg.GetVolume(), 0)
	assert.False(t, cfg.Shuffle)
	assert.Empty(t, cfg.Repeat)
	assert.True(t, cfg.MPRISEnabled())
	assert.True(t, cfg.VisualizerEnabled())
	assert.Equal(t, 32, cfg.GetVisualizerConfig().Bars)
	assert.Empty(t, cfg.LogFile)
}

func TestLoadFrom_ParsesValues(t *testing.T) {
	dir := t.TempDir()
	path := writeConfig(t, dir, "config.toml", `
icons = "nerd"
volume = 0.4
shuffle = true
repeat = "all"
mpris = false
notifications = true
log_file = "/tmp/waves-lite.log"

[visualizer]
enabled = false
bars = 48
`)

	cfg, err := loadFrom([]string{path})
	require.NoError(t, err)

	assert.Equal(t, "nerd", cfg.Icons)
	assert.InDelta(t, 0.4, cfg.GetVolume(), 0.0001)
	assert.True(t, cfg.Shuffle)
	assert.Equal(t, "all", cfg.Repeat)
	assert.False(t, cfg.MPRISEnabled())
	assert.True(t, cfg.Notifications)
	assert.Equal(t, "/tmp/waves-lite.log", cfg.LogFile)
	assert.False(t, cfg.VisualizerEnabled())
	assert.Equal(t, 48, cfg.GetVisualizerConfig().Bars)
}

func TestLoadFrom_LaterFileWins(t *testing.T) {
	dir := t.TempDir()
	global := writeConfig(t, dir, "global.toml", "volume = 0.2\nicons = \"unicode\"\n")
	local := writeConfig(t, dir, "local.toml", "volume = 0.7\n")

	cfg, err := loadFrom([]string{global, local})
	require.NoError(t, err)

	assert.InDelta(t, 0.7, cfg.GetVolume(), 0.0001)
	assert.Equal(t, "unicode", cfg.Icons, "keys absent from the later file are kept")
}

func TestLoadFrom_InvalidTOML(t *testing.T) {
	path := writeConfig(t, t.TempDir(), "config.toml", "volume = [")

	_, err := loadFrom([]string{path})
	assert.Error(t, err)
}

func TestGetVolume_Clamps(t *testing.T) {
	assert.InDelta(t, 1.0, (&Config{Volume: 3}).GetVolume(), 0)
	assert.InDelta(t, 0.0, (&Config{Volume: -1}).GetVolume(), 0)
}

func TestGetVisualizerConfig_Defaults(t *testing.T) {
	tests := []struct {
		name string
		bars int
		want int
	}{
		{"zero uses default", 0, 32},
		{"too small uses default", 4, 32},
		{"too large uses default", 500, 32},
		{"valid kept", 64, 64},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := &Config{Visualizer: VisualizerConfig{Bars: tt.bars}}
			assert.Equal(t, tt.want, cfg.GetVisualizerConfig().Bars)
		})
	}
}
