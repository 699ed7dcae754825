package config

import (
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/phanxgames/spriteframe"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "spriteframe.yaml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o644))
	return path
}

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, spriteframe.DefaultFrame, cfg.Frame())
	assert.Equal(t, "info", cfg.LogLevel)
	assert.False(t, cfg.Debug)
}

func TestLoadLayering(t *testing.T) {
	path := writeConfig(t, `
frame_width: 800
frame_height: 600
dim: 0.25
selection: "#ff0000"
`)
	t.Setenv("SPRITEFRAME_FRAME_HEIGHT", "450")
	t.Setenv("SPRITEFRAME_DEBUG", "true")

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, 800.0, cfg.FrameWidth, "yaml value")
	assert.Equal(t, 450.0, cfg.FrameHeight, "env beats yaml")
	assert.Equal(t, 0.25, cfg.Dim, "yaml float")
	assert.Equal(t, 20.0, cfg.HandleMargin, "default kept")
	assert.True(t, cfg.Debug, "env bool")
	assert.Equal(t, "#ff0000", cfg.Selection, "yaml string")
}

func TestLoadErrors(t *testing.T) {
	tests := []struct {
		name string
		path func(t *testing.T) string
		want string
	}{
		{"missing file", func(t *testing.T) string { return filepath.Join(t.TempDir(), "nope.yaml") }, "read config"},
		{"bad yaml", func(t *testing.T) string { return writeConfig(t, "frame_width: [") }, "parse config"},
		{"invalid value", func(t *testing.T) string { return writeConfig(t, "dim: 2") }, "dim 2"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Load(tt.path(t))
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.want)
		})
	}
}

func TestLoadBadEnv(t *testing.T) {
	t.Setenv("SPRITEFRAME_FRAME_WIDTH", "wide")
	_, err := Load("")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "read environment")
}

func TestValidateReportsEverything(t *testing.T) {
	cfg := Default()
	cfg.FrameWidth = 0
	cfg.MinSize = -1
	cfg.Canvas = "blue"
	cfg.LogLevel = "loud"

	err := cfg.Validate()
	require.Error(t, err)
	for _, want := range []string{"invalid config", "frame size", "min_size", `canvas "blue"`, "log_level"} {
		assert.Contains(t, err.Error(), want)
	}
}

func TestNewEditor(t *testing.T) {
	cfg := Default()
	cfg.FrameWidth, cfg.FrameHeight = 100, 50
	cfg.HandleMargin = 4
	ed := cfg.NewEditor()
	assert.Equal(t, spriteframe.Frame{Width: 100, Height: 50}, ed.Frame())
	assert.Equal(t, spriteframe.V(4, 4), ed.HandleMargin())
}

func TestStyle(t *testing.T) {
	cfg := Default()
	cfg.Selection = "#ff0000"
	cfg.SelectionWidth = 3
	s := cfg.Style()
	assert.Equal(t, spriteframe.Color{R: 1, A: 1}, s.SelectionStroke)
	assert.Equal(t, 1.0, s.SelectionFill.R)
	assert.InDelta(t, 0.2, s.SelectionFill.A, 1e-9)
	assert.Equal(t, 3.0, s.SelectionLineWidth)
	assert.Equal(t, cfg.HandleRadius, s.HandleRadius)
	assert.Equal(t, 1.0, cfg.CanvasColor().A)
}

func TestParseLevel(t *testing.T) {
	tests := []struct {
		in   string
		want slog.Level
		ok   bool
	}{
		{"debug", slog.LevelDebug, true},
		{"INFO", slog.LevelInfo, true},
		{" warn ", slog.LevelWarn, true},
		{"error", slog.LevelError, true},
		{"verbose", 0, false},
	}
	for _, tt := range tests {
		got, err := ParseLevel(tt.in)
		if !tt.ok {
			assert.Error(t, err, tt.in)
			continue
		}
		if assert.NoError(t, err, tt.in) {
			assert.Equal(t, tt.want, got, tt.in)
		}
	}
}
