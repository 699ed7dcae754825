// Package config loads editor settings. Values are layered: built-in
// defaults, then an optional YAML file, then SPRITEFRAME_* environment
// variables.
package config

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"strings"

	"github.com/kelseyhightower/envconfig"
	"gopkg.in/yaml.v3"

	"github.com/phanxgames/spriteframe"
)

// EnvPrefix prefixes every environment variable, e.g. SPRITEFRAME_FRAME_WIDTH.
const EnvPrefix = "SPRITEFRAME"

// Config holds every tunable of the editor hosts. Colors are hex strings
// ("#rrggbb" or "#rrggbbaa").
//
// No field carries an envconfig default tag: envconfig would apply it over
// values read from the YAML file.
type Config struct {
	FrameWidth   float64 `yaml:"frame_width" envconfig:"FRAME_WIDTH"`
	FrameHeight  float64 `yaml:"frame_height" envconfig:"FRAME_HEIGHT"`
	HandleMargin float64 `yaml:"handle_margin" envconfig:"HANDLE_MARGIN"`
	MinSize      float64 `yaml:"min_size" envconfig:"MIN_SIZE"`

	Dim  float64 `yaml:"dim" envconfig:"DIM"`
	Zoom float64 `yaml:"zoom" envconfig:"ZOOM"`

	WindowTitle  string `yaml:"window_title" envconfig:"WINDOW_TITLE"`
	WindowWidth  int    `yaml:"window_width" envconfig:"WINDOW_WIDTH"`
	WindowHeight int    `yaml:"window_height" envconfig:"WINDOW_HEIGHT"`
	ShowStatus   bool   `yaml:"show_status" envconfig:"SHOW_STATUS"`
	ExportDir    string `yaml:"export_dir" envconfig:"EXPORT_DIR"`

	Canvas          string  `yaml:"canvas" envconfig:"CANVAS"`
	Backdrop        string  `yaml:"backdrop" envconfig:"BACKDROP"`
	Selection       string  `yaml:"selection" envconfig:"SELECTION"`
	SelectionWidth  float64 `yaml:"selection_width" envconfig:"SELECTION_WIDTH"`
	HandleColor     string  `yaml:"handle_color" envconfig:"HANDLE_COLOR"`
	HandleRadius    float64 `yaml:"handle_radius" envconfig:"HANDLE_RADIUS"`
	TermZoom        float64 `yaml:"term_zoom" envconfig:"TERM_ZOOM"`
	TermHandleScale float64 `yaml:"term_handle_scale" envconfig:"TERM_HANDLE_SCALE"`

	LogLevel string `yaml:"log_level" envconfig:"LOG_LEVEL"`
	Debug    bool   `yaml:"debug" envconfig:"DEBUG"`
}

// Default returns the built-in settings.
func Default() Config {
	return Config{
		FrameWidth:      spriteframe.DefaultFrame.Width,
		FrameHeight:     spriteframe.DefaultFrame.Height,
		HandleMargin:    spriteframe.DefaultHandleMargin.X,
		MinSize:         spriteframe.DefaultMinSize.X,
		Dim:             0.5,
		WindowTitle:     "spriteframe",
		WindowWidth:     1280,
		WindowHeight:    720,
		ShowStatus:      true,
		Canvas:          "#17171c",
		Backdrop:        "#00000066",
		Selection:       "#3b82f5",
		SelectionWidth:  2,
		HandleColor:     "#ffffff",
		HandleRadius:    5,
		TermHandleScale: 0.3,
		LogLevel:        "info",
	}
}

// Load builds a Config from defaults, the YAML file at path (skipped when
// path is empty), and the environment, then validates it.
func Load(path string) (Config, error) {
	cfg := Default()
	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return Config{}, fmt.Errorf("read config: %w", err)
		}
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return Config{}, fmt.Errorf("parse config %s: %w", path, err)
		}
	}
	if err := envconfig.Process(EnvPrefix, &cfg); err != nil {
		return Config{}, fmt.Errorf("read environment: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Validate reports every invalid setting at once.
func (c Config) Validate() error {
	var errs []error
	if !(c.FrameWidth > 0) || !(c.FrameHeight > 0) {
		errs = append(errs, fmt.Errorf("frame size %gx%g must be positive", c.FrameWidth, c.FrameHeight))
	}
	if c.HandleMargin < 0 {
		errs = append(errs, fmt.Errorf("handle_margin %g must not be negative", c.HandleMargin))
	}
	if c.MinSize < 0 {
		errs = append(errs, fmt.Errorf("min_size %g must not be negative", c.MinSize))
	}
	if c.Dim < 0 || c.Dim > 1 {
		errs = append(errs, fmt.Errorf("dim %g must be within [0, 1]", c.Dim))
	}
	if c.Zoom < 0 || c.TermZoom < 0 {
		errs = append(errs, errors.New("zoom must not be negative"))
	}
	for _, f := range []struct{ name, value string }{
		{"canvas", c.Canvas},
		{"backdrop", c.Backdrop},
		{"selection", c.Selection},
		{"handle_color", c.HandleColor},
	} {
		if _, ok := spriteframe.ColorFromHex(f.value); !ok {
			errs = append(errs, fmt.Errorf("%s %q is not a hex color", f.name, f.value))
		}
	}
	if _, err := ParseLevel(c.LogLevel); err != nil {
		errs = append(errs, err)
	}
	if len(errs) > 0 {
		return fmt.Errorf("invalid config: %w", errors.Join(errs...))
	}
	return nil
}

// Frame returns the configured frame.
func (c Config) Frame() spriteframe.Frame {
	return spriteframe.Frame{Width: c.FrameWidth, Height: c.FrameHeight}
}

// NewEditor returns an empty editor with the configured frame, handle margin
// and minimum size.
func (c Config) NewEditor() *spriteframe.Editor {
	ed := spriteframe.NewEditor(c.Frame())
	ed.SetHandleMargin(spriteframe.Vec2{X: c.HandleMargin, Y: c.HandleMargin})
	ed.SetMinSize(spriteframe.Vec2{X: c.MinSize, Y: c.MinSize})
	return ed
}

// CanvasColor returns the parsed canvas color. Call Validate first.
func (c Config) CanvasColor() spriteframe.Color {
	col, _ := spriteframe.ColorFromHex(c.Canvas)
	return col
}

// Style returns the scene style. The selection fill is the selection color
// at 20% alpha. Call Validate first.
func (c Config) Style() spriteframe.Style {
	backdrop, _ := spriteframe.ColorFromHex(c.Backdrop)
	sel, _ := spriteframe.ColorFromHex(c.Selection)
	handle, _ := spriteframe.ColorFromHex(c.HandleColor)
	return spriteframe.Style{
		Backdrop:           backdrop,
		SelectionFill:      sel.WithAlpha(sel.A * 0.2),
		SelectionStroke:    sel,
		SelectionLineWidth: c.SelectionWidth,
		HandleRadius:       c.HandleRadius,
		HandleColor:        handle,
	}
}

// ParseLevel maps a level name (debug, info, warn, error) to a slog.Level.
func ParseLevel(s string) (slog.Level, error) {
	var l slog.Level
	if err := l.UnmarshalText([]byte(strings.TrimSpace(s))); err != nil {
		return 0, fmt.Errorf("log_level %q: %w", s, err)
	}
	return l, nil
}
