// Package config loads the kiosk configuration the paint core
// consumes: the data root, the autosave cadence, the undo depth, and
// the color palette.
//
// Values resolve in three layers: compiled-in defaults, then the first
// YAML config file found, then environment overrides (KIDPAINT_*).
package config

import (
	"errors"
	"fmt"
	"image/color"
	"io/fs"
	"os"
	"time"

	"github.com/goccy/go-yaml"
	"github.com/kelseyhightower/envconfig"
)

// EnvConfigPath names the environment variable that points at an
// explicit config file, checked before the default locations.
const EnvConfigPath = "KIDPAINT_CONFIG"

// Config holds all configuration the paint core consumes.
type Config struct {
	// DataRoot is the base directory for all persisted state.
	DataRoot string `yaml:"data_root" envconfig:"DATA_ROOT"`

	Paint PaintConfig `yaml:"paint"`
}

// PaintConfig holds the paint app's runtime settings.
type PaintConfig struct {
	// AutosaveSeconds is the latest-slot write cadence.
	AutosaveSeconds int `yaml:"autosave_seconds" envconfig:"AUTOSAVE_SECONDS"`

	// UndoDepth caps the undo stack.
	UndoDepth int `yaml:"undo_depth" envconfig:"UNDO_DEPTH"`

	// Palette is the ordered list of selectable colors as RGB triples.
	Palette [][3]uint8 `yaml:"palette" ignored:"true"`
}

// Default returns the compiled-in configuration.
func Default() *Config {
	return &Config{
		DataRoot: "/data/kidbox",
		Paint: PaintConfig{
			AutosaveSeconds: 10,
			UndoDepth:       10,
			Palette: [][3]uint8{
				{0, 0, 0},
				{255, 255, 255},
				{220, 20, 60},
				{255, 127, 0},
				{255, 215, 0},
				{34, 139, 34},
				{0, 128, 128},
				{30, 144, 255},
				{65, 105, 225},
				{138, 43, 226},
				{255, 105, 180},
				{210, 105, 30},
				{105, 105, 105},
				{0, 191, 255},
				{154, 205, 50},
				{255, 99, 71},
			},
		},
	}
}

// candidatePaths lists config file locations in priority order.
func candidatePaths() []string {
	paths := make([]string, 0, 3)
	if p := os.Getenv(EnvConfigPath); p != "" {
		paths = append(paths, p)
	}
	return append(paths, "config.yaml", "/opt/kidbox/config.yaml")
}

// Load resolves the configuration: defaults, overlaid with the first
// readable YAML file from the candidate paths, overlaid with
// KIDPAINT_* environment variables. Keys absent from the file keep
// their defaults.
func Load() (*Config, error) {
	cfg := Default()
	for _, path := range candidatePaths() {
		data, err := os.ReadFile(path)
		if err != nil {
			if errors.Is(err, fs.ErrNotExist) {
				continue
			}
			return nil, fmt.Errorf("config: read %s: %w", path, err)
		}
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("config: parse %s: %w", path, err)
		}
		break
	}
	if err := envconfig.Process("kidpaint", cfg); err != nil {
		return nil, fmt.Errorf("config: environment overrides: %w", err)
	}
	cfg.normalize()
	return cfg, nil
}

// LoadOrDefault loads the configuration or falls back to the defaults.
// The kiosk never refuses to start over a bad config file.
func LoadOrDefault() *Config {
	cfg, err := Load()
	if err != nil {
		return Default()
	}
	return cfg
}

// normalize repairs values a hand-edited config file can break.
// The child-facing app prefers sane fallbacks over refusing to run.
func (c *Config) normalize() {
	def := Default()
	if c.DataRoot == "" {
		c.DataRoot = def.DataRoot
	}
	if c.Paint.AutosaveSeconds <= 0 {
		c.Paint.AutosaveSeconds = def.Paint.AutosaveSeconds
	}
	if c.Paint.UndoDepth <= 0 {
		c.Paint.UndoDepth = def.Paint.UndoDepth
	}
	if len(c.Paint.Palette) == 0 {
		c.Paint.Palette = def.Paint.Palette
	}
}

// AutosaveInterval returns the autosave cadence as a duration.
func (c *Config) AutosaveInterval() time.Duration {
	return time.Duration(c.Paint.AutosaveSeconds) * time.Second
}

// PaletteColors returns the palette as opaque colors, in order.
func (c *Config) PaletteColors() []color.NRGBA {
	colors := make([]color.NRGBA, len(c.Paint.Palette))
	for i, rgb := range c.Paint.Palette {
		colors[i] = color.NRGBA{R: rgb[0], G: rgb[1], B: rgb[2], A: 255}
	}
	return colors
}
