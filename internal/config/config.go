// Package config loads the deck's tunables from YAML on top of embedded defaults.
package config

import (
	_ "embed"
	"errors"
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

//go:embed defaults.yaml
var defaultsYAML []byte

// Config holds every tunable of the deck.
type Config struct {
	Window  WindowConfig  `yaml:"window"`
	Vinyl   VinylConfig   `yaml:"vinyl"`
	ToneArm ToneArmConfig `yaml:"tone_arm"`
	Cursor  CursorConfig  `yaml:"cursor"`
	Deck    DeckConfig    `yaml:"deck"`
}

// WindowConfig holds display settings.
type WindowConfig struct {
	Width  int    `yaml:"width"`
	Height int    `yaml:"height"`
	TPS    int    `yaml:"tps"` // ticks per second of the update loop
	Title  string `yaml:"title"`
}

// VinylConfig holds the record's physics and drawing parameters.
type VinylConfig struct {
	Radius            float64       `yaml:"radius"`
	Friction          float64       `yaml:"friction"`           // velocity multiplier per momentum tick
	MomentumThreshold float64       `yaml:"momentum_threshold"` // |v| below this stops the momentum loop
	SpinRate          float64       `yaml:"spin_rate"`          // degrees per tick while playing
	RestartPulse      time.Duration `yaml:"restart_pulse"`      // spin suspension on track change
	TrailSize         int           `yaml:"trail_size"`         // angle samples kept for the motion trail
}

// ToneArmConfig holds tone arm angles in degrees.
type ToneArmConfig struct {
	RestAngle float64 `yaml:"rest_angle"`
	PlayAngle float64 `yaml:"play_angle"`
	Easing    float64 `yaml:"easing"`
}

// CursorConfig holds HUD cursor parameters.
type CursorConfig struct {
	TrailFactor float64 `yaml:"trail_factor"`
	DotRadius   float64 `yaml:"dot_radius"`
	BracketSize float64 `yaml:"bracket_size"`
}

// DeckConfig holds playback controller settings.
type DeckConfig struct {
	TracksFile string `yaml:"tracks_file"` // CSV track list; empty uses the built-in list
}

// Load reads configuration from the given YAML file path.
// If path is empty, only embedded defaults are used.
func Load(path string) (*Config, error) {
	cfg := &Config{}
	if err := yaml.Unmarshal(defaultsYAML, cfg); err != nil {
		return nil, fmt.Errorf("parsing embedded defaults: %w", err)
	}

	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("reading config file: %w", err)
		}
		// Only overwrites fields present in the file
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("parsing config file: %w", err)
		}
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate rejects values the physics or layout cannot work with.
func (c *Config) Validate() error {
	var errs []error
	if c.Window.Width <= 0 || c.Window.Height <= 0 {
		errs = append(errs, fmt.Errorf("window size must be positive, got %dx%d", c.Window.Width, c.Window.Height))
	}
	if c.Window.TPS <= 0 {
		errs = append(errs, fmt.Errorf("window.tps must be positive, got %d", c.Window.TPS))
	}
	if c.Vinyl.Radius <= 0 {
		errs = append(errs, fmt.Errorf("vinyl.radius must be positive, got %g", c.Vinyl.Radius))
	}
	if c.Vinyl.Friction <= 0 || c.Vinyl.Friction >= 1 {
		errs = append(errs, fmt.Errorf("vinyl.friction must be in (0, 1), got %g", c.Vinyl.Friction))
	}
	if c.Vinyl.MomentumThreshold <= 0 {
		errs = append(errs, fmt.Errorf("vinyl.momentum_threshold must be positive, got %g", c.Vinyl.MomentumThreshold))
	}
	if c.Vinyl.RestartPulse < 0 {
		errs = append(errs, fmt.Errorf("vinyl.restart_pulse must not be negative, got %s", c.Vinyl.RestartPulse))
	}
	if c.Vinyl.TrailSize < 1 {
		errs = append(errs, fmt.Errorf("vinyl.trail_size must be at least 1, got %d", c.Vinyl.TrailSize))
	}
	if c.ToneArm.Easing <= 0 || c.ToneArm.Easing > 1 {
		errs = append(errs, fmt.Errorf("tone_arm.easing must be in (0, 1], got %g", c.ToneArm.Easing))
	}
	if c.Cursor.TrailFactor <= 0 || c.Cursor.TrailFactor > 1 {
		errs = append(errs, fmt.Errorf("cursor.trail_factor must be in (0, 1], got %g", c.Cursor.TrailFactor))
	}
	return errors.Join(errs...)
}

// PulseTicks converts the restart pulse duration into update ticks.
func (c *Config) PulseTicks() int {
	return int(c.Vinyl.RestartPulse * time.Duration(c.Window.TPS) / time.Second)
}

// TickDuration is the simulated time covered by one update tick.
func (c *Config) TickDuration() time.Duration {
	return time.Second / time.Duration(c.Window.TPS)
}
