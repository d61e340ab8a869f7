// Package config loads the overlay host configuration.
package config

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"strings"

	"github.com/spf13/viper"

	"github.com/go-theft-auto/overlay/draw"
	"github.com/go-theft-auto/overlay/input"
)

// Backend names.
const (
	BackendOpenGL = "opengl"
	BackendTerm   = "term"
)

// Config holds host configuration.
type Config struct {
	Backend   string
	Display   DisplayConfig
	Panels    map[string]PanelConfig
	Log       LogConfig
	Telemetry TelemetryConfig
}

// DisplayConfig holds window settings.
type DisplayConfig struct {
	Width      int
	Height     int
	Title      string
	VSync      bool
	ClearColor string `mapstructure:"clear_color"`
	FPS        int
}

// PanelConfig holds per-panel settings, keyed by panel name.
type PanelConfig struct {
	Open   bool
	Hotkey string
}

// LogConfig holds logging settings.
type LogConfig struct {
	Verbose bool
	Level   string
}

// TelemetryConfig holds tracing settings. An empty endpoint disables export.
type TelemetryConfig struct {
	Endpoint    string
	ServiceName string `mapstructure:"service_name"`
}

// Load reads configuration from defaults, an optional file and env.
// Env var overrides use prefix OVERLAY_. When path is empty, OVERLAY_CONFIG
// is consulted, then ./config/overlay.* and ./overlay.* are searched; a
// missing file is not an error unless it was named explicitly.
func Load(path string) (Config, error) {
	v := viper.New()

	v.SetDefault("backend", BackendOpenGL)
	v.SetDefault("display.width", 1280)
	v.SetDefault("display.height", 720)
	v.SetDefault("display.title", "overlay")
	v.SetDefault("display.vsync", true)
	v.SetDefault("display.clear_color", "#101018")
	v.SetDefault("display.fps", 30)
	v.SetDefault("panels.stats.open", true)
	v.SetDefault("panels.stats.hotkey", "F1")
	v.SetDefault("panels.console.open", false)
	v.SetDefault("panels.console.hotkey", "F2")
	v.SetDefault("panels.launcher.open", true)
	v.SetDefault("panels.launcher.hotkey", "Tab")
	v.SetDefault("log.verbose", false)
	v.SetDefault("log.level", "info")
	v.SetDefault("telemetry.endpoint", "")
	v.SetDefault("telemetry.service_name", "overlay")

	if path == "" {
		path = os.Getenv("OVERLAY_CONFIG")
	}
	explicit := path != ""
	if explicit {
		v.SetConfigFile(path)
	} else {
		v.SetConfigName("overlay")
		v.AddConfigPath("config")
		v.AddConfigPath(".")
	}

	v.SetEnvPrefix("OVERLAY")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if explicit || !errors.As(err, &notFound) {
			return Config{}, fmt.Errorf("read config: %w", err)
		}
	}

	var c Config
	if err := v.Unmarshal(&c); err != nil {
		return Config{}, fmt.Errorf("unmarshal config: %w", err)
	}
	return c, nil
}

// Validate checks the values Load cannot check by type alone.
func (c Config) Validate() error {
	var errs []error
	switch c.Backend {
	case BackendOpenGL, BackendTerm:
	default:
		errs = append(errs, fmt.Errorf("unknown backend %q", c.Backend))
	}
	if c.Display.Width <= 0 || c.Display.Height <= 0 {
		errs = append(errs, fmt.Errorf("display size %dx%d must be positive", c.Display.Width, c.Display.Height))
	}
	if c.Display.FPS <= 0 {
		errs = append(errs, fmt.Errorf("display fps %d must be positive", c.Display.FPS))
	}
	if _, err := draw.Hex(c.Display.ClearColor); err != nil {
		errs = append(errs, fmt.Errorf("display clear_color: %w", err))
	}
	for name, p := range c.Panels {
		if p.Hotkey == "" {
			continue
		}
		if _, ok := input.ParseKey(p.Hotkey); !ok {
			errs = append(errs, fmt.Errorf("panel %q: unknown hotkey %q", name, p.Hotkey))
		}
	}
	if _, err := c.Log.SlogLevel(); err != nil {
		errs = append(errs, err)
	}
	return errors.Join(errs...)
}

// ClearColorValue returns the parsed clear color, falling back to black.
func (d DisplayConfig) ClearColorValue() draw.Color {
	c, err := draw.Hex(d.ClearColor)
	if err != nil {
		return draw.Black
	}
	return c
}

// Hotkeys maps panel names to their parsed hotkeys. Panels without a valid
// hotkey are left out.
func (c Config) Hotkeys() map[string]input.Key {
	out := make(map[string]input.Key, len(c.Panels))
	for name, p := range c.Panels {
		if k, ok := input.ParseKey(p.Hotkey); ok {
			out[name] = k
		}
	}
	return out
}

// SlogLevel returns the configured level. Verbose forces debug.
func (l LogConfig) SlogLevel() (slog.Level, error) {
	if l.Verbose {
		return slog.LevelDebug, nil
	}
	var level slog.Level
	if err := level.UnmarshalText([]byte(l.Level)); err != nil {
		return slog.LevelInfo, fmt.Errorf("log level: %w", err)
	}
	return level, nil
}
