// Package config loads battleline settings from defaults, an optional
// TOML/YAML/JSON file and BATTLELINE_* environment variables.
package config

import (
	"errors"
	"fmt"
	"os"
	"strings"
	"sync"

	"github.com/fsnotify/fsnotify"
	"github.com/spf13/viper"
	"go.uber.org/zap/zapcore"

	"github.com/lixenwraith/battleline/card"
	"github.com/lixenwraith/battleline/render/renderer"
	"github.com/lixenwraith/battleline/terminal"
)

// EnvPrefix prefixes environment overrides, e.g. BATTLELINE_LOG_LEVEL
const EnvPrefix = "BATTLELINE"

// ErrInvalid is returned when a loaded value fails validation
var ErrInvalid = errors.New("invalid config")

// Config is the full set of runtime settings
type Config struct {
	Color    string        `mapstructure:"color"`     // auto, none, 256, truecolor
	Seed     uint64        `mapstructure:"seed"`      // 0 picks a random seed
	HandSize int           `mapstructure:"hand_size"` // Cards dealt to the demo hand
	Log      LogConfig     `mapstructure:"log"`
	Palette  PaletteConfig `mapstructure:"palette"`
}

// LogConfig controls the zap logger
type LogConfig struct {
	Level      string `mapstructure:"level"`
	Console    bool   `mapstructure:"console"`     // Write to stderr
	File       string `mapstructure:"file"`        // Rotated JSON log, empty disables
	MaxSize    int    `mapstructure:"max_size"`    // MB per file
	MaxBackups int    `mapstructure:"max_backups"` // Rotated files kept
	MaxAge     int    `mapstructure:"max_age"`     // Days
	Compress   bool   `mapstructure:"compress"`
	Dev        bool   `mapstructure:"dev"`
}

// PaletteConfig overrides card and flag colors
// Values are ANSI names ("red", "bright-blue") or "#rrggbb"; empty keeps the default
type PaletteConfig struct {
	Red    string `mapstructure:"red"`
	Green  string `mapstructure:"green"`
	Blue   string `mapstructure:"blue"`
	Yellow string `mapstructure:"yellow"`
	Orange string `mapstructure:"orange"`
	Purple string `mapstructure:"purple"`
	Flag   string `mapstructure:"flag"`
}

var defaults = map[string]any{
	"color":           "auto",
	"seed":            uint64(0),
	"hand_size":       7,
	"log.level":       "info",
	"log.console":     true,
	"log.file":        "",
	"log.max_size":    10,
	"log.max_backups": 3,
	"log.max_age":     28,
	"log.compress":    false,
	"log.dev":         false,
	"palette.red":     "",
	"palette.green":   "",
	"palette.blue":    "",
	"palette.yellow":  "",
	"palette.orange":  "",
	"palette.purple":  "",
	"palette.flag":    "",
}

// Default returns the built-in settings
func Default() Config {
	return Config{
		Color:    "auto",
		HandSize: 7,
		Log: LogConfig{
			Level:      "info",
			Console:    true,
			MaxSize:    10,
			MaxBackups: 3,
			MaxAge:     28,
		},
	}
}

// Loader owns one viper instance bound to an optional file
type Loader struct {
	mu   sync.Mutex
	v    *viper.Viper
	path string
}

// NewLoader prepares a loader; path may be empty for defaults and env only
func NewLoader(path string) *Loader {
	v := viper.New()
	for k, val := range defaults {
		v.SetDefault(k, val)
	}
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
	if path != "" {
		v.SetConfigFile(path)
	}
	return &Loader{v: v, path: path}
}

// Path returns the config file path, empty when none was given
func (l *Loader) Path() string {
	return l.path
}

// Load reads the file (if any) and returns validated settings
func (l *Loader) Load() (*Config, error) {
	l.mu.Lock()
	defer l.mu.Unlock()

	if l.path != "" {
		if err := l.v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("read config %s: %w", l.path, err)
		}
	}
	return l.decode()
}

// Watch calls onChange with freshly decoded settings whenever the file is written
// No-op without a config file
func (l *Loader) Watch(onChange func(*Config, error)) {
	if l.path == "" {
		return
	}
	l.v.OnConfigChange(func(e fsnotify.Event) {
		if !e.Has(fsnotify.Write) && !e.Has(fsnotify.Create) {
			return
		}
		l.mu.Lock()
		cfg, err := l.decode()
		l.mu.Unlock()
		onChange(cfg, err)
	})
	l.v.WatchConfig()
}

func (l *Loader) decode() (*Config, error) {
	var cfg Config
	if err := l.v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("decode config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Validate checks ranges and enumerations
func (c *Config) Validate() error {
	switch strings.ToLower(c.Color) {
	case "auto", "none", "off", "plain", "256", "truecolor", "true", "24bit":
	default:
		return fmt.Errorf("%w: color %q", ErrInvalid, c.Color)
	}
	if c.HandSize < 0 || c.HandSize > card.TroopDeckSize {
		return fmt.Errorf("%w: hand_size %d outside [0,%d]", ErrInvalid, c.HandSize, card.TroopDeckSize)
	}
	if _, err := zapcore.ParseLevel(c.Log.Level); err != nil {
		return fmt.Errorf("%w: log.level: %v", ErrInvalid, err)
	}
	if _, err := c.Palette.Apply(renderer.DefaultPalette()); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalid, err)
	}
	return nil
}

// ColorMode resolves the color setting for output written to f
// With "auto", output that is not a terminal gets plain glyphs
func (c *Config) ColorMode(f *os.File) terminal.ColorMode {
	return terminal.OutputColorMode(f, c.Color)
}

// Apply overlays configured colors onto base
func (pc PaletteConfig) Apply(base renderer.Palette) (renderer.Palette, error) {
	p := base
	overrides := []struct {
		color card.TroopColor
		value string
	}{
		{card.Red, pc.Red},
		{card.Green, pc.Green},
		{card.Blue, pc.Blue},
		{card.Yellow, pc.Yellow},
		{card.Orange, pc.Orange},
		{card.Purple, pc.Purple},
	}
	for _, o := range overrides {
		if o.value == "" {
			continue
		}
		c, err := terminal.ParseColor(o.value)
		if err != nil {
			return base, fmt.Errorf("palette.%s: %w", o.color, err)
		}
		p.Troops[o.color] = c
	}
	if pc.Flag != "" {
		c, err := terminal.ParseColor(pc.Flag)
		if err != nil {
			return base, fmt.Errorf("palette.flag: %w", err)
		}
		p.Flag = c
	}
	return p, nil
}
