package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/viper"
)

// Frontends accepted by the frontend key.
const (
	FrontendEbiten   = "ebiten"
	FrontendTerminal = "terminal"
)

// EnvPrefix prefixes environment overrides, e.g. AEROBATICA_AUDIO_VOLUME.
const EnvPrefix = "AEROBATICA"

// WindowConfig holds desktop window settings
type WindowConfig struct {
	Title string  `json:"title" mapstructure:"title"`
	Scale float64 `json:"scale" mapstructure:"scale"`
	TPS   int     `json:"tps" mapstructure:"tps"`
}

// AssetsConfig holds image paths
type AssetsConfig struct {
	Sheet      string `json:"sheet" mapstructure:"sheet"`
	Background string `json:"background" mapstructure:"background"`
}

// AudioConfig holds sound effect settings
type AudioConfig struct {
	Enabled bool    `json:"enabled" mapstructure:"enabled"`
	Volume  float64 `json:"volume" mapstructure:"volume"`
}

// GameplayConfig holds the optional rule switches
type GameplayConfig struct {
	EnemyFire bool `json:"enemyFire" mapstructure:"enemyFire"`
}

// LogConfig holds log file settings
type LogConfig struct {
	Enabled bool   `json:"enabled" mapstructure:"enabled"`
	Level   string `json:"level" mapstructure:"level"`
	Dir     string `json:"dir" mapstructure:"dir"`
}

// ScreenshotsConfig holds the screenshot target
type ScreenshotsConfig struct {
	Dir string `json:"dir" mapstructure:"dir"`
}

// Config is the full executable configuration.
type Config struct {
	Frontend    string            `json:"frontend" mapstructure:"frontend"`
	Window      WindowConfig      `json:"window" mapstructure:"window"`
	Assets      AssetsConfig      `json:"assets" mapstructure:"assets"`
	Audio       AudioConfig       `json:"audio" mapstructure:"audio"`
	Gameplay    GameplayConfig    `json:"gameplay" mapstructure:"gameplay"`
	Log         LogConfig         `json:"log" mapstructure:"log"`
	Screenshots ScreenshotsConfig `json:"screenshots" mapstructure:"screenshots"`
	Script      string            `json:"script" mapstructure:"script"`
	Debug       bool              `json:"debug" mapstructure:"debug"`
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("frontend", FrontendEbiten)

	v.SetDefault("window.title", "Aerobatica")
	v.SetDefault("window.scale", 1.0)
	v.SetDefault("window.tps", 60)

	v.SetDefault("assets.sheet", "assets/sprite_sheet.png")
	v.SetDefault("assets.background", "")

	v.SetDefault("audio.enabled", true)
	v.SetDefault("audio.volume", 0.3)

	v.SetDefault("gameplay.enemyFire", false)

	v.SetDefault("log.enabled", true)
	v.SetDefault("log.level", "info")
	v.SetDefault("log.dir", "logs")

	v.SetDefault("screenshots.dir", "screenshots")
	v.SetDefault("script", "")
	v.SetDefault("debug", false)
}

// Load reads configuration and applies defaults and environment overrides.
// An empty path searches the working directory for aerobatica.{yaml,json,toml}
// and carries on with defaults when none exists; an explicit path must exist.
func Load(path string) (*Config, error) {
	v := viper.New()
	setDefaults(v)

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if path != "" {
		v.SetConfigFile(path)
	} else {
		v.SetConfigName("aerobatica")
		v.AddConfigPath(".")
	}

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if path != "" || !errors.As(err, &notFound) {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("error decoding config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Validate rejects values the executable cannot run with.
func (c *Config) Validate() error {
	switch c.Frontend {
	case FrontendEbiten, FrontendTerminal:
	default:
		return fmt.Errorf("invalid frontend %q (want %s or %s)", c.Frontend, FrontendEbiten, FrontendTerminal)
	}
	if c.Window.Scale <= 0 {
		return fmt.Errorf("invalid window.scale %v: must be positive", c.Window.Scale)
	}
	if c.Window.TPS <= 0 {
		return fmt.Errorf("invalid window.tps %d: must be positive", c.Window.TPS)
	}
	if c.Audio.Volume < 0 || c.Audio.Volume > 1 {
		return fmt.Errorf("invalid audio.volume %v: must be within [0, 1]", c.Audio.Volume)
	}
	return nil
}
