package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/viper"
)

// Supported frontends.
const (
	FrontendDesktop = "desktop"
	FrontendTTY     = "tty"
)

var ErrUnknownFrontend = errors.New("unknown frontend")

// Config is the root configuration, decoded from defaults, file, env and flags.
type Config struct {
	Logger  LoggerConfig  `mapstructure:"logger" yaml:"logger"`
	Game    GameConfig    `mapstructure:"game" yaml:"game"`
	Display DisplayConfig `mapstructure:"display" yaml:"display"`
	Audio   AudioConfig   `mapstructure:"audio" yaml:"audio"`
	Sim     SimConfig     `mapstructure:"sim" yaml:"sim"`
}

// LoggerConfig holds all the configuration for the logger.
type LoggerConfig struct {
	Level       string      `mapstructure:"level" yaml:"level"`
	Format      string      `mapstructure:"format" yaml:"format"`
	AddSource   bool        `mapstructure:"add_source" yaml:"add_source"`
	ServiceName string      `mapstructure:"service_name" yaml:"service_name"`
	LogFile     string      `mapstructure:"log_file" yaml:"log_file"`
	MaxSize     int         `mapstructure:"max_size" yaml:"max_size"`
	MaxBackups  int         `mapstructure:"max_backups" yaml:"max_backups"`
	MaxAge      int         `mapstructure:"max_age" yaml:"max_age"`
	Compress    bool        `mapstructure:"compress" yaml:"compress"`
	Colors      ColorConfig `mapstructure:"colors" yaml:"colors"`
}

// ColorConfig defines the color names for different log levels.
type ColorConfig struct {
	Debug string `mapstructure:"debug" yaml:"debug"`
	Info  string `mapstructure:"info" yaml:"info"`
	Warn  string `mapstructure:"warn" yaml:"warn"`
	Error string `mapstructure:"error" yaml:"error"`
}

// GameConfig seeds the simulation core. Seed 0 means "pick one from the clock".
type GameConfig struct {
	Seed      uint64 `mapstructure:"seed" yaml:"seed"`
	FlockSize int    `mapstructure:"flock_size" yaml:"flock_size"`
	Mode      string `mapstructure:"mode" yaml:"mode"`
	Demo      bool   `mapstructure:"demo" yaml:"demo"`
}

type DisplayConfig struct {
	Frontend  string `mapstructure:"frontend" yaml:"frontend"`
	Scale     int    `mapstructure:"scale" yaml:"scale"`
	VSync     bool   `mapstructure:"vsync" yaml:"vsync"`
	HoldTicks int    `mapstructure:"hold_ticks" yaml:"hold_ticks"`
}

type AudioConfig struct {
	Enabled bool    `mapstructure:"enabled" yaml:"enabled"`
	Volume  float64 `mapstructure:"volume" yaml:"volume"`
}

type SimConfig struct {
	MaxTicks int `mapstructure:"max_ticks" yaml:"max_ticks"`
}

// SetDefaults initializes default values for every key.
func SetDefaults(v *viper.Viper) {
	// -- Logger --
	v.SetDefault("logger.level", "info")
	v.SetDefault("logger.format", "console")
	v.SetDefault("logger.add_source", false)
	v.SetDefault("logger.service_name", "goosechase")
	v.SetDefault("logger.log_file", "")
	v.SetDefault("logger.max_size", 20)
	v.SetDefault("logger.max_backups", 3)
	v.SetDefault("logger.max_age", 14)
	v.SetDefault("logger.compress", true)
	v.SetDefault("logger.colors.debug", "cyan")
	v.SetDefault("logger.colors.info", "green")
	v.SetDefault("logger.colors.warn", "yellow")
	v.SetDefault("logger.colors.error", "red")

	// -- Game --
	v.SetDefault("game.seed", 0)
	v.SetDefault("game.flock_size", 404)
	v.SetDefault("game.mode", "solo")
	v.SetDefault("game.demo", false)

	// -- Display --
	v.SetDefault("display.frontend", FrontendDesktop)
	v.SetDefault("display.scale", 3)
	v.SetDefault("display.vsync", true)
	v.SetDefault("display.hold_ticks", 6)

	// -- Audio --
	v.SetDefault("audio.enabled", true)
	v.SetDefault("audio.volume", 0.58)

	// -- Sim --
	v.SetDefault("sim.max_ticks", 60*60*30) // half an hour of play
}

// NewDefaultConfig returns a configuration built only from defaults.
func NewDefaultConfig() *Config {
	v := viper.New()
	SetDefaults(v)

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		panic(fmt.Sprintf("failed to unmarshal default config: %v", err))
	}
	return &cfg
}

// NewViper prepares a viper instance with defaults, env binding and the
// optional goosechase.yaml search path. An explicit file overrides the search.
func NewViper(file string) *viper.Viper {
	v := viper.New()
	SetDefaults(v)

	v.SetEnvPrefix("GOOSECHASE")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if file != "" {
		v.SetConfigFile(file)
	} else {
		v.SetConfigName("goosechase")
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
		v.AddConfigPath("$HOME/.config/goosechase")
	}
	return v
}

// Load reads the config file if there is one. A missing file in the search
// path is not an error; a missing explicit file is.
func Load(v *viper.Viper) error {
	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if errors.As(err, &notFound) {
			return nil
		}
		return fmt.Errorf("error reading config file: %w", err)
	}
	return nil
}

// NewConfigFromViper decodes and validates the configuration.
func NewConfigFromViper(v *viper.Viper) (*Config, error) {
	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("error unmarshaling config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}
	return &cfg, nil
}

// Validate checks the configuration for sane values.
func (c *Config) Validate() error {
	if c.Game.FlockSize <= 0 {
		return fmt.Errorf("game.flock_size must be a positive integer")
	}
	switch c.Game.Mode {
	case "solo", "duo", "1", "2":
	default:
		return fmt.Errorf("game.mode must be solo or duo, got %q", c.Game.Mode)
	}
	switch c.Display.Frontend {
	case FrontendDesktop, FrontendTTY:
	default:
		return fmt.Errorf("display.frontend: %w %q", ErrUnknownFrontend, c.Display.Frontend)
	}
	if c.Display.Scale < 1 || c.Display.Scale > 8 {
		return fmt.Errorf("display.scale must be between 1 and 8")
	}
	if c.Display.HoldTicks < 1 {
		return fmt.Errorf("display.hold_ticks must be a positive integer")
	}
	if c.Audio.Volume < 0 || c.Audio.Volume > 1 {
		return fmt.Errorf("audio.volume must be between 0 and 1")
	}
	if c.Sim.MaxTicks <= 0 {
		return fmt.Errorf("sim.max_ticks must be a positive integer")
	}
	return nil
}
