// Package config provides Viper-based configuration loading for the dungeon
// crawler frontends.
package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/viper"
)

// ErrInvalid is wrapped by every error Validate returns.
var ErrInvalid = errors.New("invalid configuration")

// MapConfig sizes the generated level.
type MapConfig struct {
	Width       int `mapstructure:"width"`
	Height      int `mapstructure:"height"`
	MaxRooms    int `mapstructure:"max_rooms"`
	MinRoomSize int `mapstructure:"min_room_size"`
	// MaxRoomSize is inclusive.
	MaxRoomSize int `mapstructure:"max_room_size"`
}

// PlayerConfig holds the player's starting stats.
type PlayerConfig struct {
	ViewRange int `mapstructure:"view_range"`
	MaxHP     int `mapstructure:"max_hp"`
	Defense   int `mapstructure:"defense"`
	Power     int `mapstructure:"power"`
}

// MonstersConfig controls monster spawning.
type MonstersConfig struct {
	ViewRange int `mapstructure:"view_range"`
	// File overrides the embedded monster table when non-empty.
	File string `mapstructure:"file"`
}

// GameConfig holds per-run settings.
type GameConfig struct {
	// Seed fixes the level layout; 0 picks a seed from the clock.
	Seed        int64 `mapstructure:"seed"`
	JournalSize int   `mapstructure:"journal_size"`
}

// LoggingConfig holds structured logging settings.
type LoggingConfig struct {
	// Level is the minimum log level: "debug", "info", "warn", "error".
	Level string `mapstructure:"level"`
	// Format is the log output format: "json" or "console".
	Format string `mapstructure:"format"`
	// Output lists zap output paths ("stderr", "stdout" or file paths).
	Output []string `mapstructure:"output"`
}

// ServerConfig holds SSH listener settings.
type ServerConfig struct {
	Host string `mapstructure:"host"`
	Port int    `mapstructure:"port"`
	// HostKey is the PEM private key path; it is generated when missing.
	HostKey string `mapstructure:"host_key"`
}

// Addr returns the "host:port" listen address.
func (s ServerConfig) Addr() string {
	return fmt.Sprintf("%s:%d", s.Host, s.Port)
}

// Config is the top-level application configuration.
type Config struct {
	Map      MapConfig      `mapstructure:"map"`
	Player   PlayerConfig   `mapstructure:"player"`
	Monsters MonstersConfig `mapstructure:"monsters"`
	Game     GameConfig     `mapstructure:"game"`
	Logging  LoggingConfig  `mapstructure:"logging"`
	Server   ServerConfig   `mapstructure:"server"`
}

// Validate checks all configuration invariants and reports every violation
// at once.
func (c Config) Validate() error {
	var errs []string
	errs = append(errs, validateMap(c.Map)...)
	errs = append(errs, validatePlayer(c.Player)...)
	if c.Monsters.ViewRange < 0 {
		errs = append(errs, fmt.Sprintf("monsters.view_range must be >= 0, got %d", c.Monsters.ViewRange))
	}
	if c.Game.JournalSize < 1 {
		errs = append(errs, fmt.Sprintf("game.journal_size must be >= 1, got %d", c.Game.JournalSize))
	}
	errs = append(errs, validateLogging(c.Logging)...)
	if c.Server.Port < 1 || c.Server.Port > 65535 {
		errs = append(errs, fmt.Sprintf("server.port must be 1-65535, got %d", c.Server.Port))
	}

	if len(errs) > 0 {
		return fmt.Errorf("%w: %s", ErrInvalid, strings.Join(errs, "; "))
	}
	return nil
}

func validateMap(m MapConfig) []string {
	var errs []string
	if m.MaxRooms < 1 {
		errs = append(errs, fmt.Sprintf("map.max_rooms must be >= 1, got %d", m.MaxRooms))
	}
	if m.MinRoomSize < 2 {
		errs = append(errs, fmt.Sprintf("map.min_room_size must be >= 2, got %d", m.MinRoomSize))
	}
	if m.MaxRoomSize < m.MinRoomSize {
		errs = append(errs, "map.max_room_size must not be below map.min_room_size")
	}
	if m.Width < m.MaxRoomSize+2 {
		errs = append(errs, fmt.Sprintf("map.width must be >= max_room_size+2, got %d", m.Width))
	}
	if m.Height < m.MaxRoomSize+2 {
		errs = append(errs, fmt.Sprintf("map.height must be >= max_room_size+2, got %d", m.Height))
	}
	return errs
}

func validatePlayer(p PlayerConfig) []string {
	var errs []string
	if p.ViewRange < 0 {
		errs = append(errs, fmt.Sprintf("player.view_range must be >= 0, got %d", p.ViewRange))
	}
	if p.MaxHP < 1 {
		errs = append(errs, fmt.Sprintf("player.max_hp must be >= 1, got %d", p.MaxHP))
	}
	return errs
}

func validateLogging(l LoggingConfig) []string {
	var errs []string
	validLevels := map[string]bool{"debug": true, "info": true, "warn": true, "error": true}
	if !validLevels[l.Level] {
		errs = append(errs, fmt.Sprintf("logging.level must be one of [debug, info, warn, error], got %q", l.Level))
	}
	validFormats := map[string]bool{"json": true, "console": true}
	if !validFormats[l.Format] {
		errs = append(errs, fmt.Sprintf("logging.format must be one of [json, console], got %q", l.Format))
	}
	if len(l.Output) == 0 {
		errs = append(errs, "logging.output must not be empty")
	}
	return errs
}

// Load reads configuration from path (skipped when path is empty), applies
// DUNGEON_ environment overrides, and validates the result.
func Load(path string) (Config, error) {
	v := viper.New()
	v.SetEnvPrefix("DUNGEON")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
	setDefaults(v)

	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return Config{}, fmt.Errorf("reading config file: %w", err)
		}
	}
	return LoadFromViper(v)
}

// LoadFromViper builds a Config from an already-configured Viper instance.
func LoadFromViper(v *viper.Viper) (Config, error) {
	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return Config{}, fmt.Errorf("unmarshalling config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Default returns the built-in configuration, ignoring files and the
// environment.
func Default() Config {
	v := viper.New()
	setDefaults(v)
	cfg, err := LoadFromViper(v)
	if err != nil {
		panic(fmt.Sprintf("config: built-in defaults are invalid: %v", err))
	}
	return cfg
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("map.width", 80)
	v.SetDefault("map.height", 50)
	v.SetDefault("map.max_rooms", 30)
	v.SetDefault("map.min_room_size", 6)
	v.SetDefault("map.max_room_size", 10)

	v.SetDefault("player.view_range", 8)
	v.SetDefault("player.max_hp", 30)
	v.SetDefault("player.defense", 2)
	v.SetDefault("player.power", 5)

	v.SetDefault("monsters.view_range", 8)
	v.SetDefault("monsters.file", "")

	v.SetDefault("game.seed", 0)
	v.SetDefault("game.journal_size", 50)

	v.SetDefault("logging.level", "info")
	v.SetDefault("logging.format", "json")
	v.SetDefault("logging.output", []string{"stderr"})

	v.SetDefault("server.host", "0.0.0.0")
	v.SetDefault("server.port", 2222)
	v.SetDefault("server.host_key", "host_key.pem")
}
