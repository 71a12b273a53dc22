// Package config loads user settings from TOML files.
package config

import (
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/adrg/xdg"
	"github.com/cockroachdb/errors"
	"github.com/go-playground/validator/v10"
	"github.com/knadh/koanf/parsers/toml"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
)

const appName = "tinywave"

// Defaults applied by the getters.
const (
	DefaultVolume            = 100
	DefaultPollInterval      = time.Second
	MinPollInterval          = 100 * time.Millisecond
	DefaultNotificationTitle = "Music Player"
	DefaultLogLevel          = "info"
)

type Config struct {
	// Track is an audio file played instead of the bundled track.
	Track string `koanf:"track"`
	// Volume is 0-100 (default: 100).
	Volume *int `koanf:"volume" validate:"omitempty,gte=0,lte=100"`
	// Icons is "nerd", "unicode" or "none" (default: none).
	Icons string `koanf:"icons" validate:"omitempty,oneof=nerd unicode none"`

	Playback      PlaybackConfig      `koanf:"playback"`
	Notifications NotificationsConfig `koanf:"notifications"`
	MPRIS         MPRISConfig         `koanf:"mpris"`
	Log           LogConfig           `koanf:"log"`
}

// PlaybackConfig holds session settings.
type PlaybackConfig struct {
	PollInterval string `koanf:"poll_interval"` // Go duration, e.g. "1s" (default: 1s)
}

// NotificationsConfig holds desktop notification settings.
type NotificationsConfig struct {
	Enabled *bool  `koanf:"enabled"` // default: true
	Title   string `koanf:"title"`   // notification summary (default: "Music Player")
	Icon    string `koanf:"icon"`    // icon name or path (optional)
}

// MPRISConfig holds media key integration settings.
type MPRISConfig struct {
	Enabled *bool `koanf:"enabled"` // default: true
}

// LogConfig holds logging settings.
type LogConfig struct {
	// Level defaults to info.
	Level string `koanf:"level" validate:"omitempty,oneof=trace debug info warn warning error"`
	// File defaults to $XDG_STATE_HOME/tinywave/tinywave.log.
	File string `koanf:"file"`
}

func Load() (*Config, error) {
	return LoadFrom(getConfigPaths()...)
}

// LoadPath reads a single config file that must exist.
func LoadPath(path string) (*Config, error) {
	path = expandPath(path)
	if _, err := os.Stat(path); err != nil {
		return nil, errors.Wrap(err, "config file")
	}
	return LoadFrom(path)
}

// LoadFrom reads the given files in order, later files overriding earlier
// ones. Missing files are skipped.
func LoadFrom(paths ...string) (*Config, error) {
	k := koanf.New(".")

	for _, path := range paths {
		if _, err := os.Stat(path); err == nil {
			if err := k.Load(file.Provider(path), toml.Parser()); err != nil {
				return nil, errors.Wrapf(err, "load config %s", path)
			}
		}
	}

	cfg := &Config{}
	if err := k.Unmarshal("", cfg); err != nil {
		return nil, errors.Wrap(err, "decode config")
	}

	cfg.Track = expandPath(cfg.Track)
	cfg.Log.File = expandPath(cfg.Log.File)
	cfg.Log.Level = strings.ToLower(strings.TrimSpace(cfg.Log.Level))

	return cfg, nil
}

func getConfigPaths() []string {
	return []string{
		// 1. $XDG_CONFIG_HOME/tinywave/config.toml
		filepath.Join(xdg.ConfigHome, appName, "config.toml"),
		// 2. ./config.toml (pwd, highest priority)
		"config.toml",
	}
}

func expandPath(path string) string {
	if path != "" && path[0] == '~' {
		if home, err := os.UserHomeDir(); err == nil {
			return filepath.Join(home, path[1:])
		}
	}
	return path
}

// Validate checks value ranges and enumerations.
func (c *Config) Validate() error {
	if err := validator.New().Struct(c); err != nil {
		return errors.Wrap(err, "invalid config")
	}
	return nil
}

// HasTrack returns true if a track file overrides the bundled one.
func (c *Config) HasTrack() bool {
	return c.Track != ""
}

// VolumeLevel returns the volume as 0.0 to 1.0.
func (c *Config) VolumeLevel() float64 {
	v := DefaultVolume
	if c.Volume != nil {
		v = min(max(*c.Volume, 0), 100)
	}
	return float64(v) / 100
}

// PollInterval returns the progress sampling period. Unparseable values
// fall back to the default; tiny ones are raised to MinPollInterval.
func (c *Config) PollInterval() time.Duration {
	if c.Playback.PollInterval == "" {
		return DefaultPollInterval
	}
	d, err := time.ParseDuration(c.Playback.PollInterval)
	if err != nil || d <= 0 {
		return DefaultPollInterval
	}
	return max(d, MinPollInterval)
}

// NotificationsEnabled returns whether desktop notifications are shown.
func (c *Config) NotificationsEnabled() bool {
	return c.Notifications.Enabled == nil || *c.Notifications.Enabled
}

// NotificationTitle returns the notification summary.
func (c *Config) NotificationTitle() string {
	if c.Notifications.Title == "" {
		return DefaultNotificationTitle
	}
	return c.Notifications.Title
}

// MPRISEnabled returns whether the MPRIS endpoint is registered.
func (c *Config) MPRISEnabled() bool {
	return c.MPRIS.Enabled == nil || *c.MPRIS.Enabled
}

// LogLevel returns the configured log level name.
func (c *Config) LogLevel() string {
	if c.Log.Level == "" {
		return DefaultLogLevel
	}
	return c.Log.Level
}

// LogFile returns the log file path, creating its directory when the
// default location is used.
func (c *Config) LogFile() (string, error) {
	if c.Log.File != "" {
		return c.Log.File, nil
	}
	path, err := xdg.StateFile(filepath.Join(appName, appName+".log"))
	if err != nil {
		return "", errors.Wrap(err, "resolve log file")
	}
	return path, nil
}
