// Package config loads the game configuration from a YAML file.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strconv"
	"time"

	"github.com/spf13/viper"
)

var (
	// ErrConfigMissing is returned when an explicitly requested config file does not exist.
	ErrConfigMissing = errors.New("configuration file not found")

	// ErrInvalid is returned when a config value is out of range.
	ErrInvalid = errors.New("invalid configuration")

	// ErrUnknownKey is returned by Set for keys the game does not read.
	ErrUnknownKey = errors.New("unknown configuration key")
)

// Config is the full game configuration. It is loaded once and passed by
// value into each session.
type Config struct {
	Title        string         `mapstructure:"title"`
	ImagesFolder string         `mapstructure:"images_folder"`
	Game         GameConfig     `mapstructure:"game"`
	Counting     CountingConfig `mapstructure:"counting"`
	Sound        SoundConfig    `mapstructure:"sound"`
	Video        VideoConfig    `mapstructure:"video"`
	Window       WindowConfig   `mapstructure:"window"`

	// Path is the file the config was read from, empty when only defaults apply.
	Path string `mapstructure:"-"`
}

// GameConfig holds the settings shared by every mini-game.
type GameConfig struct {
	MaxNumber      int `mapstructure:"max_number"`
	Rounds         int `mapstructure:"rounds"`
	DelayMs        int `mapstructure:"delay_ms"`
	RevealDelayMs  int `mapstructure:"reveal_delay_ms"`
	OptionsDelayMs int `mapstructure:"options_delay_ms"`
	GroupGap       int `mapstructure:"group_gap"`
}

// CountingConfig bounds the number of items shown in counting mode.
type CountingConfig struct {
	MinCount int `mapstructure:"min_count"`
	MaxCount int `mapstructure:"max_count"`
}

// SoundConfig controls the "correct answer" sound.
type SoundConfig struct {
	Enabled      bool   `mapstructure:"enabled"`
	CorrectSound string `mapstructure:"correct_sound"`
	Command      string `mapstructure:"command"`
}

// VideoConfig controls the bonus video reward.
type VideoConfig struct {
	VideosFolder string `mapstructure:"videos_folder"`
	MinRounds    int    `mapstructure:"min_rounds"`
	MaxWrong     int    `mapstructure:"max_wrong"`
	Command      string `mapstructure:"command"`
}

// WindowConfig controls the terminal window.
type WindowConfig struct {
	Fullscreen bool `mapstructure:"fullscreen"`
}

// RevealDelay is the pause before the items of a round are shown.
func (g GameConfig) RevealDelay() time.Duration {
	return time.Duration(g.RevealDelayMs) * time.Millisecond
}

// OptionsDelay is the pause between showing the items and showing the answers.
func (g GameConfig) OptionsDelay() time.Duration {
	return time.Duration(g.OptionsDelayMs) * time.Millisecond
}

// NextRoundDelay is the pause after an answer before the next round starts.
func (g GameConfig) NextRoundDelay() time.Duration {
	return time.Duration(g.DelayMs) * time.Millisecond
}

// defaults lists every key the game reads with its default value. Keys that
// inherit from another key (reveal/options delay, counting.max_count) are
// resolved in Load.
var defaults = map[string]any{
	"title":               "MyMath",
	"images_folder":       "data/images",
	"game.max_number":     10,
	"game.rounds":         10,
	"game.delay_ms":       1500,
	"game.group_gap":      2,
	"counting.min_count":  1,
	"sound.enabled":       true,
	"sound.correct_sound": "data/reactions",
	"sound.command":       "",
	"video.videos_folder": "data/videos",
	"video.min_rounds":    7,
	"video.max_wrong":     1,
	"video.command":       "",
	"window.fullscreen":   true,
}

// inherited keys have no static default.
var inherited = []string{
	"game.reveal_delay_ms",
	"game.options_delay_ms",
	"counting.max_count",
}

// Keys returns every configuration key the game understands, sorted.
func Keys() []string {
	keys := make([]string, 0, len(defaults)+len(inherited))
	for k := range defaults {
		keys = append(keys, k)
	}
	keys = append(keys, inherited...)
	sort.Strings(keys)
	return keys
}

// Default returns the configuration used when no file exists.
func Default() *Config {
	cfg, err := decode(newViper(), "")
	if err != nil {
		// The static defaults always decode and validate.
		panic(err)
	}
	return cfg
}

// Load reads the config file at path. When path is empty the default XDG
// location is used and a missing file means defaults. When explicit is true
// a missing file is fatal.
func Load(path string, explicit bool) (*Config, error) {
	if path == "" {
		path = DefaultConfigPath()
		explicit = false
	}

	vip := newViper()
	vip.SetConfigFile(path)
	vip.SetConfigType("yaml")

	if _, err := os.Stat(path); err != nil {
		if !os.IsNotExist(err) {
			return nil, fmt.Errorf("stat config: %w", err)
		}
		if explicit {
			return nil, fmt.Errorf("%w: %s", ErrConfigMissing, path)
		}
		cfg, err := decode(vip, filepath.Dir(path))
		if err != nil {
			return nil, err
		}
		return cfg, nil
	}

	if err := vip.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("read config: %w", err)
	}

	cfg, err := decode(vip, filepath.Dir(path))
	if err != nil {
		return nil, err
	}
	cfg.Path = path
	return cfg, nil
}

// Set writes a single key to the config file at path, creating it if needed.
// The value is stored as an int or bool when it parses as one.
func Set(path, key, value string) error {
	if !known(key) {
		return fmt.Errorf("%w: %s", ErrUnknownKey, key)
	}

	vip := viper.New()
	vip.SetConfigFile(path)
	vip.SetConfigType("yaml")
	if _, err := os.Stat(path); err == nil {
		if err := vip.ReadInConfig(); err != nil {
			return fmt.Errorf("read config: %w", err)
		}
	}
	vip.Set(key, parseValue(value))

	// Validate the result before touching the file.
	check := newViper()
	if err := check.MergeConfigMap(vip.AllSettings()); err != nil {
		return fmt.Errorf("merge config: %w", err)
	}
	if _, err := decode(check, filepath.Dir(path)); err != nil {
		return err
	}

	if err := ensureDir(path); err != nil {
		return fmt.Errorf("create config dir: %w", err)
	}
	if err := vip.WriteConfigAs(path); err != nil {
		return fmt.Errorf("write config: %w", err)
	}
	return nil
}

// Settings returns the effective key/value pairs, flattened to dot keys.
func (c *Config) Settings() map[string]any {
	return map[string]any{
		"title":                 c.Title,
		"images_folder":         c.ImagesFolder,
		"game.max_number":       c.Game.MaxNumber,
		"game.rounds":           c.Game.Rounds,
		"game.delay_ms":         c.Game.DelayMs,
		"game.reveal_delay_ms":  c.Game.RevealDelayMs,
		"game.options_delay_ms": c.Game.OptionsDelayMs,
		"game.group_gap":        c.Game.GroupGap,
		"counting.min_count":    c.Counting.MinCount,
		"counting.max_count":    c.Counting.MaxCount,
		"sound.enabled":         c.Sound.Enabled,
		"sound.correct_sound":   c.Sound.CorrectSound,
		"sound.command":         c.Sound.Command,
		"video.videos_folder":   c.Video.VideosFolder,
		"video.min_rounds":      c.Video.MinRounds,
		"video.max_wrong":       c.Video.MaxWrong,
		"video.command":         c.Video.Command,
		"window.fullscreen":     c.Window.Fullscreen,
	}
}

// Validate checks value ranges.
func (c *Config) Validate() error {
	switch {
	case c.Game.MaxNumber < 1:
		return fmt.Errorf("%w: game.max_number must be at least 1, got %d", ErrInvalid, c.Game.MaxNumber)
	case c.Game.Rounds < 1:
		return fmt.Errorf("%w: game.rounds must be at least 1, got %d", ErrInvalid, c.Game.Rounds)
	case c.Game.DelayMs < 0 || c.Game.RevealDelayMs < 0 || c.Game.OptionsDelayMs < 0:
		return fmt.Errorf("%w: delays must not be negative", ErrInvalid)
	case c.Game.GroupGap < 0:
		return fmt.Errorf("%w: game.group_gap must not be negative", ErrInvalid)
	case c.Counting.MinCount < 1:
		return fmt.Errorf("%w: counting.min_count must be at least 1, got %d", ErrInvalid, c.Counting.MinCount)
	case c.Counting.MaxCount < c.Counting.MinCount:
		return fmt.Errorf("%w: counting.max_count (%d) is below counting.min_count (%d)",
			ErrInvalid, c.Counting.MaxCount, c.Counting.MinCount)
	case c.Video.MinRounds < 0 || c.Video.MaxWrong < 0:
		return fmt.Errorf("%w: video thresholds must not be negative", ErrInvalid)
	}
	return nil
}

func newViper() *viper.Viper {
	vip := viper.New()
	for k, v := range defaults {
		vip.SetDefault(k, v)
	}
	return vip
}

// decode unmarshals, fills inherited keys, resolves folders against baseDir
// and validates.
func decode(vip *viper.Viper, baseDir string) (*Config, error) {
	var cfg Config
	if err := vip.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("decode config: %w", err)
	}

	if !vip.IsSet("game.reveal_delay_ms") {
		cfg.Game.RevealDelayMs = cfg.Game.DelayMs
	}
	if !vip.IsSet("game.options_delay_ms") {
		cfg.Game.OptionsDelayMs = cfg.Game.DelayMs
	}
	if !vip.IsSet("counting.max_count") {
		cfg.Counting.MaxCount = cfg.Game.MaxNumber
	}

	cfg.ImagesFolder = resolve(baseDir, cfg.ImagesFolder)
	cfg.Sound.CorrectSound = resolve(baseDir, cfg.Sound.CorrectSound)
	cfg.Video.VideosFolder = resolve(baseDir, cfg.Video.VideosFolder)

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func resolve(baseDir, p string) string {
	if p == "" || filepath.IsAbs(p) || baseDir == "" {
		return p
	}
	return filepath.Join(baseDir, p)
}

func known(key string) bool {
	if _, ok := defaults[key]; ok {
		return true
	}
	for _, k := range inherited {
		if k == key {
			return true
		}
	}
	return false
}

func parseValue(s string) any {
	if n, err := strconv.Atoi(s); err == nil {
		return n
	}
	if b, err := strconv.ParseBool(s); err == nil {
		return b
	}
	return s
}
