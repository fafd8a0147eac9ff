// Package config loads holefit settings from a TOML file.
//
// The file is optional. Every key it sets overrides the built-in default and
// every key it omits keeps it, so a file holding only
//
//	[physics]
//	inflate_max = 60
//
// changes one constant and nothing else. Unknown keys are rejected to catch
// typos.
//
// The default location is $XDG_CONFIG_HOME/holefit/config.toml
// (~/.config/holefit/config.toml on most systems).
package config

import (
	stderrors "errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/BurntSushi/toml"

	"github.com/matzehuels/holefit/pkg/errors"
	"github.com/matzehuels/holefit/pkg/physics"
)

// Config is the complete set of user settings.
type Config struct {
	Physics physics.Constants `toml:"physics"`
	Session Session           `toml:"session"`
	Store   Store             `toml:"store"`
}

// Session holds defaults for interactive and headless sessions.
type Session struct {
	// Speed is the number of simulation sub-steps per frame.
	Speed int `toml:"speed"`
	// FPS is the frame rate of the interactive player.
	FPS int `toml:"fps"`
	// Seed fixes the random source; 0 seeds from the clock.
	Seed uint64 `toml:"seed"`
	// HistoryLimit bounds undo history.
	HistoryLimit int `toml:"history_limit"`
	// SnapRadius is the distance within which vertices snap to hole corners.
	SnapRadius float64 `toml:"snap_radius"`
	// ShakeAmplitude is the maximum jitter of a shake.
	ShakeAmplitude float64 `toml:"shake_amplitude"`
}

// Store configures the solution store.
type Store struct {
	// Dir overrides the store directory.
	Dir string `toml:"dir"`
}

// Default returns the built-in configuration.
func Default() Config {
	return Config{
		Physics: physics.DefaultConstants(),
		Session: Session{
			Speed:          1,
			FPS:            60,
			HistoryLimit:   100,
			SnapRadius:     3,
			ShakeAmplitude: 1,
		},
	}
}

// DefaultPath returns the default config file location.
func DefaultPath() (string, error) {
	dir, err := os.UserConfigDir()
	if err != nil {
		return "", fmt.Errorf("get config dir: %w", err)
	}
	return filepath.Join(dir, "holefit", "config.toml"), nil
}

// Load reads the config file at path over the defaults. An empty path means
// [DefaultPath], which may be absent; an explicit path must exist.
func Load(path string) (Config, error) {
	explicit := path != ""
	if !explicit {
		p, err := DefaultPath()
		if err != nil {
			return Default(), nil
		}
		path = p
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if stderrors.Is(err, fs.ErrNotExist) {
			if !explicit {
				return Default(), nil
			}
			return Config{}, errors.Wrap(errors.ErrCodeFileNotFound, err, "config file %s", path)
		}
		return Config{}, fmt.Errorf("read config: %w", err)
	}
	return Parse(data)
}

// Parse decodes TOML data over the defaults and validates the result.
func Parse(data []byte) (Config, error) {
	cfg := Default()
	md, err := toml.Decode(string(data), &cfg)
	if err != nil {
		return Config{}, errors.Wrap(errors.ErrCodeInvalidConfig, err, "parse config")
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		keys := make([]string, len(undecoded))
		for i, k := range undecoded {
			keys[i] = k.String()
		}
		sort.Strings(keys)
		return Config{}, errors.New(errors.ErrCodeInvalidConfig, "unknown config keys: %s", strings.Join(keys, ", "))
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Validate checks value ranges.
func (c Config) Validate() error {
	switch {
	case c.Physics.TimeStep <= 0:
		return errors.New(errors.ErrCodeInvalidConfig, "physics.time_step must be positive")
	case c.Physics.SpringClamp < 0:
		return errors.New(errors.ErrCodeInvalidConfig, "physics.spring_clamp must not be negative")
	case c.Session.Speed < 1:
		return errors.New(errors.ErrCodeInvalidConfig, "session.speed must be at least 1")
	case c.Session.FPS < 1 || c.Session.FPS > 240:
		return errors.New(errors.ErrCodeInvalidConfig, "session.fps must be in [1, 240]")
	case c.Session.HistoryLimit < 1:
		return errors.New(errors.ErrCodeInvalidConfig, "session.history_limit must be at least 1")
	case c.Session.SnapRadius < 0 || c.Session.ShakeAmplitude < 0:
		return errors.New(errors.ErrCodeInvalidConfig, "session radii must not be negative")
	}
	return nil
}

// Encode writes c as TOML.
func Encode(w io.Writer, c Config) error {
	if err := toml.NewEncoder(w).Encode(c); err != nil {
		return fmt.Errorf("encode config: %w", err)
	}
	return nil
}
