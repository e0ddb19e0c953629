// SPDX-License-Identifier: Unlicense OR MIT

package gesture

import (
	"errors"
	"fmt"
	"io"
	"math"
	"strings"
	"time"

	"github.com/BurntSushi/toml"
	"github.com/samber/mo"

	"gioui.org/x/swipe/f32"
)

// Config holds the thresholds of swipe detection.
type Config struct {
	// MaxDuration is the longest press that counts as a swipe.
	MaxDuration time.Duration `toml:"max_duration"`
	// MinDistance is the shortest swipe, as a fraction of the
	// surface width. 0.17 suits a 16:9 phone in portrait mode.
	MinDistance float32 `toml:"min_distance"`
}

type rejection uint8

const (
	accepted rejection = iota
	tooSlow
	tooShort
	noSurface
)

// DefaultConfig returns the default thresholds.
func DefaultConfig() Config {
	return Config{
		MaxDuration: 500 * time.Millisecond,
		MinDistance: 0.17,
	}
}

// Validate reports whether the thresholds are usable.
func (c Config) Validate() error {
	if c.MaxDuration <= 0 {
		return fmt.Errorf("gesture: max_duration must be positive, got %v", c.MaxDuration)
	}
	if math.IsNaN(float64(c.MinDistance)) || c.MinDistance < 0 {
		return fmt.Errorf("gesture: min_distance must be non-negative, got %v", c.MinDistance)
	}
	return nil
}

// DecodeConfig reads a TOML document of thresholds. Missing keys
// keep their default value.
func DecodeConfig(r io.Reader) (Config, error) {
	c := DefaultConfig()
	if err := decode(r, &c); err != nil {
		return Config{}, err
	}
	if err := c.Validate(); err != nil {
		return Config{}, err
	}
	return c, nil
}

func decode(r io.Reader, v interface{}) error {
	md, err := toml.NewDecoder(r).Decode(v)
	if err != nil {
		return fmt.Errorf("gesture: decode config: %w", err)
	}
	if keys := md.Undecoded(); len(keys) > 0 {
		names := make([]string, len(keys))
		for i, k := range keys {
			names[i] = k.String()
		}
		return errors.New("gesture: unknown config keys: " + strings.Join(names, ", "))
	}
	return nil
}

// Classify returns the direction of a press that moved from start
// to end in d on a surface of the given width, or None if the press
// is not a swipe.
func (c Config) Classify(start, end f32.Point, d time.Duration, width float32) mo.Option[Direction] {
	dir, _ := c.classify(start, end, d, width)
	if dir == 0 {
		return mo.None[Direction]()
	}
	return mo.Some(dir)
}

func (c Config) classify(start, end f32.Point, d time.Duration, width float32) (Direction, rejection) {
	if !(width > 0) {
		return 0, noSurface
	}
	delta := end.Sub(start).Div(width)
	if d > c.MaxDuration {
		return 0, tooSlow
	}
	if delta.Len() < c.MinDistance {
		return 0, tooShort
	}
	// Equal magnitudes count as vertical.
	if abs(delta.X) > abs(delta.Y) {
		if delta.X > 0 {
			return Right, accepted
		}
		return Left, accepted
	}
	if delta.Y > 0 {
		return Up, accepted
	}
	return Down, accepted
}

func abs(v float32) float32 {
	if v < 0 {
		return -v
	}
	return v
}

func (r rejection) String() string {
	switch r {
	case accepted:
		return "accepted"
	case tooSlow:
		return "too slow"
	case tooShort:
		return "too short"
	case noSurface:
		return "no surface"
	default:
		panic("invalid rejection")
	}
}
