package wheel

import (
	"fmt"
	"strings"
)

// Accumulation selects how pointer motion is folded into the thumb rotation.
type Accumulation int

const (
	// AccumulateIncremental rotates by the angle swept since the previous
	// sample, so the thumb follows the pointer.
	AccumulateIncremental Accumulation = iota
	// AccumulateFromOrigin rotates by the angle between the gesture start and
	// the current sample on every move, which makes the thumb speed up the
	// longer a drag lasts.
	AccumulateFromOrigin
)

func (a Accumulation) String() string {
	switch a {
	case AccumulateIncremental:
		return "incremental"
	case AccumulateFromOrigin:
		return "origin"
	default:
		return fmt.Sprintf("Accumulation(%d)", int(a))
	}
}

// MarshalText implements encoding.TextMarshaler.
func (a Accumulation) MarshalText() ([]byte, error) {
	switch a {
	case AccumulateIncremental, AccumulateFromOrigin:
		return []byte(a.String()), nil
	}
	return nil, fmt.Errorf("%w: unknown accumulation %d", ErrInvalidConfig, int(a))
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (a *Accumulation) UnmarshalText(b []byte) error {
	switch strings.ToLower(strings.TrimSpace(string(b))) {
	case "", "incremental":
		*a = AccumulateIncremental
	case "origin":
		*a = AccumulateFromOrigin
	default:
		return fmt.Errorf("%w: unknown accumulation %q", ErrInvalidConfig, string(b))
	}
	return nil
}

// ArcConfig describes the thumb arc and how gestures map to sectors.
type ArcConfig struct {
	StartAngleDeg    int
	EndAngleDeg      int
	HeadSizePx       float64
	DeadZoneRadiusPx float64
	TotalSectors     int

	Accumulation Accumulation
	// RetainRotation keeps the thumb where the previous gesture left it
	// instead of starting every gesture from zero rotation.
	RetainRotation bool
}

// DefaultArcConfig returns the stock picker configuration.
func DefaultArcConfig() ArcConfig {
	return ArcConfig{
		StartAngleDeg:    DefaultStartAngle,
		EndAngleDeg:      DefaultEndAngle,
		HeadSizePx:       DefaultHeadSize,
		DeadZoneRadiusPx: DefaultDeadZoneRadius,
		TotalSectors:     DefaultTotalSectors,
	}
}

// Validate checks the configuration and returns an error wrapping
// ErrInvalidConfig when it cannot be used.
func (c ArcConfig) Validate() error {
	if c.TotalSectors <= 0 {
		return fmt.Errorf("%w: total sectors %d must be positive", ErrInvalidConfig, c.TotalSectors)
	}
	if c.StartAngleDeg < 0 || c.StartAngleDeg > 360 {
		return fmt.Errorf("%w: start angle %d outside 0-360", ErrInvalidConfig, c.StartAngleDeg)
	}
	if c.EndAngleDeg < 0 || c.EndAngleDeg > 360 {
		return fmt.Errorf("%w: end angle %d outside 0-360", ErrInvalidConfig, c.EndAngleDeg)
	}
	if c.StartAngleDeg > c.EndAngleDeg {
		return fmt.Errorf("%w: start angle %d after end angle %d", ErrInvalidConfig, c.StartAngleDeg, c.EndAngleDeg)
	}
	if c.HeadSizePx < 0 {
		return fmt.Errorf("%w: negative head size %v", ErrInvalidConfig, c.HeadSizePx)
	}
	if c.DeadZoneRadiusPx < 0 {
		return fmt.Errorf("%w: negative dead zone radius %v", ErrInvalidConfig, c.DeadZoneRadiusPx)
	}
	switch c.Accumulation {
	case AccumulateIncremental, AccumulateFromOrigin:
	default:
		return fmt.Errorf("%w: unknown accumulation %d", ErrInvalidConfig, int(c.Accumulation))
	}
	return nil
}

// sectorOffset is the constant added to every derived degree so the reported
// color matches the sector under the thumb head.
func (c ArcConfig) sectorOffset() int {
	return c.EndAngleDeg + int(c.HeadSizePx/2)
}
