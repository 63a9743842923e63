package view

import (
	"fmt"

	"huewheel/wheel"
)

// Options configures a ColorPicker. They are fixed once the picker is built.
type Options struct {
	// ThicknessOfColorWheel is the stroke width of the hue ring.
	ThicknessOfColorWheel float64
	// ArcControlSpacing is the gap between the ring and the thumb arc. The
	// thumb's frame is larger than the ring's by this much on each axis.
	ArcControlSpacing float64
	// ArcColor is the color of the thumb arc and its head.
	ArcColor wheel.HueColor

	Arc    wheel.ArcConfig
	Hidden bool
}

// DefaultOptions returns the stock look: a 10px ring, 20px spacing and a
// black thumb.
func DefaultOptions() Options {
	return Options{
		ThicknessOfColorWheel: 10,
		ArcControlSpacing:     20,
		ArcColor:              wheel.HueColor{Alpha: 1},
		Arc:                   wheel.DefaultArcConfig(),
	}
}

// Validate reports the first problem with o.
func (o Options) Validate() error {
	if o.ThicknessOfColorWheel < 0 {
		return fmt.Errorf("%w: negative ring thickness %v", wheel.ErrInvalidConfig, o.ThicknessOfColorWheel)
	}
	if o.ArcControlSpacing < 0 {
		return fmt.Errorf("%w: negative arc spacing %v", wheel.ErrInvalidConfig, o.ArcControlSpacing)
	}
	return o.Arc.Validate()
}
