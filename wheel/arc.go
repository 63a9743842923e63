package wheel

import (
	"fmt"
	"math"
)

// Segment is one slice of an arc, angles in radians.
type Segment struct {
	Sector     int
	StartAngle float64
	EndAngle   float64
	Thickness  float64
	Color      HueColor
}

// sectorStep is the angle covered by one sector.
func sectorStep(totalSectors int) float64 {
	return 2 * math.Pi / float64(totalSectors)
}

// degreeStep is the angle covered by one thumb slice. The thumb arc is laid
// out in whole degrees whatever the ring's sector count.
var degreeStep = sectorStep(360)

// RingSegments returns the colored slices of the hue ring, one per sector,
// each stroked with thickness.
func RingSegments(totalSectors int, thickness float64) ([]Segment, error) {
	if totalSectors <= 0 {
		return nil, fmt.Errorf("%w: total sectors %d must be positive", ErrInvalidConfig, totalSectors)
	}
	step := sectorStep(totalSectors)
	segs := make([]Segment, 0, totalSectors)
	for s := 0; s < totalSectors; s++ {
		col, err := ColorForSector(s, totalSectors)
		if err != nil {
			return nil, err
		}
		segs = append(segs, Segment{
			Sector:     s,
			StartAngle: float64(s) * step,
			EndAngle:   float64(s+1) * step,
			Thickness:  thickness,
			Color:      col,
		})
	}
	return segs, nil
}

// ThumbSegments returns the slices of the thumb arc from StartAngleDeg to
// EndAngleDeg inclusive, one slice per degree. The stroke starts hairline
// thin and thickens by a fixed step per degree up to a cap, so the arc tapers
// towards its tail.
func ThumbSegments(cfg ArcConfig) []Segment {
	step := degreeStep
	segs := make([]Segment, 0, cfg.EndAngleDeg-cfg.StartAngleDeg+1)
	thickness := thumbInitialThickness
	for s := cfg.StartAngleDeg; s <= cfg.EndAngleDeg; s++ {
		segs = append(segs, Segment{
			Sector:     s,
			StartAngle: float64(s) * step,
			EndAngle:   float64(s+1) * step,
			Thickness:  thickness,
		})
		thickness = math.Min(thickness+thumbThicknessStep, thumbMaxThickness)
	}
	return segs
}

// HeadRect returns the bounding box of the filled circle drawn at the end of
// the thumb arc. The box starts at the arc's end point rather than being
// centered on it, so the head sits just outside the arc.
func HeadRect(center Point, radius float64, cfg ArcConfig) Rect {
	end := PointOnCircle(center, radius, float64(cfg.EndAngleDeg+1)*degreeStep)
	min := Point{X: end.X, Y: end.Y - cfg.HeadSizePx/2}
	return Rect{Min: min, Max: Point{X: min.X + cfg.HeadSizePx, Y: min.Y + cfg.HeadSizePx}}
}

// RingRadius is the radius of the hue ring for a control of the given width.
func RingRadius(width, thickness float64) float64 {
	return width/2 - ringInsetFactor*thickness
}

// ThumbRadius is the radius of the thumb arc. The thumb view is larger than
// the ring by spacing on each axis and shares its center.
func ThumbRadius(width, spacing float64) float64 {
	return (width+spacing)/2 - spacing
}
