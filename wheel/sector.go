package wheel

import (
	"fmt"
	"image/color"
	"math"
)

// ColorForSector returns the fully saturated color of a ring sector. The
// sector is reduced modulo totalSectors first, so any integer is accepted.
func ColorForSector(sector, totalSectors int) (HueColor, error) {
	if totalSectors <= 0 {
		return HueColor{}, fmt.Errorf("%w: total sectors %d must be positive", ErrInvalidConfig, totalSectors)
	}
	s := normalizeSector(sector, totalSectors)
	return HueColor{
		Hue:        float64(s) / float64(totalSectors),
		Saturation: 1,
		Brightness: 1,
		Alpha:      1,
	}, nil
}

// SectorForColor returns the sector whose hue is nearest to c's hue,
// measured around the circle. Exact ties go to the lower sector.
func SectorForColor(c HueColor, totalSectors int) (int, error) {
	if totalSectors <= 0 {
		return 0, fmt.Errorf("%w: total sectors %d must be positive", ErrInvalidConfig, totalSectors)
	}
	pos := normalizeHue(c.Hue) * float64(totalSectors)
	lo := int(math.Floor(pos))
	if pos-float64(lo) > float64(lo+1)-pos {
		lo++
	}
	return normalizeSector(lo, totalSectors), nil
}

// SectorForRGBA is SectorForColor for any color.Color.
func SectorForRGBA(c color.Color, totalSectors int) (int, error) {
	return SectorForColor(HueColorOf(c), totalSectors)
}

// SectorFromAngle maps a thumb rotation in radians to the sector under the
// thumb head.
func SectorFromAngle(rad float64, cfg ArcConfig) int {
	return sectorFromDegree(degreeFromAngle(rad), cfg)
}

// degreeFromAngle folds rad into (-π, π] and truncates it to whole degrees.
func degreeFromAngle(rad float64) int {
	return int(wrapAngle(rad) * 180 / math.Pi)
}

func sectorFromDegree(degree int, cfg ArcConfig) int {
	sector := degree
	if degree < 0 {
		sector = 360 + degree
	}
	sector += cfg.sectorOffset()
	return normalizeSector(sector, cfg.TotalSectors)
}

func normalizeSector(sector, total int) int {
	return ((sector % total) + total) % total
}
