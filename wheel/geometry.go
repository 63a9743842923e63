package wheel

import (
	"image"
	"math"
)

// Point is a position in the host view's coordinate space.
type Point struct {
	X, Y float64
}

// Pt is shorthand for Point{X: x, Y: y}.
func Pt(x, y float64) Point { return Point{X: x, Y: y} }

func pointAdd(a, b Point) Point { return Point{X: a.X + b.X, Y: a.Y + b.Y} }
func pointSub(a, b Point) Point { return Point{X: a.X - b.X, Y: a.Y - b.Y} }

// Rect is an axis-aligned rectangle, Min inclusive.
type Rect struct {
	Min, Max Point
}

// Center returns the geometric center of the rectangle.
func (r Rect) Center() Point {
	return Point{X: (r.Min.X + r.Max.X) / 2, Y: (r.Min.Y + r.Max.Y) / 2}
}

// Dx returns the width of the rectangle.
func (r Rect) Dx() float64 { return r.Max.X - r.Min.X }

// Dy returns the height of the rectangle.
func (r Rect) Dy() float64 { return r.Max.Y - r.Min.Y }

// Contains checks whether the given point lies within the rectangle.
func (r Rect) Contains(p Point) bool {
	return p.X >= r.Min.X && p.Y >= r.Min.Y && p.X <= r.Max.X && p.Y <= r.Max.Y
}

// Rectangle converts r to the standard image.Rectangle type.
func (r Rect) Rectangle() image.Rectangle {
	return image.Rectangle{
		Min: image.Point{X: int(math.Floor(r.Min.X)), Y: int(math.Floor(r.Min.Y))},
		Max: image.Point{X: int(math.Ceil(r.Max.X)), Y: int(math.Ceil(r.Max.Y))},
	}
}

// DistanceFromCenter returns the Euclidean distance between center and p.
func DistanceFromCenter(center, p Point) float64 {
	d := pointSub(p, center)
	return math.Hypot(d.X, d.Y)
}

// angleFrom returns the angle of p around center in radians, in (-π, π].
// Screen coordinates grow downwards so positive angles turn clockwise.
func angleFrom(center, p Point) float64 {
	d := pointSub(p, center)
	return math.Atan2(d.Y, d.X)
}

// PointOnCircle returns the point at angle (radians) on the circle.
func PointOnCircle(center Point, radius, angle float64) Point {
	return pointAdd(center, Point{X: radius * math.Cos(angle), Y: radius * math.Sin(angle)})
}

// wrapAngle folds a into (-π, π], the range atan2 reports for a rotation
// matrix holding the same angle.
func wrapAngle(a float64) float64 {
	a = math.Mod(a, 2*math.Pi)
	if a <= -math.Pi {
		a += 2 * math.Pi
	} else if a > math.Pi {
		a -= 2 * math.Pi
	}
	return a
}
