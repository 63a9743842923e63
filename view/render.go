package view

import (
	"image/color"
	"math"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"huewheel/wheel"
)

func newImage(w, h float64) *ebiten.Image {
	iw, ih := int(math.Ceil(w)), int(math.Ceil(h))
	if iw < 1 {
		iw = 1
	}
	if ih < 1 {
		ih = 1
	}
	return ebiten.NewImage(iw, ih)
}

// ringImage draws the hue ring, one stroked arc per sector.
func ringImage(w, h float64, opts Options) *ebiten.Image {
	img := newImage(w, h)
	segs, err := wheel.RingSegments(opts.Arc.TotalSectors, opts.ThicknessOfColorWheel)
	if err != nil {
		return img
	}
	cx, cy := float32(w/2), float32(h/2)
	r := float32(wheel.RingRadius(w, opts.ThicknessOfColorWheel))
	if r <= 0 {
		return img
	}
	for _, s := range segs {
		strokeArc(img, cx, cy, r, s, s.Color)
	}
	return img
}

// thumbImage draws the unrotated thumb arc and its head. The image is the
// size of the thumb frame; ringWidth is the width of the ring frame the
// thumb surrounds.
func thumbImage(w, h, ringWidth float64, opts Options) *ebiten.Image {
	img := newImage(w, h)
	center := wheel.Pt(w/2, h/2)
	r := wheel.ThumbRadius(ringWidth, opts.ArcControlSpacing)
	if r <= 0 {
		return img
	}
	col := opts.ArcColor
	for _, s := range wheel.ThumbSegments(opts.Arc) {
		strokeArc(img, float32(center.X), float32(center.Y), float32(r), s, col)
	}
	head := wheel.HeadRect(center, r, opts.Arc)
	hc := head.Center()
	vector.FillCircle(img, float32(hc.X), float32(hc.Y), float32(head.Dx()/2), col, true)
	return img
}

func strokeArc(dst *ebiten.Image, cx, cy, r float32, s wheel.Segment, col color.Color) {
	if s.Thickness <= 0 {
		return
	}
	var path vector.Path
	path.Arc(cx, cy, r, float32(s.StartAngle), float32(s.EndAngle), vector.Clockwise)

	strokeOp := &vector.StrokeOptions{Width: float32(s.Thickness)}
	drawOp := &vector.DrawPathOptions{AntiAlias: true}
	drawOp.ColorScale.ScaleWithColor(col)
	vector.StrokePath(dst, &path, strokeOp, drawOp)
}
