package wheel

import (
	"fmt"
	"image/color"
	"math"

	colorful "github.com/lucasb-eyer/go-colorful"
)

// HueColor is a color in HSB form. Hue is a fraction of a full turn in
// [0,1); saturation, brightness and alpha are in [0,1].
type HueColor struct {
	Hue        float64
	Saturation float64
	Brightness float64
	Alpha      float64
}

// toColorful returns the opaque go-colorful equivalent of c.
func (c HueColor) toColorful() colorful.Color {
	return colorful.Hsv(normalizeHue(c.Hue)*360, clamp(c.Saturation, 0, 1), clamp(c.Brightness, 0, 1)).Clamped()
}

// ToNRGBA converts c to 8-bit non-premultiplied RGBA.
func (c HueColor) ToNRGBA() color.NRGBA {
	r, g, b := c.toColorful().RGB255()
	return color.NRGBA{R: r, G: g, B: b, A: uint8(math.Round(clamp(c.Alpha, 0, 1) * 255))}
}

// RGBA implements color.Color.
func (c HueColor) RGBA() (r, g, b, a uint32) {
	return c.ToNRGBA().RGBA()
}

// Hex returns the color as "#rrggbb", or "#rrggbbaa" when not opaque.
func (c HueColor) Hex() string {
	n := c.ToNRGBA()
	if n.A == 0xff {
		return fmt.Sprintf("#%02x%02x%02x", n.R, n.G, n.B)
	}
	return fmt.Sprintf("#%02x%02x%02x%02x", n.R, n.G, n.B, n.A)
}

func (c HueColor) String() string {
	return fmt.Sprintf("HSB(%.4f, %.2f, %.2f, %.2f)", c.Hue, c.Saturation, c.Brightness, c.Alpha)
}

// hueColorFrom converts any color to HueColor through the HSV model.
func hueColorFrom(col color.Color) HueColor {
	n := color.NRGBAModel.Convert(col).(color.NRGBA)
	cf := colorful.Color{R: float64(n.R) / 255, G: float64(n.G) / 255, B: float64(n.B) / 255}
	h, s, v := cf.Hsv()
	return HueColor{Hue: normalizeHue(h / 360), Saturation: s, Brightness: v, Alpha: float64(n.A) / 255}
}

// HueColorOf converts an arbitrary color to HueColor.
func HueColorOf(col color.Color) HueColor {
	if hc, ok := col.(HueColor); ok {
		return hc
	}
	return hueColorFrom(col)
}

func normalizeHue(h float64) float64 {
	h -= math.Floor(h)
	if h >= 1 {
		h = 0
	}
	return h
}

func clamp(v, min, max float64) float64 {
	if v < min {
		return min
	}
	if v > max {
		return max
	}
	return v
}

func nrgba(r, g, b, a uint8) color.NRGBA {
	return color.NRGBA{R: r, G: g, B: b, A: a}
}
