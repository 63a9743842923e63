package wheel

import (
	"encoding/json"
	"fmt"
	"strconv"
	"strings"

	colorful "github.com/lucasb-eyer/go-colorful"
)

var namedColors = map[string]HueColor{
	"black": {Alpha: 1},
	"white": {Brightness: 1, Alpha: 1},
	"clear": {},
}

// MarshalJSON implements json.Marshaler using HSV representation with the
// hue in degrees.
func (c HueColor) MarshalJSON() ([]byte, error) {
	return json.Marshal(struct {
		HSV [4]float64 `json:"HSV"`
	}{[4]float64{normalizeHue(c.Hue) * 360, c.Saturation, c.Brightness, c.Alpha}})
}

// UnmarshalJSON accepts HSV, RGBA objects or a string. Strings may be a
// named color, a hex RGB(A) value like "#RRGGBB" or comma-separated HSV
// components "h,s,v[,a]" with h in degrees.
func (c *HueColor) UnmarshalJSON(data []byte) error {
	var hstruct struct {
		HSV *[4]float64 `json:"HSV"`
	}
	if err := json.Unmarshal(data, &hstruct); err == nil && hstruct.HSV != nil {
		h := hstruct.HSV
		*c = HueColor{Hue: normalizeHue(h[0] / 360), Saturation: h[1], Brightness: h[2], Alpha: h[3]}
		return nil
	}
	var rgba struct{ R, G, B, A *uint8 }
	if err := json.Unmarshal(data, &rgba); err == nil && rgba.R != nil && rgba.G != nil && rgba.B != nil {
		a := uint8(0xff)
		if rgba.A != nil {
			a = *rgba.A
		}
		*c = hueColorFrom(nrgba(*rgba.R, *rgba.G, *rgba.B, a))
		return nil
	}
	var s string
	if err := json.Unmarshal(data, &s); err == nil {
		return c.parse(s)
	}
	return fmt.Errorf("invalid color format: %s", string(data))
}

// ParseColor parses the string forms accepted by UnmarshalJSON.
func ParseColor(s string) (HueColor, error) {
	var c HueColor
	err := c.parse(s)
	return c, err
}

func (c *HueColor) parse(s string) error {
	s = strings.TrimSpace(s)
	if nc, ok := namedColors[strings.ToLower(s)]; ok {
		*c = nc
		return nil
	}
	if strings.HasPrefix(s, "#") {
		hex := strings.TrimPrefix(s, "#")
		switch len(hex) {
		case 3, 6:
			cf, err := colorful.Hex(s)
			if err == nil {
				r, g, b := cf.RGB255()
				*c = hueColorFrom(nrgba(r, g, b, 0xff))
				return nil
			}
		case 8:
			val, err := strconv.ParseUint(hex, 16, 32)
			if err == nil {
				*c = hueColorFrom(nrgba(uint8(val>>24), uint8(val>>16), uint8(val>>8), uint8(val)))
				return nil
			}
		}
		return fmt.Errorf("invalid hex color: %q", s)
	}
	if parts := strings.Split(s, ","); len(parts) >= 3 {
		vals := make([]float64, 4)
		vals[3] = 1
		for i := 0; i < len(parts) && i < 4; i++ {
			v, err := strconv.ParseFloat(strings.TrimSpace(parts[i]), 64)
			if err != nil {
				return fmt.Errorf("invalid hsv component %q: %w", parts[i], err)
			}
			vals[i] = v
		}
		*c = HueColor{Hue: normalizeHue(vals[0] / 360), Saturation: vals[1], Brightness: vals[2], Alpha: vals[3]}
		return nil
	}
	return fmt.Errorf("invalid color format: %q", s)
}
