// Package colorval provides the generic color value shared by every channel
// model in the UI. A Color remembers the model it was constructed in, so
// reading back the channels of that model is exact; reading any other model's
// channels converts on the fly.
package colorval

import (
	"fmt"
	"image/color"
	"sort"
	"strings"

	colorful "github.com/lucasb-eyer/go-colorful"
)

type space int

const (
	spaceRGB space = iota
	spaceHSV
	spaceCMYK
)

// Color is an immutable color value expressible in any supported model.
// The zero value is black (RGB 0,0,0).
type Color struct {
	space          space
	c0, c1, c2, c3 int
}

// FromRGB builds a Color from red/green/blue channels in 0-255.
// Out-of-range input is clamped.
func FromRGB(r, g, b int) Color {
	return Color{space: spaceRGB, c0: clamp(r, 0, 255), c1: clamp(g, 0, 255), c2: clamp(b, 0, 255)}
}

// FromHSV builds a Color from hue 0-359 and saturation/value in 0-255.
func FromHSV(h, s, v int) Color {
	return Color{space: spaceHSV, c0: clamp(h, 0, 359), c1: clamp(s, 0, 255), c2: clamp(v, 0, 255)}
}

// FromCMYK builds a Color from cyan/magenta/yellow/black channels in 0-255.
func FromCMYK(c, m, y, k int) Color {
	return Color{
		space: spaceCMYK,
		c0:    clamp(c, 0, 255), c1: clamp(m, 0, 255),
		c2: clamp(y, 0, 255), c3: clamp(k, 0, 255),
	}
}

// ParseHex parses "#rrggbb" (case-insensitive) into a Color.
func ParseHex(s string) (Color, error) {
	if len(s) != 7 || s[0] != '#' {
		return Color{}, fmt.Errorf("invalid hex color %q", s)
	}
	var r, g, b int
	if _, err := fmt.Sscanf(strings.ToLower(s), "#%02x%02x%02x", &r, &g, &b); err != nil {
		return Color{}, fmt.Errorf("invalid hex color %q", s)
	}
	return FromRGB(r, g, b), nil
}

// rgb returns the 8-bit RGB projection of the color.
func (c Color) rgb() (int, int, int) {
	switch c.space {
	case spaceRGB:
		return c.c0, c.c1, c.c2
	case spaceHSV:
		f := colorful.Hsv(float64(c.c0), float64(c.c1)/255, float64(c.c2)/255)
		return scale255(f.R), scale255(f.G), scale255(f.B)
	default:
		r, g, b := color.CMYKToRGB(uint8(c.c0), uint8(c.c1), uint8(c.c2), uint8(c.c3))
		return int(r), int(g), int(b)
	}
}

// Red returns the red channel in 0-255.
func (c Color) Red() int { r, _, _ := c.rgb(); return r }

// Green returns the green channel in 0-255.
func (c Color) Green() int { _, g, _ := c.rgb(); return g }

// Blue returns the blue channel in 0-255.
func (c Color) Blue() int { _, _, b := c.rgb(); return b }

// hsv returns hue 0-359 and saturation/value in 0-255. Achromatic colors
// report hue 0.
func (c Color) hsv() (int, int, int) {
	if c.space == spaceHSV {
		return c.c0, c.c1, c.c2
	}
	r, g, b := c.rgb()
	h, s, v := colorful.Color{R: float64(r) / 255, G: float64(g) / 255, B: float64(b) / 255}.Hsv()
	return int(h+0.5) % 360, scale255(s), scale255(v)
}

// Hue returns the hue in 0-359; achromatic colors report 0.
func (c Color) Hue() int { h, _, _ := c.hsv(); return h }

// Saturation returns the saturation in 0-255.
func (c Color) Saturation() int { _, s, _ := c.hsv(); return s }

// Value returns the value (brightness) in 0-255.
func (c Color) Value() int { _, _, v := c.hsv(); return v }

func (c Color) cmyk() (int, int, int, int) {
	if c.space == spaceCMYK {
		return c.c0, c.c1, c.c2, c.c3
	}
	r, g, b := c.rgb()
	cc, mm, yy, kk := color.RGBToCMYK(uint8(r), uint8(g), uint8(b))
	return int(cc), int(mm), int(yy), int(kk)
}

// Cyan returns the cyan channel in 0-255.
func (c Color) Cyan() int { v, _, _, _ := c.cmyk(); return v }

// Magenta returns the magenta channel in 0-255.
func (c Color) Magenta() int { _, v, _, _ := c.cmyk(); return v }

// Yellow returns the yellow channel in 0-255.
func (c Color) Yellow() int { _, _, v, _ := c.cmyk(); return v }

// Black returns the black (key) channel in 0-255.
func (c Color) Black() int { _, _, _, v := c.cmyk(); return v }

// Hex renders the color as "#rrggbb".
func (c Color) Hex() string {
	r, g, b := c.rgb()
	return fmt.Sprintf("#%02x%02x%02x", r, g, b)
}

// Equal reports whether two colors have the same 8-bit RGB projection,
// regardless of the model either was constructed in.
func (c Color) Equal(o Color) bool {
	r1, g1, b1 := c.rgb()
	r2, g2, b2 := o.rgb()
	return r1 == r2 && g1 == g2 && b1 == b2
}

func (c Color) String() string {
	switch c.space {
	case spaceHSV:
		return fmt.Sprintf("hsv(%d, %d, %d)", c.c0, c.c1, c.c2)
	case spaceCMYK:
		return fmt.Sprintf("cmyk(%d, %d, %d, %d)", c.c0, c.c1, c.c2, c.c3)
	default:
		return fmt.Sprintf("rgb(%d, %d, %d)", c.c0, c.c1, c.c2)
	}
}

func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

func scale255(f float64) int {
	return clamp(int(f*255+0.5), 0, 255)
}

// namedColors is the basic CSS/X11 name set plus the handful of extras the
// palette dialog offers. Values follow the CSS keyword definitions.
var namedColors = map[string]Color{
	"black":   FromRGB(0, 0, 0),
	"white":   FromRGB(255, 255, 255),
	"red":     FromRGB(255, 0, 0),
	"lime":    FromRGB(0, 255, 0),
	"blue":    FromRGB(0, 0, 255),
	"yellow":  FromRGB(255, 255, 0),
	"cyan":    FromRGB(0, 255, 255),
	"magenta": FromRGB(255, 0, 255),
	"gray":    FromRGB(128, 128, 128),
	"silver":  FromRGB(192, 192, 192),
	"maroon":  FromRGB(128, 0, 0),
	"olive":   FromRGB(128, 128, 0),
	"green":   FromRGB(0, 128, 0),
	"purple":  FromRGB(128, 0, 128),
	"teal":    FromRGB(0, 128, 128),
	"navy":    FromRGB(0, 0, 128),
	"orange":  FromRGB(255, 165, 0),
	"pink":    FromRGB(255, 192, 203),
	"brown":   FromRGB(165, 42, 42),
	"gold":    FromRGB(255, 215, 0),
	"indigo":  FromRGB(75, 0, 130),
	"violet":  FromRGB(238, 130, 238),
	"coral":   FromRGB(255, 127, 80),
	"salmon":  FromRGB(250, 128, 114),
}

// ByName looks up a color by its lowercase keyword name.
func ByName(name string) (Color, bool) {
	c, ok := namedColors[strings.ToLower(strings.TrimSpace(name))]
	return c, ok
}

// Names returns the sorted list of known color names.
func Names() []string {
	out := make([]string, 0, len(namedColors))
	for name := range namedColors {
		out = append(out, name)
	}
	sort.Strings(out)
	return out
}
