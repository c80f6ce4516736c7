// Package model defines the three channel models the UI edits (RGB, HSV,
// CMYK) and the per-channel bounds descriptors their fields validate with.
// The set is closed; a Variant only packs and unpacks channels through the
// colorval accessors and carries no conversion math of its own.
package model

import (
	"strconv"

	"github.com/jask/tricolor/internal/colorval"
)

// Channel is the bounds descriptor for one editable channel: a validation
// predicate, a text converter and a default value. Descriptors are fixed at
// variant definition and never change.
type Channel struct {
	Name    string
	Valid   func(string) bool
	Convert func(string) (int, error)
	Default int
}

// Variant is one color model with its fixed channel set. Implementations are
// immutable value types; Wrap is total (any color is representable in any
// model) and Color never fails for values produced by Wrap or validated
// input.
type Variant interface {
	Name() string
	Channels() []Channel
	Wrap(c colorval.Color) Variant
	Color() colorval.Color
	Values() []int
	FromValues(vals []int) Variant
}

// Variants returns the supported models in their fixed declaration order.
// This order is also the panel wiring order.
func Variants() []Variant {
	return []Variant{RGB{}, HSV{}, CMYK{}}
}

// IntBounds returns a predicate accepting integer text within [lo, hi],
// both ends inclusive.
func IntBounds(lo, hi int) func(string) bool {
	return func(s string) bool {
		v, err := strconv.Atoi(s)
		if err != nil {
			return false
		}
		return lo <= v && v <= hi
	}
}

func atoi(s string) (int, error) { return strconv.Atoi(s) }

func channel(name string, lo, hi int) Channel {
	return Channel{Name: name, Valid: IntBounds(lo, hi), Convert: atoi, Default: 0}
}

// RGB is the red/green/blue model, all channels 0-255.
type RGB struct {
	Red, Green, Blue int
}

func (RGB) Name() string { return "RGB" }

func (RGB) Channels() []Channel {
	return []Channel{
		channel("red", 0, 255),
		channel("green", 0, 255),
		channel("blue", 0, 255),
	}
}

func (RGB) Wrap(c colorval.Color) Variant {
	return RGB{Red: c.Red(), Green: c.Green(), Blue: c.Blue()}
}

func (v RGB) Color() colorval.Color {
	return colorval.FromRGB(v.Red, v.Green, v.Blue)
}

func (v RGB) Values() []int { return []int{v.Red, v.Green, v.Blue} }

func (RGB) FromValues(vals []int) Variant {
	return RGB{Red: vals[0], Green: vals[1], Blue: vals[2]}
}

// HSV is the hue/saturation/value model: hue 0-359, the rest 0-255.
type HSV struct {
	Hue, Saturation, Value int
}

func (HSV) Name() string { return "HSV" }

func (HSV) Channels() []Channel {
	return []Channel{
		channel("hue", 0, 359),
		channel("saturation", 0, 255),
		channel("value", 0, 255),
	}
}

func (HSV) Wrap(c colorval.Color) Variant {
	return HSV{Hue: c.Hue(), Saturation: c.Saturation(), Value: c.Value()}
}

func (v HSV) Color() colorval.Color {
	return colorval.FromHSV(v.Hue, v.Saturation, v.Value)
}

func (v HSV) Values() []int { return []int{v.Hue, v.Saturation, v.Value} }

func (HSV) FromValues(vals []int) Variant {
	return HSV{Hue: vals[0], Saturation: vals[1], Value: vals[2]}
}

// CMYK is the cyan/magenta/yellow/black model, all channels 0-255.
type CMYK struct {
	Cyan, Magenta, Yellow, Black int
}

func (CMYK) Name() string { return "CMYK" }

func (CMYK) Channels() []Channel {
	return []Channel{
		channel("cyan", 0, 255),
		channel("magenta", 0, 255),
		channel("yellow", 0, 255),
		channel("black", 0, 255),
	}
}

func (CMYK) Wrap(c colorval.Color) Variant {
	return CMYK{Cyan: c.Cyan(), Magenta: c.Magenta(), Yellow: c.Yellow(), Black: c.Black()}
}

func (v CMYK) Color() colorval.Color {
	return colorval.FromCMYK(v.Cyan, v.Magenta, v.Yellow, v.Black)
}

func (v CMYK) Values() []int {
	return []int{v.Cyan, v.Magenta, v.Yellow, v.Black}
}

func (CMYK) FromValues(vals []int) Variant {
	return CMYK{Cyan: vals[0], Magenta: vals[1], Yellow: vals[2], Black: vals[3]}
}
