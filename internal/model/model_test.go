package model

import (
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/jask/tricolor/internal/colorval"
)

func TestVariantsOrder(t *testing.T) {
	variants := Variants()
	want := []string{"RGB", "HSV", "CMYK"}
	if len(variants) != len(want) {
		t.Fatalf("len(Variants()) = %d, want %d", len(variants), len(want))
	}
	for i, v := range variants {
		if v.Name() != want[i] {
			t.Errorf("Variants()[%d].Name() = %q, want %q", i, v.Name(), want[i])
		}
	}
}

func TestRoundTripRGB(t *testing.T) {
	samples := []int{0, 1, 128, 254, 255}
	for _, r := range samples {
		for _, g := range samples {
			for _, b := range samples {
				v := RGB{Red: r, Green: g, Blue: b}
				got := RGB{}.Wrap(v.Color())
				if diff := cmp.Diff(v, got); diff != "" {
					t.Fatalf("round trip mismatch (-want +got):\n%s", diff)
				}
			}
		}
	}
}

func TestRoundTripHSV(t *testing.T) {
	hues := []int{0, 1, 180, 300, 359}
	rest := []int{0, 64, 255}
	for _, h := range hues {
		for _, s := range rest {
			for _, val := range rest {
				v := HSV{Hue: h, Saturation: s, Value: val}
				got := HSV{}.Wrap(v.Color())
				if diff := cmp.Diff(v, got); diff != "" {
					t.Fatalf("round trip mismatch (-want +got):\n%s", diff)
				}
			}
		}
	}
}

func TestRoundTripCMYK(t *testing.T) {
	samples := []int{0, 127, 255}
	for _, c := range samples {
		for _, m := range samples {
			for _, y := range samples {
				for _, k := range samples {
					v := CMYK{Cyan: c, Magenta: m, Yellow: y, Black: k}
					got := CMYK{}.Wrap(v.Color())
					if diff := cmp.Diff(v, got); diff != "" {
						t.Fatalf("round trip mismatch (-want +got):\n%s", diff)
					}
				}
			}
		}
	}
}

func TestCrossModelConsistency(t *testing.T) {
	white := colorval.FromRGB(255, 255, 255)

	rgb := RGB{}.Wrap(white)
	hsv := HSV{}.Wrap(white)
	cmyk := CMYK{}.Wrap(white)

	if diff := cmp.Diff(RGB{Red: 255, Green: 255, Blue: 255}, rgb); diff != "" {
		t.Errorf("rgb (-want +got):\n%s", diff)
	}
	if diff := cmp.Diff(HSV{Hue: 0, Saturation: 0, Value: 255}, hsv); diff != "" {
		t.Errorf("hsv (-want +got):\n%s", diff)
	}
	if diff := cmp.Diff(CMYK{}, cmyk); diff != "" {
		t.Errorf("cmyk (-want +got):\n%s", diff)
	}

	for _, v := range []Variant{rgb, hsv, cmyk} {
		if !v.Color().Equal(white) {
			t.Errorf("%s.Color() = %s, want white", v.Name(), v.Color())
		}
	}
}

func TestIntBounds(t *testing.T) {
	tests := []struct {
		lo, hi int
		in     string
		want   bool
	}{
		{0, 255, "0", true},
		{0, 255, "255", true},
		{0, 255, "256", false},
		{0, 255, "-1", false},
		{0, 255, "abc", false},
		{0, 255, "", false},
		{0, 255, "12a", false},
		{0, 255, " 5", false},
		{0, 359, "359", true},
		{0, 359, "360", false},
	}
	for _, tt := range tests {
		if got := IntBounds(tt.lo, tt.hi)(tt.in); got != tt.want {
			t.Errorf("IntBounds(%d, %d)(%q) = %v, want %v", tt.lo, tt.hi, tt.in, got, tt.want)
		}
	}
}

func TestChannelDescriptors(t *testing.T) {
	tests := []struct {
		variant Variant
		names   []string
	}{
		{RGB{}, []string{"red", "green", "blue"}},
		{HSV{}, []string{"hue", "saturation", "value"}},
		{CMYK{}, []string{"cyan", "magenta", "yellow", "black"}},
	}
	for _, tt := range tests {
		chs := tt.variant.Channels()
		if len(chs) != len(tt.names) {
			t.Fatalf("%s: %d channels, want %d", tt.variant.Name(), len(chs), len(tt.names))
		}
		for i, ch := range chs {
			if ch.Name != tt.names[i] {
				t.Errorf("%s channel %d = %q, want %q", tt.variant.Name(), i, ch.Name, tt.names[i])
			}
			if ch.Default != 0 {
				t.Errorf("%s %s default = %d, want 0", tt.variant.Name(), ch.Name, ch.Default)
			}
			if v, err := ch.Convert("42"); err != nil || v != 42 {
				t.Errorf("%s %s Convert(\"42\") = %d, %v", tt.variant.Name(), ch.Name, v, err)
			}
			if !ch.Valid("0") {
				t.Errorf("%s %s should accept \"0\"", tt.variant.Name(), ch.Name)
			}
		}
	}

	hue := HSV{}.Channels()[0]
	if hue.Valid("360") {
		t.Error("hue should reject 360")
	}
	if !hue.Valid("359") {
		t.Error("hue should accept 359")
	}
	red := RGB{}.Channels()[0]
	if red.Valid("256") {
		t.Error("red should reject 256")
	}
	if !red.Valid("255") {
		t.Error("red should accept 255")
	}
}

func TestFromValuesMatchesValues(t *testing.T) {
	for _, v := range Variants() {
		vals := make([]int, len(v.Channels()))
		for i := range vals {
			vals[i] = i + 1
		}
		built := v.FromValues(vals)
		if diff := cmp.Diff(vals, built.Values()); diff != "" {
			t.Errorf("%s FromValues/Values (-want +got):\n%s", v.Name(), diff)
		}
	}
}
