package colorval

import (
	"sort"
	"testing"
)

func TestFromRGBAccessors(t *testing.T) {
	c := FromRGB(255, 0, 255)
	if c.Red() != 255 || c.Green() != 0 || c.Blue() != 255 {
		t.Errorf("rgb = (%d, %d, %d), want (255, 0, 255)", c.Red(), c.Green(), c.Blue())
	}
	if c.Hue() != 300 || c.Saturation() != 255 || c.Value() != 255 {
		t.Errorf("hsv = (%d, %d, %d), want (300, 255, 255)", c.Hue(), c.Saturation(), c.Value())
	}
	if c.Cyan() != 0 || c.Magenta() != 255 || c.Yellow() != 0 || c.Black() != 0 {
		t.Errorf("cmyk = (%d, %d, %d, %d), want (0, 255, 0, 0)", c.Cyan(), c.Magenta(), c.Yellow(), c.Black())
	}
}

func TestWhiteCrossModel(t *testing.T) {
	white := FromRGB(255, 255, 255)
	if white.Hue() != 0 || white.Saturation() != 0 || white.Value() != 255 {
		t.Errorf("white hsv = (%d, %d, %d), want (0, 0, 255)", white.Hue(), white.Saturation(), white.Value())
	}
	if white.Cyan() != 0 || white.Magenta() != 0 || white.Yellow() != 0 || white.Black() != 0 {
		t.Errorf("white cmyk = (%d, %d, %d, %d), want all zero", white.Cyan(), white.Magenta(), white.Yellow(), white.Black())
	}
	if !FromHSV(0, 0, 255).Equal(white) {
		t.Error("hsv(0, 0, 255) should equal white")
	}
	if !FromCMYK(0, 0, 0, 0).Equal(white) {
		t.Error("cmyk(0, 0, 0, 0) should equal white")
	}
}

func TestBlackCrossModel(t *testing.T) {
	black := FromRGB(0, 0, 0)
	if black.Hue() != 0 || black.Saturation() != 0 || black.Value() != 0 {
		t.Errorf("black hsv = (%d, %d, %d), want (0, 0, 0)", black.Hue(), black.Saturation(), black.Value())
	}
	if black.Black() != 255 {
		t.Errorf("black key channel = %d, want 255", black.Black())
	}
	if !FromCMYK(0, 0, 0, 255).Equal(black) {
		t.Error("cmyk(0, 0, 0, 255) should equal black")
	}
}

func TestNativeChannelsLossless(t *testing.T) {
	hsv := FromHSV(200, 100, 50)
	if hsv.Hue() != 200 || hsv.Saturation() != 100 || hsv.Value() != 50 {
		t.Errorf("hsv read-back = (%d, %d, %d), want (200, 100, 50)", hsv.Hue(), hsv.Saturation(), hsv.Value())
	}
	cmyk := FromCMYK(10, 20, 30, 40)
	if cmyk.Cyan() != 10 || cmyk.Magenta() != 20 || cmyk.Yellow() != 30 || cmyk.Black() != 40 {
		t.Errorf("cmyk read-back = (%d, %d, %d, %d), want (10, 20, 30, 40)",
			cmyk.Cyan(), cmyk.Magenta(), cmyk.Yellow(), cmyk.Black())
	}
}

func TestEqualAcrossModels(t *testing.T) {
	if !FromRGB(255, 0, 0).Equal(FromHSV(0, 255, 255)) {
		t.Error("rgb red and hsv red should be equal")
	}
	if !FromRGB(0, 0, 255).Equal(FromHSV(240, 255, 255)) {
		t.Error("rgb blue and hsv blue should be equal")
	}
	if FromRGB(255, 0, 0).Equal(FromRGB(254, 0, 0)) {
		t.Error("distinct colors should not be equal")
	}
}

func TestConstructorsClamp(t *testing.T) {
	c := FromRGB(300, -5, 0)
	if c.Red() != 255 || c.Green() != 0 {
		t.Errorf("clamped rgb = (%d, %d), want (255, 0)", c.Red(), c.Green())
	}
	h := FromHSV(400, 300, -1)
	if h.Hue() != 359 || h.Saturation() != 255 || h.Value() != 0 {
		t.Errorf("clamped hsv = (%d, %d, %d), want (359, 255, 0)", h.Hue(), h.Saturation(), h.Value())
	}
}

func TestParseHex(t *testing.T) {
	tests := []struct {
		in      string
		wantErr bool
		r, g, b int
	}{
		{"#ff00ff", false, 255, 0, 255},
		{"#FF00FF", false, 255, 0, 255},
		{"#336699", false, 51, 102, 153},
		{"ff00ff", true, 0, 0, 0},
		{"#ff00f", true, 0, 0, 0},
		{"#gggggg", true, 0, 0, 0},
		{"", true, 0, 0, 0},
	}
	for _, tt := range tests {
		c, err := ParseHex(tt.in)
		if tt.wantErr {
			if err == nil {
				t.Errorf("ParseHex(%q): expected error", tt.in)
			}
			continue
		}
		if err != nil {
			t.Errorf("ParseHex(%q): %v", tt.in, err)
			continue
		}
		if c.Red() != tt.r || c.Green() != tt.g || c.Blue() != tt.b {
			t.Errorf("ParseHex(%q) = (%d, %d, %d), want (%d, %d, %d)",
				tt.in, c.Red(), c.Green(), c.Blue(), tt.r, tt.g, tt.b)
		}
	}
}

func TestHexRoundTrip(t *testing.T) {
	c := FromRGB(255, 0, 255)
	if c.Hex() != "#ff00ff" {
		t.Errorf("hex = %q, want %q", c.Hex(), "#ff00ff")
	}
	back, err := ParseHex(c.Hex())
	if err != nil {
		t.Fatalf("ParseHex: %v", err)
	}
	if !back.Equal(c) {
		t.Error("hex round trip should preserve the color")
	}
}

func TestByName(t *testing.T) {
	c, ok := ByName("magenta")
	if !ok {
		t.Fatal("magenta should be a known name")
	}
	if !c.Equal(FromRGB(255, 0, 255)) {
		t.Errorf("magenta = %s, want rgb(255, 0, 255)", c)
	}
	if _, ok := ByName(" Magenta "); !ok {
		t.Error("name lookup should be case-insensitive and trimmed")
	}
	if _, ok := ByName("nonexistent"); ok {
		t.Error("expected miss for unknown name")
	}
}

func TestNamesSorted(t *testing.T) {
	names := Names()
	if len(names) != len(namedColors) {
		t.Fatalf("len(Names()) = %d, want %d", len(names), len(namedColors))
	}
	if !sort.StringsAreSorted(names) {
		t.Error("Names() should be sorted")
	}
	for _, name := range names {
		if _, ok := ByName(name); !ok {
			t.Errorf("name %q not resolvable", name)
		}
	}
}

func TestString(t *testing.T) {
	tests := []struct {
		c    Color
		want string
	}{
		{FromRGB(1, 2, 3), "rgb(1, 2, 3)"},
		{FromHSV(300, 255, 255), "hsv(300, 255, 255)"},
		{FromCMYK(0, 255, 0, 0), "cmyk(0, 255, 0, 0)"},
	}
	for _, tt := range tests {
		if got := tt.c.String(); got != tt.want {
			t.Errorf("String() = %q, want %q", got, tt.want)
		}
	}
}
