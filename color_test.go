package rendergrid

import "testing"

func TestStandardColorSGRCodes(t *testing.T) {
	c := StandardColor(1)
	if got := c.ToSGRCode(true); got != "31" {
		t.Errorf("fg: got %q, want 31", got)
	}
	if got := c.ToSGRCode(false); got != "41" {
		t.Errorf("bg: got %q, want 41", got)
	}

	bright := StandardColor(9)
	if got := bright.ToSGRCode(true); got != "91" {
		t.Errorf("bright fg: got %q, want 91", got)
	}
}

func TestPaletteColorSGRCode(t *testing.T) {
	c := PaletteColor(200)
	if got := c.ToSGRCode(true); got != "38;5;200" {
		t.Errorf("got %q", got)
	}
}

func TestTrueColorSGRCode(t *testing.T) {
	c := TrueColor(10, 20, 30)
	if got := c.ToSGRCode(false); got != "48;2;10;20;30" {
		t.Errorf("got %q", got)
	}
}

func TestDefaultColorSGRCode(t *testing.T) {
	c := Color{Type: ColorTypeDefault}
	if got := c.ToSGRCode(true); got != "39" {
		t.Errorf("got %q", got)
	}
	if got := c.ToSGRCode(false); got != "49" {
		t.Errorf("got %q", got)
	}
	if !c.IsDefault() {
		t.Error("expected IsDefault true")
	}
}

func TestToHexAndParseHexColorRoundTrip(t *testing.T) {
	c := TrueColor(0xAB, 0xCD, 0xEF)
	hex := c.ToHex()
	if hex != "#ABCDEF" {
		t.Fatalf("got %q", hex)
	}
	parsed, ok := ParseHexColor(hex)
	if !ok || parsed != c {
		t.Fatalf("round trip failed: got %+v ok=%v, want %+v", parsed, ok, c)
	}
}

func TestParseHexColorShortForm(t *testing.T) {
	c, ok := ParseHexColor("#f00")
	if !ok || c.R != 0xFF || c.G != 0 || c.B != 0 {
		t.Fatalf("got %+v ok=%v", c, ok)
	}
}

func TestParseHexColorRejectsMalformed(t *testing.T) {
	if _, ok := ParseHexColor("not-a-color"); ok {
		t.Error("expected failure for malformed input")
	}
}

func TestGet256ColorRGBGrayscaleRamp(t *testing.T) {
	rgb := Get256ColorRGB(232)
	if rgb.R != 8 || rgb.G != 8 || rgb.B != 8 {
		t.Fatalf("got %+v, want the ramp's first gray step", rgb)
	}
}
