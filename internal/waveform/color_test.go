package waveform

import (
	"errors"
	"image/color"
	"testing"
)

func TestParseColorTransparent(t *testing.T) {
	for _, spec := range []string{"0,0,0,0", "0, 0, 0, 0", "none", "transparent", "TRANSPARENT"} {
		c, err := ParseColor(spec)
		if err != nil {
			t.Fatalf("ParseColor(%q) failed: %v", spec, err)
		}
		if c != (color.NRGBA{}) {
			t.Errorf("ParseColor(%q): expected transparent, got %v", spec, c)
		}
	}
}

func TestParseColorBlack(t *testing.T) {
	for _, spec := range []string{"0,0,0,255", "0, 0, 0, 1.0", "black"} {
		c, err := ParseColor(spec)
		if err != nil {
			t.Fatalf("ParseColor(%q) failed: %v", spec, err)
		}
		if c != (color.NRGBA{A: 255}) {
			t.Errorf("ParseColor(%q): expected opaque black, got %v", spec, c)
		}
	}
}

func TestParseColorForms(t *testing.T) {
	tests := []struct {
		spec string
		want color.NRGBA
	}{
		{"red", color.NRGBA{R: 255, A: 255}},
		{"128", color.NRGBA{R: 128, G: 128, B: 128, A: 255}},
		{"128,64", color.NRGBA{R: 128, G: 128, B: 128, A: 64}},
		{"10,20,30", color.NRGBA{R: 10, G: 20, B: 30, A: 255}},
		{"10,20,30,40", color.NRGBA{R: 10, G: 20, B: 30, A: 40}},
		{"1.0,0.0,0.0,1.0", color.NRGBA{R: 255, A: 255}},
		{" 255 , 255 , 0 ", color.NRGBA{R: 255, G: 255, A: 255}},
	}

	for _, tt := range tests {
		c, err := ParseColor(tt.spec)
		if err != nil {
			t.Errorf("ParseColor(%q) failed: %v", tt.spec, err)
			continue
		}
		if c != tt.want {
			t.Errorf("ParseColor(%q): expected %v, got %v", tt.spec, tt.want, c)
		}
	}
}

func TestParseColorClamping(t *testing.T) {
	c, err := ParseColor("300,-5,2.5,255")
	if err != nil {
		t.Fatalf("ParseColor failed: %v", err)
	}
	if c != (color.NRGBA{R: 255, G: 0, B: 255, A: 255}) {
		t.Errorf("expected clamped components, got %v", c)
	}
}

func TestParseColorInvalid(t *testing.T) {
	for _, spec := range []string{"", "fuchsia", "1,2,3,4,5", "a,b,c", "0.x"} {
		if _, err := ParseColor(spec); !errors.Is(err, ErrBadColor) {
			t.Errorf("ParseColor(%q): expected ErrBadColor, got %v", spec, err)
		}
	}
}
