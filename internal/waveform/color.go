package waveform

import (
	"fmt"
	"image/color"
	"strconv"
	"strings"
)

// namedColors is the closed set of colour literals ParseColor accepts.
var namedColors = map[string]color.NRGBA{
	"transparent": {},
	"none":        {},
	"black":       {A: 255},
	"white":       {R: 255, G: 255, B: 255, A: 255},
	"red":         {R: 255, A: 255},
	"green":       {G: 255, A: 255},
	"blue":        {B: 255, A: 255},
	"yellow":      {R: 255, G: 255, A: 255},
	"cyan":        {G: 255, B: 255, A: 255},
	"magenta":     {R: 255, B: 255, A: 255},
}

// ParseColor turns a colour specification into an NRGBA value. A spec is
// either a literal name ("black", "transparent", ...) or a comma-separated
// list of 1 (luminance), 2 (luminance, alpha), 3 (RGB) or 4 (RGBA)
// components. A component containing a decimal point is read as a
// 0.0-1.0 float, otherwise as a 0-255 integer; out-of-range values clamp.
// Anything else fails with ErrBadColor.
func ParseColor(spec string) (color.NRGBA, error) {
	s := strings.ToLower(strings.TrimSpace(spec))
	if c, ok := namedColors[s]; ok {
		return c, nil
	}

	parts := strings.Split(s, ",")
	comps := make([]uint8, len(parts))
	for i, p := range parts {
		v, err := parseComponent(p)
		if err != nil {
			return color.NRGBA{}, err
		}
		comps[i] = v
	}

	switch len(comps) {
	case 1:
		return color.NRGBA{R: comps[0], G: comps[0], B: comps[0], A: 255}, nil
	case 2:
		return color.NRGBA{R: comps[0], G: comps[0], B: comps[0], A: comps[1]}, nil
	case 3:
		return color.NRGBA{R: comps[0], G: comps[1], B: comps[2], A: 255}, nil
	case 4:
		return color.NRGBA{R: comps[0], G: comps[1], B: comps[2], A: comps[3]}, nil
	}
	return color.NRGBA{}, fmt.Errorf("%w: %q", ErrBadColor, spec)
}

func parseComponent(s string) (uint8, error) {
	s = strings.TrimSpace(s)
	if strings.Contains(s, ".") {
		f, err := strconv.ParseFloat(s, 64)
		if err != nil {
			return 0, fmt.Errorf("%w: bad component %q", ErrBadColor, s)
		}
		if f < 0 {
			f = 0
		}
		if f > 1 {
			f = 1
		}
		return uint8(f * 255), nil
	}

	n, err := strconv.Atoi(s)
	if err != nil {
		return 0, fmt.Errorf("%w: bad component %q", ErrBadColor, s)
	}
	if n < 0 {
		n = 0
	}
	if n > 255 {
		n = 255
	}
	return uint8(n), nil
}
