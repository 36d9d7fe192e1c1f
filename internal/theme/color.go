// Copyright (c) 2025 ManuGH
// Licensed under the PolyForm Noncommercial License 1.0.0
// Since v2.0.0, this software is restricted to non-commercial use only.

package theme

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/lucasb-eyer/go-colorful"
	"golang.org/x/image/colornames"
)

// ErrInvalidColor is returned for literals that are neither hex nor named colors.
var ErrInvalidColor = errors.New("invalid color literal")

// Color is a parsed color literal. The original spelling is kept so it can be
// passed to the build tool unchanged.
type Color struct {
	raw   string
	rgb   colorful.Color
	alpha float64
	named bool
}

// ParseColor accepts #rgb, #rgba, #rrggbb, #rrggbbaa and CSS named colors
// (including the "transparent" and "currentColor" keywords). Matching of
// names is case-insensitive.
func ParseColor(s string) (Color, error) {
	raw := strings.TrimSpace(s)
	if raw == "" {
		return Color{}, fmt.Errorf("%w: empty", ErrInvalidColor)
	}
	if strings.HasPrefix(raw, "#") {
		return parseHex(raw)
	}

	name := strings.ToLower(raw)
	switch name {
	case "transparent":
		return Color{raw: raw, named: true}, nil
	case "currentcolor":
		return Color{raw: raw, alpha: 1, named: true}, nil
	case "rebeccapurple":
		// CSS Color Level 4; missing from colornames.
		return Color{raw: raw, rgb: colorful.Color{R: 0x66 / 255.0, G: 0x33 / 255.0, B: 0x99 / 255.0}, alpha: 1, named: true}, nil
	}
	rgba, ok := colornames.Map[name]
	if !ok {
		return Color{}, fmt.Errorf("%w: unknown color name %q", ErrInvalidColor, raw)
	}
	c, _ := colorful.MakeColor(rgba)
	return Color{raw: raw, rgb: c, alpha: 1, named: true}, nil
}

func parseHex(raw string) (Color, error) {
	digits := raw[1:]
	var rgbDigits, alphaDigits string
	switch len(digits) {
	case 3, 6:
		rgbDigits = digits
	case 4:
		rgbDigits, alphaDigits = digits[:3], digits[3:]
	case 8:
		rgbDigits, alphaDigits = digits[:6], digits[6:]
	default:
		return Color{}, fmt.Errorf("%w: hex color %q must have 3, 4, 6 or 8 digits", ErrInvalidColor, raw)
	}

	// colorful.Hex is lenient about trailing garbage, so check the digits first.
	for _, r := range digits {
		if !isHexDigit(r) {
			return Color{}, fmt.Errorf("%w: %q contains non-hex digit %q", ErrInvalidColor, raw, r)
		}
	}

	c, err := colorful.Hex("#" + rgbDigits)
	if err != nil {
		return Color{}, fmt.Errorf("%w: %v", ErrInvalidColor, err)
	}

	alpha := 1.0
	if alphaDigits != "" {
		if len(alphaDigits) == 1 {
			alphaDigits += alphaDigits
		}
		a, err := strconv.ParseUint(alphaDigits, 16, 8)
		if err != nil {
			return Color{}, fmt.Errorf("%w: alpha of %q: %v", ErrInvalidColor, raw, err)
		}
		alpha = float64(a) / 255
	}
	return Color{raw: raw, rgb: c, alpha: alpha}, nil
}

func isHexDigit(r rune) bool {
	return (r >= '0' && r <= '9') || (r >= 'a' && r <= 'f') || (r >= 'A' && r <= 'F')
}

// String returns the literal as written in the source.
func (c Color) String() string { return c.raw }

// Hex returns the normalized #rrggbb form, without alpha.
func (c Color) Hex() string { return c.rgb.Hex() }

// Alpha returns opacity in [0,1].
func (c Color) Alpha() float64 { return c.alpha }

// IsNamed reports whether the literal was a color name rather than hex.
func (c Color) IsNamed() bool { return c.named }
