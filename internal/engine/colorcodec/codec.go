// Package colorcodec converts between normalized colors and CSS color text.
package colorcodec

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"github.com/lucasb-eyer/go-colorful"
	"go.trai.ch/varcss/internal/core/domain"
)

var (
	rgbPattern = regexp.MustCompile(
		`^rgba?\(\s*(\d{1,3})\s*,\s*(\d{1,3})\s*,\s*(\d{1,3})\s*(?:,\s*([0-9]*\.?[0-9]+)\s*)?\)$`)
	hslPattern = regexp.MustCompile(
		`^hsla?\(\s*([-+]?[0-9]*\.?[0-9]+)(?:deg)?\s*,\s*([0-9]*\.?[0-9]+)%\s*,\s*([0-9]*\.?[0-9]+)%\s*(?:,\s*([0-9]*\.?[0-9]+)\s*)?\)$`)
)

// ToCSS renders c as CSS color text. Opaque colors become lowercase #rrggbb;
// translucent colors become rgba(r, g, b, a) with two alpha decimals.
func ToCSS(c domain.Color) string {
	col := colorful.Color{R: c.R, G: c.G, B: c.B}.Clamped()
	if c.Opaque() {
		return col.Hex()
	}
	r, g, b := col.RGB255()
	return fmt.Sprintf("rgba(%d, %d, %d, %s)", r, g, b, strconv.FormatFloat(clamp(c.A), 'f', 2, 64))
}

// Format renders a literal value. Colors go through ToCSS, everything else
// falls back to its canonical text.
func Format(v domain.Value) string {
	if cv, ok := v.(domain.ColorValue); ok {
		return ToCSS(cv.Color)
	}
	if v == nil {
		return ""
	}
	return v.String()
}

// FromCSS parses CSS color text. It accepts #rgb, #rrggbb, #rrggbbaa,
// rgb(), rgba(), hsl() and hsla(). Anything else yields black.
func FromCSS(text string) domain.Color {
	s := strings.ToLower(strings.TrimSpace(text))
	switch {
	case strings.HasPrefix(s, "#"):
		return fromHex(s)
	case strings.HasPrefix(s, "rgb"):
		return fromRGB(s)
	case strings.HasPrefix(s, "hsl"):
		return fromHSL(s)
	default:
		return domain.Color{}
	}
}

func fromHex(s string) domain.Color {
	var alpha string
	if len(s) == 9 {
		s, alpha = s[:7], s[7:]
	}
	if !isHex(s[1:]) {
		return domain.Color{}
	}
	col, err := colorful.Hex(s)
	if err != nil {
		return domain.Color{}
	}
	c := domain.Color{R: col.R, G: col.G, B: col.B}
	if alpha != "" {
		a, err := strconv.ParseUint(alpha, 16, 8)
		if err != nil {
			return domain.Color{}
		}
		c.A = float64(a) / 255
		c.HasAlpha = true
	}
	return c
}

func fromRGB(s string) domain.Color {
	m := rgbPattern.FindStringSubmatch(s)
	if m == nil {
		return domain.Color{}
	}
	var ch [3]float64
	for i := range ch {
		n, err := strconv.Atoi(m[i+1])
		if err != nil || n > 255 {
			return domain.Color{}
		}
		ch[i] = float64(n) / 255
	}
	c := domain.Color{R: ch[0], G: ch[1], B: ch[2]}
	return withAlpha(c, m[4])
}

func fromHSL(s string) domain.Color {
	m := hslPattern.FindStringSubmatch(s)
	if m == nil {
		return domain.Color{}
	}
	h, _ := strconv.ParseFloat(m[1], 64)
	sat, _ := strconv.ParseFloat(m[2], 64)
	light, _ := strconv.ParseFloat(m[3], 64)
	for h < 0 {
		h += 360
	}
	for h >= 360 {
		h -= 360
	}
	col := colorful.Hsl(h, clamp(sat/100), clamp(light/100)).Clamped()
	c := domain.Color{R: col.R, G: col.G, B: col.B}
	return withAlpha(c, m[4])
}

func withAlpha(c domain.Color, raw string) domain.Color {
	if raw == "" {
		return c
	}
	a, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return domain.Color{}
	}
	c.A = clamp(a)
	c.HasAlpha = true
	return c
}

func isHex(s string) bool {
	if len(s) != 3 && len(s) != 6 {
		return false
	}
	for _, r := range s {
		if (r < '0' || r > '9') && (r < 'a' || r > 'f') {
			return false
		}
	}
	return true
}

func clamp(f float64) float64 {
	switch {
	case f < 0:
		return 0
	case f > 1:
		return 1
	default:
		return f
	}
}
