// Package inference decides the resolved type of a CSS custom property.
//
// Decisions are a pure function of the full set of declared literals, so the
// order in which properties were declared never changes the outcome.
package inference

import (
	"regexp"
	"strings"

	"go.trai.ch/varcss/internal/core/domain"
)

var (
	referencePattern = regexp.MustCompile(`^var\(\s*--([^\s,)]+)\s*(?:,[^)]*)?\)`)
	numberPattern    = regexp.MustCompile(`^[-+]?(?:\d+(?:\.\d*)?|\.\d+)(?:px|rem|em|%|vw|vh|vmin|vmax)?$`)

	colorPrefixes = []string{"#", "rgb", "rgba", "hsl", "hsla"}

	colorKeywords  = []string{"color", "background", "bg-", "border", "fill", "stroke", "shadow"}
	numberKeywords = []string{
		"weight", "size", "scale", "spacing", "radius", "opacity", "width", "height", "padding", "margin",
	}
)

// ParseReference returns the property name referenced by text when it begins
// with var(--name).
func ParseReference(text string) (string, bool) {
	m := referencePattern.FindStringSubmatch(strings.TrimSpace(text))
	if m == nil {
		return "", false
	}
	return m[1], true
}

// Literals maps a property name to its last declared value.
type Literals map[string]string

// Infer decides the type of the property name declared with value. A
// reference is followed exactly one hop through literals; anything further
// falls back to the property's own name.
func Infer(name, value string, literals Literals) domain.VariableType {
	ref, ok := ParseReference(value)
	if !ok {
		return InferFromValue(value)
	}
	target, ok := literals[ref]
	if !ok {
		return InferFromName(name)
	}
	if _, nested := ParseReference(target); nested {
		return InferFromName(name)
	}
	return InferFromValue(target)
}

// InferFromValue classifies literal CSS text. References are not followed and
// classify as String; use Infer to resolve them.
func InferFromValue(text string) domain.VariableType {
	s := strings.ToLower(strings.TrimSpace(text))
	if _, ok := ParseReference(s); ok {
		return domain.TypeString
	}
	for _, p := range colorPrefixes {
		if strings.HasPrefix(s, p) {
			return domain.TypeColor
		}
	}
	if numberPattern.MatchString(s) {
		return domain.TypeNumber
	}
	return domain.TypeString
}

// InferFromName guesses a type from keywords in the property name. Color
// keywords are checked before number keywords.
func InferFromName(name string) domain.VariableType {
	s := strings.ToLower(name)
	for _, k := range colorKeywords {
		if strings.Contains(s, k) {
			return domain.TypeColor
		}
	}
	for _, k := range numberKeywords {
		if strings.Contains(s, k) {
			return domain.TypeNumber
		}
	}
	return domain.TypeString
}
