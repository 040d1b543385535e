package materialize

import (
	"regexp"
	"strconv"
	"strings"

	"go.trai.ch/varcss/internal/core/domain"
	"go.trai.ch/varcss/internal/engine/colorcodec"
	"go.trai.ch/varcss/internal/engine/inference"
)

var leadingNumber = regexp.MustCompile(`^[-+]?(?:\d+(?:\.\d*)?|\.\d+)`)

// ResolveValue turns declared text into a host value for a variable of type t.
//
// A reference to a variable in created becomes an alias whatever t is. A
// reference to anything else becomes the zero value of t. Literals are parsed
// leniently and never fail.
func ResolveValue(text string, t domain.VariableType, created map[string]domain.Variable) domain.Value {
	if ref, ok := inference.ParseReference(text); ok {
		if target, ok := created[ref]; ok {
			return domain.AliasValue{ID: target.ID}
		}
		return domain.ZeroValue(t, text)
	}

	switch t {
	case domain.TypeColor:
		return domain.ColorValue{Color: colorcodec.FromCSS(text)}
	case domain.TypeNumber:
		return domain.NumberValue{Number: parseNumber(text)}
	case domain.TypeBoolean:
		return domain.BooleanValue{Bool: strings.EqualFold(strings.TrimSpace(text), "true")}
	default:
		return domain.StringValue{Text: text}
	}
}

func parseNumber(text string) float64 {
	match := leadingNumber.FindString(strings.TrimSpace(text))
	if match == "" {
		return 0
	}
	n, err := strconv.ParseFloat(match, 64)
	if err != nil {
		return 0
	}
	return n
}
