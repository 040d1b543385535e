package domain

import "strconv"

// Color is a normalized color. Channels are in [0,1]. A is only meaningful
// when HasAlpha is set.
type Color struct {
	R, G, B  float64
	A        float64
	HasAlpha bool
}

// Opaque reports whether the color renders without transparency.
func (c Color) Opaque() bool {
	return !c.HasAlpha || c.A == 1
}

// Value is the raw value of a variable for one mode: either a literal of the
// variable's resolved type or an alias to another variable.
//
// The set of implementations is closed: ColorValue, NumberValue, BooleanValue,
// StringValue and AliasValue.
type Value interface {
	// String returns the canonical textual form of the value.
	String() string
	isValue()
}

// ColorValue is a color literal.
type ColorValue struct{ Color Color }

// NumberValue is a numeric literal.
type NumberValue struct{ Number float64 }

// BooleanValue is a boolean literal.
type BooleanValue struct{ Bool bool }

// StringValue is a string literal.
type StringValue struct{ Text string }

// AliasValue references another variable by id.
type AliasValue struct{ ID string }

func (ColorValue) isValue()   {}
func (NumberValue) isValue()  {}
func (BooleanValue) isValue() {}
func (StringValue) isValue()  {}
func (AliasValue) isValue()   {}

func (v ColorValue) String() string {
	s := "rgb(" + formatChannel(v.Color.R) + ", " + formatChannel(v.Color.G) + ", " + formatChannel(v.Color.B)
	if v.Color.HasAlpha {
		s += ", " + formatChannel(v.Color.A)
	}
	return s + ")"
}

func (v NumberValue) String() string {
	return strconv.FormatFloat(v.Number, 'f', -1, 64)
}

func (v BooleanValue) String() string {
	return strconv.FormatBool(v.Bool)
}

func (v StringValue) String() string {
	return v.Text
}

func (v AliasValue) String() string {
	return "alias(" + v.ID + ")"
}

func formatChannel(f float64) string {
	return strconv.FormatFloat(f, 'f', -1, 64)
}

// TypeOf returns the resolved type a literal value belongs to. Aliases have no
// type of their own and report false.
func TypeOf(v Value) (VariableType, bool) {
	switch v.(type) {
	case ColorValue:
		return TypeColor, true
	case NumberValue:
		return TypeNumber, true
	case BooleanValue:
		return TypeBoolean, true
	case StringValue:
		return TypeString, true
	default:
		return TypeString, false
	}
}

// ZeroValue returns the default literal used when a reference cannot be
// resolved during import.
func ZeroValue(t VariableType, text string) Value {
	switch t {
	case TypeColor:
		return ColorValue{Color: Color{}}
	case TypeNumber:
		return NumberValue{}
	case TypeBoolean:
		return BooleanValue{}
	default:
		return StringValue{Text: text}
	}
}
