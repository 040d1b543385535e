package domain_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/varcss/internal/core/domain"
)

func TestVariableType_RoundTrip(t *testing.T) {
	tests := []struct {
		name string
		typ  domain.VariableType
		host string
	}{
		{"color", domain.TypeColor, "COLOR"},
		{"number", domain.TypeNumber, "FLOAT"},
		{"boolean", domain.TypeBoolean, "BOOLEAN"},
		{"string", domain.TypeString, "STRING"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.host, tt.typ.String())
			assert.Equal(t, tt.typ, domain.ParseVariableType(tt.host))
		})
	}

	assert.Equal(t, domain.TypeNumber, domain.ParseVariableType(" number "))
	assert.Equal(t, domain.TypeString, domain.ParseVariableType("unknown"))
}

func TestCollection_Modes(t *testing.T) {
	c := domain.Collection{
		ID:   "c1",
		Name: "Theme",
		Modes: []domain.Mode{
			{ID: "m1", Name: "Light"},
			{ID: "m2", Name: "Dark"},
		},
	}

	def, ok := c.DefaultMode()
	require.True(t, ok)
	assert.Equal(t, "m1", def.ID)

	dark, ok := c.ModeByName("Dark")
	require.True(t, ok)
	assert.Equal(t, "m2", dark.ID)

	_, ok = c.ModeByName("Dim")
	assert.False(t, ok)

	_, ok = domain.Collection{}.DefaultMode()
	assert.False(t, ok)
}

func TestVariable_ValueFor(t *testing.T) {
	v := domain.Variable{
		Values: map[string]domain.Value{
			"m1": domain.NumberValue{Number: 4},
			"m2": nil,
		},
	}

	got, ok := v.ValueFor("m1")
	require.True(t, ok)
	assert.Equal(t, domain.NumberValue{Number: 4}, got)

	_, ok = v.ValueFor("m2")
	assert.False(t, ok, "nil values count as missing")

	_, ok = v.ValueFor("m3")
	assert.False(t, ok)
}

func TestValue_String(t *testing.T) {
	tests := []struct {
		name  string
		value domain.Value
		want  string
	}{
		{"integer number", domain.NumberValue{Number: 16}, "16"},
		{"fractional number", domain.NumberValue{Number: 1.5}, "1.5"},
		{"negative number", domain.NumberValue{Number: -0.25}, "-0.25"},
		{"true", domain.BooleanValue{Bool: true}, "true"},
		{"false", domain.BooleanValue{}, "false"},
		{"string", domain.StringValue{Text: "Inter, sans-serif"}, "Inter, sans-serif"},
		{"alias", domain.AliasValue{ID: "VariableID:1"}, "alias(VariableID:1)"},
		{"opaque color", domain.ColorValue{Color: domain.Color{R: 1, G: 0.5, B: 0}}, "rgb(1, 0.5, 0)"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.value.String())
		})
	}
}

func TestTypeOf(t *testing.T) {
	typ, ok := domain.TypeOf(domain.ColorValue{})
	assert.True(t, ok)
	assert.Equal(t, domain.TypeColor, typ)

	typ, ok = domain.TypeOf(domain.BooleanValue{})
	assert.True(t, ok)
	assert.Equal(t, domain.TypeBoolean, typ)

	_, ok = domain.TypeOf(domain.AliasValue{ID: "x"})
	assert.False(t, ok)
}

func TestZeroValue(t *testing.T) {
	assert.Equal(t, domain.ColorValue{}, domain.ZeroValue(domain.TypeColor, "var(--x)"))
	assert.Equal(t, domain.NumberValue{}, domain.ZeroValue(domain.TypeNumber, "var(--x)"))
	assert.Equal(t, domain.BooleanValue{}, domain.ZeroValue(domain.TypeBoolean, "var(--x)"))
	assert.Equal(t, domain.StringValue{Text: "var(--x)"}, domain.ZeroValue(domain.TypeString, "var(--x)"))
}

func TestColor_Opaque(t *testing.T) {
	assert.True(t, domain.Color{R: 1}.Opaque())
	assert.True(t, domain.Color{A: 1, HasAlpha: true}.Opaque())
	assert.False(t, domain.Color{A: 0.5, HasAlpha: true}.Opaque())
}

func TestSheet_DeclarationCount(t *testing.T) {
	s := &domain.Sheet{Collections: []domain.SheetCollection{
		{Name: "A", Modes: []domain.SheetMode{
			{Name: "one", Declarations: []domain.Declaration{{Name: "a", Value: "1"}, {Name: "b", Value: "2"}}},
			{Name: "two", Declarations: []domain.Declaration{{Name: "a", Value: "3"}}},
		}},
		{Name: "B"},
	}}
	assert.Equal(t, 3, s.DeclarationCount())
}
