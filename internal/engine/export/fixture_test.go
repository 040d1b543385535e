package export_test

import (
	"go.trai.ch/varcss/internal/adapters/document"
	"go.trai.ch/varcss/internal/core/domain"
)

func fixtureDocument() *domain.Document {
	blue := domain.Color{R: 0.2, G: 0.4, B: 1}
	return &domain.Document{
		Collections: []domain.Collection{
			{ID: "c-prim", Name: "Primitives", Modes: []domain.Mode{{ID: "p1", Name: "Value"}}},
			{ID: "c-theme", Name: "Theme", Modes: []domain.Mode{{ID: "t1", Name: "Light"}, {ID: "t2", Name: "Dark Mode"}}},
			{ID: "c-empty", Name: "Empty"},
		},
		Variables: []domain.Variable{
			{
				ID: "v1", Name: "Blue 500", CollectionID: "c-prim", Type: domain.TypeColor,
				Values: map[string]domain.Value{"p1": domain.ColorValue{Color: blue}},
			},
			{
				ID: "v2", Name: "space md", CollectionID: "c-prim", Type: domain.TypeNumber,
				Values: map[string]domain.Value{"p1": domain.NumberValue{Number: 16}},
			},
			{
				ID: "v3", Name: "font body", CollectionID: "c-prim", Type: domain.TypeString,
				Values:     map[string]domain.Value{"p1": domain.StringValue{Text: "Inter, sans-serif"}},
				CodeSyntax: "var(--font-stack)",
			},
			{
				ID: "v4", Name: "is compact", CollectionID: "c-prim", Type: domain.TypeBoolean,
				Values: map[string]domain.Value{},
			},
			{
				ID: "v5", Name: "brand", CollectionID: "c-prim", Type: domain.TypeColor,
				Values: map[string]domain.Value{"p1": domain.AliasValue{ID: "v1"}},
			},
			{
				ID: "v6", Name: "surface", CollectionID: "c-theme", Type: domain.TypeColor,
				Values: map[string]domain.Value{
					"t1": domain.AliasValue{ID: "v1"},
					"t2": domain.ColorValue{Color: domain.Color{A: 0.5, HasAlpha: true}},
				},
			},
			{
				ID: "v7", Name: "ghost", CollectionID: "c-theme", Type: domain.TypeColor,
				Values: map[string]domain.Value{"t1": domain.AliasValue{ID: "v404"}},
			},
		},
	}
}

func fixtureHost() *document.Host {
	return document.NewMemoryHost(fixtureDocument())
}
