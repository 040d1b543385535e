package document

import (
	"go.trai.ch/varcss/internal/core/domain"
	"go.trai.ch/zerr"
)

// aliasType tags an alias in valuesByMode.
const aliasType = "VARIABLE_ALIAS"

type documentFile struct {
	Collections []collectionRecord `json:"collections"`
	Variables   []variableRecord   `json:"variables"`
}

type collectionRecord struct {
	ID    string       `json:"id"`
	Name  string       `json:"name"`
	Modes []modeRecord `json:"modes"`
}

type modeRecord struct {
	ModeID string `json:"modeId"`
	Name   string `json:"name"`
}

type variableRecord struct {
	ID           string                 `json:"id"`
	Name         string                 `json:"name"`
	CollectionID string                 `json:"variableCollectionId"`
	ResolvedType string                 `json:"resolvedType"`
	ValuesByMode map[string]valueRecord `json:"valuesByMode"`
	CodeSyntax   string                 `json:"codeSyntax,omitempty"`
}

type valueRecord struct {
	Type   string       `json:"type"`
	Color  *colorRecord `json:"color,omitempty"`
	Number float64      `json:"number,omitempty"`
	Bool   bool         `json:"bool,omitempty"`
	Text   string       `json:"text,omitempty"`
	ID     string       `json:"id,omitempty"`
}

type colorRecord struct {
	R float64  `json:"r"`
	G float64  `json:"g"`
	B float64  `json:"b"`
	A *float64 `json:"a,omitempty"`
}

func toFile(doc *domain.Document) documentFile {
	f := documentFile{
		Collections: make([]collectionRecord, 0, len(doc.Collections)),
		Variables:   make([]variableRecord, 0, len(doc.Variables)),
	}
	for _, c := range doc.Collections {
		rec := collectionRecord{ID: c.ID, Name: c.Name, Modes: make([]modeRecord, 0, len(c.Modes))}
		for _, m := range c.Modes {
			rec.Modes = append(rec.Modes, modeRecord{ModeID: m.ID, Name: m.Name})
		}
		f.Collections = append(f.Collections, rec)
	}
	for _, v := range doc.Variables {
		rec := variableRecord{
			ID:           v.ID,
			Name:         v.Name,
			CollectionID: v.CollectionID,
			ResolvedType: v.Type.String(),
			ValuesByMode: make(map[string]valueRecord, len(v.Values)),
			CodeSyntax:   v.CodeSyntax,
		}
		for modeID, val := range v.Values {
			if val == nil {
				continue
			}
			rec.ValuesByMode[modeID] = encodeValue(val)
		}
		f.Variables = append(f.Variables, rec)
	}
	return f
}

func fromFile(f documentFile) (*domain.Document, error) {
	doc := &domain.Document{
		Collections: make([]domain.Collection, 0, len(f.Collections)),
		Variables:   make([]domain.Variable, 0, len(f.Variables)),
	}
	for _, rec := range f.Collections {
		c := domain.Collection{ID: rec.ID, Name: rec.Name, Modes: make([]domain.Mode, 0, len(rec.Modes))}
		for _, m := range rec.Modes {
			c.Modes = append(c.Modes, domain.Mode{ID: m.ModeID, Name: m.Name})
		}
		doc.Collections = append(doc.Collections, c)
	}
	for _, rec := range f.Variables {
		v := domain.Variable{
			ID:           rec.ID,
			Name:         rec.Name,
			CollectionID: rec.CollectionID,
			Type:         domain.ParseVariableType(rec.ResolvedType),
			Values:       make(map[string]domain.Value, len(rec.ValuesByMode)),
			CodeSyntax:   rec.CodeSyntax,
		}
		for modeID, raw := range rec.ValuesByMode {
			val, err := decodeValue(raw)
			if err != nil {
				return nil, zerr.With(zerr.With(err, "variable", rec.Name), "mode_id", modeID)
			}
			v.Values[modeID] = val
		}
		doc.Variables = append(doc.Variables, v)
	}
	return doc, nil
}

func encodeValue(val domain.Value) valueRecord {
	switch v := val.(type) {
	case domain.ColorValue:
		c := &colorRecord{R: v.Color.R, G: v.Color.G, B: v.Color.B}
		if v.Color.HasAlpha {
			a := v.Color.A
			c.A = &a
		}
		return valueRecord{Type: domain.TypeColor.String(), Color: c}
	case domain.NumberValue:
		return valueRecord{Type: domain.TypeNumber.String(), Number: v.Number}
	case domain.BooleanValue:
		return valueRecord{Type: domain.TypeBoolean.String(), Bool: v.Bool}
	case domain.AliasValue:
		return valueRecord{Type: aliasType, ID: v.ID}
	default:
		return valueRecord{Type: domain.TypeString.String(), Text: val.String()}
	}
}

func decodeValue(rec valueRecord) (domain.Value, error) {
	switch rec.Type {
	case aliasType:
		return domain.AliasValue{ID: rec.ID}, nil
	case domain.TypeColor.String():
		if rec.Color == nil {
			return domain.ColorValue{}, nil
		}
		c := domain.Color{R: rec.Color.R, G: rec.Color.G, B: rec.Color.B}
		if rec.Color.A != nil {
			c.A = *rec.Color.A
			c.HasAlpha = true
		}
		return domain.ColorValue{Color: c}, nil
	case domain.TypeNumber.String():
		return domain.NumberValue{Number: rec.Number}, nil
	case domain.TypeBoolean.String():
		return domain.BooleanValue{Bool: rec.Bool}, nil
	case domain.TypeString.String():
		return domain.StringValue{Text: rec.Text}, nil
	default:
		return nil, zerr.With(domain.ErrDocumentParseFailed, "value_type", rec.Type)
	}
}
