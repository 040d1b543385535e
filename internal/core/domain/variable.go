package domain

import "strings"

// VariableType is the resolved type of a variable. It is fixed when the
// variable is created.
type VariableType uint8

const (
	// TypeString is the resolved type for free-form text.
	TypeString VariableType = iota
	// TypeColor is the resolved type for RGB(A) colors.
	TypeColor
	// TypeNumber is the resolved type for numeric values (the host calls it FLOAT).
	TypeNumber
	// TypeBoolean is the resolved type for true/false values.
	TypeBoolean
)

// String returns the host's name for the resolved type.
func (t VariableType) String() string {
	switch t {
	case TypeColor:
		return "COLOR"
	case TypeNumber:
		return "FLOAT"
	case TypeBoolean:
		return "BOOLEAN"
	default:
		return "STRING"
	}
}

// ParseVariableType converts a host type name into a VariableType.
// Unknown names map to TypeString.
func ParseVariableType(s string) VariableType {
	switch strings.ToUpper(strings.TrimSpace(s)) {
	case "COLOR":
		return TypeColor
	case "FLOAT", "NUMBER":
		return TypeNumber
	case "BOOLEAN":
		return TypeBoolean
	default:
		return TypeString
	}
}

// Mode is a named variant of a collection. Mode ids are scoped to the owning
// collection and are never shared.
type Mode struct {
	ID   string
	Name string
}

// Collection groups variables and owns an ordered list of modes.
type Collection struct {
	ID    string
	Name  string
	Modes []Mode
}

// DefaultMode returns the first mode of the collection, which is the one used
// for the :root block.
func (c Collection) DefaultMode() (Mode, bool) {
	if len(c.Modes) == 0 {
		return Mode{}, false
	}
	return c.Modes[0], true
}

// ModeByName returns the mode with the given name.
func (c Collection) ModeByName(name string) (Mode, bool) {
	for _, m := range c.Modes {
		if m.Name == name {
			return m, true
		}
	}
	return Mode{}, false
}

// Variable is a single design variable as the host reports it.
type Variable struct {
	ID           string
	Name         string
	CollectionID string
	Type         VariableType
	// Values maps a mode id to the raw value recorded for that mode.
	Values map[string]Value
	// CodeSyntax is the author-supplied override token used for export.
	CodeSyntax string
}

// ValueFor returns the raw value recorded for modeID.
func (v Variable) ValueFor(modeID string) (Value, bool) {
	val, ok := v.Values[modeID]
	return val, ok && val != nil
}
