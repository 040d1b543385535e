package domain

// Declaration is a single custom property as written in CSS, without the
// leading "--". Value is the raw text after the colon.
type Declaration struct {
	Name  string
	Value string
}

// SheetMode holds the declarations written under one mode marker.
type SheetMode struct {
	Name         string
	Declarations []Declaration
}

// SheetCollection holds the modes written under one collection marker.
type SheetCollection struct {
	Name  string
	Modes []SheetMode
}

// Sheet is the parsed form of an imported CSS text. It is built fresh for each
// import and discarded once materialized.
type Sheet struct {
	Collections []SheetCollection
}

// DeclarationCount returns the total number of declarations across all
// collections and modes.
func (s *Sheet) DeclarationCount() int {
	n := 0
	for _, c := range s.Collections {
		for _, m := range c.Modes {
			n += len(m.Declarations)
		}
	}
	return n
}
