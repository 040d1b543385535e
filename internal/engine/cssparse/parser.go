// Package cssparse reads CSS custom-property text organized by
// "/* Collection name: X */" and "/* Mode: Y */" comment markers.
//
// The recognizer is line oriented: each line is either a collection marker,
// a mode marker, a custom property declaration, or ignored. Selector blocks
// are not interpreted.
package cssparse

import (
	"bufio"
	"strings"

	parse "github.com/tdewolff/parse/v2"
	"github.com/tdewolff/parse/v2/css"
	"go.trai.ch/varcss/internal/core/domain"
)

const (
	// CollectionMarker prefixes the comment body that opens a collection.
	CollectionMarker = "Collection name:"
	// ModeMarker prefixes the comment body that opens a mode.
	ModeMarker = "Mode:"
)

type lineKind uint8

const (
	lineIgnored lineKind = iota
	lineCollection
	lineMode
	lineDeclaration
)

// Parse turns text into a Sheet. Malformed lines are skipped, never reported.
func Parse(text string) *domain.Sheet {
	b := &builder{sheet: &domain.Sheet{}, collection: -1}

	scanner := bufio.NewScanner(strings.NewReader(text))
	scanner.Buffer(make([]byte, 0, 64*1024), len(text)+1)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		kind, name, value := classify(line)
		switch kind {
		case lineCollection:
			b.openCollection(name)
		case lineMode:
			b.openMode(name)
		case lineDeclaration:
			b.declare(name, value)
		case lineIgnored:
		}
	}
	return b.sheet
}

// classify tokenizes a single trimmed line.
func classify(line string) (lineKind, string, string) {
	l := css.NewLexer(parse.NewInputString(line))

	tt, data := next(l)
	switch tt {
	case css.CommentToken:
		return classifyComment(string(data))
	case css.CustomPropertyNameToken:
		return classifyDeclaration(l, string(data))
	case css.IdentToken:
		if strings.HasPrefix(string(data), "--") {
			return classifyDeclaration(l, string(data))
		}
	}
	return lineIgnored, "", ""
}

func classifyComment(comment string) (lineKind, string, string) {
	body := strings.TrimSuffix(strings.TrimPrefix(comment, "/*"), "*/")
	body = strings.TrimSpace(body)
	if name, ok := strings.CutPrefix(body, CollectionMarker); ok {
		return lineCollection, strings.TrimSpace(name), ""
	}
	if name, ok := strings.CutPrefix(body, ModeMarker); ok {
		return lineMode, strings.TrimSpace(name), ""
	}
	return lineIgnored, "", ""
}

// classifyDeclaration reads ": value;" after a property name. The value ends
// at the first semicolon outside parentheses or at the end of the line.
func classifyDeclaration(l *css.Lexer, property string) (lineKind, string, string) {
	if tt, _ := next(l); tt != css.ColonToken {
		return lineIgnored, "", ""
	}

	var sb strings.Builder
	depth := 0
loop:
	for {
		tt, data := l.Next()
		switch tt {
		case css.ErrorToken:
			break loop
		case css.SemicolonToken:
			if depth == 0 {
				break loop
			}
		case css.FunctionToken, css.LeftParenthesisToken:
			depth++
		case css.RightParenthesisToken:
			if depth > 0 {
				depth--
			}
		}
		sb.Write(data)
	}

	value := strings.TrimSpace(sb.String())
	name := strings.TrimPrefix(property, "--")
	if name == "" || value == "" {
		return lineIgnored, "", ""
	}
	return lineDeclaration, name, value
}

// next skips whitespace tokens.
func next(l *css.Lexer) (css.TokenType, []byte) {
	for {
		tt, data := l.Next()
		if tt != css.WhitespaceToken {
			return tt, data
		}
	}
}

type builder struct {
	sheet      *domain.Sheet
	collection int
	mode       string
}

func (b *builder) openCollection(name string) {
	b.sheet.Collections = append(b.sheet.Collections, domain.SheetCollection{Name: name})
	b.collection = len(b.sheet.Collections) - 1
}

func (b *builder) openMode(name string) {
	if b.collection < 0 || name == "" {
		return
	}
	b.mode = name
	b.modeIndex()
}

func (b *builder) declare(name, value string) {
	if b.collection < 0 || b.mode == "" {
		return
	}
	c := &b.sheet.Collections[b.collection]
	i := b.modeIndex()
	c.Modes[i].Declarations = append(c.Modes[i].Declarations, domain.Declaration{Name: name, Value: value})
}

// modeIndex returns the index of the open mode in the open collection,
// adding it when the collection does not have it yet.
func (b *builder) modeIndex() int {
	c := &b.sheet.Collections[b.collection]
	for i, m := range c.Modes {
		if m.Name == b.mode {
			return i
		}
	}
	c.Modes = append(c.Modes, domain.SheetMode{Name: b.mode})
	return len(c.Modes) - 1
}
