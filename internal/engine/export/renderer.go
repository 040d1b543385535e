package export

import (
	"context"
	"regexp"
	"strings"

	"go.trai.ch/varcss/internal/core/domain"
	"go.trai.ch/varcss/internal/core/ports"
	"go.trai.ch/varcss/internal/engine/cssparse"
	"go.trai.ch/zerr"
)

var whitespaceRun = regexp.MustCompile(`\s+`)

// Slug turns a variable or mode name into a CSS identifier: whitespace runs
// become a single hyphen and the result is lower-cased.
func Slug(name string) string {
	return strings.ToLower(whitespaceRun.ReplaceAllString(name, "-"))
}

// Renderer emits the :root block of a root collection and one
// [data-theme] block per mode of an optional theme collection.
type Renderer struct {
	host      ports.Host
	formatter *Formatter
}

// NewRenderer creates a Renderer.
func NewRenderer(host ports.Host, formatter *Formatter) *Renderer {
	return &Renderer{host: host, formatter: formatter}
}

// Render produces the CSS text for req. Collections are re-read from the host
// on every call.
func (r *Renderer) Render(ctx context.Context, req domain.ExportRequest) (string, error) {
	collections, err := r.host.ListCollections(ctx)
	if err != nil {
		return "", zerr.Wrap(err, domain.ErrHostReadFailed.Error())
	}
	variables, err := r.host.ListVariables(ctx)
	if err != nil {
		return "", zerr.Wrap(err, domain.ErrHostReadFailed.Error())
	}

	root, ok := FindCollection(collections, req.RootCollectionID)
	if !ok {
		return "", zerr.With(domain.ErrCollectionNotFound, "collection", req.RootCollectionID)
	}

	var sb strings.Builder
	writeMarker(&sb, cssparse.CollectionMarker, root.Name)
	mode, _ := root.DefaultMode()
	if mode.ID != "" {
		writeMarker(&sb, cssparse.ModeMarker, mode.Name)
	}
	if err := r.writeBlock(ctx, &sb, ":root", variables, root.ID, mode.ID, req.UseOverrideSyntax); err != nil {
		return "", err
	}

	if req.ThemeCollectionID == "" {
		return sb.String(), nil
	}

	theme, ok := FindCollection(collections, req.ThemeCollectionID)
	if !ok {
		return "", zerr.With(domain.ErrCollectionNotFound, "collection", req.ThemeCollectionID)
	}
	if len(theme.Modes) == 0 {
		return sb.String(), nil
	}

	sb.WriteString("\n")
	writeMarker(&sb, cssparse.CollectionMarker, theme.Name)
	for _, m := range theme.Modes {
		writeMarker(&sb, cssparse.ModeMarker, m.Name)
		selector := `[data-theme="` + Slug(m.Name) + `"]`
		if err := r.writeBlock(ctx, &sb, selector, variables, theme.ID, m.ID, req.UseOverrideSyntax); err != nil {
			return "", err
		}
	}

	return sb.String(), nil
}

func (r *Renderer) writeBlock(
	ctx context.Context,
	sb *strings.Builder,
	selector string,
	variables []domain.Variable,
	collectionID, modeID string,
	useOverride bool,
) error {
	sb.WriteString(selector + " {\n")
	for _, v := range variables {
		if v.CollectionID != collectionID {
			continue
		}
		value, err := r.resolve(ctx, v, modeID, useOverride)
		if err != nil {
			return zerr.With(err, "variable", v.Name)
		}
		sb.WriteString("  --" + Slug(v.Name) + ": " + value + ";\n")
	}
	sb.WriteString("}\n")
	return nil
}

func (r *Renderer) resolve(ctx context.Context, v domain.Variable, modeID string, useOverride bool) (string, error) {
	value := v.CodeSyntax
	if !useOverride || value == "" {
		var err error
		value, err = r.formatter.DisplayValue(ctx, v, modeID)
		if err != nil {
			return "", err
		}
	}
	if strings.HasPrefix(value, AliasPrefix) {
		value = "var(--" + Slug(aliasTarget(value)) + ")"
	}
	return value, nil
}

func writeMarker(sb *strings.Builder, marker, name string) {
	sb.WriteString("/* " + marker + " " + name + " */\n")
}

// FindCollection looks a collection up by id, then by name.
func FindCollection(collections []domain.Collection, key string) (domain.Collection, bool) {
	for _, c := range collections {
		if c.ID == key {
			return c, true
		}
	}
	for _, c := range collections {
		if c.Name == key {
			return c, true
		}
	}
	return domain.Collection{}, false
}
