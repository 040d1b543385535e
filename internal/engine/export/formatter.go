// Package export renders the host's variable graph as CSS custom properties.
package export

import (
	"context"
	"strings"

	"go.trai.ch/varcss/internal/core/domain"
	"go.trai.ch/varcss/internal/core/ports"
	"go.trai.ch/varcss/internal/engine/colorcodec"
	"go.trai.ch/zerr"
)

const (
	// NotAvailable is the display value of a variable without a value for the mode.
	NotAvailable = "N/A"
	// AliasPrefix starts the display value of every alias.
	AliasPrefix = "alias:"
	// UnknownAlias is the display value of an alias whose target no longer exists.
	UnknownAlias = AliasPrefix + "unknown"
)

// Formatter computes display values. It holds no state between calls.
type Formatter struct {
	host ports.Host
}

// NewFormatter creates a Formatter that resolves alias targets through host.
func NewFormatter(host ports.Host) *Formatter {
	return &Formatter{host: host}
}

// DisplayValue renders the value v holds for modeID.
//
// An alias renders as "alias:<target name>". When the target is a color with
// a value under the same mode id, its CSS is appended in parentheses. Mode ids
// are scoped to their collection, so a target in another collection renders
// without the color.
func (f *Formatter) DisplayValue(ctx context.Context, v domain.Variable, modeID string) (string, error) {
	raw, ok := v.ValueFor(modeID)
	if !ok {
		return NotAvailable, nil
	}

	alias, ok := raw.(domain.AliasValue)
	if !ok {
		return colorcodec.Format(raw), nil
	}

	target, err := f.host.GetVariableByID(ctx, alias.ID)
	if err != nil {
		err = zerr.Wrap(err, domain.ErrHostReadFailed.Error())
		return "", zerr.With(err, "variable_id", alias.ID)
	}
	if target == nil {
		return UnknownAlias, nil
	}

	display := AliasPrefix + target.Name
	if target.Type != domain.TypeColor {
		return display, nil
	}
	if css := aliasColor(target, modeID); css != "" {
		display += " (" + css + ")"
	}
	return display, nil
}

func aliasColor(target *domain.Variable, modeID string) string {
	raw, ok := target.ValueFor(modeID)
	if !ok {
		return ""
	}
	cv, ok := raw.(domain.ColorValue)
	if !ok {
		return ""
	}
	return colorcodec.ToCSS(cv.Color)
}

// aliasTarget extracts the target name from an alias display value, dropping
// the appended color if there is one.
func aliasTarget(display string) string {
	name := strings.TrimPrefix(display, AliasPrefix)
	if !strings.HasSuffix(name, ")") {
		return name
	}
	i := strings.LastIndex(name, " (")
	if i < 0 {
		return name
	}
	css := name[i+2 : len(name)-1]
	if strings.HasPrefix(css, "#") || strings.HasPrefix(css, "rgba(") {
		return name[:i]
	}
	return name
}
