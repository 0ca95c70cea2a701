// Package css turns palettes into CSS custom properties, either pushed one by
// one into a style target or rendered as a complete stylesheet.
package css

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/renato0307/shade/internal/color"
	"github.com/renato0307/shade/internal/palette"
	"github.com/renato0307/shade/internal/types"
)

// Format selects how colors are written.
type Format string

const (
	// FormatLegacy writes raw "H S% L%" triples.
	FormatLegacy Format = "legacy"
	// FormatModern writes oklch() values.
	FormatModern Format = "modern"
)

// ParseFormat resolves a format name; empty means legacy.
func ParseFormat(s string) (Format, error) {
	switch Format(s) {
	case "", FormatLegacy:
		return FormatLegacy, nil
	case FormatModern:
		return FormatModern, nil
	}
	return "", fmt.Errorf("unknown css format %q (want legacy or modern)", s)
}

// Property is one custom property assignment.
type Property struct {
	Name  string
	Value string
}

const (
	RadiusProperty      = "--radius"
	FontHeadingProperty = "--font-heading"
	FontBodyProperty    = "--font-body"
)

// Properties lists radius, fonts and every palette role in stylesheet order.
func Properties(p palette.Palette, radius float64, fonts types.Fonts, f Format) []Property {
	props := make([]Property, 0, int(palette.RoleCount)+3)
	props = append(props,
		Property{RadiusProperty, FormatRadius(radius)},
		Property{FontHeadingProperty, fontStack(fonts.Heading)},
		Property{FontBodyProperty, fontStack(fonts.Body)},
	)
	for _, r := range palette.Roles() {
		props = append(props, Property{r.CSSName(), colorValue(p[r], f)})
	}
	return props
}

// Generate renders a stylesheet with a :root block for the light palette and
// a .dark block for the dark one.
func Generate(s types.State, f Format) string {
	var b strings.Builder
	writeBlock(&b, ":root", Properties(s.Light, s.Radius, s.Fonts, f))
	b.WriteString("\n")
	writeBlock(&b, ".dark", Properties(s.Dark, s.Radius, s.Fonts, f))
	return b.String()
}

// FormatRadius renders a rem radius, e.g. "0.5rem".
func FormatRadius(radius float64) string {
	return strconv.FormatFloat(radius, 'f', -1, 64) + "rem"
}

func writeBlock(b *strings.Builder, selector string, props []Property) {
	b.WriteString(selector)
	b.WriteString(" {\n")
	for _, p := range props {
		fmt.Fprintf(b, "  %s: %s;\n", p.Name, p.Value)
	}
	b.WriteString("}\n")
}

func colorValue(c color.HSL, f Format) string {
	if f == FormatModern {
		return c.OKLCH()
	}
	return c.String()
}

func fontStack(family string) string {
	if family == "" {
		return "sans-serif"
	}
	return strconv.Quote(family) + ", sans-serif"
}
