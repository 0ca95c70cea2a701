package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/renato0307/shade/internal/color"
	"github.com/renato0307/shade/internal/palette"
	"github.com/renato0307/shade/internal/types"
)

// Theme defines the color scheme and styles for the editor. Its colors come
// from the theme being edited, so the editor previews its own output.
type Theme struct {
	Name string

	// Core colors
	Primary     lipgloss.AdaptiveColor
	Secondary   lipgloss.AdaptiveColor
	Accent      lipgloss.AdaptiveColor
	Foreground  lipgloss.AdaptiveColor
	Muted       lipgloss.AdaptiveColor
	Destructive lipgloss.AdaptiveColor

	// UI element colors
	Border     lipgloss.AdaptiveColor // Separator lines, borders
	Background lipgloss.AdaptiveColor // Background for overlays

	// Message colors
	MessageSuccess lipgloss.AdaptiveColor
	MessageError   lipgloss.AdaptiveColor
	MessageInfo    lipgloss.AdaptiveColor

	// Component styles
	AppTitle    lipgloss.Style // App title with background
	Header      lipgloss.Style
	SelectedRow lipgloss.Style
	Row         lipgloss.Style
	StatusBar   lipgloss.Style
	Panel       lipgloss.Style
}

func adaptive(s types.State, r palette.Role) lipgloss.AdaptiveColor {
	return lipgloss.AdaptiveColor{Light: s.Light[r].Hex(), Dark: s.Dark[r].Hex()}
}

// FromState builds editor styles from a theme state.
func FromState(s types.State) *Theme {
	t := &Theme{Name: s.ThemeName}

	t.Primary = adaptive(s, palette.Primary)
	t.Secondary = adaptive(s, palette.Secondary)
	t.Accent = adaptive(s, palette.Accent)
	t.Foreground = adaptive(s, palette.Foreground)
	t.Muted = adaptive(s, palette.MutedForeground)
	t.Destructive = adaptive(s, palette.Destructive)
	t.Border = adaptive(s, palette.Border)
	t.Background = adaptive(s, palette.Background)

	t.MessageSuccess = adaptive(s, palette.Chart2)
	t.MessageError = t.Destructive
	t.MessageInfo = t.Primary

	t.AppTitle = lipgloss.NewStyle().
		Foreground(adaptive(s, palette.PrimaryForeground)).
		Background(t.Primary).
		Bold(true).
		Padding(0, 1)

	t.Header = lipgloss.NewStyle().
		Foreground(t.Primary).
		Bold(true)

	t.Row = lipgloss.NewStyle().
		PaddingLeft(1).
		PaddingRight(1)

	t.SelectedRow = t.Row.
		Foreground(adaptive(s, palette.AccentForeground)).
		Background(t.Accent)

	t.StatusBar = lipgloss.NewStyle().
		Foreground(t.Muted)

	t.Panel = lipgloss.NewStyle().
		BorderStyle(lipgloss.RoundedBorder()).
		BorderForeground(t.Border).
		Padding(0, 1)

	return t
}

// Swatch renders a block of width cells filled with c.
func Swatch(c color.HSL, width int) string {
	return lipgloss.NewStyle().
		Background(lipgloss.Color(c.Hex())).
		Render(strings.Repeat(" ", max(width, 1)))
}

// PaletteRow renders one role as "swatch name value".
func PaletteRow(p palette.Palette, r palette.Role, nameWidth int) string {
	c := p[r]
	return fmt.Sprintf("%s %-*s %-13s %s", Swatch(c, 4), nameWidth, r.Key(), c.String(), c.Hex())
}

// RenderPalette renders roles of p, one per line.
func RenderPalette(p palette.Palette, roles []palette.Role) string {
	width := 0
	for _, r := range roles {
		width = max(width, len(r.Key()))
	}

	lines := make([]string, len(roles))
	for i, r := range roles {
		lines[i] = PaletteRow(p, r, width)
	}
	return strings.Join(lines, "\n")
}

// ChartStrip renders the chart series side by side.
func ChartStrip(p palette.Palette) string {
	blocks := make([]string, 0, len(palette.ChartRoles))
	for _, c := range p.Charts() {
		blocks = append(blocks, Swatch(c, 6))
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, blocks...)
}
