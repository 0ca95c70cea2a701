package ui

import (
	"strings"
	"testing"

	"github.com/charmbracelet/lipgloss"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/renato0307/shade/internal/messages"
	"github.com/renato0307/shade/internal/palette"
	"github.com/renato0307/shade/internal/types"
)

func TestFromState(t *testing.T) {
	s := types.DefaultState()
	theme := FromState(s)

	assert.Equal(t, "default", theme.Name)
	assert.Equal(t, lipgloss.AdaptiveColor{
		Light: s.Light[palette.Primary].Hex(),
		Dark:  s.Dark[palette.Primary].Hex(),
	}, theme.Primary)
	assert.Equal(t, "#ffffff", theme.Background.Light)
	assert.Equal(t, theme.Destructive, theme.MessageError)
}

func TestRenderPalette(t *testing.T) {
	out := RenderPalette(palette.DefaultLight, []palette.Role{palette.Background, palette.Primary})

	lines := strings.Split(out, "\n")
	require.Len(t, lines, 2)
	assert.Contains(t, lines[0], "background")
	assert.Contains(t, lines[0], "0 0% 100%")
	assert.Contains(t, lines[0], "#ffffff")
	assert.Contains(t, lines[1], "primary")
	assert.Contains(t, lines[1], "291 80% 45%")
}

func TestChartStrip(t *testing.T) {
	assert.NotEmpty(t, ChartStrip(palette.DefaultDark))
}

func TestRenderStatus(t *testing.T) {
	theme := FromState(types.DefaultState())

	assert.Empty(t, RenderStatus(messages.StatusMsg{}, theme, 80))
	assert.Contains(t, RenderStatus(messages.SuccessMsg("Applied preset nord"), theme, 80), "Applied preset nord")

	long := strings.Repeat("x", 100)
	out := RenderStatus(messages.ErrorStatusMsg(long), theme, 40)
	assert.Contains(t, out, "…")
	assert.NotContains(t, out, long)
}
