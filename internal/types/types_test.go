package types

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/renato0307/shade/internal/color"
	"github.com/renato0307/shade/internal/palette"
)

func TestDefaultState(t *testing.T) {
	s := DefaultState()
	assert.Equal(t, palette.DefaultLight, s.Light)
	assert.Equal(t, palette.DefaultDark, s.Dark)
	assert.Equal(t, 0.5, s.Radius)
	assert.Equal(t, DefaultFonts, s.Fonts)
	assert.Equal(t, palette.HarmonyMonochromatic, s.Harmony)
	assert.False(t, s.DarkMode)
}

func TestState_Active(t *testing.T) {
	s := DefaultState()
	assert.Equal(t, s.Light, s.Active())

	s.DarkMode = true
	assert.Equal(t, s.Dark, s.Active())
}

func TestState_CloneDoesNotAlias(t *testing.T) {
	radius := 1.0
	s := DefaultState()
	s.Presets = []Preset{{Name: "mine", Light: map[string]string{"primary": "#ff0000"}, Radius: &radius}}

	c := s.Clone()
	c.Presets[0].Light["primary"] = "#00ff00"
	*c.Presets[0].Radius = 2
	c.Light[palette.Primary] = color.HSL{}

	assert.Equal(t, "#ff0000", s.Presets[0].Light["primary"])
	assert.Equal(t, 1.0, *s.Presets[0].Radius)
	assert.Equal(t, palette.DefaultLight, s.Light)
}

func TestState_JSON(t *testing.T) {
	s := DefaultState()
	s.DarkMode = true
	s.Menus.Export = true

	data, err := json.Marshal(s)
	require.NoError(t, err)

	var back State
	require.NoError(t, json.Unmarshal(data, &back))
	assert.Equal(t, s, back)
}

func TestPreset_PalettesEmpty(t *testing.T) {
	light, dark, err := Preset{Name: "empty"}.Palettes()
	require.NoError(t, err)
	assert.Equal(t, palette.DefaultLight, light)
	assert.Equal(t, palette.DefaultDark, dark)
}

func TestPreset_PalettesPartial(t *testing.T) {
	p := Preset{
		Name:  "red",
		Light: map[string]string{"primary": "#ff0000", "card-foreground": "#111111"},
	}
	light, dark, err := p.Palettes()
	require.NoError(t, err)

	assert.Equal(t, color.HSL{H: 0, S: 100, L: 50}, light[palette.Primary])
	assert.Equal(t, light[palette.Primary], light[palette.Chart1])
	assert.Equal(t, color.HSL{H: 0, S: 0, L: 7}, light[palette.CardForeground])
	assert.Equal(t, color.HSL{H: 0, S: 100, L: 50}, dark[palette.Primary])
}

func TestPreset_PalettesInvalid(t *testing.T) {
	_, _, err := Preset{Name: "bad", Light: map[string]string{"primary": "#zzz"}}.Palettes()
	var fe *color.FormatError
	require.ErrorAs(t, err, &fe)

	_, _, err = Preset{Name: "bad", Dark: map[string]string{"tertiary": "#fff"}}.Palettes()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "tertiary")
}

func TestPreset_Apply(t *testing.T) {
	radius := 0.75
	base := DefaultState()
	base.DarkMode = true
	base.Fonts = Fonts{Heading: "Lora", Body: "Lora"}

	next, err := Preset{Name: "round", Radius: &radius}.Apply(base)
	require.NoError(t, err)

	assert.Equal(t, "round", next.ThemeName)
	assert.Equal(t, 0.75, next.Radius)
	assert.Equal(t, DefaultFonts, next.Fonts)
	assert.True(t, next.DarkMode)
	assert.Equal(t, "default", base.ThemeName)
}

func TestPresetFromState_RoundTrip(t *testing.T) {
	s := DefaultState()
	s.Radius = 1
	p := PresetFromState("snapshot", s)

	assert.Len(t, p.Light, 6)
	assert.Len(t, p.Dark, 6)
	assert.Equal(t, 1.0, *p.Radius)

	next, err := p.Apply(DefaultState())
	require.NoError(t, err)
	assert.Equal(t, "snapshot", next.ThemeName)
	assert.Equal(t, 1.0, next.Radius)
}

func TestSortedKeys(t *testing.T) {
	keys := SortedKeys(map[string]string{"accent": "", "background": "", "primary": "", "zzz": ""})
	assert.Equal(t, []string{"background", "primary", "accent", "zzz"}, keys)
}
