package theme

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/renato0307/shade/internal/palette"
	"github.com/renato0307/shade/internal/types"
)

func TestBuiltinPresets_Valid(t *testing.T) {
	presets := BuiltinPresets()
	require.Len(t, presets, 9)
	assert.Equal(t, types.DefaultThemeName, presets[0].Name)

	for _, p := range presets {
		t.Run(p.Name, func(t *testing.T) {
			light, dark, err := p.Palettes()
			require.NoError(t, err)
			assert.Equal(t, light[palette.Primary], light[palette.Chart1])
			assert.Equal(t, dark[palette.Primary], dark[palette.Chart1])
		})
	}
}

func TestBuiltinPresets_DefaultMatchesDefaultTheme(t *testing.T) {
	light, dark, err := BuiltinPresets()[0].Palettes()
	require.NoError(t, err)
	assert.Equal(t, palette.DefaultLight, light)
	assert.Equal(t, palette.DefaultDark, dark)
}

func TestIsBuiltin(t *testing.T) {
	assert.True(t, IsBuiltin("default"))
	assert.True(t, IsBuiltin("Tokyo-Night"))
	assert.False(t, IsBuiltin("ocean"))
}

func TestFindPresets(t *testing.T) {
	presets := BuiltinPresets()

	assert.Equal(t, presets, FindPresets(presets, ""))

	found := FindPresets(presets, "tok")
	require.NotEmpty(t, found)
	assert.Equal(t, "tokyo-night", found[0].Name)

	assert.Empty(t, FindPresets(presets, "zzz"))

	negated := FindPresets(presets, "!drac")
	assert.Len(t, negated, len(presets)-1)
	for _, p := range negated {
		assert.NotEqual(t, "dracula", p.Name)
	}
}

func TestLoadPresetFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "presets.yaml")
	content := `presets:
  - name: ocean
    light:
      primary: "#0077b6"
      accent: "#90e0ef"
    dark:
      primary: "#48cae4"
    fonts:
      heading: Lora
      body: Inter
    radius: 0.75
  - name: plain
`
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

	presets, err := LoadPresetFile(path)
	require.NoError(t, err)
	require.Len(t, presets, 2)

	ocean := presets[0]
	assert.Equal(t, "ocean", ocean.Name)
	assert.Equal(t, "#0077b6", ocean.Light["primary"])
	assert.Equal(t, &types.Fonts{Heading: "Lora", Body: "Inter"}, ocean.Fonts)
	require.NotNil(t, ocean.Radius)
	assert.Equal(t, 0.75, *ocean.Radius)

	assert.Nil(t, presets[1].Radius)
}

func TestLoadPresetFile_Missing(t *testing.T) {
	presets, err := LoadPresetFile(filepath.Join(t.TempDir(), "missing.yaml"))
	require.NoError(t, err)
	assert.Empty(t, presets)
}

func TestLoadPresetFile_Invalid(t *testing.T) {
	tests := []struct {
		name    string
		content string
	}{
		{"bad yaml", "presets: [\n"},
		{"unknown field", "presets:\n  - name: x\n    colour: red\n"},
		{"no name", "presets:\n  - light:\n      primary: \"#fff\"\n"},
		{"bad color", "presets:\n  - name: x\n    light:\n      primary: red\n"},
		{"bad role", "presets:\n  - name: x\n    light:\n      shadow: \"#000\"\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), "presets.yaml")
			require.NoError(t, os.WriteFile(path, []byte(tt.content), 0o644))
			_, err := LoadPresetFile(path)
			assert.Error(t, err)
		})
	}
}

func TestSavePresetFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "presets.yaml")
	radius := 1.0
	want := []types.Preset{{
		Name:   "saved",
		Light:  map[string]string{"primary": "#ff0000"},
		Radius: &radius,
	}}

	require.NoError(t, SavePresetFile(path, want))
	got, err := LoadPresetFile(path)
	require.NoError(t, err)
	assert.Equal(t, want, got)
}
