package theme

import (
	"slices"
	"strings"

	"github.com/renato0307/shade/internal/types"
)

// scheme is one classic terminal color scheme, as light and dark seed colors.
type scheme struct {
	name string
	// background, foreground, primary, secondary, accent, destructive
	light [6]string
	dark  [6]string
}

var schemes = []scheme{
	{
		name:  "charm",
		light: [6]string{"#e4e4e4", "#262626", "#5A56E0", "#02BA84", "#F780E2", "#FF4672"},
		dark:  [6]string{"#262626", "#d0d0d0", "#7571F9", "#02BF87", "#F780E2", "#ED567A"},
	},
	{
		name:  "dracula",
		light: [6]string{"#f8f8f2", "#282a36", "#bd93f9", "#8be9fd", "#ff79c6", "#ff5555"},
		dark:  [6]string{"#282a36", "#f8f8f2", "#bd93f9", "#8be9fd", "#ff79c6", "#ff5555"},
	},
	{
		name:  "catppuccin",
		light: [6]string{"#eff1f5", "#4c4f69", "#8839ef", "#179299", "#ea76cb", "#d20f39"},
		dark:  [6]string{"#1e1e2e", "#cdd6f4", "#cba6f7", "#89dceb", "#f5c2e7", "#f38ba8"},
	},
	{
		name:  "nord",
		light: [6]string{"#eceff4", "#2e3440", "#5e81ac", "#81a1c1", "#b48ead", "#bf616a"},
		dark:  [6]string{"#2e3440", "#eceff4", "#88c0d0", "#81a1c1", "#b48ead", "#bf616a"},
	},
	{
		name:  "gruvbox",
		light: [6]string{"#fbf1c7", "#3c3836", "#af3a03", "#79740e", "#b16286", "#9d0006"},
		dark:  [6]string{"#282828", "#ebdbb2", "#fe8019", "#b8bb26", "#d3869b", "#fb4934"},
	},
	{
		name:  "tokyo-night",
		light: [6]string{"#d5d6db", "#1a1b26", "#7aa2f7", "#2ac3de", "#bb9af7", "#f7768e"},
		dark:  [6]string{"#1a1b26", "#c0caf5", "#7aa2f7", "#2ac3de", "#bb9af7", "#f7768e"},
	},
	{
		name:  "solarized",
		light: [6]string{"#fdf6e3", "#002b36", "#268bd2", "#2aa198", "#6c71c4", "#dc322f"},
		dark:  [6]string{"#002b36", "#839496", "#268bd2", "#2aa198", "#6c71c4", "#dc322f"},
	},
	{
		name:  "monokai",
		light: [6]string{"#f8f8f2", "#272822", "#66d9ef", "#a6e22e", "#ae81ff", "#f92672"},
		dark:  [6]string{"#272822", "#f8f8f2", "#66d9ef", "#a6e22e", "#ae81ff", "#f92672"},
	},
}

var seedKeys = [6]string{"background", "foreground", "primary", "secondary", "accent", "destructive"}

func (s scheme) preset() types.Preset {
	p := types.Preset{
		Name:  s.name,
		Light: make(map[string]string, len(seedKeys)),
		Dark:  make(map[string]string, len(seedKeys)),
	}
	for i, key := range seedKeys {
		p.Light[key] = s.light[i]
		p.Dark[key] = s.dark[i]
	}
	return p
}

// BuiltinPresets returns the default theme followed by the classic schemes.
func BuiltinPresets() []types.Preset {
	out := make([]types.Preset, 0, len(schemes)+1)
	out = append(out, types.Preset{Name: types.DefaultThemeName})
	for _, s := range schemes {
		out = append(out, s.preset())
	}
	return out
}

// IsBuiltin reports whether name is a built-in preset.
func IsBuiltin(name string) bool {
	return slices.ContainsFunc(BuiltinPresets(), func(p types.Preset) bool {
		return strings.EqualFold(p.Name, name)
	})
}

func findPreset(presets []types.Preset, name string) (types.Preset, bool) {
	i := slices.IndexFunc(presets, func(p types.Preset) bool {
		return strings.EqualFold(p.Name, name)
	})
	if i < 0 {
		return types.Preset{}, false
	}
	return presets[i], true
}
