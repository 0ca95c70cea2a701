// Package types holds the theme state shared by the store, the codecs and the
// interactive editor.
package types

import (
	"cmp"
	"fmt"
	"maps"
	"slices"

	"github.com/renato0307/shade/internal/color"
	"github.com/renato0307/shade/internal/palette"
)

const (
	// DefaultRadius is the border radius in rem.
	DefaultRadius = 0.5
	// DefaultThemeName names the built-in theme.
	DefaultThemeName = "default"
	// CustomThemeName names any theme edited away from a preset.
	CustomThemeName = "custom"
)

// DefaultFonts is the heading/body pair of the built-in theme.
var DefaultFonts = Fonts{Heading: "Inter", Body: "Inter"}

// Fonts is the heading and body font family pair.
type Fonts struct {
	Heading string `json:"heading"`
	Body    string `json:"body"`
}

// Menus records which editor panels are open.
type Menus struct {
	Presets bool `json:"presets,omitempty"`
	Export  bool `json:"export,omitempty"`
	Fonts   bool `json:"fonts,omitempty"`
}

// State is a complete theme. Values are replaced wholesale on every change.
type State struct {
	Light     palette.Palette     `json:"light"`
	Dark      palette.Palette     `json:"dark"`
	DarkMode  bool                `json:"darkMode"`
	Radius    float64             `json:"radius"`
	Fonts     Fonts               `json:"fonts"`
	Harmony   palette.HarmonyMode `json:"harmony"`
	Menus     Menus               `json:"menus"`
	Presets   []Preset            `json:"presets,omitempty"`
	ThemeName string              `json:"themeName"`
}

// DefaultState returns the built-in theme.
func DefaultState() State {
	return State{
		Light:     palette.DefaultLight,
		Dark:      palette.DefaultDark,
		Radius:    DefaultRadius,
		Fonts:     DefaultFonts,
		Harmony:   palette.HarmonyMonochromatic,
		ThemeName: DefaultThemeName,
	}
}

// Active returns the palette currently shown.
func (s State) Active() palette.Palette {
	if s.DarkMode {
		return s.Dark
	}
	return s.Light
}

// Clone returns a copy sharing no mutable memory with s.
func (s State) Clone() State {
	out := s
	if s.Presets != nil {
		out.Presets = make([]Preset, len(s.Presets))
		for i, p := range s.Presets {
			out.Presets[i] = p.Clone()
		}
	}
	return out
}

// Preset is a named snapshot of hex colors, fonts and radius. Light and Dark
// map role keys to hex colors and may be partial.
type Preset struct {
	Name   string            `json:"name"`
	Light  map[string]string `json:"light,omitempty"`
	Dark   map[string]string `json:"dark,omitempty"`
	Fonts  *Fonts            `json:"fonts,omitempty"`
	Radius *float64          `json:"radius,omitempty"`
}

// Clone deep-copies the preset.
func (p Preset) Clone() Preset {
	out := p
	out.Light = maps.Clone(p.Light)
	out.Dark = maps.Clone(p.Dark)
	if p.Fonts != nil {
		f := *p.Fonts
		out.Fonts = &f
	}
	if p.Radius != nil {
		r := *p.Radius
		out.Radius = &r
	}
	return out
}

// Palettes expands the preset into a full light and dark pair.
func (p Preset) Palettes() (palette.Palette, palette.Palette, error) {
	light, err := parseColors(p.Light)
	if err != nil {
		return palette.Palette{}, palette.Palette{}, fmt.Errorf("preset %q light: %w", p.Name, err)
	}
	dark, err := parseColors(p.Dark)
	if err != nil {
		return palette.Palette{}, palette.Palette{}, fmt.Errorf("preset %q dark: %w", p.Name, err)
	}

	l, d := palette.Assemble(light, dark)
	return l, d, nil
}

// Apply returns base with the preset's palettes, fonts and radius.
func (p Preset) Apply(base State) (State, error) {
	light, dark, err := p.Palettes()
	if err != nil {
		return base, err
	}

	next := base.Clone()
	next.Light = light
	next.Dark = dark
	next.ThemeName = p.Name
	next.Fonts = DefaultFonts
	if p.Fonts != nil {
		next.Fonts = *p.Fonts
	}
	next.Radius = DefaultRadius
	if p.Radius != nil {
		next.Radius = *p.Radius
	}
	return next, nil
}

// PresetFromState captures the seed colors, fonts and radius of s.
func PresetFromState(name string, s State) Preset {
	fonts := s.Fonts
	radius := s.Radius
	return Preset{
		Name:   name,
		Light:  seedHex(s.Light),
		Dark:   seedHex(s.Dark),
		Fonts:  &fonts,
		Radius: &radius,
	}
}

// SortedKeys returns the role keys of a preset color map in palette order.
func SortedKeys(colors map[string]string) []string {
	keys := slices.Collect(maps.Keys(colors))
	slices.SortFunc(keys, func(a, b string) int {
		ra, errA := palette.ParseRole(a)
		rb, errB := palette.ParseRole(b)
		if errA != nil || errB != nil {
			return cmp.Compare(a, b)
		}
		return cmp.Compare(ra, rb)
	})
	return keys
}

func seedHex(p palette.Palette) map[string]string {
	s := p.Seeds()
	return map[string]string{
		palette.Background.Key():  s.Background.Hex(),
		palette.Foreground.Key():  s.Foreground.Hex(),
		palette.Primary.Key():     s.Primary.Hex(),
		palette.Secondary.Key():   s.Secondary.Hex(),
		palette.Accent.Key():      s.Accent.Hex(),
		palette.Destructive.Key(): s.Destructive.Hex(),
	}
}

func parseColors(hex map[string]string) (map[palette.Role]color.HSL, error) {
	out := make(map[palette.Role]color.HSL, len(hex))
	for key, value := range hex {
		r, err := palette.ParseRole(key)
		if err != nil {
			return nil, err
		}
		c, err := color.ParseHex(value)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", key, err)
		}
		out[r] = c
	}
	return out, nil
}
