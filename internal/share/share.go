// Package share encodes a theme into a short URL-safe token and back.
//
// Only the six seed colors travel: the light group when they differ from the
// default theme, the dark group when dark mode is active. Decoding rebuilds
// every other role through the propagation rules.
package share

import (
	"encoding/base64"
	"encoding/json"
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/renato0307/shade/internal/color"
	"github.com/renato0307/shade/internal/palette"
	"github.com/renato0307/shade/internal/types"
)

// ErrEmptyToken is returned when decoding an empty token.
var ErrEmptyToken = errors.New("empty share token")

type group struct {
	Background  string `json:"bg,omitempty"`
	Foreground  string `json:"fg,omitempty"`
	Primary     string `json:"p,omitempty"`
	Secondary   string `json:"s,omitempty"`
	Accent      string `json:"a,omitempty"`
	Destructive string `json:"d,omitempty"`
}

type payload struct {
	Light    *group   `json:"l,omitempty"`
	Dark     *group   `json:"d,omitempty"`
	Fonts    []string `json:"f,omitempty"`
	Radius   *float64 `json:"r,omitempty"`
	DarkMode bool     `json:"dm,omitempty"`
}

type field struct {
	role  palette.Role
	value *string
}

func (g *group) fields() []field {
	return []field{
		{palette.Background, &g.Background},
		{palette.Foreground, &g.Foreground},
		{palette.Primary, &g.Primary},
		{palette.Secondary, &g.Secondary},
		{palette.Accent, &g.Accent},
		{palette.Destructive, &g.Destructive},
	}
}

// Encode packs s into a token.
func Encode(s types.State) (string, error) {
	var p payload

	light := encodeGroup(s.Light, &palette.DefaultLight)
	if light != (group{}) {
		p.Light = &light
	}
	if s.DarkMode {
		dark := encodeGroup(s.Dark, nil)
		p.Dark = &dark
		p.DarkMode = true
	}
	if s.Fonts != types.DefaultFonts {
		p.Fonts = []string{s.Fonts.Heading, s.Fonts.Body}
	}
	if s.Radius != types.DefaultRadius {
		r := s.Radius
		p.Radius = &r
	}

	data, err := json.Marshal(p)
	if err != nil {
		return "", fmt.Errorf("marshal share payload: %w", err)
	}
	return base64.RawURLEncoding.EncodeToString(data), nil
}

// Decode rebuilds a complete state from a token.
func Decode(token string) (types.State, error) {
	token = strings.TrimRight(strings.TrimSpace(token), "=")
	if token == "" {
		return types.State{}, ErrEmptyToken
	}

	data, err := base64.RawURLEncoding.DecodeString(token)
	if err != nil {
		return types.State{}, fmt.Errorf("decode share token: %w", err)
	}

	var p payload
	if err := json.Unmarshal(data, &p); err != nil {
		return types.State{}, fmt.Errorf("parse share token: %w", err)
	}

	light, err := decodeGroup(p.Light)
	if err != nil {
		return types.State{}, fmt.Errorf("light colors: %w", err)
	}
	dark, err := decodeGroup(p.Dark)
	if err != nil {
		return types.State{}, fmt.Errorf("dark colors: %w", err)
	}

	s := types.DefaultState()
	s.Light, s.Dark = palette.Assemble(light, dark)
	s.DarkMode = p.DarkMode
	if len(light) > 0 || len(dark) > 0 {
		s.ThemeName = types.CustomThemeName
	}

	switch len(p.Fonts) {
	case 0:
	case 2:
		s.Fonts = types.Fonts{Heading: p.Fonts[0], Body: p.Fonts[1]}
	default:
		return types.State{}, fmt.Errorf("font pair has %d entries", len(p.Fonts))
	}

	if p.Radius != nil {
		if *p.Radius < 0 {
			return types.State{}, fmt.Errorf("negative radius %v", *p.Radius)
		}
		s.Radius = *p.Radius
	}
	return s, nil
}

// encodeGroup writes the seed colors of p. When base is set, colors equal to
// base are left out.
func encodeGroup(p palette.Palette, base *palette.Palette) group {
	var g group
	for _, f := range g.fields() {
		if base != nil && p[f.role] == base[f.role] {
			continue
		}
		*f.value = triple(p[f.role])
	}
	return g
}

func decodeGroup(g *group) (map[palette.Role]color.HSL, error) {
	out := map[palette.Role]color.HSL{}
	if g == nil {
		return out, nil
	}
	for _, f := range g.fields() {
		if *f.value == "" {
			continue
		}
		c, err := color.ParseHSL(*f.value)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", f.role, err)
		}
		out[f.role] = c
	}
	return out, nil
}

func triple(c color.HSL) string {
	return strconv.Itoa(c.H) + "," + strconv.Itoa(c.S) + "," + strconv.Itoa(c.L)
}
