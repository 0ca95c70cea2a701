// Package palette derives complete light and dark color palettes from a few
// seed colors. Everything here is pure: functions take palettes by value and
// return new ones, so callers never observe a half-updated palette.
package palette

import (
	"encoding/json"
	"fmt"

	"github.com/renato0307/shade/internal/color"
)

// Palette maps every Role to a color. Being an array, a Palette is always
// complete and copies never alias.
type Palette [RoleCount]color.HSL

// Seeds are the colors a palette can be rebuilt from.
type Seeds struct {
	Background  color.HSL
	Foreground  color.HSL
	Primary     color.HSL
	Secondary   color.HSL
	Accent      color.HSL
	Destructive color.HSL
}

// Seeds extracts the seed colors of p.
func (p Palette) Seeds() Seeds {
	return Seeds{
		Background:  p[Background],
		Foreground:  p[Foreground],
		Primary:     p[Primary],
		Secondary:   p[Secondary],
		Accent:      p[Accent],
		Destructive: p[Destructive],
	}
}

// Charts returns chart1..chart5.
func (p Palette) Charts() [5]color.HSL {
	var out [5]color.HSL
	for i, r := range ChartRoles {
		out[i] = p[r]
	}
	return out
}

func (p *Palette) setCharts(series [5]color.HSL) {
	for i, r := range ChartRoles {
		p[r] = series[i]
	}
}

func (p *Palette) setBackground(c color.HSL) {
	p[Background] = c
	p[Card] = c
	p[Popover] = c
}

func (p *Palette) setForeground(c color.HSL) {
	p[Foreground] = c
	p[CardForeground] = c
	p[PopoverForeground] = c
}

func (p *Palette) setPrimary(c color.HSL) {
	fg := Contrast(c)
	p[Primary] = c
	p[PrimaryForeground] = fg
	p[Ring] = c
	p[SidebarPrimary] = c
	p[SidebarPrimaryForeground] = fg
	p[SidebarRing] = c
}

// setSecondary also drives the muted pair: secondary has no sidebar role of
// its own and muted surfaces share its tint.
func (p *Palette) setSecondary(c color.HSL) {
	p[Secondary] = c
	p[SecondaryForeground] = Contrast(c)
	p[Muted] = c
	p[MutedForeground] = ContrastFor(c, RoleMuted)
}

func (p *Palette) setAccent(c color.HSL) {
	fg := Contrast(c)
	p[Accent] = c
	p[AccentForeground] = fg
	p[SidebarAccent] = c
	p[SidebarAccentForeground] = fg
}

// Expand derives a complete palette from seeds.
func Expand(s Seeds, dark bool) Palette {
	var p Palette

	p.setBackground(s.Background)
	p.setForeground(s.Foreground)
	p.setPrimary(s.Primary)
	p.setSecondary(s.Secondary)
	p.setAccent(s.Accent)
	p[Destructive] = s.Destructive

	border := borderFor(s.Background, s.Primary, dark)
	p[Border] = border
	p[Input] = border
	p[SidebarBorder] = border

	p[Sidebar] = s.Background
	p[SidebarForeground] = s.Foreground

	p.setCharts(ChartSeries(s.Primary, s.Secondary, s.Accent, dark))
	return p
}

// borderFor tints the border with the primary hue, a step away from the
// background towards the foreground.
func borderFor(bg, primary color.HSL, dark bool) color.HSL {
	if dark {
		return color.New(primary.H, 20, bg.L+12)
	}
	return color.New(primary.H, 20, bg.L-10)
}

// MarshalJSON encodes the palette as {"roleKey": "H S% L%"}.
func (p Palette) MarshalJSON() ([]byte, error) {
	m := make(map[string]string, RoleCount)
	for r := Role(0); r < RoleCount; r++ {
		m[r.Key()] = p[r].String()
	}
	return json.Marshal(m)
}

// UnmarshalJSON requires every role to be present.
func (p *Palette) UnmarshalJSON(data []byte) error {
	var m map[string]string
	if err := json.Unmarshal(data, &m); err != nil {
		return err
	}

	var out Palette
	for r := Role(0); r < RoleCount; r++ {
		v, ok := m[r.Key()]
		if !ok {
			return fmt.Errorf("palette is missing role %q", r.Key())
		}
		c, err := color.ParseHSL(v)
		if err != nil {
			return fmt.Errorf("role %q: %w", r.Key(), err)
		}
		out[r] = c
	}
	*p = out
	return nil
}
