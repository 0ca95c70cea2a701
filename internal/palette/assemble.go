package palette

import "github.com/renato0307/shade/internal/color"

// Assemble rebuilds a light and dark pair from partial color assignments,
// starting from the default theme. Light colors that differ from the default
// are replayed through Propagate so the dark palette stays linked to them;
// when dark colors are given, the dark palette is expanded from those
// instead. Non-seed roles given explicitly override whatever was derived.
func Assemble(light, dark map[Role]color.HSL) (Palette, Palette) {
	d := DefaultDark
	for _, r := range Roles() {
		if c, ok := light[r]; ok && c != DefaultLight[r] {
			// Only the dark side of the replay is kept. The light palette is
			// expanded from all light colors at once below.
			_, d = Propagate(r, c, DefaultLight, d, false)
		}
	}

	l := expandOverlay(DefaultLight, light, false)
	if len(dark) > 0 {
		d = expandOverlay(DefaultDark, dark, true)
	}
	return l, d
}

func expandOverlay(base Palette, colors map[Role]color.HSL, dark bool) Palette {
	seeds := base.Seeds()
	for r, c := range colors {
		seeds = seeds.with(r, c)
	}

	p := Expand(seeds, dark)
	for r, c := range colors {
		if !isSeedField(r) {
			p[r] = c
		}
	}
	return p
}

func (s Seeds) with(r Role, c color.HSL) Seeds {
	switch r {
	case Background:
		s.Background = c
	case Foreground:
		s.Foreground = c
	case Primary:
		s.Primary = c
	case Secondary:
		s.Secondary = c
	case Accent:
		s.Accent = c
	case Destructive:
		s.Destructive = c
	}
	return s
}

func isSeedField(r Role) bool {
	return r == Destructive || r.IsSeed()
}
