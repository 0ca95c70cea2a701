package palette

import "github.com/renato0307/shade/internal/color"

// seedKind groups roles that share a propagation rule.
type seedKind int

const (
	kindOther seedKind = iota
	kindBackground
	kindForeground
	kindPrimary
	kindSecondary
	kindAccent
)

func kindOf(r Role) seedKind {
	switch r {
	case Background:
		return kindBackground
	case Foreground:
		return kindForeground
	case Primary:
		return kindPrimary
	case Secondary:
		return kindSecondary
	case Accent:
		return kindAccent
	default:
		return kindOther
	}
}

type ruleKey struct {
	kind seedKind
	dark bool
}

// rule receives both palettes by value and returns the replacements.
type rule func(r Role, c color.HSL, light, dark Palette) (Palette, Palette)

// rules is the complete propagation policy. Edits made while dark mode is
// active only ever touch the dark palette.
var rules = map[ruleKey]rule{
	{kindBackground, false}: backgroundInLight,
	{kindBackground, true}:  backgroundInDark,
	{kindForeground, false}: foregroundInLight,
	{kindForeground, true}:  foregroundInDark,
	{kindPrimary, false}:    primaryInLight,
	{kindPrimary, true}:     primaryInDark,
	{kindSecondary, false}:  secondaryInLight,
	{kindSecondary, true}:   secondaryInDark,
	{kindAccent, false}:     accentInLight,
	{kindAccent, true}:      accentInDark,
	{kindOther, false}:      otherInLight,
	{kindOther, true}:       otherInDark,
}

// Propagate applies an edit of role r to c and returns the new light and dark
// palettes. isDark tells which palette the user is editing.
func Propagate(r Role, c color.HSL, light, dark Palette, isDark bool) (Palette, Palette) {
	if r < 0 || r >= RoleCount {
		return light, dark
	}
	return rules[ruleKey{kindOf(r), isDark}](r, c, light, dark)
}

// DarkCompanions derives dark mode secondary and accent colors from a dark
// mode primary.
func DarkCompanions(primary color.HSL) (secondary, accent color.HSL) {
	secondary = color.New(primary.H,
		color.Clamp(primary.S-40, 7, 30),
		color.Clamp(primary.L-20, 15, 30))
	accent = color.New(primary.H+30,
		color.Clamp(primary.S-30, 15, 40),
		color.Clamp(primary.L-15, 20, 35))
	return secondary, accent
}

// darkSecondaryFor mirrors a light mode secondary into dark mode.
func darkSecondaryFor(c color.HSL) color.HSL {
	return color.New(c.H, color.Clamp(c.S-10, 7, 30), color.Clamp(c.L-70, 15, 30))
}

// darkAccentFor mirrors a light mode accent into dark mode.
func darkAccentFor(c color.HSL) color.HSL {
	return color.New(c.H, color.Clamp(c.S-10, 15, 40), color.Clamp(c.L-60, 20, 35))
}

func backgroundInLight(_ Role, c color.HSL, light, dark Palette) (Palette, Palette) {
	light.setBackground(c)
	return light, dark
}

func backgroundInDark(_ Role, c color.HSL, light, dark Palette) (Palette, Palette) {
	dark.setBackground(c)
	dark[Sidebar] = c
	return light, dark
}

func foregroundInLight(_ Role, c color.HSL, light, dark Palette) (Palette, Palette) {
	light.setForeground(c)
	dark[Foreground] = Contrast(c)
	return light, dark
}

func foregroundInDark(_ Role, c color.HSL, light, dark Palette) (Palette, Palette) {
	dark.setForeground(c)
	return light, dark
}

func primaryInLight(_ Role, c color.HSL, light, dark Palette) (Palette, Palette) {
	light.setPrimary(c)
	light.setCharts(ChartSeries(c, light[Secondary], light[Accent], false))

	// The dark ramp follows dark's own seeds as they were before the edit.
	dark.setCharts(ChartSeries(dark[Primary], dark[Secondary], dark[Accent], true))
	dark[Primary] = c
	dark[PrimaryForeground] = Contrast(c)
	return light, dark
}

// primaryInDark re-synthesizes secondary and accent: in dark mode there is no
// light primary to mirror them from.
func primaryInDark(_ Role, c color.HSL, light, dark Palette) (Palette, Palette) {
	secondary, accent := DarkCompanions(c)
	dark.setPrimary(c)
	dark.setSecondary(secondary)
	dark.setAccent(accent)
	dark.setCharts(ChartSeries(c, secondary, accent, true))
	return light, dark
}

func secondaryInLight(_ Role, c color.HSL, light, dark Palette) (Palette, Palette) {
	light.setSecondary(c)
	light.setCharts(ChartSeries(light[Primary], c, light[Accent], false))

	mirrored := darkSecondaryFor(c)
	dark[Secondary] = mirrored
	dark[SecondaryForeground] = Contrast(mirrored)
	return light, dark
}

func secondaryInDark(_ Role, c color.HSL, light, dark Palette) (Palette, Palette) {
	dark.setSecondary(c)
	dark.setCharts(ChartSeries(dark[Primary], c, dark[Accent], true))
	return light, dark
}

func accentInLight(_ Role, c color.HSL, light, dark Palette) (Palette, Palette) {
	light.setAccent(c)
	light.setCharts(ChartSeries(light[Primary], light[Secondary], c, false))
	dark.setAccent(darkAccentFor(c))
	return light, dark
}

func accentInDark(_ Role, c color.HSL, light, dark Palette) (Palette, Palette) {
	dark.setAccent(c)
	dark.setCharts(ChartSeries(dark[Primary], dark[Secondary], c, true))
	return light, dark
}

func otherInLight(r Role, c color.HSL, light, dark Palette) (Palette, Palette) {
	light[r] = c
	dark[r] = c
	return light, dark
}

func otherInDark(r Role, c color.HSL, light, dark Palette) (Palette, Palette) {
	dark[r] = c
	return light, dark
}
