package palette

import (
	"fmt"

	"github.com/renato0307/shade/internal/color"
)

// HarmonyMode picks the hue relation between primary and accent when a
// palette is synthesized.
type HarmonyMode string

const (
	HarmonyMonochromatic HarmonyMode = "monochromatic"
	HarmonyAnalogous     HarmonyMode = "analogous"
	HarmonyComplementary HarmonyMode = "complementary"
	HarmonyTriadic       HarmonyMode = "triadic"
)

// HarmonyModes lists the modes in cycling order.
var HarmonyModes = []HarmonyMode{
	HarmonyMonochromatic,
	HarmonyAnalogous,
	HarmonyComplementary,
	HarmonyTriadic,
}

// ParseHarmony resolves a mode name. The empty string means monochromatic.
func ParseHarmony(s string) (HarmonyMode, error) {
	if s == "" {
		return HarmonyMonochromatic, nil
	}
	for _, m := range HarmonyModes {
		if string(m) == s {
			return m, nil
		}
	}
	return "", fmt.Errorf("unknown harmony mode %q", s)
}

// Next returns the mode after m, wrapping around.
func (m HarmonyMode) Next() HarmonyMode {
	for i, mode := range HarmonyModes {
		if mode == m {
			return HarmonyModes[(i+1)%len(HarmonyModes)]
		}
	}
	return HarmonyMonochromatic
}

func (m HarmonyMode) accentOffset() int {
	switch m {
	case HarmonyAnalogous:
		return 30
	case HarmonyComplementary:
		return 180
	case HarmonyTriadic:
		return 120
	default:
		return 0
	}
}

// Rand is the randomness Synthesize draws from; *rand.Rand from math/rand/v2
// satisfies it.
type Rand interface {
	IntN(n int) int
}

var (
	lightDestructive = color.HSL{H: 0, S: 84, L: 60}
	darkDestructive  = color.HSL{H: 0, S: 63, L: 31}
	white            = color.HSL{H: 0, S: 0, L: 100}
)

// Synthesize builds a fresh light and dark palette pair around one random hue.
func Synthesize(rng Rand, mode HarmonyMode) (Palette, Palette) {
	h := rng.IntN(360)
	s := 50 + rng.IntN(30)
	l := 40 + rng.IntN(20)
	return Expand(lightSeedsFor(h, s, l, mode), false), Expand(darkSeedsFor(h, s, l, mode), true)
}

func lightSeedsFor(h, s, l int, mode HarmonyMode) Seeds {
	return Seeds{
		Background:  white,
		Foreground:  color.New(h, 25, 8),
		Primary:     color.New(h, min(s+20, 85), color.Clamp(l, 45, 60)),
		Secondary:   color.New(h, color.Clamp(s-60, 5, 25), min(l+40, 96)),
		Accent:      color.New(h+mode.accentOffset(), color.Clamp(s-30, 30, 55), min(l+30, 88)),
		Destructive: lightDestructive,
	}
}

func darkSeedsFor(h, s, l int, mode HarmonyMode) Seeds {
	primary := color.New(h, min(s+10, 90), min(l+10, 60))
	secondary, accent := DarkCompanions(primary)
	if mode != HarmonyMonochromatic {
		accent = color.New(h+mode.accentOffset(), accent.S, accent.L)
	}

	return Seeds{
		Background:  color.New(h, 25, color.Clamp(l/5, 8, 10)),
		Foreground:  color.New(h, 10, 95),
		Primary:     primary,
		Secondary:   secondary,
		Accent:      accent,
		Destructive: darkDestructive,
	}
}
