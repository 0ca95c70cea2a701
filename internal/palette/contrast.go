package palette

import "github.com/renato0307/shade/internal/color"

// ContrastRole selects how strongly a foreground stands out.
type ContrastRole int

const (
	// RoleDefault yields maximal contrast for body text.
	RoleDefault ContrastRole = iota
	// RoleMuted yields a softer, subdued label color.
	RoleMuted
)

// LegibilityThreshold is the background lightness below which foregrounds
// turn light.
const LegibilityThreshold = 50

// Contrast returns a legible foreground for bg.
func Contrast(bg color.HSL) color.HSL {
	return ContrastFor(bg, RoleDefault)
}

// ContrastFor returns a foreground for bg tuned to role. The hue of bg is kept
// so text stays tinted like its surface.
func ContrastFor(bg color.HSL, role ContrastRole) color.HSL {
	darkBg := bg.L < LegibilityThreshold

	if role == RoleMuted {
		if darkBg {
			return color.New(bg.H, 20, 65)
		}
		return color.New(bg.H, 15, 45)
	}

	if darkBg {
		return color.New(bg.H, 10, 95)
	}
	return color.New(bg.H, 10, 10)
}
