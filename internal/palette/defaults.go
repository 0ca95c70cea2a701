package palette

import (
	"fmt"

	"github.com/renato0307/shade/internal/color"
)

// DefaultLight is the built-in light palette. Expand(DefaultLight.Seeds(), false)
// reproduces it exactly.
var DefaultLight = mustPalette(map[Role]string{
	Background:               "0 0% 100%",
	Foreground:               "291 25% 8%",
	Card:                     "0 0% 100%",
	CardForeground:           "291 25% 8%",
	Popover:                  "0 0% 100%",
	PopoverForeground:        "291 25% 8%",
	Primary:                  "291 80% 45%",
	PrimaryForeground:        "291 10% 95%",
	Secondary:                "291 25% 95%",
	SecondaryForeground:      "291 10% 10%",
	Muted:                    "291 25% 95%",
	MutedForeground:          "291 15% 45%",
	Accent:                   "291 50% 90%",
	AccentForeground:         "291 10% 10%",
	Destructive:              "0 84% 60%",
	Border:                   "291 20% 90%",
	Input:                    "291 20% 90%",
	Ring:                     "291 80% 45%",
	Chart1:                   "291 80% 45%",
	Chart2:                   "291 65% 60%",
	Chart3:                   "291 50% 70%",
	Chart4:                   "291 90% 30%",
	Chart5:                   "291 85% 20%",
	Sidebar:                  "0 0% 100%",
	SidebarForeground:        "291 25% 8%",
	SidebarPrimary:           "291 80% 45%",
	SidebarPrimaryForeground: "291 10% 95%",
	SidebarAccent:            "291 50% 90%",
	SidebarAccentForeground:  "291 10% 10%",
	SidebarBorder:            "291 20% 90%",
	SidebarRing:              "291 80% 45%",
})

// DefaultDark is the built-in dark palette.
var DefaultDark = mustPalette(map[Role]string{
	Background:               "291 25% 9%",
	Foreground:               "291 10% 95%",
	Card:                     "291 25% 9%",
	CardForeground:           "291 10% 95%",
	Popover:                  "291 25% 9%",
	PopoverForeground:        "291 10% 95%",
	Primary:                  "291 80% 55%",
	PrimaryForeground:        "291 10% 10%",
	Secondary:                "291 30% 30%",
	SecondaryForeground:      "291 10% 95%",
	Muted:                    "291 30% 30%",
	MutedForeground:          "291 20% 65%",
	Accent:                   "321 40% 35%",
	AccentForeground:         "321 10% 95%",
	Destructive:              "0 63% 31%",
	Border:                   "291 20% 21%",
	Input:                    "291 20% 21%",
	Ring:                     "291 80% 55%",
	Chart1:                   "291 80% 55%",
	Chart2:                   "291 85% 70%",
	Chart3:                   "291 90% 80%",
	Chart4:                   "291 70% 40%",
	Chart5:                   "291 60% 30%",
	Sidebar:                  "291 25% 9%",
	SidebarForeground:        "291 10% 95%",
	SidebarPrimary:           "291 80% 55%",
	SidebarPrimaryForeground: "291 10% 10%",
	SidebarAccent:            "321 40% 35%",
	SidebarAccentForeground:  "321 10% 95%",
	SidebarBorder:            "291 20% 21%",
	SidebarRing:              "291 80% 55%",
})

func mustPalette(m map[Role]string) Palette {
	var p Palette
	for r := Role(0); r < RoleCount; r++ {
		v, ok := m[r]
		if !ok {
			panic(fmt.Sprintf("palette literal is missing role %q", r.Key()))
		}
		p[r] = color.MustParseHSL(v)
	}
	return p
}
