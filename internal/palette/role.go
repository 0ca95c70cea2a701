package palette

import (
	"fmt"
	"strings"
	"unicode"
)

// Role is one semantic color slot of a palette.
type Role int

// Roles in stylesheet order. The set is closed: RoleCount bounds every Palette.
const (
	Background Role = iota
	Foreground
	Card
	CardForeground
	Popover
	PopoverForeground
	Primary
	PrimaryForeground
	Secondary
	SecondaryForeground
	Muted
	MutedForeground
	Accent
	AccentForeground
	Destructive
	Border
	Input
	Ring
	Chart1
	Chart2
	Chart3
	Chart4
	Chart5
	Sidebar
	SidebarForeground
	SidebarPrimary
	SidebarPrimaryForeground
	SidebarAccent
	SidebarAccentForeground
	SidebarBorder
	SidebarRing

	RoleCount
)

var roleKeys = [RoleCount]string{
	"background",
	"foreground",
	"card",
	"cardForeground",
	"popover",
	"popoverForeground",
	"primary",
	"primaryForeground",
	"secondary",
	"secondaryForeground",
	"muted",
	"mutedForeground",
	"accent",
	"accentForeground",
	"destructive",
	"border",
	"input",
	"ring",
	"chart1",
	"chart2",
	"chart3",
	"chart4",
	"chart5",
	"sidebar",
	"sidebarForeground",
	"sidebarPrimary",
	"sidebarPrimaryForeground",
	"sidebarAccent",
	"sidebarAccentForeground",
	"sidebarBorder",
	"sidebarRing",
}

var roleByKey = func() map[string]Role {
	m := make(map[string]Role, RoleCount)
	for r := Role(0); r < RoleCount; r++ {
		m[roleKeys[r]] = r
	}
	return m
}()

// SeedRoles are the user-editable roles other roles derive from.
var SeedRoles = []Role{Background, Foreground, Primary, Secondary, Accent}

// ChartRoles lists chart1..chart5 in order.
var ChartRoles = [5]Role{Chart1, Chart2, Chart3, Chart4, Chart5}

// Roles returns every role in stylesheet order.
func Roles() []Role {
	out := make([]Role, RoleCount)
	for r := range out {
		out[r] = Role(r)
	}
	return out
}

// ParseRole resolves a role key such as "cardForeground". Kebab-case CSS
// names ("card-foreground", "--chart-1") are accepted too.
func ParseRole(key string) (Role, error) {
	if r, ok := roleByKey[key]; ok {
		return r, nil
	}
	if r, ok := roleByKey[camelFromKebab(key)]; ok {
		return r, nil
	}
	return 0, fmt.Errorf("unknown color role %q", key)
}

// Key returns the camelCase role key.
func (r Role) Key() string {
	if r < 0 || r >= RoleCount {
		return fmt.Sprintf("role(%d)", int(r))
	}
	return roleKeys[r]
}

func (r Role) String() string {
	return r.Key()
}

// CSSName returns the custom property name, e.g. "--card-foreground" or "--chart-1".
func (r Role) CSSName() string {
	var b strings.Builder
	b.WriteString("--")
	for _, ch := range r.Key() {
		switch {
		case unicode.IsUpper(ch):
			b.WriteByte('-')
			b.WriteRune(unicode.ToLower(ch))
		case unicode.IsDigit(ch):
			b.WriteByte('-')
			b.WriteRune(ch)
		default:
			b.WriteRune(ch)
		}
	}
	return b.String()
}

// IsSeed reports whether edits to r drive derived roles.
func (r Role) IsSeed() bool {
	for _, s := range SeedRoles {
		if s == r {
			return true
		}
	}
	return false
}

func camelFromKebab(s string) string {
	s = strings.TrimPrefix(s, "--")
	parts := strings.Split(s, "-")
	for i := 1; i < len(parts); i++ {
		if parts[i] == "" {
			continue
		}
		parts[i] = strings.ToUpper(parts[i][:1]) + parts[i][1:]
	}
	return strings.Join(parts, "")
}
