package palette

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRoles_Complete(t *testing.T) {
	roles := Roles()
	assert.Len(t, roles, int(RoleCount))

	seen := map[string]bool{}
	for _, r := range roles {
		assert.False(t, seen[r.Key()], "duplicate key %s", r.Key())
		seen[r.Key()] = true
	}
}

func TestParseRole(t *testing.T) {
	tests := []struct {
		input string
		want  Role
	}{
		{"primary", Primary},
		{"cardForeground", CardForeground},
		{"card-foreground", CardForeground},
		{"--sidebar-primary-foreground", SidebarPrimaryForeground},
		{"chart3", Chart3},
		{"chart-3", Chart3},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := ParseRole(tt.input)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}

	_, err := ParseRole("tertiary")
	assert.Error(t, err)
}

func TestRole_CSSName(t *testing.T) {
	assert.Equal(t, "--background", Background.CSSName())
	assert.Equal(t, "--card-foreground", CardForeground.CSSName())
	assert.Equal(t, "--chart-1", Chart1.CSSName())
	assert.Equal(t, "--sidebar-accent-foreground", SidebarAccentForeground.CSSName())

	for _, r := range Roles() {
		back, err := ParseRole(r.CSSName())
		require.NoError(t, err)
		assert.Equal(t, r, back)
	}
}

func TestRole_IsSeed(t *testing.T) {
	assert.True(t, Primary.IsSeed())
	assert.True(t, Background.IsSeed())
	assert.False(t, Destructive.IsSeed())
	assert.False(t, Chart1.IsSeed())
}

func TestRole_KeyOutOfRange(t *testing.T) {
	assert.Equal(t, "role(99)", Role(99).Key())
}
