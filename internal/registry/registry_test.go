package registry

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/renato0307/shade/internal/types"
)

func TestCommand(t *testing.T) {
	s := types.DefaultState()

	tests := []struct {
		pm   PackageManager
		want string
	}{
		{NPM, "npx shadcn@latest add https://example.com/r/theme.json?t=e30"},
		{PNPM, "pnpm dlx shadcn@latest add https://example.com/r/theme.json?t=e30"},
		{Bun, "bunx --bun shadcn@latest add https://example.com/r/theme.json?t=e30"},
	}

	for _, tt := range tests {
		t.Run(string(tt.pm), func(t *testing.T) {
			got, err := Command(tt.pm, s, "https://example.com/")
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestCommand_UnknownPackageManager(t *testing.T) {
	_, err := Command("yarn", types.DefaultState(), "")
	assert.Error(t, err)
}

func TestURL_DefaultBase(t *testing.T) {
	got, err := URL(types.DefaultState(), "")
	require.NoError(t, err)
	assert.Equal(t, DefaultBaseURL+"/r/theme.json?t=e30", got)
}

func TestParsePackageManager(t *testing.T) {
	pm, err := ParsePackageManager("")
	require.NoError(t, err)
	assert.Equal(t, NPM, pm)

	pm, err = ParsePackageManager("PNPM")
	require.NoError(t, err)
	assert.Equal(t, PNPM, pm)

	_, err = ParsePackageManager("yarn")
	assert.Error(t, err)
}

func TestTokenCommand(t *testing.T) {
	got, err := TokenCommand(Bun, "eyJyIjoxfQ", "https://themes.example.test")
	require.NoError(t, err)
	assert.Equal(t, "bunx --bun shadcn@latest add https://themes.example.test/r/theme.json?t=eyJyIjoxfQ", got)

	_, err = TokenCommand("yarn", "e30", "")
	assert.Error(t, err)
}
