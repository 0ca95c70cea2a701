package app

import (
	"context"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/renato0307/shade/internal/color"
	"github.com/renato0307/shade/internal/logging"
	"github.com/renato0307/shade/internal/palette"
	"github.com/renato0307/shade/internal/theme"
)

func TestWatch_ForwardsLatestState(t *testing.T) {
	store := theme.NewStore(context.Background(), theme.WithLogger(logging.Noop()))
	msgs := make(chan tea.Msg, 8)
	stop := Watch(store, func(msg tea.Msg) { msgs <- msg })
	defer stop()

	require.NoError(t, store.UpdateColor(palette.Primary, "#00ff00"))

	var got StateMsg
	require.Eventually(t, func() bool {
		for {
			select {
			case msg := <-msgs:
				got = msg.(StateMsg)
			default:
				return got.State.Light[palette.Primary] == color.New(120, 100, 50)
			}
		}
	}, time.Second, 10*time.Millisecond)
}

func TestWatch_StopUnsubscribes(t *testing.T) {
	store := theme.NewStore(context.Background(), theme.WithLogger(logging.Noop()))
	msgs := make(chan tea.Msg, 8)
	stop := Watch(store, func(msg tea.Msg) { msgs <- msg })
	stop()
	stop()

	store.ToggleDarkMode()
	assert.Never(t, func() bool { return len(msgs) > 0 }, 100*time.Millisecond, 10*time.Millisecond)
}

func TestStateMsg_RefreshesView(t *testing.T) {
	m, store := newTestModel(t)
	require.NoError(t, store.UpdateColor(palette.Primary, "#00ff00"))
	assert.NotContains(t, m.View(), "120 100% 50%", "view renders the last published state")

	m, cmd := send(t, m, StateMsg{State: store.State()})
	assert.Nil(t, cmd)
	assert.Contains(t, m.View(), "120 100% 50%")
	assert.Contains(t, m.View(), "custom · light")
}

func TestExportView_UsesLinkToken(t *testing.T) {
	store := theme.NewStore(context.Background(), theme.WithLogger(logging.Noop()))
	m := NewModel(store, Config{
		RegistryURL: "https://example.com",
		Token:       func() string { return "eyJkbSI6dHJ1ZX0" },
	})

	m, _ = send(t, m, runes("x"))
	assert.Contains(t, m.View(), "npx shadcn@latest add https://example.com/r/theme.json?t=eyJkbSI6dHJ1ZX0")
}
