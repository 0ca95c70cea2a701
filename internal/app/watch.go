package app

import (
	"sync"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/renato0307/shade/internal/theme"
	"github.com/renato0307/shade/internal/types"
)

// StateMsg carries a theme state published by the store.
type StateMsg struct {
	State types.State
}

// Watch forwards every state published by store to send, usually
// tea.Program.Send, until the returned function is called. Store observers
// run inside the editor's own Update, so delivery happens on a separate
// goroutine; when the program falls behind only the latest state is sent.
func Watch(store *theme.Store, send func(tea.Msg)) (stop func()) {
	var (
		mu     sync.Mutex
		latest types.State
	)
	wake := make(chan struct{}, 1)
	done := make(chan struct{})

	unsubscribe := store.Subscribe(func(st types.State) {
		mu.Lock()
		latest = st
		mu.Unlock()
		select {
		case wake <- struct{}{}:
		default:
		}
	})

	go func() {
		for {
			select {
			case <-done:
				return
			case <-wake:
				mu.Lock()
				st := latest
				mu.Unlock()
				send(StateMsg{State: st})
			}
		}
	}()

	var once sync.Once
	return func() {
		once.Do(func() {
			unsubscribe()
			close(done)
		})
	}
}
