package messages

import (
	"fmt"
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// ErrorCmd returns a tea.Cmd that produces an error status message.
//
// Example:
//
//	if err := m.store.Import(token); err != nil {
//	    return messages.ErrorCmd("Import failed: %v", err)
//	}
func ErrorCmd(format string, args ...any) tea.Cmd {
	msg := fmt.Sprintf(format, args...)
	return func() tea.Msg {
		return ErrorStatusMsg(msg)
	}
}

// SuccessCmd returns a tea.Cmd that produces a success status message.
//
// Example:
//
//	return messages.SuccessCmd("Applied preset %s", name)
func SuccessCmd(format string, args ...any) tea.Cmd {
	msg := fmt.Sprintf(format, args...)
	return func() tea.Msg {
		return SuccessMsg(msg)
	}
}

// InfoCmd returns a tea.Cmd that produces an info status message.
func InfoCmd(format string, args ...any) tea.Cmd {
	msg := fmt.Sprintf(format, args...)
	return func() tea.Msg {
		return InfoMsg(msg)
	}
}

// ClearAfter returns a tea.Cmd that clears the status line after d.
func ClearAfter(d time.Duration) tea.Cmd {
	return tea.Tick(d, func(time.Time) tea.Msg {
		return ClearStatusMsg{}
	})
}
