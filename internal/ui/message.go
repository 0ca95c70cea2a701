package ui

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/renato0307/shade/internal/messages"
)

const statusPrefix = "⏺ "

// RenderStatus renders the editor status line, truncated to width. The
// zero StatusMsg renders as "".
func RenderStatus(msg messages.StatusMsg, theme *Theme, width int) string {
	text := msg.Message
	if text == "" {
		return ""
	}

	limit := max(width-len([]rune(statusPrefix))-5, 20)
	if runes := []rune(text); len(runes) > limit {
		text = string(runes[:limit-1]) + "…"
	}

	fg := theme.MessageInfo
	switch msg.Type {
	case messages.MessageTypeSuccess:
		fg = theme.MessageSuccess
	case messages.MessageTypeError:
		fg = theme.MessageError
	}
	return lipgloss.NewStyle().Foreground(fg).Render(statusPrefix + text)
}
