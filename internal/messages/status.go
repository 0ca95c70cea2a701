// Package messages carries status messages from editor actions to the status
// line. Actions return a tea.Cmd producing a StatusMsg; the editor renders it
// and clears it after StatusDisplayDuration.
//
// Errors below the editor stay plain Go errors wrapped with %w. Only the
// editor turns them into user-facing text:
//
//	if err := store.UpdateColor(role, hex); err != nil {
//	    return messages.ErrorCmd("Invalid color: %v", err)
//	}
//
// Keep messages short and start them with what happened, e.g.
// "Applied preset dracula" or "Invalid color: expected #rgb or #rrggbb".
package messages

import "time"

// StatusDisplayDuration is how long a status message stays visible.
const StatusDisplayDuration = 3 * time.Second

// MessageType defines the type of status message
type MessageType int

const (
	MessageTypeInfo MessageType = iota
	MessageTypeSuccess
	MessageTypeError
)

// StatusMsg is shown on the editor status line.
type StatusMsg struct {
	Message string
	Type    MessageType
}

// ClearStatusMsg clears the status line.
type ClearStatusMsg struct{}

// InfoMsg creates an info status message
func InfoMsg(message string) StatusMsg {
	return StatusMsg{Message: message, Type: MessageTypeInfo}
}

// SuccessMsg creates a success status message
func SuccessMsg(message string) StatusMsg {
	return StatusMsg{Message: message, Type: MessageTypeSuccess}
}

// ErrorStatusMsg creates an error status message
func ErrorStatusMsg(message string) StatusMsg {
	return StatusMsg{Message: message, Type: MessageTypeError}
}
