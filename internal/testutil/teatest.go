// Package testutil runs Bubble Tea models inside a real program for tests.
package testutil

import (
	"bytes"
	"io"
	"strings"
	"sync"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/require"
)

const pollInterval = 20 * time.Millisecond

// TestProgram is a running editor with captured output.
type TestProgram struct {
	program *tea.Program
	output  *syncBuffer
	done    chan struct{}
	t       *testing.T
}

// syncBuffer lets the renderer write while the test reads.
type syncBuffer struct {
	mu  sync.Mutex
	buf bytes.Buffer
}

func (b *syncBuffer) Write(p []byte) (int, error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.buf.Write(p)
}

func (b *syncBuffer) String() string {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.buf.String()
}

// blockingInput never delivers bytes; keys are sent as messages instead.
type blockingInput struct {
	closed chan struct{}
}

func (b *blockingInput) Read([]byte) (int, error) {
	<-b.closed
	return 0, io.EOF
}

// NewTestProgram starts model in the background with an initial window
// size. The program is stopped when the test ends.
func NewTestProgram(t *testing.T, model tea.Model, width, height int) *TestProgram {
	t.Helper()

	output := &syncBuffer{}
	input := &blockingInput{closed: make(chan struct{})}

	p := tea.NewProgram(
		model,
		tea.WithInput(input),
		tea.WithOutput(output),
		tea.WithoutSignalHandler(),
	)

	tp := &TestProgram{
		program: p,
		output:  output,
		done:    make(chan struct{}),
		t:       t,
	}

	go func() {
		defer close(tp.done)
		if _, err := p.Run(); err != nil {
			t.Logf("program error: %v", err)
		}
	}()

	t.Cleanup(func() {
		tp.Quit()
		close(input.closed)
	})

	tp.program.Send(tea.WindowSizeMsg{Width: width, Height: height})
	return tp
}

// Send delivers msg to the program.
func (tp *TestProgram) Send(msg tea.Msg) {
	tp.program.Send(msg)
}

// Type sends s one rune at a time.
func (tp *TestProgram) Type(s string) {
	for _, r := range s {
		tp.program.Send(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}})
	}
}

// Press sends special keys such as tea.KeyEnter or tea.KeyCtrlU.
func (tp *TestProgram) Press(keys ...tea.KeyType) {
	for _, k := range keys {
		tp.program.Send(tea.KeyMsg{Type: k})
	}
}

// Output returns everything rendered so far.
func (tp *TestProgram) Output() string {
	return tp.output.String()
}

// WaitFor polls cond until it holds or timeout expires.
func (tp *TestProgram) WaitFor(cond func() bool, timeout time.Duration) bool {
	deadline := time.Now().Add(timeout)
	for time.Now().Before(deadline) {
		if cond() {
			return true
		}
		time.Sleep(pollInterval)
	}
	return cond()
}

// RequireOutput fails the test unless needle is rendered within timeout.
func (tp *TestProgram) RequireOutput(needle string, timeout time.Duration) {
	tp.t.Helper()
	ok := tp.WaitFor(func() bool { return strings.Contains(tp.Output(), needle) }, timeout)
	require.True(tp.t, ok, "output never contained %q\ngot:\n%s", needle, tp.Output())
}

// Quit stops the program and waits for it to exit.
func (tp *TestProgram) Quit() {
	tp.program.Quit()
	select {
	case <-tp.done:
	case <-time.After(2 * time.Second):
		tp.t.Log("program did not exit in time")
	}
}

// Done is closed once the program has exited.
func (tp *TestProgram) Done() <-chan struct{} {
	return tp.done
}
