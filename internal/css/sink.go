package css

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/renato0307/shade/internal/logging"
	"github.com/renato0307/shade/internal/palette"
	"github.com/renato0307/shade/internal/types"
)

// Target receives custom property assignments.
type Target interface {
	SetProperty(name, value string) error
}

// Flusher is implemented by targets that buffer assignments.
type Flusher interface {
	Flush() error
}

// VariableSink pushes the active palette into a Target. Failures are logged
// and swallowed: the theme state stays authoritative whatever the target does.
type VariableSink struct {
	target Target
	format Format
	logger *logging.Logger
}

// NewVariableSink creates a sink. A nil target makes Apply a no-op.
func NewVariableSink(target Target, format Format, logger *logging.Logger) *VariableSink {
	if logger == nil {
		logger = logging.Noop()
	}
	return &VariableSink{
		target: target,
		format: format,
		logger: logger.With("component", "css-sink"),
	}
}

// Apply writes every property. It returns the number of failed writes.
func (s *VariableSink) Apply(p palette.Palette, radius float64, fonts types.Fonts) int {
	if s == nil || s.target == nil {
		return 0
	}

	failed := 0
	for _, prop := range Properties(p, radius, fonts, s.format) {
		if err := s.target.SetProperty(prop.Name, prop.Value); err != nil {
			failed++
			s.logger.Warn("set css property", "property", prop.Name, "error", err)
		}
	}

	if f, ok := s.target.(Flusher); ok {
		if err := f.Flush(); err != nil {
			failed++
			s.logger.Warn("flush css target", "error", err)
		}
	}
	return failed
}

// MapTarget keeps properties in memory.
type MapTarget struct {
	props map[string]string
}

// NewMapTarget creates an empty in-memory target.
func NewMapTarget() *MapTarget {
	return &MapTarget{props: map[string]string{}}
}

func (m *MapTarget) SetProperty(name, value string) error {
	m.props[name] = value
	return nil
}

// Get returns a property value.
func (m *MapTarget) Get(name string) (string, bool) {
	v, ok := m.props[name]
	return v, ok
}

// Len returns the number of properties set.
func (m *MapTarget) Len() int {
	return len(m.props)
}

// FileTarget writes a :root block to a file on every Flush.
type FileTarget struct {
	path  string
	order []string
	props map[string]string
}

// NewFileTarget creates a target writing to path.
func NewFileTarget(path string) *FileTarget {
	return &FileTarget{path: path, props: map[string]string{}}
}

func (f *FileTarget) SetProperty(name, value string) error {
	if !strings.HasPrefix(name, "--") {
		return fmt.Errorf("custom property %q must start with --", name)
	}
	if _, ok := f.props[name]; !ok {
		f.order = append(f.order, name)
	}
	f.props[name] = value
	return nil
}

// Flush writes the file atomically through a temp file and rename.
func (f *FileTarget) Flush() error {
	props := make([]Property, 0, len(f.order))
	for _, name := range f.order {
		props = append(props, Property{Name: name, Value: f.props[name]})
	}

	var b strings.Builder
	writeBlock(&b, ":root", props)

	tmp, err := os.CreateTemp(filepath.Dir(f.path), ".shade-*.css")
	if err != nil {
		return fmt.Errorf("create temp file: %w", err)
	}
	defer os.Remove(tmp.Name())

	if _, err := tmp.WriteString(b.String()); err != nil {
		tmp.Close()
		return fmt.Errorf("write %s: %w", tmp.Name(), err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("close %s: %w", tmp.Name(), err)
	}
	if err := os.Rename(tmp.Name(), f.path); err != nil {
		return fmt.Errorf("rename to %s: %w", f.path, err)
	}
	return nil
}
