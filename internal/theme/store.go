// Package theme owns the current theme state. Every change computes a new
// state from one snapshot, replaces the old one wholesale and then notifies,
// in order, the CSS sink, the share link, the persister and the observers.
package theme

import (
	"context"
	"errors"
	"fmt"
	"math/rand/v2"
	"slices"
	"strings"
	"sync"
	"time"

	"github.com/renato0307/shade/internal/color"
	"github.com/renato0307/shade/internal/css"
	"github.com/renato0307/shade/internal/logging"
	"github.com/renato0307/shade/internal/palette"
	"github.com/renato0307/shade/internal/share"
	"github.com/renato0307/shade/internal/types"
)

const persistTimeout = 5 * time.Second

// Menu identifies an editor panel.
type Menu string

const (
	MenuPresets Menu = "presets"
	MenuExport  Menu = "export"
	MenuFonts   Menu = "fonts"
)

// Observer is called with every new state.
type Observer func(types.State)

type subscriber struct {
	id int
	fn Observer
}

// Store holds the current theme.
type Store struct {
	mu    sync.RWMutex
	state types.State

	// pubMu keeps side effects in the order states were produced.
	pubMu sync.Mutex

	subMu       sync.Mutex
	subscribers []subscriber
	nextID      int

	sink        *css.VariableSink
	linkUpdater func(token string)
	persister   Persister
	rng         palette.Rand
	filePresets []types.Preset
	logger      *logging.Logger
}

// Option configures a Store.
type Option func(*Store)

// WithSink pushes the active palette to sink after every change.
func WithSink(sink *css.VariableSink) Option {
	return func(s *Store) { s.sink = sink }
}

// WithLinkUpdater receives the share token after every change.
func WithLinkUpdater(fn func(token string)) Option {
	return func(s *Store) { s.linkUpdater = fn }
}

// WithPersister restores the state on creation and saves every change.
func WithPersister(p Persister) Option {
	return func(s *Store) { s.persister = p }
}

// WithRand sets the random source used by GenerateHarmony.
func WithRand(rng palette.Rand) Option {
	return func(s *Store) { s.rng = rng }
}

// WithPresets adds presets loaded from a preset file.
func WithPresets(presets []types.Preset) Option {
	return func(s *Store) { s.filePresets = presets }
}

// WithLogger sets the logger. The global logger is used otherwise.
func WithLogger(l *logging.Logger) Option {
	return func(s *Store) { s.logger = l }
}

// NewStore creates a store, restoring the persisted state when there is
// one. An unreadable snapshot is logged and replaced by the default theme.
func NewStore(ctx context.Context, opts ...Option) *Store {
	s := &Store{state: types.DefaultState()}
	for _, opt := range opts {
		opt(s)
	}
	if s.logger == nil {
		s.logger = logging.Get()
	}
	s.logger = s.logger.With("component", "theme")
	if s.rng == nil {
		s.rng = rand.New(rand.NewPCG(uint64(time.Now().UnixNano()), rand.Uint64()))
	}

	if s.persister != nil {
		restored, err := s.persister.Load(ctx)
		switch {
		case err == nil:
			s.state = restored
			s.logger.Debug("restored theme", "theme", restored.ThemeName)
		case errors.Is(err, ErrNoSnapshot):
		default:
			s.logger.Warn("restore theme", "error", err)
		}
	}

	s.render(s.state)
	return s
}

// State returns a copy of the current state.
func (s *Store) State() types.State {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.state.Clone()
}

// Subscribe registers fn for every future state. The returned function
// removes it.
func (s *Store) Subscribe(fn Observer) func() {
	s.subMu.Lock()
	defer s.subMu.Unlock()

	id := s.nextID
	s.nextID++
	s.subscribers = append(s.subscribers, subscriber{id: id, fn: fn})

	return func() {
		s.subMu.Lock()
		defer s.subMu.Unlock()
		s.subscribers = slices.DeleteFunc(s.subscribers, func(sub subscriber) bool {
			return sub.id == id
		})
	}
}

// update replaces the state with fn applied to a single snapshot and runs the
// side effects. fn returning false leaves everything untouched.
func (s *Store) update(op string, fn func(types.State) (types.State, bool)) bool {
	s.pubMu.Lock()
	defer s.pubMu.Unlock()

	s.mu.Lock()
	next, changed := fn(s.state.Clone())
	if changed {
		s.state = next
	}
	s.mu.Unlock()

	if !changed {
		return false
	}

	s.logger.Debug("theme updated", "op", op, "theme", next.ThemeName, "dark", next.DarkMode)
	s.publish(next)
	return true
}

// render pushes the state to the CSS sink and the link updater.
func (s *Store) render(st types.State) {
	active := st.Active()
	s.sink.Apply(active, st.Radius, st.Fonts)

	if s.linkUpdater != nil {
		token, err := share.Encode(st)
		if err != nil {
			s.logger.Warn("encode share link", "error", err)
		} else {
			s.linkUpdater(token)
		}
	}
}

func (s *Store) publish(st types.State) {
	s.render(st)

	if s.persister != nil {
		ctx, cancel := context.WithTimeout(context.Background(), persistTimeout)
		if err := s.persister.Save(ctx, st); err != nil {
			s.logger.Warn("persist theme", "error", err)
		}
		cancel()
	}

	s.subMu.Lock()
	subs := slices.Clone(s.subscribers)
	s.subMu.Unlock()
	for _, sub := range subs {
		sub.fn(st.Clone())
	}
}

// UpdateColor sets role to the color hex and propagates it through the
// palettes. Malformed hex leaves the state unchanged.
func (s *Store) UpdateColor(role palette.Role, hex string) error {
	if role < 0 || role >= palette.RoleCount {
		return fmt.Errorf("unknown role %d", role)
	}
	c, err := color.ParseHex(hex)
	if err != nil {
		return err
	}

	s.update("update color", func(st types.State) (types.State, bool) {
		st.Light, st.Dark = palette.Propagate(role, c, st.Light, st.Dark, st.DarkMode)
		st.ThemeName = types.CustomThemeName
		return st, true
	})
	return nil
}

// SetDarkMode selects the dark palette as active.
func (s *Store) SetDarkMode(dark bool) {
	s.update("set dark mode", func(st types.State) (types.State, bool) {
		if st.DarkMode == dark {
			return st, false
		}
		st.DarkMode = dark
		return st, true
	})
}

// ToggleDarkMode flips dark mode and returns the new value.
func (s *Store) ToggleDarkMode() bool {
	var dark bool
	s.update("toggle dark mode", func(st types.State) (types.State, bool) {
		st.DarkMode = !st.DarkMode
		dark = st.DarkMode
		return st, true
	})
	return dark
}

// SetRadius sets the border radius in rem.
func (s *Store) SetRadius(rem float64) error {
	if rem < 0 {
		return fmt.Errorf("radius must not be negative, got %v", rem)
	}
	s.update("set radius", func(st types.State) (types.State, bool) {
		st.Radius = rem
		return st, true
	})
	return nil
}

// SetFonts sets the heading and body font families.
func (s *Store) SetFonts(f types.Fonts) error {
	f.Heading = strings.TrimSpace(f.Heading)
	f.Body = strings.TrimSpace(f.Body)
	if f.Heading == "" || f.Body == "" {
		return errors.New("heading and body fonts are required")
	}
	s.update("set fonts", func(st types.State) (types.State, bool) {
		st.Fonts = f
		return st, true
	})
	return nil
}

// SetHarmony selects the harmony used by the next GenerateHarmony.
func (s *Store) SetHarmony(mode palette.HarmonyMode) {
	s.update("set harmony", func(st types.State) (types.State, bool) {
		st.Harmony = mode
		return st, true
	})
}

// GenerateHarmony replaces both palettes with freshly synthesized ones.
// Radius and fonts are kept.
func (s *Store) GenerateHarmony() {
	s.update("generate harmony", func(st types.State) (types.State, bool) {
		logging.Time("synthesize palettes", func() {
			st.Light, st.Dark = palette.Synthesize(s.rng, st.Harmony)
		})
		st.ThemeName = types.CustomThemeName
		return st, true
	})
}

// Presets lists built-in presets, then presets from the preset file, then
// presets saved in the state.
func (s *Store) Presets() []types.Preset {
	st := s.State()
	out := BuiltinPresets()
	for _, p := range s.filePresets {
		out = append(out, p.Clone())
	}
	return append(out, st.Presets...)
}

// FindPresets fuzzy searches Presets.
func (s *Store) FindPresets(query string) []types.Preset {
	return FindPresets(s.Presets(), query)
}

// SelectPreset applies the named preset. Unknown names and invalid presets
// leave the state unchanged and return false.
func (s *Store) SelectPreset(name string) bool {
	return s.update("select preset", func(st types.State) (types.State, bool) {
		all := BuiltinPresets()
		all = append(all, s.filePresets...)
		all = append(all, st.Presets...)

		p, ok := findPreset(all, name)
		if !ok {
			return st, false
		}
		next, err := p.Apply(st)
		if err != nil {
			s.logger.Warn("apply preset", "preset", name, "error", err)
			return st, false
		}
		return next, true
	})
}

// SavePreset captures the current theme under name, replacing a saved
// preset of the same name. Built-in names are reserved.
func (s *Store) SavePreset(name string) error {
	name = strings.TrimSpace(name)
	if name == "" {
		return errors.New("preset name is required")
	}
	if IsBuiltin(name) {
		return fmt.Errorf("preset %q is built in", name)
	}

	s.update("save preset", func(st types.State) (types.State, bool) {
		p := types.PresetFromState(name, st)
		st.Presets = slices.DeleteFunc(st.Presets, func(existing types.Preset) bool {
			return strings.EqualFold(existing.Name, name)
		})
		st.Presets = append(st.Presets, p)
		st.ThemeName = name
		return st, true
	})
	return nil
}

// DeletePreset removes a saved preset and reports whether it existed.
func (s *Store) DeletePreset(name string) bool {
	return s.update("delete preset", func(st types.State) (types.State, bool) {
		n := len(st.Presets)
		st.Presets = slices.DeleteFunc(st.Presets, func(p types.Preset) bool {
			return strings.EqualFold(p.Name, name)
		})
		return st, len(st.Presets) != n
	})
}

// SetMenuOpen opens or closes an editor panel.
func (s *Store) SetMenuOpen(menu Menu, open bool) error {
	var target func(*types.Menus) *bool
	switch menu {
	case MenuPresets:
		target = func(m *types.Menus) *bool { return &m.Presets }
	case MenuExport:
		target = func(m *types.Menus) *bool { return &m.Export }
	case MenuFonts:
		target = func(m *types.Menus) *bool { return &m.Fonts }
	default:
		return fmt.Errorf("unknown menu %q", menu)
	}

	s.update("set menu", func(st types.State) (types.State, bool) {
		*target(&st.Menus) = open
		return st, true
	})
	return nil
}

// Import replaces the theme with one decoded from a share token. Saved
// presets, harmony and menus are kept.
func (s *Store) Import(token string) error {
	decoded, err := share.Decode(token)
	if err != nil {
		return err
	}

	s.update("import", func(st types.State) (types.State, bool) {
		decoded.Presets = st.Presets
		decoded.Harmony = st.Harmony
		decoded.Menus = st.Menus
		return decoded, true
	})
	return nil
}

// Reset restores the default theme, keeping saved presets.
func (s *Store) Reset() {
	s.update("reset", func(st types.State) (types.State, bool) {
		next := types.DefaultState()
		next.Presets = st.Presets
		return next, true
	})
}

// ShareToken encodes the current state.
func (s *Store) ShareToken() (string, error) {
	return share.Encode(s.State())
}

// Stylesheet renders the current state as CSS.
func (s *Store) Stylesheet(f css.Format) string {
	st := s.State()
	return logging.TimeWithResult("generate stylesheet", func() string {
		return css.Generate(st, f)
	})
}
