// Package app is the interactive theme editor.
package app

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/renato0307/shade/internal/css"
	"github.com/renato0307/shade/internal/keyboard"
	"github.com/renato0307/shade/internal/logging"
	"github.com/renato0307/shade/internal/messages"
	"github.com/renato0307/shade/internal/palette"
	"github.com/renato0307/shade/internal/registry"
	"github.com/renato0307/shade/internal/theme"
	"github.com/renato0307/shade/internal/types"
	"github.com/renato0307/shade/internal/ui"
)

type mode int

const (
	modeBrowse mode = iota
	modeEditColor
	modePresets
	modeSavePreset
	modeExport
)

// editableRoles are the rows shown by default.
var editableRoles = append(append([]palette.Role{}, palette.SeedRoles...), palette.Destructive)

// Config holds the editor settings that come from configuration.
type Config struct {
	CSSFormat      css.Format
	RegistryURL    string
	PackageManager registry.PackageManager

	// Token returns the current share token. The state is encoded on the
	// fly when nil.
	Token func() string
}

type Model struct {
	store  *theme.Store
	config Config
	keys   *keyboard.Keys
	help   help.Model

	input  textinput.Model // hex color or preset name
	filter textinput.Model // preset filter

	// state is the last theme published by the store.
	state types.State

	mode         mode
	cursor       int
	showAll      bool
	presets      []types.Preset
	presetCursor int

	status messages.StatusMsg
	width  int
	height int
}

func NewModel(store *theme.Store, cfg Config) Model {
	input := textinput.New()
	input.CharLimit = 64

	filter := textinput.New()
	filter.Placeholder = "filter presets"
	filter.Prompt = "/ "

	if cfg.PackageManager == "" {
		cfg.PackageManager = registry.NPM
	}

	return Model{
		store:  store,
		config: cfg,
		state:  store.State(),
		keys:   keyboard.Default(),
		help:   help.New(),
		input:  input,
		filter: filter,
		width:  80,
		height: 24,
	}
}

func (m Model) Init() tea.Cmd {
	return nil
}

func (m Model) roles() []palette.Role {
	if m.showAll {
		return palette.Roles()
	}
	return editableRoles
}

// SelectedRole returns the role under the cursor.
func (m Model) SelectedRole() palette.Role {
	return m.roles()[m.cursor]
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		return m, nil

	case messages.StatusMsg:
		m.status = msg
		return m, messages.ClearAfter(messages.StatusDisplayDuration)

	case StateMsg:
		m.state = msg.State
		return m, nil

	case messages.ClearStatusMsg:
		m.status = messages.StatusMsg{}
		return m, nil

	case tea.KeyMsg:
		if msg.String() == "ctrl+c" {
			return m, tea.Quit
		}
		switch m.mode {
		case modeEditColor:
			return m.updateEditColor(msg)
		case modePresets:
			return m.updatePresets(msg)
		case modeSavePreset:
			return m.updateSavePreset(msg)
		case modeExport:
			return m.updateExport(msg)
		default:
			return m.updateBrowse(msg)
		}
	}
	return m, nil
}

func (m Model) updateBrowse(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		return m, tea.Quit

	case key.Matches(msg, m.keys.Up):
		if m.cursor > 0 {
			m.cursor--
		}

	case key.Matches(msg, m.keys.Down):
		if m.cursor < len(m.roles())-1 {
			m.cursor++
		}

	case key.Matches(msg, m.keys.Edit):
		m.mode = modeEditColor
		m.input.Prompt = m.SelectedRole().Key() + ": "
		m.input.SetValue(m.state.Active()[m.SelectedRole()].Hex())
		m.input.CursorEnd()
		return m, m.input.Focus()

	case key.Matches(msg, m.keys.DarkMode):
		if m.store.ToggleDarkMode() {
			return m, messages.InfoCmd("Editing dark palette")
		}
		return m, messages.InfoCmd("Editing light palette")

	case key.Matches(msg, m.keys.Random):
		m.store.GenerateHarmony()
		return m, messages.SuccessCmd("Generated %s palette", m.store.State().Harmony)

	case key.Matches(msg, m.keys.Harmony):
		next := m.store.State().Harmony.Next()
		m.store.SetHarmony(next)
		return m, messages.InfoCmd("Harmony: %s", next)

	case key.Matches(msg, m.keys.AllRoles):
		current := m.SelectedRole()
		m.showAll = !m.showAll
		m.cursor = 0
		for i, r := range m.roles() {
			if r == current {
				m.cursor = i
			}
		}

	case key.Matches(msg, m.keys.Presets):
		m.mode = modePresets
		m.filter.SetValue("")
		m.presets = m.store.Presets()
		m.presetCursor = 0
		m.setMenu(theme.MenuPresets, true)
		return m, m.filter.Focus()

	case key.Matches(msg, m.keys.SavePreset):
		m.mode = modeSavePreset
		m.input.Prompt = "preset name: "
		m.input.SetValue("")
		return m, m.input.Focus()

	case key.Matches(msg, m.keys.Export):
		m.mode = modeExport
		m.setMenu(theme.MenuExport, true)

	case key.Matches(msg, m.keys.Reset):
		m.store.Reset()
		return m, messages.InfoCmd("Reset to default theme")

	case key.Matches(msg, m.keys.Help):
		m.help.ShowAll = !m.help.ShowAll
	}
	return m, nil
}

func (m Model) updateEditColor(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Back):
		m.mode = modeBrowse
		m.input.Blur()
		return m, nil

	case key.Matches(msg, m.keys.Confirm):
		role := m.SelectedRole()
		value := strings.TrimSpace(m.input.Value())
		m.mode = modeBrowse
		m.input.Blur()
		if err := m.store.UpdateColor(role, value); err != nil {
			return m, messages.ErrorCmd("Invalid color: %v", err)
		}
		return m, messages.SuccessCmd("Set %s to %s", role.Key(), value)
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

func (m Model) updatePresets(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "esc":
		m.closePresets()
		return m, nil

	case "up":
		if m.presetCursor > 0 {
			m.presetCursor--
		}
		return m, nil

	case "down":
		if m.presetCursor < len(m.presets)-1 {
			m.presetCursor++
		}
		return m, nil

	case "enter":
		if len(m.presets) == 0 {
			return m, nil
		}
		name := m.presets[m.presetCursor].Name
		m.closePresets()
		if !m.store.SelectPreset(name) {
			return m, messages.ErrorCmd("Preset %s could not be applied", name)
		}
		return m, messages.SuccessCmd("Applied preset %s", name)
	}

	var cmd tea.Cmd
	m.filter, cmd = m.filter.Update(msg)
	m.presets = m.store.FindPresets(m.filter.Value())
	m.presetCursor = 0
	return m, cmd
}

func (m *Model) closePresets() {
	m.mode = modeBrowse
	m.filter.Blur()
	m.setMenu(theme.MenuPresets, false)
}

func (m Model) updateSavePreset(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Back):
		m.mode = modeBrowse
		m.input.Blur()
		return m, nil

	case key.Matches(msg, m.keys.Confirm):
		name := strings.TrimSpace(m.input.Value())
		m.mode = modeBrowse
		m.input.Blur()
		if err := m.store.SavePreset(name); err != nil {
			return m, messages.ErrorCmd("Save failed: %v", err)
		}
		return m, messages.SuccessCmd("Saved preset %s", name)
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

func (m Model) updateExport(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if key.Matches(msg, m.keys.Back) || key.Matches(msg, m.keys.Confirm) || key.Matches(msg, m.keys.Export) {
		m.mode = modeBrowse
		m.setMenu(theme.MenuExport, false)
	}
	return m, nil
}

func (m Model) setMenu(menu theme.Menu, open bool) {
	if err := m.store.SetMenuOpen(menu, open); err != nil {
		logging.Warn("set menu", "menu", menu, "error", err)
	}
}

func (m Model) View() string {
	st := m.state
	t := ui.FromState(st)

	var b strings.Builder
	b.WriteString(m.viewHeader(st, t))
	b.WriteString("\n\n")

	switch m.mode {
	case modePresets:
		b.WriteString(m.viewPresets(t))
	case modeExport:
		b.WriteString(m.viewExport(st, t))
	default:
		b.WriteString(m.viewRoles(st, t))
		if m.mode == modeEditColor || m.mode == modeSavePreset {
			b.WriteString("\n\n")
			b.WriteString(m.input.View())
		}
	}

	b.WriteString("\n\n")
	if msg := ui.RenderStatus(m.status, t, m.width); msg != "" {
		b.WriteString(msg)
		b.WriteString("\n")
	}
	b.WriteString(m.help.View(m.keys))
	return b.String()
}

func (m Model) viewHeader(st types.State, t *ui.Theme) string {
	modeName := "light"
	if st.DarkMode {
		modeName = "dark"
	}
	info := t.StatusBar.Render(fmt.Sprintf("%s · %s · %s · radius %s",
		st.ThemeName, modeName, st.Harmony, css.FormatRadius(st.Radius)))
	return lipgloss.JoinHorizontal(lipgloss.Top, t.AppTitle.Render("shade"), " ", info)
}

func (m Model) viewRoles(st types.State, t *ui.Theme) string {
	active := st.Active()
	roles := m.roles()

	width := 0
	for _, r := range roles {
		width = max(width, len(r.Key()))
	}

	lines := make([]string, 0, len(roles)+2)
	for i, r := range roles {
		row := ui.PaletteRow(active, r, width)
		if i == m.cursor {
			lines = append(lines, t.SelectedRow.Render("› "+row))
		} else {
			lines = append(lines, t.Row.Render("  "+row))
		}
	}
	lines = append(lines, "", t.Header.Render("charts")+" "+ui.ChartStrip(active))
	return strings.Join(lines, "\n")
}

func (m Model) viewPresets(t *ui.Theme) string {
	lines := []string{t.Header.Render("Presets"), m.filter.View(), ""}
	if len(m.presets) == 0 {
		lines = append(lines, t.StatusBar.Render("no matching presets"))
	}
	for i, p := range m.presets {
		if i == m.presetCursor {
			lines = append(lines, t.SelectedRow.Render("› "+p.Name))
		} else {
			lines = append(lines, t.Row.Render("  "+p.Name))
		}
	}
	return t.Panel.Render(strings.Join(lines, "\n"))
}

func (m Model) viewExport(st types.State, t *ui.Theme) string {
	lines := []string{t.Header.Render("Install")}
	var (
		install string
		err     error
	)
	if m.config.Token != nil {
		install, err = registry.TokenCommand(m.config.PackageManager, m.config.Token(), m.config.RegistryURL)
	} else {
		install, err = registry.Command(m.config.PackageManager, st, m.config.RegistryURL)
	}
	if err != nil {
		lines = append(lines, err.Error())
	} else {
		lines = append(lines, install)
	}
	lines = append(lines, "", t.Header.Render("CSS"), css.Generate(st, m.config.CSSFormat))
	return t.Panel.Render(strings.Join(lines, "\n"))
}
