package cli

import (
	"bytes"
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/renato0307/shade/internal/color"
	"github.com/renato0307/shade/internal/palette"
	"github.com/renato0307/shade/internal/share"
	"github.com/renato0307/shade/internal/store"
	"github.com/renato0307/shade/internal/theme"
	"github.com/renato0307/shade/internal/types"
)

type env struct {
	dir     string
	cfgFile string
	dbPath  string
}

func newEnv(t *testing.T, extra string) *env {
	t.Helper()
	dir := t.TempDir()
	e := &env{
		dir:     dir,
		cfgFile: filepath.Join(dir, "shade.yaml"),
		dbPath:  filepath.Join(dir, "data", "shade.db"),
	}
	cfg := fmt.Sprintf("store:\n  path: %s\nregistry:\n  base_url: https://themes.example.test/\n%s", e.dbPath, extra)
	require.NoError(t, os.WriteFile(e.cfgFile, []byte(cfg), 0o644))
	return e
}

func (e *env) run(t *testing.T, args ...string) (string, error) {
	t.Helper()
	cmd := NewRootCmd()
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs(append([]string{"--config", e.cfgFile}, args...))
	err := cmd.Execute()
	return out.String(), err
}

func (e *env) mustRun(t *testing.T, args ...string) string {
	t.Helper()
	out, err := e.run(t, args...)
	require.NoError(t, err, out)
	return out
}

// saved reads the persisted theme without going through the command tree.
func (e *env) saved(t *testing.T) types.State {
	t.Helper()
	db, err := store.New(e.dbPath)
	require.NoError(t, err)
	defer db.Close()

	st, err := theme.NewKVPersister(db).Load(context.Background())
	require.NoError(t, err)
	return st
}

func TestShow_Default(t *testing.T) {
	e := newEnv(t, "")
	out := e.mustRun(t, "show")

	assert.Contains(t, out, "theme:   default")
	assert.Contains(t, out, "mode:    light")
	assert.Contains(t, out, "radius:  0.5rem")
	assert.Contains(t, out, "291 80% 45%")
	assert.NotContains(t, out, "sidebarRing")

	all := e.mustRun(t, "show", "--all")
	assert.Contains(t, all, "sidebarRing")
}

func TestSet_PersistsAcrossRuns(t *testing.T) {
	e := newEnv(t, "")

	out := e.mustRun(t, "set", "primary", "#00ff00")
	assert.Equal(t, "primary: 120 100% 50% (#00ff00)\n", out)

	st := e.saved(t)
	assert.Equal(t, color.New(120, 100, 50), st.Light[palette.Primary])
	assert.Equal(t, types.CustomThemeName, st.ThemeName)

	assert.Contains(t, e.mustRun(t, "show"), "theme:   custom")
}

func TestSet_Errors(t *testing.T) {
	e := newEnv(t, "")

	_, err := e.run(t, "set", "shadow", "#ffffff")
	assert.Error(t, err)

	_, err = e.run(t, "set", "primary", "blue")
	assert.Error(t, err)

	_, err = e.run(t, "set", "primary")
	assert.Error(t, err)
}

func TestSet_KebabRole(t *testing.T) {
	e := newEnv(t, "")
	e.mustRun(t, "set", "--", "--chart-3", "#ff0000")
	assert.Equal(t, color.New(0, 100, 50), e.saved(t).Light[palette.Chart3])
}

func TestMode(t *testing.T) {
	e := newEnv(t, "")

	assert.Equal(t, "mode: dark\n", e.mustRun(t, "mode", "dark"))
	assert.True(t, e.saved(t).DarkMode)

	e.mustRun(t, "set", "primary", "#00ff00")
	st := e.saved(t)
	assert.Equal(t, color.New(120, 100, 50), st.Dark[palette.Primary])
	assert.Equal(t, palette.DefaultLight[palette.Primary], st.Light[palette.Primary])

	_, err := e.run(t, "mode", "sepia")
	assert.Error(t, err)
}

func TestRandom(t *testing.T) {
	e := newEnv(t, "")

	out := e.mustRun(t, "random", "--harmony", "triadic")
	assert.Contains(t, out, "harmony: triadic")
	assert.Contains(t, out, "theme:   custom")

	_, err := e.run(t, "random", "--harmony", "clashing")
	assert.Error(t, err)
}

func TestRadiusAndFonts(t *testing.T) {
	e := newEnv(t, "")

	assert.Equal(t, "radius: 1rem\n", e.mustRun(t, "radius", "1"))
	assert.Equal(t, "fonts: Lora / Inter\n", e.mustRun(t, "fonts", "Lora", " Inter "))

	st := e.saved(t)
	assert.Equal(t, 1.0, st.Radius)
	assert.Equal(t, types.Fonts{Heading: "Lora", Body: "Inter"}, st.Fonts)

	_, err := e.run(t, "radius", "-1")
	assert.Error(t, err)
	_, err = e.run(t, "radius", "wide")
	assert.Error(t, err)
	_, err = e.run(t, "fonts", "Lora", " ")
	assert.Error(t, err)
}

func TestPresets(t *testing.T) {
	e := newEnv(t, "")

	out := e.mustRun(t, "preset", "list")
	assert.Contains(t, out, "* default")
	assert.Contains(t, out, "dracula")

	e.mustRun(t, "preset", "apply", "dracula")
	assert.Equal(t, "dracula", e.saved(t).ThemeName)

	_, err := e.run(t, "preset", "apply", "nope")
	assert.Error(t, err)

	e.mustRun(t, "set", "accent", "#ff8800")
	assert.Equal(t, "saved preset mine\n", e.mustRun(t, "preset", "save", "mine"))
	_, err = e.run(t, "preset", "save", "nord")
	assert.Error(t, err, "built-in names are reserved")

	out = e.mustRun(t, "preset", "list")
	assert.Contains(t, out, "* mine")
	assert.Contains(t, out, "saved")

	assert.Contains(t, e.mustRun(t, "preset", "search", "tok"), "tokyo-night")
	assert.Equal(t, "no matching presets\n", e.mustRun(t, "preset", "search", "zzzz"))

	file := filepath.Join(e.dir, "presets.yaml")
	e.mustRun(t, "preset", "export", file)
	exported, err := theme.LoadPresetFile(file)
	require.NoError(t, err)
	require.Len(t, exported, 1)
	assert.Equal(t, "mine", exported[0].Name)

	e.mustRun(t, "preset", "delete", "mine")
	_, err = e.run(t, "preset", "delete", "mine")
	assert.Error(t, err)
	assert.Empty(t, e.saved(t).Presets)

	_, err = e.run(t, "preset", "export", file)
	assert.Error(t, err)
}

func TestPresets_FromFile(t *testing.T) {
	dir := t.TempDir()
	file := filepath.Join(dir, "team.yaml")
	require.NoError(t, os.WriteFile(file, []byte("presets:\n  - name: ocean\n    light:\n      primary: \"#0077b6\"\n"), 0o644))

	e := newEnv(t, "presets:\n  file: "+file+"\n")
	assert.Contains(t, e.mustRun(t, "preset", "list"), "ocean")

	e.mustRun(t, "preset", "apply", "ocean")
	assert.Equal(t, "ocean", e.saved(t).ThemeName)
}

func TestCSS(t *testing.T) {
	e := newEnv(t, "")

	out := e.mustRun(t, "css")
	assert.Contains(t, out, ":root {")
	assert.Contains(t, out, ".dark {")
	assert.Contains(t, out, "  --primary: 291 80% 45%;")

	assert.Contains(t, e.mustRun(t, "css", "--format", "modern"), "oklch(")

	file := filepath.Join(e.dir, "theme.css")
	assert.Equal(t, "wrote "+file+"\n", e.mustRun(t, "css", "-o", file))
	data, err := os.ReadFile(file)
	require.NoError(t, err)
	assert.Equal(t, out, string(data))

	_, err = e.run(t, "css", "--format", "rgb")
	assert.Error(t, err)
}

func TestCSS_ConfiguredFormat(t *testing.T) {
	e := newEnv(t, "css:\n  format: modern\n")
	assert.Contains(t, e.mustRun(t, "css"), "oklch(")
}

func TestCSS_OutputSink(t *testing.T) {
	sheet := filepath.Join(t.TempDir(), "vars.css")
	e := newEnv(t, "css:\n  output: "+sheet+"\n")

	e.mustRun(t, "set", "primary", "#00ff00")

	data, err := os.ReadFile(sheet)
	require.NoError(t, err)
	assert.Contains(t, string(data), "  --primary: 120 100% 50%;\n")
}

func TestShareAndImport(t *testing.T) {
	src := newEnv(t, "")
	src.mustRun(t, "mode", "dark")
	src.mustRun(t, "set", "primary", "#00ff00")
	src.mustRun(t, "radius", "0")

	token := strings.TrimSpace(src.mustRun(t, "share"))
	decoded, err := share.Decode(token)
	require.NoError(t, err)
	assert.True(t, decoded.DarkMode)

	url := strings.TrimSpace(src.mustRun(t, "share", "--url"))
	assert.Equal(t, "https://themes.example.test/r/theme.json?t="+token, url)

	dst := newEnv(t, "")
	dst.mustRun(t, "preset", "save", "keep-me")
	assert.Equal(t, "imported theme custom\n", dst.mustRun(t, "import", token))

	want := src.saved(t)
	got := dst.saved(t)
	for _, r := range palette.SeedRoles {
		assert.Equal(t, want.Dark[r], got.Dark[r], r.Key())
	}
	assert.True(t, got.DarkMode)
	assert.Zero(t, got.Radius)
	require.Len(t, got.Presets, 1)
	assert.Equal(t, "keep-me", got.Presets[0].Name)

	_, err = dst.run(t, "import", "!!!")
	assert.Error(t, err)
}

func TestInstall(t *testing.T) {
	e := newEnv(t, "")

	out := e.mustRun(t, "install")
	assert.Equal(t, "npx shadcn@latest add https://themes.example.test/r/theme.json?t=e30\n", out)

	out = e.mustRun(t, "install", "--pm", "pnpm")
	assert.True(t, strings.HasPrefix(out, "pnpm dlx shadcn@latest add "))

	_, err := e.run(t, "install", "--pm", "yarn")
	assert.Error(t, err)
}

func TestReset(t *testing.T) {
	e := newEnv(t, "")
	e.mustRun(t, "set", "primary", "#00ff00")
	e.mustRun(t, "preset", "save", "mine")

	assert.Equal(t, "theme reset to default\n", e.mustRun(t, "reset"))

	st := e.saved(t)
	assert.Equal(t, palette.DefaultLight, st.Light)
	assert.Equal(t, types.DefaultThemeName, st.ThemeName)
	assert.Len(t, st.Presets, 1)
}

func TestInvalidConfig(t *testing.T) {
	e := newEnv(t, "log:\n  level: loud\n")
	_, err := e.run(t, "show")
	assert.Error(t, err)

	_, err = (&env{cfgFile: filepath.Join(t.TempDir(), "missing.yaml")}).run(t, "show")
	assert.Error(t, err)
}

func TestShareFile_FollowsEveryChange(t *testing.T) {
	linkFile := filepath.Join(t.TempDir(), "theme.link")
	e := newEnv(t, "share:\n  file: "+linkFile+"\n")

	e.mustRun(t, "mode", "dark")
	e.mustRun(t, "set", "primary", "#00ff00")

	data, err := os.ReadFile(linkFile)
	require.NoError(t, err)
	token := strings.TrimSpace(string(data))
	assert.Equal(t, strings.TrimSpace(e.mustRun(t, "share")), token)

	decoded, err := share.Decode(token)
	require.NoError(t, err)
	assert.Equal(t, color.New(120, 100, 50), decoded.Dark[palette.Primary])
}
