package app

import (
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/sadopc/chatstyle/internal/config"
	"github.com/sadopc/chatstyle/internal/cssvar"
	appmsg "github.com/sadopc/chatstyle/internal/msg"
	"github.com/sadopc/chatstyle/internal/theme"
)

func keyType(k tea.KeyType) tea.KeyMsg { return tea.KeyMsg{Type: k} }

func keyRunes(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

// update sends msg and feeds every resulting message back in, the way the
// bubbletea runtime would. Commands that do not answer promptly are dropped.
func update(t *testing.T, m Model, msg tea.Msg) Model {
	t.Helper()
	next, cmd := m.Update(msg)
	m = next.(Model)
	for _, out := range drain(cmd) {
		m = update(t, m, out)
	}
	return m
}

func drain(cmd tea.Cmd) []tea.Msg {
	if cmd == nil {
		return nil
	}
	ch := make(chan tea.Msg, 1)
	go func() { ch <- cmd() }()
	var msg tea.Msg
	select {
	case msg = <-ch:
	case <-time.After(100 * time.Millisecond):
		// Status clears and cursor blinks are timers.
		return nil
	}
	switch msg := msg.(type) {
	case nil:
		return nil
	case tea.BatchMsg:
		var out []tea.Msg
		for _, c := range msg {
			out = append(out, drain(c)...)
		}
		return out
	case tea.QuitMsg:
		return nil
	}
	return []tea.Msg{msg}
}

func sized(t *testing.T, th *theme.Theme) Model {
	t.Helper()
	m := New(config.DefaultConfig(), "test", th)
	return update(t, m, tea.WindowSizeMsg{Width: 140, Height: 45})
}

func TestNew(t *testing.T) {
	m := New(nil, "default", theme.Default())

	t.Run("focuses the field list", func(t *testing.T) {
		if m.focusedPane != appmsg.PaneFields {
			t.Errorf("focusedPane = %v, want fields", m.focusedPane)
		}
	})

	t.Run("resolves immediately", func(t *testing.T) {
		if m.Declaration() == nil || m.Declaration().Len() == 0 {
			t.Fatal("no declaration after New")
		}
		if m.statusbar.Variables() != m.Declaration().Len() {
			t.Errorf("status bar count = %d, want %d", m.statusbar.Variables(), m.Declaration().Len())
		}
	})

	t.Run("takes preview and swatch from config", func(t *testing.T) {
		if m.Preview() {
			t.Error("preview should be off by default")
		}
		if !m.showSwatch {
			t.Error("swatch should be shown by default")
		}
	})

	t.Run("overlays hidden", func(t *testing.T) {
		if m.help.Visible() || m.confirm.Visible() {
			t.Error("overlays should start hidden")
		}
	})
}

func TestNew_Config(t *testing.T) {
	cfg := config.DefaultConfig()
	cfg.Preview = true
	cfg.Format = "yaml"
	cfg.Editor.ShowPreview = false
	m := New(cfg, "x", nil)

	if !m.Preview() {
		t.Error("Preview() = false, want true from config")
	}
	if m.showSwatch {
		t.Error("showSwatch = true, want false from config")
	}
	out, err := m.Result()
	if err != nil {
		t.Fatal(err)
	}
	if strings.Contains(out, "{") {
		t.Errorf("Result() looks like CSS, want YAML: %q", out)
	}
}

func TestView_Loading(t *testing.T) {
	m := New(nil, "x", nil)
	if v := m.View(); v != "Loading..." {
		t.Errorf("View() = %q before the first size message", v)
	}
}

func TestView(t *testing.T) {
	m := sized(t, theme.Get("dark"))
	v := m.View()
	for _, want := range []string{"Theme", "general.background.type", "How can I help", "Variable", "test"} {
		if !strings.Contains(v, want) {
			t.Errorf("View() missing %q", want)
		}
	}
}

func TestEdit_ReResolves(t *testing.T) {
	m := sized(t, nil)
	shadow := cssvar.Chat.Buttons.BoxShadow
	before := m.Declaration().Get(shadow)

	// Walk down to the buttons' shadow field and cycle it.
	for m.fields.Current().Path != "chat.buttons.shadow" {
		m = update(t, m, keyType(tea.KeyDown))
	}
	if m.statusbar.Variables() == 0 {
		t.Fatal("status bar lost the variable count")
	}
	// unset -> none -> sm; none encodes like unset.
	m = update(t, m, keyType(tea.KeyRight))
	m = update(t, m, keyType(tea.KeyRight))

	after := m.Declaration().Get(shadow)
	if after == before {
		t.Errorf("%s unchanged after cycling the shadow: %q", shadow, after)
	}
	if got := *m.Theme().Chat.Buttons.Shadow; got != theme.ShadowSM {
		t.Errorf("buttons shadow = %q, want sm", got)
	}
	if msg, _ := m.statusbar.Message(); !strings.Contains(msg, "chat.buttons.shadow") {
		t.Errorf("status = %q, want the edited field", msg)
	}
}

func TestTogglePreview(t *testing.T) {
	th := &theme.Theme{General: &theme.GeneralTheme{
		ProgressBar: &theme.ProgressBar{Position: theme.Ptr(theme.PositionFixed)},
	}}
	m := sized(t, th)
	pos := cssvar.General.ProgressBar.Position
	if got := m.Declaration().Get(pos); got != "fixed" {
		t.Fatalf("%s = %q, want fixed", pos, got)
	}

	m = update(t, m, keyType(tea.KeyCtrlP))
	if !m.Preview() {
		t.Fatal("ctrl+p did not enable preview mode")
	}
	if got := m.Declaration().Get(pos); got != "absolute" {
		t.Errorf("%s = %q in preview mode, want absolute", pos, got)
	}
	if m.statusbar.Mode() != appmsg.ModePreview {
		t.Errorf("status bar mode = %v", m.statusbar.Mode())
	}
}

func TestFocus(t *testing.T) {
	m := sized(t, nil)
	m = update(t, m, keyType(tea.KeyTab))
	if m.focusedPane != appmsg.PaneVars {
		t.Fatalf("focusedPane = %v after tab, want variables", m.focusedPane)
	}
	if m.fields.Focused() {
		t.Error("field list still focused")
	}
	m = update(t, m, keyType(tea.KeyShiftTab))
	if m.focusedPane != appmsg.PaneFields {
		t.Errorf("focusedPane = %v after shift+tab, want fields", m.focusedPane)
	}
}

func TestSearch_CapturesKeys(t *testing.T) {
	m := sized(t, nil)
	m = update(t, m, keyType(tea.KeyTab))
	m = update(t, m, keyRunes("/"))
	if !m.vars.Searching() {
		t.Fatal("/ did not open the search box")
	}
	// "?" is typed into the search box rather than opening help.
	m = update(t, m, keyRunes("?"))
	if m.help.Visible() {
		t.Error("help opened while searching")
	}
	if m.vars.Query() != "?" {
		t.Errorf("Query() = %q, want %q", m.vars.Query(), "?")
	}
}

func TestHelp(t *testing.T) {
	m := sized(t, nil)
	m = update(t, m, keyType(tea.KeyF1))
	if !m.help.Visible() {
		t.Fatal("f1 did not open help")
	}
	if !strings.Contains(m.View(), "Keyboard Shortcuts") {
		t.Error("View() missing the help overlay")
	}
	// Keys do not reach the panes while help is open.
	cursor := m.fields.Cursor()
	m = update(t, m, keyType(tea.KeyDown))
	if m.fields.Cursor() != cursor {
		t.Error("key reached the field list behind help")
	}
	m = update(t, m, keyType(tea.KeyEsc))
	if m.help.Visible() {
		t.Error("esc did not close help")
	}
}

func TestReset(t *testing.T) {
	m := sized(t, theme.Get("dark"))

	// Nothing to reset yet.
	m = update(t, m, keyType(tea.KeyCtrlR))
	if m.confirm.Visible() {
		t.Fatal("reset asked for confirmation on an unmodified theme")
	}

	m = update(t, m, keyType(tea.KeyRight)) // background type Color -> Image
	if !m.fields.Modified() {
		t.Fatal("edit did not mark the theme modified")
	}
	m = update(t, m, keyType(tea.KeyCtrlR))
	if !m.confirm.Visible() {
		t.Fatal("ctrl+r did not ask for confirmation")
	}
	m = update(t, m, keyType(tea.KeyEnter))
	if m.confirm.Visible() {
		t.Error("confirmation still visible")
	}
	if m.fields.Modified() {
		t.Error("theme still modified after reset")
	}
	if got := *m.Theme().General.Background.Type; got != theme.BackgroundColor {
		t.Errorf("background type = %q after reset, want Color", got)
	}
}

func TestToggleCSS(t *testing.T) {
	m := sized(t, nil)
	m = update(t, m, keyType(tea.KeyF3))
	if !m.showCSS {
		t.Fatal("f3 did not switch to the css view")
	}
	if !strings.Contains(m.View(), ":root {") {
		t.Error("View() missing the css rule")
	}
}

func TestQuit(t *testing.T) {
	m := sized(t, nil)
	next, cmd := m.Update(keyType(tea.KeyCtrlQ))
	m = next.(Model)
	if !m.quitting {
		t.Error("quitting = false after ctrl+q")
	}
	if cmd == nil {
		t.Fatal("ctrl+q returned no command")
	}
	if _, ok := cmd().(tea.QuitMsg); !ok {
		t.Error("ctrl+q did not return tea.Quit")
	}
	if m.View() != "" {
		t.Error("View() should be empty when quitting")
	}

	out, err := m.Result()
	if err != nil {
		t.Fatal(err)
	}
	if !strings.HasPrefix(out, ":root {") {
		t.Errorf("Result() = %q, want a css rule", out)
	}
}
