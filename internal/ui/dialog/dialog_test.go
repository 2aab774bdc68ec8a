package dialog

import (
	"strings"
	"testing"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/sadopc/chatstyle/internal/ui/palette"
)

func init() {
	palette.Current = palette.Default()
}

type testActionMsg struct {
	label string
}

type testKeyMap struct {
	cycle, quit key.Binding
}

func (k testKeyMap) ShortHelp() []key.Binding { return []key.Binding{k.quit} }
func (k testKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{{k.cycle}, {k.quit}}
}

func confirm() Model {
	return New("Reset theme?", "Discard every edit?",
		Button{Label: "Reset", Action: func() tea.Msg { return testActionMsg{label: "reset"} }},
		Button{Label: "Cancel", Action: func() tea.Msg { return testActionMsg{label: "cancel"} }},
	)
}

func TestNew(t *testing.T) {
	d := confirm()
	if d.Visible() {
		t.Fatal("expected dialog to be hidden initially")
	}
	if len(d.buttons) != 2 {
		t.Fatalf("expected 2 buttons, got %d", len(d.buttons))
	}
	if d.boxW != DefaultWidth {
		t.Fatalf("boxW = %d, want %d", d.boxW, DefaultWidth)
	}
}

func TestShowHide(t *testing.T) {
	d := confirm()
	d.cursor = 1
	d.Show()
	if !d.Visible() || d.cursor != 0 {
		t.Fatalf("Show(): visible=%v cursor=%d, want true 0", d.Visible(), d.cursor)
	}
	d.Hide()
	if d.Visible() {
		t.Fatal("expected hidden after Hide()")
	}
}

func TestUpdate_NotVisible(t *testing.T) {
	d := confirm()
	if _, cmd := d.Update(tea.KeyMsg{Type: tea.KeyEnter}); cmd != nil {
		t.Fatal("expected nil cmd when dialog not visible")
	}
}

func TestUpdate_Navigation(t *testing.T) {
	tests := []struct {
		key  tea.KeyType
		want int
	}{
		{tea.KeyLeft, 0},
		{tea.KeyRight, 1},
		{tea.KeyRight, 1},
		{tea.KeyShiftTab, 0},
		{tea.KeyTab, 1},
	}
	d := confirm()
	d.Show()
	for i, tt := range tests {
		d, _ = d.Update(tea.KeyMsg{Type: tt.key})
		if d.cursor != tt.want {
			t.Fatalf("step %d (%v): cursor = %d, want %d", i, tt.key, d.cursor, tt.want)
		}
	}
}

func TestUpdate_Enter(t *testing.T) {
	tests := []struct {
		name  string
		moves int
		want  string
	}{
		{"first button", 0, "reset"},
		{"second button", 1, "cancel"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d := confirm()
			d.Show()
			for i := 0; i < tt.moves; i++ {
				d, _ = d.Update(tea.KeyMsg{Type: tea.KeyRight})
			}
			d, cmd := d.Update(tea.KeyMsg{Type: tea.KeyEnter})
			if d.Visible() {
				t.Fatal("expected dialog hidden after enter")
			}
			if cmd == nil {
				t.Fatal("expected cmd from enter")
			}
			got, ok := cmd().(testActionMsg)
			if !ok || got.label != tt.want {
				t.Fatalf("cmd() = %#v, want action %q", got, tt.want)
			}
		})
	}
}

func TestUpdate_Enter_NilAction(t *testing.T) {
	d := New("Test", "body", Button{Label: "OK"})
	d.Show()
	d, cmd := d.Update(tea.KeyMsg{Type: tea.KeyEnter})
	if cmd != nil {
		t.Fatal("expected nil cmd when action is nil")
	}
	if !d.Visible() {
		t.Fatal("a button without an action should leave the dialog open")
	}
}

func TestUpdate_CloseKeys(t *testing.T) {
	keys := []tea.KeyMsg{
		{Type: tea.KeyEscape},
		{Type: tea.KeyRunes, Runes: []rune("q")},
		{Type: tea.KeyRunes, Runes: []rune("?")},
		{Type: tea.KeyF1},
	}
	for _, k := range keys {
		d := confirm()
		d.Show()
		d, _ = d.Update(k)
		if d.Visible() {
			t.Errorf("%q did not close the dialog", k.String())
		}
	}
}

func TestView(t *testing.T) {
	d := confirm()
	if v := d.View(); v != "" {
		t.Fatalf("expected empty view when hidden, got %q", v)
	}
	d.Show()
	v := d.View()
	for _, want := range []string{"Reset theme?", "Discard every edit?", "Reset", "Cancel"} {
		if !strings.Contains(v, want) {
			t.Errorf("View() missing %q", want)
		}
	}
}

func TestNewHelp(t *testing.T) {
	km := testKeyMap{
		cycle: key.NewBinding(key.WithKeys("right"), key.WithHelp("→", "next value")),
		quit:  key.NewBinding(key.WithKeys("ctrl+q"), key.WithHelp("ctrl+q", "quit")),
	}
	d := NewHelp("Keys", km)
	if len(d.buttons) != 0 {
		t.Fatalf("help dialog has %d buttons, want 0", len(d.buttons))
	}
	d.Show()
	v := d.View()
	for _, want := range []string{"Keys", "next value", "ctrl+q", "Esc to close"} {
		if !strings.Contains(v, want) {
			t.Errorf("View() missing %q", want)
		}
	}

	// With no buttons, enter dismisses the dialog.
	d, cmd := d.Update(tea.KeyMsg{Type: tea.KeyEnter})
	if d.Visible() || cmd != nil {
		t.Errorf("enter: visible=%v cmd=%v, want hidden and nil", d.Visible(), cmd != nil)
	}
}

func TestOverlay(t *testing.T) {
	d := confirm()
	bg := strings.TrimSuffix(strings.Repeat(strings.Repeat(" ", 80)+"\n", 24), "\n")
	if got := d.Overlay(bg); got != bg {
		t.Fatal("expected background unchanged when hidden")
	}

	d.SetSize(80, 24)
	d.Show()
	got := d.Overlay(bg)
	if got == bg {
		t.Fatal("expected overlay to modify background content")
	}
	if n := strings.Count(got, "\n"); n != 23 {
		t.Errorf("overlay has %d newlines, want 23", n)
	}
	if !strings.Contains(got, "Reset theme?") {
		t.Error("overlay missing dialog title")
	}
}

func TestSetSize(t *testing.T) {
	tests := []struct {
		width   int
		wantBox int
	}{
		{40, 36},
		{200, DefaultWidth},
	}
	for _, tt := range tests {
		d := confirm()
		d.SetSize(tt.width, 20)
		if d.screenW != tt.width {
			t.Errorf("SetSize(%d): screenW=%d", tt.width, d.screenW)
		}
		if d.boxW != tt.wantBox {
			t.Errorf("SetSize(%d): boxW=%d, want %d", tt.width, d.boxW, tt.wantBox)
		}
	}
}

func TestUpdate_IgnoresNonKeys(t *testing.T) {
	d := confirm()
	d.Show()
	d, cmd := d.Update(tea.WindowSizeMsg{Width: 10, Height: 10})
	if !d.Visible() || cmd != nil {
		t.Errorf("WindowSizeMsg: visible=%v cmd=%v, want open and nil", d.Visible(), cmd != nil)
	}
}
