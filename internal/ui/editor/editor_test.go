package editor

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	appmsg "github.com/sadopc/chatstyle/internal/msg"
	"github.com/sadopc/chatstyle/internal/theme"
	"github.com/sadopc/chatstyle/internal/ui/palette"
)

func init() {
	palette.Current = palette.Default()
}

func keyType(k tea.KeyType) tea.KeyMsg { return tea.KeyMsg{Type: k} }

func keyRunes(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

// focusOn returns a focused editor over th with the cursor on path.
func focusOn(t *testing.T, th *theme.Theme, path string) Model {
	t.Helper()
	m := New(th)
	m.SetSize(80, 40)
	m.Focus()
	for i, f := range m.Fields() {
		if f.Path == path {
			m.move(i)
			return m
		}
	}
	t.Fatalf("no field %q", path)
	return m
}

func run(cmd tea.Cmd) tea.Msg {
	if cmd == nil {
		return nil
	}
	return cmd()
}

func TestNew(t *testing.T) {
	m := New(nil)
	if m.Theme() == nil {
		t.Fatal("Theme() is nil for a nil input")
	}
	if m.Modified() || m.Editing() || m.Focused() {
		t.Error("new editor should be unmodified, not editing and blurred")
	}
	if m.Cursor() != 0 {
		t.Errorf("Cursor() = %d, want 0", m.Cursor())
	}
}

func TestNew_CopiesTheme(t *testing.T) {
	src := theme.Get("dark")
	m := focusOn(t, src, "chat.buttons.shadow")
	m, _ = m.Update(keyType(tea.KeyRight))
	if *src.Chat.Buttons.Shadow != theme.ShadowSM {
		t.Errorf("source theme changed to %q", *src.Chat.Buttons.Shadow)
	}
	if *m.Theme().Chat.Buttons.Shadow != theme.ShadowMD {
		t.Errorf("edited shadow = %q, want md", *m.Theme().Chat.Buttons.Shadow)
	}
}

func TestFields_PathsUnique(t *testing.T) {
	seen := make(map[string]bool)
	for _, f := range Fields() {
		if seen[f.Path] {
			t.Errorf("duplicate field %q", f.Path)
		}
		seen[f.Path] = true
		if f.Kind == KindEnum && len(f.Options) == 0 {
			t.Errorf("enum field %q has no options", f.Path)
		}
	}
	for _, want := range []string{
		"general.background.type",
		"general.progressBar.placement",
		"chat.roundness",
		"chat.container.opacity",
		"chat.inputs.border.roundness",
	} {
		if !seen[want] {
			t.Errorf("missing field %q", want)
		}
	}
}

func TestField_SetGet(t *testing.T) {
	byPath := make(map[string]Field)
	for _, f := range Fields() {
		byPath[f.Path] = f
	}

	tests := []struct {
		path    string
		in      string
		want    string
		wantErr bool
	}{
		{"general.background.type", "Image", "Image", false},
		{"general.background.type", "Gradient", "", true},
		{"general.background.content", "  #ff0000 ", "#ff0000", false},
		{"general.font", "Lato", "Lato", false},
		{"chat.container.opacity", "0.5", "0.5", false},
		{"chat.container.blur", "ten", "", true},
		{"chat.container.opacity", "NaN", "", true},
		{"chat.container.blur", "Inf", "", true},
		{"chat.container.blur", "-inf", "", true},
		{"chat.inputs.placeholderColor", "#9095A0", "#9095A0", false},
		{"chat.hostBubbles.border.roundness", "custom", "custom", false},
	}
	for _, tt := range tests {
		t.Run(tt.path+"="+tt.in, func(t *testing.T) {
			th := &theme.Theme{}
			f := byPath[tt.path]
			err := f.Set(th, tt.in)
			if (err != nil) != tt.wantErr {
				t.Fatalf("Set(%q) error = %v, wantErr %v", tt.in, err, tt.wantErr)
			}
			got, ok := f.Get(th)
			if tt.wantErr {
				if ok {
					t.Errorf("Get() = %q after a failed Set, want unset", got)
				}
				return
			}
			if !ok || got != tt.want {
				t.Errorf("Get() = %q, %v, want %q", got, ok, tt.want)
			}
			if err := f.Set(th, ""); err != nil {
				t.Fatalf("Set(\"\") error = %v", err)
			}
			if _, ok := f.Get(th); ok {
				t.Error("field still set after Set(\"\")")
			}
		})
	}
}

func TestField_GetDoesNotAllocate(t *testing.T) {
	th := &theme.Theme{}
	for _, f := range Fields() {
		if _, ok := f.Get(th); ok {
			t.Errorf("%s reports a value on an empty theme", f.Path)
		}
	}
	if th.General != nil || th.Chat != nil {
		t.Error("Get created parent records")
	}
}

func TestField_FontKeepsRecord(t *testing.T) {
	th := &theme.Theme{General: &theme.GeneralTheme{
		Font: &theme.Font{Type: theme.FontCustom, Family: "Brand", URL: "https://x/brand.css"},
	}}
	var f Field
	for _, c := range Fields() {
		if c.Path == "general.font" {
			f = c
		}
	}
	if err := f.Set(th, "Brand Sans"); err != nil {
		t.Fatal(err)
	}
	if th.General.Font.Family != "Brand Sans" || th.General.Font.URL != "https://x/brand.css" {
		t.Errorf("font = %+v", *th.General.Font)
	}
}

func TestField_Cycle(t *testing.T) {
	th := &theme.Theme{}
	var f Field
	for _, c := range Fields() {
		if c.Path == "chat.roundness" {
			f = c
		}
	}
	want := []string{"none", "medium", "large", "custom", "", "none"}
	for i, w := range want {
		got, err := f.Cycle(th, 1)
		if err != nil {
			t.Fatal(err)
		}
		if got != w {
			t.Fatalf("step %d: Cycle() = %q, want %q", i, got, w)
		}
	}
	if got, _ := f.Cycle(th, -1); got != "" {
		t.Errorf("Cycle(-1) from none = %q, want unset", got)
	}
	if got, _ := f.Cycle(th, -1); got != "custom" {
		t.Errorf("Cycle(-1) from unset = %q, want custom", got)
	}

	text := Fields()[1]
	if _, err := text.Cycle(th, 1); err == nil {
		t.Error("Cycle on a text field should fail")
	}
}

func TestUpdate_Blurred(t *testing.T) {
	m := New(nil)
	m, cmd := m.Update(keyType(tea.KeyDown))
	if cmd != nil || m.Cursor() != 0 {
		t.Error("a blurred editor should ignore keys")
	}
}

func TestUpdate_Navigation(t *testing.T) {
	m := New(nil)
	m.SetSize(80, 10)
	m.Focus()
	last := len(m.Fields()) - 1

	steps := []struct {
		key  tea.KeyMsg
		want int
	}{
		{keyType(tea.KeyUp), 0},
		{keyType(tea.KeyDown), 1},
		{keyRunes("j"), 2},
		{keyRunes("k"), 1},
		{keyRunes("G"), last},
		{keyType(tea.KeyDown), last},
		{keyRunes("g"), 0},
	}
	for i, s := range steps {
		m, _ = m.Update(s.key)
		if m.Cursor() != s.want {
			t.Fatalf("step %d (%s): Cursor() = %d, want %d", i, s.key, m.Cursor(), s.want)
		}
		if m.Cursor() < m.offset || m.Cursor() >= m.offset+m.rows() {
			t.Fatalf("step %d: cursor %d outside window [%d, %d)", i, m.Cursor(), m.offset, m.offset+m.rows())
		}
	}
}

func TestUpdate_CycleEnum(t *testing.T) {
	m := focusOn(t, nil, "general.progressBar.placement")

	m, cmd := m.Update(keyType(tea.KeyRight))
	got, ok := run(cmd).(appmsg.FieldChangedMsg)
	if !ok {
		t.Fatalf("cmd() = %T, want FieldChangedMsg", run(cmd))
	}
	if got.Field != "general.progressBar.placement" || got.Value != "Top" {
		t.Errorf("FieldChangedMsg = %+v", got)
	}
	if !m.Modified() {
		t.Error("Modified() = false after a change")
	}

	m, cmd = m.Update(keyType(tea.KeyLeft))
	if got := run(cmd).(appmsg.FieldChangedMsg); got.Value != Unset {
		t.Errorf("cycling back = %q, want %q", got.Value, Unset)
	}
	if m.Value(m.Cursor()) != Unset {
		t.Errorf("Value() = %q, want %q", m.Value(m.Cursor()), Unset)
	}

	// Enter also cycles an enum forward.
	m, cmd = m.Update(keyType(tea.KeyEnter))
	if m.Editing() {
		t.Error("enter on an enum opened the text input")
	}
	if got := run(cmd).(appmsg.FieldChangedMsg); got.Value != "Top" {
		t.Errorf("enter = %q, want Top", got.Value)
	}
}

func TestUpdate_EditNumber(t *testing.T) {
	m := focusOn(t, nil, "chat.container.opacity")

	m, _ = m.Update(keyType(tea.KeyEnter))
	if !m.Editing() {
		t.Fatal("enter on a number field should open the input")
	}
	for _, r := range "0.4" {
		m, _ = m.Update(keyRunes(string(r)))
	}
	m, cmd := m.Update(keyType(tea.KeyEnter))
	if m.Editing() {
		t.Error("enter should commit and close the input")
	}
	got, ok := run(cmd).(appmsg.FieldChangedMsg)
	if !ok || got.Value != "0.4" {
		t.Fatalf("commit = %#v, want 0.4", run(cmd))
	}
	if o := m.Theme().Chat.Container.Opacity; o == nil || *o != 0.4 {
		t.Errorf("opacity = %v, want 0.4", o)
	}
}

func TestUpdate_EditInvalid(t *testing.T) {
	m := focusOn(t, nil, "chat.container.blur")
	m, _ = m.Update(keyType(tea.KeyEnter))
	for _, r := range "abc" {
		m, _ = m.Update(keyRunes(string(r)))
	}
	m, cmd := m.Update(keyType(tea.KeyEnter))
	e, ok := run(cmd).(appmsg.FieldErrMsg)
	if !ok {
		t.Fatalf("cmd() = %T, want FieldErrMsg", run(cmd))
	}
	if e.Field != "chat.container.blur" || e.Err == nil {
		t.Errorf("FieldErrMsg = %+v", e)
	}
	if m.Modified() {
		t.Error("a rejected value marked the editor modified")
	}
}

func TestUpdate_EditCancel(t *testing.T) {
	m := focusOn(t, theme.Get("dark"), "chat.hostBubbles.backgroundColor")
	m, _ = m.Update(keyType(tea.KeyEnter))
	if m.input.Value() != "#2D3748" {
		t.Errorf("input prefilled with %q, want the current value", m.input.Value())
	}
	m, _ = m.Update(keyRunes("x"))
	m, cmd := m.Update(keyType(tea.KeyEsc))
	if m.Editing() || cmd != nil {
		t.Error("esc should close the input without a command")
	}
	if got := m.Value(m.Cursor()); got != "#2D3748" {
		t.Errorf("value = %q after cancel", got)
	}
}

func TestUpdate_Unset(t *testing.T) {
	m := focusOn(t, theme.Get("dark"), "chat.buttons.shadow")
	m, cmd := m.Update(keyType(tea.KeyBackspace))
	if got := run(cmd).(appmsg.FieldChangedMsg); got.Value != Unset {
		t.Errorf("backspace = %q, want %q", got.Value, Unset)
	}
	if m.Theme().Chat.Buttons.Shadow != nil {
		t.Error("shadow still set")
	}
}

func TestSetTheme_ResetsModified(t *testing.T) {
	m := focusOn(t, nil, "chat.roundness")
	m, _ = m.Update(keyType(tea.KeyRight))
	m.SetTheme(theme.Get("glass"))
	if m.Modified() {
		t.Error("Modified() = true after SetTheme")
	}
	if m.Theme().Chat.Roundness != nil {
		t.Error("SetTheme kept an edit from the previous theme")
	}
}

func TestView(t *testing.T) {
	m := focusOn(t, theme.Get("dark"), "chat.buttons.shadow")
	v := m.View()
	for _, want := range []string{"Theme", "chat.buttons.shadow", "‹ sm ›", Unset} {
		if !strings.Contains(v, want) {
			t.Errorf("View() missing %q", want)
		}
	}
	m, _ = m.Update(keyType(tea.KeyRight))
	if !strings.Contains(m.View(), "Theme *") {
		t.Error("View() should mark a modified theme")
	}
}

func TestKind_String(t *testing.T) {
	tests := []struct {
		k    Kind
		want string
	}{
		{KindEnum, "enum"},
		{KindText, "text"},
		{KindNumber, "number"},
	}
	for _, tt := range tests {
		if got := tt.k.String(); got != tt.want {
			t.Errorf("Kind(%d).String() = %q, want %q", tt.k, got, tt.want)
		}
	}
}
