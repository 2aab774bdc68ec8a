// Package editor is the field list of the interactive theme editor. It owns
// a private copy of the theme and writes every edit into it; callers re-run
// the resolver when it reports a change.
package editor

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	appmsg "github.com/sadopc/chatstyle/internal/msg"
	"github.com/sadopc/chatstyle/internal/theme"
	"github.com/sadopc/chatstyle/internal/ui/palette"
)

// Unset is shown for a field the theme leaves to the defaults.
const Unset = "(unset)"

// Model is a Bubble Tea component listing the editable fields of a theme.
// Enum fields cycle in place; text and number fields open a text input.
type Model struct {
	fields   []Field
	theme    *theme.Theme
	cursor   int
	offset   int
	input    textinput.Model
	editing  bool
	focused  bool
	modified bool
	width    int
	height   int
}

// New creates an editor over a copy of th. A nil theme starts empty.
func New(th *theme.Theme) Model {
	ti := textinput.New()
	ti.Prompt = ""
	ti.CharLimit = 256

	m := Model{fields: Fields(), input: ti}
	m.SetTheme(th)
	return m
}

// Init returns no initial command.
func (m Model) Init() tea.Cmd {
	return nil
}

// SetTheme replaces the edited theme with a copy of th and clears the
// modification flag.
func (m *Model) SetTheme(th *theme.Theme) {
	if th == nil {
		th = &theme.Theme{}
	}
	m.theme = theme.Clone(th)
	if m.theme == nil {
		m.theme = &theme.Theme{}
	}
	m.modified = false
	m.editing = false
	m.input.Blur()
}

// Theme returns the edited theme. Callers must not modify it.
func (m Model) Theme() *theme.Theme {
	return m.theme
}

// Fields returns the editable fields in display order.
func (m Model) Fields() []Field {
	return m.fields
}

// Cursor returns the index of the selected field.
func (m Model) Cursor() int {
	return m.cursor
}

// Current returns the selected field.
func (m Model) Current() Field {
	return m.fields[m.cursor]
}

// Value returns the display value of field i.
func (m Model) Value(i int) string {
	v, ok := m.fields[i].Get(m.theme)
	if !ok {
		return Unset
	}
	return v
}

// Editing reports whether a text input is open.
func (m Model) Editing() bool {
	return m.editing
}

// Modified reports whether any field has changed since the last SetTheme.
func (m Model) Modified() bool {
	return m.modified
}

// Update handles navigation, cycling and text editing.
func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	if !m.focused {
		return m, nil
	}
	key, ok := msg.(tea.KeyMsg)
	if !ok {
		if m.editing {
			var cmd tea.Cmd
			m.input, cmd = m.input.Update(msg)
			return m, cmd
		}
		return m, nil
	}

	if m.editing {
		switch key.String() {
		case "enter":
			m.editing = false
			m.input.Blur()
			return m, m.apply(m.input.Value())
		case "esc":
			m.editing = false
			m.input.Blur()
			return m, nil
		}
		var cmd tea.Cmd
		m.input, cmd = m.input.Update(msg)
		return m, cmd
	}

	switch key.String() {
	case "up", "k":
		m.move(-1)
	case "down", "j":
		m.move(1)
	case "home", "g":
		m.move(-len(m.fields))
	case "end", "G":
		m.move(len(m.fields))
	case "left", "h":
		return m, m.cycle(-1)
	case "right", "l":
		return m, m.cycle(1)
	case "enter":
		f := m.Current()
		if f.Kind == KindEnum {
			return m, m.cycle(1)
		}
		v, _ := f.Get(m.theme)
		m.input.SetValue(v)
		m.input.CursorEnd()
		m.editing = true
		return m, m.input.Focus()
	case "backspace", "delete":
		return m, m.apply("")
	}
	return m, nil
}

func (m *Model) move(delta int) {
	m.cursor = min(max(m.cursor+delta, 0), len(m.fields)-1)
	m.scroll()
}

func (m *Model) scroll() {
	rows := m.rows()
	if m.cursor < m.offset {
		m.offset = m.cursor
	}
	if m.cursor >= m.offset+rows {
		m.offset = m.cursor - rows + 1
	}
}

func (m *Model) cycle(dir int) tea.Cmd {
	f := m.Current()
	if f.Kind != KindEnum {
		return nil
	}
	v, err := f.Cycle(m.theme, dir)
	return m.report(f, v, err)
}

func (m *Model) apply(v string) tea.Cmd {
	f := m.Current()
	err := f.Set(m.theme, v)
	v, _ = f.Get(m.theme)
	return m.report(f, v, err)
}

func (m *Model) report(f Field, v string, err error) tea.Cmd {
	if err != nil {
		return func() tea.Msg { return appmsg.FieldErrMsg{Field: f.Path, Err: err} }
	}
	m.modified = true
	if v == "" {
		v = Unset
	}
	return func() tea.Msg { return appmsg.FieldChangedMsg{Field: f.Path, Value: v} }
}

// rows is the number of field lines that fit inside the border and title.
func (m Model) rows() int {
	return max(m.height-3, 1)
}

// View renders the field list inside a border.
func (m Model) View() string {
	p := palette.Current

	border := p.PanelBorder
	if m.focused {
		border = p.FocusBorder
	}

	innerW := max(m.width-2, 20)
	labelW := 0
	for _, f := range m.fields {
		labelW = max(labelW, len(f.Path))
	}
	labelW = min(labelW, innerW*3/5)

	var b strings.Builder
	title := "Theme"
	if m.modified {
		title += " *"
	}
	b.WriteString(p.Title.Render(title))

	end := min(m.offset+m.rows(), len(m.fields))
	for i := m.offset; i < end; i++ {
		f := m.fields[i]
		label := fmt.Sprintf("%-*s", labelW, truncate(f.Path, labelW))

		var value string
		switch {
		case i == m.cursor && m.editing:
			value = p.FieldEditing.Render(m.input.View())
		default:
			v, ok := f.Get(m.theme)
			switch {
			case !ok:
				value = p.FieldUnset.Render(Unset)
			case f.Kind == KindEnum:
				value = p.FieldValue.Render("‹ " + v + " ›")
			default:
				value = p.FieldValue.Render(v)
			}
		}

		labelStyle := p.FieldLabel
		if i == m.cursor && m.focused && !m.editing {
			labelStyle = p.FieldCursor
		}
		line := lipgloss.JoinHorizontal(lipgloss.Top, labelStyle.Render(label), " ", value)
		b.WriteString("\n")
		b.WriteString(lipgloss.NewStyle().MaxWidth(innerW).Render(line))
	}

	return border.
		Width(innerW).
		Height(max(m.height-2, 1)).
		Render(b.String())
}

// SetSize updates the editor dimensions, border included.
func (m *Model) SetSize(w, h int) {
	m.width = w
	m.height = h
	m.input.Width = max(w/3, 10)
	m.scroll()
}

// Focus gives input focus to the editor.
func (m *Model) Focus() {
	m.focused = true
}

// Blur removes input focus and closes any open text input.
func (m *Model) Blur() {
	m.focused = false
	m.editing = false
	m.input.Blur()
}

// Focused reports whether the editor currently has input focus.
func (m Model) Focused() bool {
	return m.focused
}

func truncate(s string, n int) string {
	if n <= 1 || len(s) <= n {
		return s
	}
	return s[:n-1] + "…"
}
