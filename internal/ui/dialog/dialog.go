// Package dialog is a modal overlay used for the key help screen and for
// confirmations.
package dialog

import (
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/sadopc/chatstyle/internal/ui/palette"
)

// DefaultWidth is the box width of a confirmation dialog.
const DefaultWidth = 60

// Button is a choice in a confirmation. A nil Action leaves the dialog open.
type Button struct {
	Label  string
	Action func() tea.Msg
}

type keyMap struct {
	prev, next, choose, close key.Binding
}

var keys = keyMap{
	prev:   key.NewBinding(key.WithKeys("left", "shift+tab")),
	next:   key.NewBinding(key.WithKeys("right", "tab")),
	choose: key.NewBinding(key.WithKeys("enter")),
	close:  key.NewBinding(key.WithKeys("esc", "q", "?", "f1")),
}

// Model is a modal box with a title, a body and optional buttons.
type Model struct {
	title   string
	body    string
	buttons []Button
	cursor  int
	open    bool
	screenW int
	boxW    int
}

// New returns a hidden dialog.
func New(title, body string, buttons ...Button) Model {
	return Model{title: title, body: body, buttons: buttons, boxW: DefaultWidth}
}

// NewHelp returns a dialog listing every binding of km, one column per group.
func NewHelp(title string, km help.KeyMap) Model {
	h := help.New()
	p := palette.Current
	h.Styles.FullKey = p.CSSProperty.Bold(true)
	h.Styles.FullDesc = p.FieldValue
	h.Styles.FullSeparator = p.MutedText
	h.FullSeparator = "    "
	m := New(title, h.FullHelpView(km.FullHelp()))
	m.boxW = 80
	return m
}

// Update moves between buttons and runs the chosen one. Without buttons,
// enter dismisses the dialog.
func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	k, ok := msg.(tea.KeyMsg)
	if !m.open || !ok {
		return m, nil
	}

	switch {
	case key.Matches(k, keys.prev):
		m.cursor = max(m.cursor-1, 0)
	case key.Matches(k, keys.next):
		m.cursor = min(m.cursor+1, max(len(m.buttons)-1, 0))
	case key.Matches(k, keys.choose):
		if len(m.buttons) == 0 {
			m.open = false
			return m, nil
		}
		if action := m.buttons[m.cursor].Action; action != nil {
			m.open = false
			return m, action
		}
	case key.Matches(k, keys.close):
		m.open = false
	}
	return m, nil
}

func (m Model) footer(p *palette.Palette) string {
	if len(m.buttons) == 0 {
		return p.MutedText.Render("Press ? / F1 / Esc to close")
	}
	labels := make([]string, len(m.buttons))
	for i, b := range m.buttons {
		st := p.FieldValue
		if i == m.cursor {
			st = p.FieldCursor
		}
		labels[i] = st.Render(" " + b.Label + " ")
	}
	return lipgloss.PlaceHorizontal(m.boxW-4, lipgloss.Center,
		lipgloss.JoinHorizontal(lipgloss.Center, labels...))
}

// View renders the box, or nothing while hidden.
func (m Model) View() string {
	if !m.open {
		return ""
	}
	p := palette.Current
	body := lipgloss.NewStyle().Width(m.boxW - 4).Render(m.body)
	return p.FocusBorder.Padding(0, 1).Render(
		lipgloss.JoinVertical(lipgloss.Left, p.Title.Render(m.title), "", body, "", m.footer(p)),
	)
}

// Show opens the dialog with the first button selected.
func (m *Model) Show() {
	m.open = true
	m.cursor = 0
}

func (m *Model) Hide() { m.open = false }

func (m Model) Visible() bool { return m.open }

// SetSize records the screen width used for centering and narrows the box
// to fit it. The height is unused; Overlay centers on the background.
func (m *Model) SetSize(width, _ int) {
	m.screenW = width
	m.boxW = min(m.boxW, width-4)
}

// Overlay draws the dialog centered over background.
func (m Model) Overlay(background string) string {
	if !m.open {
		return background
	}

	box := m.View()
	rows := strings.Split(background, "\n")
	boxRows := strings.Split(box, "\n")
	top := max((len(rows)-len(boxRows))/2, 0)
	indent := strings.Repeat(" ", max((m.screenW-lipgloss.Width(box))/2, 0))

	// Background rows may carry escape codes, so the box replaces whole
	// rows instead of splicing into them.
	for i, r := range boxRows {
		if top+i >= len(rows) {
			break
		}
		rows[top+i] = indent + r
	}
	return strings.Join(rows, "\n")
}
