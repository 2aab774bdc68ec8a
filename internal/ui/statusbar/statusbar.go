package statusbar

import (
	"fmt"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	appmsg "github.com/sadopc/chatstyle/internal/msg"
	"github.com/sadopc/chatstyle/internal/ui/palette"
)

// ClearAfter is how long a status message stays before the key hints return.
const ClearAfter = 5 * time.Second

// ClearStatusMsg is sent after a timeout to revert the status bar to key hints.
type ClearStatusMsg struct{}

// Model is the status bar component.
type Model struct {
	width     int
	source    string
	mode      appmsg.Mode
	pane      appmsg.Pane
	variables int
	field     string
	message   string
	isError   bool
}

// New creates a status bar for a theme loaded from source, a file path or a
// preset name.
func New(source string) Model {
	return Model{source: source}
}

// Init returns no initial command.
func (m Model) Init() tea.Cmd {
	return nil
}

// Update handles status bar messages.
func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	clearAfter := func() tea.Cmd {
		return tea.Tick(ClearAfter, func(time.Time) tea.Msg {
			return ClearStatusMsg{}
		})
	}

	switch msg := msg.(type) {
	case appmsg.ResolvedMsg:
		m.variables = msg.Variables
		m.mode = msg.Mode

	case appmsg.FocusMsg:
		m.pane = msg.Pane

	case appmsg.FieldChangedMsg:
		m.field = msg.Field
		m.message = fmt.Sprintf("%s = %s", msg.Field, msg.Value)
		m.isError = false
		return m, clearAfter()

	case appmsg.FieldErrMsg:
		m.field = msg.Field
		if msg.Err != nil {
			m.message = msg.Err.Error()
		} else {
			m.message = "invalid value"
		}
		m.isError = true
		return m, clearAfter()

	case appmsg.StatusMsg:
		m.message = msg.Text
		m.isError = msg.IsError
		return m, clearAfter()

	case ClearStatusMsg:
		m.message = ""
		m.isError = false
	}

	return m, nil
}

// View renders the status bar.
func (m Model) View() string {
	if m.width == 0 {
		return ""
	}

	p := palette.Current

	// Left section: where the theme came from
	left := p.StatusBarKey.Render(" " + truncate(m.source, m.width/4) + " ")

	// Center section: message or key hints
	var center string
	if m.message != "" {
		if m.isError {
			center = p.ErrorText.Render(" " + truncate(m.message, m.width/2) + " ")
		} else {
			center = p.SuccessText.Render(" " + truncate(m.message, m.width/2) + " ")
		}
	} else {
		hintKey := p.StatusBarValue
		hintSep := p.StatusBar
		center = hintKey.Render("←/→") +
			hintSep.Render(" Cycle ") +
			hintKey.Render("Enter") +
			hintSep.Render(" Edit ") +
			hintKey.Render("Tab") +
			hintSep.Render(" Switch pane ") +
			hintKey.Render("F1") +
			hintSep.Render(" Help ")
	}

	// Right section: mode, variable count, field
	right := p.StatusBarKey.Render(fmt.Sprintf(" %s ", m.mode)) +
		p.StatusBarValue.Render(fmt.Sprintf(" %d vars ", m.variables))
	if m.field != "" && m.pane == appmsg.PaneFields {
		right += p.StatusBarValue.Render(" " + truncate(m.field, m.width/4) + " ")
	}

	leftW := lipgloss.Width(left)
	centerW := lipgloss.Width(center)
	rightW := lipgloss.Width(right)
	gap := m.width - leftW - centerW - rightW
	if gap < 0 {
		gap = 0
	}

	leftGap := gap / 2
	rightGap := gap - leftGap

	bar := left +
		p.StatusBar.Render(strings.Repeat(" ", leftGap)) +
		center +
		p.StatusBar.Render(strings.Repeat(" ", rightGap)) +
		right

	return p.StatusBar.Width(m.width).Render(bar)
}

// SetSize sets the status bar width.
func (m *Model) SetSize(width int) {
	m.width = width
}

// SetField records the field under the cursor.
func (m *Model) SetField(field string) {
	m.field = field
}

// Message returns the status text being shown, if any.
func (m Model) Message() (string, bool) {
	return m.message, m.isError
}

// Mode returns the mode of the last resolution.
func (m Model) Mode() appmsg.Mode {
	return m.mode
}

// Variables returns the variable count of the last resolution.
func (m Model) Variables() int {
	return m.variables
}

func truncate(s string, maxLen int) string {
	if maxLen <= 3 {
		return s
	}
	r := []rune(s)
	if len(r) > maxLen {
		return string(r[:maxLen-3]) + "..."
	}
	return s
}
