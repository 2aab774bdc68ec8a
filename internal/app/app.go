// Package app is the root model of the interactive theme editor. It wires
// the field list, the variable table, the swatch preview and the status bar
// together and re-runs the resolver after every edit.
package app

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/sadopc/chatstyle/internal/config"
	"github.com/sadopc/chatstyle/internal/highlight"
	appmsg "github.com/sadopc/chatstyle/internal/msg"
	"github.com/sadopc/chatstyle/internal/preview"
	"github.com/sadopc/chatstyle/internal/resolve"
	"github.com/sadopc/chatstyle/internal/style"
	"github.com/sadopc/chatstyle/internal/theme"
	"github.com/sadopc/chatstyle/internal/ui/dialog"
	"github.com/sadopc/chatstyle/internal/ui/editor"
	"github.com/sadopc/chatstyle/internal/ui/palette"
	"github.com/sadopc/chatstyle/internal/ui/statusbar"
	"github.com/sadopc/chatstyle/internal/ui/varlist"
)

// resetMsg is sent when the reset confirmation is accepted.
type resetMsg struct{}

// Model is the root application model.
type Model struct {
	// Layout
	width  int
	height int

	// Focus
	focusedPane appmsg.Pane

	// Components
	fields    editor.Model
	vars      varlist.Model
	statusbar statusbar.Model
	help      dialog.Model
	confirm   dialog.Model
	hl        *highlight.Highlighter

	// Resolution
	original *theme.Theme
	decl     *style.Declaration
	preview  bool

	// Config
	cfg    *config.Config
	format style.Format
	keyMap KeyMap

	// State
	showSwatch bool
	showCSS    bool
	quitting   bool
}

// New creates the editor for th. source names where th came from and is
// shown in the status bar.
func New(cfg *config.Config, source string, th *theme.Theme) Model {
	if cfg == nil {
		cfg = config.DefaultConfig()
	}
	palette.Current = palette.Get(cfg.Editor.Palette)

	format, err := style.ParseFormat(cfg.Format)
	if err != nil {
		format = style.FormatCSS
	}

	km := DefaultKeyMap()
	m := Model{
		focusedPane: appmsg.PaneFields,

		fields:    editor.New(th),
		vars:      varlist.New(),
		statusbar: statusbar.New(source),
		help:      dialog.NewHelp("chatstyle - Keyboard Shortcuts", km),
		confirm: dialog.New("Reset theme", "Discard every edit and go back to the loaded theme?",
			dialog.Button{Label: "Reset", Action: func() tea.Msg { return resetMsg{} }},
			dialog.Button{Label: "Cancel", Action: func() tea.Msg { return nil }},
		),
		hl: highlight.New(),

		original: th,
		preview:  cfg.Preview,

		cfg:    cfg,
		format: format,
		keyMap: km,

		showSwatch: cfg.Editor.ShowPreview,
	}
	m.fields.Focus()
	m.vars.Blur()
	m.resolve()
	return m
}

// Init initializes the application.
func (m Model) Init() tea.Cmd {
	return nil
}

// resolve runs the resolver over the edited theme into a fresh declaration.
func (m *Model) resolve() {
	m.decl = resolve.Resolve(m.fields.Theme(), m.preview)
	m.vars.SetDeclaration(m.decl)
	m.statusbar, _ = m.statusbar.Update(appmsg.ResolvedMsg{
		Variables: m.decl.Len(),
		Mode:      appmsg.ModeOf(m.preview),
	})
	m.statusbar.SetField(m.fields.Current().Path)
	m.updateLayout()
}

// Update handles all messages.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmds []tea.Cmd

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.updateLayout()
		return m, nil

	case tea.KeyMsg:
		// Confirmation takes priority
		if m.confirm.Visible() {
			var cmd tea.Cmd
			m.confirm, cmd = m.confirm.Update(msg)
			return m, cmd
		}

		// Help overlay consumes all keys; it closes itself
		if m.help.Visible() {
			m.help, _ = m.help.Update(msg)
			return m, nil
		}

		if key.Matches(msg, m.keyMap.Quit) {
			m.quitting = true
			return m, tea.Quit
		}

		// An open text input gets every other key
		if !m.capturing() {
			if cmd, ok := m.handleGlobalKeys(msg); ok {
				return m, cmd
			}
		}

		cmds = append(cmds, m.handleFocusedPaneKey(msg))

	case appmsg.FieldChangedMsg:
		m.resolve()
		var cmd tea.Cmd
		m.statusbar, cmd = m.statusbar.Update(msg)
		cmds = append(cmds, cmd)

	case appmsg.FieldErrMsg:
		var cmd tea.Cmd
		m.statusbar, cmd = m.statusbar.Update(msg)
		cmds = append(cmds, cmd)

	case appmsg.TogglePreviewMsg:
		m.preview = !m.preview
		m.resolve()
		var cmd tea.Cmd
		m.statusbar, cmd = m.statusbar.Update(appmsg.StatusMsg{
			Text: fmt.Sprintf("Resolving in %s mode", appmsg.ModeOf(m.preview)),
		})
		cmds = append(cmds, cmd)

	case appmsg.FocusMsg:
		m.setFocus(msg.Pane)

	case resetMsg:
		m.fields.SetTheme(m.original)
		m.resolve()
		var cmd tea.Cmd
		m.statusbar, cmd = m.statusbar.Update(appmsg.StatusMsg{Text: "Theme reset"})
		cmds = append(cmds, cmd)

	case appmsg.StatusMsg, statusbar.ClearStatusMsg:
		var cmd tea.Cmd
		m.statusbar, cmd = m.statusbar.Update(msg)
		cmds = append(cmds, cmd)

	default:
		// Cursor blink and other component ticks
		cmds = append(cmds, m.handleFocusedPaneKey(msg))
	}

	return m, tea.Batch(cmds...)
}

// capturing reports whether the focused pane has a text input open.
func (m Model) capturing() bool {
	switch m.focusedPane {
	case appmsg.PaneFields:
		return m.fields.Editing()
	case appmsg.PaneVars:
		return m.vars.Searching()
	}
	return false
}

func (m *Model) handleGlobalKeys(msg tea.KeyMsg) (tea.Cmd, bool) {
	km := m.keyMap
	switch {
	case key.Matches(msg, km.Help):
		m.help.Show()
		return nil, true

	case key.Matches(msg, km.FocusNext), key.Matches(msg, km.FocusPrev):
		// Two panes, so either direction toggles.
		next := appmsg.PaneVars
		if m.focusedPane == appmsg.PaneVars {
			next = appmsg.PaneFields
		}
		m.setFocus(next)
		return nil, true

	case key.Matches(msg, km.FocusFields):
		m.setFocus(appmsg.PaneFields)
		return nil, true

	case key.Matches(msg, km.FocusVars):
		m.setFocus(appmsg.PaneVars)
		return nil, true

	case key.Matches(msg, km.TogglePreview):
		return func() tea.Msg { return appmsg.TogglePreviewMsg{} }, true

	case key.Matches(msg, km.ToggleSwatch):
		m.showSwatch = !m.showSwatch
		m.updateLayout()
		return nil, true

	case key.Matches(msg, km.ToggleCSS):
		m.showCSS = !m.showCSS
		return nil, true

	case key.Matches(msg, km.Reset):
		if m.fields.Modified() {
			m.confirm.Show()
		}
		return nil, true
	}
	return nil, false
}

func (m *Model) handleFocusedPaneKey(msg tea.Msg) tea.Cmd {
	var cmd tea.Cmd
	switch m.focusedPane {
	case appmsg.PaneFields:
		m.fields, cmd = m.fields.Update(msg)
		m.statusbar.SetField(m.fields.Current().Path)
	case appmsg.PaneVars:
		m.vars, cmd = m.vars.Update(msg)
	}
	return cmd
}

func (m *Model) setFocus(pane appmsg.Pane) {
	switch m.focusedPane {
	case appmsg.PaneFields:
		m.fields.Blur()
	case appmsg.PaneVars:
		m.vars.Blur()
	}

	m.focusedPane = pane
	m.statusbar, _ = m.statusbar.Update(appmsg.FocusMsg{Pane: pane})

	switch pane {
	case appmsg.PaneFields:
		m.fields.Focus()
	case appmsg.PaneVars:
		m.vars.Focus()
	}
}

// columns splits the width between the field list and the right column.
func (m Model) columns() (left, right int) {
	left = max(m.width*2/5, 30)
	right = max(m.width-left, 24)
	return left, right
}

func (m Model) mainHeight() int {
	return max(m.height-1, 3)
}

// swatch renders the preview for the right column, or "" when hidden.
func (m Model) swatch() string {
	if !m.showSwatch {
		return ""
	}
	_, right := m.columns()
	return preview.Render(m.decl, right)
}

func (m *Model) updateLayout() {
	if m.width == 0 || m.height == 0 {
		return
	}
	left, right := m.columns()
	mainH := m.mainHeight()

	m.statusbar.SetSize(m.width)
	m.help.SetSize(m.width, m.height)
	m.confirm.SetSize(m.width, m.height)
	m.fields.SetSize(left, mainH)

	varsH := mainH
	if sw := m.swatch(); sw != "" {
		varsH -= lipgloss.Height(sw)
	}
	m.vars.SetSize(right, max(varsH, 3))
}

// cssView renders the highlighted export of the current declaration.
func (m Model) cssView(width, height int) string {
	var buf bytes.Buffer
	if err := style.WriteCSS(&buf, m.decl, m.cfg.Selector); err != nil {
		return palette.Current.ErrorText.Render(err.Error())
	}
	lines := strings.Split(m.hl.Highlight(buf.String(), palette.Current), "\n")
	if len(lines) > height {
		lines = lines[:height]
	}
	return lipgloss.NewStyle().MaxWidth(width).Render(strings.Join(lines, "\n"))
}

// View renders the entire application.
func (m Model) View() string {
	if m.quitting {
		return ""
	}
	if m.width == 0 || m.height == 0 {
		return "Loading..."
	}

	status := m.statusbar.View()
	_, right := m.columns()
	mainH := m.mainHeight()

	var column []string
	sw := m.swatch()
	if sw != "" {
		column = append(column, sw)
	}
	if m.showCSS {
		column = append(column, m.cssView(right, max(mainH-lipgloss.Height(sw), 3)))
	} else {
		column = append(column, m.vars.View())
	}

	content := lipgloss.JoinHorizontal(lipgloss.Top,
		m.fields.View(),
		lipgloss.JoinVertical(lipgloss.Left, column...),
	)
	view := lipgloss.JoinVertical(lipgloss.Left, content, status)

	if m.help.Visible() {
		view = m.help.Overlay(view)
	}
	if m.confirm.Visible() {
		view = m.confirm.Overlay(view)
	}
	return view
}

// Declaration returns the declaration of the last resolution.
func (m Model) Declaration() *style.Declaration {
	return m.decl
}

// Theme returns the edited theme.
func (m Model) Theme() *theme.Theme {
	return m.fields.Theme()
}

// Preview reports whether the resolver runs in preview mode.
func (m Model) Preview() bool {
	return m.preview
}

// Result exports the last resolution in the configured format and
// selector.
func (m Model) Result() (string, error) {
	var buf bytes.Buffer
	if err := style.Write(&buf, m.decl, m.format, m.cfg.Selector); err != nil {
		return "", fmt.Errorf("export %s: %w", m.format, err)
	}
	return buf.String(), nil
}
