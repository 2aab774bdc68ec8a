// Package varlist is the editor's table of resolved presentation variables,
// filterable with fuzzy search.
package varlist

import (
	"fmt"
	"sort"
	"strings"

	"github.com/charmbracelet/bubbles/table"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/sahilm/fuzzy"

	"github.com/sadopc/chatstyle/internal/cssvar"
	"github.com/sadopc/chatstyle/internal/style"
	"github.com/sadopc/chatstyle/internal/ui/palette"
)

// Unset is shown for a variable the last resolution did not write.
const Unset = "(unset)"

// Entry is one catalogue variable and its resolved value.
type Entry struct {
	Var   cssvar.Var
	Value string
}

// Entries pairs every catalogue variable with its value in d.
func Entries(d *style.Declaration) []Entry {
	vars := cssvar.All()
	out := make([]Entry, len(vars))
	for i, v := range vars {
		value := Unset
		if d != nil {
			if got, ok := d.Lookup(v.Name); ok {
				value = got
			}
		}
		out[i] = Entry{Var: v, Value: value}
	}
	return out
}

// searchable implements fuzzy.Source over lower-cased names and keys.
type searchable []Entry

func (s searchable) String(i int) string {
	return strings.ToLower(s[i].Var.Name + " " + s[i].Var.Key)
}
func (s searchable) Len() int { return len(s) }

// Match is an entry with the byte offsets of its name that matched a query.
type Match struct {
	Entry
	Indexes []int
}

// Mark renders the entry's name with the matched bytes styled by st.
func (m Match) Mark(st lipgloss.Style) string {
	name := m.Var.Name
	if len(m.Indexes) == 0 {
		return name
	}
	var b strings.Builder
	j := 0
	for i := 0; i < len(name); i++ {
		for j < len(m.Indexes) && m.Indexes[j] < i {
			j++
		}
		if j < len(m.Indexes) && m.Indexes[j] == i {
			b.WriteString(st.Render(name[i : i+1]))
			continue
		}
		b.WriteByte(name[i])
	}
	return b.String()
}

// Matches ranks entries by fuzzy match against query, case-insensitively.
// Ties keep catalogue order. An empty query matches everything unranked.
func Matches(query string, entries []Entry) []Match {
	query = strings.ToLower(strings.TrimSpace(query))
	if query == "" {
		out := make([]Match, len(entries))
		for i, e := range entries {
			out[i] = Match{Entry: e}
		}
		return out
	}
	found := fuzzy.FindFrom(query, searchable(entries))
	sort.SliceStable(found, func(i, j int) bool {
		return found[i].Score > found[j].Score
	})
	out := make([]Match, 0, len(found))
	for _, f := range found {
		out = append(out, Match{Entry: entries[f.Index], Indexes: f.MatchedIndexes})
	}
	return out
}

// Filter is Matches without the match positions. An empty query returns
// entries unchanged.
func Filter(query string, entries []Entry) []Entry {
	if strings.TrimSpace(query) == "" {
		return entries
	}
	ms := Matches(query, entries)
	out := make([]Entry, len(ms))
	for i, m := range ms {
		out[i] = m.Entry
	}
	return out
}

// Model is the variable table with its search box.
type Model struct {
	table     table.Model
	search    textinput.Model
	searching bool
	entries   []Entry
	filtered  []Entry
	width     int
	height    int
}

// New creates an empty variable table.
func New() Model {
	t := table.New(
		table.WithColumns(columns(80)),
		table.WithFocused(true),
		table.WithHeight(10),
	)
	ti := textinput.New()
	ti.Placeholder = "Filter variables..."
	ti.Prompt = "/ "
	ti.Width = 40

	m := Model{table: t, search: ti}
	m.applyStyles()
	return m
}

func columns(width int) []table.Column {
	nameW := width * 11 / 20
	if nameW < 20 {
		nameW = 20
	}
	valueW := width - nameW - 4
	if valueW < 10 {
		valueW = 10
	}
	return []table.Column{
		{Title: "Variable", Width: nameW},
		{Title: "Value", Width: valueW},
	}
}

func (m *Model) applyStyles() {
	p := palette.Current
	s := table.DefaultStyles()
	s.Header = p.TableHeader
	s.Cell = p.TableCell
	s.Selected = p.TableSelected
	m.table.SetStyles(s)
}

// SetDeclaration refreshes the values from d, keeping the current filter
// and, where possible, the cursor.
func (m *Model) SetDeclaration(d *style.Declaration) {
	m.entries = Entries(d)
	m.refilter()
}

func (m *Model) refilter() {
	cursor := m.table.Cursor()
	m.filtered = Filter(m.search.Value(), m.entries)
	rows := make([]table.Row, len(m.filtered))
	for i, e := range m.filtered {
		rows[i] = table.Row{e.Var.Name, e.Value}
	}
	m.table.SetRows(rows)
	if cursor >= len(rows) {
		cursor = len(rows) - 1
	}
	if cursor < 0 {
		cursor = 0
	}
	m.table.SetCursor(cursor)
}

// SetSize sets the available space.
func (m *Model) SetSize(width, height int) {
	m.width = width
	m.height = height
	m.table.SetColumns(columns(width))
	m.table.SetWidth(width)
	// Search line and count line.
	m.table.SetHeight(max(height-2, 3))
}

// Searching reports whether the search box has focus.
func (m Model) Searching() bool { return m.searching }

// Query returns the current filter text.
func (m Model) Query() string { return m.search.Value() }

// Len returns the number of rows shown.
func (m Model) Len() int { return len(m.filtered) }

// Selected returns the entry under the cursor.
func (m Model) Selected() (Entry, bool) {
	i := m.table.Cursor()
	if i < 0 || i >= len(m.filtered) {
		return Entry{}, false
	}
	return m.filtered[i], true
}

// Focus gives the table keyboard focus.
func (m *Model) Focus() { m.table.Focus() }

// Blur removes keyboard focus from the table and the search box.
func (m *Model) Blur() {
	m.table.Blur()
	m.searching = false
	m.search.Blur()
}

// Update handles key input for the table and its search box.
func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	key, ok := msg.(tea.KeyMsg)
	if !ok {
		var cmd tea.Cmd
		if m.searching {
			m.search, cmd = m.search.Update(msg)
		}
		return m, cmd
	}

	if m.searching {
		switch key.String() {
		case "esc", "enter":
			m.searching = false
			m.search.Blur()
			return m, nil
		}
		prev := m.search.Value()
		var cmd tea.Cmd
		m.search, cmd = m.search.Update(msg)
		if m.search.Value() != prev {
			m.table.SetCursor(0)
			m.refilter()
		}
		return m, cmd
	}

	switch key.String() {
	case "/":
		m.searching = true
		return m, m.search.Focus()
	case "ctrl+u":
		m.search.SetValue("")
		m.refilter()
		return m, nil
	}

	var cmd tea.Cmd
	m.table, cmd = m.table.Update(msg)
	return m, cmd
}

// View renders the search box, the table and a count line.
func (m Model) View() string {
	p := palette.Current
	search := p.MutedText.Render("/ to filter")
	if m.searching || m.search.Value() != "" {
		search = m.search.View()
	}
	count := p.MutedText.Render(fmt.Sprintf("%d of %d variables", len(m.filtered), len(m.entries)))
	return lipgloss.JoinVertical(lipgloss.Left, search, m.table.View(), count)
}
