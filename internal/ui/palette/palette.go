// Package palette provides the styling for the chatstyle terminal UI. Every
// visual element references a lipgloss.Style held in a Palette so that the
// whole look can be swapped at runtime.
package palette

import "github.com/charmbracelet/lipgloss"

// Palette holds lipgloss.Style values for every UI element.
type Palette struct {
	Name string

	// Editor chrome
	Title        lipgloss.Style
	PanelBorder  lipgloss.Style
	FocusBorder  lipgloss.Style
	FieldLabel   lipgloss.Style
	FieldValue   lipgloss.Style
	FieldCursor  lipgloss.Style
	FieldEditing lipgloss.Style
	FieldUnset   lipgloss.Style

	// CSS highlighting
	CSSSelector    lipgloss.Style
	CSSProperty    lipgloss.Style
	CSSKeyword     lipgloss.Style
	CSSNumber      lipgloss.Style
	CSSString      lipgloss.Style
	CSSComment     lipgloss.Style
	CSSPunctuation lipgloss.Style

	// Variable table
	TableHeader   lipgloss.Style
	TableCell     lipgloss.Style
	TableSelected lipgloss.Style
	MatchedRune   lipgloss.Style

	// Status bar
	StatusBar      lipgloss.Style
	StatusBarKey   lipgloss.Style
	StatusBarValue lipgloss.Style

	// General
	ErrorText   lipgloss.Style
	SuccessText lipgloss.Style
	MutedText   lipgloss.Style
}

// scheme is the handful of colours a palette is derived from.
type scheme struct {
	bg, fg, muted, border lipgloss.TerminalColor
	accent, accentAlt     lipgloss.TerminalColor
	str, num, comment     lipgloss.TerminalColor
	selection             lipgloss.TerminalColor
	errColor, okColor     lipgloss.TerminalColor
}

func build(name string, s scheme) *Palette {
	return &Palette{
		Name: name,

		Title: lipgloss.NewStyle().
			Bold(true).
			Foreground(s.accent).
			PaddingLeft(1),
		PanelBorder: lipgloss.NewStyle().
			BorderStyle(lipgloss.RoundedBorder()).
			BorderForeground(s.border),
		FocusBorder: lipgloss.NewStyle().
			BorderStyle(lipgloss.RoundedBorder()).
			BorderForeground(s.accent),
		FieldLabel: lipgloss.NewStyle().
			Foreground(s.muted),
		FieldValue: lipgloss.NewStyle().
			Foreground(s.fg),
		FieldCursor: lipgloss.NewStyle().
			Bold(true).
			Foreground(s.fg).
			Background(s.selection),
		FieldEditing: lipgloss.NewStyle().
			Bold(true).
			Foreground(s.accentAlt),
		FieldUnset: lipgloss.NewStyle().
			Italic(true).
			Foreground(s.muted),

		CSSSelector: lipgloss.NewStyle().
			Bold(true).
			Foreground(s.accentAlt),
		CSSProperty: lipgloss.NewStyle().
			Foreground(s.accent),
		CSSKeyword: lipgloss.NewStyle().
			Foreground(s.accentAlt),
		CSSNumber: lipgloss.NewStyle().
			Foreground(s.num),
		CSSString: lipgloss.NewStyle().
			Foreground(s.str),
		CSSComment: lipgloss.NewStyle().
			Italic(true).
			Foreground(s.comment),
		CSSPunctuation: lipgloss.NewStyle().
			Foreground(s.muted),

		TableHeader: lipgloss.NewStyle().
			Bold(true).
			Foreground(s.accent).
			BorderStyle(lipgloss.NormalBorder()).
			BorderBottom(true).
			BorderForeground(s.border),
		TableCell: lipgloss.NewStyle().
			Foreground(s.fg),
		TableSelected: lipgloss.NewStyle().
			Bold(true).
			Foreground(s.fg).
			Background(s.selection),
		MatchedRune: lipgloss.NewStyle().
			Underline(true).
			Foreground(s.accentAlt),

		StatusBar: lipgloss.NewStyle().
			Foreground(s.fg).
			Background(s.bg),
		StatusBarKey: lipgloss.NewStyle().
			Bold(true).
			Foreground(s.bg).
			Background(s.accent).
			PaddingLeft(1).
			PaddingRight(1),
		StatusBarValue: lipgloss.NewStyle().
			Foreground(s.fg).
			Background(s.bg).
			PaddingLeft(1).
			PaddingRight(1),

		ErrorText: lipgloss.NewStyle().
			Bold(true).
			Foreground(s.errColor),
		SuccessText: lipgloss.NewStyle().
			Foreground(s.okColor),
		MutedText: lipgloss.NewStyle().
			Foreground(s.muted),
	}
}

func newDefaultPalette() *Palette {
	return build("default", scheme{
		bg:        lipgloss.Color("#252526"),
		fg:        lipgloss.Color("#D4D4D4"),
		muted:     lipgloss.Color("#808080"),
		border:    lipgloss.Color("#3C3C3C"),
		accent:    lipgloss.Color("#569CD6"),
		accentAlt: lipgloss.Color("#DCDCAA"),
		str:       lipgloss.Color("#CE9178"),
		num:       lipgloss.Color("#B5CEA8"),
		comment:   lipgloss.Color("#6A9955"),
		selection: lipgloss.Color("#264F78"),
		errColor:  lipgloss.Color("#F44747"),
		okColor:   lipgloss.Color("#6A9955"),
	})
}

func newLightPalette() *Palette {
	return build("light", scheme{
		bg:        lipgloss.Color("#E8E8E8"),
		fg:        lipgloss.Color("#1F1F1F"),
		muted:     lipgloss.Color("#6E6E6E"),
		border:    lipgloss.Color("#C8C8C8"),
		accent:    lipgloss.Color("#0042DA"),
		accentAlt: lipgloss.Color("#AF00DB"),
		str:       lipgloss.Color("#A31515"),
		num:       lipgloss.Color("#098658"),
		comment:   lipgloss.Color("#008000"),
		selection: lipgloss.Color("#ADD6FF"),
		errColor:  lipgloss.Color("#CD3131"),
		okColor:   lipgloss.Color("#008000"),
	})
}

// newMonoPalette uses no colours at all, for terminals without colour
// support or NO_COLOR setups.
func newMonoPalette() *Palette {
	none := lipgloss.NoColor{}
	p := build("mono", scheme{
		bg: none, fg: none, muted: none, border: none,
		accent: none, accentAlt: none,
		str: none, num: none, comment: none,
		selection: none, errColor: none, okColor: none,
	})
	p.FieldCursor = p.FieldCursor.Reverse(true)
	p.TableSelected = p.TableSelected.Reverse(true)
	p.StatusBarKey = p.StatusBarKey.Reverse(true)
	return p
}

// Palettes maps palette names to their definitions.
var Palettes = map[string]*Palette{
	"default": newDefaultPalette(),
	"light":   newLightPalette(),
	"mono":    newMonoPalette(),
}

// Current is the active palette. It is initialized to Default.
var Current = Palettes["default"]

// Default returns the default dark palette.
func Default() *Palette {
	return Palettes["default"]
}

// Get returns the palette identified by name. If no palette with that name
// exists it falls back to the default palette.
func Get(name string) *Palette {
	if p, ok := Palettes[name]; ok {
		return p
	}
	return Default()
}
