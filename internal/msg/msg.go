// Package msg holds the bubbletea messages shared by the editor components.
package msg

// Pane focus targets.
type Pane int

const (
	PaneFields Pane = iota
	PaneVars
)

func (p Pane) String() string {
	if p == PaneVars {
		return "variables"
	}
	return "fields"
}

// Mode is the resolution mode the editor runs the resolver in.
type Mode int

const (
	ModeLive Mode = iota
	ModePreview
)

func (m Mode) String() string {
	if m == ModePreview {
		return "preview"
	}
	return "live"
}

// ModeOf maps the resolver's preview flag to a Mode.
func ModeOf(preview bool) Mode {
	if preview {
		return ModePreview
	}
	return ModeLive
}

// FocusMsg requests a pane focus change.
type FocusMsg struct {
	Pane Pane
}

// FieldChangedMsg is sent by the field editor after it has written a new
// value into its theme. Field is the dotted path of the edited field.
type FieldChangedMsg struct {
	Field string
	Value string
}

// FieldErrMsg is sent when an edited value could not be applied.
type FieldErrMsg struct {
	Field string
	Err   error
}

// ResolvedMsg reports a finished resolution.
type ResolvedMsg struct {
	Variables int
	Mode      Mode
}

// TogglePreviewMsg flips the resolver's preview flag.
type TogglePreviewMsg struct{}

// StatusMsg updates the status bar text.
type StatusMsg struct {
	Text    string
	IsError bool
}
