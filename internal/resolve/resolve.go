// Package resolve turns a partially specified theme into the flat set of
// presentation variables listed in package cssvar.
//
// Resolution is a single synchronous pass: the general section first, since
// it fixes the page background, then the chat sections, which receive that
// background as an argument for contrast derivation. Every catalogue
// variable is written exactly once per pass, except the page background pair
// (see cssvar.Exclusive), of which both are removed and one is written.
//
// The resolver keeps no state. Calling Apply again with the same inputs
// writes the same values, so it can run on every edit of a theme.
package resolve

import (
	"strconv"

	"github.com/sadopc/chatstyle/internal/style"
	"github.com/sadopc/chatstyle/internal/theme"
)

// Apply resolves th into sink. preview marks rendering inside the editor's
// scrollable preview frame. A nil theme or nil sink is a no-op.
func Apply(th *theme.Theme, sink style.Sink, preview bool) {
	if th == nil || sink == nil {
		return
	}
	general := th.General
	if general == nil {
		general = &theme.GeneralTheme{}
	}
	applyGeneral(general, sink, preview)
	applyChat(th.Chat, general.Background, sink)
}

// Resolve resolves th into a new Declaration. A nil theme yields an empty
// one.
func Resolve(th *theme.Theme, preview bool) *style.Declaration {
	d := style.NewDeclaration()
	Apply(th, d, preview)
	return d
}

func applyChat(chat *theme.ChatTheme, background *theme.Background, sink style.Sink) {
	if chat == nil {
		chat = &theme.ChatTheme{}
	}
	legacy := chat.Roundness

	container := chat.Container
	if container == nil {
		container = &theme.ChatContainerTheme{}
	}
	applyContainer(container, background, legacy, sink)
	applySurface(chat.HostBubbles, hostBubbles, legacy, sink)
	applySurface(chat.GuestBubbles, guestBubbles, legacy, sink)
	applySurface(chat.Buttons, buttons, legacy, sink)
	applyInputs(chat.Inputs, legacy, sink)
	applyCheckbox(snapshotOf(container), background, sink)
}

// first returns the value of the first non-nil source, or def. It spells out
// a precedence chain (own field, inherited field, default) as a list.
func first[T any](def T, sources ...*T) T {
	for _, s := range sources {
		if s != nil {
			return *s
		}
	}
	return def
}

func num(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}

func px(v float64) string {
	return num(v) + "px"
}
