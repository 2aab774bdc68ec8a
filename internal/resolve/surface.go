package resolve

import (
	"github.com/sadopc/chatstyle/internal/cssvar"
	"github.com/sadopc/chatstyle/internal/style"
	"github.com/sadopc/chatstyle/internal/theme"
)

// surfaceKind carries what differs between bubbles, buttons and inputs:
// their variable names and defaults.
type surfaceKind struct {
	vars            cssvar.Surface
	bgColor         string
	color           string
	borderThickness float64
	borderColor     string
	// borderFollowsFill makes an unset border colour use the element's
	// background colour before borderColor.
	borderFollowsFill bool
}

var (
	hostBubbles = surfaceKind{
		vars:        cssvar.Chat.HostBubbles,
		bgColor:     theme.DefaultHostBubblesBackgroundColor,
		color:       theme.DefaultHostBubblesColor,
		borderColor: noBorderColor,
	}
	guestBubbles = surfaceKind{
		vars:        cssvar.Chat.GuestBubbles,
		bgColor:     theme.DefaultGuestBubblesBackgroundColor,
		color:       theme.DefaultGuestBubblesColor,
		borderColor: noBorderColor,
	}
	buttons = surfaceKind{
		vars:              cssvar.Chat.Buttons,
		bgColor:           theme.DefaultButtonsBackgroundColor,
		color:             theme.DefaultButtonsColor,
		borderThickness:   theme.DefaultButtonsBorderThickness,
		borderColor:       theme.DefaultButtonsBackgroundColor,
		borderFollowsFill: true,
	}
	inputs = surfaceKind{
		vars:            cssvar.Chat.Inputs.Surface,
		bgColor:         theme.DefaultInputsBackgroundColor,
		color:           theme.DefaultInputsColor,
		borderThickness: theme.DefaultInputsBorderThickness,
		borderColor:     theme.DefaultInputsBorderColor,
	}
)

func applySurface(c *theme.ContainerTheme, kind surfaceKind, legacy *theme.Roundness, sink style.Sink) {
	if c == nil {
		c = &theme.ContainerTheme{}
	}
	v := kind.vars
	b := borderOf(c)

	sink.SetProperty(v.BgColor, rgb(first(kind.bgColor, c.BackgroundColor)))
	sink.SetProperty(v.Color, rgb(first(kind.color, c.Color)))
	sink.SetProperty(v.BoxShadow, Shadow(c.Shadow))

	opacity := num(first(theme.DefaultOpacity, c.Opacity))
	if c.BackgroundColor != nil && *c.BackgroundColor == theme.Transparent {
		opacity = "0"
	}
	sink.SetProperty(v.Opacity, opacity)

	blur := "none"
	if c.Blur != nil {
		blur = px(*c.Blur)
	}
	sink.SetProperty(v.Blur, blur)

	sink.SetProperty(v.BorderRadius, radiusOf(b, legacy))
	sink.SetProperty(v.BorderWidth, borderWidth(b, kind.borderThickness))

	borderColor := first(kind.borderColor, b.Color)
	if b.Color == nil && kind.borderFollowsFill {
		borderColor = first(kind.borderColor, c.BackgroundColor)
	}
	sink.SetProperty(v.BorderColor, rgb(borderColor))
	sink.SetProperty(v.BorderOpacity, num(first(theme.DefaultOpacity, b.Opacity)))
}

func applyInputs(in *theme.InputTheme, legacy *theme.Roundness, sink style.Sink) {
	if in == nil {
		in = &theme.InputTheme{}
	}
	applySurface(&in.ContainerTheme, inputs, legacy, sink)
	sink.SetProperty(cssvar.Chat.Inputs.PlaceholderColor,
		rgb(first(theme.DefaultInputsPlaceholderColor, in.PlaceholderColor)))
}
