package resolve

import (
	"strings"

	"github.com/sadopc/chatstyle/internal/colorutil"
	"github.com/sadopc/chatstyle/internal/cssvar"
	"github.com/sadopc/chatstyle/internal/style"
	"github.com/sadopc/chatstyle/internal/theme"
)

func applyGeneral(g *theme.GeneralTheme, sink style.Sink, preview bool) {
	applyBackground(g.Background, sink)
	sink.SetProperty(cssvar.General.FontFamily, FontFamily(g.Font))
	applyProgressBar(g.ProgressBar, sink, preview)
}

// applyBackground clears both page background variables and then writes the
// one matching the background kind, so switching from an image to a colour
// never leaves the image behind.
func applyBackground(bg *theme.Background, sink style.Sink) {
	if bg == nil {
		bg = &theme.Background{}
	}
	sink.RemoveProperty(cssvar.General.BgImage)
	sink.RemoveProperty(cssvar.General.BgColor)

	name := cssvar.General.BgColor
	if first(theme.DefaultBackgroundType, bg.Type) == theme.BackgroundImage {
		name = cssvar.General.BgImage
	}
	sink.SetProperty(name, Background(*bg))
}

// FontFamily returns the family of f, or the default system stack when f is
// nil or names no family.
func FontFamily(f *theme.Font) string {
	if f == nil {
		return theme.DefaultFontFamily
	}
	if family := strings.TrimSpace(f.Family); family != "" {
		return family
	}
	return theme.DefaultFontFamily
}

func applyProgressBar(pb *theme.ProgressBar, sink style.Sink, preview bool) {
	if pb == nil {
		pb = &theme.ProgressBar{}
	}
	vars := cssvar.General.ProgressBar

	position := first(theme.DefaultProgressBarPosition, pb.Position)
	// The preview frame scrolls, so a fixed bar would escape it.
	if position != theme.PositionFixed || preview {
		position = theme.PositionAbsolute
	}
	sink.SetProperty(vars.Position, string(position))

	top, bottom := "0", "auto"
	if first(theme.DefaultProgressBarPlacement, pb.Placement) == theme.PlacementBottom {
		top, bottom = "auto", "0"
	}
	sink.SetProperty(vars.Top, top)
	sink.SetProperty(vars.Bottom, bottom)

	sink.SetProperty(vars.Color, rgb(first(theme.DefaultProgressBarColor, pb.Color)))
	sink.SetProperty(vars.BgColor, rgb(first(theme.DefaultProgressBarBackgroundColor, pb.BackgroundColor)))
	sink.SetProperty(vars.Height, px(first(theme.DefaultProgressBarThickness, pb.Thickness)))
}

func rgb(hex string) string {
	return colorutil.HexToRGB(hex).String()
}
