package resolve

import (
	"github.com/sadopc/chatstyle/internal/colorutil"
	"github.com/sadopc/chatstyle/internal/cssvar"
	"github.com/sadopc/chatstyle/internal/style"
	"github.com/sadopc/chatstyle/internal/theme"
)

// noBorderColor is written when an element has no border colour of its own.
// Border width defaults to zero for those elements, so it never shows.
const noBorderColor = "#000000"

func applyContainer(c *theme.ChatContainerTheme, background *theme.Background, legacy *theme.Roundness, sink style.Sink) {
	vars := cssvar.Chat.Container
	snap := snapshotOf(c)
	disabled := snap.Disabled()

	bg := colorutil.Black.String()
	if !disabled {
		bg = rgb(snap.BackgroundColor)
	}
	sink.SetProperty(vars.BgColor, bg)

	color := theme.DefaultDarkTextColor
	if IsContainerLight(snap, background) {
		color = theme.DefaultLightTextColor
	}
	sink.SetProperty(vars.Color, rgb(first(color, c.Color)))

	opacity, blur := "0", "0px"
	if !disabled {
		opacity = num(snap.Opacity)
		if snap.Opacity != 1 {
			blur = px(first(theme.DefaultBlur, c.Blur))
		}
	}
	sink.SetProperty(vars.Opacity, opacity)
	sink.SetProperty(vars.Blur, blur)

	sink.SetProperty(vars.BoxShadow, Shadow(c.Shadow))
	sink.SetProperty(vars.MaxWidth, first(theme.DefaultContainerMaxWidth, c.MaxWidth))
	sink.SetProperty(vars.MaxHeight, first(theme.DefaultContainerMaxHeight, c.MaxHeight))

	b := borderOf(&c.ContainerTheme)
	sink.SetProperty(vars.BorderRadius, radiusOf(b, legacy))
	sink.SetProperty(vars.BorderWidth, borderWidth(b, 0))
	sink.SetProperty(vars.BorderColor, rgb(first(noBorderColor, b.Color)))
	sink.SetProperty(vars.BorderOpacity, num(first(theme.DefaultOpacity, b.Opacity)))
}

func applyCheckbox(snap ContainerSnapshot, background *theme.Background, sink style.Sink) {
	cb := CheckboxContrast(snap, background)
	sink.SetProperty(cssvar.Chat.Checkbox.BgRgb, cb.BgRgb)
	sink.SetProperty(cssvar.Chat.Checkbox.AlphaRatio, cb.AlphaRatio)
}

func borderOf(c *theme.ContainerTheme) *theme.Border {
	if c.Border == nil {
		return &theme.Border{}
	}
	return c.Border
}

// radiusOf resolves roundness from the element's own border, then the legacy
// chat-wide roundness, then the default. Each step is per field: a border
// that sets only its thickness still inherits the legacy roundness. Themes
// saved by older builders, which dropped the legacy value as soon as any
// border was present, can therefore resolve to a rounder corner here.
func radiusOf(b *theme.Border, legacy *theme.Roundness) string {
	return BorderRadius(first(theme.DefaultRoundness, b.Roundness, legacy), b.CustomRoundness)
}

// borderWidth returns the thickness in px, or "0" when it resolves to zero.
func borderWidth(b *theme.Border, def float64) string {
	thickness := first(def, b.Thickness)
	if thickness == 0 {
		return "0"
	}
	return px(thickness)
}
