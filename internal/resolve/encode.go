package resolve

import "github.com/sadopc/chatstyle/internal/theme"

// Radii written for the fixed roundness levels.
const (
	radiusNone   = "0"
	radiusMedium = "6px"
	radiusLarge  = "20px"
)

// BorderRadius encodes a roundness level. custom is the pixel radius used
// for RoundnessCustom; it falls back to the medium radius when nil. Unknown
// levels encode as the default level.
func BorderRadius(r theme.Roundness, custom *float64) string {
	switch r {
	case theme.RoundnessNone:
		return radiusNone
	case theme.RoundnessMedium:
		return radiusMedium
	case theme.RoundnessLarge:
		return radiusLarge
	case theme.RoundnessCustom:
		return px(first(theme.DefaultCustomRoundness, custom))
	default:
		return BorderRadius(theme.DefaultRoundness, nil)
	}
}

// Box-shadow literals, from https://tailwindcss.com/docs/box-shadow.
const (
	shadowNone = "0 0 #0000"
	shadowSM   = "0 1px 2px 0 rgb(0 0 0 / 0.05)"
	shadowMD   = "0 4px 6px -1px rgb(0 0 0 / 0.1), 0 2px 4px -2px rgb(0 0 0 / 0.1)"
	shadowLG   = "0 10px 15px -3px rgb(0 0 0 / 0.1), 0 4px 6px -4px rgb(0 0 0 / 0.1)"
	shadowXL   = "0 20px 25px -5px rgb(0 0 0 / 0.1), 0 8px 10px -6px rgb(0 0 0 / 0.1)"
	shadow2XL  = "0 25px 50px -12px rgb(0 0 0 / 0.25)"
)

// Shadow encodes a shadow size. nil, "none" and unknown sizes all encode as
// no shadow.
func Shadow(size *theme.ShadowSize) string {
	if size == nil {
		return shadowNone
	}
	switch *size {
	case theme.ShadowSM:
		return shadowSM
	case theme.ShadowMD:
		return shadowMD
	case theme.ShadowLG:
		return shadowLG
	case theme.ShadowXL:
		return shadowXL
	case theme.Shadow2XL:
		return shadow2XL
	case theme.ShadowNone:
		return shadowNone
	default:
		return shadowNone
	}
}

// Background encodes a page background. An unset type is a colour; a colour
// without content is the default colour; an image without content is
// "none", the CSS value for no image.
func Background(bg theme.Background) string {
	switch first(theme.DefaultBackgroundType, bg.Type) {
	case theme.BackgroundNone:
		return theme.Transparent
	case theme.BackgroundImage:
		if bg.Content == nil || *bg.Content == "" {
			return "none"
		}
		return "url(" + *bg.Content + ")"
	case theme.BackgroundColor:
		return first(theme.DefaultBackgroundColor, bg.Content)
	default:
		return Background(theme.Background{Content: bg.Content})
	}
}
