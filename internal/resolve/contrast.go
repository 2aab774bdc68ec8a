package resolve

import (
	"strings"

	"github.com/sadopc/chatstyle/internal/colorutil"
	"github.com/sadopc/chatstyle/internal/theme"
)

// TransparentThreshold is the container opacity at or below which the page
// background, not the container, decides contrast.
const TransparentThreshold = 0.2

// ContainerSnapshot is the part of the chat container that contrast
// derivation reads, with defaults already applied.
type ContainerSnapshot struct {
	BackgroundColor string
	Opacity         float64
}

func snapshotOf(c *theme.ChatContainerTheme) ContainerSnapshot {
	return ContainerSnapshot{
		BackgroundColor: first(theme.DefaultContainerBackgroundColor, c.BackgroundColor),
		Opacity:         first(theme.DefaultOpacity, c.Opacity),
	}
}

// Disabled reports whether the container has no background of its own.
func (s ContainerSnapshot) Disabled() bool {
	bg := strings.TrimSpace(s.BackgroundColor)
	return bg == "" || bg == theme.Transparent
}

// SeeThrough reports whether the page background shows through the
// container.
func (s ContainerSnapshot) SeeThrough() bool {
	return s.Disabled() || s.Opacity <= TransparentThreshold
}

// backdrop returns the kind of the page background and, for colour and
// none, the colour contrast is measured against.
// A colour background without content, or none, measures against the
// default page colour.
func backdrop(bg *theme.Background) (theme.BackgroundType, string) {
	if bg == nil {
		bg = &theme.Background{}
	}
	switch kind := first(theme.DefaultBackgroundType, bg.Type); kind {
	case theme.BackgroundImage:
		return kind, ""
	case theme.BackgroundNone:
		return kind, theme.DefaultBackgroundColor
	default:
		if bg.Content != nil && strings.TrimSpace(*bg.Content) != "" {
			return theme.BackgroundColor, *bg.Content
		}
		return theme.BackgroundColor, theme.DefaultBackgroundColor
	}
}

// IsContainerLight reports whether text over the chat container should be
// dark. A see-through container takes its lightness from the page
// background; an image background counts as dark.
func IsContainerLight(s ContainerSnapshot, bg *theme.Background) bool {
	if !s.SeeThrough() {
		return colorutil.IsLight(s.BackgroundColor)
	}
	kind, color := backdrop(bg)
	if kind == theme.BackgroundImage {
		return false
	}
	return colorutil.IsLight(color)
}

// Checkbox is the contrast pair for selectable controls.
type Checkbox struct {
	// BgRgb is "r, g, b" or "r, g, b, a".
	BgRgb string
	// AlphaRatio scales the selection tint: 1 on light, 2 on dark, 3 over
	// images.
	AlphaRatio string
}

// CheckboxContrast derives the checkbox background and alpha ratio.
func CheckboxContrast(s ContainerSnapshot, bg *theme.Background) Checkbox {
	if s.SeeThrough() {
		kind, color := backdrop(bg)
		if kind == theme.BackgroundImage {
			return Checkbox{BgRgb: "255, 255, 255, 0.75", AlphaRatio: "3"}
		}
		return Checkbox{
			BgRgb:      colorutil.HexToRGB(color).String(),
			AlphaRatio: alphaRatio(colorutil.IsLight(color)),
		}
	}
	return Checkbox{
		BgRgb:      colorutil.HexToRGB(s.BackgroundColor).WithAlpha(s.Opacity),
		AlphaRatio: alphaRatio(colorutil.IsLight(s.BackgroundColor)),
	}
}

func alphaRatio(light bool) string {
	if light {
		return "1"
	}
	return "2"
}
