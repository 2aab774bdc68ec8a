// Package theme defines the declarative chat widget theme: a tree in which
// every field is optional. Unset fields are filled in by the resolver, never
// here, so a Theme always reflects exactly what the user configured.
package theme

// Theme is the root of a widget theme.
type Theme struct {
	General *GeneralTheme `yaml:"general,omitempty" json:"general,omitempty"`
	Chat    *ChatTheme    `yaml:"chat,omitempty" json:"chat,omitempty"`
}

// GeneralTheme covers the page around the chat.
type GeneralTheme struct {
	Background  *Background  `yaml:"background,omitempty" json:"background,omitempty"`
	Font        *Font        `yaml:"font,omitempty" json:"font,omitempty"`
	ProgressBar *ProgressBar `yaml:"progressBar,omitempty" json:"progressBar,omitempty"`
}

// BackgroundType selects how Background.Content is interpreted.
type BackgroundType string

const (
	BackgroundNone  BackgroundType = "None"
	BackgroundColor BackgroundType = "Color"
	BackgroundImage BackgroundType = "Image"
)

// Background is a colour, an image or nothing. Content is a hex colour for
// BackgroundColor and a URL for BackgroundImage.
type Background struct {
	Type    *BackgroundType `yaml:"type,omitempty" json:"type,omitempty"`
	Content *string         `yaml:"content,omitempty" json:"content,omitempty"`
}

// FontType tells where a font is loaded from.
type FontType string

const (
	FontGoogle FontType = "Google"
	FontCustom FontType = "Custom"
)

// Font is either a bare family name or a structured record. Both shapes
// decode into this type; see UnmarshalYAML.
type Font struct {
	Type   FontType `yaml:"type,omitempty" json:"type,omitempty"`
	Family string   `yaml:"family,omitempty" json:"family,omitempty"`
	CSS    string   `yaml:"css,omitempty" json:"css,omitempty"`
	URL    string   `yaml:"url,omitempty" json:"url,omitempty"`
}

// ProgressBarPosition is the CSS position of the progress bar.
type ProgressBarPosition string

const (
	PositionFixed    ProgressBarPosition = "fixed"
	PositionAbsolute ProgressBarPosition = "absolute"
)

// ProgressBarPlacement pins the bar to one edge.
type ProgressBarPlacement string

const (
	PlacementTop    ProgressBarPlacement = "Top"
	PlacementBottom ProgressBarPlacement = "Bottom"
)

// ProgressBar configures the conversation progress indicator.
type ProgressBar struct {
	IsEnabled       *bool                 `yaml:"isEnabled,omitempty" json:"isEnabled,omitempty"`
	Position        *ProgressBarPosition  `yaml:"position,omitempty" json:"position,omitempty"`
	Placement       *ProgressBarPlacement `yaml:"placement,omitempty" json:"placement,omitempty"`
	Color           *string               `yaml:"color,omitempty" json:"color,omitempty"`
	BackgroundColor *string               `yaml:"backgroundColor,omitempty" json:"backgroundColor,omitempty"`
	Thickness       *float64              `yaml:"thickness,omitempty" json:"thickness,omitempty"`
}

// Roundness controls corner radius.
type Roundness string

const (
	RoundnessNone   Roundness = "none"
	RoundnessMedium Roundness = "medium"
	RoundnessLarge  Roundness = "large"
	RoundnessCustom Roundness = "custom"
)

// ShadowSize is a Tailwind box-shadow size.
type ShadowSize string

const (
	ShadowNone ShadowSize = "none"
	ShadowSM   ShadowSize = "sm"
	ShadowMD   ShadowSize = "md"
	ShadowLG   ShadowSize = "lg"
	ShadowXL   ShadowSize = "xl"
	Shadow2XL  ShadowSize = "2xl"
)

// ShadowSizes lists every size in ascending order, none first.
var ShadowSizes = []ShadowSize{ShadowNone, ShadowSM, ShadowMD, ShadowLG, ShadowXL, Shadow2XL}

// Roundnesses lists every roundness value.
var Roundnesses = []Roundness{RoundnessNone, RoundnessMedium, RoundnessLarge, RoundnessCustom}

// BackgroundTypes lists every background kind.
var BackgroundTypes = []BackgroundType{BackgroundNone, BackgroundColor, BackgroundImage}

// Border styles the outline of a container-like element. Older saved
// themes spell the roundness keys "roundeness" and "customRoundeness"; both
// spellings decode.
type Border struct {
	Roundness       *Roundness `yaml:"roundness,omitempty" json:"roundness,omitempty"`
	CustomRoundness *float64   `yaml:"customRoundness,omitempty" json:"customRoundness,omitempty"`
	Thickness       *float64   `yaml:"thickness,omitempty" json:"thickness,omitempty"`
	Color           *string    `yaml:"color,omitempty" json:"color,omitempty"`
	Opacity         *float64   `yaml:"opacity,omitempty" json:"opacity,omitempty"`
}

// ContainerTheme is shared by bubbles, buttons and (embedded) inputs and the
// chat container.
type ContainerTheme struct {
	BackgroundColor *string     `yaml:"backgroundColor,omitempty" json:"backgroundColor,omitempty"`
	Color           *string     `yaml:"color,omitempty" json:"color,omitempty"`
	Opacity         *float64    `yaml:"opacity,omitempty" json:"opacity,omitempty"`
	Blur            *float64    `yaml:"blur,omitempty" json:"blur,omitempty"`
	Shadow          *ShadowSize `yaml:"shadow,omitempty" json:"shadow,omitempty"`
	Border          *Border     `yaml:"border,omitempty" json:"border,omitempty"`
}

// ChatContainerTheme is the panel holding the conversation.
type ChatContainerTheme struct {
	ContainerTheme `yaml:",inline"`
	MaxWidth       *string `yaml:"maxWidth,omitempty" json:"maxWidth,omitempty"`
	MaxHeight      *string `yaml:"maxHeight,omitempty" json:"maxHeight,omitempty"`
}

// InputTheme styles text inputs.
type InputTheme struct {
	ContainerTheme   `yaml:",inline"`
	PlaceholderColor *string `yaml:"placeholderColor,omitempty" json:"placeholderColor,omitempty"`
}

// ChatTheme covers everything inside the chat surface. Roundness is the
// legacy single roundness kept for themes saved before per-element borders
// existed.
type ChatTheme struct {
	Container    *ChatContainerTheme `yaml:"container,omitempty" json:"container,omitempty"`
	HostBubbles  *ContainerTheme     `yaml:"hostBubbles,omitempty" json:"hostBubbles,omitempty"`
	GuestBubbles *ContainerTheme     `yaml:"guestBubbles,omitempty" json:"guestBubbles,omitempty"`
	Buttons      *ContainerTheme     `yaml:"buttons,omitempty" json:"buttons,omitempty"`
	Inputs       *InputTheme         `yaml:"inputs,omitempty" json:"inputs,omitempty"`
	Roundness    *Roundness          `yaml:"roundness,omitempty" json:"roundness,omitempty"`
}

// Ptr returns a pointer to v. It keeps theme literals short.
func Ptr[T any](v T) *T {
	return &v
}
