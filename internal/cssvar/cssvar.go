// Package cssvar is the catalogue of presentation variables written by the
// resolver. The rendering layer binds against these names directly, so every
// name here is part of the public contract: renaming one is a breaking change.
package cssvar

import "strings"

// Prefix namespaces every variable.
const Prefix = "--bot-"

// Var is one catalogue entry.
type Var struct {
	// Key is the dotted path, e.g. "chat.container.borderRadius".
	Key string
	// Name is the CSS custom property, e.g. "--bot-chat-container-border-radius".
	Name string
}

// Group returns the key without its last segment ("chat.container").
func (v Var) Group() string {
	if i := strings.LastIndexByte(v.Key, '.'); i >= 0 {
		return v.Key[:i]
	}
	return ""
}

// Surface names the variables shared by every container-like element.
type Surface struct {
	BgColor       string
	Color         string
	BorderRadius  string
	BorderWidth   string
	BorderColor   string
	BorderOpacity string
	Opacity       string
	Blur          string
	BoxShadow     string
}

func newSurface(prefix string) Surface {
	return Surface{
		BgColor:       prefix + "-bg-rgb",
		Color:         prefix + "-color-rgb",
		BorderRadius:  prefix + "-border-radius",
		BorderWidth:   prefix + "-border-width",
		BorderColor:   prefix + "-border-rgb",
		BorderOpacity: prefix + "-border-opacity",
		Opacity:       prefix + "-opacity",
		Blur:          prefix + "-blur",
		BoxShadow:     prefix + "-box-shadow",
	}
}

func (s Surface) vars(group string) []Var {
	return []Var{
		{group + ".bgColor", s.BgColor},
		{group + ".color", s.Color},
		{group + ".borderRadius", s.BorderRadius},
		{group + ".borderWidth", s.BorderWidth},
		{group + ".borderColor", s.BorderColor},
		{group + ".borderOpacity", s.BorderOpacity},
		{group + ".opacity", s.Opacity},
		{group + ".blur", s.Blur},
		{group + ".boxShadow", s.BoxShadow},
	}
}

// ProgressBarVars names the progress bar variables.
type ProgressBarVars struct {
	Position string
	Color    string
	BgColor  string
	Height   string
	Top      string
	Bottom   string
}

// GeneralVars names the page-level variables.
type GeneralVars struct {
	BgImage     string
	BgColor     string
	FontFamily  string
	ProgressBar ProgressBarVars
}

// ContainerVars names the chat container variables.
type ContainerVars struct {
	Surface
	MaxWidth  string
	MaxHeight string
}

// InputVars names the input variables.
type InputVars struct {
	Surface
	PlaceholderColor string
}

// CheckboxVars names the checkbox contrast variables.
type CheckboxVars struct {
	BgRgb      string
	AlphaRatio string
}

// ChatVars names every variable under the chat section.
type ChatVars struct {
	Container    ContainerVars
	HostBubbles  Surface
	GuestBubbles Surface
	Buttons      Surface
	Inputs       InputVars
	Checkbox     CheckboxVars
}

// General holds the page-level variable names.
var General = GeneralVars{
	BgImage:    Prefix + "container-bg-image",
	BgColor:    Prefix + "container-bg-color",
	FontFamily: Prefix + "container-font-family",
	ProgressBar: ProgressBarVars{
		Position: Prefix + "progress-bar-position",
		Color:    Prefix + "progress-bar-rgb",
		BgColor:  Prefix + "progress-bar-bg-rgb",
		Height:   Prefix + "progress-bar-height",
		Top:      Prefix + "progress-bar-top",
		Bottom:   Prefix + "progress-bar-bottom",
	},
}

// Chat holds the chat variable names.
var Chat = ChatVars{
	Container: ContainerVars{
		Surface:   newSurface(Prefix + "chat-container"),
		MaxWidth:  Prefix + "chat-container-max-width",
		MaxHeight: Prefix + "chat-container-max-height",
	},
	HostBubbles:  newSurface(Prefix + "host-bubble"),
	GuestBubbles: newSurface(Prefix + "guest-bubble"),
	Buttons:      newSurface(Prefix + "button"),
	Inputs: InputVars{
		Surface:          newSurface(Prefix + "input"),
		PlaceholderColor: Prefix + "input-placeholder-rgb",
	},
	Checkbox: CheckboxVars{
		BgRgb:      Prefix + "checkbox-bg-rgb",
		AlphaRatio: Prefix + "selectable-alpha-ratio",
	},
}

var catalogue = build()

func build() []Var {
	pb := General.ProgressBar
	vars := []Var{
		{"general.bgImage", General.BgImage},
		{"general.bgColor", General.BgColor},
		{"general.fontFamily", General.FontFamily},
		{"general.progressBar.position", pb.Position},
		{"general.progressBar.color", pb.Color},
		{"general.progressBar.bgColor", pb.BgColor},
		{"general.progressBar.height", pb.Height},
		{"general.progressBar.top", pb.Top},
		{"general.progressBar.bottom", pb.Bottom},
		{"chat.container.maxWidth", Chat.Container.MaxWidth},
		{"chat.container.maxHeight", Chat.Container.MaxHeight},
	}
	vars = append(vars, Chat.Container.vars("chat.container")...)
	vars = append(vars, Chat.HostBubbles.vars("chat.hostBubbles")...)
	vars = append(vars, Chat.GuestBubbles.vars("chat.guestBubbles")...)
	vars = append(vars, Chat.Buttons.vars("chat.buttons")...)
	vars = append(vars, Chat.Inputs.vars("chat.inputs")...)
	vars = append(vars,
		Var{"chat.inputs.placeholderColor", Chat.Inputs.PlaceholderColor},
		Var{"chat.checkbox.bgRgb", Chat.Checkbox.BgRgb},
		Var{"chat.checkbox.alphaRatio", Chat.Checkbox.AlphaRatio},
	)
	return vars
}

// All returns the full catalogue in its stable order.
func All() []Var {
	out := make([]Var, len(catalogue))
	copy(out, catalogue)
	return out
}

// Names returns every variable name in catalogue order.
func Names() []string {
	out := make([]string, len(catalogue))
	for i, v := range catalogue {
		out[i] = v.Name
	}
	return out
}

// Lookup finds a variable by dotted key.
func Lookup(key string) (Var, bool) {
	for _, v := range catalogue {
		if v.Key == key {
			return v, true
		}
	}
	return Var{}, false
}

// ByName finds a variable by its CSS name.
func ByName(name string) (Var, bool) {
	for _, v := range catalogue {
		if v.Name == name {
			return v, true
		}
	}
	return Var{}, false
}

// Exclusive returns the pairs of variables of which exactly one is set per
// resolution. The page background writes either its image or its colour.
func Exclusive() [][2]string {
	return [][2]string{{General.BgImage, General.BgColor}}
}
