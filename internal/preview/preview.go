// Package preview draws a resolved declaration as terminal swatches: the
// chat container with a host bubble, a guest bubble, a button and an input.
// It reads only presentation variables, so what it shows is what a renderer
// bound to the same variables would show.
package preview

import (
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/lucasb-eyer/go-colorful"

	"github.com/sadopc/chatstyle/internal/colorutil"
	"github.com/sadopc/chatstyle/internal/cssvar"
	"github.com/sadopc/chatstyle/internal/style"
)

// Swatch is one element's terminal appearance, with colours already
// composited over the page background.
type Swatch struct {
	Name        string
	Background  string // "#rrggbb"
	Foreground  string // "#rrggbb"
	Rounded     bool
	Bordered    bool
	BorderColor string // "#rrggbb"
}

// Backdrop returns the page colour swatches are composited over. Images and
// non-hex backgrounds fall back to black and white respectively.
func Backdrop(d *style.Declaration) string {
	if _, ok := d.Lookup(cssvar.General.BgImage); ok {
		return "#000000"
	}
	c, err := colorful.Hex(d.Get(cssvar.General.BgColor))
	if err != nil {
		return "#ffffff"
	}
	return c.Hex()
}

// SurfaceSwatch reads the variables of s from d.
func SurfaceSwatch(name string, s cssvar.Surface, d *style.Declaration) Swatch {
	backdrop := Backdrop(d)
	opacity := parseFloat(d.Get(s.Opacity), 1)
	return Swatch{
		Name:        name,
		Background:  blend(d.Get(s.BgColor), backdrop, opacity),
		Foreground:  tripleHex(d.Get(s.Color)),
		Rounded:     d.Get(s.BorderRadius) != "0",
		Bordered:    d.Get(s.BorderWidth) != "0" && d.Get(s.BorderWidth) != "",
		BorderColor: blend(d.Get(s.BorderColor), backdrop, parseFloat(d.Get(s.BorderOpacity), 1)),
	}
}

// Swatches returns the container followed by every chat surface.
func Swatches(d *style.Declaration) []Swatch {
	chat := cssvar.Chat
	return []Swatch{
		SurfaceSwatch("container", chat.Container.Surface, d),
		SurfaceSwatch("host bubble", chat.HostBubbles, d),
		SurfaceSwatch("guest bubble", chat.GuestBubbles, d),
		SurfaceSwatch("button", chat.Buttons, d),
		SurfaceSwatch("input", chat.Inputs.Surface, d),
	}
}

// Style turns a swatch into a lipgloss style.
func (s Swatch) Style() lipgloss.Style {
	st := lipgloss.NewStyle().
		Background(lipgloss.Color(s.Background)).
		Foreground(lipgloss.Color(s.Foreground)).
		Padding(0, 1)
	if s.Bordered {
		border := lipgloss.NormalBorder()
		if s.Rounded {
			border = lipgloss.RoundedBorder()
		}
		st = st.Border(border).BorderForeground(lipgloss.Color(s.BorderColor))
	}
	return st
}

// Render draws a small conversation inside the container, width cells wide.
func Render(d *style.Declaration, width int) string {
	if width < 24 {
		width = 24
	}
	sw := Swatches(d)
	container, host, guest, button, input := sw[0], sw[1], sw[2], sw[3], sw[4]
	// The frame takes two border cells; its padding takes two more.
	inner := width - 2
	content := inner - 2

	placeholder := tripleHex(d.Get(cssvar.Chat.Inputs.PlaceholderColor))
	inputStyle := input.Style().Foreground(lipgloss.Color(placeholder)).Width(content - 2)

	rows := []string{
		host.Style().Render("Hi! How can I help?"),
		lipgloss.PlaceHorizontal(content, lipgloss.Right, guest.Style().Render("I'd like a demo")),
		button.Style().Render("Book a call"),
		checkboxRow(d),
		inputStyle.Render("Type your answer..."),
	}
	body := lipgloss.JoinVertical(lipgloss.Left, rows...)

	frame := container.Style().Width(inner)
	if !container.Bordered {
		frame = frame.Border(lipgloss.HiddenBorder())
	}
	return frame.Render(body)
}

func checkboxRow(d *style.Declaration) string {
	v := d.Get(cssvar.Chat.Checkbox.BgRgb)
	c, ok := colorutil.ParseTriple(v)
	if !ok {
		return "[ ] option"
	}
	return lipgloss.NewStyle().
		Background(lipgloss.Color(c.Hex())).
		Foreground(lipgloss.Color(contrastHex(c))).
		Render("[x] option")
}

func contrastHex(c colorutil.RGB) string {
	if c.IsLight() {
		return "#303235"
	}
	return "#FFFFFF"
}

// blend composites the "r, g, b" colour v over backdrop at the given
// opacity.
func blend(v, backdrop string, opacity float64) string {
	rgb, ok := colorutil.ParseTriple(v)
	if !ok {
		return backdrop
	}
	fg, _ := colorful.Hex(rgb.Hex())
	bg, err := colorful.Hex(backdrop)
	if err != nil {
		return fg.Hex()
	}
	opacity = min(max(opacity, 0), 1)
	return bg.BlendRgb(fg, opacity).Clamped().Hex()
}

func tripleHex(v string) string {
	rgb, ok := colorutil.ParseTriple(v)
	if !ok {
		return colorutil.Black.Hex()
	}
	return rgb.Hex()
}

func parseFloat(s string, def float64) float64 {
	f, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	if err != nil {
		return def
	}
	return f
}
