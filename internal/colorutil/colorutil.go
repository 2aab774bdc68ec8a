// Package colorutil converts hex colours into the comma-separated RGB form
// consumed by the presentation layer and classifies colours as light or dark.
package colorutil

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/lucasb-eyer/go-colorful"
)

// RGB is an 8-bit per channel colour.
type RGB struct {
	R, G, B uint8
}

// Black is returned for any input that cannot be parsed as a hex colour.
var Black = RGB{}

// HexToRGB parses "#rgb" or "#rrggbb" (the leading '#' is optional). Input
// that is empty or malformed yields Black so callers never have to handle an
// error while resolving a theme.
func HexToRGB(hex string) RGB {
	hex = strings.TrimSpace(hex)
	if hex == "" {
		return Black
	}
	if !strings.HasPrefix(hex, "#") {
		hex = "#" + hex
	}
	c, err := colorful.Hex(hex)
	if err != nil {
		return Black
	}
	r, g, b := c.RGB255()
	return RGB{R: r, G: g, B: b}
}

// String formats the colour as "r, g, b".
func (c RGB) String() string {
	return fmt.Sprintf("%d, %d, %d", c.R, c.G, c.B)
}

// WithAlpha formats the colour as "r, g, b, a".
func (c RGB) WithAlpha(alpha float64) string {
	return c.String() + ", " + strconv.FormatFloat(alpha, 'f', -1, 64)
}

// Hex formats the colour as "#rrggbb".
func (c RGB) Hex() string {
	return colorful.Color{
		R: float64(c.R) / 255,
		G: float64(c.G) / 255,
		B: float64(c.B) / 255,
	}.Hex()
}

// IsLight reports whether hex reads as a light colour using the YIQ
// brightness formula.
func IsLight(hex string) bool {
	return HexToRGB(hex).IsLight()
}

// IsLight reports whether the colour's YIQ brightness is above 155.
func (c RGB) IsLight() bool {
	yiq := (int(c.R)*299 + int(c.G)*587 + int(c.B)*114) / 1000
	return yiq > 155
}

// ParseTriple parses the "r, g, b" form produced by String. A fourth alpha
// component is accepted and ignored. ok is false when the value is not a
// triple of integers in [0, 255].
func ParseTriple(s string) (RGB, bool) {
	parts := strings.Split(s, ",")
	if len(parts) != 3 && len(parts) != 4 {
		return Black, false
	}
	var out [3]uint8
	for i := 0; i < 3; i++ {
		n, err := strconv.Atoi(strings.TrimSpace(parts[i]))
		if err != nil || n < 0 || n > 255 {
			return Black, false
		}
		out[i] = uint8(n)
	}
	return RGB{R: out[0], G: out[1], B: out[2]}, true
}
