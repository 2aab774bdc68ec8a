// Package highlight colours CSS for the terminal.
package highlight

import (
	"strings"

	"github.com/alecthomas/chroma/v2"
	"github.com/alecthomas/chroma/v2/lexers"
	"github.com/charmbracelet/lipgloss"

	"github.com/sadopc/chatstyle/internal/ui/palette"
)

// Highlighter tokenises CSS text using chroma and renders it with lipgloss
// styles from a palette.
type Highlighter struct {
	lexer chroma.Lexer
}

// New creates a Highlighter that uses the CSS lexer, or chroma's plain-text
// fallback if the CSS lexer is unavailable.
func New() *Highlighter {
	l := lexers.Get("CSS")
	if l == nil {
		l = lexers.Fallback
	}
	// Coalesce runs of identical token types so the loop below processes
	// fewer, larger chunks.
	return &Highlighter{lexer: chroma.Coalesce(l)}
}

// Highlight tokenises css and returns it with every token styled from p.
// Newlines are preserved. A nil palette returns css unchanged.
func (h *Highlighter) Highlight(css string, p *palette.Palette) string {
	if p == nil {
		return css
	}

	iter, err := h.lexer.Tokenise(nil, css)
	if err != nil {
		return css
	}

	var b strings.Builder
	b.Grow(len(css) * 2)

	for _, tok := range iter.Tokens() {
		if tok.Value == "" {
			continue
		}
		style, ok := styleFor(tok.Type, p)
		if !ok {
			b.WriteString(tok.Value)
			continue
		}
		// Style each line separately so a newline is always emitted as-is.
		lines := strings.Split(tok.Value, "\n")
		for i, line := range lines {
			if line != "" {
				b.WriteString(style.Render(line))
			}
			if i < len(lines)-1 {
				b.WriteByte('\n')
			}
		}
	}

	return b.String()
}

// styleFor maps a chroma token type to a palette style. The second return
// value is false when the token should pass through unstyled.
func styleFor(tt chroma.TokenType, p *palette.Palette) (lipgloss.Style, bool) {
	switch {
	case tt == chroma.NameTag || tt == chroma.NameClass ||
		tt == chroma.NameDecorator || tt == chroma.NameEntity:
		return p.CSSSelector, true
	case tt == chroma.NameVariable || tt == chroma.NameProperty ||
		tt == chroma.NameAttribute:
		return p.CSSProperty, true
	case tt.InCategory(chroma.Keyword) || tt == chroma.NameBuiltin || tt == chroma.NameFunction:
		return p.CSSKeyword, true
	case tt.InSubCategory(chroma.LiteralNumber):
		return p.CSSNumber, true
	case tt.InSubCategory(chroma.LiteralString):
		return p.CSSString, true
	case tt.InCategory(chroma.Comment):
		return p.CSSComment, true
	case tt == chroma.Punctuation || tt.InCategory(chroma.Operator):
		return p.CSSPunctuation, true
	default:
		return lipgloss.Style{}, false
	}
}
