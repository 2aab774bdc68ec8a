package editor

import (
	"fmt"
	"math"
	"slices"
	"strconv"
	"strings"

	"github.com/sadopc/chatstyle/internal/theme"
)

// Kind tells how a field is edited.
type Kind int

const (
	KindEnum Kind = iota
	KindText
	KindNumber
)

func (k Kind) String() string {
	switch k {
	case KindText:
		return "text"
	case KindNumber:
		return "number"
	default:
		return "enum"
	}
}

// Field is one editable theme setting. Path is the dotted key of the setting
// in a theme file.
type Field struct {
	Path    string
	Kind    Kind
	Options []string

	get func(*theme.Theme) (string, bool)
	set func(*theme.Theme, string) error
}

// Get returns the configured value, or false when the field is unset.
func (f Field) Get(t *theme.Theme) (string, bool) {
	return f.get(t)
}

// Set parses v and writes it into t, creating parent records as needed. An
// empty v unsets the field.
func (f Field) Set(t *theme.Theme, v string) error {
	if err := f.set(t, strings.TrimSpace(v)); err != nil {
		return fmt.Errorf("%s: %w", f.Path, err)
	}
	return nil
}

// Cycle moves an enum field dir steps through its options, passing through
// unset between the last and first option. It returns the new value.
func (f Field) Cycle(t *theme.Theme, dir int) (string, error) {
	if f.Kind != KindEnum || len(f.Options) == 0 {
		return "", fmt.Errorf("%s: not an enum field", f.Path)
	}
	cur, _ := f.Get(t)
	// Slot 0 is unset, slot i+1 is Options[i].
	n := len(f.Options) + 1
	i := slices.Index(f.Options, cur) + 1
	next := ((i+dir)%n + n) % n
	v := ""
	if next > 0 {
		v = f.Options[next-1]
	}
	return v, f.Set(t, v)
}

// slot reaches a leaf pointer inside a theme. With create set, missing
// parent records are allocated; otherwise a missing parent yields nil.
type slot[V any] func(t *theme.Theme, create bool) **V

func root(t *theme.Theme, _ bool) *theme.Theme { return t }

func child[P, C any](parent func(*theme.Theme, bool) *P, pick func(*P) **C) func(*theme.Theme, bool) *C {
	return func(t *theme.Theme, create bool) *C {
		p := parent(t, create)
		if p == nil {
			return nil
		}
		s := pick(p)
		if *s == nil {
			if !create {
				return nil
			}
			*s = new(C)
		}
		return *s
	}
}

func leaf[P, V any](parent func(*theme.Theme, bool) *P, pick func(*P) **V) slot[V] {
	return func(t *theme.Theme, create bool) **V {
		p := parent(t, create)
		if p == nil {
			return nil
		}
		return pick(p)
	}
}

func (s slot[V]) value(t *theme.Theme) (*V, bool) {
	p := s(t, false)
	if p == nil || *p == nil {
		return nil, false
	}
	return *p, true
}

func (s slot[V]) clear(t *theme.Theme) {
	if p := s(t, false); p != nil {
		*p = nil
	}
}

func (s slot[V]) put(t *theme.Theme, v V) {
	*s(t, true) = &v
}

func enumField[V ~string](path string, values []V, s slot[V]) Field {
	opts := make([]string, len(values))
	for i, v := range values {
		opts[i] = string(v)
	}
	return Field{
		Path:    path,
		Kind:    KindEnum,
		Options: opts,
		get: func(t *theme.Theme) (string, bool) {
			v, ok := s.value(t)
			if !ok {
				return "", false
			}
			return string(*v), true
		},
		set: func(t *theme.Theme, v string) error {
			if v == "" {
				s.clear(t)
				return nil
			}
			if !slices.Contains(opts, v) {
				return fmt.Errorf("unknown value %q, want one of %s", v, strings.Join(opts, ", "))
			}
			s.put(t, V(v))
			return nil
		},
	}
}

func textField(path string, s slot[string]) Field {
	return Field{
		Path: path,
		Kind: KindText,
		get: func(t *theme.Theme) (string, bool) {
			v, ok := s.value(t)
			if !ok {
				return "", false
			}
			return *v, true
		},
		set: func(t *theme.Theme, v string) error {
			if v == "" {
				s.clear(t)
				return nil
			}
			s.put(t, v)
			return nil
		},
	}
}

func numberField(path string, s slot[float64]) Field {
	return Field{
		Path: path,
		Kind: KindNumber,
		get: func(t *theme.Theme) (string, bool) {
			v, ok := s.value(t)
			if !ok {
				return "", false
			}
			return strconv.FormatFloat(*v, 'f', -1, 64), true
		},
		set: func(t *theme.Theme, v string) error {
			if v == "" {
				s.clear(t)
				return nil
			}
			f, err := strconv.ParseFloat(v, 64)
			if err != nil || math.IsNaN(f) || math.IsInf(f, 0) {
				return fmt.Errorf("not a number: %q", v)
			}
			s.put(t, f)
			return nil
		},
	}
}

// fontField edits the family of the general font. Setting it keeps the
// font's other settings.
func fontField(path string, s slot[theme.Font]) Field {
	return Field{
		Path: path,
		Kind: KindText,
		get: func(t *theme.Theme) (string, bool) {
			f, ok := s.value(t)
			if !ok || f.Family == "" {
				return "", false
			}
			return f.Family, true
		},
		set: func(t *theme.Theme, v string) error {
			if v == "" {
				s.clear(t)
				return nil
			}
			f := theme.Font{Type: theme.FontGoogle}
			if cur, ok := s.value(t); ok {
				f = *cur
			}
			f.Family = v
			s.put(t, f)
			return nil
		},
	}
}

var (
	generalOf    = child(root, func(t *theme.Theme) **theme.GeneralTheme { return &t.General })
	backgroundOf = child(generalOf, func(g *theme.GeneralTheme) **theme.Background { return &g.Background })
	progressOf   = child(generalOf, func(g *theme.GeneralTheme) **theme.ProgressBar { return &g.ProgressBar })
	chatOf       = child(root, func(t *theme.Theme) **theme.ChatTheme { return &t.Chat })
	containerOf  = child(chatOf, func(c *theme.ChatTheme) **theme.ChatContainerTheme { return &c.Container })
	hostOf       = child(chatOf, func(c *theme.ChatTheme) **theme.ContainerTheme { return &c.HostBubbles })
	guestOf      = child(chatOf, func(c *theme.ChatTheme) **theme.ContainerTheme { return &c.GuestBubbles })
	buttonsOf    = child(chatOf, func(c *theme.ChatTheme) **theme.ContainerTheme { return &c.Buttons })
	inputsOf     = child(chatOf, func(c *theme.ChatTheme) **theme.InputTheme { return &c.Inputs })
)

var (
	positions  = []theme.ProgressBarPosition{theme.PositionFixed, theme.PositionAbsolute}
	placements = []theme.ProgressBarPlacement{theme.PlacementTop, theme.PlacementBottom}
)

// surfaceFields are the settings shared by bubbles, buttons and inputs.
func surfaceFields[P any](prefix string, of func(*theme.Theme, bool) *P, inner func(*P) *theme.ContainerTheme) []Field {
	borderOf := child(of, func(p *P) **theme.Border { return &inner(p).Border })
	return []Field{
		textField(prefix+".backgroundColor", leaf(of, func(p *P) **string { return &inner(p).BackgroundColor })),
		textField(prefix+".color", leaf(of, func(p *P) **string { return &inner(p).Color })),
		enumField(prefix+".shadow", theme.ShadowSizes, leaf(of, func(p *P) **theme.ShadowSize { return &inner(p).Shadow })),
		enumField(prefix+".border.roundness", theme.Roundnesses, leaf(borderOf, func(b *theme.Border) **theme.Roundness { return &b.Roundness })),
	}
}

func self(c *theme.ContainerTheme) *theme.ContainerTheme { return c }

// Fields returns every editable setting in display order.
func Fields() []Field {
	fields := []Field{
		enumField("general.background.type", theme.BackgroundTypes,
			leaf(backgroundOf, func(b *theme.Background) **theme.BackgroundType { return &b.Type })),
		textField("general.background.content",
			leaf(backgroundOf, func(b *theme.Background) **string { return &b.Content })),
		fontField("general.font",
			leaf(generalOf, func(g *theme.GeneralTheme) **theme.Font { return &g.Font })),
		enumField("general.progressBar.position", positions,
			leaf(progressOf, func(p *theme.ProgressBar) **theme.ProgressBarPosition { return &p.Position })),
		enumField("general.progressBar.placement", placements,
			leaf(progressOf, func(p *theme.ProgressBar) **theme.ProgressBarPlacement { return &p.Placement })),
		enumField("chat.roundness", theme.Roundnesses,
			leaf(chatOf, func(c *theme.ChatTheme) **theme.Roundness { return &c.Roundness })),
		textField("chat.container.backgroundColor",
			leaf(containerOf, func(c *theme.ChatContainerTheme) **string { return &c.BackgroundColor })),
		numberField("chat.container.opacity",
			leaf(containerOf, func(c *theme.ChatContainerTheme) **float64 { return &c.Opacity })),
		numberField("chat.container.blur",
			leaf(containerOf, func(c *theme.ChatContainerTheme) **float64 { return &c.Blur })),
		enumField("chat.container.shadow", theme.ShadowSizes,
			leaf(containerOf, func(c *theme.ChatContainerTheme) **theme.ShadowSize { return &c.Shadow })),
	}
	fields = append(fields, surfaceFields("chat.hostBubbles", hostOf, self)...)
	fields = append(fields, surfaceFields("chat.guestBubbles", guestOf, self)...)
	fields = append(fields, surfaceFields("chat.buttons", buttonsOf, self)...)
	fields = append(fields, surfaceFields("chat.inputs", inputsOf, func(i *theme.InputTheme) *theme.ContainerTheme { return &i.ContainerTheme })...)
	fields = append(fields, textField("chat.inputs.placeholderColor",
		leaf(inputsOf, func(i *theme.InputTheme) **string { return &i.PlaceholderColor })))
	return fields
}
