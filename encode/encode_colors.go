package encode

import (
	"strings"

	"github.com/signadot/sdl-format/go-sdl/literal"

	"github.com/fatih/color"
)

type Colorable struct {
	Kind literal.Kind
	Attr ColorAttr
}

type ColorAttr int

const (
	NameColor ColorAttr = iota
	NamespaceColor
	AttrKeyColor
	ValueColor
	SepColor
)

type Colors struct {
	Default func(string, ...any) string
	Map     map[Colorable]func(string, ...any) string
}

// NewColors returns the default palette. Names, namespaces, keys and
// separators are colored the same whatever the value kind.
func NewColors() *Colors {
	colors := &Colors{
		Default: colorDefault,
		Map:     map[Colorable]func(string, ...any) string{},
	}
	for _, k := range literal.Kinds() {
		able := Colorable{Kind: k, Attr: NameColor}
		colors.Map[able] = color.RGB(74, 92, 138).SprintfFunc()
		able.Attr = NamespaceColor
		colors.Map[able] = color.RGB(128, 168, 196).SprintfFunc()
		able.Attr = AttrKeyColor
		colors.Map[able] = color.RGB(196, 96, 16).SprintfFunc()
		able.Attr = SepColor
		colors.Map[able] = color.RGB(255, 0, 196).SprintfFunc()
	}
	able := Colorable{Attr: ValueColor}
	for _, k := range []literal.Kind{literal.Int32Kind, literal.Int64Kind, literal.Float32Kind, literal.Float64Kind, literal.DecimalKind} {
		able.Kind = k
		colors.Map[able] = color.RGB(128, 216, 236).SprintfFunc()
	}
	able.Kind = literal.NullKind
	colors.Map[able] = color.RGB(168, 0, 196).SprintfFunc()
	able.Kind = literal.BoolKind
	colors.Map[able] = color.CyanString
	able.Kind = literal.StringKind
	colors.Map[able] = color.RGB(8, 196, 16).SprintfFunc()
	able.Kind = literal.CharKind
	colors.Map[able] = color.RGB(88, 158, 86).SprintfFunc()
	able.Kind = literal.BinaryKind
	colors.Map[able] = color.RGB(96, 96, 96).SprintfFunc()
	for _, k := range []literal.Kind{literal.DateKind, literal.DateTimeKind, literal.DurationKind} {
		able.Kind = k
		colors.Map[able] = color.RGB(198, 198, 46).SprintfFunc()
	}
	for k, f := range colors.Map {
		colors.Map[k] = func(v string, _ ...any) string {
			return f(strings.ReplaceAll(v, "%", "%%"))
		}
	}
	return colors
}

func colorDefault(v string, _ ...any) string { return v }

func (c *Colors) Color(k literal.Kind, a ColorAttr, s string) string {
	return c.Get(k, a)(s)
}

func (c *Colors) Get(k literal.Kind, a ColorAttr) func(string, ...any) string {
	f := c.Map[Colorable{Kind: k, Attr: a}]
	if f == nil {
		return c.Default
	}
	return f
}
