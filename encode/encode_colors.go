package encode

import (
	"strings"

	"github.com/fatih/color"
	"github.com/rib-format/go-rib/scene"
)

type Colorable struct {
	Type scene.Type
	Attr ColorAttr
}

type ColorAttr int

const (
	TypeColor ColorAttr = iota
	FieldColor
	ValueColor
	StringColor
	KeyColor
)

type Colors struct {
	Default func(string, ...any) string
	Map     map[Colorable]func(string, ...any) string
}

func NewColors() *Colors {
	colors := &Colors{
		Default: colorDefault,
		Map:     map[Colorable]func(string, ...any) string{},
	}
	for _, t := range scene.Types() {
		able := Colorable{Type: t}
		able.Attr = FieldColor
		colors.Map[able] = color.RGB(74, 92, 138).SprintfFunc()
		able.Attr = ValueColor
		colors.Map[able] = color.RGB(128, 216, 236).SprintfFunc()
		able.Attr = StringColor
		colors.Map[able] = color.RGB(8, 196, 16).SprintfFunc()
		able.Attr = KeyColor
		colors.Map[able] = color.RGB(196, 96, 16).SprintfFunc()

		able.Attr = TypeColor
		switch {
		case t == scene.GroupType:
			colors.Map[able] = color.RGB(96, 96, 96).SprintfFunc()
		case t.IsTransform():
			colors.Map[able] = color.RGB(196, 128, 128).SprintfFunc()
		case t.IsQuadric():
			colors.Map[able] = color.CyanString
		case t.IsMesh():
			colors.Map[able] = color.RGB(198, 198, 46).SprintfFunc()
		default:
			colors.Map[able] = color.RGB(168, 0, 196).SprintfFunc()
		}
	}
	for k, f := range colors.Map {
		colors.Map[k] = func(v string, _ ...any) string {
			return f(strings.ReplaceAll(v, "%", "%%"))
		}
	}
	return colors
}

func colorDefault(v string, _ ...any) string { return v }

func (c *Colors) Color(t scene.Type, a ColorAttr, s string) string {
	return c.Get(t, a)(s)
}

func (c *Colors) Get(t scene.Type, a ColorAttr) func(string, ...any) string {
	f := c.Map[Colorable{Type: t, Attr: a}]
	if f == nil {
		return c.Default
	}
	return f
}
