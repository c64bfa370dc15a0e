package encode

import (
	"github.com/rib-format/go-rib/format"
	"github.com/rib-format/go-rib/scene"
)

type EncodeOption func(*EncState)

func EncodeFormat(f format.Format) EncodeOption {
	return func(es *EncState) { es.format = f }
}

func EncodeColors(c *Colors) EncodeOption {
	return func(es *EncState) { es.Color = c.Color }
}

// Indent sets the number of spaces per tree level.
func Indent(n int) EncodeOption {
	return func(es *EncState) { es.indent = n }
}

// MaxDepth stops text output below depth n; 0 means no limit.
func MaxDepth(n int) EncodeOption {
	return func(es *EncState) { es.maxDepth = n }
}

type EncState struct {
	indent   int
	maxDepth int
	format   format.Format

	Color func(scene.Type, ColorAttr, string) string
}

func (es *EncState) color(t scene.Type, a ColorAttr, s string) string {
	if es.Color == nil {
		return s
	}
	return es.Color(t, a, s)
}
