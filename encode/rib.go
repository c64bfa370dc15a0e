package encode

import (
	"io"
	"strings"

	"github.com/rib-format/go-rib/scene"
	"github.com/rib-format/go-rib/token"
)

// encodeRIB writes directives that rebuild the tree under node.  Groups
// become AttributeBegin/AttributeEnd pairs; node itself is not written.
func encodeRIB(node *scene.Node, w io.Writer, es *EncState) error {
	rw := &ribWriter{w: w, indent: es.indent}
	return node.Visit(func(n *scene.Node, isPost bool) (bool, error) {
		if n == node {
			return true, nil
		}
		if n.Type() == scene.GroupType {
			if isPost {
				rw.depth--
				return true, rw.line("AttributeEnd")
			}
			err := rw.line("AttributeBegin")
			rw.depth++
			return true, err
		}
		if isPost {
			return true, nil
		}
		return true, rw.line(directive(n.Payload()))
	})
}

type ribWriter struct {
	w      io.Writer
	indent int
	depth  int
}

func (rw *ribWriter) line(s string) error {
	_, err := io.WriteString(rw.w, strings.Repeat(" ", rw.depth*rw.indent)+s+"\n")
	return err
}

func directive(p scene.Payload) string {
	var b strings.Builder
	b.WriteString(p.Type().String())
	switch p := p.(type) {
	case *scene.ConcatTransform:
		b.WriteByte(' ')
		b.WriteString(FloatList(p.Matrix[:]))
	case *scene.PointsGeneralPolygons:
		writeInts(&b, p.NLoops, p.NVertices, p.Vertices)
	case *scene.PointsPolygons:
		writeInts(&b, p.NVertices, p.Vertices)
	case *scene.Attribute:
		b.WriteByte(' ')
		b.WriteString(token.Quote(p.Name))
	case scene.Block:
		b.WriteByte(' ')
		b.WriteString(token.Quote(p.Class()))
		b.WriteByte(' ')
		b.WriteString(token.Quote(p.Ident()))
	default:
		for _, f := range Fields(p) {
			b.WriteByte(' ')
			b.WriteString(f.Value)
		}
	}
	writeParams(&b, p)
	return b.String()
}

func writeInts(b *strings.Builder, vs ...[]int) {
	for _, v := range vs {
		b.WriteByte(' ')
		b.WriteString(IntList(v))
	}
}

func writeParams(b *strings.Builder, p scene.Payload) {
	switch p := p.(type) {
	case scene.Block:
		ps := p.ParamSet()
		for _, k := range ps.Floats.Keys() {
			b.WriteString(" " + token.Quote("float "+k) + " " + FloatList(ps.Floats[k]))
		}
		for _, k := range ps.Strings.Keys() {
			b.WriteString(" " + token.Quote("string "+k) + " " + quotedList(ps.Strings[k]))
		}
	case scene.Mesh:
		fs := *p.FloatParams()
		for _, k := range fs.Keys() {
			b.WriteString(" " + token.Quote(k) + " " + FloatList(fs[k]))
		}
	}
}

func quotedList(v []string) string {
	parts := make([]string, len(v))
	for i, s := range v {
		parts[i] = token.Quote(s)
	}
	return "[" + strings.Join(parts, " ") + "]"
}
