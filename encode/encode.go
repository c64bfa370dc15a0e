package encode

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/goccy/go-yaml"
	"github.com/rib-format/go-rib/debug"
	"github.com/rib-format/go-rib/format"
	"github.com/rib-format/go-rib/scene"
)

func Encode(node *scene.Node, w io.Writer, opts ...EncodeOption) error {
	es := &EncState{indent: 2}
	for _, opt := range opts {
		opt(es)
	}
	if debug.Encode() {
		debug.Logf("encode %s as %s\n", node, es.format)
	}
	switch es.format {
	case format.TextFormat:
		return encodeText(node, w, es)
	case format.JSONFormat:
		return encodeJSON(node, w, es)
	case format.YAMLFormat:
		return encodeYAML(node, w, es)
	case format.RIBFormat:
		return encodeRIB(node, w, es)
	}
	return fmt.Errorf("%w: %d", format.ErrBadFormat, es.format)
}

func MustString(node *scene.Node, opts ...EncodeOption) string {
	buf := bytes.NewBuffer(nil)
	if err := Encode(node, buf, opts...); err != nil {
		panic(err)
	}
	return strings.TrimSpace(buf.String())
}

func encodeText(node *scene.Node, w io.Writer, es *EncState) error {
	var err error
	node.Walk(func(n *scene.Node) bool {
		if err != nil {
			return false
		}
		depth := n.Depth() - node.Depth()
		if es.maxDepth > 0 && depth >= es.maxDepth {
			return false
		}
		err = writeTextNode(w, n, depth, es)
		return true
	})
	return err
}

func writeTextNode(w io.Writer, n *scene.Node, depth int, es *EncState) error {
	t := n.Type()
	var b strings.Builder
	b.WriteString(strings.Repeat(" ", depth*es.indent))
	b.WriteString(es.color(t, TypeColor, t.String()))
	for _, f := range Fields(n.Payload()) {
		b.WriteByte(' ')
		b.WriteString(es.color(t, FieldColor, f.Name+"="))
		b.WriteString(es.color(t, valueAttr(f.Value), f.Value))
	}
	b.WriteByte('\n')
	pad := strings.Repeat(" ", (depth+1)*es.indent)
	for _, f := range Params(n.Payload()) {
		b.WriteString(pad)
		b.WriteString(es.color(t, KeyColor, f.Name))
		b.WriteByte(' ')
		b.WriteString(es.color(t, valueAttr(f.Value), f.Value))
		b.WriteByte('\n')
	}
	_, err := io.WriteString(w, b.String())
	return err
}

func valueAttr(v string) ColorAttr {
	if strings.HasPrefix(v, `"`) || strings.HasPrefix(v, `["`) {
		return StringColor
	}
	return ValueColor
}

func encodeJSON(node *scene.Node, w io.Writer, es *EncState) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", strings.Repeat(" ", es.indent))
	return enc.Encode(node)
}

func encodeYAML(node *scene.Node, w io.Writer, es *EncState) error {
	d, err := yaml.MarshalWithOptions(node, yaml.UseJSONMarshaler(), yaml.Indent(es.indent))
	if err != nil {
		return err
	}
	_, err = w.Write(d)
	return err
}
