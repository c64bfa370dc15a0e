package main

import (
	"context"
	"fmt"
	"strings"

	"github.com/rib-format/go-rib/encode"
	"github.com/rib-format/go-rib/scene"
	"go.lsp.dev/protocol"
)

func (s *Server) Hover(ctx context.Context, params *protocol.HoverParams) (*protocol.Hover, error) {
	doc := s.docs.get(string(params.TextDocument.URI))
	if doc == nil || doc.root == nil {
		return nil, nil
	}
	n := findNodeAtPosition(doc, int(params.Position.Line), int(params.Position.Character))
	if n == nil {
		return nil, nil
	}
	return &protocol.Hover{
		Contents: protocol.MarkupContent{
			Kind:  protocol.Markdown,
			Value: buildHoverText(n),
		},
	}, nil
}

// findNodeAtPosition returns the node whose directive is the last one on
// line starting at or before col.
func findNodeAtPosition(doc *document, line, col int) *scene.Node {
	var best *scene.Node
	bestCol := -1
	for n := range doc.root.All() {
		p := doc.positions[n]
		if p == nil {
			continue
		}
		l, c := p.LineCol()
		if l != line || c > col || c <= bestCol {
			continue
		}
		best, bestCol = n, c
	}
	return best
}

func buildHoverText(n *scene.Node) string {
	parts := []string{fmt.Sprintf("**%s**", n.Type())}
	if n.Type() == scene.GroupType {
		parts = append(parts, fmt.Sprintf("%d children", len(n.Children)))
		return strings.Join(parts, "\n\n")
	}
	for _, f := range encode.Fields(n.Payload()) {
		parts = append(parts, fmt.Sprintf("`%s` %s", f.Name, f.Value))
	}
	if ps := encode.Params(n.Payload()); len(ps) > 0 {
		parts = append(parts, "**Parameters**")
		for _, f := range ps {
			parts = append(parts, fmt.Sprintf("`%s` %s", f.Name, f.Value))
		}
	}
	return strings.Join(parts, "\n\n")
}
