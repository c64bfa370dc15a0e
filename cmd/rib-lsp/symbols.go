package main

import (
	"context"
	"strings"

	"github.com/rib-format/go-rib/encode"
	"github.com/rib-format/go-rib/scene"
	"go.lsp.dev/protocol"
)

func (s *Server) DocumentSymbol(ctx context.Context, params *protocol.DocumentSymbolParams) ([]interface{}, error) {
	doc := s.docs.get(string(params.TextDocument.URI))
	if doc == nil || doc.root == nil {
		return nil, nil
	}
	var res []interface{}
	for _, sym := range documentSymbols(doc, doc.root) {
		res = append(res, sym)
	}
	return res, nil
}

// documentSymbols returns the symbols of the children of n.  Nodes without
// a recorded position are skipped along with their subtree.
func documentSymbols(doc *document, n *scene.Node) []protocol.DocumentSymbol {
	var res []protocol.DocumentSymbol
	for _, c := range n.Children {
		p := doc.positions[c]
		if p == nil {
			continue
		}
		start := position(p)
		sel := protocol.Range{Start: start, End: wordEnd(doc.content, p.I, start)}
		rng := sel
		if e := doc.ends[c]; e != nil {
			end := position(e)
			rng.End = wordEnd(doc.content, e.I, end)
		}
		res = append(res, protocol.DocumentSymbol{
			Name:           symbolName(doc, c, p.I),
			Detail:         symbolDetail(c),
			Kind:           symbolKind(c.Type()),
			Range:          rng,
			SelectionRange: sel,
			Children:       documentSymbols(doc, c),
		})
	}
	return res
}

func symbolName(doc *document, n *scene.Node, off int) string {
	if b, ok := n.Payload().(scene.Block); ok {
		return n.Type().String() + " " + b.Ident()
	}
	if n.Type() == scene.GroupType {
		end := off
		for end < len(doc.content) && !strings.ContainsRune(" \t\r\n", rune(doc.content[end])) {
			end++
		}
		return doc.content[off:end]
	}
	return n.Type().String()
}

func symbolDetail(n *scene.Node) string {
	if n.Type() == scene.GroupType {
		return ""
	}
	fs := encode.Fields(n.Payload())
	parts := make([]string, len(fs))
	for i, f := range fs {
		parts[i] = f.Name + "=" + f.Value
	}
	return strings.Join(parts, " ")
}

func symbolKind(t scene.Type) protocol.SymbolKind {
	switch {
	case t == scene.GroupType:
		return protocol.SymbolKindNamespace
	case t.IsTransform():
		return protocol.SymbolKindOperator
	case t == scene.AttributeType:
		return protocol.SymbolKindProperty
	case t.IsAttribute():
		return protocol.SymbolKindFunction
	default:
		return protocol.SymbolKindObject
	}
}

func (s *Server) FoldingRanges(ctx context.Context, params *protocol.FoldingRangeParams) ([]protocol.FoldingRange, error) {
	doc := s.docs.get(string(params.TextDocument.URI))
	if doc == nil || doc.root == nil {
		return nil, nil
	}
	return foldingRanges(doc), nil
}

// foldingRanges folds every group spanning more than one line, in
// document order.
func foldingRanges(doc *document) []protocol.FoldingRange {
	var res []protocol.FoldingRange
	doc.root.Walk(func(n *scene.Node) bool {
		p, e := doc.positions[n], doc.ends[n]
		if p == nil || e == nil {
			return true
		}
		start, end := p.Line(), e.Line()
		if end > start {
			res = append(res, protocol.FoldingRange{
				StartLine: uint32(start),
				EndLine:   uint32(end),
				Kind:      protocol.RegionFoldingRange,
			})
		}
		return true
	})
	return res
}
