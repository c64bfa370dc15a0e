package main

import (
	"context"
	"math"

	"github.com/rib-format/go-rib/parse"
	"github.com/rib-format/go-rib/token"
	"go.lsp.dev/protocol"
)

var (
	tokenTypes = []protocol.SemanticTokenTypes{
		protocol.SemanticTokenComment,
		protocol.SemanticTokenKeyword,
		protocol.SemanticTokenString,
		protocol.SemanticTokenNumber,
		protocol.SemanticTokenOperator,
		protocol.SemanticTokenProperty,
	}
	tokenModifiers = []protocol.SemanticTokenModifiers{
		protocol.SemanticTokenModifierDefinition,
		protocol.SemanticTokenModifierModification,
	}
)

const (
	semComment uint32 = iota
	semKeyword
	semString
	semNumber
	semOperator
	semProperty
)

func semanticType(t *token.Token) uint32 {
	switch t.Type {
	case token.TComment:
		return semComment
	case token.TIdent:
		if parse.IsDirective(string(t.Bytes)) {
			return semKeyword
		}
		return semProperty
	case token.TString:
		return semString
	case token.TInteger, token.TFloat:
		return semNumber
	default:
		return semOperator
	}
}

// collectSemanticTokens encodes the tokens of content on lines
// [from, to) relative to each other.  Tokens after a tokenize error are
// not reported.
func collectSemanticTokens(content string, from, to int) []uint32 {
	toks, _ := token.Tokenize(nil, []byte(content))
	data := []uint32{}
	var prevLine, prevChar uint32
	for i := range toks {
		t := &toks[i]
		line, col := t.Pos.LineCol()
		if line < from || line >= to {
			continue
		}
		l, c := uint32(line), uint32(col)
		deltaChar := c
		if l == prevLine {
			deltaChar = c - prevChar
		}
		data = append(data, l-prevLine, deltaChar, uint32(len(t.Bytes)), semanticType(t), 0)
		prevLine, prevChar = l, c
	}
	return data
}

func (s *Server) SemanticTokensFull(ctx context.Context, params *protocol.SemanticTokensParams) (*protocol.SemanticTokens, error) {
	doc := s.docs.get(string(params.TextDocument.URI))
	if doc == nil {
		return &protocol.SemanticTokens{Data: []uint32{}}, nil
	}
	return &protocol.SemanticTokens{
		Data: collectSemanticTokens(doc.content, 0, math.MaxInt),
	}, nil
}

func (s *Server) SemanticTokensRange(ctx context.Context, params *protocol.SemanticTokensRangeParams) (*protocol.SemanticTokens, error) {
	doc := s.docs.get(string(params.TextDocument.URI))
	if doc == nil {
		return &protocol.SemanticTokens{Data: []uint32{}}, nil
	}
	return &protocol.SemanticTokens{
		Data: collectSemanticTokens(doc.content, int(params.Range.Start.Line), int(params.Range.End.Line)+1),
	}, nil
}
