package main

import (
	"context"
	"strings"

	"github.com/rib-format/go-rib/parse"
	"go.lsp.dev/protocol"
)

func (s *Server) Completion(ctx context.Context, params *protocol.CompletionParams) (*protocol.CompletionList, error) {
	doc := s.docs.get(string(params.TextDocument.URI))
	if doc == nil {
		return nil, nil
	}
	prefix, ok := wordBefore(doc.content, int(params.Position.Line), int(params.Position.Character))
	if !ok {
		return &protocol.CompletionList{}, nil
	}
	return &protocol.CompletionList{
		IsIncomplete: false,
		Items:        directiveCompletions(prefix),
	}, nil
}

// wordBefore returns the identifier ending at line, col.  It reports false
// inside strings, comments and numbers, where no directive can start.
func wordBefore(content string, line, col int) (string, bool) {
	start := lineColToOffset(content, line, 0)
	end := lineColToOffset(content, line, col)
	text := content[start:end]
	if strings.Count(text, `"`)%2 == 1 || strings.ContainsRune(text, '#') {
		return "", false
	}
	i := len(text)
	for i > 0 && isIdentByte(text[i-1]) {
		i--
	}
	word := text[i:]
	if word != "" && !isLetter(word[0]) {
		return "", false
	}
	return word, true
}

func directiveCompletions(prefix string) []protocol.CompletionItem {
	completions := []protocol.CompletionItem{}
	for _, name := range parse.Directives() {
		if !strings.HasPrefix(name, prefix) {
			continue
		}
		completions = append(completions, protocol.CompletionItem{
			Label:      name,
			Kind:       protocol.CompletionItemKindKeyword,
			InsertText: name,
		})
	}
	return completions
}

func isLetter(c byte) bool {
	return c >= 'a' && c <= 'z' || c >= 'A' && c <= 'Z' || c == '_'
}

func isIdentByte(c byte) bool {
	return isLetter(c) || c >= '0' && c <= '9'
}
