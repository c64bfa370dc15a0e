package main

import (
	"context"
	"errors"
	"strings"
	"sync"

	"github.com/rib-format/go-rib/parse"
	"github.com/rib-format/go-rib/scene"
	"github.com/rib-format/go-rib/token"
	"go.lsp.dev/protocol"
)

type documentStore struct {
	mu   sync.RWMutex
	docs map[string]*document
}

// document is an open file and the tree it builds.  root holds whatever
// was built before a parse error.  Trees are never freed: handlers may
// still hold a replaced document.
type document struct {
	uri       string
	content   string
	version   int32
	root      *scene.Node
	positions map[*scene.Node]*token.Pos
	ends      map[*scene.Node]*token.Pos
	err       error
	warnings  []error
}

func newDocument(uri, content string, version int32) *document {
	doc := &document{
		uri:       uri,
		content:   content,
		version:   version,
		positions: make(map[*scene.Node]*token.Pos),
		ends:      make(map[*scene.Node]*token.Pos),
	}
	doc.root, doc.err = parse.Parse([]byte(content),
		parse.ParsePositions(doc.positions),
		parse.ParseBlockEnds(doc.ends),
		parse.ParseWarnings(func(err error) {
			doc.warnings = append(doc.warnings, err)
		}))
	return doc
}

func (ds *documentStore) get(uri string) *document {
	ds.mu.RLock()
	defer ds.mu.RUnlock()
	return ds.docs[uri]
}

func (ds *documentStore) put(uri string, content string, version int32) {
	doc := newDocument(uri, content, version)
	ds.mu.Lock()
	defer ds.mu.Unlock()
	ds.docs[uri] = doc
}

func (ds *documentStore) remove(uri string) {
	ds.mu.Lock()
	defer ds.mu.Unlock()
	delete(ds.docs, uri)
}

func (s *Server) publishDiagnostics(ctx context.Context, uri string) {
	doc := s.docs.get(uri)
	if doc == nil {
		return
	}
	if s.conn != nil {
		s.conn.Notify(ctx, protocol.MethodTextDocumentPublishDiagnostics, &protocol.PublishDiagnosticsParams{
			URI:         protocol.DocumentURI(uri),
			Diagnostics: validateDocument(doc),
		})
	}
}

func validateDocument(doc *document) []protocol.Diagnostic {
	diagnostics := []protocol.Diagnostic{}
	for _, w := range doc.warnings {
		diagnostics = append(diagnostics, diagnostic(doc, w, protocol.DiagnosticSeverityWarning))
	}
	if doc.err != nil {
		diagnostics = append(diagnostics, diagnostic(doc, doc.err, protocol.DiagnosticSeverityError))
	}
	return diagnostics
}

func diagnostic(doc *document, err error, sev protocol.DiagnosticSeverity) protocol.Diagnostic {
	d := protocol.Diagnostic{
		Severity: sev,
		Message:  errMessage(err),
		Source:   lsName,
	}
	if p := errPos(err); p != nil {
		start := position(p)
		d.Range = protocol.Range{Start: start, End: wordEnd(doc.content, p.I, start)}
	}
	return d
}

func errPos(err error) *token.Pos {
	var pErr *parse.ParseErr
	if errors.As(err, &pErr) {
		return &pErr.Pos
	}
	var tErr *token.TokenizeErr
	if errors.As(err, &tErr) {
		return &tErr.Pos
	}
	return nil
}

// errMessage drops the position suffix, which the range already carries.
func errMessage(err error) string {
	var pErr *parse.ParseErr
	if errors.As(err, &pErr) {
		return pErr.Err.Error()
	}
	var tErr *token.TokenizeErr
	if errors.As(err, &tErr) {
		return tErr.Err.Error()
	}
	return err.Error()
}

func position(p *token.Pos) protocol.Position {
	if p == nil || p.D == nil {
		return protocol.Position{}
	}
	line, col := p.LineCol()
	return protocol.Position{Line: uint32(line), Character: uint32(col)}
}

// wordEnd returns the position after the run of non space bytes at off,
// at least one byte past start.
func wordEnd(content string, off int, start protocol.Position) protocol.Position {
	n := 0
	for off+n < len(content) && !strings.ContainsRune(" \t\r\n[]", rune(content[off+n])) {
		n++
	}
	start.Character += uint32(max(n, 1))
	return start
}

func (s *Server) DidOpen(ctx context.Context, params *protocol.DidOpenTextDocumentParams) error {
	s.docs.put(string(params.TextDocument.URI), params.TextDocument.Text, params.TextDocument.Version)
	s.publishDiagnostics(ctx, string(params.TextDocument.URI))
	return nil
}

func (s *Server) DidChange(ctx context.Context, params *protocol.DidChangeTextDocumentParams) error {
	doc := s.docs.get(string(params.TextDocument.URI))
	if doc == nil {
		return nil
	}
	content := applyChanges(doc.content, params.ContentChanges)
	s.docs.put(string(params.TextDocument.URI), content, params.TextDocument.Version)
	s.publishDiagnostics(ctx, string(params.TextDocument.URI))
	return nil
}

func (s *Server) DidClose(ctx context.Context, params *protocol.DidCloseTextDocumentParams) error {
	s.docs.remove(string(params.TextDocument.URI))
	return nil
}

func applyChanges(content string, changes []protocol.TextDocumentContentChangeEvent) string {
	for _, change := range changes {
		r := change.Range
		if r.Start.Line == 0 && r.Start.Character == 0 && r.End.Line == 0 && r.End.Character == 0 {
			content = change.Text
			continue
		}
		start := lineColToOffset(content, int(r.Start.Line), int(r.Start.Character))
		end := lineColToOffset(content, int(r.End.Line), int(r.End.Character))
		if start <= end {
			content = content[:start] + change.Text + content[end:]
		}
	}
	return content
}

func lineColToOffset(content string, line, col int) int {
	currentLine := 0
	currentCol := 0
	for i, r := range content {
		if currentLine == line && currentCol == col {
			return i
		}
		if r == '\n' {
			if currentLine == line {
				return i
			}
			currentLine++
			currentCol = 0
		} else {
			currentCol++
		}
	}
	return len(content)
}
