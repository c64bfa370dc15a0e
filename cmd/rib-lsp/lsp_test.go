package main

import (
	"context"
	"testing"

	"github.com/google/go-cmp/cmp"
	"go.lsp.dev/protocol"
)

const uri = "file:///scene.rib"

const sceneRIB = `WorldBegin
  AttributeBegin
    Translate 0 0 1
    Sphere 1 -1 1 360
  AttributeEnd
  Light "PxrDomeLight" "dome" "float intensity" [2]
WorldEnd
`

func openDoc(t *testing.T, content string) *Server {
	t.Helper()
	s := newServer()
	err := s.DidOpen(context.Background(), &protocol.DidOpenTextDocumentParams{
		TextDocument: protocol.TextDocumentItem{URI: uri, Text: content, Version: 1},
	})
	if err != nil {
		t.Fatal(err)
	}
	return s
}

func TestValidateDocument(t *testing.T) {
	s := openDoc(t, sceneRIB)
	if ds := validateDocument(s.docs.get(uri)); len(ds) != 0 {
		t.Errorf("clean document: got %v", ds)
	}

	s = openDoc(t, "Sphere 1 -1 1 360\nBogus 1 2\nTranslate [1 2\n")
	ds := validateDocument(s.docs.get(uri))
	if len(ds) != 2 {
		t.Fatalf("got %d diagnostics: %v", len(ds), ds)
	}
	if ds[0].Severity != protocol.DiagnosticSeverityWarning || ds[0].Range.Start.Line != 1 {
		t.Errorf("warning: %+v", ds[0])
	}
	if ds[0].Range.End.Character != 5 {
		t.Errorf("warning end: %+v", ds[0].Range)
	}
	if ds[1].Severity != protocol.DiagnosticSeverityError {
		t.Errorf("error: %+v", ds[1])
	}
}

func TestDocumentSymbols(t *testing.T) {
	s := openDoc(t, sceneRIB)
	syms := documentSymbols(s.docs.get(uri), s.docs.get(uri).root)
	if len(syms) != 1 {
		t.Fatalf("got %d top level symbols", len(syms))
	}
	world := syms[0]
	if world.Name != "WorldBegin" || world.Kind != protocol.SymbolKindNamespace {
		t.Errorf("world: %s %v", world.Name, world.Kind)
	}
	if world.Range.Start.Line != 0 || world.Range.End.Line != 6 {
		t.Errorf("world range: %+v", world.Range)
	}
	var names []string
	for _, c := range world.Children {
		names = append(names, c.Name)
	}
	if diff := cmp.Diff([]string{"AttributeBegin", "Light dome"}, names); diff != "" {
		t.Errorf("children (-want +got):\n%s", diff)
	}
	attr := world.Children[0]
	if len(attr.Children) != 2 || attr.Children[1].Detail != "radius=1 zmin=-1 zmax=1 thetamax=360" {
		t.Errorf("attribute children: %+v", attr.Children)
	}
}

func TestFoldingRanges(t *testing.T) {
	s := openDoc(t, sceneRIB)
	got := foldingRanges(s.docs.get(uri))
	want := []protocol.FoldingRange{
		{StartLine: 0, EndLine: 6, Kind: protocol.RegionFoldingRange},
		{StartLine: 1, EndLine: 4, Kind: protocol.RegionFoldingRange},
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("folding (-want +got):\n%s", diff)
	}
}

func TestHover(t *testing.T) {
	s := openDoc(t, sceneRIB)
	h, err := s.Hover(context.Background(), &protocol.HoverParams{
		TextDocumentPositionParams: protocol.TextDocumentPositionParams{
			TextDocument: protocol.TextDocumentIdentifier{URI: uri},
			Position:     protocol.Position{Line: 5, Character: 10},
		},
	})
	if err != nil {
		t.Fatal(err)
	}
	want := "**Light**\n\n`type` \"PxrDomeLight\"\n\n`name` \"dome\"\n\n**Parameters**\n\n`intensity` [2]"
	if diff := cmp.Diff(want, h.Contents.Value); diff != "" {
		t.Errorf("hover (-want +got):\n%s", diff)
	}
	if n := findNodeAtPosition(s.docs.get(uri), 0, 0); n == nil || len(n.Children) != 2 {
		t.Errorf("world not found at 0:0")
	}
}

func TestCompletion(t *testing.T) {
	var labels []string
	for _, it := range directiveCompletions("Attr") {
		labels = append(labels, it.Label)
	}
	if diff := cmp.Diff([]string{"Attribute", "AttributeBegin", "AttributeEnd"}, labels); diff != "" {
		t.Errorf("completions (-want +got):\n%s", diff)
	}
	cases := []struct {
		line, col int
		word      string
		ok        bool
	}{
		{2, 8, "Tran", true},
		{2, 4, "", true},
		{5, 12, "", false},
		{3, 12, "", false},
	}
	for _, c := range cases {
		w, ok := wordBefore(sceneRIB, c.line, c.col)
		if w != c.word || ok != c.ok {
			t.Errorf("wordBefore(%d, %d): got %q %v", c.line, c.col, w, ok)
		}
	}
}

func TestSemanticTokens(t *testing.T) {
	got := collectSemanticTokens("# hi\nSphere 1 [\"a\"]\n", 0, 10)
	want := []uint32{
		0, 0, 4, semComment, 0,
		1, 0, 6, semKeyword, 0,
		0, 7, 1, semNumber, 0,
		0, 2, 1, semOperator, 0,
		0, 1, 3, semString, 0,
		0, 3, 1, semOperator, 0,
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("tokens (-want +got):\n%s", diff)
	}
	if got := collectSemanticTokens("# hi\nSphere 1\n", 1, 2); len(got) != 10 || got[0] != 1 {
		t.Errorf("range tokens: %v", got)
	}
}

func TestApplyChanges(t *testing.T) {
	got := applyChanges("Sphere 1 -1 1 360\n", []protocol.TextDocumentContentChangeEvent{{
		Range: protocol.Range{
			Start: protocol.Position{Line: 0, Character: 7},
			End:   protocol.Position{Line: 0, Character: 8},
		},
		Text: "2",
	}})
	if got != "Sphere 2 -1 1 360\n" {
		t.Errorf("got %q", got)
	}
	got = applyChanges("x", []protocol.TextDocumentContentChangeEvent{{Text: "Disk 0 1 360\n"}})
	if got != "Disk 0 1 360\n" {
		t.Errorf("full replace: got %q", got)
	}
}
