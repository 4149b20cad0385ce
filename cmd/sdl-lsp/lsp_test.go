package main

import (
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestDiagnostics(t *testing.T) {
	doc := newDocument("file:///a.sdl", "a 1\nb {\n  c ;\n}\n", 1)
	ds := diagnostics(doc)
	if len(ds) != 1 {
		t.Fatalf("got %d diagnostics", len(ds))
	}
	if got := ds[0].Range.Start.Line; got != 2 {
		t.Errorf("line %d want 2", got)
	}
	if ds[0].Code != "lexical" {
		t.Errorf("code %v", ds[0].Code)
	}
	if ds := diagnostics(newDocument("file:///b.sdl", "a 1\n", 1)); len(ds) != 0 {
		t.Errorf("unexpected diagnostics %v", ds)
	}
}

func TestSemanticTokens(t *testing.T) {
	got := semanticTokens("ns:a 12 k=\"s\" {\n}\n")
	want := []uint32{
		0, 0, 2, stNamespace, 0,
		0, 2, 1, stOperator, 0,
		0, 1, 1, stType, 1,
		0, 2, 2, stNumber, 0,
		0, 3, 1, stProperty, 0,
		0, 1, 1, stOperator, 0,
		0, 1, 3, stString, 0,
		0, 4, 1, stOperator, 0,
		1, 0, 1, stOperator, 0,
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("semantic tokens (-want +got):\n%s", diff)
	}
}

func TestFormatEdits(t *testing.T) {
	doc := newDocument("file:///a.sdl", "a   1 {\nb\n}", 1)
	edits, err := formatEdits(doc)
	if err != nil {
		t.Fatal(err)
	}
	if len(edits) != 1 {
		t.Fatalf("got %d edits", len(edits))
	}
	if got, want := edits[0].NewText, "a 1 {\n    b\n}\n"; got != want {
		t.Errorf("got %q want %q", got, want)
	}
	if edits[0].Range.End.Line != 3 {
		t.Errorf("end line %d", edits[0].Range.End.Line)
	}
	canon := newDocument("file:///b.sdl", edits[0].NewText, 2)
	if edits, _ := formatEdits(canon); len(edits) != 0 {
		t.Errorf("canonical document produced edits %v", edits)
	}
}

func TestHover(t *testing.T) {
	doc := newDocument("file:///a.sdl", "a {\n    x:b 1 k=true\n}\n", 1)
	n := nodeAtLine(doc.nodes, doc.positions, 1)
	if n == nil || n.QName() != "x:b" {
		t.Fatalf("node at line 1: %v", n)
	}
	text := hoverText(n)
	for _, want := range []string{"`x:b`", "`1` Int32", "`k` Bool", "x:b 1 k=true"} {
		if !strings.Contains(text, want) {
			t.Errorf("hover %q missing %q", text, want)
		}
	}
	if nodeAtLine(doc.nodes, doc.positions, 2) != nil {
		t.Errorf("found node on closing line")
	}
}
