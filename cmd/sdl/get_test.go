package main

import (
	"strings"
	"testing"

	"github.com/signadot/sdl-format/go-sdl/encode"
	"github.com/signadot/sdl-format/go-sdl/format"
	"github.com/signadot/sdl-format/go-sdl/parse"
)

const people = `person:john age=36 {
    address "1 Main St"
}
person:jane {
    address "2 Side St"
    public:phone "555"
}
other 1
`

func TestSelectPath(t *testing.T) {
	nodes, err := parse.ParseString(people)
	if err != nil {
		t.Fatal(err)
	}
	tests := []struct {
		path string
		want int
	}{
		{"person:*", 2},
		{"person:*/address", 2},
		{"*/address", 2},
		{"/person:jane/*", 2},
		{"person:jane/public:*", 1},
		{"john", 1},
		{"other/x", 0},
		{"nope", 0},
	}
	for _, tt := range tests {
		got := selectPath(nodes, tt.path)
		if len(got) != tt.want {
			t.Errorf("%s: got %d nodes want %d", tt.path, len(got), tt.want)
		}
	}
}

func TestWriteValues(t *testing.T) {
	nodes, err := parse.ParseString(people)
	if err != nil {
		t.Fatal(err)
	}
	buf := &strings.Builder{}
	if err := writeValues(buf, selectPath(nodes, "*/address")); err != nil {
		t.Fatal(err)
	}
	if got, want := buf.String(), "\"1 Main St\"\n\"2 Side St\"\n"; got != want {
		t.Errorf("got %q want %q", got, want)
	}
}

func TestDecodeTree(t *testing.T) {
	nodes, err := parse.ParseString("a 1 k=true {\n    b \"x\"\n}\nc\n")
	if err != nil {
		t.Fatal(err)
	}
	buf := &strings.Builder{}
	if err := encode.EncodeForest(nodes, buf, encode.EncodeFormat(format.JSONFormat)); err != nil {
		t.Fatal(err)
	}
	got, err := decodeTree([]byte(buf.String()))
	if err != nil {
		t.Fatal(err)
	}
	if len(got) != 2 || !got[0].Equal(nodes[0]) || !got[1].Equal(nodes[1]) {
		t.Errorf("decoded %v", got)
	}
	one, err := decodeTree([]byte(`{"name": "x", "values": ["5L"]}`))
	if err != nil {
		t.Fatal(err)
	}
	if len(one) != 1 || encode.MustString(one[0]) != "x 5L" {
		t.Errorf("decoded %q", encode.MustString(one[0]))
	}
}
