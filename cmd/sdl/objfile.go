package main

import (
	"io"

	"github.com/signadot/sdl-format/go-sdl/ir"
	"github.com/signadot/sdl-format/go-sdl/parse"

	"github.com/scott-cotton/cli"
)

// getDocFile parses the document at path, or standard input if path is
// "-".
func getDocFile(cc *cli.Context, path string, opts ...parse.ParseOption) ([]*ir.Node, error) {
	if path != "-" {
		return parse.ParseFile(path, opts...)
	}
	// hide any Close method so the parser leaves stdin open.
	return parse.ParseReader(struct{ io.Reader }{cc.In}, opts...)
}

func fileArgs(args []string) []string {
	if len(args) == 0 {
		return []string{"-"}
	}
	return args
}
