package main

import (
	"errors"
	"fmt"
	"io"

	"github.com/signadot/sdl-format/go-sdl/encode"
	"github.com/signadot/sdl-format/go-sdl/ir"
	"github.com/signadot/sdl-format/go-sdl/parse"

	"github.com/scott-cotton/cli"
)

func view(cfg *ViewConfig, cc *cli.Context, args []string) error {
	args, err := cfg.View.Parse(cc, args)
	if err != nil {
		return err
	}
	return viewFiles(cfg, cc, cc.Out, fileArgs(args))
}

func viewFiles(cfg *ViewConfig, cc *cli.Context, w io.Writer, files []string) error {
	opts := cfg.encOpts(w)
	for _, file := range files {
		nodes, err := getDocFile(cc, file)
		if err != nil {
			return fmt.Errorf("error processing %s: %w", file, err)
		}
		if err := viewNodes(cfg, w, nodes, opts); err != nil {
			return fmt.Errorf("error encoding %s: %w", file, err)
		}
	}
	return nil
}

func viewNodes(cfg *ViewConfig, w io.Writer, nodes []*ir.Node, opts []encode.EncodeOption) error {
	if !cfg.Root {
		return encode.EncodeForest(nodes, w, opts...)
	}
	root := ir.MustNew("root")
	for _, n := range nodes {
		if err := root.AddChild(n); err != nil {
			return err
		}
	}
	return encode.Encode(root, w, opts...)
}

// parseErrAttrs returns slog attributes locating a parse error.
func parseErrAttrs(err error) []any {
	var pe *parse.Error
	if !errors.As(err, &pe) {
		return []any{"error", err}
	}
	return []any{"line", pe.Line, "position", pe.Position, "error", pe.Description}
}
