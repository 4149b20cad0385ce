package main

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/signadot/sdl-format/go-sdl/encode"
	"github.com/signadot/sdl-format/go-sdl/format"
	"github.com/signadot/sdl-format/go-sdl/ir"

	"github.com/goccy/go-yaml"
	"github.com/scott-cotton/cli"
)

func load(cfg *LoadConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Load.Parse(cc, args)
	if err != nil {
		return err
	}
	if len(args) == 0 {
		return loadReader(cfg, cc.Out, cc.In, cfg.inFormat(""))
	}
	for _, file := range args {
		if err := loadFile(cfg, cc.Out, file); err != nil {
			return err
		}
	}
	return nil
}

// inFormat returns the format of the tree in file: the -I option,
// otherwise the one named by its suffix, otherwise json.
func (cfg *LoadConfig) inFormat(file string) format.Format {
	if cfg.InFormat != nil {
		return *cfg.InFormat
	}
	if f, ok := format.FromSuffix(filepath.Ext(file)); ok && (f.IsJSON() || f.IsYAML()) {
		return f
	}
	return format.JSONFormat
}

func loadFile(cfg *LoadConfig, w io.Writer, file string) error {
	f, err := os.Open(file)
	if err != nil {
		return fmt.Errorf("could not open %q: %w", file, err)
	}
	defer f.Close()
	if err := loadReader(cfg, w, f, cfg.inFormat(file)); err != nil {
		return fmt.Errorf("error processing %s: %w", file, err)
	}
	return nil
}

func loadReader(cfg *LoadConfig, w io.Writer, r io.Reader, f format.Format) error {
	in, err := io.ReadAll(r)
	if err != nil {
		return fmt.Errorf("error reading: %w", err)
	}
	switch {
	case f.IsYAML():
		in, err = yaml.YAMLToJSON(in)
		if err != nil {
			return fmt.Errorf("error converting yaml: %w", err)
		}
	case f.IsJSON():
	default:
		return fmt.Errorf("%w: cannot load %s", format.ErrBadFormat, f)
	}
	nodes, err := decodeTree(in)
	if err != nil {
		return err
	}
	return encode.EncodeForest(nodes, w, cfg.encOpts(w)...)
}

// decodeTree decodes either a single node or an array of nodes.
func decodeTree(d []byte) ([]*ir.Node, error) {
	d = bytes.TrimSpace(d)
	if len(d) > 0 && d[0] == '[' {
		var nodes []*ir.Node
		if err := json.Unmarshal(d, &nodes); err != nil {
			return nil, fmt.Errorf("error decoding tree: %w", err)
		}
		return nodes, nil
	}
	n := &ir.Node{}
	if err := json.Unmarshal(d, n); err != nil {
		return nil, fmt.Errorf("error decoding tree: %w", err)
	}
	return []*ir.Node{n}, nil
}
