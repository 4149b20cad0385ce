package main

import (
	"fmt"
	"io"
	"strings"

	"github.com/signadot/sdl-format/go-sdl/encode"
	"github.com/signadot/sdl-format/go-sdl/ir"
	"github.com/signadot/sdl-format/go-sdl/literal"

	"github.com/scott-cotton/cli"
)

func get(cfg *GetConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Get.Parse(cc, args)
	if err != nil {
		return err
	}
	if len(args) < 1 || len(args) > 2 {
		return fmt.Errorf("%w: get requires a path and at most one file, got %v", cli.ErrUsage, args)
	}
	file := "-"
	if len(args) == 2 {
		file = args[1]
	}
	nodes, err := getDocFile(cc, file)
	if err != nil {
		return fmt.Errorf("error decoding %s: %w", file, err)
	}
	found := selectPath(nodes, args[0])
	if len(found) == 0 {
		return cli.ExitCodeErr(1)
	}
	if cfg.Values {
		return writeValues(cc.Out, found)
	}
	return encode.EncodeForest(found, cc.Out, cfg.encOpts(cc.Out)...)
}

// selectPath returns the nodes reached by following path from the
// top level statements in nodes.
func selectPath(nodes []*ir.Node, path string) []*ir.Node {
	cur, top := nodes, true
	for _, seg := range strings.Split(path, "/") {
		if seg == "" {
			continue
		}
		if !top {
			var kids []*ir.Node
			for _, n := range cur {
				kids = append(kids, n.Children()...)
			}
			cur = kids
		}
		cur = matching(cur, seg)
		top = false
	}
	return cur
}

func matching(nodes []*ir.Node, seg string) []*ir.Node {
	ns, name, qualified := strings.Cut(seg, ":")
	if !qualified {
		name = ns
	}
	var res []*ir.Node
	for _, n := range nodes {
		if qualified && ns != "*" && n.Namespace() != ns {
			continue
		}
		if name != "*" && n.Name() != name {
			continue
		}
		res = append(res, n)
	}
	return res
}

func writeValues(w io.Writer, nodes []*ir.Node) error {
	for _, n := range nodes {
		vs := n.Values()
		parts := make([]string, len(vs))
		for i, v := range vs {
			parts[i] = literal.Format(v, true)
		}
		if _, err := io.WriteString(w, strings.Join(parts, " ")+"\n"); err != nil {
			return err
		}
	}
	return nil
}
