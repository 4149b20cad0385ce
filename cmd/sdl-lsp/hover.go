package main

import (
	"context"
	"fmt"
	"strings"

	"github.com/signadot/sdl-format/go-sdl/encode"
	"github.com/signadot/sdl-format/go-sdl/ir"
	"github.com/signadot/sdl-format/go-sdl/literal"
	"github.com/signadot/sdl-format/go-sdl/token"
	"go.lsp.dev/protocol"
)

func (s *Server) Hover(ctx context.Context, params *protocol.HoverParams) (*protocol.Hover, error) {
	doc := s.docs.get(string(params.TextDocument.URI))
	if doc == nil || doc.err != nil {
		return nil, nil
	}
	n := nodeAtLine(doc.nodes, doc.positions, int(params.Position.Line))
	if n == nil {
		return nil, nil
	}
	return &protocol.Hover{
		Contents: protocol.MarkupContent{
			Kind:  protocol.Markdown,
			Value: hoverText(n),
		},
	}, nil
}

// nodeAtLine returns the statement starting on line, if any.
func nodeAtLine(nodes []*ir.Node, positions map[*ir.Node]*token.Pos, line int) *ir.Node {
	for _, n := range nodes {
		if p := positions[n]; p != nil && p.Line == line {
			return n
		}
		if res := nodeAtLine(n.Children(), positions, line); res != nil {
			return res
		}
	}
	return nil
}

func hoverText(n *ir.Node) string {
	parts := []string{fmt.Sprintf("**Tag:** `%s`", n.QName())}
	if vs := n.Values(); len(vs) != 0 {
		kinds := make([]string, len(vs))
		for i, v := range vs {
			kinds[i] = fmt.Sprintf("`%s` %s", short(literal.Format(v, true)), v.Kind())
		}
		parts = append(parts, "**Values:** "+strings.Join(kinds, ", "))
	}
	if attrs := n.Attrs(); len(attrs) != 0 {
		as := make([]string, len(attrs))
		for i, a := range attrs {
			as[i] = fmt.Sprintf("`%s` %s", a.QName(), a.Value.Kind())
		}
		parts = append(parts, "**Attributes:** "+strings.Join(as, ", "))
	}
	if c := n.NumChildren(); c != 0 {
		parts = append(parts, fmt.Sprintf("**Children:** %d", c))
	} else {
		parts = append(parts, "```sdl\n"+encode.MustString(n)+"\n```")
	}
	return strings.Join(parts, "\n\n")
}

func short(s string) string {
	if r := []rune(s); len(r) > 50 {
		return string(r[:50]) + "..."
	}
	return s
}
