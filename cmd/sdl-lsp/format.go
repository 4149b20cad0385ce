package main

import (
	"bytes"
	"context"
	"strings"

	"github.com/signadot/sdl-format/go-sdl/encode"
	"go.lsp.dev/protocol"
)

func (s *Server) Formatting(ctx context.Context, params *protocol.DocumentFormattingParams) ([]protocol.TextEdit, error) {
	doc := s.docs.get(string(params.TextDocument.URI))
	if doc == nil || doc.err != nil {
		return nil, nil
	}
	return formatEdits(doc)
}

// formatEdits returns a single edit replacing the whole document with
// its canonical form, or no edits if it is already canonical.
func formatEdits(doc *document) ([]protocol.TextEdit, error) {
	var buf bytes.Buffer
	if err := encode.EncodeForest(doc.nodes, &buf); err != nil {
		return nil, err
	}
	formatted := buf.String()
	if formatted == doc.content {
		return []protocol.TextEdit{}, nil
	}
	lines := strings.Count(doc.content, "\n")
	if doc.content != "" && !strings.HasSuffix(doc.content, "\n") {
		lines++
	}
	return []protocol.TextEdit{
		{
			Range: protocol.Range{
				Start: protocol.Position{Line: 0, Character: 0},
				End:   protocol.Position{Line: uint32(lines), Character: 0},
			},
			NewText: formatted,
		},
	}, nil
}
