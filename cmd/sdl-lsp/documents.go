package main

import (
	"context"
	"errors"
	"sync"

	"github.com/signadot/sdl-format/go-sdl/debug"
	"github.com/signadot/sdl-format/go-sdl/ir"
	"github.com/signadot/sdl-format/go-sdl/parse"
	"github.com/signadot/sdl-format/go-sdl/token"
	"go.lsp.dev/protocol"
)

type documentStore struct {
	mu   sync.RWMutex
	docs map[string]*document
}

type document struct {
	uri       string
	content   string
	version   int32
	nodes     []*ir.Node
	positions map[*ir.Node]*token.Pos
	err       error
}

func (ds *documentStore) get(uri string) *document {
	ds.mu.RLock()
	defer ds.mu.RUnlock()
	return ds.docs[uri]
}

func (ds *documentStore) put(uri string, content string, version int32) *document {
	doc := newDocument(uri, content, version)
	ds.mu.Lock()
	defer ds.mu.Unlock()
	ds.docs[uri] = doc
	return doc
}

func (ds *documentStore) remove(uri string) {
	ds.mu.Lock()
	defer ds.mu.Unlock()
	delete(ds.docs, uri)
}

func newDocument(uri, content string, version int32) *document {
	positions := make(map[*ir.Node]*token.Pos)
	nodes, err := parse.ParseString(content, parse.ParsePositions(positions))
	if debug.LSP() {
		debug.Logf("parsed %s version %d: %d statements, err %v\n", uri, version, len(nodes), err)
	}
	return &document{
		uri:       uri,
		content:   content,
		version:   version,
		nodes:     nodes,
		positions: positions,
		err:       err,
	}
}

func (s *Server) publishDiagnostics(ctx context.Context, doc *document) {
	if s.conn == nil {
		return
	}
	s.conn.Notify(ctx, protocol.MethodTextDocumentPublishDiagnostics, &protocol.PublishDiagnosticsParams{
		URI:         protocol.DocumentURI(doc.uri),
		Diagnostics: diagnostics(doc),
	})
}

// diagnostics reports the parse error of doc, if any.
func diagnostics(doc *document) []protocol.Diagnostic {
	res := []protocol.Diagnostic{}
	if doc.err == nil {
		return res
	}
	d := protocol.Diagnostic{
		Severity: protocol.DiagnosticSeverityError,
		Message:  doc.err.Error(),
		Source:   "sdl",
	}
	var pe *parse.Error
	if errors.As(doc.err, &pe) {
		d.Message = pe.Description
		d.Code = errCode(pe)
		line, col := 0, 0
		if pe.Line > 0 {
			line = pe.Line - 1
		}
		if pe.Position > 0 {
			col = pe.Position - 1
		}
		d.Range = protocol.Range{
			Start: protocol.Position{Line: uint32(line), Character: uint32(col)},
			End:   protocol.Position{Line: uint32(line), Character: uint32(col + 1)},
		}
	}
	return append(res, d)
}

func errCode(pe *parse.Error) string {
	switch {
	case errors.Is(pe, parse.ErrLexical):
		return "lexical"
	case errors.Is(pe, parse.ErrLiteral):
		return "literal"
	case errors.Is(pe, parse.ErrIdentifier):
		return "identifier"
	default:
		return "grammar"
	}
}

func (s *Server) DidOpen(ctx context.Context, params *protocol.DidOpenTextDocumentParams) error {
	doc := s.docs.put(string(params.TextDocument.URI), params.TextDocument.Text, params.TextDocument.Version)
	s.publishDiagnostics(ctx, doc)
	return nil
}

func (s *Server) DidChange(ctx context.Context, params *protocol.DidChangeTextDocumentParams) error {
	uri := string(params.TextDocument.URI)
	if s.docs.get(uri) == nil || len(params.ContentChanges) == 0 {
		return nil
	}
	// full sync: the last change holds the whole text.
	content := params.ContentChanges[len(params.ContentChanges)-1].Text
	doc := s.docs.put(uri, content, params.TextDocument.Version)
	s.publishDiagnostics(ctx, doc)
	return nil
}

func (s *Server) DidClose(ctx context.Context, params *protocol.DidCloseTextDocumentParams) error {
	s.docs.remove(string(params.TextDocument.URI))
	return nil
}
