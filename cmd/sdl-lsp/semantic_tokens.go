package main

import (
	"context"
	"strings"

	"github.com/signadot/sdl-format/go-sdl/token"
	"go.lsp.dev/protocol"
)

// tokenTypes and tokenModifiers form the legend sent on initialize; the
// encoded tokens index into them.
var (
	tokenTypes = []protocol.SemanticTokenTypes{
		protocol.SemanticTokenNamespace,
		protocol.SemanticTokenType,
		protocol.SemanticTokenProperty,
		protocol.SemanticTokenString,
		protocol.SemanticTokenNumber,
		protocol.SemanticTokenKeyword,
		protocol.SemanticTokenOperator,
	}
	tokenModifiers = []protocol.SemanticTokenModifiers{
		protocol.SemanticTokenModifierDefinition,
	}
)

const (
	stNamespace uint32 = iota
	stType
	stProperty
	stString
	stNumber
	stKeyword
	stOperator
)

type semToken struct {
	line, col, length uint32
	typ, mods         uint32
}

// lineTokens classifies the tokens of one logical line.
func lineTokens(toks []token.Token) []semToken {
	var res []semToken
	for i := range toks {
		t := &toks[i]
		st := semToken{line: uint32(t.Pos.Line), col: uint32(t.Pos.Col)}
		switch t.Type {
		case token.TIdent:
			switch {
			case i+1 < len(toks) && toks[i+1].Type == token.TColon:
				st.typ = stNamespace
			case i+1 < len(toks) && toks[i+1].Type == token.TEquals:
				st.typ = stProperty
			default:
				st.typ = stType
				st.mods = 1
			}
		case token.TColon, token.TEquals, token.TLCurl, token.TRCurl:
			st.typ = stOperator
		case token.TString, token.TChar, token.TBinary:
			st.typ = stString
		case token.TNumber, token.TDate, token.TTime:
			st.typ = stNumber
		case token.TBool, token.TNull:
			st.typ = stKeyword
		}
		if t.End.Line == t.Pos.Line {
			st.length = uint32(t.End.Col - t.Pos.Col)
			res = append(res, st)
			continue
		}
		lines := strings.Split(t.Text, "\n")
		if len(lines) != t.End.Line-t.Pos.Line+1 {
			// continued string: its text no longer holds the line breaks.
			st.line, st.col, st.length = uint32(t.End.Line), 0, uint32(t.End.Col)
			res = append(res, st)
			continue
		}
		for j, ln := range lines {
			part := st
			part.line += uint32(j)
			if j > 0 {
				part.col = 0
			}
			part.length = uint32(len([]rune(ln)))
			if part.length != 0 {
				res = append(res, part)
			}
		}
	}
	return res
}

// semanticTokens returns the LSP encoding of the tokens of content, up to
// the first lexical error.
func semanticTokens(content string) []uint32 {
	tz := token.NewTokenizerFromBytes([]byte(content))
	defer tz.Close()
	var all []semToken
	for {
		toks, err := tz.Next()
		if err != nil {
			break
		}
		all = append(all, lineTokens(toks)...)
	}
	data := make([]uint32, 0, 5*len(all))
	var prevLine, prevCol uint32
	for _, st := range all {
		deltaLine := st.line - prevLine
		deltaCol := st.col
		if deltaLine == 0 {
			deltaCol = st.col - prevCol
		}
		data = append(data, deltaLine, deltaCol, st.length, st.typ, st.mods)
		prevLine, prevCol = st.line, st.col
	}
	return data
}

func (s *Server) SemanticTokensFull(ctx context.Context, params *protocol.SemanticTokensParams) (*protocol.SemanticTokens, error) {
	doc := s.docs.get(string(params.TextDocument.URI))
	if doc == nil {
		return &protocol.SemanticTokens{Data: []uint32{}}, nil
	}
	return &protocol.SemanticTokens{Data: semanticTokens(doc.content)}, nil
}

// SemanticTokensRange answers with the tokens of the whole document,
// which clients accept.
func (s *Server) SemanticTokensRange(ctx context.Context, params *protocol.SemanticTokensRangeParams) (*protocol.SemanticTokens, error) {
	doc := s.docs.get(string(params.TextDocument.URI))
	if doc == nil {
		return &protocol.SemanticTokens{Data: []uint32{}}, nil
	}
	return &protocol.SemanticTokens{Data: semanticTokens(doc.content)}, nil
}
