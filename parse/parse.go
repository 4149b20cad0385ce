package parse

import (
	"errors"
	"io"
	"os"
	"strings"

	"github.com/signadot/sdl-format/go-sdl/debug"
	"github.com/signadot/sdl-format/go-sdl/ir"
	"github.com/signadot/sdl-format/go-sdl/literal"
	"github.com/signadot/sdl-format/go-sdl/token"
)

// Parse parses an SDL document into its top level nodes.
func Parse(d []byte, opts ...ParseOption) ([]*ir.Node, error) {
	return parseTokens(token.NewTokenizerFromBytes(d), opts)
}

func ParseString(s string, opts ...ParseOption) ([]*ir.Node, error) {
	return parseTokens(token.NewTokenizer(strings.NewReader(s)), opts)
}

// ParseReader parses a document from r. If r is an io.Closer it is closed
// once the parse ends, whether or not it succeeds.
func ParseReader(r io.Reader, opts ...ParseOption) ([]*ir.Node, error) {
	return parseTokens(token.NewTokenizer(r), opts)
}

func ParseFile(path string, opts ...ParseOption) ([]*ir.Node, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	return ParseReader(f, opts...)
}

// ParseInto parses a document from r and adds its nodes as children of
// root. Nothing is added if the parse fails.
func ParseInto(root *ir.Node, r io.Reader, opts ...ParseOption) error {
	nodes, err := ParseReader(r, opts...)
	if err != nil {
		return err
	}
	for _, n := range nodes {
		if err := root.AddChild(n); err != nil {
			return err
		}
	}
	return nil
}

// ParseValues parses a space separated list of values, such as
// `1 "two" 2005/12/31`.
func ParseValues(text string) ([]literal.Value, error) {
	n, err := parseStatement(ir.ContentName + " " + text)
	if err != nil {
		return nil, err
	}
	if n.NumAttrs() != 0 || n.NumChildren() != 0 {
		return nil, grammarErr(token.Unknown, "Was expecting only values in %q", text)
	}
	return n.Values(), nil
}

// ParseAttrs parses a space separated list of attributes, such as
// `size=12 x:unit="px"`.
func ParseAttrs(text string) ([]ir.Attr, error) {
	n, err := parseStatement("atts " + text)
	if err != nil {
		return nil, err
	}
	if n.NumValues() != 0 || n.NumChildren() != 0 {
		return nil, grammarErr(token.Unknown, "Was expecting only attributes in %q", text)
	}
	return n.Attrs(), nil
}

func parseStatement(text string) (*ir.Node, error) {
	nodes, err := ParseString(text)
	if err != nil {
		return nil, err
	}
	if len(nodes) != 1 {
		return nil, grammarErr(token.Unknown, "Was expecting one statement but got %d", len(nodes))
	}
	return nodes[0], nil
}

type parser struct {
	tz   *token.Tokenizer
	opts *parseOpts
}

func parseTokens(tz *token.Tokenizer, opts []ParseOption) ([]*ir.Node, error) {
	p := &parser{tz: tz, opts: &parseOpts{}}
	for _, opt := range opts {
		opt(p.opts)
	}
	nodes, err := p.document()
	if err != nil {
		tz.Close()
		return nil, err
	}
	return nodes, tz.Close()
}

func (p *parser) next() ([]token.Token, error) {
	toks, err := p.tz.Next()
	if err != nil {
		if errors.Is(err, io.EOF) {
			return nil, io.EOF
		}
		return nil, tokenizeErr(err)
	}
	return toks, nil
}

func (p *parser) document() ([]*ir.Node, error) {
	var res []*ir.Node
	for {
		toks, err := p.next()
		if err == io.EOF {
			return res, nil
		}
		if err != nil {
			return nil, err
		}
		if toks[0].Type == token.TRCurl {
			return nil, grammarErr(toks[0].Pos, "No opening block ({) for close block (}).")
		}
		n, err := p.statement(toks)
		if err != nil {
			return nil, err
		}
		res = append(res, n)
	}
}

// statement builds the node of one logical line and, if the line opens a
// block, its children.
func (p *parser) statement(toks []token.Token) (*ir.Node, error) {
	last := len(toks) - 1
	open := toks[last].Type == token.TLCurl
	if open {
		if last == 0 {
			return nil, expectingButGot("IDENTIFIER", describe(&toks[0]), toks[0].Pos)
		}
		toks = toks[:last]
	}
	n, err := p.construct(toks)
	if err != nil {
		return nil, err
	}
	p.trackPos(n, toks[0].Pos)
	if !open {
		return n, nil
	}
	for {
		line, err := p.next()
		if err == io.EOF {
			return nil, grammarErr(token.Pos{Line: p.tz.Line(), Col: -1}, "No close block (}).")
		}
		if err != nil {
			return nil, err
		}
		if line[0].Type == token.TRCurl {
			if len(line) > 1 {
				return nil, expectingButGot("END OF LINE", describe(&line[1]), line[1].Pos)
			}
			return n, nil
		}
		c, err := p.statement(line)
		if err != nil {
			return nil, err
		}
		if err := n.AddChild(c); err != nil {
			return nil, causeErr(err, line[0].Pos)
		}
	}
}

// construct builds a node, without children, from
//
//	[[namespace ':'] name] value* ([namespace ':'] key '=' value)*
//
// A line starting with a value belongs to the anonymous "content" node.
func (p *parser) construct(toks []token.Token) (*ir.Node, error) {
	t0 := &toks[0]
	var ns, name string
	i := 1
	switch {
	case t0.Type.IsLiteral():
		name, i = ir.ContentName, 0
	case t0.Type != token.TIdent:
		return nil, expectingButGot("IDENTIFIER", describe(t0), t0.Pos)
	default:
		name = t0.Text
		if len(toks) > 1 && toks[1].Type == token.TColon {
			if len(toks) == 2 || toks[2].Type != token.TIdent {
				return nil, grammarErr(toks[1].Pos, "Colon (:) encountered in unexpected location.")
			}
			ns, name, i = t0.Text, toks[2].Text, 3
		}
	}
	n, err := ir.NewNS(ns, name)
	if err != nil {
		return nil, causeErr(err, t0.Pos)
	}
	i, err = p.values(n, toks, i)
	if err != nil {
		return nil, err
	}
	if err := p.attrs(n, toks, i); err != nil {
		return nil, err
	}
	if debug.Parse() {
		debug.Logf("statement at %s: %v", t0.Pos, n)
	}
	return n, nil
}

func (p *parser) values(n *ir.Node, toks []token.Token, i int) (int, error) {
	for i < len(toks) {
		t := &toks[i]
		if t.Type == token.TIdent {
			break
		}
		if !t.Type.IsLiteral() {
			return i, expectingButGot("LITERAL or IDENTIFIER", describe(t), t.Pos)
		}
		v, next, err := literalAt(toks, i)
		if err != nil {
			return i, err
		}
		if err := n.AddValue(v); err != nil {
			return i, causeErr(err, t.Pos)
		}
		i = next
	}
	return i, nil
}

func (p *parser) attrs(n *ir.Node, toks []token.Token, i int) error {
	last := len(toks) - 1
	for i <= last {
		t := &toks[i]
		if t.Type != token.TIdent {
			return expectingButGot("IDENTIFIER", describe(t), t.Pos)
		}
		if i == last {
			return expectingButGot(`":" or "="`, "END OF LINE", t.Pos)
		}
		ns, key, keyPos := "", t.Text, t.Pos
		i++
		t = &toks[i]
		if t.Type == token.TColon {
			if i == last {
				return expectingButGot("IDENTIFIER", "END OF LINE", t.Pos)
			}
			i++
			t = &toks[i]
			if t.Type != token.TIdent {
				return expectingButGot("IDENTIFIER", describe(t), t.Pos)
			}
			ns, key, keyPos = key, t.Text, t.Pos
			if i == last {
				return expectingButGot(`"="`, "END OF LINE", t.Pos)
			}
			i++
			t = &toks[i]
			if t.Type != token.TEquals {
				return expectingButGot(`"="`, describe(t), t.Pos)
			}
		} else if t.Type != token.TEquals {
			return expectingButGot(`":" or "="`, describe(t), t.Pos)
		}
		if i == last {
			return expectingButGot("LITERAL", "END OF LINE", t.Pos)
		}
		i++
		t = &toks[i]
		if !t.Type.IsLiteral() {
			return expectingButGot("LITERAL", describe(t), t.Pos)
		}
		v, next, err := literalAt(toks, i)
		if err != nil {
			return err
		}
		if err := n.SetAttrNS(ns, key, v); err != nil {
			return causeErr(err, keyPos)
		}
		i = next
	}
	return nil
}

// literalAt returns the value starting at toks[i] and the index after it.
// A date followed by a time is one date-time; a time on its own is a
// duration.
func literalAt(toks []token.Token, i int) (literal.Value, int, error) {
	t := &toks[i]
	switch t.Type {
	case token.TDate:
		if i+1 >= len(toks) || toks[i+1].Type != token.TTime {
			return t.Value, i + 1, nil
		}
		ts := toks[i+1].Time
		if ts.HasDays || ts.Days != 0 {
			return literal.Value{}, i, expectingButGot("TIME (component of date/time)", "TIME SPAN", toks[i+1].Pos)
		}
		v, err := ts.On(t.Value)
		if err != nil {
			return literal.Value{}, i, causeErr(err, toks[i+1].Pos)
		}
		return v, i + 2, nil
	case token.TTime:
		if t.Time.Zone != "" {
			return literal.Value{}, i, expectingButGot("TIME SPAN", "TIME (component of date/time)", t.Pos)
		}
		d, err := t.Time.Duration()
		if err != nil {
			return literal.Value{}, i, causeErr(err, t.Pos)
		}
		return literal.FromDuration(d), i + 1, nil
	}
	return t.Value, i + 1, nil
}

func (p *parser) trackPos(n *ir.Node, pos token.Pos) {
	if p.opts.positions == nil {
		return
	}
	p.opts.positions[n] = &pos
}

var typeNames = map[token.TokenType]string{
	token.TIdent:  "IDENTIFIER",
	token.TColon:  "COLON",
	token.TEquals: "EQUALS",
	token.TLCurl:  "START_BLOCK",
	token.TRCurl:  "END_BLOCK",
	token.TString: "STRING",
	token.TChar:   "CHARACTER",
	token.TBool:   "BOOLEAN",
	token.TNumber: "NUMBER",
	token.TDate:   "DATE",
	token.TTime:   "TIME",
	token.TBinary: "BINARY",
	token.TNull:   "NULL",
}

func describe(t *token.Token) string {
	return typeNames[t.Type] + " (" + t.Text + ")"
}
