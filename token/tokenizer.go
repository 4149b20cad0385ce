package token

import (
	"bufio"
	"bytes"
	"errors"
	"fmt"
	"io"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/signadot/sdl-format/go-sdl/debug"
	"github.com/signadot/sdl-format/go-sdl/literal"
)

// scanMode is the construct the tokenizer is inside of. Every mode other
// than modeCode may span physical lines.
type scanMode int

const (
	modeCode scanMode = iota
	modeString
	modeRaw
	modeBinary
	modeBlockComment
)

func (m scanMode) String() string {
	return [...]string{"code", "string", "raw string", "binary", "block comment"}[m]
}

type scanResult int

const (
	// the logical line is complete
	lineDone scanResult = iota
	// the mode changed; keep scanning the current physical line
	modeSwitch
	// the physical line ran out inside a construct
	needLine
)

var scanners = [...]func(*Tokenizer) (scanResult, error){
	modeCode:         (*Tokenizer).scanCode,
	modeString:       (*Tokenizer).scanString,
	modeRaw:          (*Tokenizer).scanRaw,
	modeBinary:       (*Tokenizer).scanBinary,
	modeBlockComment: (*Tokenizer).scanBlockComment,
}

// Tokenizer splits SDL text into logical lines of tokens. A logical line
// is a physical line extended by line continuations and by literals or
// comments that span lines.
type Tokenizer struct {
	src    *bufio.Reader
	closer io.Closer
	eof    bool
	err    error

	lineNo int
	line   []rune
	pos    int

	mode   scanMode
	buf    strings.Builder
	start  Pos
	skipWS bool
	cont   Pos

	toks []Token
}

// NewTokenizer returns a Tokenizer reading r. If r is an io.Closer it is
// closed once the tokenizer reaches the end of input or an error.
func NewTokenizer(r io.Reader) *Tokenizer {
	t := &Tokenizer{src: bufio.NewReader(r), lineNo: -1}
	if c, ok := r.(io.Closer); ok {
		t.closer = c
	}
	return t
}

func NewTokenizerFromBytes(d []byte) *Tokenizer {
	return NewTokenizer(bytes.NewReader(d))
}

// Next returns the tokens of the next non-empty logical line. At the end
// of input it returns io.EOF. After an error every call returns the same
// error.
func (t *Tokenizer) Next() ([]Token, error) {
	if t.err != nil {
		return nil, t.err
	}
	for {
		ok, err := t.readLine()
		if err != nil {
			return nil, t.fail(err)
		}
		if !ok {
			t.fail(io.EOF)
			return nil, io.EOF
		}
		t.toks = nil
		if err := t.scanLine(); err != nil {
			return nil, t.fail(err)
		}
		if len(t.toks) == 0 {
			continue
		}
		if debug.Tokens() {
			debug.Logf("tokens line %d:\n%s", t.toks[0].Pos.Line+1, Dump(t.toks))
		}
		return t.toks, nil
	}
}

// Line returns the 0-based number of the last physical line read.
func (t *Tokenizer) Line() int {
	return t.lineNo
}

// Close closes the underlying reader if it is an io.Closer. Subsequent
// calls to Next return io.EOF.
func (t *Tokenizer) Close() error {
	if t.err == nil {
		t.err = io.EOF
	}
	if t.closer == nil {
		return nil
	}
	c := t.closer
	t.closer = nil
	return c.Close()
}

func (t *Tokenizer) fail(err error) error {
	if t.err == nil {
		t.err = err
	}
	if t.closer != nil {
		t.closer.Close()
		t.closer = nil
	}
	return t.err
}

func (t *Tokenizer) scanLine() error {
	t.mode = modeCode
	for {
		res, err := scanners[t.mode](t)
		if err != nil {
			return err
		}
		switch res {
		case lineDone:
			return nil
		case modeSwitch:
			continue
		}
		var ok bool
		switch t.mode {
		case modeCode, modeString:
			ok, err = t.readLine()
		default:
			ok, err = t.readRawLine()
		}
		if err != nil {
			return err
		}
		if !ok {
			return t.atEOF()
		}
	}
}

func (t *Tokenizer) atEOF() error {
	switch t.mode {
	case modeCode:
		return NewTokenizeErr(fmt.Errorf("%w at end of file", ErrContinuation), t.cont)
	case modeString:
		return NewTokenizeErr(fmt.Errorf("%w: escape at end of file", ErrUnterminated), t.start)
	default:
		return NewTokenizeErr(fmt.Errorf("%w %s", ErrUnterminated, t.mode), t.start)
	}
}

// readRawLine reads the next physical line.
func (t *Tokenizer) readRawLine() (bool, error) {
	if t.eof {
		return false, nil
	}
	s, err := t.src.ReadString('\n')
	if err != nil {
		if !errors.Is(err, io.EOF) {
			return false, err
		}
		t.eof = true
		if s == "" {
			return false, nil
		}
	}
	t.lineNo++
	s = strings.TrimSuffix(s, "\n")
	s = strings.TrimSuffix(s, "\r")
	if t.lineNo == 0 {
		s = strings.TrimPrefix(s, "\uFEFF")
	}
	if !utf8.ValidString(s) {
		return false, NewTokenizeErr(ErrEncoding, Pos{Line: t.lineNo, Col: 0})
	}
	t.line = []rune(s)
	t.pos = 0
	return true, nil
}

// readLine reads the next physical line that is neither blank nor a
// # comment.
func (t *Tokenizer) readLine() (bool, error) {
	for {
		ok, err := t.readRawLine()
		if !ok || err != nil {
			return ok, err
		}
		trimmed := strings.Trim(string(t.line), " \t")
		if trimmed != "" && !strings.HasPrefix(trimmed, "#") {
			return true, nil
		}
	}
}

func (t *Tokenizer) here() Pos {
	return Pos{Line: t.lineNo, Col: t.pos}
}

func (t *Tokenizer) peek(n int) rune {
	if t.pos+n < len(t.line) {
		return t.line[t.pos+n]
	}
	return 0
}

func (t *Tokenizer) emit(typ TokenType, start Pos, text string) *Token {
	t.toks = append(t.toks, Token{Type: typ, Pos: start, End: t.here(), Text: text})
	return &t.toks[len(t.toks)-1]
}

var punct = map[rune]TokenType{'{': TLCurl, '}': TRCurl, '=': TEquals, ':': TColon}

func (t *Tokenizer) scanCode() (scanResult, error) {
	for t.pos < len(t.line) {
		c := t.line[t.pos]
		switch {
		case c == ' ' || c == '\t':
			t.pos++
		case c == '#':
			t.pos = len(t.line)
		case c == '/' && t.peek(1) == '/':
			t.pos = len(t.line)
		case c == '-' && t.peek(1) == '-':
			t.pos = len(t.line)
		case c == '/' && t.peek(1) == '*':
			t.start = t.here()
			t.pos += 2
			t.mode = modeBlockComment
			return modeSwitch, nil
		case c == '\\':
			if strings.Trim(string(t.line[t.pos+1:]), " \t") != "" {
				return 0, NewTokenizeErr(fmt.Errorf("%w (\\) before end of line", ErrContinuation), t.here())
			}
			t.cont = t.here()
			t.pos = len(t.line)
			return needLine, nil
		case c == '"' || c == '`' || c == '[':
			t.start = t.here()
			t.buf.Reset()
			t.buf.WriteRune(c)
			t.pos++
			t.skipWS = false
			switch c {
			case '"':
				t.mode = modeString
			case '`':
				t.mode = modeRaw
			default:
				t.mode = modeBinary
			}
			return modeSwitch, nil
		case c == '\'':
			if err := t.scanChar(); err != nil {
				return 0, err
			}
		case c == '{' || c == '}' || c == '=' || c == ':':
			start := t.here()
			t.pos++
			t.emit(punct[c], start, string(c))
		case c == '-' || c == '.' || (c >= '0' && c <= '9'):
			if err := t.scanRun(); err != nil {
				return 0, err
			}
		case c == '_' || unicode.IsLetter(c):
			t.scanIdent()
		default:
			return 0, NewTokenizeErr(fmt.Errorf("%w %q", ErrUnexpectedRune, c), t.here())
		}
	}
	return lineDone, nil
}

func (t *Tokenizer) scanChar() error {
	start := t.here()
	j := t.pos + 1
	if j < len(t.line) && t.line[j] == '\\' {
		j++
	}
	j++
	if j >= len(t.line) || t.line[j] != '\'' {
		return NewTokenizeErr(fmt.Errorf("%w character literal", ErrUnterminated), start)
	}
	text := string(t.line[t.pos : j+1])
	v, err := literal.ParseChar(text)
	if err != nil {
		return NewTokenizeErr(err, start)
	}
	t.pos = j + 1
	t.emit(TChar, start, text).Value = v
	return nil
}

func isRunRune(c rune) bool {
	switch {
	case c >= '0' && c <= '9', c >= 'a' && c <= 'z', c >= 'A' && c <= 'Z':
		return true
	}
	return strings.ContainsRune(".-+:_", c)
}

// scanRun reads a number, date or time. Dates contain a slash and no
// colon, times contain a colon; anything else is a number.
func (t *Tokenizer) scanRun() error {
	start := t.here()
	i := t.pos
	for t.pos < len(t.line) {
		c := t.line[t.pos]
		if isRunRune(c) || (c == '/' && t.peek(1) != '*') {
			t.pos++
			continue
		}
		break
	}
	text := string(t.line[i:t.pos])
	hasSlash, hasColon := strings.Contains(text, "/"), strings.Contains(text, ":")
	switch {
	case hasSlash && !hasColon:
		v, err := literal.ParseDate(text)
		if err != nil {
			return NewTokenizeErr(err, start)
		}
		t.emit(TDate, start, text).Value = v
	case hasColon:
		ts, err := literal.ParseTimeSpec(text)
		if err != nil {
			return NewTokenizeErr(err, start)
		}
		t.emit(TTime, start, text).Time = ts
	default:
		v, err := literal.ParseNumber(text)
		if err != nil {
			return NewTokenizeErr(err, start)
		}
		t.emit(TNumber, start, text).Value = v
	}
	return nil
}

func isIdentRune(c rune) bool {
	return c == '_' || c == '-' || unicode.IsLetter(c) || unicode.IsDigit(c)
}

func (t *Tokenizer) scanIdent() {
	start := t.here()
	i := t.pos
	for t.pos < len(t.line) && isIdentRune(t.line[t.pos]) {
		t.pos++
	}
	text := string(t.line[i:t.pos])
	if v, ok := literal.Keyword(text); ok {
		typ := TBool
		if v.IsNull() {
			typ = TNull
		}
		t.emit(typ, start, text).Value = v
		return
	}
	t.emit(TIdent, start, text)
}

// scanString continues a double quoted string. A backslash followed by
// nothing but white space continues the string on the next line, whose
// leading white space is skipped.
func (t *Tokenizer) scanString() (scanResult, error) {
	for t.pos < len(t.line) {
		c := t.line[t.pos]
		if t.skipWS {
			if c == ' ' || c == '\t' {
				t.pos++
				continue
			}
			t.skipWS = false
		}
		switch c {
		case '\\':
			rest := t.line[t.pos+1:]
			if len(rest) == 0 || rest[0] == ' ' || rest[0] == '\t' {
				if strings.Trim(string(rest), " \t") != "" {
					return 0, NewTokenizeErr(fmt.Errorf("%w: malformed string literal, escape followed by white space", ErrLexical), t.here())
				}
				t.skipWS = true
				t.pos = len(t.line)
				return needLine, nil
			}
			t.buf.WriteRune(c)
			t.buf.WriteRune(rest[0])
			t.pos += 2
		case '"':
			t.buf.WriteRune(c)
			t.pos++
			text := t.buf.String()
			s, err := literal.Unescape(text[1 : len(text)-1])
			if err != nil {
				return 0, NewTokenizeErr(err, t.start)
			}
			t.emit(TString, t.start, text).Value = literal.String(s)
			t.mode = modeCode
			return modeSwitch, nil
		default:
			t.buf.WriteRune(c)
			t.pos++
		}
	}
	return 0, NewTokenizeErr(fmt.Errorf("%w: string literal %s not terminated by end quote", ErrUnterminated, t.buf.String()), t.start)
}

// scanUntil accumulates raw text up to and including end, joining
// physical lines with newlines.
func (t *Tokenizer) scanUntil(end rune) (string, bool) {
	rest := t.line[t.pos:]
	i := strings.IndexRune(string(rest), end)
	if i < 0 {
		t.buf.WriteString(string(rest))
		t.buf.WriteByte('\n')
		t.pos = len(t.line)
		return "", false
	}
	n := utf8.RuneCountInString(string(rest)[:i])
	t.buf.WriteString(string(rest[:n+1]))
	t.pos += n + 1
	t.mode = modeCode
	return t.buf.String(), true
}

func (t *Tokenizer) scanRaw() (scanResult, error) {
	text, ok := t.scanUntil('`')
	if !ok {
		return needLine, nil
	}
	t.emit(TString, t.start, text).Value = literal.String(text[1 : len(text)-1])
	return modeSwitch, nil
}

func (t *Tokenizer) scanBinary() (scanResult, error) {
	text, ok := t.scanUntil(']')
	if !ok {
		return needLine, nil
	}
	b, err := literal.DecodeBinary(text[1 : len(text)-1])
	if err != nil {
		return 0, NewTokenizeErr(err, t.start)
	}
	t.emit(TBinary, t.start, text).Value = literal.Binary(b)
	return modeSwitch, nil
}

func (t *Tokenizer) scanBlockComment() (scanResult, error) {
	rest := string(t.line[t.pos:])
	i := strings.Index(rest, "*/")
	if i < 0 {
		t.pos = len(t.line)
		return needLine, nil
	}
	t.pos += utf8.RuneCountInString(rest[:i]) + 2
	t.mode = modeCode
	return modeSwitch, nil
}
