package parse

import (
	"errors"
	"fmt"
	"strconv"

	"github.com/signadot/sdl-format/go-sdl/ir"
	"github.com/signadot/sdl-format/go-sdl/literal"
	"github.com/signadot/sdl-format/go-sdl/token"
)

var (
	ErrParse      = errors.New("parse error")
	ErrLexical    = fmt.Errorf("%w: lexical", ErrParse)
	ErrGrammar    = fmt.Errorf("%w: grammar", ErrParse)
	ErrLiteral    = fmt.Errorf("%w: literal", ErrParse)
	ErrIdentifier = fmt.Errorf("%w: identifier", ErrParse)
)

// Error is the first error found in a document. Line and Position are
// 1-based; -1 means unknown.
type Error struct {
	Description string
	Line        int
	Position    int

	kind  error
	cause error
}

func (e *Error) Error() string {
	return fmt.Sprintf("%s (line %s, position %s)", e.Description, num(e.Line), num(e.Position))
}

// Unwrap exposes both the category (ErrLexical, ErrGrammar, ErrLiteral or
// ErrIdentifier) and the underlying error, if any.
func (e *Error) Unwrap() []error {
	if e.cause == nil {
		return []error{e.kind}
	}
	return []error{e.kind, e.cause}
}

// Pos returns the 0-based position of the error.
func (e *Error) Pos() token.Pos {
	p := token.Unknown
	if e.Line > 0 {
		p.Line = e.Line - 1
	}
	if e.Position > 0 {
		p.Col = e.Position - 1
	}
	return p
}

func num(i int) string {
	if i < 0 {
		return "unknown"
	}
	return strconv.Itoa(i)
}

func newError(kind error, p token.Pos, cause error, desc string) *Error {
	e := &Error{Description: desc, Line: -1, Position: -1, kind: kind, cause: cause}
	if p.Line >= 0 {
		e.Line = p.Line + 1
	}
	if p.Col >= 0 {
		e.Position = p.Col + 1
	}
	return e
}

func grammarErr(p token.Pos, format string, args ...any) *Error {
	return newError(ErrGrammar, p, nil, fmt.Sprintf(format, args...))
}

func expectingButGot(expecting, got string, p token.Pos) *Error {
	return grammarErr(p, "Was expecting %s but got %s", expecting, got)
}

// causeErr positions an error returned by the literal or ir packages.
func causeErr(err error, p token.Pos) *Error {
	kind := ErrGrammar
	switch {
	case errors.Is(err, literal.ErrLiteral):
		kind = ErrLiteral
	case errors.Is(err, ir.ErrIdentifier):
		kind = ErrIdentifier
	}
	return newError(kind, p, err, err.Error())
}

// tokenizeErr converts tokenizer failures. Errors which do not come from
// the tokenizer, such as read errors, are returned as is.
func tokenizeErr(err error) error {
	var te *token.TokenizeErr
	if !errors.As(err, &te) {
		return err
	}
	kind := ErrLexical
	if errors.Is(te.Err, literal.ErrLiteral) {
		kind = ErrLiteral
	}
	return newError(kind, te.Pos, te.Err, te.Err.Error())
}
