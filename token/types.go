package token

import (
	"fmt"

	"github.com/signadot/sdl-format/go-sdl/literal"
)

type TokenType int

const (
	TIdent TokenType = iota
	TColon
	TEquals
	TLCurl
	TRCurl
	TString
	TChar
	TBool
	TNumber
	TDate
	TTime
	TBinary
	TNull
)

func (t TokenType) String() string {
	return map[TokenType]string{
		TIdent:  "TIdent",
		TColon:  "TColon",
		TEquals: "TEquals",
		TLCurl:  "TLCurl",
		TRCurl:  "TRCurl",
		TString: "TString",
		TChar:   "TChar",
		TBool:   "TBool",
		TNumber: "TNumber",
		TDate:   "TDate",
		TTime:   "TTime",
		TBinary: "TBinary",
		TNull:   "TNull",
	}[t]
}

// IsLiteral reports whether tokens of type t carry a value.
func (t TokenType) IsLiteral() bool {
	switch t {
	case TString, TChar, TBool, TNumber, TDate, TTime, TBinary, TNull:
		return true
	default:
		return false
	}
}

// Token is a lexical element of one logical line. Literal tokens carry
// their value in Value, except TTime tokens whose meaning depends on the
// preceding token; they carry the undecided TimeSpec in Time.
type Token struct {
	Type  TokenType
	Pos   Pos
	End   Pos
	Text  string
	Value literal.Value
	Time  literal.TimeSpec
}

func (t *Token) Info() string {
	return fmt.Sprintf("%s %s", t.Type, t.Pos.String())
}

func (t *Token) String() string {
	return t.Text
}

// TokenizeErr is an error positioned in the source.
type TokenizeErr struct {
	Err error
	Pos Pos
}

func (t *TokenizeErr) Unwrap() error {
	return t.Err
}

func NewTokenizeErr(e error, p Pos) *TokenizeErr {
	return &TokenizeErr{Err: e, Pos: p}
}

func (e *TokenizeErr) Error() string {
	return fmt.Sprintf("%s at %s", e.Err.Error(), e.Pos.String())
}

func ExpectedErr(what string, p Pos) error {
	return NewTokenizeErr(fmt.Errorf("%w: expected %s", ErrLexical, what), p)
}

func UnexpectedErr(what string, p Pos) error {
	return NewTokenizeErr(fmt.Errorf("%w: unexpected %s", ErrLexical, what), p)
}
