package token

import (
	"errors"
	"fmt"
)

var (
	ErrLexical        = errors.New("lexical error")
	ErrUnterminated   = fmt.Errorf("%w: unterminated", ErrLexical)
	ErrContinuation   = fmt.Errorf("%w: line continuation", ErrLexical)
	ErrUnexpectedRune = fmt.Errorf("%w: unexpected character", ErrLexical)
	ErrEncoding       = fmt.Errorf("%w: invalid UTF-8", ErrLexical)
)
