package literal

import (
	"errors"
	"fmt"
)

var (
	ErrLiteral   = errors.New("malformed literal")
	ErrNumber    = fmt.Errorf("%w: number", ErrLiteral)
	ErrDate      = fmt.Errorf("%w: date", ErrLiteral)
	ErrTime      = fmt.Errorf("%w: time", ErrLiteral)
	ErrZone      = fmt.Errorf("%w: time zone", ErrLiteral)
	ErrBinary    = fmt.Errorf("%w: binary", ErrLiteral)
	ErrString    = fmt.Errorf("%w: string", ErrLiteral)
	ErrChar      = fmt.Errorf("%w: character", ErrLiteral)
	ErrMixedSign = errors.New("duration components have mixed signs")
	ErrInvalid   = errors.New("invalid value")
	ErrCoerce    = errors.New("unsupported Go type")
)
