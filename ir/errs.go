package ir

import (
	"errors"
	"fmt"
)

var (
	ErrIdentifier = errors.New("invalid identifier")
	ErrEmptyName  = fmt.Errorf("%w: empty", ErrIdentifier)
	ErrCycle      = errors.New("node cannot be its own descendant")
	ErrNilChild   = errors.New("nil child")
	ErrHasParent  = errors.New("node already has a parent")
)
