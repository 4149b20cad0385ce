package debug

import (
	"bytes"
	"fmt"
	"os"

	"github.com/signadot/sdl-format/go-sdl/encode"
	"github.com/signadot/sdl-format/go-sdl/ir"
	"github.com/signadot/sdl-format/go-sdl/literal"
)

type SDL struct{ *ir.Node }

func (y SDL) String() string {
	buf := bytes.NewBuffer(nil)
	if err := encode.Encode(y.Node, buf); err != nil {
		return fmt.Sprintf("[raw *ir.Node] %v", y.Node)
	}
	return buf.String()
}

// Logf writes to stderr, rendering *ir.Node arguments as SDL text and
// literal values as literal text.
func Logf(msg string, args ...any) {
	for i := range args {
		switch x := args[i].(type) {
		case *ir.Node:
			args[i] = SDL{x}.String()
		case literal.Value:
			args[i] = x.String()
		}
	}
	fmt.Fprintf(os.Stderr, msg, args...)
}
