package encode

import (
	"bytes"
	"strings"

	"github.com/signadot/sdl-format/go-sdl/ir"
)

// MustString returns the canonical SDL text of node without a trailing
// newline. It panics if encoding fails.
func MustString(node *ir.Node, opts ...EncodeOption) string {
	buf := bytes.NewBuffer(nil)
	if err := Encode(node, buf, opts...); err != nil {
		panic(err)
	}
	return strings.TrimRight(buf.String(), "\n")
}
