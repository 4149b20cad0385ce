package token

import (
	"fmt"
	"strings"
)

// Dump renders toks one per line for debugging.
func Dump(toks []Token) string {
	var sb strings.Builder
	for i := range toks {
		t := &toks[i]
		fmt.Fprintf(&sb, "\t%s `%s` %s\n", t.Type, t.Text, t.Pos)
	}
	return sb.String()
}
