package token

import "fmt"

// Pos is a 0-based line and column, counted in runes. A negative field
// is unknown.
type Pos struct {
	Line int
	Col  int
}

// Unknown is the position of errors that cannot be placed.
var Unknown = Pos{Line: -1, Col: -1}

func (p Pos) Known() bool {
	return p.Line >= 0 && p.Col >= 0
}

// Before reports whether p comes strictly before q.
func (p Pos) Before(q Pos) bool {
	if p.Line != q.Line {
		return p.Line < q.Line
	}
	return p.Col < q.Col
}

func (p Pos) String() string {
	line, col := "unknown", "unknown"
	if p.Line >= 0 {
		line = fmt.Sprint(p.Line + 1)
	}
	if p.Col >= 0 {
		col = fmt.Sprint(p.Col + 1)
	}
	return fmt.Sprintf("line %s, position %s", line, col)
}
