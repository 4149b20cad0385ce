package libdiff

import (
	"bytes"
	"strings"

	"github.com/signadot/sdl-format/go-sdl/encode"
	"github.com/signadot/sdl-format/go-sdl/ir"

	diffpatch "github.com/sergi/go-diff/diffmatchpatch"
)

type Op int

const (
	Keep Op = iota
	Insert
	Delete
)

func (o Op) String() string {
	switch o {
	case Insert:
		return "+"
	case Delete:
		return "-"
	default:
		return " "
	}
}

// Edit is one line of the canonical form of a document.
type Edit struct {
	Op   Op
	Line string
}

// Diff compares the canonical encodings of from and to line by line.
// Documents differing only in attribute order produce no changes.
func Diff(from, to *ir.Node) []Edit {
	return DiffForest([]*ir.Node{from}, []*ir.Node{to})
}

func DiffForest(from, to []*ir.Node) []Edit {
	lineMap := map[string]rune{}
	runeMap := map[rune]string{}
	fromRunes := mapLinesTo(lineMap, runeMap, lines(from))
	toRunes := mapLinesTo(lineMap, runeMap, lines(to))
	diffs := diffpatch.New().DiffMainRunes(fromRunes, toRunes, false)
	var res []Edit
	for i := range diffs {
		d := &diffs[i]
		op := Keep
		switch d.Type {
		case diffpatch.DiffDelete:
			op = Delete
		case diffpatch.DiffInsert:
			op = Insert
		}
		for _, r := range d.Text {
			res = append(res, Edit{Op: op, Line: runeMap[r]})
		}
	}
	return res
}

// Equal reports whether from and to are the same tree.
func Equal(from, to *ir.Node) bool {
	return ir.Equal(from, to)
}

// Changed reports whether edits insert or delete anything.
func Changed(edits []Edit) bool {
	for i := range edits {
		if edits[i].Op != Keep {
			return true
		}
	}
	return false
}

// Format renders edits one per line, each prefixed by its op.
func Format(edits []Edit) string {
	var sb strings.Builder
	for i := range edits {
		e := &edits[i]
		sb.WriteString(e.Op.String())
		sb.WriteByte(' ')
		sb.WriteString(e.Line)
		sb.WriteByte('\n')
	}
	return sb.String()
}

func lines(nodes []*ir.Node) []string {
	buf := bytes.NewBuffer(nil)
	if err := encode.EncodeForest(nodes, buf); err != nil {
		panic(err)
	}
	return strings.Split(strings.TrimSuffix(buf.String(), "\n"), "\n")
}

func mapLinesTo(m map[string]rune, im map[rune]string, lines []string) []rune {
	rs := make([]rune, len(lines))
	for i, l := range lines {
		r, ok := m[l]
		if !ok {
			r = rune(len(m))
			m[l] = r
			im[r] = l
		}
		rs[i] = r
	}
	return rs
}
