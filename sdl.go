package sdl

import (
	"errors"
	"io"
	"os"
	"strings"

	"github.com/signadot/sdl-format/go-sdl/encode"
	"github.com/signadot/sdl-format/go-sdl/ir"
	"github.com/signadot/sdl-format/go-sdl/literal"
	"github.com/signadot/sdl-format/go-sdl/parse"
)

// RootName is the name of the node holding the statements of a document.
const RootName = "root"

// Value parses the literal text of a single value, such as `"hi"`,
// `5L` or `2005/12/31 12:30-JST`.
func Value(text string) (literal.Value, error) {
	return literal.Parse(strings.TrimSpace(text))
}

// List parses a space separated list of values.
func List(text string) ([]literal.Value, error) {
	return parse.ParseValues(text)
}

// Map parses a space separated list of attributes, keyed by their
// unqualified names.
func Map(text string) (map[string]literal.Value, error) {
	attrs, err := parse.ParseAttrs(text)
	if err != nil {
		return nil, err
	}
	res := make(map[string]literal.Value, len(attrs))
	for _, a := range attrs {
		res[a.Key] = a.Value
	}
	return res, nil
}

// Format returns the literal text of x, which may be any type accepted
// by literal.Coerce.
func Format(x any) (string, error) {
	v, err := literal.Coerce(x)
	if err != nil {
		return "", err
	}
	return literal.Format(v, true), nil
}

// Read parses a document into the children of a node named "root".
func Read(r io.Reader, opts ...parse.ParseOption) (*ir.Node, error) {
	root := ir.MustNew(RootName)
	if err := parse.ParseInto(root, r, opts...); err != nil {
		return nil, err
	}
	return root, nil
}

func ReadString(s string, opts ...parse.ParseOption) (*ir.Node, error) {
	return Read(strings.NewReader(s), opts...)
}

func ReadFile(path string, opts ...parse.ParseOption) (*ir.Node, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	return Read(f, opts...)
}

// Write writes root, or only its children when includeRoot is false.
func Write(w io.Writer, root *ir.Node, includeRoot bool, opts ...encode.EncodeOption) error {
	if includeRoot {
		return encode.Encode(root, w, opts...)
	}
	return encode.EncodeChildren(root, w, opts...)
}

func WriteFile(path string, root *ir.Node, includeRoot bool, opts ...encode.EncodeOption) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	return errors.Join(Write(f, root, includeRoot, opts...), f.Close())
}
