package encode

import (
	"bytes"
	"encoding/json"
	"encoding/xml"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/signadot/sdl-format/go-sdl/format"
	"github.com/signadot/sdl-format/go-sdl/ir"
	"github.com/signadot/sdl-format/go-sdl/literal"

	"github.com/goccy/go-yaml"
)

// Indent is the per level indentation of canonical SDL.
const Indent = "    "

type EncState struct {
	depth     int
	xmlIndent string

	format format.Format

	Color func(literal.Kind, ColorAttr, string) string
}

func newEncState(opts []EncodeOption) *EncState {
	es := &EncState{xmlIndent: Indent}
	for _, opt := range opts {
		opt(es)
	}
	return es
}

// Encode writes node followed by a newline.
func Encode(node *ir.Node, w io.Writer, opts ...EncodeOption) error {
	es := newEncState(opts)
	switch {
	case es.format.IsJSON():
		return encodeJSON(node, w)
	case es.format.IsYAML():
		return encodeYAML(node, w)
	}
	if err := encodeNode(node, w, es); err != nil {
		return err
	}
	return writeString(w, "\n")
}

// EncodeChildren writes the children of root as a document.
func EncodeChildren(root *ir.Node, w io.Writer, opts ...EncodeOption) error {
	return EncodeForest(root.Children(), w, opts...)
}

// EncodeForest writes nodes as a document, one top level node after the
// other. JSON and YAML output is a single array.
func EncodeForest(nodes []*ir.Node, w io.Writer, opts ...EncodeOption) error {
	es := newEncState(opts)
	switch {
	case es.format.IsJSON():
		return encodeJSON(nodes, w)
	case es.format.IsYAML():
		return encodeYAML(nodes, w)
	}
	for _, n := range nodes {
		if err := encodeNode(n, w, es); err != nil {
			return err
		}
		if err := writeString(w, "\n"); err != nil {
			return err
		}
	}
	return nil
}

func encodeNode(node *ir.Node, w io.Writer, es *EncState) error {
	if node == nil {
		return fmt.Errorf("%w: nil node", ir.ErrNilChild)
	}
	if es.format.IsXML() {
		return encodeXML(node, w, es)
	}
	return encodeSDL(node, w, es)
}

// ErrDateSpan is returned for a Date value directly followed by a
// Duration value, which a document would read back as a single DateTime.
var ErrDateSpan = errors.New("date followed by time span")

func encodeSDL(node *ir.Node, w io.Writer, es *EncState) error {
	values := node.Values()
	for i := 1; i < len(values); i++ {
		if values[i-1].Kind() == literal.DateKind && values[i].Kind() == literal.DurationKind {
			return fmt.Errorf("%w: %s values %d and %d", ErrDateSpan, node.QName(), i-1, i)
		}
	}
	if err := writeString(w, strings.Repeat(Indent, es.depth)); err != nil {
		return err
	}
	// the anonymous node is only implied when it carries a value to
	// start the line.
	anon := node.IsContent() && len(values) > 0
	if !anon {
		if err := writeQName(w, es, node.Namespace(), node.Name(), NameColor); err != nil {
			return err
		}
	}
	for i, v := range values {
		if i != 0 || !anon {
			if err := writeString(w, " "); err != nil {
				return err
			}
		}
		if err := writeValue(w, es, v); err != nil {
			return err
		}
	}
	for _, a := range node.Attrs() {
		if err := writeString(w, " "); err != nil {
			return err
		}
		if err := writeQName(w, es, a.Namespace, a.Key, AttrKeyColor); err != nil {
			return err
		}
		if err := writeString(w, es.color(literal.NullKind, SepColor, "=")); err != nil {
			return err
		}
		if err := writeValue(w, es, a.Value); err != nil {
			return err
		}
	}
	children := node.Children()
	if len(children) == 0 {
		return nil
	}
	if err := writeString(w, " "+es.color(literal.NullKind, SepColor, "{")+"\n"); err != nil {
		return err
	}
	es.depth++
	for _, c := range children {
		if err := encodeSDL(c, w, es); err != nil {
			return err
		}
		if err := writeString(w, "\n"); err != nil {
			return err
		}
	}
	es.depth--
	return writeString(w, strings.Repeat(Indent, es.depth)+es.color(literal.NullKind, SepColor, "}"))
}

func writeQName(w io.Writer, es *EncState, ns, name string, attr ColorAttr) error {
	if ns != "" {
		s := es.color(literal.NullKind, NamespaceColor, ns) + es.color(literal.NullKind, SepColor, ":")
		if err := writeString(w, s); err != nil {
			return err
		}
	}
	return writeString(w, es.color(literal.NullKind, attr, name))
}

func writeValue(w io.Writer, es *EncState, v literal.Value) error {
	if err := literal.Validate(v); err != nil {
		return err
	}
	return writeString(w, es.color(v.Kind(), ValueColor, literal.Format(v, true)))
}

// encodeXML writes values as _val0, _val1, ... attributes followed by the
// node attributes.
func encodeXML(node *ir.Node, w io.Writer, es *EncState) error {
	pad := strings.Repeat(es.xmlIndent, es.depth)
	qn := node.QName()
	buf := bytes.NewBuffer(nil)
	buf.WriteString(pad + "<" + qn)
	for i, v := range node.Values() {
		if err := literal.Validate(v); err != nil {
			return err
		}
		buf.WriteString(" _val" + strconv.Itoa(i) + "=\"")
		if err := xml.EscapeText(buf, []byte(literal.Format(v, false))); err != nil {
			return err
		}
		buf.WriteByte('"')
	}
	for _, a := range node.Attrs() {
		if err := literal.Validate(a.Value); err != nil {
			return err
		}
		buf.WriteString(" " + a.QName() + "=\"")
		if err := xml.EscapeText(buf, []byte(literal.Format(a.Value, false))); err != nil {
			return err
		}
		buf.WriteByte('"')
	}
	children := node.Children()
	if len(children) == 0 {
		buf.WriteString("/>")
		_, err := w.Write(buf.Bytes())
		return err
	}
	buf.WriteString(">\n")
	if _, err := w.Write(buf.Bytes()); err != nil {
		return err
	}
	es.depth++
	for _, c := range children {
		if err := encodeXML(c, w, es); err != nil {
			return err
		}
		if err := writeString(w, "\n"); err != nil {
			return err
		}
	}
	es.depth--
	return writeString(w, pad+"</"+qn+">")
}

func encodeJSON(x any, w io.Writer) error {
	d, err := json.MarshalIndent(x, "", "  ")
	if err != nil {
		return err
	}
	d = append(d, '\n')
	_, err = w.Write(d)
	return err
}

func encodeYAML(x any, w io.Writer) error {
	j, err := json.Marshal(x)
	if err != nil {
		return err
	}
	d, err := yaml.JSONToYAML(j)
	if err != nil {
		return fmt.Errorf("yaml: %w", err)
	}
	_, err = w.Write(d)
	return err
}

func (es *EncState) color(k literal.Kind, a ColorAttr, s string) string {
	if es.Color == nil {
		return s
	}
	return es.Color(k, a, s)
}

func writeString(w io.Writer, s string) error {
	_, err := io.WriteString(w, s)
	return err
}
