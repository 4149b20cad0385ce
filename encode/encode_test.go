package encode

import (
	"bytes"
	"encoding/json"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/signadot/sdl-format/go-sdl/format"
	"github.com/signadot/sdl-format/go-sdl/ir"
	"github.com/signadot/sdl-format/go-sdl/literal"

	"github.com/google/go-cmp/cmp"
)

func node(t *testing.T, ns, name string, values ...any) *ir.Node {
	t.Helper()
	n, err := ir.NewNS(ns, name)
	if err != nil {
		t.Fatal(err)
	}
	if err := n.SetValues(values...); err != nil {
		t.Fatal(err)
	}
	return n
}

func TestEncodeSDL(t *testing.T) {
	size := node(t, "", "size", 12)
	if err := size.SetAttr("unit", "px"); err != nil {
		t.Fatal(err)
	}
	sorted := node(t, "", "p")
	sorted.SetAttr("z", 1)
	sorted.SetAttr("a", 2)
	nsAttr := node(t, "", "p")
	nsAttr.SetAttrNS("x", "k", true)

	cases := []struct {
		name string
		node *ir.Node
		want string
	}{
		{"values and attr", size, `size 12 unit="px"`},
		{"bare", node(t, "", "empty"), "empty"},
		{"namespace", node(t, "ns", "n", nil), "ns:n null"},
		{"anonymous", node(t, "", "content", 1, "two"), `1 "two"`},
		{"anonymous no values", node(t, "", "content"), "content"},
		{"namespaced content", node(t, "x", "content", 1), "x:content 1"},
		{"attr order", sorted, "p a=2 z=1"},
		{"attr namespace", nsAttr, "p x:k=true"},
		{"kinds", node(t, "", "k", int64(5), float32(1.5), 2.0, literal.Char('c'), []byte("hi")), "k 5L 1.5F 2.0 'c' [aGk=]"},
		{"escaped", node(t, "", "s", "a\"b\n"), `s "a\"b\n"`},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			if diff := cmp.Diff(c.want, MustString(c.node)); diff != "" {
				t.Errorf("(-want +got):\n%s", diff)
			}
		})
	}
}

func TestEncodeDateThenSpan(t *testing.T) {
	date := literal.Date(2005, 12, 5)
	cases := []struct {
		name   string
		values []any
	}{
		{"time of day span", []any{date, literal.FromDuration(literal.MustDuration(0, 12, 30, 0, 0))}},
		{"span with days", []any{date, literal.FromDuration(literal.MustDuration(1, 0, 0, 0, 0))}},
		{"coerced", []any{time.Date(2005, 12, 5, 0, 0, 0, 0, time.UTC), 12 * time.Hour}},
		{"after other values", []any{1, date, literal.FromDuration(literal.MustDuration(0, 0, 0, 5, 0))}},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			n := node(t, "", "foo", c.values...)
			buf := bytes.NewBuffer(nil)
			err := Encode(n, buf)
			if !errors.Is(err, ErrDateSpan) {
				t.Fatalf("got %v want ErrDateSpan", err)
			}
			if buf.Len() != 0 {
				t.Errorf("partial output %q", buf.String())
			}
		})
	}

	// separated by another value, or with the span first, is fine.
	n := node(t, "", "foo", date, 1, literal.FromDuration(literal.MustDuration(0, 12, 30, 0, 0)))
	if got, want := MustString(n), "foo 2005/12/05 1 12:30:00"; got != want {
		t.Errorf("got %q want %q", got, want)
	}
	n = node(t, "", "foo", literal.FromDuration(literal.MustDuration(0, 12, 30, 0, 0)), date)
	if got, want := MustString(n), "foo 12:30:00 2005/12/05"; got != want {
		t.Errorf("got %q want %q", got, want)
	}
}

func TestEncodeChildren(t *testing.T) {
	root := node(t, "", "root")
	a := node(t, "", "a", 1)
	b := node(t, "ns", "b")
	b.SetAttr("x", true)
	b.AddChild(node(t, "", "c"))
	root.AddChild(a)
	root.AddChild(b)

	want := `root {
    a 1
    ns:b x=true {
        c
    }
}`
	if diff := cmp.Diff(want, MustString(root)); diff != "" {
		t.Errorf("(-want +got):\n%s", diff)
	}

	buf := bytes.NewBuffer(nil)
	if err := EncodeChildren(root, buf); err != nil {
		t.Fatal(err)
	}
	want = "a 1\nns:b x=true {\n    c\n}\n"
	if diff := cmp.Diff(want, buf.String()); diff != "" {
		t.Errorf("(-want +got):\n%s", diff)
	}
}

func TestEncodeXML(t *testing.T) {
	root := node(t, "ns", "b", "x<y", 2)
	root.SetAttr("k", 1)
	root.AddChild(node(t, "", "c"))
	buf := bytes.NewBuffer(nil)
	if err := Encode(root, buf, EncodeFormat(format.XMLFormat), EncodeIndent("  ")); err != nil {
		t.Fatal(err)
	}
	want := "<ns:b _val0=\"x&lt;y\" _val1=\"2\" k=\"1\">\n  <c/>\n</ns:b>\n"
	if diff := cmp.Diff(want, buf.String()); diff != "" {
		t.Errorf("(-want +got):\n%s", diff)
	}
}

func TestEncodeJSON(t *testing.T) {
	root := node(t, "", "root", literal.Date(2005, 12, 31))
	root.SetAttrNS("x", "d", literal.FromDuration(literal.MustDuration(0, 1, 2, 3, 0)))
	root.AddChild(node(t, "", "c", "s"))
	buf := bytes.NewBuffer(nil)
	if err := Encode(root, buf, EncodeFormat(format.JSONFormat)); err != nil {
		t.Fatal(err)
	}
	got := &ir.Node{}
	if err := json.Unmarshal(buf.Bytes(), got); err != nil {
		t.Fatal(err)
	}
	if !ir.Equal(root, got) {
		t.Errorf("json round trip: got %s", MustString(got))
	}
}

func TestEncodeYAML(t *testing.T) {
	buf := bytes.NewBuffer(nil)
	if err := Encode(node(t, "", "a", 1), buf, EncodeFormat(format.YAMLFormat)); err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(buf.String(), "name: a") {
		t.Errorf("yaml output %q", buf.String())
	}
}

func TestEncodeColors(t *testing.T) {
	c := &Colors{
		Default: colorDefault,
		Map: map[Colorable]func(string, ...any) string{
			{Kind: literal.NullKind, Attr: NameColor}: func(s string, _ ...any) string {
				return "[" + s + "]"
			},
			{Kind: literal.Int32Kind, Attr: ValueColor}: func(s string, _ ...any) string {
				return "<" + s + ">"
			},
		},
	}
	got := MustString(node(t, "", "a", 1, "s"), EncodeColors(c))
	if diff := cmp.Diff(`[a] <1> "s"`, got); diff != "" {
		t.Errorf("(-want +got):\n%s", diff)
	}
	if FormatFromOpts(EncodeFormat(format.XMLFormat)) != format.XMLFormat {
		t.Error("format from opts")
	}
}
