package ir

import (
	"encoding/json"
	"errors"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
	"github.com/signadot/sdl-format/go-sdl/literal"
)

func TestValidateIdentifier(t *testing.T) {
	tests := []struct {
		id    string
		valid bool
	}{
		{"_a-1", true},
		{"日本語_tag", true},
		{"name", true},
		{"a1-b_c", true},
		{"1abc", false},
		{"", false},
		{"-abc", false},
		{"a b", false},
		{"a:b", false},
		{"a.b", false},
	}
	for _, tt := range tests {
		t.Run(tt.id, func(t *testing.T) {
			err := ValidateIdentifier(tt.id)
			if tt.valid && err != nil {
				t.Errorf("unexpected error %v", err)
			}
			if !tt.valid && !errors.Is(err, ErrIdentifier) {
				t.Errorf("expected identifier error, got %v", err)
			}
		})
	}
}

func keys(n *Node) []string {
	var res []string
	for k := range n.All() {
		res = append(res, k)
	}
	return res
}

func TestAttrOrder(t *testing.T) {
	a := MustNew("tag")
	if err := a.SetAttr("foo", "bar"); err != nil {
		t.Fatal(err)
	}
	if err := a.SetAttr("john", "doe"); err != nil {
		t.Fatal(err)
	}
	b := MustNew("tag")
	b.SetAttr("john", "doe")
	b.SetAttr("foo", "bar")
	if diff := cmp.Diff([]string{"foo", "john"}, keys(a)); diff != "" {
		t.Errorf("keys (-want +got):\n%s", diff)
	}
	if diff := cmp.Diff([]string{"foo", "john"}, keys(b)); diff != "" {
		t.Errorf("keys (-want +got):\n%s", diff)
	}
	if !Equal(a, b) {
		t.Errorf("attribute insertion order changed equality")
	}
	if a.Hash() != b.Hash() {
		t.Errorf("equal nodes hash differently")
	}
}

func TestAttrNamespace(t *testing.T) {
	n := MustNew("tag")
	if err := n.SetAttrNS("ns", "key", 1); err != nil {
		t.Fatal(err)
	}
	if got := n.AttrNamespace("key"); got != "ns" {
		t.Errorf("namespace %q", got)
	}
	if err := n.SetAttr("key", 2); err != nil {
		t.Fatal(err)
	}
	if n.NumAttrs() != 1 || n.AttrNamespace("key") != "" {
		t.Errorf("key not replaced: %v", n.Attrs())
	}
	v, ok := n.Attr("key")
	if !ok || v.Int() != 2 {
		t.Errorf("value %s", v)
	}
	n.SetAttrNS("x", "other", true)
	if got := n.AttrsNS("x"); len(got) != 1 || got[0].QName() != "x:other" {
		t.Errorf("attrs in x: %v", got)
	}
	if !n.RemoveAttr("key") || n.HasAttr("key") {
		t.Errorf("remove key")
	}
	if err := n.SetAttr("1bad", 1); !errors.Is(err, ErrIdentifier) {
		t.Errorf("expected identifier error, got %v", err)
	}
	if err := n.SetAttrNS("bad ns", "k", 1); !errors.Is(err, ErrIdentifier) {
		t.Errorf("expected identifier error, got %v", err)
	}
	if err := n.SetAttr("k", struct{}{}); !errors.Is(err, literal.ErrCoerce) {
		t.Errorf("expected coerce error, got %v", err)
	}
}

func TestValues(t *testing.T) {
	n := MustNew("tag")
	if err := n.AddValue(5); err != nil {
		t.Fatal(err)
	}
	if err := n.AddValue("x"); err != nil {
		t.Fatal(err)
	}
	if err := n.AddValue(map[string]int{}); !errors.Is(err, literal.ErrCoerce) {
		t.Errorf("expected coerce error, got %v", err)
	}
	if n.NumValues() != 2 || n.Value().Kind() != literal.Int32Kind {
		t.Errorf("values %v", n.Values())
	}
	n.SetValue(int64(7))
	if got := n.Value().String(); got != "7L" {
		t.Errorf("first value %s", got)
	}
	if !n.RemoveValue("x") || n.NumValues() != 1 {
		t.Errorf("remove value: %v", n.Values())
	}
	if n.RemoveValue("x") {
		t.Errorf("removed missing value")
	}
	if err := n.SetValues(1, struct{}{}); err == nil {
		t.Errorf("expected error")
	}
	if n.NumValues() != 1 {
		t.Errorf("failed SetValues changed the node")
	}
	n.ClearValues()
	if !n.Value().IsNull() {
		t.Errorf("value of empty node %s", n.Value())
	}
}

func TestNames(t *testing.T) {
	if _, err := New("1abc"); !errors.Is(err, ErrIdentifier) {
		t.Errorf("expected identifier error, got %v", err)
	}
	if _, err := New(""); !errors.Is(err, ErrEmptyName) {
		t.Errorf("expected empty name error, got %v", err)
	}
	n := MustNewNS("ns", "name")
	if n.QName() != "ns:name" {
		t.Errorf("qname %s", n.QName())
	}
	if err := n.SetNamespace(""); err != nil {
		t.Fatal(err)
	}
	if err := n.SetName("-x"); !errors.Is(err, ErrIdentifier) {
		t.Errorf("expected identifier error, got %v", err)
	}
	if n.QName() != "name" {
		t.Errorf("qname %s", n.QName())
	}
	if !MustNew(ContentName).IsContent() || MustNewNS("a", ContentName).IsContent() {
		t.Errorf("content detection")
	}
}

func tree() *Node {
	root := MustNew("root")
	a := MustNew("a")
	b := MustNewNS("x", "b")
	c := MustNewNS("x", "a")
	a.AddValue(1)
	c.AddValue(2)
	b.AddChild(c)
	root.AddChild(a)
	root.AddChild(b)
	return root
}

func TestChildren(t *testing.T) {
	root := tree()
	names := func(ns []*Node) []string {
		var res []string
		for _, n := range ns {
			res = append(res, n.QName())
		}
		return res
	}
	if diff := cmp.Diff([]string{"a"}, names(root.ChildrenNamed("a", false))); diff != "" {
		t.Errorf("(-want +got):\n%s", diff)
	}
	if diff := cmp.Diff([]string{"a", "x:a"}, names(root.ChildrenNamed("a", true))); diff != "" {
		t.Errorf("(-want +got):\n%s", diff)
	}
	if diff := cmp.Diff([]string{"x:b", "x:a"}, names(root.ChildrenNS("x", true))); diff != "" {
		t.Errorf("(-want +got):\n%s", diff)
	}
	if diff := cmp.Diff([]string{"a", "x:b", "x:a"}, names(root.Descendants())); diff != "" {
		t.Errorf("(-want +got):\n%s", diff)
	}
	if got := root.Child("b"); got == nil || got.QName() != "x:b" {
		t.Errorf("child b")
	}
	if root.Child("nope") != nil || root.FindChild("nope") != nil {
		t.Errorf("found missing child")
	}
	vals := root.ChildrenValues("a")
	if len(vals) != 1 || vals[0][0].Int() != 1 {
		t.Errorf("children values %v", vals)
	}
	b := root.Child("b")
	if !root.RemoveChild(b) || root.NumChildren() != 1 {
		t.Errorf("remove child")
	}
}

func TestCycle(t *testing.T) {
	a, b := MustNew("a"), MustNew("b")
	if err := a.AddChild(a); !errors.Is(err, ErrCycle) {
		t.Errorf("expected cycle error, got %v", err)
	}
	if err := a.AddChild(b); err != nil {
		t.Fatal(err)
	}
	if err := b.AddChild(a); !errors.Is(err, ErrCycle) {
		t.Errorf("expected cycle error, got %v", err)
	}
	if err := a.AddChild(nil); !errors.Is(err, ErrNilChild) {
		t.Errorf("expected nil child error, got %v", err)
	}
}

func TestSingleParent(t *testing.T) {
	p1, p2, c := MustNew("p1"), MustNew("p2"), MustNew("c")
	if err := p1.AddChild(c); err != nil {
		t.Fatal(err)
	}
	if c.Parent() != p1 {
		t.Errorf("parent %v", c.Parent())
	}
	if err := p2.AddChild(c); !errors.Is(err, ErrHasParent) {
		t.Errorf("expected has parent error, got %v", err)
	}
	if err := p1.AddChild(c); !errors.Is(err, ErrHasParent) {
		t.Errorf("expected has parent error adding twice, got %v", err)
	}
	if p1.NumChildren() != 1 || p2.NumChildren() != 0 {
		t.Errorf("children %d %d", p1.NumChildren(), p2.NumChildren())
	}
	if !p1.RemoveChild(c) || c.Parent() != nil {
		t.Fatalf("remove child left parent %v", c.Parent())
	}
	if err := p2.AddChild(c); err != nil {
		t.Fatal(err)
	}
	p2.ClearChildren()
	if c.Parent() != nil {
		t.Errorf("clear children left parent %v", c.Parent())
	}

	root := tree()
	cp := root.Clone()
	for _, k := range cp.Children() {
		if k.Parent() != cp {
			t.Errorf("clone child %s has parent %v", k.QName(), k.Parent())
		}
	}
	if cp.Parent() != nil {
		t.Errorf("clone has parent")
	}
}

func TestCloneAndEqual(t *testing.T) {
	root := tree()
	cp := root.Clone()
	if !Equal(root, cp) {
		t.Fatalf("clone differs")
	}
	cp.Child("a").AddValue(2)
	if Equal(root, cp) {
		t.Errorf("clone shares children")
	}
	if root.Child("a").NumValues() != 1 {
		t.Errorf("clone mutation leaked")
	}
	if Equal(MustNew("a"), nil) || !Equal(nil, nil) {
		t.Errorf("nil equality")
	}
	x, y := MustNew("t"), MustNew("t")
	x.AddValue(int32(5))
	y.AddValue(int64(5))
	if Equal(x, y) {
		t.Errorf("Int32 and Int64 values compare equal")
	}
}

func TestJSON(t *testing.T) {
	root := tree()
	b := root.Child("b")
	b.SetAttrNS("ns", "when", time.Date(2001, 2, 3, 4, 5, 6, 0, time.UTC))
	b.SetAttr("bin", []byte("hi"))
	root.Child("a").AddValue("q\"uote")
	d, err := json.Marshal(root)
	if err != nil {
		t.Fatal(err)
	}
	back := &Node{}
	if err := json.Unmarshal(d, back); err != nil {
		t.Fatal(err)
	}
	if !Equal(root, back) {
		t.Errorf("json round trip changed the tree: %s", d)
	}
	for _, c := range back.Children() {
		if c.Parent() != back {
			t.Errorf("decoded child %s not attached", c.QName())
		}
	}
	if err := json.Unmarshal([]byte(`{"name":"1bad"}`), back); !errors.Is(err, ErrIdentifier) {
		t.Errorf("expected identifier error, got %v", err)
	}
}
