package ir

import "github.com/signadot/sdl-format/go-sdl/literal"

// Equal reports whether a and b are structurally equal: same identity,
// equal values and children in order and the same attributes. Attribute
// insertion order plays no part since attributes are kept in key order.
func Equal(a, b *Node) bool {
	if a == b {
		return true
	}
	if a == nil || b == nil {
		return false
	}
	if a.namespace != b.namespace || a.name != b.name {
		return false
	}
	if len(a.values) != len(b.values) || len(a.attrs) != len(b.attrs) || len(a.children) != len(b.children) {
		return false
	}
	for i := range a.values {
		if !literal.Equal(a.values[i], b.values[i]) {
			return false
		}
	}
	for i := range a.attrs {
		x, y := &a.attrs[i], &b.attrs[i]
		if x.Key != y.Key || x.Namespace != y.Namespace || !literal.Equal(x.Value, y.Value) {
			return false
		}
	}
	for i := range a.children {
		if !Equal(a.children[i], b.children[i]) {
			return false
		}
	}
	return true
}

func (n *Node) Equal(o *Node) bool {
	return Equal(n, o)
}

// EqualForest compares two lists of top level nodes.
func EqualForest(a, b []*Node) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if !Equal(a[i], b[i]) {
			return false
		}
	}
	return true
}
