package ir

import (
	"fmt"
	"iter"
	"slices"
	"strings"

	"github.com/signadot/sdl-format/go-sdl/literal"
)

// ContentName is the name given to statements that start with a value.
const ContentName = "content"

// Node is a tag: a namespaced name, an ordered list of values, attributes
// kept in key order and an ordered list of children.
//
// Every mutator validates identifiers and coerces values with
// literal.Coerce, so a Node only ever holds what a document can express.
type Node struct {
	namespace string
	name      string
	values    []literal.Value
	attrs     []Attr
	children  []*Node
	parent    *Node
}

// Attr is an attribute. Keys are unique within a node; the namespace rides
// along with the key.
type Attr struct {
	Namespace string        `json:"namespace,omitempty"`
	Key       string        `json:"key"`
	Value     literal.Value `json:"value"`
}

// QName returns the key prefixed by its namespace, if any.
func (a Attr) QName() string {
	return qname(a.Namespace, a.Key)
}

func qname(ns, name string) string {
	if ns == "" {
		return name
	}
	return ns + ":" + name
}

func New(name string) (*Node, error) {
	return NewNS("", name)
}

func NewNS(namespace, name string) (*Node, error) {
	if err := ValidateIdentifier(name); err != nil {
		return nil, err
	}
	if err := validateNamespace(namespace); err != nil {
		return nil, err
	}
	return &Node{namespace: namespace, name: name}, nil
}

// MustNew is like New but panics on an invalid name.
func MustNew(name string) *Node {
	return MustNewNS("", name)
}

func MustNewNS(namespace, name string) *Node {
	n, err := NewNS(namespace, name)
	if err != nil {
		panic(err)
	}
	return n
}

func (n *Node) Name() string      { return n.name }
func (n *Node) Namespace() string { return n.namespace }
func (n *Node) QName() string     { return qname(n.namespace, n.name) }

// IsContent reports whether n is an anonymous statement, one written
// starting with a value.
func (n *Node) IsContent() bool {
	return n.name == ContentName && n.namespace == ""
}

func (n *Node) SetName(name string) error {
	if err := ValidateIdentifier(name); err != nil {
		return err
	}
	n.name = name
	return nil
}

// SetNamespace sets the namespace; the empty namespace is allowed.
func (n *Node) SetNamespace(ns string) error {
	if err := validateNamespace(ns); err != nil {
		return err
	}
	n.namespace = ns
	return nil
}

// Values returns a copy of the values.
func (n *Node) Values() []literal.Value {
	return slices.Clone(n.values)
}

func (n *Node) NumValues() int {
	return len(n.values)
}

// Value returns the first value, or Null if there is none.
func (n *Node) Value() literal.Value {
	if len(n.values) == 0 {
		return literal.Null()
	}
	return n.values[0]
}

func (n *Node) AddValue(x any) error {
	v, err := literal.Coerce(x)
	if err != nil {
		return err
	}
	n.values = append(n.values, v)
	return nil
}

// SetValue replaces the first value, adding it if there are none.
func (n *Node) SetValue(x any) error {
	v, err := literal.Coerce(x)
	if err != nil {
		return err
	}
	if len(n.values) == 0 {
		n.values = append(n.values, v)
	} else {
		n.values[0] = v
	}
	return nil
}

// SetValues replaces all values. On error n is unchanged.
func (n *Node) SetValues(xs ...any) error {
	vs := make([]literal.Value, 0, len(xs))
	for _, x := range xs {
		v, err := literal.Coerce(x)
		if err != nil {
			return err
		}
		vs = append(vs, v)
	}
	n.values = vs
	return nil
}

// RemoveValue removes the first value equal to x.
func (n *Node) RemoveValue(x any) bool {
	v, err := literal.Coerce(x)
	if err != nil {
		return false
	}
	i := slices.IndexFunc(n.values, v.Equal)
	if i < 0 {
		return false
	}
	n.values = slices.Delete(n.values, i, i+1)
	return true
}

func (n *Node) ClearValues() {
	n.values = nil
}

func (n *Node) findAttr(key string) (int, bool) {
	return slices.BinarySearchFunc(n.attrs, key, func(a Attr, k string) int {
		return strings.Compare(a.Key, k)
	})
}

// SetAttr sets an attribute in the empty namespace.
func (n *Node) SetAttr(key string, x any) error {
	return n.SetAttrNS("", key, x)
}

// SetAttrNS sets an attribute, replacing any attribute with the same key
// whatever its namespace.
func (n *Node) SetAttrNS(namespace, key string, x any) error {
	if err := ValidateIdentifier(key); err != nil {
		return err
	}
	if err := validateNamespace(namespace); err != nil {
		return err
	}
	v, err := literal.Coerce(x)
	if err != nil {
		return fmt.Errorf("attribute %s: %w", qname(namespace, key), err)
	}
	a := Attr{Namespace: namespace, Key: key, Value: v}
	i, found := n.findAttr(key)
	if found {
		n.attrs[i] = a
		return nil
	}
	n.attrs = slices.Insert(n.attrs, i, a)
	return nil
}

// Attr returns the value of the attribute with the given key.
func (n *Node) Attr(key string) (literal.Value, bool) {
	i, found := n.findAttr(key)
	if !found {
		return literal.Null(), false
	}
	return n.attrs[i].Value, true
}

// AttrNamespace returns the namespace of the attribute with the given key.
func (n *Node) AttrNamespace(key string) string {
	i, found := n.findAttr(key)
	if !found {
		return ""
	}
	return n.attrs[i].Namespace
}

func (n *Node) HasAttr(key string) bool {
	_, found := n.findAttr(key)
	return found
}

func (n *Node) RemoveAttr(key string) bool {
	i, found := n.findAttr(key)
	if !found {
		return false
	}
	n.attrs = slices.Delete(n.attrs, i, i+1)
	return true
}

// Attrs returns the attributes in key order.
func (n *Node) Attrs() []Attr {
	return slices.Clone(n.attrs)
}

func (n *Node) NumAttrs() int {
	return len(n.attrs)
}

// AttrsNS returns the attributes in the given namespace, in key order.
func (n *Node) AttrsNS(namespace string) []Attr {
	var res []Attr
	for _, a := range n.attrs {
		if a.Namespace == namespace {
			res = append(res, a)
		}
	}
	return res
}

// SetAttrs replaces all attributes with the given ones, all in the empty
// namespace. On error n is unchanged.
func (n *Node) SetAttrs(m map[string]any) error {
	tmp := &Node{}
	for k, x := range m {
		if err := tmp.SetAttr(k, x); err != nil {
			return err
		}
	}
	n.attrs = tmp.attrs
	return nil
}

func (n *Node) ClearAttrs() {
	n.attrs = nil
}

// All iterates over the attributes in key order.
func (n *Node) All() iter.Seq2[string, Attr] {
	return func(yield func(string, Attr) bool) {
		for _, a := range n.attrs {
			if !yield(a.Key, a) {
				return
			}
		}
	}
}

// AddChild appends c to the children of n. A node cannot be added below
// itself, and a node has at most one parent: remove c from its parent
// first to move it.
func (n *Node) AddChild(c *Node) error {
	if c == nil {
		return ErrNilChild
	}
	if c == n || c.contains(n) {
		return fmt.Errorf("%w: %s", ErrCycle, n.QName())
	}
	if c.parent != nil {
		return fmt.Errorf("%w: %s is a child of %s", ErrHasParent, c.QName(), c.parent.QName())
	}
	c.parent = n
	n.children = append(n.children, c)
	return nil
}

// Parent returns the node n was added to, or nil.
func (n *Node) Parent() *Node {
	return n.parent
}

func (n *Node) contains(x *Node) bool {
	for _, c := range n.children {
		if c == x || c.contains(x) {
			return true
		}
	}
	return false
}

// RemoveChild removes the first occurrence of c.
func (n *Node) RemoveChild(c *Node) bool {
	i := slices.Index(n.children, c)
	if i < 0 {
		return false
	}
	n.children = slices.Delete(n.children, i, i+1)
	c.parent = nil
	return true
}

func (n *Node) ClearChildren() {
	for _, c := range n.children {
		c.parent = nil
	}
	n.children = nil
}

// Children returns a copy of the list of children.
func (n *Node) Children() []*Node {
	return slices.Clone(n.children)
}

func (n *Node) NumChildren() int {
	return len(n.children)
}

// Child returns the first child with the given name, or nil.
func (n *Node) Child(name string) *Node {
	for _, c := range n.children {
		if c.name == name {
			return c
		}
	}
	return nil
}

// FindChild searches depth first for a descendant with the given name.
func (n *Node) FindChild(name string) *Node {
	for _, c := range n.children {
		if c.name == name {
			return c
		}
		if rc := c.FindChild(name); rc != nil {
			return rc
		}
	}
	return nil
}

// ChildrenNamed returns the children with the given name, and with
// recursive their descendants with that name, in document order.
func (n *Node) ChildrenNamed(name string, recursive bool) []*Node {
	return n.collect(func(c *Node) bool { return c.name == name }, recursive)
}

// ChildrenNS returns the children in the given namespace, and with
// recursive their descendants in that namespace, in document order.
func (n *Node) ChildrenNS(namespace string, recursive bool) []*Node {
	return n.collect(func(c *Node) bool { return c.namespace == namespace }, recursive)
}

// Descendants returns every node below n in document order.
func (n *Node) Descendants() []*Node {
	return n.collect(func(*Node) bool { return true }, true)
}

func (n *Node) collect(f func(*Node) bool, recursive bool) []*Node {
	var res []*Node
	for _, c := range n.children {
		if f(c) {
			res = append(res, c)
		}
		if recursive {
			res = append(res, c.collect(f, true)...)
		}
	}
	return res
}

// ChildrenValues returns the values of each child with the given name.
func (n *Node) ChildrenValues(name string) [][]literal.Value {
	var res [][]literal.Value
	for _, c := range n.children {
		if c.name == name {
			res = append(res, c.Values())
		}
	}
	return res
}

// Clone returns a deep copy of n.
func (n *Node) Clone() *Node {
	res := &Node{
		namespace: n.namespace,
		name:      n.name,
		values:    slices.Clone(n.values),
		attrs:     slices.Clone(n.attrs),
	}
	if n.children != nil {
		res.children = make([]*Node, len(n.children))
		for i, c := range n.children {
			res.children[i] = c.Clone()
			res.children[i].parent = res
		}
	}
	return res
}
