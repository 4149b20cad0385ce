package ir

import (
	"encoding/json"

	"github.com/signadot/sdl-format/go-sdl/literal"
)

// irBase is the JSON shape of a node. Values are written as their literal
// text, so the kind survives a round trip.
type irBase struct {
	Namespace string          `json:"namespace,omitempty"`
	Name      string          `json:"name"`
	Values    []literal.Value `json:"values,omitempty"`
	Attrs     []Attr          `json:"attrs,omitempty"`
	Children  []*Node         `json:"children,omitempty"`
}

func (n *Node) MarshalJSON() ([]byte, error) {
	return json.Marshal(&irBase{
		Namespace: n.namespace,
		Name:      n.name,
		Values:    n.values,
		Attrs:     n.attrs,
		Children:  n.children,
	})
}

func (n *Node) UnmarshalJSON(d []byte) error {
	tmp := &irBase{}
	if err := json.Unmarshal(d, tmp); err != nil {
		return err
	}
	res, err := NewNS(tmp.Namespace, tmp.Name)
	if err != nil {
		return err
	}
	if err := res.SetValues(anys(tmp.Values)...); err != nil {
		return err
	}
	for _, a := range tmp.Attrs {
		if err := res.SetAttrNS(a.Namespace, a.Key, a.Value); err != nil {
			return err
		}
	}
	for _, c := range tmp.Children {
		if err := res.AddChild(c); err != nil {
			return err
		}
	}
	n.ClearChildren()
	parent := n.parent
	*n = *res
	n.parent = parent
	for _, c := range n.children {
		c.parent = n
	}
	return nil
}

func anys(vs []literal.Value) []any {
	res := make([]any, len(vs))
	for i, v := range vs {
		res[i] = v
	}
	return res
}
