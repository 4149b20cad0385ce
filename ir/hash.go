package ir

import (
	"encoding/binary"
	"hash/maphash"

	"github.com/signadot/sdl-format/go-sdl/literal"
)

var seed = maphash.MakeSeed()

// Hash returns a 64-bit hash of the node consistent with Equal within
// one process.
// It panics if n is nil.
func (n *Node) Hash() uint64 {
	if n == nil {
		panic("ir: Hash called on nil node")
	}
	var h maphash.Hash
	h.SetSeed(seed)
	h.WriteString(n.namespace)
	h.WriteByte(0)
	h.WriteString(n.name)
	h.WriteByte(0)
	for _, v := range n.values {
		writeValue(&h, v)
	}
	h.WriteByte(0)
	for _, a := range n.attrs {
		h.WriteString(a.Namespace)
		h.WriteByte(':')
		h.WriteString(a.Key)
		h.WriteByte('=')
		writeValue(&h, a.Value)
	}
	var b [8]byte
	for _, c := range n.children {
		binary.LittleEndian.PutUint64(b[:], c.Hash())
		h.Write(b[:])
	}
	return h.Sum64()
}

func writeValue(h *maphash.Hash, v literal.Value) {
	h.WriteByte(byte(v.Kind()))
	h.WriteString(literal.Format(v, true))
	h.WriteByte(0)
}
