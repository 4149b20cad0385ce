// Package encode writes IR nodes as text.
//
// The default output is canonical SDL: a node line holds the optionally
// namespaced name, the values, then the attributes in key order. Children
// follow in a braced block indented by four spaces. A node named "content"
// with no namespace and at least one value is written without its name.
//
// # Usage
//
//	n := ir.MustNew("size")
//	n.AddValue(12)
//	n.SetAttr("unit", "px")
//	err := encode.Encode(n, os.Stdout)
//	// size 12 unit="px"
//
//	// a whole document
//	err = encode.EncodeForest(nodes, w, encode.EncodeFormat(format.XMLFormat))
//
// JSON and YAML output carry the literal text of each value so the
// kinds survive.
//
// # Related Packages
//
//   - github.com/signadot/sdl-format/go-sdl/ir - IR representation
//   - github.com/signadot/sdl-format/go-sdl/parse - Parse text to IR
package encode
