// Package ir provides the in-memory tree of SDL documents.
//
// # Overview
//
// A document is a list of tags. Each tag is a Node with
//
//   - an identity: an optional namespace and a name
//   - an ordered list of values (see package literal)
//   - attributes, kept in key order, each with its own optional namespace
//   - an ordered list of child nodes
//
// Nodes own their children: a node has at most one parent (see
// Node.Parent) and can never be added below itself. RemoveChild detaches a
// node so it can be added elsewhere.
//
// A statement written starting with a value, such as
//
//	"hello" 5
//
// is a node named "content" (see ContentName and Node.IsContent).
//
// # Validation
//
// Names, namespaces and attribute keys must satisfy ValidateIdentifier.
// Values given to mutators are converted with literal.Coerce. Both checks
// happen when the mutator is called, so a Node always holds a writable
// document.
//
// # Equality
//
// Equal compares structure: identity, values and children in order and
// attributes by key. Hash is consistent with Equal.
//
// # Related Packages
//
//   - github.com/signadot/sdl-format/go-sdl/parse - Parse SDL text into nodes
//   - github.com/signadot/sdl-format/go-sdl/encode - Encode nodes to text
//   - github.com/signadot/sdl-format/go-sdl/literal - Values
package ir
