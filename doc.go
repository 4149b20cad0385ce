// Package sdl reads and writes SDL (Simple Declarative Language)
// documents.
//
// A document is a tree of tags. Each tag has an optional namespace, a
// name, a list of typed values, a set of attributes and child tags:
//
//	# a comment
//	person:name "Akiko" birthday=1976/04/18 {
//	    address "Tokyo" zone="JST"
//	    1 2 3
//	}
//
// Lines which start with a value belong to a tag named "content".
//
// # Usage
//
//	root, err := sdl.ReadFile("people.sdl")
//	for _, c := range root.Children() {
//	    fmt.Println(c.QName(), c.Value())
//	}
//	err = sdl.WriteFile("people.sdl", root, false)
//
//	v, err := sdl.Value(`2005/12/31 12:30-JST`)
//	vs, err := sdl.List(`1 "two" 3.0`)
//	m, err := sdl.Map(`size=5 name="joe"`)
//
// # Packages
//
//   - [github.com/signadot/sdl-format/go-sdl/literal] - Typed values and their text form
//   - [github.com/signadot/sdl-format/go-sdl/token] - Tokenizer
//   - [github.com/signadot/sdl-format/go-sdl/parse] - Parse text to IR
//   - [github.com/signadot/sdl-format/go-sdl/ir] - IR representation
//   - [github.com/signadot/sdl-format/go-sdl/encode] - Encode IR to text
//   - [github.com/signadot/sdl-format/go-sdl/libdiff] - Compare documents
package sdl
