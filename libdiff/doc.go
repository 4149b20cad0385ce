// Package libdiff compares SDL documents.
//
// Documents are compared on their canonical text, so differences that
// the canonical form erases, such as attribute order, layout and
// comments, are not reported.
//
// # Usage
//
//	edits := libdiff.Diff(oldNode, newNode)
//	if libdiff.Changed(edits) {
//	    fmt.Print(libdiff.Format(edits))
//	}
//
// # Related Packages
//
//   - github.com/signadot/sdl-format/go-sdl/ir - IR representation
//   - github.com/signadot/sdl-format/go-sdl/encode - Canonical encoding
package libdiff
