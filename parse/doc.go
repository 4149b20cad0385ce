// Package parse builds IR nodes from SDL text.
//
// A document is a sequence of statements, one per logical line:
//
//	[namespace:]name value* ([namespace:]key=value)* [{
//	    child statements
//	}]
//
// A statement starting with a value belongs to a node named "content".
// A date followed by a time of day is read as one date-time; a time on
// its own is a duration.
//
// Parsing stops at the first error, which is returned as an [*Error]
// carrying the 1-based line and position. Errors can be classified with
// errors.Is against [ErrLexical], [ErrGrammar], [ErrLiteral] and
// [ErrIdentifier].
//
// # Usage
//
//	nodes, err := parse.ParseFile("config.sdl")
//
//	// record statement positions
//	pos := map[*ir.Node]*token.Pos{}
//	nodes, err = parse.Parse(data, parse.ParsePositions(pos))
//
// # Related Packages
//
//   - github.com/signadot/sdl-format/go-sdl/token - Tokenizer
//   - github.com/signadot/sdl-format/go-sdl/ir - IR representation
//   - github.com/signadot/sdl-format/go-sdl/encode - Encode IR to text
package parse
