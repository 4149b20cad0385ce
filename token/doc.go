// Package token splits SDL text into tokens, one logical line at a time.
//
// A physical line is extended into a logical line by a trailing backslash,
// by a double quoted string ending in a backslash, and by back quoted
// strings, binary literals and block comments that do not close on the
// line they open. Blank lines and lines starting with # are skipped, as are
// comments introduced by #, // and --.
//
// Literal tokens are decoded as they are scanned, see package literal.
// A token holding a time such as 12:30:00 stays undecided (a
// literal.TimeSpec) since it is a time of day when it follows a date and
// a duration otherwise.
package token
