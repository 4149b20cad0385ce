// Package format names the output formats a document can be encoded in.
package format
