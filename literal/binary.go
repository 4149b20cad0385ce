package literal

import (
	"encoding/base64"
	"fmt"
	"strings"
	"unicode"
)

// EncodeBinary renders b in the standard base64 alphabet with padding.
func EncodeBinary(b []byte) string {
	return base64.StdEncoding.EncodeToString(b)
}

// DecodeBinary decodes base64 text, ignoring any white space in it.
func DecodeBinary(text string) ([]byte, error) {
	text = strings.Map(func(r rune) rune {
		if unicode.IsSpace(r) {
			return -1
		}
		return r
	}, text)
	b, err := base64.StdEncoding.DecodeString(text)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrBinary, err)
	}
	return b, nil
}
