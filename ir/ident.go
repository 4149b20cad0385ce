package ir

import (
	"fmt"
	"unicode"
	"unicode/utf8"
)

// ValidateIdentifier checks that s is a legal tag name, namespace or
// attribute key: a letter or underscore followed by letters, digits,
// underscores and dashes.
func ValidateIdentifier(s string) error {
	if s == "" {
		return ErrEmptyName
	}
	if !utf8.ValidString(s) {
		return fmt.Errorf("%w: %q is not valid UTF-8", ErrIdentifier, s)
	}
	for i, r := range s {
		if i == 0 {
			if r != '_' && !unicode.IsLetter(r) {
				return fmt.Errorf("%w: %q must start with a letter or underscore", ErrIdentifier, s)
			}
			continue
		}
		if r != '_' && r != '-' && !unicode.IsLetter(r) && !unicode.IsDigit(r) {
			return fmt.Errorf("%w: %q contains %q", ErrIdentifier, s, r)
		}
	}
	return nil
}

func validateNamespace(ns string) error {
	if ns == "" {
		return nil
	}
	return ValidateIdentifier(ns)
}
