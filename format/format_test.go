package format

import (
	"errors"
	"testing"
)

func TestParseFormat(t *testing.T) {
	for _, f := range AllFormats() {
		got, err := ParseFormat(f.String())
		if err != nil {
			t.Fatal(err)
		}
		if got != f {
			t.Errorf("%s parsed as %s", f, got)
		}
		back, ok := FromSuffix(f.Suffix())
		if !ok || back != f {
			t.Errorf("suffix %s gave %s", f.Suffix(), back)
		}
	}
	if _, err := ParseFormat("toml"); !errors.Is(err, ErrBadFormat) {
		t.Errorf("expected bad format, got %v", err)
	}
	var f Format
	if err := f.UnmarshalText([]byte("x")); err != nil || !f.IsXML() {
		t.Errorf("unmarshal x: %v %s", err, f)
	}
}
