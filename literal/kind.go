package literal

import "fmt"

type Kind int

const (
	NullKind Kind = iota
	BoolKind
	Int32Kind
	Int64Kind
	Float32Kind
	Float64Kind
	DecimalKind
	StringKind
	CharKind
	BinaryKind
	DateKind
	DateTimeKind
	DurationKind
)

func (k Kind) String() string {
	s, ok := map[Kind]string{
		NullKind:     "Null",
		BoolKind:     "Bool",
		Int32Kind:    "Int32",
		Int64Kind:    "Int64",
		Float32Kind:  "Float32",
		Float64Kind:  "Float64",
		DecimalKind:  "Decimal",
		StringKind:   "String",
		CharKind:     "Char",
		BinaryKind:   "Binary",
		DateKind:     "Date",
		DateTimeKind: "DateTime",
		DurationKind: "Duration",
	}[k]
	if ok {
		return s
	}
	return "<unknown kind>"
}

func (k Kind) MarshalText() ([]byte, error) {
	return []byte(k.String()), nil
}

func (k *Kind) UnmarshalText(d []byte) error {
	for _, kk := range Kinds() {
		if kk.String() == string(d) {
			*k = kk
			return nil
		}
	}
	return fmt.Errorf("unrecognized kind %q", d)
}

func Kinds() []Kind {
	return []Kind{
		NullKind,
		BoolKind,
		Int32Kind,
		Int64Kind,
		Float32Kind,
		Float64Kind,
		DecimalKind,
		StringKind,
		CharKind,
		BinaryKind,
		DateKind,
		DateTimeKind,
		DurationKind,
	}
}

// IsNumber reports whether values of kind k are written as numeric literals.
func (k Kind) IsNumber() bool {
	switch k {
	case Int32Kind, Int64Kind, Float32Kind, Float64Kind, DecimalKind:
		return true
	default:
		return false
	}
}

// IsTemporal reports whether values of kind k are dates, date-times or
// durations.
func (k Kind) IsTemporal() bool {
	switch k {
	case DateKind, DateTimeKind, DurationKind:
		return true
	default:
		return false
	}
}
