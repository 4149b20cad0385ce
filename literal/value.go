package literal

import (
	"bytes"
	"fmt"
	"math"
	"time"
	"unicode/utf8"

	"github.com/shopspring/decimal"
)

// Value is an immutable literal. The zero Value is Null.
type Value struct {
	kind Kind
	b    bool
	i    int64
	f    float64
	dec  decimal.Decimal
	s    string
	bin  []byte
	t    time.Time
	d    Duration
}

func Null() Value                   { return Value{} }
func Bool(b bool) Value             { return Value{kind: BoolKind, b: b} }
func Int32(i int32) Value           { return Value{kind: Int32Kind, i: int64(i)} }
func Int64(i int64) Value           { return Value{kind: Int64Kind, i: i} }
func Float32(f float32) Value       { return Value{kind: Float32Kind, f: float64(f)} }
func Float64(f float64) Value       { return Value{kind: Float64Kind, f: f} }
func String(s string) Value         { return Value{kind: StringKind, s: s} }
func Char(r rune) Value             { return Value{kind: CharKind, i: int64(r)} }
func FromDuration(d Duration) Value { return Value{kind: DurationKind, d: d} }

func Decimal(d decimal.Decimal) Value {
	return Value{kind: DecimalKind, dec: d}
}

// Binary returns a Binary value holding a copy of b.
func Binary(b []byte) Value {
	return Value{kind: BinaryKind, bin: bytes.Clone(b)}
}

// Date returns a calendar day. Out of range months and days are
// normalized the way time.Date normalizes them.
func Date(year int, month time.Month, day int) Value {
	return Value{kind: DateKind, t: time.Date(year, month, day, 0, 0, 0, 0, time.UTC)}
}

// DateTime returns an instant. zone is the designator written after the
// time of day; when empty the instant is written in local time with no
// designator.
func DateTime(t time.Time, zone string) Value {
	if zone == "" {
		t = t.In(time.Local)
	} else if loc, err := ResolveZone(zone); err == nil {
		t = t.In(loc)
	}
	return Value{kind: DateTimeKind, t: t.Truncate(time.Millisecond), s: zone}
}

func (v Value) Kind() Kind   { return v.kind }
func (v Value) IsNull() bool { return v.kind == NullKind }

func (v Value) Bool() bool { return v.b }

// Int returns the value of an Int32 or Int64.
func (v Value) Int() int64 { return v.i }

// Float returns the value of a Float32 or Float64.
func (v Value) Float() float64 { return v.f }

func (v Value) Decimal() decimal.Decimal { return v.dec }

// Str returns the contents of a String.
func (v Value) Str() string { return v.s }

func (v Value) Char() rune { return rune(v.i) }

// Bytes returns a copy of the contents of a Binary.
func (v Value) Bytes() []byte { return bytes.Clone(v.bin) }

// Time returns the instant of a DateTime or midnight UTC of a Date.
func (v Value) Time() time.Time { return v.t }

// Zone returns the zone designator of a DateTime, empty for local time.
func (v Value) Zone() string {
	if v.kind != DateTimeKind {
		return ""
	}
	return v.s
}

func (v Value) Duration() Duration { return v.d }

// Any returns the natural Go representation of v.
func (v Value) Any() any {
	switch v.kind {
	case BoolKind:
		return v.b
	case Int32Kind:
		return int32(v.i)
	case Int64Kind:
		return v.i
	case Float32Kind:
		return float32(v.f)
	case Float64Kind:
		return v.f
	case DecimalKind:
		return v.dec
	case StringKind:
		return v.s
	case CharKind:
		return rune(v.i)
	case BinaryKind:
		return v.Bytes()
	case DateKind, DateTimeKind:
		return v.t
	case DurationKind:
		return v.d
	default:
		return nil
	}
}

// String returns the literal text of v, as written in a document.
func (v Value) String() string {
	return Format(v, true)
}

// Equal reports whether a and b have the same kind and literal text.
func Equal(a, b Value) bool {
	if a.kind != b.kind {
		return false
	}
	switch a.kind {
	case NullKind:
		return true
	case BoolKind:
		return a.b == b.b
	case Int32Kind, Int64Kind, CharKind:
		return a.i == b.i
	case StringKind:
		return a.s == b.s
	case BinaryKind:
		return bytes.Equal(a.bin, b.bin)
	case DurationKind:
		return a.d == b.d
	}
	return Format(a, true) == Format(b, true)
}

func (v Value) Equal(o Value) bool { return Equal(v, o) }

// Validate reports an error if v cannot be written as a literal.
func Validate(v Value) error {
	switch v.kind {
	case Float32Kind, Float64Kind:
		if math.IsNaN(v.f) || math.IsInf(v.f, 0) {
			return fmt.Errorf("%w: %s %v has no literal form", ErrInvalid, v.kind, v.f)
		}
	case CharKind:
		if !utf8.ValidRune(rune(v.i)) {
			return fmt.Errorf("%w: char %U is not a Unicode scalar value", ErrInvalid, v.i)
		}
	case StringKind:
		if !utf8.ValidString(v.s) {
			return fmt.Errorf("%w: string is not valid UTF-8", ErrInvalid)
		}
	case DateKind, DateTimeKind:
		if y := v.t.Year(); y < 0 || y > 9999 {
			return fmt.Errorf("%w: year %d out of range", ErrInvalid, y)
		}
		if v.kind == DateTimeKind && v.s != "" {
			if _, err := ResolveZone(v.s); err != nil {
				return fmt.Errorf("%w: %w", ErrInvalid, err)
			}
		}
	case NullKind, BoolKind, Int32Kind, Int64Kind, DecimalKind, BinaryKind, DurationKind:
	default:
		return fmt.Errorf("%w: unknown kind %d", ErrInvalid, v.kind)
	}
	return nil
}

func (v Value) MarshalText() ([]byte, error) {
	if err := Validate(v); err != nil {
		return nil, err
	}
	return []byte(Format(v, true)), nil
}

func (v *Value) UnmarshalText(d []byte) error {
	pv, err := Parse(string(d))
	if err != nil {
		return err
	}
	*v = pv
	return nil
}
