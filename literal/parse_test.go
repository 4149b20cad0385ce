package literal

import (
	"errors"
	"math"
	"testing"
	"time"

	"github.com/shopspring/decimal"
)

func TestParseNumber(t *testing.T) {
	tests := []struct {
		in       string
		expected Value
		err      bool
	}{
		{in: "5", expected: Int32(5)},
		{in: "-5", expected: Int32(-5)},
		{in: "5L", expected: Int64(5)},
		{in: "5l", expected: Int64(5)},
		{in: "3904857398753453453L", expected: Int64(3904857398753453453)},
		{in: "5.0", expected: Float64(5)},
		{in: "-.5", expected: Float64(-0.5)},
		{in: "5F", expected: Float32(5)},
		{in: "5D", expected: Float64(5)},
		{in: "5.5BD", expected: Decimal(decimal.RequireFromString("5.5"))},
		{in: "5.5bd", expected: Decimal(decimal.RequireFromString("5.5"))},
		{in: "5.5L", err: true},
		{in: "5.", err: true},
		{in: "1.2.3", err: true},
		{in: "5x", err: true},
		{in: "-", err: true},
		{in: "2147483648", err: true},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			v, err := ParseNumber(tt.in)
			if tt.err {
				if !errors.Is(err, ErrNumber) {
					t.Fatalf("expected number error, got %v (%s)", err, v)
				}
				return
			}
			if err != nil {
				t.Fatal(err)
			}
			if !Equal(v, tt.expected) {
				t.Errorf("got %s %s, want %s %s", v.Kind(), v, tt.expected.Kind(), tt.expected)
			}
		})
	}
}

func TestParse(t *testing.T) {
	tests := []struct {
		in       string
		kind     Kind
		expected string
	}{
		{`"hello"`, StringKind, `"hello"`},
		{`"a\"b\\c\td"`, StringKind, `"a\"b\\c\td"`},
		{"`raw \\n`", StringKind, `"raw \\n"`},
		{`'x'`, CharKind, `'x'`},
		{`'\n'`, CharKind, `'\n'`},
		{`'\''`, CharKind, `'\''`},
		{"on", BoolKind, "true"},
		{"off", BoolKind, "false"},
		{"null", NullKind, "null"},
		{"[aGk=]", BinaryKind, "[aGk=]"},
		{"[aGVs\n   bG8=]", BinaryKind, "[aGVsbG8=]"},
		{"582/09/16", DateKind, "0582/09/16"},
		{"1882/5/2", DateKind, "1882/05/02"},
		{"2004/02/29", DateKind, "2004/02/29"},
		{"1980/12/5 12:30", DateTimeKind, "1980/12/05 12:30:00"},
		{"2005/12/31 12:30:23.212-JST", DateTimeKind, "2005/12/31 12:30:23.212-JST"},
		{"2005/12/31 12:30-GMT+09:00", DateTimeKind, "2005/12/31 12:30:00-GMT+09:00"},
		{"2005/12/31 12:30-America/New_York", DateTimeKind, "2005/12/31 12:30:00-America/New_York"},
		{"12:30:00", DurationKind, "12:30:00"},
		{"-12:30", DurationKind, "-12:-30:00"},
		{"234535.3453453453454345345341242343BD", DecimalKind, "234535.3453453453454345345341242343BD"},
		{"1.5F", Float32Kind, "1.5F"},
		{"2", Int32Kind, "2"},
		{"2.0", Float64Kind, "2.0"},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			v, err := Parse(tt.in)
			if err != nil {
				t.Fatal(err)
			}
			if v.Kind() != tt.kind {
				t.Errorf("kind %s, want %s", v.Kind(), tt.kind)
			}
			if got := v.String(); got != tt.expected {
				t.Errorf("got %s, want %s", got, tt.expected)
			}
			back, err := Parse(v.String())
			if err != nil {
				t.Fatal(err)
			}
			if !Equal(back, v) {
				t.Errorf("round trip %s gave %s", v, back)
			}
		})
	}
}

func TestParseErrors(t *testing.T) {
	tests := []struct {
		in  string
		err error
	}{
		{`"hello`, ErrString},
		{`"a\"`, ErrString},
		{`"a\q"`, ErrString},
		{"`raw", ErrString},
		{"'ab'", ErrChar},
		{"''", ErrChar},
		{"[aGk]", ErrBinary},
		{"[aGk=", ErrBinary},
		{"2005/13/01", ErrDate},
		{"2005/02/29", ErrDate},
		{"2005/1", ErrDate},
		{"12:30-JST", ErrZone},
		{"1980/12/5 1d:12:30:00", ErrTime},
		{"1980/12/5 25:00", ErrTime},
		{"abc", ErrLiteral},
		{"", ErrLiteral},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			v, err := Parse(tt.in)
			if !errors.Is(err, tt.err) {
				t.Errorf("expected %v, got %v (%s)", tt.err, err, v)
			}
			if !errors.Is(err, ErrLiteral) {
				t.Errorf("%v does not wrap ErrLiteral", err)
			}
		})
	}
}

func TestBinary(t *testing.T) {
	v, err := Parse("[aGVsbG8=]")
	if err != nil {
		t.Fatal(err)
	}
	if string(v.Bytes()) != "hello" {
		t.Errorf("got %q", v.Bytes())
	}
	b := []byte("hi")
	v = Binary(b)
	b[0] = 'x'
	if string(v.Bytes()) != "hi" {
		t.Errorf("binary value shares its input")
	}
}

func TestCoerce(t *testing.T) {
	tokyo, err := time.LoadLocation("Asia/Tokyo")
	if err != nil {
		t.Fatal(err)
	}
	tests := []struct {
		name     string
		in       any
		kind     Kind
		expected string
	}{
		{"nil", nil, NullKind, "null"},
		{"bool", true, BoolKind, "true"},
		{"int", 5, Int32Kind, "5"},
		{"big int", 1 << 40, Int64Kind, "1099511627776L"},
		{"int64", int64(5), Int64Kind, "5L"},
		{"uint8", uint8(7), Int32Kind, "7"},
		{"uint32", uint32(7), Int64Kind, "7L"},
		{"float32", float32(1.25), Float32Kind, "1.25F"},
		{"float64", 2.0, Float64Kind, "2.0"},
		{"decimal", decimal.RequireFromString("1.10"), DecimalKind, "1.1BD"},
		{"string", "x\ny", StringKind, `"x\ny"`},
		{"bytes", []byte("hi"), BinaryKind, "[aGk=]"},
		{"date", time.Date(2000, 1, 2, 0, 0, 0, 0, time.UTC), DateKind, "2000/01/02"},
		{"datetime utc", time.Date(2000, 1, 2, 3, 4, 5, 0, time.UTC), DateTimeKind, "2000/01/02 03:04:05-UTC"},
		{"datetime zone", time.Date(2000, 1, 2, 3, 4, 5, 6e6, tokyo), DateTimeKind, "2000/01/02 03:04:05.006-Asia/Tokyo"},
		{"datetime offset", time.Date(2000, 1, 2, 3, 4, 5, 0, time.FixedZone("", 9*3600)), DateTimeKind, "2000/01/02 03:04:05-GMT+09:00"},
		{"time.Duration", 3 * time.Second, DurationKind, "00:00:03"},
		{"duration", MustDuration(1, 0, 0, 0, 0), DurationKind, "1d:00:00:00"},
		{"value", Char('z'), CharKind, "'z'"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			v, err := Coerce(tt.in)
			if err != nil {
				t.Fatal(err)
			}
			if v.Kind() != tt.kind {
				t.Errorf("kind %s, want %s", v.Kind(), tt.kind)
			}
			if got := v.String(); got != tt.expected {
				t.Errorf("got %s, want %s", got, tt.expected)
			}
		})
	}
}

func TestCoerceErrors(t *testing.T) {
	if _, err := Coerce(struct{}{}); !errors.Is(err, ErrCoerce) {
		t.Errorf("expected coerce error, got %v", err)
	}
	if _, err := Coerce(uint64(math.MaxUint64)); !errors.Is(err, ErrCoerce) {
		t.Errorf("expected coerce error, got %v", err)
	}
	if _, err := Coerce(math.NaN()); !errors.Is(err, ErrInvalid) {
		t.Errorf("expected invalid error, got %v", err)
	}
	if _, err := Coerce(Char(0xD800)); !errors.Is(err, ErrInvalid) {
		t.Errorf("expected invalid error, got %v", err)
	}
}

func TestEqual(t *testing.T) {
	if Equal(Int32(5), Int64(5)) {
		t.Errorf("different kinds compare equal")
	}
	if !Equal(Decimal(decimal.RequireFromString("1.50")), Decimal(decimal.RequireFromString("1.5"))) {
		t.Errorf("equal decimals differ")
	}
	if !Equal(FromDuration(Minute), FromDuration(60*Second)) {
		t.Errorf("equal durations differ")
	}
	var zero Value
	if !zero.IsNull() {
		t.Errorf("zero value is not null")
	}
}
