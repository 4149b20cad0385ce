package literal

import (
	"fmt"
	"strconv"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/shopspring/decimal"
)

// Parse reads a single literal from its text, choosing the variant from the
// leading character and shape of the text. A date followed by a space and
// a time of day parses as a DateTime; a lone time parses as a Duration.
func Parse(text string) (Value, error) {
	if text == "" {
		return Value{}, fmt.Errorf("%w: empty text", ErrLiteral)
	}
	switch text[0] {
	case '"':
		end := closingQuote(text)
		if end != len(text)-1 {
			return Value{}, fmt.Errorf("%w: %s is not terminated by a quote", ErrString, text)
		}
		s, err := Unescape(text[1:end])
		if err != nil {
			return Value{}, err
		}
		return String(s), nil
	case '`':
		if len(text) < 2 || text[len(text)-1] != '`' {
			return Value{}, fmt.Errorf("%w: %s is not terminated by a back quote", ErrString, text)
		}
		return String(text[1 : len(text)-1]), nil
	case '\'':
		return ParseChar(text)
	case '[':
		if text[len(text)-1] != ']' {
			return Value{}, fmt.Errorf("%w: %s is not terminated by ]", ErrBinary, text)
		}
		b, err := DecodeBinary(text[1 : len(text)-1])
		if err != nil {
			return Value{}, err
		}
		return Binary(b), nil
	}
	if v, ok := Keyword(text); ok {
		return v, nil
	}
	if date, tm, ok := strings.Cut(text, " "); ok && strings.Contains(date, "/") {
		return ParseDateTime(date, strings.TrimSpace(tm))
	}
	switch {
	case strings.Contains(text, "/") && !strings.Contains(text, ":"):
		return ParseDate(text)
	case strings.Contains(text, ":"):
		ts, err := ParseTimeSpec(text)
		if err != nil {
			return Value{}, err
		}
		d, err := ts.Duration()
		if err != nil {
			return Value{}, err
		}
		return FromDuration(d), nil
	case text[0] == '-' || text[0] == '.' || (text[0] >= '0' && text[0] <= '9'):
		return ParseNumber(text)
	}
	return Value{}, fmt.Errorf("%w: unrecognized literal %q", ErrLiteral, text)
}

// closingQuote returns the index of the unescaped quote ending the string
// that opens text, or -1.
func closingQuote(text string) int {
	for i := 1; i < len(text); i++ {
		switch text[i] {
		case '\\':
			i++
		case '"':
			return i
		}
	}
	return -1
}

// Keyword returns the value of the keywords true, on, false, off and null.
func Keyword(text string) (Value, bool) {
	switch text {
	case "true", "on":
		return Bool(true), true
	case "false", "off":
		return Bool(false), true
	case "null":
		return Null(), true
	}
	return Value{}, false
}

// ParseChar reads a quoted character literal such as 'a' or '\n'.
func ParseChar(text string) (Value, error) {
	if len(text) < 3 || text[0] != '\'' || text[len(text)-1] != '\'' {
		return Value{}, fmt.Errorf("%w: %s", ErrChar, text)
	}
	s, err := Unescape(text[1 : len(text)-1])
	if err != nil {
		return Value{}, fmt.Errorf("%w: %w", ErrChar, err)
	}
	if utf8.RuneCountInString(s) != 1 {
		return Value{}, fmt.Errorf("%w: %s must contain exactly one character", ErrChar, text)
	}
	r, _ := utf8.DecodeRuneInString(s)
	return Char(r), nil
}

// ParseNumber reads a number with an optional suffix: BD for Decimal, L for
// Int64, F for Float32 and D for Float64. Without a suffix the number is an
// Int32, or a Float64 if it has a decimal point. Suffixes are case
// insensitive.
func ParseNumber(text string) (Value, error) {
	i, digits, dot := 0, 0, false
	if strings.HasPrefix(text, "-") {
		i++
	}
scan:
	for ; i < len(text); i++ {
		switch c := text[i]; {
		case c >= '0' && c <= '9':
			digits++
		case c == '.':
			if dot {
				return Value{}, fmt.Errorf("%w: %q has a second decimal point", ErrNumber, text)
			}
			dot = true
		default:
			break scan
		}
	}
	num, suffix := text[:i], text[i:]
	if digits == 0 {
		return Value{}, fmt.Errorf("%w: %q", ErrNumber, text)
	}
	if strings.HasSuffix(num, ".") {
		return Value{}, fmt.Errorf("%w: %q ends with a decimal point", ErrNumber, text)
	}
	switch strings.ToUpper(suffix) {
	case "":
		if dot {
			return parseFloat(text, num, 64)
		}
		n, err := strconv.ParseInt(num, 10, 32)
		if err != nil {
			return Value{}, fmt.Errorf("%w: %q: %w", ErrNumber, text, err)
		}
		return Int32(int32(n)), nil
	case "L":
		if dot {
			return Value{}, fmt.Errorf("%w: %q: a long cannot have a decimal point", ErrNumber, text)
		}
		n, err := strconv.ParseInt(num, 10, 64)
		if err != nil {
			return Value{}, fmt.Errorf("%w: %q: %w", ErrNumber, text, err)
		}
		return Int64(n), nil
	case "F":
		return parseFloat(text, num, 32)
	case "D":
		return parseFloat(text, num, 64)
	case "BD":
		d, err := decimal.NewFromString(num)
		if err != nil {
			return Value{}, fmt.Errorf("%w: %q: %w", ErrNumber, text, err)
		}
		return Decimal(d), nil
	}
	return Value{}, fmt.Errorf("%w: %q has an unrecognized suffix %q", ErrNumber, text, suffix)
}

func parseFloat(text, num string, bits int) (Value, error) {
	f, err := strconv.ParseFloat(num, bits)
	if err != nil {
		return Value{}, fmt.Errorf("%w: %q: %w", ErrNumber, text, err)
	}
	if bits == 32 {
		return Float32(float32(f)), nil
	}
	return Float64(f), nil
}

// ParseDate reads a date of the form Y/M/D.
func ParseDate(text string) (Value, error) {
	parts := strings.Split(text, "/")
	if len(parts) != 3 {
		return Value{}, fmt.Errorf("%w: %q must have the form yyyy/mm/dd", ErrDate, text)
	}
	var ymd [3]int
	for i, p := range parts {
		neg, n, err := component(p)
		if err != nil || neg {
			return Value{}, fmt.Errorf("%w: %q", ErrDate, text)
		}
		ymd[i] = n
	}
	year, month, day := ymd[0], ymd[1], ymd[2]
	if year > 9999 {
		return Value{}, fmt.Errorf("%w: %q: year out of range", ErrDate, text)
	}
	if month < 1 || month > 12 {
		return Value{}, fmt.Errorf("%w: %q: month out of range", ErrDate, text)
	}
	if day < 1 || day > daysIn(year, time.Month(month)) {
		return Value{}, fmt.Errorf("%w: %q: day out of range", ErrDate, text)
	}
	return Date(year, time.Month(month), day), nil
}

func daysIn(year int, month time.Month) int {
	return time.Date(year, month+1, 0, 0, 0, 0, 0, time.UTC).Day()
}

// ParseDateTime reads a date and a time of day given as separate texts.
func ParseDateTime(date, tm string) (Value, error) {
	d, err := ParseDate(date)
	if err != nil {
		return Value{}, err
	}
	ts, err := ParseTimeSpec(tm)
	if err != nil {
		return Value{}, err
	}
	return ts.On(d)
}
