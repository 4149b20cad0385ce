package literal

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

// Format renders v as literal text. With quote false, strings and
// characters are written bare, without quotes or escapes.
func Format(v Value, quote bool) string {
	switch v.kind {
	case NullKind:
		return "null"
	case BoolKind:
		return strconv.FormatBool(v.b)
	case Int32Kind:
		return strconv.FormatInt(v.i, 10)
	case Int64Kind:
		return strconv.FormatInt(v.i, 10) + "L"
	case Float32Kind:
		return formatFloat(v.f, 32) + "F"
	case Float64Kind:
		return formatFloat(v.f, 64)
	case DecimalKind:
		return v.dec.String() + "BD"
	case StringKind:
		if !quote {
			return v.s
		}
		return `"` + Escape(v.s, '"') + `"`
	case CharKind:
		if !quote {
			return string(rune(v.i))
		}
		return "'" + Escape(string(rune(v.i)), '\'') + "'"
	case BinaryKind:
		return "[" + EncodeBinary(v.bin) + "]"
	case DateKind:
		return v.t.Format("2006/01/02")
	case DateTimeKind:
		return formatDateTime(v)
	case DurationKind:
		return v.d.String()
	default:
		return fmt.Sprintf("<unknown kind %d>", v.kind)
	}
}

func formatFloat(f float64, bits int) string {
	s := strconv.FormatFloat(f, 'f', -1, bits)
	if math.IsNaN(f) || math.IsInf(f, 0) || strings.Contains(s, ".") {
		return s
	}
	return s + ".0"
}

func formatDateTime(v Value) string {
	var sb strings.Builder
	sb.WriteString(v.t.Format("2006/01/02 15:04:05"))
	if ms := v.t.Nanosecond() / 1e6; ms != 0 {
		fmt.Fprintf(&sb, ".%03d", ms)
	}
	if v.s != "" {
		sb.WriteByte('-')
		sb.WriteString(v.s)
	}
	return sb.String()
}

// Escape escapes backslash, tab, carriage return, line feed and the quote
// character q.
func Escape(s string, q rune) string {
	var sb strings.Builder
	for _, r := range s {
		switch r {
		case '\\':
			sb.WriteString(`\\`)
		case '\t':
			sb.WriteString(`\t`)
		case '\r':
			sb.WriteString(`\r`)
		case '\n':
			sb.WriteString(`\n`)
		case q:
			sb.WriteByte('\\')
			sb.WriteRune(r)
		default:
			sb.WriteRune(r)
		}
	}
	return sb.String()
}

// Unescape resolves the escapes \\ \" \' \t \r \n in s.
func Unescape(s string) (string, error) {
	if !strings.Contains(s, `\`) {
		return s, nil
	}
	var sb strings.Builder
	rs := []rune(s)
	for i := 0; i < len(rs); i++ {
		r := rs[i]
		if r != '\\' {
			sb.WriteRune(r)
			continue
		}
		i++
		if i == len(rs) {
			return "", fmt.Errorf("%w: escape at end of input", ErrString)
		}
		switch rs[i] {
		case '\\', '"', '\'':
			sb.WriteRune(rs[i])
		case 't':
			sb.WriteByte('\t')
		case 'r':
			sb.WriteByte('\r')
		case 'n':
			sb.WriteByte('\n')
		default:
			return "", fmt.Errorf("%w: illegal escape \\%c", ErrString, rs[i])
		}
	}
	return sb.String(), nil
}
