package literal

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"
	"unicode"
	"unicode/utf8"
)

// TimeSpec is a parsed time-like token of the form
// [-][Nd:]HH:MM[:SS[.mmm]][-ZONE]. Whether it denotes a Duration or the
// time of day of a DateTime depends on what precedes it, so the
// tokenizer hands it to the parser undecided.
type TimeSpec struct {
	Text       string
	Days       int
	Hours      int
	Minutes    int
	Seconds    int
	Millis     int
	HasDays    bool
	HasSeconds bool
	Zone       string
	Loc        *time.Location
}

func ParseTimeSpec(text string) (TimeSpec, error) {
	ts := TimeSpec{Text: text}
	body := text
	if i := zoneStart(text); i >= 0 {
		body, ts.Zone = text[:i], text[i+1:]
		loc, err := ResolveZone(ts.Zone)
		if err != nil {
			return ts, err
		}
		ts.Loc = loc
	}
	segs := strings.Split(body, ":")
	if len(segs) > 0 && (strings.HasSuffix(segs[0], "d") || strings.HasSuffix(segs[0], "D")) {
		ts.HasDays = true
		if len(segs) != 4 {
			return ts, fmt.Errorf("%w: %q: days require hours, minutes and seconds", ErrTime, text)
		}
	}
	if len(segs) < 2 || len(segs) > 4 || (len(segs) == 4 && !ts.HasDays) {
		return ts, fmt.Errorf("%w: %q", ErrTime, text)
	}
	var fields []*int
	var texts []string
	if ts.HasDays {
		fields = append(fields, &ts.Days)
		texts = append(texts, segs[0][:len(segs[0])-1])
		segs = segs[1:]
	}
	fields = append(fields, &ts.Hours, &ts.Minutes)
	texts = append(texts, segs[0], segs[1])
	if len(segs) == 3 {
		ts.HasSeconds = true
		secs, ms, hasMS := strings.Cut(segs[2], ".")
		fields = append(fields, &ts.Seconds)
		texts = append(texts, secs)
		if hasMS {
			digits := ms
			if len(digits) == 0 || len(digits) > 3 || strings.ContainsFunc(digits, notDigit) {
				return ts, fmt.Errorf("%w: %q: milliseconds must have 1 to 3 digits", ErrTime, text)
			}
			digits += strings.Repeat("0", 3-len(digits))
			fields = append(fields, &ts.Millis)
			texts = append(texts, digits)
		}
	}
	neg, positive := false, false
	for i, t := range texts {
		n, v, err := component(t)
		if err != nil {
			return ts, fmt.Errorf("%w: %q: %w", ErrTime, text, err)
		}
		if n {
			if positive {
				return ts, fmt.Errorf("%w: %q: %w", ErrTime, text, ErrMixedSign)
			}
			neg = true
		} else if v != 0 && !neg {
			positive = true
		}
		*fields[i] = v
	}
	if neg {
		for _, f := range fields {
			*f = -*f
		}
	}
	return ts, nil
}

func component(t string) (bool, int, error) {
	neg := strings.HasPrefix(t, "-")
	digits := strings.TrimPrefix(t, "-")
	if digits == "" {
		return false, 0, errors.New("empty component")
	}
	for i := 0; i < len(digits); i++ {
		if digits[i] < '0' || digits[i] > '9' {
			return false, 0, fmt.Errorf("bad component %q", t)
		}
	}
	v, err := strconv.Atoi(digits)
	if err != nil {
		return false, 0, err
	}
	return neg, v, nil
}

func notDigit(r rune) bool {
	return r < '0' || r > '9'
}

// zoneStart returns the index of the '-' introducing a zone designator,
// that is a '-' after the first byte followed by a letter, or -1.
func zoneStart(text string) int {
	for i := 1; i < len(text)-1; i++ {
		if text[i] != '-' {
			continue
		}
		r, _ := utf8.DecodeRuneInString(text[i+1:])
		if unicode.IsLetter(r) {
			return i
		}
	}
	return -1
}

// Duration interprets ts as a time span.
func (ts TimeSpec) Duration() (Duration, error) {
	if ts.Zone != "" {
		return 0, fmt.Errorf("%w: %q: a time span cannot carry a time zone", ErrZone, ts.Text)
	}
	return NewDuration(ts.Days, ts.Hours, ts.Minutes, ts.Seconds, ts.Millis)
}

// On interprets ts as a time of day on the given Date, producing a
// DateTime. Without a zone the result is in local time.
func (ts TimeSpec) On(date Value) (Value, error) {
	if date.kind != DateKind {
		return Value{}, fmt.Errorf("%w: %s is not a date", ErrTime, date.kind)
	}
	if ts.Days != 0 || ts.HasDays {
		return Value{}, fmt.Errorf("%w: %q: a time following a date cannot have a day component", ErrTime, ts.Text)
	}
	if ts.Hours < 0 || ts.Hours > 23 ||
		ts.Minutes < 0 || ts.Minutes > 59 ||
		ts.Seconds < 0 || ts.Seconds > 59 ||
		ts.Millis < 0 {
		return Value{}, fmt.Errorf("%w: %q: time of day out of range", ErrTime, ts.Text)
	}
	loc := ts.Loc
	if loc == nil {
		loc = time.Local
	}
	y, m, d := date.t.Date()
	t := time.Date(y, m, d, ts.Hours, ts.Minutes, ts.Seconds, ts.Millis*int(time.Millisecond), loc)
	return DateTime(t, ts.Zone), nil
}
