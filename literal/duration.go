package literal

import (
	"fmt"
	"math"
	"strconv"
	"strings"
	"time"
)

// Duration is a signed span of time with millisecond resolution.
//
// The day, hour, minute, second and millisecond components are derived from
// the total by truncating division, so a negative Duration has every
// non-zero component negative.
type Duration int64

const (
	Millisecond Duration = 1
	Second               = 1000 * Millisecond
	Minute               = 60 * Second
	Hour                 = 60 * Minute
	Day                  = 24 * Hour
)

// NewDuration builds a Duration from components. Every non-zero component
// must have the same sign.
func NewDuration(days, hours, minutes, seconds, millis int) (Duration, error) {
	comps := [...]int{days, hours, minutes, seconds, millis}
	sign := 0
	for _, c := range comps {
		s := 0
		switch {
		case c < 0:
			s = -1
		case c > 0:
			s = 1
		}
		if s == 0 {
			continue
		}
		if sign != 0 && s != sign {
			return 0, fmt.Errorf("%w: %dd %dh %dm %ds %dms", ErrMixedSign, days, hours, minutes, seconds, millis)
		}
		sign = s
	}
	units := [...]Duration{Day, Hour, Minute, Second, Millisecond}
	var total Duration
	for i, c := range comps {
		u := units[i]
		if int64(c) > math.MaxInt64/int64(u) || int64(c) < math.MinInt64/int64(u) {
			return 0, durationRange(days, hours, minutes, seconds, millis)
		}
		p := Duration(c) * u
		// all non-zero components share a sign.
		if (p > 0 && total > math.MaxInt64-p) || (p < 0 && total < math.MinInt64-p) {
			return 0, durationRange(days, hours, minutes, seconds, millis)
		}
		total += p
	}
	return total, nil
}

func durationRange(days, hours, minutes, seconds, millis int) error {
	return fmt.Errorf("%w: %dd %dh %dm %ds %dms out of range", ErrTime, days, hours, minutes, seconds, millis)
}

// MustDuration is like NewDuration but panics on mixed signs.
func MustDuration(days, hours, minutes, seconds, millis int) Duration {
	d, err := NewDuration(days, hours, minutes, seconds, millis)
	if err != nil {
		panic(err)
	}
	return d
}

// FromStd converts a time.Duration, truncating to milliseconds.
func FromStd(d time.Duration) Duration {
	return Duration(d / time.Millisecond)
}

func (d Duration) Std() time.Duration {
	return time.Duration(d) * time.Millisecond
}

func (d Duration) Days() int         { return int(d / Day) }
func (d Duration) Hours() int        { return int(d % Day / Hour) }
func (d Duration) Minutes() int      { return int(d % Hour / Minute) }
func (d Duration) Seconds() int      { return int(d % Minute / Second) }
func (d Duration) Milliseconds() int { return int(d % Second) }

func (d Duration) TotalHours() int64        { return int64(d / Hour) }
func (d Duration) TotalMinutes() int64      { return int64(d / Minute) }
func (d Duration) TotalSeconds() int64      { return int64(d / Second) }
func (d Duration) TotalMilliseconds() int64 { return int64(d) }

func (d Duration) Negate() Duration        { return -d }
func (d Duration) Add(o Duration) Duration { return d + o }

func (d Duration) String() string {
	var sb strings.Builder
	days := d.Days()
	hours, minutes, seconds := d.Hours(), d.Minutes(), d.Seconds()
	millis := d.Milliseconds()
	if days != 0 {
		sb.WriteString(strconv.Itoa(days))
		sb.WriteString("d:")
	}
	if d < 0 && days == 0 && hours == 0 && minutes == 0 && seconds == 0 {
		sb.WriteString("-00")
	} else {
		sb.WriteString(pad2(hours))
	}
	sb.WriteByte(':')
	sb.WriteString(pad2(minutes))
	sb.WriteByte(':')
	sb.WriteString(pad2(seconds))
	if millis != 0 {
		fmt.Fprintf(&sb, ".%03d", abs(millis))
	}
	return sb.String()
}

func pad2(v int) string {
	if v < 0 {
		return fmt.Sprintf("-%02d", -v)
	}
	return fmt.Sprintf("%02d", v)
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}

func (d Duration) MarshalText() ([]byte, error) {
	return []byte(d.String()), nil
}

func (d *Duration) UnmarshalText(b []byte) error {
	dd, err := ParseDuration(string(b))
	if err != nil {
		return err
	}
	*d = dd
	return nil
}

// ParseDuration parses the strict duration form [Nd:]HH:MM:SS[.mmm].
func ParseDuration(text string) (Duration, error) {
	ts, err := ParseTimeSpec(text)
	if err != nil {
		return 0, err
	}
	if !ts.HasSeconds {
		return 0, fmt.Errorf("%w: %q: duration requires hours, minutes and seconds", ErrTime, text)
	}
	return ts.Duration()
}
