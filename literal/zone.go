package literal

import (
	"fmt"
	"strconv"
	"strings"
	"time"
	_ "time/tzdata"
)

// abbreviated zone designators mapped to the IANA zone they name.
var zoneAbbrevs = map[string]string{
	"JST":  "Asia/Tokyo",
	"KST":  "Asia/Seoul",
	"IST":  "Asia/Kolkata",
	"HKT":  "Asia/Hong_Kong",
	"PST":  "America/Los_Angeles",
	"PDT":  "America/Los_Angeles",
	"MST":  "America/Denver",
	"MDT":  "America/Denver",
	"CST":  "America/Chicago",
	"CDT":  "America/Chicago",
	"EST":  "America/New_York",
	"EDT":  "America/New_York",
	"AKST": "America/Anchorage",
	"HST":  "Pacific/Honolulu",
	"BST":  "Europe/London",
	"WET":  "Europe/Lisbon",
	"CET":  "Europe/Paris",
	"CEST": "Europe/Paris",
	"EET":  "Europe/Athens",
	"MSK":  "Europe/Moscow",
	"AEST": "Australia/Sydney",
	"NZST": "Pacific/Auckland",
}

// ResolveZone maps a zone designator to a location. Designators are IANA
// names, GMT, UTC or Z, offsets of the form GMT±H[H][:MM] and common
// abbreviations such as JST or PST.
func ResolveZone(name string) (*time.Location, error) {
	up := strings.ToUpper(name)
	switch up {
	case "GMT", "UTC", "Z":
		return time.UTC, nil
	}
	if len(up) > 4 && (strings.HasPrefix(up, "GMT") || strings.HasPrefix(up, "UTC")) {
		if up[3] == '+' || up[3] == '-' {
			return offsetZone(name)
		}
	}
	if iana, ok := zoneAbbrevs[up]; ok {
		return time.LoadLocation(iana)
	}
	if name == "" || name == "Local" {
		return nil, fmt.Errorf("%w: %q", ErrZone, name)
	}
	loc, err := time.LoadLocation(name)
	if err != nil {
		return nil, fmt.Errorf("%w: %q", ErrZone, name)
	}
	return loc, nil
}

func offsetZone(name string) (*time.Location, error) {
	sign := 1
	if name[3] == '-' {
		sign = -1
	}
	hs, ms, found := strings.Cut(name[4:], ":")
	if len(hs) == 0 || len(hs) > 2 || (found && len(ms) != 2) {
		return nil, fmt.Errorf("%w: bad offset %q", ErrZone, name)
	}
	h, err := strconv.Atoi(hs)
	if err != nil || h < 0 || h > 23 {
		return nil, fmt.Errorf("%w: bad offset %q", ErrZone, name)
	}
	m := 0
	if found {
		m, err = strconv.Atoi(ms)
		if err != nil || m < 0 || m > 59 {
			return nil, fmt.Errorf("%w: bad offset %q", ErrZone, name)
		}
	}
	return time.FixedZone(name, sign*(h*3600+m*60)), nil
}

// zoneDesignator names the location of t in a form ResolveZone accepts, or
// returns "" for local time.
func zoneDesignator(t time.Time) string {
	loc := t.Location()
	if loc == time.Local {
		return ""
	}
	if loc == time.UTC {
		return "UTC"
	}
	if name := loc.String(); name != "" {
		if _, err := ResolveZone(name); err == nil {
			return name
		}
	}
	_, off := t.Zone()
	sign := '+'
	if off < 0 {
		sign = '-'
		off = -off
	}
	return fmt.Sprintf("GMT%c%02d:%02d", sign, off/3600, off%3600/60)
}
