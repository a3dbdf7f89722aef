// Package duration provides parsing for compound human-readable duration
// strings like "1y6mo10d" or "2 weeks 3 days".
package duration

import (
	"errors"
	"fmt"
	"regexp"
	"strconv"
	"strings"
)

var (
	// ErrEmpty is returned when the input contains no count/unit pairs
	// at all, meaning it is not a duration.
	ErrEmpty = errors.New("empty duration")

	// ErrInvalidToken is returned when the input contains count/unit
	// pairs but also text that is not part of any recognized pair, or a
	// unit that is not supported.
	ErrInvalidToken = errors.New("invalid duration token")
)

// A Duration is a signed quantity with independent calendar and clock
// components. Years, months, weeks, and days are calendar units: applying
// them to a date follows month and year lengths. Hours, minutes, and
// seconds are fixed-length clock units. The two groups are never
// normalized into each other.
type Duration struct {
	Years   int
	Months  int
	Weeks   int
	Days    int
	Hours   int
	Minutes int
	Seconds int
}

// IsZero reports whether all components are zero.
func (d Duration) IsZero() bool {
	return d == Duration{}
}

// HasClock reports whether any clock component is non-zero.
func (d Duration) HasClock() bool {
	return d.Hours != 0 || d.Minutes != 0 || d.Seconds != 0
}

// Add returns the component-wise sum of d and o. No carrying happens
// across the calendar/clock boundary: 25 hours stays 25 hours.
func (d Duration) Add(o Duration) Duration {
	return Duration{
		Years:   d.Years + o.Years,
		Months:  d.Months + o.Months,
		Weeks:   d.Weeks + o.Weeks,
		Days:    d.Days + o.Days,
		Hours:   d.Hours + o.Hours,
		Minutes: d.Minutes + o.Minutes,
		Seconds: d.Seconds + o.Seconds,
	}
}

// Neg returns d with every component negated.
func (d Duration) Neg() Duration {
	return Duration{
		Years:   -d.Years,
		Months:  -d.Months,
		Weeks:   -d.Weeks,
		Days:    -d.Days,
		Hours:   -d.Hours,
		Minutes: -d.Minutes,
		Seconds: -d.Seconds,
	}
}

// pairRe matches one count/unit pair, e.g. "3d" or "3 days".
var pairRe = regexp.MustCompile(`(\d+)\s*([a-zA-Z]+)`)

// Parse parses a compound duration like "1y6mo10d", "2 weeks 3 days", or
// "10d5h". Pairs may repeat; repeated units accumulate. Weeks are folded
// into days (one week is seven days). It returns ErrEmpty when no pairs
// are present and ErrInvalidToken when unmatched text remains or a unit
// is unknown.
func Parse(s string) (Duration, error) {
	matches := pairRe.FindAllStringSubmatchIndex(s, -1)
	if len(matches) == 0 {
		return Duration{}, fmt.Errorf("%w: %q", ErrEmpty, strings.TrimSpace(s))
	}

	var d Duration
	pos := 0
	for _, m := range matches {
		if gap := strings.TrimSpace(s[pos:m[0]]); gap != "" {
			return Duration{}, fmt.Errorf("%w: unexpected %q", ErrInvalidToken, gap)
		}
		pos = m[1]

		count, err := strconv.Atoi(s[m[2]:m[3]])
		if err != nil {
			return Duration{}, fmt.Errorf("%w: %q", ErrInvalidToken, s[m[2]:m[3]])
		}
		unit := strings.ToLower(s[m[4]:m[5]])
		if err := d.accumulate(unit, count); err != nil {
			return Duration{}, err
		}
	}
	if rest := strings.TrimSpace(s[pos:]); rest != "" {
		return Duration{}, fmt.Errorf("%w: unexpected %q", ErrInvalidToken, rest)
	}
	return d, nil
}

// accumulate adds count of the named unit to d. Month spellings are
// distinct from minute spellings ("mo" vs "m"), so an exact match on the
// whole unit token is unambiguous.
func (d *Duration) accumulate(unit string, count int) error {
	switch unit {
	case "years", "year", "yrs", "yr", "y":
		d.Years += count
	case "months", "month", "mo":
		d.Months += count
	case "weeks", "week", "wks", "wk", "w":
		// Weeks expand to days up front so that mixed week/day input
		// sums into a single day count.
		d.Days += 7 * count
	case "days", "day", "d":
		d.Days += count
	case "hours", "hour", "hrs", "hr", "h":
		d.Hours += count
	case "minutes", "minute", "mins", "min", "m":
		d.Minutes += count
	case "seconds", "second", "secs", "sec", "s":
		d.Seconds += count
	default:
		return fmt.Errorf("%w: unsupported unit %q", ErrInvalidToken, unit)
	}
	return nil
}
