// Package dateparse recognizes absolute calendar dates and datetimes in
// several formats, plus the relative keywords "today" and "now".
//
// Recognized date forms:
//
//	2024-07-10          ISO
//	July/10/2024        named month, full or abbreviated, 2- or 4-digit year
//	07/10/2024          numeric month/day/year
//	07/10/24            numeric with 2-digit year
//
// Any date form may be followed by a time of day: "15:33", "15:33:07",
// or the 12-hour "3:33 pm" variants.
package dateparse

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/spiffcs/dtcalc/internal/calendar"
)

var (
	// ErrFormat is returned when the input does not match any
	// recognized date or datetime shape.
	ErrFormat = errors.New("unrecognized date format")

	// ErrValue is returned when the shape is recognized but a component
	// is out of range, like day 30 in February.
	ErrValue = errors.New("invalid date value")
)

// An Instant is a civil date, optionally carrying a time of day. There is
// no time zone. A date-only Instant stays date-only through arithmetic
// unless clock units are applied to it.
type Instant struct {
	Year    int
	Month   int
	Day     int
	Hour    int
	Minute  int
	Second  int
	HasTime bool
}

var monthNames = map[string]int{
	"jan": 1, "january": 1,
	"feb": 2, "february": 2,
	"mar": 3, "march": 3,
	"apr": 4, "april": 4,
	"may": 5,
	"jun": 6, "june": 6,
	"jul": 7, "july": 7,
	"aug": 8, "august": 8,
	"sep": 9, "september": 9,
	"oct": 10, "october": 10,
	"nov": 11, "november": 11,
	"dec": 12, "december": 12,
}

// Parse parses s into an Instant. The now argument supplies the current
// time for the relative keywords: "today" resolves to the date of now
// with no time component, "now" to the full datetime at second precision.
func Parse(s string, now time.Time) (Instant, error) {
	s = strings.TrimSpace(s)
	switch strings.ToLower(s) {
	case "today":
		return Instant{Year: now.Year(), Month: int(now.Month()), Day: now.Day()}, nil
	case "now":
		return Instant{
			Year: now.Year(), Month: int(now.Month()), Day: now.Day(),
			Hour: now.Hour(), Minute: now.Minute(), Second: now.Second(),
			HasTime: true,
		}, nil
	}

	fields := strings.Fields(s)
	if len(fields) == 0 {
		return Instant{}, fmt.Errorf("%w: empty input", ErrFormat)
	}

	inst, err := parseDate(fields[0])
	if err != nil {
		return Instant{}, err
	}
	if len(fields) > 1 {
		timePart := strings.Join(fields[1:], " ")
		hour, min, sec, err := parseTime(timePart)
		if err != nil {
			return Instant{}, err
		}
		inst.Hour, inst.Minute, inst.Second = hour, min, sec
		inst.HasTime = true
	}
	return inst, nil
}

// parseDate recognizes the date portion of an input.
func parseDate(s string) (Instant, error) {
	if y, m, d, ok := splitISO(s); ok {
		return makeDate(y, m, d)
	}

	parts := strings.Split(s, "/")
	if len(parts) != 3 {
		return Instant{}, fmt.Errorf("%w: %q", ErrFormat, s)
	}

	year, twoDigit, err := parseYear(parts[2])
	if err != nil {
		return Instant{}, fmt.Errorf("%w: %q", ErrFormat, s)
	}
	if twoDigit {
		year = expandYear(year)
	}
	day, err := strconv.Atoi(parts[1])
	if err != nil || len(parts[1]) > 2 {
		return Instant{}, fmt.Errorf("%w: %q", ErrFormat, s)
	}

	// Month/DD/YYYY with a named month, else MM/DD/YYYY.
	if month, ok := monthNames[strings.ToLower(parts[0])]; ok {
		return makeDate(year, month, day)
	}
	month, err := strconv.Atoi(parts[0])
	if err != nil || len(parts[0]) > 2 {
		return Instant{}, fmt.Errorf("%w: %q", ErrFormat, s)
	}
	return makeDate(year, month, day)
}

// splitISO matches YYYY-MM-DD exactly.
func splitISO(s string) (year, month, day int, ok bool) {
	if len(s) != 10 || s[4] != '-' || s[7] != '-' {
		return 0, 0, 0, false
	}
	y, err1 := strconv.Atoi(s[:4])
	m, err2 := strconv.Atoi(s[5:7])
	d, err3 := strconv.Atoi(s[8:])
	if err1 != nil || err2 != nil || err3 != nil || m < 0 || d < 0 {
		return 0, 0, 0, false
	}
	return y, m, d, true
}

// parseYear accepts a 2- or 4-digit year field.
func parseYear(s string) (year int, twoDigit bool, err error) {
	if len(s) != 2 && len(s) != 4 {
		return 0, false, fmt.Errorf("year must have 2 or 4 digits: %q", s)
	}
	year, err = strconv.Atoi(s)
	if err != nil || year < 0 {
		return 0, false, fmt.Errorf("bad year: %q", s)
	}
	return year, len(s) == 2, nil
}

// expandYear resolves a two-digit year. The pivot is 69, matching the
// convention used by the standard library's time package: 00-68 map to
// 2000-2068 and 69-99 map to 1969-1999.
func expandYear(y int) int {
	if y < 69 {
		return 2000 + y
	}
	return 1900 + y
}

func makeDate(year, month, day int) (Instant, error) {
	if !calendar.ValidDate(year, month, day) {
		return Instant{}, fmt.Errorf("%w: %04d-%02d-%02d", ErrValue, year, month, day)
	}
	return Instant{Year: year, Month: month, Day: day}, nil
}

// parseTime recognizes "HH:MM", "HH:MM:SS", and the 12-hour variants
// with a trailing am/pm marker.
func parseTime(s string) (hour, min, sec int, err error) {
	s = strings.ToLower(strings.TrimSpace(s))

	meridiem := ""
	for _, suffix := range []string{"am", "pm"} {
		if strings.HasSuffix(s, suffix) {
			meridiem = suffix
			s = strings.TrimSpace(strings.TrimSuffix(s, suffix))
			break
		}
	}

	parts := strings.Split(s, ":")
	if len(parts) != 2 && len(parts) != 3 {
		return 0, 0, 0, fmt.Errorf("%w: bad time %q", ErrFormat, s)
	}
	nums := make([]int, len(parts))
	for i, p := range parts {
		if len(p) < 1 || len(p) > 2 {
			return 0, 0, 0, fmt.Errorf("%w: bad time %q", ErrFormat, s)
		}
		n, err := strconv.Atoi(p)
		if err != nil || n < 0 {
			return 0, 0, 0, fmt.Errorf("%w: bad time %q", ErrFormat, s)
		}
		nums[i] = n
	}
	hour, min = nums[0], nums[1]
	if len(nums) == 3 {
		sec = nums[2]
	}

	if meridiem != "" {
		if hour < 1 || hour > 12 {
			return 0, 0, 0, fmt.Errorf("%w: hour %d with %s", ErrValue, hour, meridiem)
		}
		if hour == 12 {
			hour = 0
		}
		if meridiem == "pm" {
			hour += 12
		}
	} else if hour > 23 {
		return 0, 0, 0, fmt.Errorf("%w: hour %d", ErrValue, hour)
	}
	if min > 59 {
		return 0, 0, 0, fmt.Errorf("%w: minute %d", ErrValue, min)
	}
	if sec > 59 {
		return 0, 0, 0, fmt.Errorf("%w: second %d", ErrValue, sec)
	}
	return hour, min, sec, nil
}
