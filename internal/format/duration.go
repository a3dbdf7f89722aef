package format

import (
	"fmt"
	"strings"

	"github.com/spiffcs/dtcalc/internal/duration"
)

// FormatDuration renders a Duration as a space-joined list of its
// non-zero components in descending unit order, e.g. "1 year 6 months
// 10 days". A zero duration renders as "0 days". A uniformly negative
// duration gets a single leading minus sign.
func FormatDuration(d duration.Duration) string {
	if d.IsZero() {
		return "0 days"
	}

	negative := allNonPositive(d)
	if negative {
		d = d.Neg()
	}

	var parts []string
	appendPart := func(count int, unit string) {
		if count == 0 {
			return
		}
		if count == 1 || count == -1 {
			parts = append(parts, fmt.Sprintf("%d %s", count, unit))
			return
		}
		parts = append(parts, fmt.Sprintf("%d %ss", count, unit))
	}

	appendPart(d.Years, "year")
	appendPart(d.Months, "month")
	appendPart(d.Weeks, "week")
	appendPart(d.Days, "day")
	appendPart(d.Hours, "hour")
	appendPart(d.Minutes, "minute")
	appendPart(d.Seconds, "second")

	out := strings.Join(parts, " ")
	if negative {
		out = "-" + out
	}
	return out
}

// allNonPositive reports whether every component is zero or negative,
// which is when the whole duration can carry one leading sign.
func allNonPositive(d duration.Duration) bool {
	return d.Years <= 0 && d.Months <= 0 && d.Weeks <= 0 && d.Days <= 0 &&
		d.Hours <= 0 && d.Minutes <= 0 && d.Seconds <= 0
}
