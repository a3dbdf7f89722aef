// Package format renders evaluation results into their canonical
// display text.
package format

import (
	"fmt"

	"github.com/spiffcs/dtcalc/internal/dateparse"
)

// FormatInstant renders an Instant as "YYYY-MM-DD", with "HH:MM:SS"
// appended when a time of day is present.
func FormatInstant(i dateparse.Instant) string {
	if !i.HasTime {
		return fmt.Sprintf("%04d-%02d-%02d", i.Year, i.Month, i.Day)
	}
	return fmt.Sprintf("%04d-%02d-%02d %02d:%02d:%02d",
		i.Year, i.Month, i.Day, i.Hour, i.Minute, i.Second)
}
