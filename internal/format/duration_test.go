package format

import (
	"testing"

	"github.com/spiffcs/dtcalc/internal/duration"
)

func TestFormatDuration(t *testing.T) {
	tests := []struct {
		name string
		in   duration.Duration
		want string
	}{
		{"zero", duration.Duration{}, "0 days"},
		{"single day", duration.Duration{Days: 1}, "1 day"},
		{"plural days", duration.Duration{Days: 366}, "366 days"},
		{"descending order", duration.Duration{Years: 1, Months: 6, Days: 10}, "1 year 6 months 10 days"},
		{"weeks rendered when set", duration.Duration{Weeks: 2, Days: 3}, "2 weeks 3 days"},
		{"clock components", duration.Duration{Hours: 3, Minutes: 15}, "3 hours 15 minutes"},
		{"zero components omitted", duration.Duration{Days: 2, Seconds: 30}, "2 days 30 seconds"},
		{"singular each", duration.Duration{Years: 1, Months: 1, Days: 1, Hours: 1, Minutes: 1, Seconds: 1},
			"1 year 1 month 1 day 1 hour 1 minute 1 second"},
		{"negative", duration.Duration{Days: -366}, "-366 days"},
		{"negative mixed units", duration.Duration{Days: -1, Hours: -5}, "-1 day 5 hours"},
		{"mixed signs keep per-component signs", duration.Duration{Months: 1, Days: -3}, "1 month -3 days"},
		{"unnormalized hours", duration.Duration{Hours: 25}, "25 hours"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := FormatDuration(tt.in); got != tt.want {
				t.Errorf("FormatDuration(%+v) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}
