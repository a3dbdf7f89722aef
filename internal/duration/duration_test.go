package duration

import (
	"errors"
	"testing"
)

func TestParse(t *testing.T) {
	tests := []struct {
		input string
		want  Duration
	}{
		{"1d", Duration{Days: 1}},
		{"3 days", Duration{Days: 3}},
		{"1y6mo10d", Duration{Years: 1, Months: 6, Days: 10}},
		{"2 weeks 3 days", Duration{Days: 17}},
		{"2weeks3days", Duration{Days: 17}},
		{"10d5h", Duration{Days: 10, Hours: 5}},
		{"3h 15m", Duration{Hours: 3, Minutes: 15}},
		{"45s", Duration{Seconds: 45}},
		{"2 years", Duration{Years: 2}},
		{"1 month", Duration{Months: 1}},
		{"1w", Duration{Days: 7}},
		{"90 minutes", Duration{Minutes: 90}},
		{"1hr30min", Duration{Hours: 1, Minutes: 30}},
		// Repeated units accumulate rather than overwrite.
		{"1d 2d", Duration{Days: 3}},
		{"1h 1h 1h", Duration{Hours: 3}},
		// Case-insensitive units.
		{"2 Days 3 Hours", Duration{Days: 2, Hours: 3}},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := Parse(tt.input)
			if err != nil {
				t.Fatalf("Parse(%q) returned error: %v", tt.input, err)
			}
			if got != tt.want {
				t.Errorf("Parse(%q) = %+v, want %+v", tt.input, got, tt.want)
			}
		})
	}
}

func TestParseOrderIndependent(t *testing.T) {
	a, err := Parse("1y6mo10d")
	if err != nil {
		t.Fatal(err)
	}
	b, err := Parse("10d1y6mo")
	if err != nil {
		t.Fatal(err)
	}
	if a != b {
		t.Errorf("unit order changed the result: %+v vs %+v", a, b)
	}
}

func TestParseErrors(t *testing.T) {
	tests := []struct {
		input string
		want  error
	}{
		{"", ErrEmpty},
		{"hello", ErrEmpty},
		{"2024-07-10", ErrEmpty},
		{"3 fortnights", ErrInvalidToken},
		{"1d extra", ErrInvalidToken},
		{"junk 1d", ErrInvalidToken},
		{"5x", ErrInvalidToken},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			_, err := Parse(tt.input)
			if err == nil {
				t.Fatalf("Parse(%q) succeeded, want %v", tt.input, tt.want)
			}
			if !errors.Is(err, tt.want) {
				t.Errorf("Parse(%q) error = %v, want %v", tt.input, err, tt.want)
			}
		})
	}
}

func TestAdd(t *testing.T) {
	a := Duration{Years: 1, Days: 10, Hours: 20}
	b := Duration{Months: 2, Days: 5, Hours: 5}
	got := a.Add(b)
	want := Duration{Years: 1, Months: 2, Days: 15, Hours: 25}
	if got != want {
		t.Errorf("Add = %+v, want %+v", got, want)
	}
}

func TestAddNoClockNormalization(t *testing.T) {
	// 25 hours stays 25 hours, never 1 day 1 hour.
	got := Duration{Hours: 20}.Add(Duration{Hours: 5})
	if got.Hours != 25 || got.Days != 0 {
		t.Errorf("clock hours were normalized into days: %+v", got)
	}
}

func TestNeg(t *testing.T) {
	d := Duration{Years: 1, Days: -2, Minutes: 30}
	got := d.Neg()
	want := Duration{Years: -1, Days: 2, Minutes: -30}
	if got != want {
		t.Errorf("Neg = %+v, want %+v", got, want)
	}
	if d.Neg().Neg() != d {
		t.Errorf("double negation changed the value: %+v", d.Neg().Neg())
	}
}

func TestIsZero(t *testing.T) {
	if !(Duration{}).IsZero() {
		t.Error("zero value should be zero")
	}
	if (Duration{Seconds: 1}).IsZero() {
		t.Error("non-zero value reported as zero")
	}
}

func TestHasClock(t *testing.T) {
	if (Duration{Days: 3}).HasClock() {
		t.Error("calendar-only duration reported a clock component")
	}
	if !(Duration{Minutes: 1}).HasClock() {
		t.Error("minute component not reported")
	}
}
