// Package eval parses and evaluates binary date/time arithmetic
// expressions like "today + 3d", "2024-07-10 - 2023-07-10", or
// "1y6mo - 2mo".
//
// An expression is two operands joined by a single top-level + or -.
// Each operand is a date, a datetime, a relative keyword ("now",
// "today"), or a compound duration. The operator must be preceded by
// whitespace, which keeps the hyphens inside "2024-07-10" from being
// read as operators.
package eval

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/spiffcs/dtcalc/internal/calendar"
	"github.com/spiffcs/dtcalc/internal/dateparse"
	"github.com/spiffcs/dtcalc/internal/duration"
	"github.com/spiffcs/dtcalc/internal/format"
)

var (
	// ErrNoOperator is returned when the expression has no top-level
	// + or - between two operands.
	ErrNoOperator = errors.New("no operator found")

	// ErrUnrecognizedOperand is returned when an operand matches none
	// of the recognized grammars.
	ErrUnrecognizedOperand = errors.New("unrecognized operand")

	// ErrAddInstants is returned for date + date, which has no meaning.
	ErrAddInstants = errors.New("cannot add two dates")

	// ErrSubtractInstant is returned for duration - date, which has no
	// meaning either.
	ErrSubtractInstant = errors.New("cannot subtract a date from a duration")
)

type operator byte

const (
	opAdd operator = '+'
	opSub operator = '-'
)

// operand is the tagged union of the two value kinds an expression side
// can hold.
type operand struct {
	instant   dateparse.Instant
	dur       duration.Duration
	isInstant bool
}

// An Evaluator evaluates expressions against an injectable clock, so
// tests can pin "now" and "today" to a fixed instant.
type Evaluator struct {
	clock func() time.Time
}

// Option configures an Evaluator.
type Option func(*Evaluator)

// WithClock replaces the wall clock used for relative keywords.
func WithClock(clock func() time.Time) Option {
	return func(e *Evaluator) {
		e.clock = clock
	}
}

// New creates an Evaluator. Without options it reads the real wall
// clock.
func New(opts ...Option) *Evaluator {
	e := &Evaluator{clock: time.Now}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// Evaluate parses and evaluates a single expression and returns the
// canonical rendering of the result. The clock is read once per call so
// both operands see the same "now".
func (e *Evaluator) Evaluate(expr string) (string, error) {
	left, op, right, err := split(expr)
	if err != nil {
		return "", err
	}

	now := e.clock()
	lhs, err := parseOperand(left, now)
	if err != nil {
		return "", fmt.Errorf("left operand %q: %w", left, err)
	}
	rhs, err := parseOperand(right, now)
	if err != nil {
		return "", fmt.Errorf("right operand %q: %w", right, err)
	}

	return apply(lhs, op, rhs)
}

// split finds the top-level operator: the first + or - preceded by
// whitespace.
func split(expr string) (left string, op operator, right string, err error) {
	expr = strings.TrimSpace(expr)
	if expr == "" {
		return "", 0, "", fmt.Errorf("%w: empty expression", ErrNoOperator)
	}
	for i := 1; i < len(expr); i++ {
		c := expr[i]
		if (c != '+' && c != '-') || !isSpace(expr[i-1]) {
			continue
		}
		left = strings.TrimSpace(expr[:i])
		right = strings.TrimSpace(expr[i+1:])
		if right == "" {
			return "", 0, "", fmt.Errorf("missing operand after %q", string(c))
		}
		return left, operator(c), right, nil
	}
	return "", 0, "", fmt.Errorf("%w in %q (expected: <operand> +|- <operand>)", ErrNoOperator, expr)
}

func isSpace(c byte) bool {
	return c == ' ' || c == '\t'
}

// parseOperand tries each operand grammar in priority order: the
// relative keywords and absolute dates live in dateparse, durations in
// duration. A match must consume the whole operand.
func parseOperand(s string, now time.Time) (operand, error) {
	d, derr := duration.Parse(s)
	if derr == nil {
		return operand{dur: d}, nil
	}
	inst, ierr := dateparse.Parse(s, now)
	if ierr == nil {
		return operand{instant: inst, isInstant: true}, nil
	}

	// Neither grammar matched; surface the most specific diagnostic.
	// Input with count/unit pairs was meant as a duration, and input
	// shaped like a date with an impossible value was meant as a date.
	if !errors.Is(derr, duration.ErrEmpty) {
		return operand{}, derr
	}
	if errors.Is(ierr, dateparse.ErrValue) {
		return operand{}, ierr
	}
	return operand{}, ErrUnrecognizedOperand
}

// apply combines two operands according to the kind-pairing table:
// instant-instant subtraction yields a duration, instant and duration
// yield an instant, two durations yield a duration.
func apply(l operand, op operator, r operand) (string, error) {
	switch {
	case l.isInstant && r.isInstant:
		if op == opAdd {
			return "", ErrAddInstants
		}
		return format.FormatDuration(subInstants(l.instant, r.instant)), nil

	case l.isInstant:
		d := r.dur
		if op == opSub {
			d = d.Neg()
		}
		return format.FormatInstant(shift(l.instant, d)), nil

	case r.isInstant:
		if op == opSub {
			return "", ErrSubtractInstant
		}
		return format.FormatInstant(shift(r.instant, l.dur)), nil

	default:
		d := r.dur
		if op == opSub {
			d = d.Neg()
		}
		return format.FormatDuration(l.dur.Add(d)), nil
	}
}

// shift applies a duration to an instant. Calendar components go first:
// years and months with day-of-month clamping, then weeks and days as a
// combined day count. Clock components follow as fixed-length additions
// with carry across day boundaries, promoting a pure date to a datetime.
func shift(i dateparse.Instant, d duration.Duration) dateparse.Instant {
	year, month, day := calendar.AddMonths(i.Year, i.Month, i.Day, d.Years*12+d.Months)
	year, month, day = calendar.AddDays(year, month, day, d.Weeks*7+d.Days)

	if !d.HasClock() {
		return dateparse.Instant{
			Year: year, Month: month, Day: day,
			Hour: i.Hour, Minute: i.Minute, Second: i.Second,
			HasTime: i.HasTime,
		}
	}

	t := time.Date(year, time.Month(month), day, i.Hour, i.Minute, i.Second, 0, time.UTC)
	t = t.Add(time.Duration(d.Hours)*time.Hour +
		time.Duration(d.Minutes)*time.Minute +
		time.Duration(d.Seconds)*time.Second)
	return dateparse.Instant{
		Year: t.Year(), Month: int(t.Month()), Day: t.Day(),
		Hour: t.Hour(), Minute: t.Minute(), Second: t.Second(),
		HasTime: true,
	}
}

// subInstants returns the elapsed time from r to l, expressed in days
// plus clock parts when either side carries a time of day. The sign
// follows left minus right.
func subInstants(l, r dateparse.Instant) duration.Duration {
	if !l.HasTime && !r.HasTime {
		return duration.Duration{
			Days: calendar.DaysBetween(r.Year, r.Month, r.Day, l.Year, l.Month, l.Day),
		}
	}

	lt := time.Date(l.Year, time.Month(l.Month), l.Day, l.Hour, l.Minute, l.Second, 0, time.UTC)
	rt := time.Date(r.Year, time.Month(r.Month), r.Day, r.Hour, r.Minute, r.Second, 0, time.UTC)
	secs := int(lt.Sub(rt) / time.Second)

	days := secs / 86400
	rem := secs % 86400
	return duration.Duration{
		Days:    days,
		Hours:   rem / 3600,
		Minutes: rem % 3600 / 60,
		Seconds: rem % 60,
	}
}
