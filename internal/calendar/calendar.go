// Package calendar implements date arithmetic that respects variable
// month and year lengths. All functions operate on civil dates with no
// time zone attached.
package calendar

import "time"

// IsLeap reports whether year is a leap year in the proleptic Gregorian
// calendar.
func IsLeap(year int) bool {
	return year%4 == 0 && (year%100 != 0 || year%400 == 0)
}

var daysPerMonth = [13]int{0, 31, 28, 31, 30, 31, 30, 31, 31, 30, 31, 30, 31}

// DaysIn returns the number of days in the given month (1-12).
func DaysIn(year, month int) int {
	if month == 2 && IsLeap(year) {
		return 29
	}
	return daysPerMonth[month]
}

// ValidDate reports whether year/month/day name a real calendar date.
func ValidDate(year, month, day int) bool {
	if month < 1 || month > 12 {
		return false
	}
	return day >= 1 && day <= DaysIn(year, month)
}

// AddMonths shifts a civil date by a number of months. Years fold into
// months before calling (one year is twelve months). When the original
// day does not exist in the target month the day is clamped to the last
// day of that month, so Jan 31 plus one month lands on Feb 28 or 29
// rather than rolling over into March.
func AddMonths(year, month, day, months int) (int, int, int) {
	total := year*12 + (month - 1) + months
	y := total / 12
	m := total % 12
	if m < 0 {
		m += 12
		y--
	}
	year, month = y, m+1
	if last := DaysIn(year, month); day > last {
		day = last
	}
	return year, month, day
}

// AddDays shifts a civil date by a number of days, carrying across month
// and year boundaries.
func AddDays(year, month, day, days int) (int, int, int) {
	t := time.Date(year, time.Month(month), day, 0, 0, 0, 0, time.UTC)
	t = t.AddDate(0, 0, days)
	return t.Year(), int(t.Month()), t.Day()
}

// DaysBetween returns the number of whole days from date a to date b,
// positive when b is later.
func DaysBetween(aYear, aMonth, aDay, bYear, bMonth, bDay int) int {
	a := time.Date(aYear, time.Month(aMonth), aDay, 0, 0, 0, 0, time.UTC)
	b := time.Date(bYear, time.Month(bMonth), bDay, 0, 0, 0, 0, time.UTC)
	return int(b.Sub(a) / (24 * time.Hour))
}
