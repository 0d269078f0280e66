// Package metric holds pure per-entity derived values: nothing here touches
// the store or the clock except through explicit parameters.
package metric

import (
	"fmt"
	"time"
)

// AgeUnknown is returned when no usable date is available.
const AgeUnknown = "Unknown"

// Age formats the elapsed time since an animal's birth date as a human label.
// The primary date wins; when it is nil the fallback (birth on farm) is used.
// A missing or future date yields AgeUnknown. Under 30 days the age is
// reported in days, under a year in months, otherwise in whole years plus the
// remaining months (omitted when zero). Wording is singular or plural to
// match the count.
func Age(birth, fallback *time.Time) string {
	return AgeAt(birth, fallback, time.Now())
}

// AgeAt is Age against an explicit reference time.
func AgeAt(birth, fallback *time.Time, now time.Time) string {
	date := birth
	if date == nil {
		date = fallback
	}
	if date == nil || date.After(now) {
		return AgeUnknown
	}

	days := int(now.Sub(*date).Hours() / 24)
	totalMonths := monthsBetween(*date, now)
	years := totalMonths / 12
	months := totalMonths % 12

	if days < 30 {
		return pluralize(days, "day")
	}
	if years == 0 {
		return pluralize(months, "month")
	}
	if months == 0 {
		return pluralize(years, "year")
	}
	return fmt.Sprintf("%s, %s", pluralize(years, "year"), pluralize(months, "month"))
}

// monthsBetween counts whole calendar months from a to b (a <= b): the raw
// month delta, minus one when the day of month in b has not yet reached the
// day in a.
func monthsBetween(a, b time.Time) int {
	months := (b.Year()-a.Year())*12 + int(b.Month()) - int(a.Month())
	if b.Day() < a.Day() {
		months--
	}
	if months < 0 {
		return 0
	}
	return months
}

func pluralize(n int, unit string) string {
	if n == 1 {
		return fmt.Sprintf("1 %s", unit)
	}
	return fmt.Sprintf("%d %ss", n, unit)
}
