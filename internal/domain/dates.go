package domain

import "time"

// DateOnly strips the time of day, keeping the calendar day as seen in t's own location.
// The result is midnight UTC so that dates from different sources compare by calendar day.
func DateOnly(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

// IsDateInPast reports whether date is a calendar day strictly before today
func IsDateInPast(date, today time.Time) bool {
	return DateOnly(date).Before(DateOnly(today))
}

// IsSameDay reports whether both values fall on the same calendar day
func IsSameDay(a, b time.Time) bool {
	return DateOnly(a).Equal(DateOnly(b))
}

// AddDays shifts a calendar day
func AddDays(date time.Time, days int) time.Time {
	return DateOnly(date).AddDate(0, 0, days)
}

// StartOfWeek returns the Sunday of date's week
func StartOfWeek(date time.Time) time.Time {
	d := DateOnly(date)
	return d.AddDate(0, 0, -int(d.Weekday()))
}

// StartOfMonth returns the first day of date's month
func StartOfMonth(date time.Time) time.Time {
	d := DateOnly(date)
	return time.Date(d.Year(), d.Month(), 1, 0, 0, 0, 0, time.UTC)
}

// EndOfMonth returns the last day of date's month
func EndOfMonth(date time.Time) time.Time {
	return StartOfMonth(date).AddDate(0, 1, -1)
}
