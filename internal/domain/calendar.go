package domain

import (
	"fmt"
	"time"
)

// CalendarView granularity of the calendar
type CalendarView string

const (
	ViewDay   CalendarView = "day"
	ViewWeek  CalendarView = "week"
	ViewMonth CalendarView = "month"
)

func (v CalendarView) IsValid() bool {
	return v == ViewDay || v == ViewWeek || v == ViewMonth
}

// CalendarRange first and last calendar day (inclusive) shown by the view.
// Weeks start on Sunday.
func CalendarRange(view CalendarView, date time.Time) (time.Time, time.Time, error) {
	switch view {
	case ViewDay:
		d := DateOnly(date)
		return d, d, nil
	case ViewWeek:
		from := StartOfWeek(date)
		return from, from.AddDate(0, 0, 6), nil
	case ViewMonth:
		return StartOfMonth(date), EndOfMonth(date), nil
	default:
		return time.Time{}, time.Time{}, fmt.Errorf("domain: unknown calendar view %q", view)
	}
}

// DaysInRange every calendar day from..to inclusive
func DaysInRange(from, to time.Time) []time.Time {
	days := make([]time.Time, 0)
	for d := DateOnly(from); !d.After(DateOnly(to)); d = d.AddDate(0, 0, 1) {
		days = append(days, d)
	}
	return days
}

// AppointmentsOn appointments dated on day, keeping order
func AppointmentsOn(appointments []*Appointment, day time.Time) []*Appointment {
	result := make([]*Appointment, 0)
	for _, a := range appointments {
		if IsSameDay(a.Date, day) {
			result = append(result, a)
		}
	}
	return result
}
