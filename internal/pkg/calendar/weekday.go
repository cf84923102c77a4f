// Package calendar holds the civil-date arithmetic behind duty rotation.
// Every function looks only at the calendar date of its arguments, in the
// location each time value already carries.
package calendar

import (
	"duty-service/internal/pkg/exceptions"
	"time"
)

const daysPerWeek = 7

// WeekdayOffset counts day steps from start to target, one civil day at a
// time. When skipWeekends is set only Monday..Friday steps are counted. The
// result is negative when target is before start, and
// WeekdayOffset(a, b, s) == -WeekdayOffset(b, a, s) for every pair of dates.
// Days in (earlier, later] are counted: with skipWeekends a weekend start
// yields 0 for the preceding Friday. config.Validate rejects weekend rotation
// starts.
func WeekdayOffset(target, start time.Time, skipWeekends bool) int {
	from, to := civilDate(start), civilDate(target)
	sign := 1
	if to.Before(from) {
		from, to = to, from
		sign = -1
	}

	count := 0
	for day := from; day.Before(to); {
		day = day.AddDate(0, 0, 1)
		if !skipWeekends || !IsWeekend(day) {
			count++
		}
	}
	return sign * count
}

// FloorMod returns a mod n in [0, n). n must be positive.
func FloorMod(a, n int) int {
	m := a % n
	if m < 0 {
		m += n
	}
	return m
}

// RotationIndex maps date onto a roster of size members counted from start.
func RotationIndex(date, start time.Time, size int, skipWeekends bool) int {
	return FloorMod(WeekdayOffset(date, start, skipWeekends), size)
}

func IsWeekend(date time.Time) bool {
	weekday := date.Weekday()
	return weekday == time.Saturday || weekday == time.Sunday
}

// WeekStart returns midnight of the Monday of date's week. Saturday and
// Sunday belong to the week that started on the preceding Monday.
func WeekStart(date time.Time) time.Time {
	daysSinceMonday := (int(date.Weekday()) + daysPerWeek - 1) % daysPerWeek
	y, m, d := date.Date()
	return time.Date(y, m, d-daysSinceMonday, 0, 0, 0, 0, date.Location())
}

// WorkWeek returns the five dates Monday..Friday of date's week.
func WorkWeek(date time.Time) []time.Time {
	monday := WeekStart(date)
	days := make([]time.Time, 0, 5)
	for i := 0; i < 5; i++ {
		days = append(days, monday.AddDate(0, 0, i))
	}
	return days
}

// DateOf builds midnight of year-month-day in loc. Out of range parts are an
// error instead of being normalized the way time.Date does.
func DateOf(year, month, day int, loc *time.Location) (time.Time, error) {
	if month < 1 || month > 12 || day < 1 || day > 31 {
		return time.Time{}, exceptions.ErrInvalidCalendarDate(year, month, day)
	}
	date := time.Date(year, time.Month(month), day, 0, 0, 0, 0, loc)
	if date.Year() != year || int(date.Month()) != month || date.Day() != day {
		return time.Time{}, exceptions.ErrInvalidCalendarDate(year, month, day)
	}
	return date, nil
}

// civilDate drops the clock and zone so stepping is never affected by DST.
func civilDate(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}
