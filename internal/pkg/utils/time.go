package utils

import (
	"duty-service/internal/pkg/constvars"
	"time"
)

var kst = time.FixedZone(constvars.TimezoneKSTName, constvars.TimezoneKSTOffsetSeconds)

// KST returns the fixed UTC+9 zone every "today" is computed in, regardless
// of the host's local zone.
func KST() *time.Location {
	return kst
}

// TodayIn truncates now to midnight of its civil date in loc.
func TodayIn(now time.Time, loc *time.Location) time.Time {
	y, m, d := now.In(loc).Date()
	return time.Date(y, m, d, 0, 0, 0, 0, loc)
}

func FormatISODate(date time.Time) string {
	return date.Format(constvars.DateLayoutISO)
}

func KoreanWeekday(date time.Time) string {
	return constvars.KoreanWeekdayLabels[date.Weekday()]
}
