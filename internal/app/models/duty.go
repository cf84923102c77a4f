package models

import "time"

// Roster is the ordered list cycled through by the rotation strategy.
type Roster []string

// ScheduleTable maps an ISO "YYYY-MM-DD" date to its duty group.
type ScheduleTable map[string][]string

// NameCompletionMap maps a numeric member id to the member's full name.
type NameCompletionMap map[string]string

type DutyStatus string

const (
	DutyStatusAssigned DutyStatus = "assigned"
	DutyStatusNoData   DutyStatus = "no_data"
	DutyStatusWeekend  DutyStatus = "weekend"
)

type DutyAnswer struct {
	Date   time.Time
	Status DutyStatus
	Names  []string
}

func (a DutyAnswer) IsAssigned() bool {
	return a.Status == DutyStatusAssigned && len(a.Names) > 0
}

// DutyData is everything loaded from the duty data source at startup.
type DutyData struct {
	Roster   Roster
	Schedule ScheduleTable
	Names    NameCompletionMap
}
