package duty

import (
	"duty-service/internal/app/contracts"
	"duty-service/internal/app/models"
	"duty-service/internal/pkg/calendar"
	"duty-service/internal/pkg/constvars"
	"duty-service/internal/pkg/exceptions"
	"time"
)

type rotationResolver struct {
	roster       models.Roster
	start        time.Time
	skipWeekends bool
}

// NewRotationResolver cycles through roster one member per counted day,
// starting with roster[0] on start.
func NewRotationResolver(roster models.Roster, start time.Time, skipWeekends bool) (contracts.DutyResolver, error) {
	if len(roster) == 0 {
		return nil, exceptions.ErrRotationRosterEmpty()
	}
	return &rotationResolver{
		roster:       append(models.Roster(nil), roster...),
		start:        start,
		skipWeekends: skipWeekends,
	}, nil
}

func (r *rotationResolver) Strategy() string {
	return constvars.DutyStrategyRotation
}

func (r *rotationResolver) Resolve(date time.Time) models.DutyAnswer {
	if r.skipWeekends && calendar.IsWeekend(date) {
		return models.DutyAnswer{Date: date, Status: models.DutyStatusWeekend}
	}

	index := calendar.RotationIndex(date, r.start, len(r.roster), r.skipWeekends)
	return models.DutyAnswer{
		Date:   date,
		Status: models.DutyStatusAssigned,
		Names:  []string{r.roster[index]},
	}
}
