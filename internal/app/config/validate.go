package config

import (
	"duty-service/internal/pkg/constvars"
	"duty-service/internal/pkg/exceptions"
	"time"

	"github.com/go-playground/validator/v10"
)

// Validate checks both configs. A rotation deployment must name a roster,
// either inline or as a file, and must not start on a skipped weekend day.
func Validate(driverConfig *DriverConfig, internalConfig *InternalConfig) error {
	validate := validator.New()

	if err := validate.Struct(driverConfig); err != nil {
		return exceptions.ErrConfigValidation(err)
	}
	if err := validate.Struct(internalConfig); err != nil {
		return exceptions.ErrConfigValidation(err)
	}

	duty := internalConfig.Duty
	if duty.Strategy == constvars.DutyStrategyRotation && duty.RosterFile == "" && len(duty.Roster) == 0 {
		return exceptions.ErrRotationRosterEmpty()
	}
	if duty.Strategy == constvars.DutyStrategyRotation && duty.SkipWeekends {
		start, err := time.Parse(constvars.DateLayoutISO, duty.RotationStart)
		if err != nil {
			return exceptions.ErrRotationStartInvalid(err)
		}
		if weekday := start.Weekday(); weekday == time.Saturday || weekday == time.Sunday {
			return exceptions.ErrRotationStartWeekend(duty.RotationStart)
		}
	}
	return nil
}
