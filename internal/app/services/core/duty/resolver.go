package duty

import (
	"duty-service/internal/app/config"
	"duty-service/internal/app/contracts"
	"duty-service/internal/app/models"
	"duty-service/internal/pkg/constvars"
	"duty-service/internal/pkg/exceptions"
	"duty-service/internal/pkg/utils"
	"time"
)

// NewDutyResolver builds the one strategy dutyConfig selects.
func NewDutyResolver(dutyConfig config.AppDuty, data *models.DutyData) (contracts.DutyResolver, error) {
	switch dutyConfig.Strategy {
	case constvars.DutyStrategyRotation:
		start, err := time.ParseInLocation(constvars.DateLayoutISO, dutyConfig.RotationStart, utils.KST())
		if err != nil {
			return nil, exceptions.ErrRotationStartInvalid(err)
		}
		return NewRotationResolver(data.Roster, start, dutyConfig.SkipWeekends)
	case constvars.DutyStrategyTable:
		return NewTableResolver(data.Schedule, dutyConfig.MaxGroupSize, data.Names), nil
	default:
		return nil, exceptions.ErrUnknownDutyStrategy(dutyConfig.Strategy)
	}
}
