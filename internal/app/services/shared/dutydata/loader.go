package dutydata

import (
	"context"
	"duty-service/internal/app/config"
	"duty-service/internal/app/models"
	"duty-service/internal/pkg/constvars"
	"duty-service/internal/pkg/exceptions"
	"duty-service/internal/pkg/utils"
	"io"
	"time"

	"go.uber.org/zap"
)

type Loader struct {
	Source Source
	Log    *zap.Logger
}

func NewLoader(source Source, logger *zap.Logger) *Loader {
	return &Loader{
		Source: source,
		Log:    logger,
	}
}

// Load reads what dutyConfig's strategy needs. Missing or malformed required
// data is an error; a broken name map only disables name completion.
func (l *Loader) Load(ctx context.Context, dutyConfig config.AppDuty) (*models.DutyData, error) {
	data := &models.DutyData{}

	switch dutyConfig.Strategy {
	case constvars.DutyStrategyRotation:
		roster := models.Roster(utils.CleanWhiteSpaceFromEachStringOfAnArray(dutyConfig.Roster))
		if len(roster) == 0 {
			loaded, err := l.LoadRoster(ctx, dutyConfig.RosterFile)
			if err != nil {
				return nil, err
			}
			roster = loaded
		}
		if len(roster) == 0 {
			return nil, exceptions.ErrRotationRosterEmpty()
		}
		data.Roster = roster

	case constvars.DutyStrategyTable:
		schedule, err := l.LoadSchedule(ctx, dutyConfig.ScheduleFile)
		if err != nil {
			return nil, err
		}
		data.Schedule = schedule

		if dutyConfig.NameMapFile != "" {
			names, err := l.LoadNameMap(ctx, dutyConfig.NameMapFile)
			if err != nil {
				l.Log.Warn("Loader.Load name completion disabled",
					zap.String(constvars.LoggingSourceKey, l.Source.Kind()),
					zap.String(constvars.LoggingObjectKey, dutyConfig.NameMapFile),
					zap.Error(err),
				)
			} else {
				data.Names = names
			}
		}

	default:
		return nil, exceptions.ErrUnknownDutyStrategy(dutyConfig.Strategy)
	}

	return data, nil
}

func (l *Loader) LoadRoster(ctx context.Context, name string) (models.Roster, error) {
	raw, err := l.read(ctx, name)
	if err != nil {
		return nil, err
	}
	roster, err := decodeRoster(name, raw)
	if err != nil {
		return nil, err
	}

	members := models.Roster(utils.CleanWhiteSpaceFromEachStringOfAnArray(roster))

	l.Log.Info("Loader.LoadRoster succeeded",
		zap.String(constvars.LoggingSourceKey, l.Source.Kind()),
		zap.String(constvars.LoggingObjectKey, name),
		zap.Int("roster_size", len(members)),
	)
	return members, nil
}

func (l *Loader) LoadSchedule(ctx context.Context, name string) (models.ScheduleTable, error) {
	raw, err := l.read(ctx, name)
	if err != nil {
		return nil, err
	}
	schedule, err := decodeSchedule(name, raw)
	if err != nil {
		return nil, err
	}

	table := make(models.ScheduleTable, len(schedule))
	for key, group := range schedule {
		date, err := time.Parse(constvars.DateLayoutISO, key)
		if err != nil {
			return nil, exceptions.ErrDutyDataInvalidScheduleKey(err, key)
		}
		if date.Format(constvars.DateLayoutISO) != key {
			return nil, exceptions.ErrDutyDataInvalidScheduleKey(nil, key)
		}
		table[key] = group
	}

	l.Log.Info("Loader.LoadSchedule succeeded",
		zap.String(constvars.LoggingSourceKey, l.Source.Kind()),
		zap.String(constvars.LoggingObjectKey, name),
		zap.Int("schedule_days", len(table)),
	)
	return table, nil
}

func (l *Loader) LoadNameMap(ctx context.Context, name string) (models.NameCompletionMap, error) {
	raw, err := l.read(ctx, name)
	if err != nil {
		return nil, err
	}
	names, err := decodeNameMap(name, raw)
	if err != nil {
		return nil, err
	}

	completion := models.NameCompletionMap(utils.SanitizeStringMap(names))

	l.Log.Info("Loader.LoadNameMap succeeded",
		zap.String(constvars.LoggingSourceKey, l.Source.Kind()),
		zap.String(constvars.LoggingObjectKey, name),
		zap.Int("name_count", len(completion)),
	)
	return completion, nil
}

func (l *Loader) read(ctx context.Context, name string) ([]byte, error) {
	reader, err := l.Source.Open(ctx, name)
	if err != nil {
		return nil, exceptions.ErrDutyDataOpen(err, name, l.Source.Kind())
	}
	defer reader.Close()

	raw, err := io.ReadAll(reader)
	if err != nil {
		return nil, exceptions.ErrDutyDataRead(err, name)
	}
	return raw, nil
}
