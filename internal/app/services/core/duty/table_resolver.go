package duty

import (
	"duty-service/internal/app/contracts"
	"duty-service/internal/app/models"
	"duty-service/internal/pkg/constvars"
	"duty-service/internal/pkg/utils"
	"strings"
	"time"
)

type tableResolver struct {
	schedule     models.ScheduleTable
	maxGroupSize int
	names        models.NameCompletionMap
}

// NewTableResolver looks dates up in schedule. maxGroupSize <= 0 disables the
// group cap and a nil names map disables name completion.
func NewTableResolver(schedule models.ScheduleTable, maxGroupSize int, names models.NameCompletionMap) contracts.DutyResolver {
	copied := make(models.ScheduleTable, len(schedule))
	for date, group := range schedule {
		copied[date] = append([]string(nil), group...)
	}
	return &tableResolver{
		schedule:     copied,
		maxGroupSize: maxGroupSize,
		names:        names,
	}
}

func (r *tableResolver) Strategy() string {
	return constvars.DutyStrategyTable
}

func (r *tableResolver) Resolve(date time.Time) models.DutyAnswer {
	group := nonBlank(r.schedule[utils.FormatISODate(date)])
	if len(group) == 0 {
		return models.DutyAnswer{Date: date, Status: models.DutyStatusNoData}
	}

	if r.maxGroupSize > 0 && len(group) > r.maxGroupSize {
		group = group[:r.maxGroupSize]
	}
	for i, entry := range group {
		group[i] = CompleteName(entry, r.names)
	}

	return models.DutyAnswer{
		Date:   date,
		Status: models.DutyStatusAssigned,
		Names:  group,
	}
}

// nonBlank returns a fresh slice so callers may modify it.
func nonBlank(group []string) []string {
	result := make([]string, 0, len(group))
	for _, entry := range group {
		if strings.TrimSpace(entry) != "" {
			result = append(result, entry)
		}
	}
	return result
}
