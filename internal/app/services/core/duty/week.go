package duty

import (
	"duty-service/internal/app/contracts"
	"duty-service/internal/app/models"
	"duty-service/internal/pkg/calendar"
	"time"
)

// ResolveWeek resolves Monday..Friday of date's week, in that order.
func ResolveWeek(resolver contracts.DutyResolver, date time.Time) []models.DutyAnswer {
	days := calendar.WorkWeek(date)
	answers := make([]models.DutyAnswer, 0, len(days))
	for _, day := range days {
		answers = append(answers, resolver.Resolve(day))
	}
	return answers
}
