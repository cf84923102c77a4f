package duty

import (
	"duty-service/internal/app/models"
	"duty-service/internal/pkg/constvars"
	"duty-service/internal/pkg/utils"
	"fmt"
	"strings"
)

func ComposeDay(answer models.DutyAnswer, label string) string {
	date := utils.FormatISODate(answer.Date)

	switch {
	case answer.Status == models.DutyStatusWeekend:
		return fmt.Sprintf(constvars.SkillMessageWeekendFormat, date)
	case !answer.IsAssigned():
		return fmt.Sprintf(constvars.SkillMessageNoDataFormat, date)
	case len(answer.Names) == 1:
		return fmt.Sprintf(constvars.SkillMessageSingleFormat, date, label, answer.Names[0])
	}

	lines := []string{fmt.Sprintf(constvars.SkillMessageGroupHeaderFormat, date, label)}
	lines = append(lines, bullets(answer.Names)...)
	return strings.Join(lines, "\n")
}

// ComposeWeek renders one block per day separated by blank lines.
func ComposeWeek(answers []models.DutyAnswer) string {
	blocks := make([]string, 0, len(answers))
	for _, answer := range answers {
		lines := []string{fmt.Sprintf(constvars.SkillMessageWeekBlockHeaderFormat, utils.FormatISODate(answer.Date), utils.KoreanWeekday(answer.Date))}
		switch {
		case answer.Status == models.DutyStatusWeekend:
			lines = append(lines, constvars.SkillMessageBullet+constvars.SkillMessageWeekWeekend)
		case !answer.IsAssigned():
			lines = append(lines, constvars.SkillMessageBullet+constvars.SkillMessageWeekNoData)
		default:
			lines = append(lines, bullets(answer.Names)...)
		}
		blocks = append(blocks, strings.Join(lines, "\n"))
	}
	return strings.Join(blocks, "\n\n")
}

func bullets(names []string) []string {
	lines := make([]string, 0, len(names))
	for _, name := range names {
		lines = append(lines, constvars.SkillMessageBullet+strings.TrimSpace(name))
	}
	return lines
}
