package intent

import (
	"duty-service/internal/pkg/calendar"
	"duty-service/internal/pkg/constvars"
	"regexp"
	"strconv"
	"strings"
	"time"
)

var (
	tokensNextWeek = []string{"다음주", "다음 주"}
	tokensThisWeek = []string{"이번주", "이번 주", "주간"}
	tokensTomorrow = []string{"내일"}
	tokensToday    = []string{"오늘"}
	tokensHelp     = []string{"도움말", "help"}

	numericDatePattern = regexp.MustCompile(constvars.RegexUtteranceNumericDate)
	koreanDatePattern  = regexp.MustCompile(constvars.RegexUtteranceKoreanDate)
)

// Parse resolves utterance against today. Rules are tried in a fixed order
// and the first match wins; keywords always win over date patterns.
func Parse(utterance string, today time.Time) Intent {
	text := Normalize(utterance)
	if text == "" {
		return Unresolved()
	}
	lower := strings.ToLower(text)

	switch {
	case containsAny(text, tokensNextWeek):
		return Week(today.AddDate(0, 0, 7))
	case containsAny(text, tokensThisWeek):
		return Week(today)
	case containsAny(text, tokensTomorrow):
		return Date(today.AddDate(0, 0, 1))
	case containsAny(text, tokensToday):
		return Date(today)
	}

	if match := numericDatePattern.FindStringSubmatch(text); match != nil {
		return dateIntent(atoi(match[1]), atoi(match[2]), atoi(match[3]), today.Location())
	}

	if match := koreanDatePattern.FindStringSubmatch(text); match != nil {
		year := today.Year()
		if match[1] != "" {
			year = atoi(match[1])
		}
		return dateIntent(year, atoi(match[2]), atoi(match[3]), today.Location())
	}

	if containsAny(lower, tokensHelp) {
		return Help()
	}

	return Unresolved()
}

func dateIntent(year, month, day int, loc *time.Location) Intent {
	date, err := calendar.DateOf(year, month, day, loc)
	if err != nil {
		return Invalid(err)
	}
	return Date(date)
}

func containsAny(text string, tokens []string) bool {
	for _, token := range tokens {
		if strings.Contains(text, token) {
			return true
		}
	}
	return false
}

// atoi is only fed regexp digit groups of at most four digits.
func atoi(digits string) int {
	n, _ := strconv.Atoi(digits)
	return n
}
