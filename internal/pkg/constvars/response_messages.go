package constvars

const (
	ResponseUnknown = "unknown"
	ResponseOK      = "ok"
)

const (
	SkillMessageUsage = "당번 안내 봇입니다.\n" +
		"- '오늘 당번' : 오늘 담당자\n" +
		"- '내일 당번' : 내일 담당자\n" +
		"- '이번주 당번' : 월~금 담당자\n" +
		"- '다음주 당번' : 다음 주 월~금 담당자\n" +
		"- '4월 28일 당번' 또는 '2025-04-28 당번' : 해당 날짜 담당자"
	SkillMessageApology = "일시적인 오류로 당번 정보를 불러오지 못했습니다. 잠시 후 다시 시도해 주세요."

	// %s: date
	SkillMessageWeekendFormat = "%s은 주말이라 당번이 없습니다."
	// %s: date
	SkillMessageNoDataFormat = "%s 당번 정보가 없습니다."
	// %s: date, %s: label, %s: name
	SkillMessageSingleFormat = "%s %s: %s"
	// %s: date, %s: label
	SkillMessageGroupHeaderFormat = "%s %s:"
	// %s: date, %s: weekday
	SkillMessageWeekBlockHeaderFormat = "[%s (%s)]"

	SkillMessageBullet      = "- "
	SkillMessageWeekNoData  = "정보 없음"
	SkillMessageWeekWeekend = "주말"
	SkillQuickReplyToday    = "오늘 당번"
	SkillQuickReplyTomorrow = "내일 당번"
	SkillQuickReplyThisWeek = "이번주 당번"
	SkillQuickReplyHelp     = "도움말"
)

var KoreanWeekdayLabels = [7]string{"일", "월", "화", "수", "목", "금", "토"}
