package constvars

const (
	// 2025-04-28, 2025.4.28, 2025/04/28; not part of a longer digit run
	RegexUtteranceNumericDate = `(?:^|\D)(\d{4})[-./](\d{1,2})[-./](\d{1,2})(?:\D|$)`
	// 4월 28일, 2025년 4월 28일
	RegexUtteranceKoreanDate = `(?:(\d{4})\s*년\s*)?(\d{1,2})\s*월\s*(\d{1,2})\s*일`
	// "27 Woo", "27", "27 "
	RegexScheduleNumberedName = `^(\d+)(?:\s+(.*))?$`
)
