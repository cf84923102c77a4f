package duty

import (
	"duty-service/internal/app/models"
	"duty-service/internal/pkg/utils"
	"time"
)

var testRoster = models.Roster{
	"3-2 김민수", "3-2 이서연", "3-2 박지훈", "3-2 최유진",
	"3-2 정유나", "3-2 김도윤", "3-2 박서준", "3-2 한지민",
}

func day(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, utils.KST())
}
