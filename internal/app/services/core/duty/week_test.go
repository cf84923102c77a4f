package duty

import (
	"duty-service/internal/app/models"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestResolveWeek(t *testing.T) {
	resolver, err := NewRotationResolver(testRoster, day(2025, time.September, 1), true)
	require.NoError(t, err)

	for offset := 0; offset < 7; offset++ {
		answers := ResolveWeek(resolver, day(2025, time.September, 8).AddDate(0, 0, offset))

		require.Len(t, answers, 5)
		assert.Equal(t, time.Monday, answers[0].Date.Weekday())
		assert.Equal(t, day(2025, time.September, 8), answers[0].Date)
		for i := 1; i < len(answers); i++ {
			assert.True(t, answers[i].Date.After(answers[i-1].Date))
		}
		for i, answer := range answers {
			assert.Equal(t, models.DutyStatusAssigned, answer.Status)
			assert.Equal(t, []string{testRoster[(5+i)%len(testRoster)]}, answer.Names)
		}
	}
}
