package duty

import (
	"duty-service/internal/app/models"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCompleteName(t *testing.T) {
	names := models.NameCompletionMap{"27": "Woo Jaehyun", "13": "13 Kim Minji"}

	t.Run("Partial Name Is Completed", func(t *testing.T) {
		assert.Equal(t, "27 Woo Jaehyun", CompleteName("27 Woo", names))
		assert.Equal(t, "27 Woo Jaehyun", CompleteName("27 W", names))
	})

	t.Run("Missing Name Is Completed", func(t *testing.T) {
		assert.Equal(t, "27 Woo Jaehyun", CompleteName("27", names))
		assert.Equal(t, "27 Woo Jaehyun", CompleteName(" 27 ", names))
	})

	t.Run("Mapped Value Already Carrying The Id", func(t *testing.T) {
		assert.Equal(t, "13 Kim Minji", CompleteName("13 K", names))
	})

	t.Run("Idempotent", func(t *testing.T) {
		for _, entry := range []string{"27 Woo", "13", "Lee", "99 Park"} {
			once := CompleteName(entry, names)
			assert.Equal(t, once, CompleteName(once, names), entry)
		}
	})

	t.Run("Non Matching Entries Untouched", func(t *testing.T) {
		assert.Equal(t, "Lee", CompleteName("Lee", names))
		assert.Equal(t, "Kim 13", CompleteName("Kim 13", names))
		assert.Equal(t, "99 Park", CompleteName("99 Park", names))
	})

	t.Run("Disabled Without Map", func(t *testing.T) {
		assert.Equal(t, "27 W", CompleteName("27 W", nil))
	})
}
