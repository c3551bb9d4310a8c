package utils

import (
	"testing"
	"time"
	_ "time/tzdata"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCalendarDate(t *testing.T) {
	instant := time.Date(2026, 3, 9, 22, 30, 0, 0, time.UTC)

	t.Run("Nil Location Is UTC", func(t *testing.T) {
		assert.Equal(t, "2026-03-09", CalendarDate(instant, nil))
	})

	t.Run("Date Rolls Over In Eastern Zone", func(t *testing.T) {
		loc := time.FixedZone("UTC+7", 7*60*60)
		assert.Equal(t, "2026-03-10", CalendarDate(instant, loc))
	})

	t.Run("Named Zone", func(t *testing.T) {
		loc, err := time.LoadLocation("America/New_York")
		require.NoError(t, err)
		assert.Equal(t, "2026-03-09", CalendarDate(instant, loc))
	})
}
