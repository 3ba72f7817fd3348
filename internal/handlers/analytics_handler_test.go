package handlers

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestParseDateRange(t *testing.T) {
	t.Run("plain end date is extended to end of day", func(t *testing.T) {
		r := parseDateRange("2024-01-01", "2024-01-31")
		assert.NotNil(t, r)
		assert.Equal(t, time.Date(2024, time.January, 1, 0, 0, 0, 0, time.UTC), r.Start)
		assert.Equal(t, time.Date(2024, time.January, 31, 23, 59, 59, 999999999, time.UTC), r.End)

		// The whole end day falls inside the range.
		assert.True(t, r.Contains(time.Date(2024, time.January, 31, 18, 30, 0, 0, time.UTC)))
		assert.False(t, r.Contains(time.Date(2024, time.February, 1, 0, 0, 0, 0, time.UTC)))
	})

	t.Run("rfc3339 midnight end bound is taken as-is", func(t *testing.T) {
		r := parseDateRange("2024-01-01T00:00:00Z", "2024-01-31T00:00:00Z")
		assert.NotNil(t, r)
		assert.Equal(t, time.Date(2024, time.January, 31, 0, 0, 0, 0, time.UTC), r.End)
		assert.False(t, r.Contains(time.Date(2024, time.January, 31, 12, 0, 0, 0, time.UTC)))
	})

	t.Run("rfc3339 end bound with time of day", func(t *testing.T) {
		r := parseDateRange("2024-01-01", "2024-01-31T15:04:05Z")
		assert.NotNil(t, r)
		assert.Equal(t, time.Date(2024, time.January, 31, 15, 4, 5, 0, time.UTC), r.End)
	})

	t.Run("missing or unparseable bounds yield no range", func(t *testing.T) {
		assert.Nil(t, parseDateRange("", "2024-01-31"))
		assert.Nil(t, parseDateRange("2024-01-01", ""))
		assert.Nil(t, parseDateRange("yesterday", "2024-01-31"))
		assert.Nil(t, parseDateRange("2024-01-01", "31/01/2024"))
	})
}
