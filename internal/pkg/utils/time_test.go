package utils

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestBirthDateBounds(t *testing.T) {
	today := time.Date(2026, time.March, 15, 0, 0, 0, 0, time.UTC)

	t.Run("Min Age Zero", func(t *testing.T) {
		latest := LatestBirthDateForMinAge(today, 0)

		assert.Equal(t, today, latest, "a newborn satisfies a zero minimum age")
	})

	t.Run("Min Age Eighteen", func(t *testing.T) {
		latest := LatestBirthDateForMinAge(today, 18)

		// 18 * 365.25 days, fraction dropped.
		assert.Equal(t, today.AddDate(0, 0, -6574), latest)
	})

	t.Run("Max Age Sixty Five", func(t *testing.T) {
		earliest := EarliestBirthDateForMaxAge(today, 65)

		// 66 * 365.25 days, fraction dropped, plus the inclusive day back.
		assert.Equal(t, today.AddDate(0, 0, -24106+1), earliest)
	})

	t.Run("Bounds Are Consistent", func(t *testing.T) {
		latest := LatestBirthDateForMinAge(today, 30)
		earliest := EarliestBirthDateForMaxAge(today, 30)

		assert.True(t, earliest.Before(latest),
			"the window for a single-age cohort must be non-empty")
	})
}

func TestParseDate(t *testing.T) {
	t.Run("Valid Date", func(t *testing.T) {
		parsed, err := ParseDate("1984-11-02")

		assert.NoError(t, err)
		assert.Equal(t, time.Date(1984, time.November, 2, 0, 0, 0, 0, time.UTC), parsed)
	})

	t.Run("Wrong Layout", func(t *testing.T) {
		_, err := ParseDate("02.11.1984")

		assert.Error(t, err)
	})
}
