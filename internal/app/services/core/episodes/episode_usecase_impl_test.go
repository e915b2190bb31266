package episodes

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"
)

func TestParseEpisodeDates(t *testing.T) {
	uc := &episodeUsecase{Log: zap.NewNop()}

	t.Run("Open Episode Without End Date", func(t *testing.T) {
		startDate, endDate, err := uc.parseEpisodeDates("2026-01-10", nil)

		assert.NoError(t, err)
		assert.Equal(t, time.Date(2026, time.January, 10, 0, 0, 0, 0, time.UTC), startDate)
		assert.Nil(t, endDate)
	})

	t.Run("Closed Episode With Valid Interval", func(t *testing.T) {
		rawEnd := "2026-01-20"
		startDate, endDate, err := uc.parseEpisodeDates("2026-01-10", &rawEnd)

		assert.NoError(t, err)
		assert.NotNil(t, endDate)
		assert.True(t, !endDate.Before(startDate))
	})

	t.Run("Same Day Discharge Is Allowed", func(t *testing.T) {
		rawEnd := "2026-01-10"
		_, endDate, err := uc.parseEpisodeDates("2026-01-10", &rawEnd)

		assert.NoError(t, err)
		assert.NotNil(t, endDate)
	})

	t.Run("End Before Start Is Rejected", func(t *testing.T) {
		rawEnd := "2026-01-05"
		_, _, err := uc.parseEpisodeDates("2026-01-10", &rawEnd)

		assert.Error(t, err)
	})

	t.Run("Unparseable Start Date", func(t *testing.T) {
		_, _, err := uc.parseEpisodeDates("10.01.2026", nil)

		assert.Error(t, err)
	})
}
