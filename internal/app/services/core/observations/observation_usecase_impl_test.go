package observations

import (
	"testing"
	"time"

	"clinregistry-service/internal/app/models"

	"github.com/stretchr/testify/assert"
)

func TestDeriveNumericValue(t *testing.T) {
	numeric := &models.ParameterCode{Code: "temp", Name: "Body temperature", IsNumeric: true}
	freeText := &models.ParameterCode{Code: "complaint", Name: "Complaint", IsNumeric: false}

	t.Run("Comma Decimal On Numeric Parameter", func(t *testing.T) {
		derived := deriveNumericValue(numeric, "36,6")

		assert.NotNil(t, derived)
		assert.Equal(t, 36.6, *derived)
	})

	t.Run("Unparseable Value On Numeric Parameter", func(t *testing.T) {
		assert.Nil(t, deriveNumericValue(numeric, "high"),
			"the raw text is kept but no numeric shadow is stored")
	})

	t.Run("Free Text Parameter", func(t *testing.T) {
		assert.Nil(t, deriveNumericValue(freeText, "37.2"),
			"non-numeric parameters never get a numeric value")
	})
}

func TestParseObservationTimestamp(t *testing.T) {
	t.Run("Explicit Timestamp", func(t *testing.T) {
		parsed, err := parseObservationTimestamp("2026-01-10T08:30:00Z")

		assert.NoError(t, err)
		assert.Equal(t, time.Date(2026, time.January, 10, 8, 30, 0, 0, time.UTC), parsed)
	})

	t.Run("Empty Defaults To Now", func(t *testing.T) {
		before := time.Now()
		parsed, err := parseObservationTimestamp("")

		assert.NoError(t, err)
		assert.False(t, parsed.Before(before))
	})

	t.Run("Invalid Format", func(t *testing.T) {
		_, err := parseObservationTimestamp("10.01.2026 08:30")

		assert.Error(t, err)
	})
}
