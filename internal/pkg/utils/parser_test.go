package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseDecimalValue(t *testing.T) {
	t.Run("Comma Separator", func(t *testing.T) {
		parsed := ParseDecimalValue("36,6")

		assert.NotNil(t, parsed)
		assert.Equal(t, 36.6, *parsed, "comma should be treated as a decimal separator")
	})

	t.Run("Period Separator", func(t *testing.T) {
		parsed := ParseDecimalValue("7.5")

		assert.NotNil(t, parsed)
		assert.Equal(t, 7.5, *parsed)
	})

	t.Run("Plain Integer", func(t *testing.T) {
		parsed := ParseDecimalValue("120")

		assert.NotNil(t, parsed)
		assert.Equal(t, 120.0, *parsed)
	})

	t.Run("Surrounding Whitespace", func(t *testing.T) {
		parsed := ParseDecimalValue("  98,2  ")

		assert.NotNil(t, parsed)
		assert.Equal(t, 98.2, *parsed, "whitespace should be trimmed before parsing")
	})

	t.Run("Non Numeric Text", func(t *testing.T) {
		assert.Nil(t, ParseDecimalValue("elevated"), "free-text values carry no numeric shadow")
	})

	t.Run("Empty Value", func(t *testing.T) {
		assert.Nil(t, ParseDecimalValue(""))
		assert.Nil(t, ParseDecimalValue("   "))
	})

	t.Run("Multiple Commas", func(t *testing.T) {
		assert.Nil(t, ParseDecimalValue("1,234,5"), "ambiguous separators should not parse")
	})
}

func TestEscapeLikeTerm(t *testing.T) {
	t.Run("Percent Becomes Literal", func(t *testing.T) {
		assert.Equal(t, `\%`, EscapeLikeTerm("%"), "a bare % search must not list the whole catalog")
	})

	t.Run("Underscore Becomes Literal", func(t *testing.T) {
		assert.Equal(t, `E\_11`, EscapeLikeTerm("E_11"))
	})

	t.Run("Backslash Is Doubled First", func(t *testing.T) {
		assert.Equal(t, `\\\%`, EscapeLikeTerm(`\%`))
	})

	t.Run("Plain Term Untouched", func(t *testing.T) {
		assert.Equal(t, "diabetes", EscapeLikeTerm("diabetes"))
	})
}
