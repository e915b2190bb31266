package utils

import (
	"clinregistry-service/internal/pkg/constvars"
	"clinregistry-service/internal/pkg/exceptions"
	"time"
)

func ParseDate(value string) (time.Time, error) {
	parsed, err := time.Parse(constvars.DateOnlyFormat, value)
	if err != nil {
		return time.Time{}, exceptions.ErrCannotParseDate(err)
	}
	return parsed, nil
}

func Today() time.Time {
	now := time.Now()
	return time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
}

// LatestBirthDateForMinAge returns the latest date of birth a patient may
// have while still being at least minAge years old on the given day. The
// year length is approximated as 365.25 days with the fractional remainder
// dropped, so boundary behavior follows that approximation rather than
// calendar arithmetic.
func LatestBirthDateForMinAge(today time.Time, minAge int) time.Time {
	days := int(float64(minAge) * 365.25)
	return today.AddDate(0, 0, -days)
}

// EarliestBirthDateForMaxAge returns the earliest admissible date of birth
// for a patient whose age must not exceed maxAge. The extra day keeps a
// patient who turned maxAge+1 yesterday inside the range.
func EarliestBirthDateForMaxAge(today time.Time, maxAge int) time.Time {
	days := int(float64(maxAge+1) * 365.25)
	return today.AddDate(0, 0, -days+1)
}
