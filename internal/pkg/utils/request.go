package utils

import (
	"strconv"

	"clinregistry-service/internal/pkg/exceptions"
)

func ParseIDParam(value, paramName string) (int64, error) {
	id, err := strconv.ParseInt(value, 10, 64)
	if err != nil || id <= 0 {
		return 0, exceptions.ErrURLParamIDValidation(err, paramName)
	}
	return id, nil
}

func ParseIntQueryParam(value string) (int, error) {
	parsed, err := strconv.Atoi(value)
	if err != nil {
		return 0, exceptions.ErrCannotParseInteger(err)
	}
	return parsed, nil
}

// OptionalString maps an empty form or query value to nil so the store
// writes NULL instead of an empty string.
func OptionalString(value string) *string {
	if value == "" {
		return nil
	}
	return &value
}
