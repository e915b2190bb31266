package utils

import (
	"strconv"
	"strings"
)

// ParseDecimalValue normalizes a comma decimal separator to a period and
// parses the result as a float. A nil return means the raw value carries no
// usable number.
func ParseDecimalValue(raw string) *float64 {
	trimmed := strings.TrimSpace(raw)
	if trimmed == "" {
		return nil
	}
	normalized := strings.ReplaceAll(trimmed, ",", ".")
	parsed, err := strconv.ParseFloat(normalized, 64)
	if err != nil {
		return nil
	}
	return &parsed
}

var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

// EscapeLikeTerm neutralizes LIKE metacharacters so user input matches
// literally inside an ILIKE pattern with ESCAPE '\'.
func EscapeLikeTerm(term string) string {
	return likeEscaper.Replace(term)
}
