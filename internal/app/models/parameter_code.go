package models

// ParameterCode is a catalog entry for a measurable clinical indicator.
// IsNumeric gates the numeric derivation on observation writes.
type ParameterCode struct {
	Code        string
	Name        string
	Unit        *string
	Description *string
	IsNumeric   bool
}
