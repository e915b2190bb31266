package responses

type ParameterCode struct {
	Code        string  `json:"code"`
	Name        string  `json:"name"`
	Unit        *string `json:"unit,omitempty"`
	Description *string `json:"description,omitempty"`
	IsNumeric   bool    `json:"is_numeric"`
}
