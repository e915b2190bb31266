package queries

const (
	GetAllParameterCodes = `
		SELECT code, name, unit, description, is_numeric
		FROM parameter_codes
		ORDER BY name
	`

	GetParameterCodeByCode = `
		SELECT code, name, unit, description, is_numeric
		FROM parameter_codes
		WHERE code = $1
	`
)
