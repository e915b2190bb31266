package queries

const (
	SearchMKBCodes = `
		SELECT code, name
		FROM mkb_codes
		WHERE code ILIKE '%' || $1 || '%' ESCAPE '\' OR name ILIKE '%' || $1 || '%' ESCAPE '\'
		ORDER BY code
	`
)
