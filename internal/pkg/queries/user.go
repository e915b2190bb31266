package queries

const (
	GetUserByUsername = `
		SELECT id, username, password_hash, full_name, created_at
		FROM users
		WHERE username = $1
	`
)
