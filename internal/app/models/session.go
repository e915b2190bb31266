package models

import "time"

// Session is the JSON payload stored in redis under the session id. The
// refresh token is kept alongside so logout can revoke both at once.
type Session struct {
	SessionID    string    `json:"session_id"`
	UserID       int64     `json:"user_id"`
	Username     string    `json:"username"`
	RefreshToken string    `json:"refresh_token"`
	ExpiresAt    time.Time `json:"expires_at"`
}
