package models

import "time"

// Session is the derived view of the currently authenticated user.
// Exactly one session exists at a time; setting a new one overwrites the
// previous record in both storage tiers.
type Session struct {
	ID       int64  `json:"id"`
	Username string `json:"username"`
	Email    string `json:"email"`

	// IsLoggedIn is always true while the record exists. The flag is
	// redundant but kept for compatibility with the original layout.
	IsLoggedIn bool `json:"isLoggedIn"`

	LoginTime  time.Time `json:"loginTime"`
	RememberMe bool      `json:"rememberMe"`

	// ExpiresAt is nil for remember-me sessions, otherwise
	// LoginTime + the configured TTL.
	ExpiresAt *time.Time `json:"expiresAt"`
}
