// Package models defines the records persisted by the Anonsen client:
// users, posts, and the current session. JSON field names match the
// original persisted layout so existing data stays readable.
package models

import "time"

// User is an account record.
//
// Passwords are stored and compared verbatim (no hashing). That mirrors
// the original demo's behavior and keeps authentication byte-exact; it is
// not acceptable for anything beyond local demo data.
type User struct {
	// ID is assigned as count(existing users)+1 at creation and never
	// reused (users are never deleted).
	ID int64 `json:"id"`

	// Username and Email are unique case-insensitively and immutable
	// after registration.
	Username string `json:"username"`
	Email    string `json:"email"`

	Password string `json:"password"`

	// ProfilePicture is an opaque data-URI string, nil when unset.
	ProfilePicture *string `json:"profilePicture"`

	Bio string `json:"bio,omitempty"`

	// JoinDate is set once at registration.
	JoinDate time.Time `json:"joinDate"`

	IsVerified bool `json:"isVerified"`
}

// UserUpdate carries the mutable profile fields. ID, email, username and
// join date cannot be changed; a nil field is left untouched.
type UserUpdate struct {
	Bio            *string
	ProfilePicture *string
}
