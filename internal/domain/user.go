package domain

import "time"

// User is an identity record keyed by email. The email is treated
// case-sensitively as the natural key. PasswordHash is a bcrypt hash; the
// plaintext secret is never stored.
type User struct {
	Email        string
	PasswordHash string
	Name         string
	Phone        string
	CreatedAt    time.Time
}

// Profile is the identity snapshot bound to a session at login or
// registration time. It does not track later changes to the User record.
type Profile struct {
	Email string `json:"email"`
	Name  string `json:"name"`
	Phone string `json:"phone"`
}

// Profile returns the session-facing snapshot of the user.
func (u User) Profile() Profile {
	return Profile{Email: u.Email, Name: u.Name, Phone: u.Phone}
}
