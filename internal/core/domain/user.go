package domain

import "time"

// User models a registered farmer account.
type User struct {
	ID           string    `json:"id"`
	Name         string    `json:"name"`
	Email        string    `json:"email"`
	Phone        string    `json:"phone,omitempty"`
	PasswordHash string    `json:"-"`
	CreatedAt    time.Time `json:"created_at"`
}

// SessionUser is the public projection of a user carried by a session.
type SessionUser struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
}

// Projection returns the identity fields exposed through sessions.
func (u *User) Projection() SessionUser {
	return SessionUser{ID: u.ID, Name: u.Name, Email: u.Email}
}
