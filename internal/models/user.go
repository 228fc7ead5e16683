package models

import "time"

// User is an account created at signup. Password is kept in plain text,
// which mirrors the local-storage format and is a known weakness.
type User struct {
	ID        string    `json:"id"`
	FirstName string    `json:"firstName"`
	LastName  string    `json:"lastName"`
	Email     string    `json:"email"`
	Password  string    `json:"password,omitempty"`
	CreatedAt time.Time `json:"createdAt,omitzero"`
}

// Profile is the current-user record: the account without credentials.
func (u User) Profile() User {
	return User{ID: u.ID, FirstName: u.FirstName, LastName: u.LastName, Email: u.Email}
}
