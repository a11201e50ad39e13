package models

import "time"

// User represents an account entity used for authentication and authorization.
// It contains identity attributes and credential-related data.
// Sensitive fields must never be exposed outside trusted boundaries.
type User struct {
	// UserID is the internal unique identifier of the user.
	// It is not exposed via JSON and is used only at the persistence layer.
	UserID int64 `json:"-"`

	// Username is the unique login identifier used during authentication.
	Username string `json:"username"`

	// Email is the contact address supplied at registration.
	// Uniqueness is not enforced at the storage layer; only the username is.
	Email string `json:"email"`

	// Password carries the plaintext password of an inbound register or
	// login request. It is never persisted: the auth service replaces it
	// with a bcrypt hash before the record reaches the repository.
	Password string `json:"password,omitempty"`

	// PasswordHash is the bcrypt digest stored in the database.
	// Never serialized.
	PasswordHash string `json:"-"`

	// CreatedAt is the timestamp when the user account was created.
	CreatedAt time.Time `json:"-"`
}

// TableName returns the name of the database table
// associated with the User model.
func (u User) TableName() string {
	return "users"
}
