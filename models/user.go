package models

import "time"

// User represents an account entity used for authentication.
type User struct {
	// UserID is the internal unique identifier of the user.
	UserID int64 `json:"id"`

	// Username is the unique login of the user.
	Username string `json:"username"`

	// Password holds the bcrypt hash of the user's password once the user
	// has been persisted. It is never serialized.
	Password string `json:"-"`

	// CreatedAt is the timestamp when the user account was created.
	CreatedAt time.Time `json:"created_at"`
}

// TableName returns the name of the database table
// associated with the User model.
func (u User) TableName() string {
	return "users"
}

// Credentials is the body accepted by the register and login endpoints.
type Credentials struct {
	Username string `json:"username"`
	Password string `json:"password"`
}
