package models

import (
	"fmt"
	"strconv"

	"github.com/golang-jwt/jwt/v5"
)

// Token is a signed session token issued on register and login and checked
// on every /todos request.
//
// The subject claim holds the id of the user the token was issued to.
type Token struct {
	*jwt.Token `json:"-"`
	jwt.RegisteredClaims

	// SignedString is the compact header.payload.signature form sent to the
	// browser in the response body and the Authorization header.
	SignedString string `json:"-"`

	// UserID is the parsed subject claim; the auth middleware scopes the
	// todo routes by it.
	UserID int64 `json:"-"`
}

// GetUserID parses the subject claim as the owner's user id.
func (t *Token) GetUserID() (int64, error) {
	subject, err := t.GetSubject()
	if err != nil {
		return 0, fmt.Errorf("error reading token subject: %w", err)
	}

	userID, err := strconv.ParseInt(subject, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("token subject %q is not a user id: %w", subject, err)
	}

	return userID, nil
}

func (t *Token) String() string {
	return t.SignedString
}
