package validators

import (
	"context"
	"strings"
	"unicode/utf8"

	"github.com/MKhiriev/go-todo-server/models"
)

const (
	// FieldUsername targets the login name of an account.
	FieldUsername = "username"

	// FieldPassword targets the plain-text password before hashing.
	FieldPassword = "password"
)

const (
	// MaxUsernameLength is the longest accepted username, in runes.
	MaxUsernameLength = 64

	// MaxPasswordBytes is the bcrypt input limit. Longer passwords would be
	// rejected by the hasher.
	MaxPasswordBytes = 72
)

// CredentialsValidator validates the register and login bodies.
type CredentialsValidator struct{}

// NewCredentialsValidator constructs a [CredentialsValidator].
func NewCredentialsValidator() Validator {
	return &CredentialsValidator{}
}

// Validate accepts models.Credentials or *models.Credentials. Default fields
// are username and password.
func (v *CredentialsValidator) Validate(ctx context.Context, obj any, fields ...string) error {
	switch value := obj.(type) {
	case models.Credentials:
		return v.validateCredentials(value, fields...)
	case *models.Credentials:
		if value == nil {
			return ErrUnsupportedType
		}
		return v.validateCredentials(*value, fields...)
	default:
		return ErrUnsupportedType
	}
}

func (v *CredentialsValidator) validateCredentials(credentials models.Credentials, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldUsername, FieldPassword}
	}

	for _, f := range fields {
		switch f {
		case FieldUsername:
			if strings.TrimSpace(credentials.Username) == "" {
				return ErrEmptyUsername
			}
			if utf8.RuneCountInString(credentials.Username) > MaxUsernameLength {
				return ErrUsernameTooLong
			}
		case FieldPassword:
			if credentials.Password == "" {
				return ErrEmptyPassword
			}
			if len(credentials.Password) > MaxPasswordBytes {
				return ErrPasswordTooLong
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}
