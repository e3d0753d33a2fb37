package utils

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/MKhiriev/go-todo-server/models"
	"github.com/golang-jwt/jwt/v5"
)

var (
	// ErrInvalidTokenParams is returned by GenerateJWTToken when one of the
	// required parameters is empty or zero.
	ErrInvalidTokenParams = errors.New("invalid params for generating JWT token")

	// ErrInvalidBearerToken is returned by ParseBearerToken for a header
	// that carries no usable token.
	ErrInvalidBearerToken = errors.New("invalid authorization header")
)

// GenerateJWTToken creates a signed HMAC-SHA256 JWT token.
//
// The token carries the standard claims iss (issuer), sub (userID as a
// decimal string), iat (now) and exp (now plus tokenDuration).
//
// Example usage:
//
//	token, err := utils.GenerateJWTToken("go-todo-server", 42, 24*time.Hour, "secret")
func GenerateJWTToken(issuer string, userID int64, tokenDuration time.Duration, signKey string) (models.Token, error) {
	if issuer == "" || tokenDuration == 0 || signKey == "" {
		return models.Token{}, ErrInvalidTokenParams
	}

	now := time.Now()
	claims := &jwt.RegisteredClaims{
		Issuer:    issuer,
		Subject:   strconv.FormatInt(userID, 10),
		ExpiresAt: jwt.NewNumericDate(now.Add(tokenDuration)),
		IssuedAt:  jwt.NewNumericDate(now),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	tokenString, err := token.SignedString([]byte(signKey))
	if err != nil {
		return models.Token{}, fmt.Errorf("error occurred during signing JWT token: %w", err)
	}

	return models.Token{Token: token, RegisteredClaims: *claims, SignedString: tokenString, UserID: userID}, nil
}

// ValidateAndParseJWTToken verifies the signature (HS256 only), the issuer
// and the expiry of tokenString and extracts the user id from its subject.
//
// Errors from the jwt library are wrapped, so callers can still match
// jwt.ErrTokenExpired and friends with errors.Is.
func ValidateAndParseJWTToken(tokenString, tokenSignKey, tokenIssuer string) (models.Token, error) {
	claims := &jwt.RegisteredClaims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (any, error) {
		return []byte(tokenSignKey), nil
	},
		jwt.WithIssuer(tokenIssuer),
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithExpirationRequired(),
	)
	if err != nil {
		return models.Token{}, fmt.Errorf("error occurred validating and parsing token: %w", err)
	}

	if claims.Subject == "" {
		return models.Token{}, errors.New("empty subject error")
	}

	parsed := models.Token{Token: token, RegisteredClaims: *claims, SignedString: tokenString}
	parsed.UserID, err = parsed.GetUserID()
	if err != nil {
		return models.Token{}, fmt.Errorf("error occurred during converting subject to user id: %w", err)
	}

	return parsed, nil
}

// ParseBearerToken extracts the token from an Authorization header value.
// Both "Bearer <token>" and a bare "<token>" are accepted.
func ParseBearerToken(authorizationHeader string) (string, error) {
	value := strings.TrimSpace(authorizationHeader)
	if value == "" {
		return "", ErrInvalidBearerToken
	}

	scheme, token, found := strings.Cut(value, " ")
	if !found {
		return value, nil
	}

	if !strings.EqualFold(scheme, "Bearer") {
		return "", ErrInvalidBearerToken
	}

	token = strings.TrimSpace(token)
	if token == "" || strings.Contains(token, " ") {
		return "", ErrInvalidBearerToken
	}

	return token, nil
}
