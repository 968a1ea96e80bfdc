package services

import (
	"errors"
	"net/mail"
	"strings"
)

var (
	ErrAuthCredentialsInvalid = errors.New("auth credentials invalid")
	ErrSignupNameRequired     = errors.New("signup name required")
	ErrPasswordTooShort       = errors.New("password too short")
)

// minPasswordLength matches the signup contract: eight characters or more.
const minPasswordLength = 8

func NormalizeAuthEmail(raw string) string {
	email := strings.ToLower(strings.TrimSpace(raw))
	if email == "" {
		return ""
	}
	if _, err := mail.ParseAddress(email); err != nil {
		return ""
	}
	return email
}

func NormalizeCredentialsInput(emailRaw string, passwordRaw string) (string, string, error) {
	email := NormalizeAuthEmail(emailRaw)
	password := strings.TrimSpace(passwordRaw)
	if email == "" || password == "" {
		return "", "", ErrAuthCredentialsInvalid
	}
	return email, password, nil
}

// ValidateSignupInput normalizes and checks the full signup triple, returning
// the cleaned values alongside per-field errors for the 400 response body.
func ValidateSignupInput(nameRaw string, emailRaw string, passwordRaw string) (string, string, string, map[string]string) {
	fieldErrors := make(map[string]string)

	name := strings.TrimSpace(nameRaw)
	if name == "" {
		fieldErrors["name"] = "name is required"
	}

	email := NormalizeAuthEmail(emailRaw)
	if email == "" {
		fieldErrors["email"] = "valid email is required"
	}

	password := strings.TrimSpace(passwordRaw)
	if len([]rune(password)) < minPasswordLength {
		fieldErrors["password"] = "password must be at least 8 characters"
	}

	if len(fieldErrors) > 0 {
		return "", "", "", fieldErrors
	}
	return name, email, password, nil
}
