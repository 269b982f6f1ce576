package cli

import (
	"errors"
	"regexp"
)

// Field-level validation happens entirely in the presentation layer, before
// any remote operation is invoked. The auth core never re-validates input
// shape.

var emailPattern = regexp.MustCompile(`^\S+@\S+\.\S+$`)

func validateName(name string) error {
	if name == "" {
		return errors.New("Name is required")
	}
	if len(name) < 2 {
		return errors.New("Name must be at least 2 characters")
	}
	return nil
}

func validateEmail(email string) error {
	if email == "" {
		return errors.New("Email is required")
	}
	if !emailPattern.MatchString(email) {
		return errors.New("Email is invalid")
	}
	return nil
}

func validatePassword(password []byte) error {
	if len(password) == 0 {
		return errors.New("Password is required")
	}
	if len(password) < 6 {
		return errors.New("Password must be at least 6 characters")
	}
	return nil
}

func validateConfirmation(password, confirmation []byte) error {
	if len(confirmation) == 0 {
		return errors.New("Please confirm your password")
	}
	if string(password) != string(confirmation) {
		return errors.New("Passwords do not match")
	}
	return nil
}
