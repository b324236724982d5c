package services

import (
	"regexp"
	"strings"
	"unicode"

	"github.com/developerekene/task-tracker-main/internal/common"
)

var emailPattern = regexp.MustCompile(`^[a-zA-Z0-9._%+\-]+@[a-zA-Z0-9.\-]+\.[a-zA-Z]{2,}$`)

// ValidateEmail checks the address shape only; deliverability is the
// provider's problem.
func ValidateEmail(email string) error {
	if !emailPattern.MatchString(strings.TrimSpace(email)) {
		return common.ErrInvalidEmail
	}
	return nil
}

// ValidatePassword requires at least 8 characters with an upper-case
// letter, a lower-case letter and a digit.
func ValidatePassword(password string) error {
	if len(password) < 8 {
		return common.ErrWeakPassword
	}
	var upper, lower, digit bool
	for _, r := range password {
		switch {
		case unicode.IsUpper(r):
			upper = true
		case unicode.IsLower(r):
			lower = true
		case unicode.IsDigit(r):
			digit = true
		}
	}
	if !upper || !lower || !digit {
		return common.ErrWeakPassword
	}
	return nil
}

func validateRegistration(input RegisterInput) error {
	if err := ValidateEmail(input.Email); err != nil {
		return err
	}
	if err := ValidatePassword(input.Password); err != nil {
		return err
	}
	if input.Password != input.ConfirmPassword {
		return common.ErrPasswordMismatch
	}
	return nil
}
