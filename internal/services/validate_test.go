package services

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/developerekene/task-tracker-main/internal/common"
)

func TestValidateEmail(t *testing.T) {
	valid := []string{
		"jane.doe@example.com",
		"j+filter@sub.domain.co",
		"UPPER@EXAMPLE.ORG",
		"  padded@example.com  ",
	}
	for _, email := range valid {
		assert.NoError(t, ValidateEmail(email), email)
	}

	invalid := []string{
		"",
		"plainaddress",
		"@example.com",
		"jane@",
		"jane@example",
		"jane doe@example.com",
	}
	for _, email := range invalid {
		assert.ErrorIs(t, ValidateEmail(email), common.ErrInvalidEmail, email)
	}
}

func TestValidatePassword(t *testing.T) {
	assert.NoError(t, ValidatePassword("Sup3rSecret"))
	assert.NoError(t, ValidatePassword("aB3aB3aB"))

	weak := []string{
		"",
		"Ab1",
		"alllowercase1",
		"ALLUPPERCASE1",
		"NoDigitsHere",
		"12345678",
	}
	for _, pw := range weak {
		assert.ErrorIs(t, ValidatePassword(pw), common.ErrWeakPassword, pw)
	}
}
