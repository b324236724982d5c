package backend

import "strings"

// authErrorMessages maps the provider's error codes to the notification
// strings shown to the user. Unknown codes fall through to the raw code.
var authErrorMessages = map[string]string{
	"EMAIL_EXISTS":                "email is already registered",
	"EMAIL_NOT_FOUND":             "invalid email or password",
	"INVALID_PASSWORD":            "invalid email or password",
	"INVALID_LOGIN_CREDENTIALS":   "invalid email or password",
	"INVALID_EMAIL":               "invalid email address",
	"USER_DISABLED":               "this account has been disabled",
	"WEAK_PASSWORD":               "password is too weak",
	"TOO_MANY_ATTEMPTS_TRY_LATER": "too many attempts, try again later",
	"INVALID_ID_TOKEN":            "session expired, sign in again",
}

// AuthError carries the provider's error code for an account operation.
type AuthError struct {
	Code string
}

func (e *AuthError) Error() string {
	// Codes sometimes arrive suffixed with detail, e.g.
	// "WEAK_PASSWORD : Password should be at least 6 characters".
	code := strings.TrimSpace(strings.SplitN(e.Code, ":", 2)[0])
	if msg, ok := authErrorMessages[code]; ok {
		return msg
	}
	return e.Code
}
