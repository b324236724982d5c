package cli

import (
	"context"

	"github.com/developerekene/task-tracker-main/internal/common"
	"github.com/developerekene/task-tracker-main/internal/services"
)

// getSimpleText and getPassword are indirections used to facilitate testing.
// They point to interactive input helpers and can be swapped in tests.
var getSimpleText = GetSimpleText
var getPassword = GetPassword

// Register prompts for the registration form and attempts to create a new
// account via the AuthService. On success the session is kept and a
// verification email is already on its way.
func (a *App) Register(ctx context.Context) error {
	firstName, err := getSimpleText(a.reader, "First name", output)
	if err != nil {
		return err
	}
	lastName, err := getSimpleText(a.reader, "Last name", output)
	if err != nil {
		return err
	}
	email, err := getSimpleText(a.reader, "Email", output)
	if err != nil {
		return err
	}
	password, err := getPassword(output, "Enter password")
	if err != nil {
		return err
	}
	defer common.WipeByteArray(password)
	confirm, err := getPassword(output, "Confirm password")
	if err != nil {
		return err
	}
	defer common.WipeByteArray(confirm)

	sess, err := a.auth.Register(ctx, services.RegisterInput{
		FirstName:       firstName,
		LastName:        lastName,
		Email:           email,
		Password:        string(password),
		ConfirmPassword: string(confirm),
	})
	if err != nil {
		notifyError(err)
		return err
	}

	a.session = sess
	notifySuccess("account created, check your inbox for the verification email")
	return nil
}

// Login prompts for credentials and authenticates. On success the session
// is kept and the state container already holds the remote document.
func (a *App) Login(ctx context.Context) error {
	email, err := getSimpleText(a.reader, "Email", output)
	if err != nil {
		return err
	}
	password, err := getPassword(output, "Enter password")
	if err != nil {
		return err
	}
	defer common.WipeByteArray(password)

	sess, err := a.auth.Login(ctx, email, string(password))
	if err != nil {
		notifyError(err)
		return err
	}

	a.session = sess
	notifySuccess("signed in as " + email)
	return nil
}

// ForgotPassword asks for an email address and requests a reset mail.
func (a *App) ForgotPassword(ctx context.Context) error {
	email, err := getSimpleText(a.reader, "Email", output)
	if err != nil {
		return err
	}

	if err := a.auth.RequestPasswordReset(ctx, email); err != nil {
		notifyError(err)
		return err
	}

	notifySuccess("password reset email sent to " + email)
	return nil
}

// Logout revokes the session and drops the local profile. The session is
// kept when the backend refuses, so the user can retry.
func (a *App) Logout(ctx context.Context) error {
	if err := a.auth.SignOut(ctx, a.session); err != nil {
		notifyError(err)
		return err
	}

	a.session = nil
	notifySuccess("signed out")
	return nil
}
