// Package services contains the façade between the view layer and the
// hosted backend: it translates UI intents into backend calls and
// reconciles results into the state container through an injected
// Dispatcher. Methods return structured errors and perform no user-facing
// notification themselves; the view layer decides how to surface outcomes.
package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/developerekene/task-tracker-main/internal/backend"
	"github.com/developerekene/task-tracker-main/internal/common"
	"github.com/developerekene/task-tracker-main/internal/logging"
	"github.com/developerekene/task-tracker-main/internal/models"
	"github.com/developerekene/task-tracker-main/internal/store"
)

// RegisterInput is the registration form payload.
type RegisterInput struct {
	FirstName       string
	LastName        string
	Email           string
	Password        string
	ConfirmPassword string
}

// AuthService owns the account lifecycle: registration, login, sign-out
// and password-reset dispatch.
type AuthService interface {
	Register(ctx context.Context, input RegisterInput) (*backend.Session, error)
	Login(ctx context.Context, email, password string) (*backend.Session, error)
	SignOut(ctx context.Context, s *backend.Session) error
	RequestPasswordReset(ctx context.Context, email string) error
}

type authService struct {
	client     backend.Client
	dispatcher store.Dispatcher
	log        logging.Logger
	now        func() time.Time
}

func NewAuthService(client backend.Client, dispatcher store.Dispatcher, log logging.Logger) AuthService {
	return &authService{client: client, dispatcher: dispatcher, log: log, now: time.Now}
}

// Register creates the account, sets the display name, writes the initial
// nested document, re-reads it to confirm the write, dispatches the
// confirmed profile and task list, and finally triggers the verification
// email. A document-write failure after account creation is not rolled
// back; the account simply has no document until the next attempt.
func (a *authService) Register(ctx context.Context, input RegisterInput) (*backend.Session, error) {
	if err := validateRegistration(input); err != nil {
		return nil, err
	}

	sess, err := a.client.CreateAccount(ctx, input.Email, input.Password)
	if err != nil {
		return nil, fmt.Errorf("creating account: %w", err)
	}

	displayName := input.FirstName + " " + input.LastName
	if err := a.client.UpdateDisplayName(ctx, sess, displayName); err != nil {
		return nil, fmt.Errorf("setting display name: %w", err)
	}
	sess.DisplayName = displayName

	doc := initialDocument(input, sess.UserID, a.now())
	if err := a.client.SetDocument(ctx, sess.UserID, doc); err != nil {
		return nil, fmt.Errorf("writing user document: %w", err)
	}

	confirmed, err := a.client.GetDocument(ctx, sess.UserID)
	if err != nil {
		if errors.Is(err, backend.ErrDocumentNotFound) {
			return nil, common.ErrUserInfoMissing
		}
		return nil, fmt.Errorf("confirming user document: %w", err)
	}

	a.dispatcher.Dispatch(store.SetUser{Patch: confirmed.User.PrimaryInformation.AsPatch()})
	a.dispatcher.Dispatch(store.SetTasks{Tasks: confirmed.User.Task.Tasks})
	a.dispatcher.Dispatch(store.SetSettings{Settings: confirmed.User.Settings})

	if err := a.client.SendVerificationEmail(ctx, sess); err != nil {
		return nil, fmt.Errorf("sending verification email: %w", err)
	}

	a.log.Info(ctx, "account registered", "userId", sess.UserID)
	return sess, nil
}

// Login authenticates and hydrates the state container from the remote
// document. Errors propagate to the caller so the view can keep the user
// off authenticated commands.
func (a *authService) Login(ctx context.Context, email, password string) (*backend.Session, error) {
	sess, err := a.client.SignIn(ctx, email, password)
	if err != nil {
		return nil, fmt.Errorf("signing in: %w", err)
	}

	doc, err := a.client.GetDocument(ctx, sess.UserID)
	if err != nil {
		if errors.Is(err, backend.ErrDocumentNotFound) {
			return nil, common.ErrUserInfoMissing
		}
		return nil, fmt.Errorf("loading user document: %w", err)
	}

	profile := doc.User.PrimaryInformation
	profile.IsLoggedIn = true

	a.dispatcher.Dispatch(store.SetUser{Patch: profile.AsPatch()})
	a.dispatcher.Dispatch(store.SetTasks{Tasks: doc.User.Task.Tasks})
	a.dispatcher.Dispatch(store.SetSettings{Settings: doc.User.Settings})

	a.log.Info(ctx, "login successful", "userId", sess.UserID)
	return sess, nil
}

// SignOut revokes the session, then resets the container to empty defaults.
// On provider failure the error is returned and state is left as it was.
func (a *authService) SignOut(ctx context.Context, s *backend.Session) error {
	if err := a.client.SignOut(ctx, s); err != nil {
		return fmt.Errorf("signing out: %w", err)
	}

	a.dispatcher.Dispatch(store.ResetUser{})
	a.dispatcher.Dispatch(store.SetTasks{Tasks: nil})
	a.dispatcher.Dispatch(store.SetSettings{Settings: models.DefaultSettings()})
	a.dispatcher.Dispatch(store.HideSidebar{})
	return nil
}

// RequestPasswordReset asks the provider to dispatch a reset email.
// Fire-and-forget: there is no cooldown or resend tracking.
func (a *authService) RequestPasswordReset(ctx context.Context, email string) error {
	if err := a.client.SendPasswordResetEmail(ctx, email); err != nil {
		return fmt.Errorf("sending password reset email: %w", err)
	}
	return nil
}

// initialDocument builds the nested record written at registration:
// profile, empty task list, empty notifications, default settings, and the
// registration timestamp block.
func initialDocument(input RegisterInput, userID string, now time.Time) *models.Document {
	doc := &models.Document{}
	doc.User.PrimaryInformation = models.UserState{
		FirstName:     input.FirstName,
		LastName:      input.LastName,
		Email:         input.Email,
		Initials:      models.Initials(input.FirstName, input.LastName),
		UniqueID:      userID,
		IsLoggedIn:    true,
		AgreedToTerms: true,
	}
	doc.User.Location = models.Location{CurrentDateTime: models.CurrentDateTime(now)}
	doc.User.Task = models.TaskSection{Tasks: []models.Task{}}
	doc.User.Notification = models.NotificationSection{Notifications: []models.Notification{}}
	doc.User.Settings = models.DefaultSettings()
	return doc
}
