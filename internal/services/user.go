package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"golang.org/x/crypto/bcrypt"

	"github.com/developerekene/task-tracker-main/internal/backend"
	"github.com/developerekene/task-tracker-main/internal/common"
	"github.com/developerekene/task-tracker-main/internal/logging"
	"github.com/developerekene/task-tracker-main/internal/models"
	"github.com/developerekene/task-tracker-main/internal/store"
)

const (
	primaryInfoPrefix = "user.primaryInformation."
	settingsPrefix    = "user.settings."
)

// UserService updates the profile and settings sections of the signed-in
// user's document, keeping the state container in step.
type UserService interface {
	UpdatePrimaryInformation(ctx context.Context, s *backend.Session, patch models.UserPatch) error
	UpdateSettings(ctx context.Context, s *backend.Session, patch models.SettingsPatch) error
}

type userService struct {
	client     backend.Client
	dispatcher store.Dispatcher
	log        logging.Logger
	now        func() time.Time
}

func NewUserService(client backend.Client, dispatcher store.Dispatcher, log logging.Logger) UserService {
	return &userService{client: client, dispatcher: dispatcher, log: log, now: time.Now}
}

// UpdatePrimaryInformation writes the changed profile fields remotely, then
// merges the same patch into the local state. A changed first or last name
// recomputes the initials; a security answer is hashed before it leaves the
// process.
func (u *userService) UpdatePrimaryInformation(ctx context.Context, s *backend.Session, patch models.UserPatch) error {
	if s == nil {
		return common.ErrNotSignedIn
	}

	if patch.SecurityAnswer != nil && *patch.SecurityAnswer != "" {
		hashed, err := bcrypt.GenerateFromPassword([]byte(*patch.SecurityAnswer), bcrypt.DefaultCost)
		if err != nil {
			return fmt.Errorf("hashing security answer: %w", err)
		}
		patch.SecurityAnswer = models.StringPtr(string(hashed))
	}

	if patch.FirstName != nil || patch.LastName != nil {
		doc, err := u.client.GetDocument(ctx, s.UserID)
		if err != nil {
			return u.mapDocErr(err)
		}
		merged := patch.Apply(doc.User.PrimaryInformation)
		patch.Initials = models.StringPtr(models.Initials(merged.FirstName, merged.LastName))
	}

	fields := make(map[string]any)
	for key, value := range patch.Fields() {
		fields[primaryInfoPrefix+key] = value
	}
	if len(fields) == 0 {
		return nil
	}

	if err := u.client.UpdateDocumentFields(ctx, s.UserID, fields); err != nil {
		return u.mapDocErr(err)
	}

	u.dispatcher.Dispatch(store.SetUser{Patch: patch})
	u.log.Info(ctx, "profile updated", "userId", s.UserID)
	return nil
}

// UpdateSettings writes the changed settings fields and merges them into
// the local state.
func (u *userService) UpdateSettings(ctx context.Context, s *backend.Session, patch models.SettingsPatch) error {
	if s == nil {
		return common.ErrNotSignedIn
	}

	fields := make(map[string]any)
	for key, value := range patch.Fields() {
		fields[settingsPrefix+key] = value
	}
	if len(fields) == 0 {
		return nil
	}

	if err := u.client.UpdateDocumentFields(ctx, s.UserID, fields); err != nil {
		return u.mapDocErr(err)
	}

	doc, err := u.client.GetDocument(ctx, s.UserID)
	if err != nil {
		return u.mapDocErr(err)
	}
	u.dispatcher.Dispatch(store.SetSettings{Settings: doc.User.Settings})
	return nil
}

func (u *userService) mapDocErr(err error) error {
	if errors.Is(err, backend.ErrDocumentNotFound) {
		return common.ErrUserInfoMissing
	}
	return err
}
