// Package backend wraps the hosted identity provider and document store the
// task tracker delegates to. The Client interface is the only surface the
// service layer sees; the production implementation talks to Firebase
// (Identity Toolkit for accounts, Cloud Firestore for documents) and Memory
// is an in-process stand-in for tests.
package backend

import (
	"context"
	"errors"
	"time"

	"github.com/developerekene/task-tracker-main/internal/models"
)

var (
	// ErrDocumentNotFound is returned when no document exists for the
	// account id.
	ErrDocumentNotFound = errors.New("document not found")

	// ErrUnauthorized is returned when the session is missing or rejected.
	ErrUnauthorized = errors.New("unauthorized")

	// ErrUnavailable is returned when the backend cannot be reached.
	ErrUnavailable = errors.New("backend unavailable")
)

// Session identifies an authenticated account. The provider assigns the
// opaque user id at registration; tokens are carried on subsequent calls.
type Session struct {
	UserID        string
	Email         string
	DisplayName   string
	IDToken       string
	RefreshToken  string
	ExpiresAt     time.Time
	EmailVerified bool
}

// Client is the external identity/document backend.
//
// Document operations address one document per account, keyed by the opaque
// user id. UpdateDocumentFields takes dot-separated field paths relative to
// the document root; AppendTask uses the store's atomic array-union on the
// embedded task list.
type Client interface {
	CreateAccount(ctx context.Context, email, password string) (*Session, error)
	SignIn(ctx context.Context, email, password string) (*Session, error)
	SignOut(ctx context.Context, s *Session) error
	UpdateDisplayName(ctx context.Context, s *Session, displayName string) error
	SendVerificationEmail(ctx context.Context, s *Session) error
	SendPasswordResetEmail(ctx context.Context, email string) error

	GetDocument(ctx context.Context, userID string) (*models.Document, error)
	SetDocument(ctx context.Context, userID string, doc *models.Document) error
	UpdateDocumentFields(ctx context.Context, userID string, fields map[string]any) error
	AppendTask(ctx context.Context, userID string, task models.Task) error

	Close() error
}
