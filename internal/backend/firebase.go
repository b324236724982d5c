package backend

import (
	"context"
	"fmt"

	"cloud.google.com/go/firestore"
	firebase "firebase.google.com/go"
	fbauth "firebase.google.com/go/auth"
	"google.golang.org/api/option"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"github.com/developerekene/task-tracker-main/internal/logging"
	"github.com/developerekene/task-tracker-main/internal/models"
)

// usersCollection is the single top-level collection holding one document
// per account, keyed by the provider-assigned user id.
const usersCollection = "database"

// taskArrayPath addresses the embedded task list inside the user document.
const taskArrayPath = "user.task.tasks"

// Config carries the project coordinates the Firebase client needs.
type Config struct {
	ProjectID       string
	APIKey          string
	CredentialsFile string
}

// FirebaseClient implements Client against Firebase: accounts through the
// Identity Toolkit REST surface, documents through Cloud Firestore, and
// sign-out through the admin SDK's refresh-token revocation.
type FirebaseClient struct {
	fs       *firestore.Client
	auth     *fbauth.Client
	identity *identityClient
	log      logging.Logger
}

func NewFirebaseClient(ctx context.Context, cfg Config, log logging.Logger) (*FirebaseClient, error) {
	var opts []option.ClientOption
	if cfg.CredentialsFile != "" {
		opts = append(opts, option.WithCredentialsFile(cfg.CredentialsFile))
	}

	app, err := firebase.NewApp(ctx, &firebase.Config{ProjectID: cfg.ProjectID}, opts...)
	if err != nil {
		return nil, fmt.Errorf("initializing firebase app: %w", err)
	}

	fs, err := app.Firestore(ctx)
	if err != nil {
		return nil, fmt.Errorf("initializing firestore client: %w", err)
	}

	authClient, err := app.Auth(ctx)
	if err != nil {
		return nil, fmt.Errorf("initializing auth client: %w", err)
	}

	return &FirebaseClient{
		fs:       fs,
		auth:     authClient,
		identity: newIdentityClient(cfg.APIKey),
		log:      log,
	}, nil
}

func (c *FirebaseClient) CreateAccount(ctx context.Context, email, password string) (*Session, error) {
	return c.identity.signUp(ctx, email, password)
}

func (c *FirebaseClient) SignIn(ctx context.Context, email, password string) (*Session, error) {
	return c.identity.signInWithPassword(ctx, email, password)
}

// SignOut revokes the account's refresh tokens; the caller drops the
// session afterwards.
func (c *FirebaseClient) SignOut(ctx context.Context, s *Session) error {
	if s == nil {
		return ErrUnauthorized
	}
	if err := c.auth.RevokeRefreshTokens(ctx, s.UserID); err != nil {
		return fmt.Errorf("revoking session: %w", err)
	}
	return nil
}

func (c *FirebaseClient) UpdateDisplayName(ctx context.Context, s *Session, displayName string) error {
	if s == nil {
		return ErrUnauthorized
	}
	return c.identity.updateDisplayName(ctx, s.IDToken, displayName)
}

func (c *FirebaseClient) SendVerificationEmail(ctx context.Context, s *Session) error {
	if s == nil {
		return ErrUnauthorized
	}
	return c.identity.sendOobCode(ctx, map[string]any{
		"requestType": "VERIFY_EMAIL",
		"idToken":     s.IDToken,
	})
}

func (c *FirebaseClient) SendPasswordResetEmail(ctx context.Context, email string) error {
	return c.identity.sendOobCode(ctx, map[string]any{
		"requestType": "PASSWORD_RESET",
		"email":       email,
	})
}

func (c *FirebaseClient) GetDocument(ctx context.Context, userID string) (*models.Document, error) {
	snap, err := c.fs.Collection(usersCollection).Doc(userID).Get(ctx)
	if err != nil {
		return nil, mapFirestoreErr("get document", err)
	}

	var doc models.Document
	if err := snap.DataTo(&doc); err != nil {
		return nil, fmt.Errorf("parsing document: %w", err)
	}
	return &doc, nil
}

func (c *FirebaseClient) SetDocument(ctx context.Context, userID string, doc *models.Document) error {
	if _, err := c.fs.Collection(usersCollection).Doc(userID).Set(ctx, doc); err != nil {
		return mapFirestoreErr("set document", err)
	}
	return nil
}

func (c *FirebaseClient) UpdateDocumentFields(ctx context.Context, userID string, fields map[string]any) error {
	updates := make([]firestore.Update, 0, len(fields))
	for path, value := range fields {
		updates = append(updates, firestore.Update{Path: path, Value: value})
	}

	if _, err := c.fs.Collection(usersCollection).Doc(userID).Update(ctx, updates); err != nil {
		return mapFirestoreErr("update document fields", err)
	}
	return nil
}

// AppendTask adds the task with the store's atomic array-union. Ordering
// against concurrent appends is whatever the provider guarantees.
func (c *FirebaseClient) AppendTask(ctx context.Context, userID string, task models.Task) error {
	_, err := c.fs.Collection(usersCollection).Doc(userID).Update(ctx, []firestore.Update{
		{Path: taskArrayPath, Value: firestore.ArrayUnion(task)},
	})
	if err != nil {
		return mapFirestoreErr("append task", err)
	}
	return nil
}

func (c *FirebaseClient) Close() error {
	return c.fs.Close()
}

// mapFirestoreErr translates provider status codes into the package
// sentinels callers match on.
func mapFirestoreErr(op string, err error) error {
	switch status.Code(err) {
	case codes.NotFound:
		return ErrDocumentNotFound
	case codes.Unavailable, codes.DeadlineExceeded:
		return fmt.Errorf("%s: %w", op, ErrUnavailable)
	case codes.Unauthenticated, codes.PermissionDenied:
		return fmt.Errorf("%s: %w", op, ErrUnauthorized)
	default:
		return fmt.Errorf("%s: %w", op, err)
	}
}
