package backend

import (
	"context"
	"encoding/json"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/developerekene/task-tracker-main/internal/models"
)

// Memory is an in-process Client for tests and offline development. It
// mimics the provider's observable behavior: duplicate-email rejection,
// credential checks, per-account documents with atomic task appends.
//
// The exported hook fields let tests orchestrate interleavings; they are
// invoked outside the internal lock.
type Memory struct {
	mu       sync.Mutex
	accounts map[string]*memAccount // keyed by email
	docs     map[string]*models.Document

	// VerificationEmails and ResetEmails record dispatched mail, in order.
	VerificationEmails []string
	ResetEmails        []string

	// OnGetDocument, when set, runs after a document snapshot is taken and
	// before it is returned.
	OnGetDocument func()

	// Err, when set, is returned by every remote call. Simulates an
	// unreachable backend.
	Err error
}

type memAccount struct {
	userID      string
	email       string
	password    string
	displayName string
	revoked     bool
}

func NewMemory() *Memory {
	return &Memory{
		accounts: make(map[string]*memAccount),
		docs:     make(map[string]*models.Document),
	}
}

func (m *Memory) CreateAccount(_ context.Context, email, password string) (*Session, error) {
	if m.Err != nil {
		return nil, m.Err
	}
	m.mu.Lock()
	defer m.mu.Unlock()

	if _, exists := m.accounts[email]; exists {
		return nil, &AuthError{Code: "EMAIL_EXISTS"}
	}

	acc := &memAccount{userID: uuid.NewString(), email: email, password: password}
	m.accounts[email] = acc
	return m.sessionLocked(acc), nil
}

func (m *Memory) SignIn(_ context.Context, email, password string) (*Session, error) {
	if m.Err != nil {
		return nil, m.Err
	}
	m.mu.Lock()
	defer m.mu.Unlock()

	acc, ok := m.accounts[email]
	if !ok {
		return nil, &AuthError{Code: "EMAIL_NOT_FOUND"}
	}
	if acc.password != password {
		return nil, &AuthError{Code: "INVALID_PASSWORD"}
	}
	acc.revoked = false
	return m.sessionLocked(acc), nil
}

func (m *Memory) SignOut(_ context.Context, s *Session) error {
	if m.Err != nil {
		return m.Err
	}
	if s == nil {
		return ErrUnauthorized
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	if acc, ok := m.accounts[s.Email]; ok {
		acc.revoked = true
	}
	return nil
}

func (m *Memory) UpdateDisplayName(_ context.Context, s *Session, displayName string) error {
	if m.Err != nil {
		return m.Err
	}
	if s == nil {
		return ErrUnauthorized
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	if acc, ok := m.accounts[s.Email]; ok {
		acc.displayName = displayName
	}
	return nil
}

func (m *Memory) SendVerificationEmail(_ context.Context, s *Session) error {
	if m.Err != nil {
		return m.Err
	}
	if s == nil {
		return ErrUnauthorized
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	m.VerificationEmails = append(m.VerificationEmails, s.Email)
	return nil
}

func (m *Memory) SendPasswordResetEmail(_ context.Context, email string) error {
	if m.Err != nil {
		return m.Err
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	m.ResetEmails = append(m.ResetEmails, email)
	return nil
}

func (m *Memory) GetDocument(_ context.Context, userID string) (*models.Document, error) {
	if m.Err != nil {
		return nil, m.Err
	}
	m.mu.Lock()
	doc, ok := m.docs[userID]
	var snapshot *models.Document
	if ok {
		snapshot = cloneDocument(doc)
	}
	m.mu.Unlock()

	if !ok {
		return nil, ErrDocumentNotFound
	}
	if m.OnGetDocument != nil {
		m.OnGetDocument()
	}
	return snapshot, nil
}

func (m *Memory) SetDocument(_ context.Context, userID string, doc *models.Document) error {
	if m.Err != nil {
		return m.Err
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	m.docs[userID] = cloneDocument(doc)
	return nil
}

func (m *Memory) UpdateDocumentFields(_ context.Context, userID string, fields map[string]any) error {
	if m.Err != nil {
		return m.Err
	}
	m.mu.Lock()
	defer m.mu.Unlock()

	doc, ok := m.docs[userID]
	if !ok {
		return ErrDocumentNotFound
	}
	for path, value := range fields {
		applyField(doc, path, value)
	}
	return nil
}

func (m *Memory) AppendTask(_ context.Context, userID string, task models.Task) error {
	if m.Err != nil {
		return m.Err
	}
	m.mu.Lock()
	defer m.mu.Unlock()

	doc, ok := m.docs[userID]
	if !ok {
		return ErrDocumentNotFound
	}
	doc.User.Task.Tasks = append(doc.User.Task.Tasks, task)
	return nil
}

func (m *Memory) Close() error { return nil }

// Document returns a copy of the stored document, for assertions.
func (m *Memory) Document(userID string) *models.Document {
	m.mu.Lock()
	defer m.mu.Unlock()
	doc, ok := m.docs[userID]
	if !ok {
		return nil
	}
	return cloneDocument(doc)
}

func (m *Memory) sessionLocked(acc *memAccount) *Session {
	return &Session{
		UserID:       acc.userID,
		Email:        acc.email,
		DisplayName:  acc.displayName,
		IDToken:      "mem-token-" + acc.userID,
		RefreshToken: "mem-refresh-" + acc.userID,
		ExpiresAt:    time.Now().Add(time.Hour),
	}
}

func cloneDocument(doc *models.Document) *models.Document {
	raw, err := json.Marshal(doc)
	if err != nil {
		return nil
	}
	var out models.Document
	if err := json.Unmarshal(raw, &out); err != nil {
		return nil
	}
	return &out
}

// applyField implements the subset of dotted-path updates the façade uses:
// the task array, primaryInformation fields and settings fields.
func applyField(doc *models.Document, path string, value any) {
	switch {
	case path == "user.task.tasks":
		if tasks, ok := value.([]models.Task); ok {
			doc.User.Task.Tasks = tasks
		}
	case strings.HasPrefix(path, "user.primaryInformation."):
		setByJSONKey(&doc.User.PrimaryInformation, strings.TrimPrefix(path, "user.primaryInformation."), value)
	case strings.HasPrefix(path, "user.settings."):
		setByJSONKey(&doc.User.Settings, strings.TrimPrefix(path, "user.settings."), value)
	}
}

// setByJSONKey patches one field of target through its JSON representation,
// matching the key names the real store uses.
func setByJSONKey(target any, key string, value any) {
	raw, err := json.Marshal(target)
	if err != nil {
		return
	}
	var m map[string]any
	if err := json.Unmarshal(raw, &m); err != nil {
		return
	}
	m[key] = value
	patched, err := json.Marshal(m)
	if err != nil {
		return
	}
	_ = json.Unmarshal(patched, target)
}
