// Package cli is the interactive terminal front end: a REPL over the
// service façade, with the state container backing every view.
package cli

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/developerekene/task-tracker-main/internal/backend"
	"github.com/developerekene/task-tracker-main/internal/config"
	"github.com/developerekene/task-tracker-main/internal/logging"
	"github.com/developerekene/task-tracker-main/internal/repositories"
	"github.com/developerekene/task-tracker-main/internal/services"
	"github.com/developerekene/task-tracker-main/internal/store"
)

// App holds the wired components and the current session. All command
// handlers hang off it; the REPL drives them.
type App struct {
	config  *config.Config
	client  backend.Client
	auth    services.AuthService
	tasks   services.TaskService
	users   services.UserService
	store   *store.Store
	log     logging.Logger
	session *backend.Session
	reader  *bufio.Reader
	closers []func() error
}

// NewApp wires the full client: local SQLite mirror, remote backend,
// state container and services. The returned App owns the resources and
// releases them in Close.
func NewApp(ctx context.Context, cfg *config.Config) (*App, error) {
	log := logging.NewTextLogger(os.Stderr, parseLevel(cfg.LogLevel))

	db, mirror, err := repositories.InitDatabase(ctx, cfg.DBPath)
	if err != nil {
		return nil, fmt.Errorf("initializing local database: %w", err)
	}

	client, err := backend.NewFirebaseClient(ctx, backend.Config{
		ProjectID:       cfg.ProjectID,
		APIKey:          cfg.APIKey,
		CredentialsFile: cfg.CredentialsFile,
	}, log)
	if err != nil {
		db.Close()
		return nil, fmt.Errorf("connecting to backend: %w", err)
	}

	st := store.New(mirror, log)
	st.Hydrate(ctx)

	app := &App{
		config:  cfg,
		client:  client,
		auth:    services.NewAuthService(client, st, log),
		tasks:   services.NewTaskService(client, st, log),
		users:   services.NewUserService(client, st, log),
		store:   st,
		log:     log,
		reader:  bufio.NewReader(os.Stdin),
		closers: []func() error{client.Close, db.Close},
	}
	return app, nil
}

// Run starts the REPL on stdin and blocks until the user exits.
func (a *App) Run(ctx context.Context) {
	printlnFn("Task Tracker CLI (type 'help' for commands)")
	scanner := bufio.NewScanner(os.Stdin)
	runREPL(ctx, a, a.getStatus, scanner)
}

// Close releases the backend connection and the local database.
func (a *App) Close() error {
	var firstErr error
	for _, c := range a.closers {
		if err := c(); err != nil && firstErr == nil {
			firstErr = err
		}
	}
	return firstErr
}

func (a *App) isLoggedIn() bool {
	return a.session != nil
}

func (a *App) getStatus() string {
	parts := []string{}
	if a.session != nil {
		user := a.store.User()
		if user.Initials != "" {
			parts = append(parts, user.Initials)
		} else if a.session.Email != "" {
			parts = append(parts, a.session.Email)
		}
	}
	if a.store.SidebarVisible() {
		parts = append(parts, "sidebar")
	}
	if len(parts) == 0 {
		return ""
	}
	return fmt.Sprintf("(%s)", strings.Join(parts, " "))
}

func parseLevel(s string) slog.Level {
	switch strings.ToLower(s) {
	case "debug":
		return slog.LevelDebug
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

// output is the sink for prompts; tests can swap it.
var output io.Writer = os.Stdout
