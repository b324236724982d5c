// Package store is the process-wide state container: independent reducers
// for the user profile, the task collection, the user settings and the
// transient sidebar flag, combined behind a single dispatch entry point.
// The only mutation path is a dispatched action; views read through copying
// accessors and re-render on subscriber callbacks.
//
// The user and task slices are mirrored to the local snapshot store on
// every corresponding reducer run, and hydrated once at startup.
package store

import (
	"context"
	"encoding/json"
	"sync"

	"github.com/developerekene/task-tracker-main/internal/logging"
	"github.com/developerekene/task-tracker-main/internal/models"
	"github.com/developerekene/task-tracker-main/internal/repositories/snapshots"
)

// Dispatcher is the narrow port handed to the service layer, so business
// logic can push results into UI-observable state without importing a
// process-wide singleton.
type Dispatcher interface {
	Dispatch(a Action)
}

type Store struct {
	mu       sync.RWMutex
	user     models.UserState
	tasks    []models.Task
	settings models.Settings
	sidebar  bool

	mirror snapshots.Repository
	log    logging.Logger

	subMu sync.Mutex
	subs  []func()
}

// New builds an empty store. mirror may be nil, in which case nothing is
// persisted locally.
func New(mirror snapshots.Repository, log logging.Logger) *Store {
	return &Store{
		user:     models.DefaultUserState(),
		tasks:    []models.Task{},
		settings: models.DefaultSettings(),
		mirror:   mirror,
		log:      log,
	}
}

// Hydrate loads the mirrored user and task snapshots written by a previous
// run. Called once at startup, before any remote call. A missing or
// unreadable snapshot leaves the slice at its default; the mirror is a
// best-effort cache, not a source of truth.
func (s *Store) Hydrate(ctx context.Context) {
	if s.mirror == nil {
		return
	}

	if raw, err := s.mirror.Get(ctx, snapshots.KeyUser); err != nil {
		s.logWarn(ctx, "failed to read user snapshot", "error", err)
	} else if raw != nil {
		var u models.UserState
		if err := json.Unmarshal(raw, &u); err != nil {
			s.logWarn(ctx, "discarding unreadable user snapshot", "error", err)
		} else {
			s.mu.Lock()
			s.user = u
			s.mu.Unlock()
		}
	}

	if raw, err := s.mirror.Get(ctx, snapshots.KeyTasks); err != nil {
		s.logWarn(ctx, "failed to read tasks snapshot", "error", err)
	} else if raw != nil {
		var tasks []models.Task
		if err := json.Unmarshal(raw, &tasks); err != nil {
			s.logWarn(ctx, "discarding unreadable tasks snapshot", "error", err)
		} else {
			s.mu.Lock()
			s.tasks = tasks
			s.mu.Unlock()
		}
	}
}

// Dispatch runs the reducer owning the action, mirrors the affected slice,
// and notifies subscribers. Unknown actions are ignored.
func (s *Store) Dispatch(a Action) {
	s.mu.Lock()

	switch a.(type) {
	case SetUser, ResetUser:
		s.user = reduceUser(s.user, a)
		s.mirrorUser(a)
	case SetTasks, AddTask, UpdateTask, DeleteTask:
		s.tasks = reduceTasks(s.tasks, a)
		s.mirrorTasks()
	case SetSettings:
		s.settings = reduceSettings(s.settings, a)
	case ToggleSidebar, ShowSidebar, HideSidebar:
		s.sidebar = reduceSidebar(s.sidebar, a)
	}

	s.mu.Unlock()
	s.notify()
}

// User returns a copy of the profile slice.
func (s *Store) User() models.UserState {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.user
}

// Tasks returns a copy of the task slice.
func (s *Store) Tasks() []models.Task {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]models.Task, len(s.tasks))
	copy(out, s.tasks)
	return out
}

// Settings returns a copy of the settings slice.
func (s *Store) Settings() models.Settings {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.settings
}

// SidebarVisible reports the transient sidebar flag.
func (s *Store) SidebarVisible() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.sidebar
}

// IsLoggedIn reports whether a profile is loaded, the condition route
// guards check.
func (s *Store) IsLoggedIn() bool {
	return s.User().IsLoggedIn
}

// Subscribe registers fn to run synchronously after every dispatch.
func (s *Store) Subscribe(fn func()) {
	s.subMu.Lock()
	s.subs = append(s.subs, fn)
	s.subMu.Unlock()
}

func (s *Store) notify() {
	s.subMu.Lock()
	subs := make([]func(), len(s.subs))
	copy(subs, s.subs)
	s.subMu.Unlock()
	for _, fn := range subs {
		fn()
	}
}

// mirrorUser persists the profile slice; a reset wipes the whole mirror in
// one go, so a sign-out never leaves stale snapshots behind.
// Called with s.mu held.
func (s *Store) mirrorUser(a Action) {
	if s.mirror == nil {
		return
	}
	ctx := context.Background()
	if _, isReset := a.(ResetUser); isReset {
		if err := s.mirror.Clear(ctx); err != nil {
			s.logWarn(ctx, "failed to clear snapshot mirror", "error", err)
		}
		return
	}
	raw, err := json.Marshal(s.user)
	if err == nil {
		err = s.mirror.Set(ctx, snapshots.KeyUser, raw)
	}
	if err != nil {
		s.logWarn(ctx, "failed to write user snapshot", "error", err)
	}
}

// mirrorTasks persists the task slice. Called with s.mu held.
func (s *Store) mirrorTasks() {
	if s.mirror == nil {
		return
	}
	ctx := context.Background()
	raw, err := json.Marshal(s.tasks)
	if err == nil {
		err = s.mirror.Set(ctx, snapshots.KeyTasks, raw)
	}
	if err != nil {
		s.logWarn(ctx, "failed to write tasks snapshot", "error", err)
	}
}

func (s *Store) logWarn(ctx context.Context, msg string, args ...any) {
	if s.log != nil {
		s.log.Warn(ctx, msg, args...)
	}
}
