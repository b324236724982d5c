package cli

import (
	"bufio"
	"context"
	"io"
	"log/slog"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/developerekene/task-tracker-main/internal/backend"
	"github.com/developerekene/task-tracker-main/internal/logging"
	"github.com/developerekene/task-tracker-main/internal/services"
	"github.com/developerekene/task-tracker-main/internal/store"
)

// mapMirror is an in-memory snapshot repository for store wiring in tests.
type mapMirror struct {
	data map[string][]byte
}

func newMapMirror() *mapMirror { return &mapMirror{data: make(map[string][]byte)} }

func (m *mapMirror) Get(_ context.Context, key string) ([]byte, error) { return m.data[key], nil }
func (m *mapMirror) Set(_ context.Context, key string, value []byte) error {
	m.data[key] = append([]byte(nil), value...)
	return nil
}
func (m *mapMirror) Delete(_ context.Context, key string) error {
	delete(m.data, key)
	return nil
}
func (m *mapMirror) Clear(_ context.Context) error {
	m.data = make(map[string][]byte)
	return nil
}

// stubInputs replaces the interactive seams with canned answers. Text
// prompts consume from answers in order; passwords always return pw.
func stubInputs(t *testing.T, answers []string, pw string) {
	t.Helper()
	origST, origGP := getSimpleText, getPassword
	i := 0
	getSimpleText = func(_ *bufio.Reader, _ string, _ io.Writer) (string, error) {
		if i >= len(answers) {
			return "", io.EOF
		}
		v := answers[i]
		i++
		return v, nil
	}
	getPassword = func(_ io.Writer, _ string) ([]byte, error) {
		return []byte(pw), nil
	}
	t.Cleanup(func() {
		getSimpleText = origST
		getPassword = origGP
	})
}

// captureNotify records outcome banners and silences the REPL printer.
func captureNotify(t *testing.T) *[]string {
	t.Helper()
	silencePrintln(t)
	origNotify := notifyFn
	var kinds []string
	notifyFn = func(kind, _ string) { kinds = append(kinds, kind) }
	t.Cleanup(func() { notifyFn = origNotify })
	return &kinds
}

func newTestApp(t *testing.T, mem *backend.Memory) *App {
	t.Helper()
	log := logging.NewTextLogger(io.Discard, slog.LevelError)
	st := store.New(newMapMirror(), log)
	return &App{
		client: mem,
		auth:   services.NewAuthService(mem, st, log),
		tasks:  services.NewTaskService(mem, st, log),
		users:  services.NewUserService(mem, st, log),
		store:  st,
		log:    log,
		reader: bufio.NewReader(strings.NewReader("")),
	}
}

func TestApp_RegisterThenTaskLifecycle(t *testing.T) {
	kinds := captureNotify(t)
	mem := backend.NewMemory()
	a := newTestApp(t, mem)
	ctx := context.Background()

	stubInputs(t, []string{"Jane", "Doe", "jane.doe@example.com"}, "Sup3rSecret")
	require.NoError(t, a.Register(ctx))
	require.True(t, a.isLoggedIn())
	assert.Equal(t, "JD", a.store.User().Initials)

	stubInputs(t, []string{"buy milk", "2 litres"}, "")
	require.NoError(t, a.AddTask(ctx))
	tasks := a.store.Tasks()
	require.Len(t, tasks, 1)

	require.NoError(t, a.CompleteTask(ctx, tasks[0].ID))
	assert.True(t, a.store.Tasks()[0].Completed)

	require.NoError(t, a.RemoveTask(ctx, tasks[0].ID))
	assert.Empty(t, a.store.Tasks())

	for _, kind := range *kinds {
		assert.Equal(t, "ok", kind)
	}
}

func TestApp_LoginFailureKeepsSignedOut(t *testing.T) {
	kinds := captureNotify(t)
	mem := backend.NewMemory()
	a := newTestApp(t, mem)

	stubInputs(t, []string{"nobody@example.com"}, "Sup3rSecret")
	err := a.Login(context.Background())
	require.Error(t, err)
	assert.False(t, a.isLoggedIn())
	require.NotEmpty(t, *kinds)
	assert.Equal(t, "error", (*kinds)[len(*kinds)-1])
}

func TestApp_LogoutResetsProfile(t *testing.T) {
	captureNotify(t)
	mem := backend.NewMemory()
	a := newTestApp(t, mem)
	ctx := context.Background()

	stubInputs(t, []string{"Jane", "Doe", "jane.doe@example.com"}, "Sup3rSecret")
	require.NoError(t, a.Register(ctx))

	require.NoError(t, a.Logout(ctx))
	assert.False(t, a.isLoggedIn())
	assert.Empty(t, a.store.User().FirstName)
	assert.False(t, a.store.IsLoggedIn())
}

func TestApp_EditSettings(t *testing.T) {
	captureNotify(t)
	mem := backend.NewMemory()
	a := newTestApp(t, mem)
	ctx := context.Background()

	stubInputs(t, []string{"Jane", "Doe", "jane.doe@example.com"}, "Sup3rSecret")
	require.NoError(t, a.Register(ctx))

	stubInputs(t, []string{"", "light", "off"}, "")
	require.NoError(t, a.EditSettings(ctx))

	settings := a.store.Settings()
	assert.Equal(t, "light", settings.Theme)
	assert.False(t, settings.Notifications)
	assert.Equal(t, "en", settings.Language)
}

func TestApp_ToggleSidebar(t *testing.T) {
	captureNotify(t)
	a := newTestApp(t, backend.NewMemory())
	ctx := context.Background()

	require.NoError(t, a.ToggleSidebar(ctx))
	assert.True(t, a.store.SidebarVisible())
	require.NoError(t, a.ToggleSidebar(ctx))
	assert.False(t, a.store.SidebarVisible())
}

func TestApp_ForgotPassword(t *testing.T) {
	captureNotify(t)
	mem := backend.NewMemory()
	a := newTestApp(t, mem)

	stubInputs(t, []string{"jane.doe@example.com"}, "")
	require.NoError(t, a.ForgotPassword(context.Background()))
	assert.Equal(t, []string{"jane.doe@example.com"}, mem.ResetEmails)
}
