package store

import (
	"context"
	"encoding/json"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/developerekene/task-tracker-main/internal/models"
)

// fakeMirror is an in-memory snapshots.Repository.
type fakeMirror struct {
	mu   sync.Mutex
	data map[string][]byte
}

func newFakeMirror() *fakeMirror {
	return &fakeMirror{data: make(map[string][]byte)}
}

func (m *fakeMirror) Get(_ context.Context, key string) ([]byte, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.data[key], nil
}

func (m *fakeMirror) Set(_ context.Context, key string, value []byte) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.data[key] = value
	return nil
}

func (m *fakeMirror) Delete(_ context.Context, key string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.data, key)
	return nil
}

func (m *fakeMirror) Clear(_ context.Context) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.data = make(map[string][]byte)
	return nil
}

func (m *fakeMirror) has(key string) bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	_, ok := m.data[key]
	return ok
}

func someTasks() []models.Task {
	return []models.Task{
		{ID: "1", Title: "first", Desc: "a"},
		{ID: "2", Title: "second", Desc: "b"},
	}
}

func TestSetTasks_LastDispatchWinsExactly(t *testing.T) {
	s := New(nil, nil)

	s.Dispatch(SetTasks{Tasks: someTasks()})
	s.Dispatch(SetTasks{Tasks: []models.Task{{ID: "9", Title: "only"}}})

	require.Equal(t, []models.Task{{ID: "9", Title: "only"}}, s.Tasks())
}

func TestSetTasks_NilPayloadYieldsEmptyList(t *testing.T) {
	s := New(nil, nil)
	s.Dispatch(SetTasks{Tasks: someTasks()})
	s.Dispatch(SetTasks{Tasks: nil})
	require.Empty(t, s.Tasks())
}

func TestUpdateTask_UnknownIDLeavesListUnchanged(t *testing.T) {
	s := New(nil, nil)
	s.Dispatch(SetTasks{Tasks: someTasks()})

	s.Dispatch(UpdateTask{ID: "nope", Patch: models.TaskPatch{Title: models.StringPtr("x")}})

	require.Equal(t, someTasks(), s.Tasks())
}

func TestUpdateTask_MergesMatchingID(t *testing.T) {
	s := New(nil, nil)
	s.Dispatch(SetTasks{Tasks: someTasks()})

	s.Dispatch(UpdateTask{ID: "2", Patch: models.TaskPatch{
		Title:     models.StringPtr("renamed"),
		Completed: models.BoolPtr(true),
	}})

	tasks := s.Tasks()
	require.Len(t, tasks, 2)
	assert.Equal(t, "first", tasks[0].Title)
	assert.Equal(t, "renamed", tasks[1].Title)
	assert.Equal(t, "b", tasks[1].Desc, "unpatched fields survive")
	assert.True(t, tasks[1].Completed)
}

func TestDeleteTask_Idempotent(t *testing.T) {
	s := New(nil, nil)
	s.Dispatch(SetTasks{Tasks: someTasks()})

	s.Dispatch(DeleteTask{ID: "1"})
	afterFirst := s.Tasks()

	s.Dispatch(DeleteTask{ID: "1"})
	require.Equal(t, afterFirst, s.Tasks())
	require.Equal(t, []models.Task{{ID: "2", Title: "second", Desc: "b"}}, s.Tasks())
}

func TestSetUser_ShallowMergeKeepsUnrelatedFields(t *testing.T) {
	s := New(nil, nil)

	s.Dispatch(SetUser{Patch: models.UserPatch{
		FirstName: models.StringPtr("A"),
		City:      models.StringPtr("Y"),
	}})
	s.Dispatch(SetUser{Patch: models.UserPatch{City: models.StringPtr("X")}})

	u := s.User()
	assert.Equal(t, "A", u.FirstName)
	assert.Equal(t, "X", u.City)
}

func TestResetUser_YieldsDefaultsAndClearsSnapshot(t *testing.T) {
	mirror := newFakeMirror()
	s := New(mirror, nil)

	s.Dispatch(SetTasks{Tasks: []models.Task{{ID: "t1", Title: "pack"}}})
	s.Dispatch(SetUser{Patch: models.UserPatch{
		FirstName:  models.StringPtr("Jane"),
		IsLoggedIn: models.BoolPtr(true),
	}})
	require.True(t, mirror.has("user"))
	require.True(t, mirror.has("tasks"))

	s.Dispatch(ResetUser{})

	assert.Equal(t, models.DefaultUserState(), s.User())
	assert.False(t, mirror.has("user"), "reset must wipe the mirrored profile")
	assert.False(t, mirror.has("tasks"), "reset must wipe the mirrored tasks")
}

func TestDispatch_MirrorsUserAndTaskSlices(t *testing.T) {
	mirror := newFakeMirror()
	s := New(mirror, nil)

	s.Dispatch(SetUser{Patch: models.UserPatch{FirstName: models.StringPtr("Jane")}})
	s.Dispatch(SetTasks{Tasks: someTasks()})

	raw, err := mirror.Get(context.Background(), "user")
	require.NoError(t, err)
	var u models.UserState
	require.NoError(t, json.Unmarshal(raw, &u))
	assert.Equal(t, "Jane", u.FirstName)

	raw, err = mirror.Get(context.Background(), "tasks")
	require.NoError(t, err)
	var tasks []models.Task
	require.NoError(t, json.Unmarshal(raw, &tasks))
	assert.Equal(t, someTasks(), tasks)
}

func TestHydrate_LoadsMirroredSlicesOnce(t *testing.T) {
	mirror := newFakeMirror()
	ctx := context.Background()
	require.NoError(t, mirror.Set(ctx, "user", []byte(`{"firstName":"Jane","isLoggedIn":true}`)))
	require.NoError(t, mirror.Set(ctx, "tasks", []byte(`[{"id":"1","title":"first"}]`)))

	s := New(mirror, nil)
	s.Hydrate(ctx)

	assert.Equal(t, "Jane", s.User().FirstName)
	assert.True(t, s.IsLoggedIn())
	require.Len(t, s.Tasks(), 1)
	assert.Equal(t, "first", s.Tasks()[0].Title)
}

func TestHydrate_IgnoresCorruptSnapshot(t *testing.T) {
	mirror := newFakeMirror()
	ctx := context.Background()
	require.NoError(t, mirror.Set(ctx, "user", []byte(`{not json`)))

	s := New(mirror, nil)
	s.Hydrate(ctx)

	assert.Equal(t, models.DefaultUserState(), s.User())
}

func TestSidebar_ToggleShowHide(t *testing.T) {
	s := New(nil, nil)

	s.Dispatch(ToggleSidebar{})
	assert.True(t, s.SidebarVisible())
	s.Dispatch(ToggleSidebar{})
	assert.False(t, s.SidebarVisible())
	s.Dispatch(ShowSidebar{})
	assert.True(t, s.SidebarVisible())
	s.Dispatch(HideSidebar{})
	assert.False(t, s.SidebarVisible())
}

func TestSetSettings_Replaces(t *testing.T) {
	s := New(nil, nil)

	s.Dispatch(SetSettings{Settings: models.Settings{Language: "fr", Theme: "light"}})

	assert.Equal(t, "fr", s.Settings().Language)
	assert.Equal(t, "light", s.Settings().Theme)
	assert.False(t, s.Settings().Notifications)
}

func TestSubscribe_NotifiedAfterDispatch(t *testing.T) {
	s := New(nil, nil)

	var calls int
	s.Subscribe(func() { calls++ })

	s.Dispatch(ShowSidebar{})
	s.Dispatch(HideSidebar{})

	assert.Equal(t, 2, calls)
}
