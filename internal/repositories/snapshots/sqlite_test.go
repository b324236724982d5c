package snapshots

import (
	"context"
	"database/sql"
	"testing"

	"github.com/stretchr/testify/require"

	_ "modernc.org/sqlite"
)

func setupDB(t *testing.T) *sql.DB {
	t.Helper()
	db, err := sql.Open("sqlite", "file:snapshots_tests?mode=memory&cache=shared")
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })

	_, err = db.Exec(`
CREATE TABLE snapshots (
  key   TEXT PRIMARY KEY,
  value BLOB NOT NULL
);
`)
	require.NoError(t, err)
	return db
}

func TestSQLiteRepository_SetGet(t *testing.T) {
	repo := NewSQLiteRepository(setupDB(t))
	ctx := context.Background()

	require.NoError(t, repo.Set(ctx, KeyUser, []byte(`{"firstName":"Jane"}`)))

	got, err := repo.Get(ctx, KeyUser)
	require.NoError(t, err)
	require.JSONEq(t, `{"firstName":"Jane"}`, string(got))
}

func TestSQLiteRepository_SetOverwrites(t *testing.T) {
	repo := NewSQLiteRepository(setupDB(t))
	ctx := context.Background()

	require.NoError(t, repo.Set(ctx, KeyTasks, []byte(`[]`)))
	require.NoError(t, repo.Set(ctx, KeyTasks, []byte(`[{"id":"1"}]`)))

	got, err := repo.Get(ctx, KeyTasks)
	require.NoError(t, err)
	require.JSONEq(t, `[{"id":"1"}]`, string(got))
}

func TestSQLiteRepository_GetMissingKey(t *testing.T) {
	repo := NewSQLiteRepository(setupDB(t))

	got, err := repo.Get(context.Background(), "nope")
	require.NoError(t, err)
	require.Nil(t, got)
}

func TestSQLiteRepository_DeleteAndClear(t *testing.T) {
	repo := NewSQLiteRepository(setupDB(t))
	ctx := context.Background()

	require.NoError(t, repo.Set(ctx, KeyUser, []byte(`{}`)))
	require.NoError(t, repo.Set(ctx, KeyTasks, []byte(`[]`)))

	require.NoError(t, repo.Delete(ctx, KeyUser))
	got, err := repo.Get(ctx, KeyUser)
	require.NoError(t, err)
	require.Nil(t, got)

	require.NoError(t, repo.Clear(ctx))
	got, err = repo.Get(ctx, KeyTasks)
	require.NoError(t, err)
	require.Nil(t, got)
}

func TestSQLiteRepository_ClearWipesAllKeys(t *testing.T) {
	repo := NewSQLiteRepository(setupDB(t))
	ctx := context.Background()

	require.NoError(t, repo.Set(ctx, KeyUser, []byte(`{"firstName":"Jane"}`)))
	require.NoError(t, repo.Set(ctx, KeyTasks, []byte(`[{"id":"1"}]`)))

	require.NoError(t, repo.Clear(ctx))

	for _, key := range []string{KeyUser, KeyTasks} {
		got, err := repo.Get(ctx, key)
		require.NoError(t, err)
		require.Nil(t, got, "key %q must be gone after Clear", key)
	}

	// the mirror stays usable after a wipe
	require.NoError(t, repo.Set(ctx, KeyUser, []byte(`{}`)))
}
