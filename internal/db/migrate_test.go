package db

import (
	"database/sql"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func openMemDB(t *testing.T) *sql.DB {
	t.Helper()
	db, err := OpenDB(MemoryPath)
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })
	return db
}

func TestMigrate_Replayable(t *testing.T) {
	db := openMemDB(t)

	require.NoError(t, Migrate(db))
	require.NoError(t, Migrate(db))
}

func TestMigrate_Tables(t *testing.T) {
	db := openMemDB(t)

	for _, table := range []string{"users", "credentials", "auth_sessions", "projects", "tasks", "focus_sessions"} {
		var name string
		err := db.QueryRow(`SELECT name FROM sqlite_master WHERE type='table' AND name=?`, table).Scan(&name)
		require.NoError(t, err, "table %s", table)
		assert.Equal(t, table, name)
	}
}

func TestMigrate_Indexes(t *testing.T) {
	db := openMemDB(t)

	for _, idx := range []string{
		"idx_auth_sessions_user",
		"idx_projects_user",
		"idx_tasks_user_status",
		"idx_tasks_project",
		"idx_focus_sessions_user_started",
		"idx_focus_sessions_task",
	} {
		var name string
		err := db.QueryRow(`SELECT name FROM sqlite_master WHERE type='index' AND name=?`, idx).Scan(&name)
		require.NoError(t, err, "index %s", idx)
	}
}

func TestOpenDB_ForeignKeysOn(t *testing.T) {
	db := openMemDB(t)

	var fk int
	require.NoError(t, db.QueryRow(`PRAGMA foreign_keys`).Scan(&fk))
	assert.Equal(t, 1, fk)
}

func TestMigrate_StatusCheckConstraint(t *testing.T) {
	db := openMemDB(t)

	_, err := db.Exec(`INSERT INTO users (id, email, created_at, updated_at) VALUES ('u1', 'a@b.c', 'now', 'now')`)
	require.NoError(t, err)

	_, err = db.Exec(`INSERT INTO tasks (id, user_id, title, status, created_at, updated_at)
		VALUES ('t1', 'u1', 'x', 'SLEEPING', 'now', 'now')`)
	assert.Error(t, err)
}

func TestMigrate_UserDeleteCascades(t *testing.T) {
	db := openMemDB(t)

	stmts := []string{
		`INSERT INTO users (id, email, created_at, updated_at) VALUES ('u1', 'a@b.c', 'now', 'now')`,
		`INSERT INTO projects (id, user_id, title, created_at, updated_at) VALUES ('p1', 'u1', 'Comb', 'now', 'now')`,
		`INSERT INTO tasks (id, user_id, project_id, title, created_at, updated_at) VALUES ('t1', 'u1', 'p1', 'Cell', 'now', 'now')`,
		`INSERT INTO focus_sessions (id, user_id, task_id, duration_min, started_at, ended_at, created_at)
			VALUES ('s1', 'u1', 't1', 25, 'now', 'now', 'now')`,
		`DELETE FROM users WHERE id = 'u1'`,
	}
	for _, s := range stmts {
		_, err := db.Exec(s)
		require.NoError(t, err)
	}

	for _, table := range []string{"projects", "tasks", "focus_sessions"} {
		var n int
		require.NoError(t, db.QueryRow(`SELECT COUNT(*) FROM `+table).Scan(&n))
		assert.Zero(t, n, table)
	}
}

func TestMigrate_TaskDeleteKeepsSessions(t *testing.T) {
	db := openMemDB(t)

	stmts := []string{
		`INSERT INTO users (id, email, created_at, updated_at) VALUES ('u1', 'a@b.c', 'now', 'now')`,
		`INSERT INTO tasks (id, user_id, title, created_at, updated_at) VALUES ('t1', 'u1', 'Cell', 'now', 'now')`,
		`INSERT INTO focus_sessions (id, user_id, task_id, duration_min, started_at, ended_at, created_at)
			VALUES ('s1', 'u1', 't1', 25, 'now', 'now', 'now')`,
		`DELETE FROM tasks WHERE id = 't1'`,
	}
	for _, s := range stmts {
		_, err := db.Exec(s)
		require.NoError(t, err)
	}

	var taskID sql.NullString
	require.NoError(t, db.QueryRow(`SELECT task_id FROM focus_sessions WHERE id = 's1'`).Scan(&taskID))
	assert.False(t, taskID.Valid)
}
