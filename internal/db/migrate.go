package db

import (
	"database/sql"
	"fmt"
)

// Migrate applies the schema. Every statement is idempotent so the whole list
// is replayed on each start.
func Migrate(db *sql.DB) error {
	for i, stmt := range migrations {
		if _, err := db.Exec(stmt); err != nil {
			return fmt.Errorf("migration %d: %w", i, err)
		}
	}
	return nil
}

var migrations = []string{
	`CREATE TABLE IF NOT EXISTS users (
		id               TEXT PRIMARY KEY,
		email            TEXT NOT NULL UNIQUE COLLATE NOCASE,
		name             TEXT NOT NULL DEFAULT '',
		intensity_mode   TEXT NOT NULL DEFAULT 'WORKER_BEE'
		                 CHECK(intensity_mode IN ('GLIDER','WORKER_BEE','HERO_MODE')),
		work_start       TEXT NOT NULL DEFAULT '',
		work_end         TEXT NOT NULL DEFAULT '',
		total_nectar     INTEGER NOT NULL DEFAULT 0,
		total_cells      INTEGER NOT NULL DEFAULT 0,
		current_streak   INTEGER NOT NULL DEFAULT 0,
		last_active_date TEXT,
		created_at       TEXT NOT NULL,
		updated_at       TEXT NOT NULL
	)`,

	`CREATE TABLE IF NOT EXISTS credentials (
		user_id       TEXT PRIMARY KEY REFERENCES users(id) ON DELETE CASCADE,
		password_hash TEXT NOT NULL,
		updated_at    TEXT NOT NULL
	)`,

	`CREATE TABLE IF NOT EXISTS auth_sessions (
		id         TEXT PRIMARY KEY,
		user_id    TEXT NOT NULL REFERENCES users(id) ON DELETE CASCADE,
		expires_at TEXT NOT NULL,
		revoked_at TEXT,
		created_at TEXT NOT NULL
	)`,
	`CREATE INDEX IF NOT EXISTS idx_auth_sessions_user ON auth_sessions(user_id)`,

	`CREATE TABLE IF NOT EXISTS projects (
		id         TEXT PRIMARY KEY,
		user_id    TEXT NOT NULL REFERENCES users(id) ON DELETE CASCADE,
		title      TEXT NOT NULL,
		color      TEXT NOT NULL DEFAULT '',
		created_at TEXT NOT NULL,
		updated_at TEXT NOT NULL
	)`,
	`CREATE INDEX IF NOT EXISTS idx_projects_user ON projects(user_id)`,

	`CREATE TABLE IF NOT EXISTS tasks (
		id              TEXT PRIMARY KEY,
		user_id         TEXT NOT NULL REFERENCES users(id) ON DELETE CASCADE,
		project_id      TEXT REFERENCES projects(id) ON DELETE CASCADE,
		title           TEXT NOT NULL,
		status          TEXT NOT NULL DEFAULT 'TODO'
		                CHECK(status IN ('TODO','IN_PROGRESS','DONE','ARCHIVED')),
		estimated_cells INTEGER NOT NULL DEFAULT 1 CHECK(estimated_cells >= 1),
		completed_cells INTEGER NOT NULL DEFAULT 0 CHECK(completed_cells >= 0),
		created_at      TEXT NOT NULL,
		updated_at      TEXT NOT NULL
	)`,
	`CREATE INDEX IF NOT EXISTS idx_tasks_user_status ON tasks(user_id, status)`,
	`CREATE INDEX IF NOT EXISTS idx_tasks_project ON tasks(project_id)`,

	`CREATE TABLE IF NOT EXISTS focus_sessions (
		id            TEXT PRIMARY KEY,
		user_id       TEXT NOT NULL REFERENCES users(id) ON DELETE CASCADE,
		task_id       TEXT REFERENCES tasks(id) ON DELETE SET NULL,
		duration_min  INTEGER NOT NULL CHECK(duration_min > 0),
		started_at    TEXT NOT NULL,
		ended_at      TEXT NOT NULL,
		completed     INTEGER NOT NULL DEFAULT 1,
		nectar_earned INTEGER NOT NULL DEFAULT 0,
		created_at    TEXT NOT NULL
	)`,
	`CREATE INDEX IF NOT EXISTS idx_focus_sessions_user_started ON focus_sessions(user_id, started_at)`,
	`CREATE INDEX IF NOT EXISTS idx_focus_sessions_task ON focus_sessions(task_id)`,
}
