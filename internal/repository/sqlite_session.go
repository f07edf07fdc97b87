package repository

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/alexanderramin/hive/internal/db"
	"github.com/alexanderramin/hive/internal/domain"
)

// SQLiteSessionRepo implements SessionRepo over the focus_sessions table.
type SQLiteSessionRepo struct {
	db db.DBTX
}

func NewSQLiteSessionRepo(conn db.DBTX) *SQLiteSessionRepo {
	return &SQLiteSessionRepo{db: conn}
}

const sessionColumns = `id, user_id, task_id, duration_min, started_at, ended_at, completed, nectar_earned, created_at`

func (r *SQLiteSessionRepo) Create(ctx context.Context, s *domain.FocusSession) error {
	query := `INSERT INTO focus_sessions (` + sessionColumns + `) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`
	_, err := r.db.ExecContext(ctx, query,
		s.ID,
		s.UserID,
		nullableString(s.TaskID),
		s.DurationMin,
		formatTime(s.StartedAt),
		formatTime(s.EndedAt),
		boolToInt(s.Completed),
		s.NectarEarned,
		formatTime(s.CreatedAt),
	)
	if err != nil {
		return fmt.Errorf("inserting focus session: %w", err)
	}
	return nil
}

// ListByUser returns sessions started at or after since, newest first.
func (r *SQLiteSessionRepo) ListByUser(ctx context.Context, userID string, since time.Time) ([]*domain.FocusSession, error) {
	query := `SELECT ` + sessionColumns + ` FROM focus_sessions
		WHERE user_id = ? AND started_at >= ?
		ORDER BY started_at DESC, rowid DESC`
	rows, err := r.db.QueryContext(ctx, query, userID, formatTime(since))
	if err != nil {
		return nil, fmt.Errorf("listing focus sessions: %w", err)
	}
	defer rows.Close()

	var sessions []*domain.FocusSession
	for rows.Next() {
		s, err := scanSession(rows)
		if err != nil {
			return nil, err
		}
		sessions = append(sessions, s)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating focus sessions: %w", err)
	}
	return sessions, nil
}

func (r *SQLiteSessionRepo) CountCompletedSince(ctx context.Context, userID string, since time.Time) (int, error) {
	var n int
	err := r.db.QueryRowContext(ctx,
		`SELECT COUNT(*) FROM focus_sessions WHERE user_id = ? AND completed = 1 AND started_at >= ?`,
		userID, formatTime(since),
	).Scan(&n)
	if err != nil {
		return 0, fmt.Errorf("counting focus sessions: %w", err)
	}
	return n, nil
}

func scanSession(row scanner) (*domain.FocusSession, error) {
	var s domain.FocusSession
	var taskID sql.NullString
	var startedAt, endedAt, createdAt string
	var completed int

	err := row.Scan(
		&s.ID, &s.UserID, &taskID, &s.DurationMin,
		&startedAt, &endedAt, &completed, &s.NectarEarned, &createdAt,
	)
	if err != nil {
		return nil, fmt.Errorf("scanning focus session: %w", err)
	}

	s.TaskID = stringPtr(taskID)
	s.Completed = completed != 0
	if s.StartedAt, err = parseTime(startedAt, "started_at"); err != nil {
		return nil, err
	}
	if s.EndedAt, err = parseTime(endedAt, "ended_at"); err != nil {
		return nil, err
	}
	if s.CreatedAt, err = parseTime(createdAt, "created_at"); err != nil {
		return nil, err
	}
	return &s, nil
}
