package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"github.com/alexanderramin/hive/internal/db"
	"github.com/alexanderramin/hive/internal/domain"
)

// SQLiteTaskRepo implements TaskRepo.
type SQLiteTaskRepo struct {
	db db.DBTX
}

func NewSQLiteTaskRepo(conn db.DBTX) *SQLiteTaskRepo {
	return &SQLiteTaskRepo{db: conn}
}

const taskColumns = `id, user_id, project_id, title, status, estimated_cells, completed_cells, created_at, updated_at`

func (r *SQLiteTaskRepo) Create(ctx context.Context, t *domain.Task) error {
	query := `INSERT INTO tasks (` + taskColumns + `) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`
	_, err := r.db.ExecContext(ctx, query,
		t.ID,
		t.UserID,
		nullableString(t.ProjectID),
		t.Title,
		string(t.Status),
		t.EstimatedCells,
		t.CompletedCells,
		formatTime(t.CreatedAt),
		formatTime(t.UpdatedAt),
	)
	if err != nil {
		return fmt.Errorf("inserting task: %w", err)
	}
	return nil
}

func (r *SQLiteTaskRepo) GetByID(ctx context.Context, id string) (*domain.Task, error) {
	row := r.db.QueryRowContext(ctx, `SELECT `+taskColumns+` FROM tasks WHERE id = ?`, id)
	t, err := scanTask(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("task %s: %w", id, ErrNotFound)
	}
	return t, err
}

func (r *SQLiteTaskRepo) ListByUser(ctx context.Context, userID string, f TaskFilter) ([]*domain.Task, error) {
	where := []string{"user_id = ?"}
	args := []any{userID}
	if f.Status != nil {
		where = append(where, "status = ?")
		args = append(args, string(*f.Status))
	}
	if f.ProjectID != nil {
		where = append(where, "project_id = ?")
		args = append(args, *f.ProjectID)
	}
	query := `SELECT ` + taskColumns + ` FROM tasks WHERE ` + strings.Join(where, " AND ") +
		` ORDER BY created_at, rowid`
	return r.list(ctx, "listing tasks", query, args...)
}

func (r *SQLiteTaskRepo) ListPending(ctx context.Context, userID string) ([]*domain.Task, error) {
	query := `SELECT ` + taskColumns + ` FROM tasks
		WHERE user_id = ? AND status IN ('TODO', 'IN_PROGRESS')
		ORDER BY created_at, rowid`
	return r.list(ctx, "listing pending tasks", query, userID)
}

func (r *SQLiteTaskRepo) ListByProject(ctx context.Context, projectID string) ([]*domain.Task, error) {
	query := `SELECT ` + taskColumns + ` FROM tasks WHERE project_id = ? ORDER BY created_at, rowid`
	return r.list(ctx, "listing tasks by project", query, projectID)
}

func (r *SQLiteTaskRepo) Update(ctx context.Context, t *domain.Task) error {
	query := `UPDATE tasks SET project_id = ?, title = ?, status = ?, estimated_cells = ?,
		completed_cells = ?, updated_at = ? WHERE id = ?`
	res, err := r.db.ExecContext(ctx, query,
		nullableString(t.ProjectID),
		t.Title,
		string(t.Status),
		t.EstimatedCells,
		t.CompletedCells,
		formatTime(t.UpdatedAt),
		t.ID,
	)
	if err != nil {
		return fmt.Errorf("updating task: %w", err)
	}
	return expectOneRow(res, "task "+t.ID)
}

func (r *SQLiteTaskRepo) Delete(ctx context.Context, id string) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM tasks WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("deleting task: %w", err)
	}
	return expectOneRow(res, "task "+id)
}

func (r *SQLiteTaskRepo) list(ctx context.Context, op, query string, args ...any) ([]*domain.Task, error) {
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	defer rows.Close()

	var tasks []*domain.Task
	for rows.Next() {
		t, err := scanTask(rows)
		if err != nil {
			return nil, err
		}
		tasks = append(tasks, t)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating tasks: %w", err)
	}
	return tasks, nil
}

func scanTask(row scanner) (*domain.Task, error) {
	var t domain.Task
	var projectID sql.NullString
	var status, createdAt, updatedAt string

	err := row.Scan(
		&t.ID, &t.UserID, &projectID, &t.Title, &status,
		&t.EstimatedCells, &t.CompletedCells, &createdAt, &updatedAt,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, err
	}
	if err != nil {
		return nil, fmt.Errorf("scanning task: %w", err)
	}

	t.ProjectID = stringPtr(projectID)
	t.Status = domain.TaskStatus(status)
	if t.CreatedAt, err = parseTime(createdAt, "created_at"); err != nil {
		return nil, err
	}
	if t.UpdatedAt, err = parseTime(updatedAt, "updated_at"); err != nil {
		return nil, err
	}
	return &t, nil
}
