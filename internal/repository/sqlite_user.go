package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/alexanderramin/hive/internal/db"
	"github.com/alexanderramin/hive/internal/domain"
)

// SQLiteUserRepo implements UserRepo.
type SQLiteUserRepo struct {
	db db.DBTX
}

func NewSQLiteUserRepo(conn db.DBTX) *SQLiteUserRepo {
	return &SQLiteUserRepo{db: conn}
}

const userColumns = `id, email, name, intensity_mode, work_start, work_end,
	total_nectar, total_cells, current_streak, last_active_date, created_at, updated_at`

func (r *SQLiteUserRepo) Create(ctx context.Context, u *domain.User) error {
	query := `INSERT INTO users (` + userColumns + `) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`
	_, err := r.db.ExecContext(ctx, query,
		u.ID,
		u.Email,
		u.Name,
		string(u.Intensity()),
		u.WorkStart,
		u.WorkEnd,
		u.TotalNectar,
		u.TotalCells,
		u.CurrentStreak,
		nullableTime(u.LastActiveDate),
		formatTime(u.CreatedAt),
		formatTime(u.UpdatedAt),
	)
	if isUniqueViolation(err) {
		return fmt.Errorf("inserting user %s: %w", u.Email, ErrDuplicate)
	}
	if err != nil {
		return fmt.Errorf("inserting user: %w", err)
	}
	return nil
}

func (r *SQLiteUserRepo) GetByID(ctx context.Context, id string) (*domain.User, error) {
	row := r.db.QueryRowContext(ctx, `SELECT `+userColumns+` FROM users WHERE id = ?`, id)
	return scanUser(row)
}

func (r *SQLiteUserRepo) GetByEmail(ctx context.Context, email string) (*domain.User, error) {
	row := r.db.QueryRowContext(ctx, `SELECT `+userColumns+` FROM users WHERE email = ?`, email)
	return scanUser(row)
}

func (r *SQLiteUserRepo) UpdateSettings(ctx context.Context, u *domain.User) error {
	query := `UPDATE users SET name = ?, intensity_mode = ?, work_start = ?, work_end = ?, updated_at = ?
		WHERE id = ?`
	res, err := r.db.ExecContext(ctx, query,
		u.Name,
		string(u.Intensity()),
		u.WorkStart,
		u.WorkEnd,
		formatTime(u.UpdatedAt),
		u.ID,
	)
	if err != nil {
		return fmt.Errorf("updating user settings: %w", err)
	}
	return expectOneRow(res, "user "+u.ID)
}

func (r *SQLiteUserRepo) ApplyCompletion(ctx context.Context, userID string, nectar, streak int, activeAt time.Time) error {
	query := `UPDATE users SET
			total_nectar = total_nectar + ?,
			total_cells = total_cells + 1,
			current_streak = ?,
			last_active_date = MAX(COALESCE(last_active_date, ''), ?),
			updated_at = ?
		WHERE id = ?`
	stamp := formatTime(activeAt)
	res, err := r.db.ExecContext(ctx, query, nectar, streak, stamp, stamp, userID)
	if err != nil {
		return fmt.Errorf("applying completion to user: %w", err)
	}
	return expectOneRow(res, "user "+userID)
}

func (r *SQLiteUserRepo) Delete(ctx context.Context, id string) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM users WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("deleting user: %w", err)
	}
	return expectOneRow(res, "user "+id)
}

func scanUser(row scanner) (*domain.User, error) {
	var u domain.User
	var intensity, createdAt, updatedAt string
	var lastActive sql.NullString

	err := row.Scan(
		&u.ID, &u.Email, &u.Name, &intensity, &u.WorkStart, &u.WorkEnd,
		&u.TotalNectar, &u.TotalCells, &u.CurrentStreak, &lastActive,
		&createdAt, &updatedAt,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("user: %w", ErrNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("scanning user: %w", err)
	}

	u.IntensityMode = domain.IntensityMode(intensity)
	u.LastActiveDate = parseNullableTime(lastActive)
	if u.CreatedAt, err = parseTime(createdAt, "created_at"); err != nil {
		return nil, err
	}
	if u.UpdatedAt, err = parseTime(updatedAt, "updated_at"); err != nil {
		return nil, err
	}
	return &u, nil
}
