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

// SQLiteCredentialRepo implements CredentialRepo.
type SQLiteCredentialRepo struct {
	db db.DBTX
}

func NewSQLiteCredentialRepo(conn db.DBTX) *SQLiteCredentialRepo {
	return &SQLiteCredentialRepo{db: conn}
}

func (r *SQLiteCredentialRepo) Set(ctx context.Context, userID, hash string) error {
	query := `INSERT INTO credentials (user_id, password_hash, updated_at) VALUES (?, ?, ?)
		ON CONFLICT(user_id) DO UPDATE SET password_hash = excluded.password_hash, updated_at = excluded.updated_at`
	if _, err := r.db.ExecContext(ctx, query, userID, hash, formatTime(time.Now())); err != nil {
		return fmt.Errorf("storing credential: %w", err)
	}
	return nil
}

func (r *SQLiteCredentialRepo) Get(ctx context.Context, userID string) (string, error) {
	var hash string
	err := r.db.QueryRowContext(ctx, `SELECT password_hash FROM credentials WHERE user_id = ?`, userID).Scan(&hash)
	if errors.Is(err, sql.ErrNoRows) {
		return "", fmt.Errorf("credential for %s: %w", userID, ErrNotFound)
	}
	if err != nil {
		return "", fmt.Errorf("reading credential: %w", err)
	}
	return hash, nil
}

// SQLiteAuthSessionRepo implements AuthSessionRepo.
type SQLiteAuthSessionRepo struct {
	db db.DBTX
}

func NewSQLiteAuthSessionRepo(conn db.DBTX) *SQLiteAuthSessionRepo {
	return &SQLiteAuthSessionRepo{db: conn}
}

func (r *SQLiteAuthSessionRepo) Create(ctx context.Context, s *domain.AuthSession) error {
	_, err := r.db.ExecContext(ctx,
		`INSERT INTO auth_sessions (id, user_id, expires_at, revoked_at, created_at) VALUES (?, ?, ?, ?, ?)`,
		s.ID, s.UserID, formatTime(s.ExpiresAt), nullableTime(s.RevokedAt), formatTime(s.CreatedAt),
	)
	if err != nil {
		return fmt.Errorf("inserting auth session: %w", err)
	}
	return nil
}

func (r *SQLiteAuthSessionRepo) GetByID(ctx context.Context, id string) (*domain.AuthSession, error) {
	var s domain.AuthSession
	var expiresAt, createdAt string
	var revokedAt sql.NullString

	err := r.db.QueryRowContext(ctx,
		`SELECT id, user_id, expires_at, revoked_at, created_at FROM auth_sessions WHERE id = ?`, id,
	).Scan(&s.ID, &s.UserID, &expiresAt, &revokedAt, &createdAt)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("auth session: %w", ErrNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("scanning auth session: %w", err)
	}

	s.RevokedAt = parseNullableTime(revokedAt)
	if s.ExpiresAt, err = parseTime(expiresAt, "expires_at"); err != nil {
		return nil, err
	}
	if s.CreatedAt, err = parseTime(createdAt, "created_at"); err != nil {
		return nil, err
	}
	return &s, nil
}

func (r *SQLiteAuthSessionRepo) Revoke(ctx context.Context, id string, at time.Time) error {
	_, err := r.db.ExecContext(ctx,
		`UPDATE auth_sessions SET revoked_at = ? WHERE id = ? AND revoked_at IS NULL`,
		formatTime(at), id,
	)
	if err != nil {
		return fmt.Errorf("revoking auth session: %w", err)
	}
	return nil
}

func (r *SQLiteAuthSessionRepo) RevokeAllForUser(ctx context.Context, userID string, at time.Time) error {
	_, err := r.db.ExecContext(ctx,
		`UPDATE auth_sessions SET revoked_at = ? WHERE user_id = ? AND revoked_at IS NULL`,
		formatTime(at), userID,
	)
	if err != nil {
		return fmt.Errorf("revoking user sessions: %w", err)
	}
	return nil
}

func (r *SQLiteAuthSessionRepo) DeleteExpired(ctx context.Context, before time.Time) (int64, error) {
	res, err := r.db.ExecContext(ctx, `DELETE FROM auth_sessions WHERE expires_at < ?`, formatTime(before))
	if err != nil {
		return 0, fmt.Errorf("pruning auth sessions: %w", err)
	}
	return res.RowsAffected()
}
