package repository

import (
	"context"
	"time"

	"github.com/alexanderramin/hive/internal/domain"
)

type UserRepo interface {
	Create(ctx context.Context, u *domain.User) error
	GetByID(ctx context.Context, id string) (*domain.User, error)
	GetByEmail(ctx context.Context, email string) (*domain.User, error)
	UpdateSettings(ctx context.Context, u *domain.User) error
	// ApplyCompletion adds nectar and one cell to the user's totals and sets
	// the streak and last-active date in a single statement. The last-active
	// date never moves backwards.
	ApplyCompletion(ctx context.Context, userID string, nectar, streak int, activeAt time.Time) error
	Delete(ctx context.Context, id string) error
}

type ProjectRepo interface {
	Create(ctx context.Context, p *domain.Project) error
	GetByID(ctx context.Context, id string) (*domain.Project, error)
	ListByUser(ctx context.Context, userID string) ([]*domain.Project, error)
	Update(ctx context.Context, p *domain.Project) error
	Delete(ctx context.Context, id string) error
}

// TaskFilter narrows ListByUser. Nil fields match everything.
type TaskFilter struct {
	Status    *domain.TaskStatus
	ProjectID *string
}

type TaskRepo interface {
	Create(ctx context.Context, t *domain.Task) error
	GetByID(ctx context.Context, id string) (*domain.Task, error)
	ListByUser(ctx context.Context, userID string, f TaskFilter) ([]*domain.Task, error)
	// ListPending returns TODO and IN_PROGRESS tasks in creation order.
	ListPending(ctx context.Context, userID string) ([]*domain.Task, error)
	ListByProject(ctx context.Context, projectID string) ([]*domain.Task, error)
	Update(ctx context.Context, t *domain.Task) error
	Delete(ctx context.Context, id string) error
}

type SessionRepo interface {
	Create(ctx context.Context, s *domain.FocusSession) error
	ListByUser(ctx context.Context, userID string, since time.Time) ([]*domain.FocusSession, error)
	CountCompletedSince(ctx context.Context, userID string, since time.Time) (int, error)
}

type CredentialRepo interface {
	// Set stores or replaces the password hash for a user.
	Set(ctx context.Context, userID, hash string) error
	Get(ctx context.Context, userID string) (string, error)
}

type AuthSessionRepo interface {
	Create(ctx context.Context, s *domain.AuthSession) error
	GetByID(ctx context.Context, id string) (*domain.AuthSession, error)
	Revoke(ctx context.Context, id string, at time.Time) error
	RevokeAllForUser(ctx context.Context, userID string, at time.Time) error
	DeleteExpired(ctx context.Context, before time.Time) (int64, error)
}
