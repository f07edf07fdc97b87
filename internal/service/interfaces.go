package service

import (
	"context"
	"time"

	"github.com/alexanderramin/hive/internal/contract"
	"github.com/alexanderramin/hive/internal/domain"
)

type UserService interface {
	Get(ctx context.Context, id string) (*domain.User, error)
	GetByEmail(ctx context.Context, email string) (*domain.User, error)
}

type TaskService interface {
	Create(ctx context.Context, req contract.CreateTaskRequest) (*domain.Task, error)
	Get(ctx context.Context, userID, id string) (*domain.Task, error)
	List(ctx context.Context, req contract.ListTasksRequest) ([]*domain.Task, error)
	Update(ctx context.Context, req contract.UpdateTaskRequest) (*domain.Task, error)
	Delete(ctx context.Context, userID, id string) error
}

type ProjectService interface {
	Create(ctx context.Context, req contract.CreateProjectRequest) (*contract.ProjectWithTasks, error)
	Get(ctx context.Context, userID, id string) (*contract.ProjectWithTasks, error)
	List(ctx context.Context, userID string) ([]contract.ProjectWithTasks, error)
	Update(ctx context.Context, req contract.UpdateProjectRequest) (*domain.Project, error)
	Delete(ctx context.Context, userID, id string) error
}

type SessionService interface {
	// Complete records a filled cell and pays out its nectar atomically.
	Complete(ctx context.Context, req contract.CompleteSessionRequest) (*contract.CompleteSessionResponse, error)
	ListRecent(ctx context.Context, userID string, days int, now time.Time) ([]*domain.FocusSession, error)
}

type PlanService interface {
	// Today plans the calendar day of now for the user.
	Today(ctx context.Context, userID string, now time.Time) (*contract.PlanResponse, error)
}

type StatsService interface {
	Daily(ctx context.Context, userID string, now time.Time) (*contract.DailyStats, error)
}

type SettingsService interface {
	Get(ctx context.Context, userID string) (*contract.Settings, error)
	Update(ctx context.Context, req contract.UpdateSettingsRequest) (*contract.Settings, error)
}
