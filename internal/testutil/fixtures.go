package testutil

import (
	"fmt"
	"sync/atomic"
	"time"

	"github.com/alexanderramin/hive/internal/domain"
	"github.com/google/uuid"
)

var emailCounter atomic.Int64

// User options
type UserOption func(*domain.User)

func WithEmail(email string) UserOption {
	return func(u *domain.User) { u.Email = email }
}

func WithIntensity(m domain.IntensityMode) UserOption {
	return func(u *domain.User) { u.IntensityMode = m }
}

func WithWorkWindow(start, end string) UserOption {
	return func(u *domain.User) {
		u.WorkStart = start
		u.WorkEnd = end
	}
}

func WithStreak(streak int, lastActive time.Time) UserOption {
	return func(u *domain.User) {
		u.CurrentStreak = streak
		u.LastActiveDate = &lastActive
	}
}

func WithTotals(nectar, cells int) UserOption {
	return func(u *domain.User) {
		u.TotalNectar = nectar
		u.TotalCells = cells
	}
}

func NewTestUser(name string, opts ...UserOption) *domain.User {
	now := time.Now().UTC()
	u := &domain.User{
		ID:            uuid.New().String(),
		Email:         fmt.Sprintf("bee%d@hive.test", emailCounter.Add(1)),
		Name:          name,
		IntensityMode: domain.IntensityWorkerBee,
		CreatedAt:     now,
		UpdatedAt:     now,
	}
	for _, opt := range opts {
		opt(u)
	}
	return u
}

// Project options
type ProjectOption func(*domain.Project)

func WithColor(c string) ProjectOption {
	return func(p *domain.Project) { p.Color = c }
}

func NewTestProject(userID, title string, opts ...ProjectOption) *domain.Project {
	now := time.Now().UTC()
	p := &domain.Project{
		ID:        uuid.New().String(),
		UserID:    userID,
		Title:     title,
		Color:     domain.DefaultProjectColor,
		CreatedAt: now,
		UpdatedAt: now,
	}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// Task options
type TaskOption func(*domain.Task)

func WithProject(projectID string) TaskOption {
	return func(t *domain.Task) { t.ProjectID = &projectID }
}

func WithStatus(s domain.TaskStatus) TaskOption {
	return func(t *domain.Task) { t.Status = s }
}

func WithCells(estimated, completed int) TaskOption {
	return func(t *domain.Task) {
		t.EstimatedCells = estimated
		t.CompletedCells = completed
	}
}

// WithCreatedAt pins creation time, which fixes list order.
func WithCreatedAt(at time.Time) TaskOption {
	return func(t *domain.Task) {
		t.CreatedAt = at
		t.UpdatedAt = at
	}
}

func NewTestTask(userID, title string, opts ...TaskOption) *domain.Task {
	now := time.Now().UTC()
	t := &domain.Task{
		ID:             uuid.New().String(),
		UserID:         userID,
		Title:          title,
		Status:         domain.TaskTodo,
		EstimatedCells: 1,
		CreatedAt:      now,
		UpdatedAt:      now,
	}
	for _, opt := range opts {
		opt(t)
	}
	return t
}

// Session options
type SessionOption func(*domain.FocusSession)

func WithTask(taskID string) SessionOption {
	return func(s *domain.FocusSession) { s.TaskID = &taskID }
}

func WithStartedAt(at time.Time) SessionOption {
	return func(s *domain.FocusSession) {
		s.StartedAt = at
		s.EndedAt = at.Add(time.Duration(s.DurationMin) * time.Minute)
	}
}

func Abandoned() SessionOption {
	return func(s *domain.FocusSession) { s.Completed = false }
}

func NewTestSession(userID string, minutes int, opts ...SessionOption) *domain.FocusSession {
	end := time.Now().UTC()
	s := &domain.FocusSession{
		ID:           uuid.New().String(),
		UserID:       userID,
		DurationMin:  minutes,
		StartedAt:    end.Add(-time.Duration(minutes) * time.Minute),
		EndedAt:      end,
		Completed:    true,
		NectarEarned: 10,
		CreatedAt:    end,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}
