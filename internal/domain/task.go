package domain

import (
	"fmt"
	"strings"
	"time"
)

// Task is a unit of work measured in cells (focus blocks).
type Task struct {
	ID             string
	UserID         string
	ProjectID      *string
	Title          string
	Status         TaskStatus
	EstimatedCells int
	CompletedCells int
	CreatedAt      time.Time
	UpdatedAt      time.Time
}

// Validate checks required fields and fills defaults for a new task.
func (t *Task) Validate() error {
	t.Title = strings.TrimSpace(t.Title)
	if t.Title == "" {
		return fmt.Errorf("task title is required")
	}
	if t.Status == "" {
		t.Status = TaskTodo
	}
	if !ValidTaskStatuses[t.Status] {
		return fmt.Errorf("unknown task status %q", t.Status)
	}
	if t.EstimatedCells <= 0 {
		t.EstimatedCells = 1
	}
	if t.CompletedCells < 0 {
		return fmt.Errorf("completed cells cannot be negative")
	}
	return nil
}

// IsPending reports whether the task still wants focus time.
func (t *Task) IsPending() bool {
	return t.Status == TaskTodo || t.Status == TaskInProgress
}

// RemainingCells returns how many estimated cells are still unfilled.
func (t *Task) RemainingCells() int {
	if r := t.EstimatedCells - t.CompletedCells; r > 0 {
		return r
	}
	return 0
}

// ApplyCell records one completed cell. A TODO task moves to IN_PROGRESS and a
// task whose estimate is reached moves to DONE. Archived tasks reject cells.
func (t *Task) ApplyCell(now time.Time) error {
	if t.Status == TaskArchived {
		return fmt.Errorf("cannot fill a cell on archived task %s", t.ID)
	}
	t.CompletedCells++
	if t.Status == TaskTodo {
		t.Status = TaskInProgress
	}
	if t.Status == TaskInProgress && t.EstimatedCells > 0 && t.CompletedCells >= t.EstimatedCells {
		t.Status = TaskDone
	}
	t.UpdatedAt = now
	return nil
}
