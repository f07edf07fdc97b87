package contract

import (
	"strings"

	"github.com/alexanderramin/hive/internal/domain"
)

type CreateTaskRequest struct {
	UserID         string  `json:"-"`
	Title          string  `json:"title"`
	EstimatedCells int     `json:"estimatedCells"`
	ProjectID      *string `json:"projectId,omitempty"`
}

func (r CreateTaskRequest) Validate() error {
	if strings.TrimSpace(r.Title) == "" {
		return Invalid("task title is required")
	}
	if r.EstimatedCells < 0 {
		return Invalid("estimatedCells cannot be negative")
	}
	return nil
}

// UpdateTaskRequest is a partial update. Nil fields are left unchanged.
type UpdateTaskRequest struct {
	UserID         string             `json:"-"`
	ID             string             `json:"id"`
	Title          *string            `json:"title,omitempty"`
	EstimatedCells *int               `json:"estimatedCells,omitempty"`
	CompletedCells *int               `json:"completedCells,omitempty"`
	Status         *domain.TaskStatus `json:"status,omitempty"`
}

func (r UpdateTaskRequest) Validate() error {
	if r.ID == "" {
		return Invalid("task ID is required")
	}
	if r.Status != nil && !domain.ValidTaskStatuses[*r.Status] {
		return Invalid("unknown task status %q", *r.Status)
	}
	if r.EstimatedCells != nil && *r.EstimatedCells < 1 {
		return Invalid("estimatedCells must be at least 1")
	}
	if r.CompletedCells != nil && *r.CompletedCells < 0 {
		return Invalid("completedCells cannot be negative")
	}
	return nil
}

type ListTasksRequest struct {
	UserID    string
	Status    *domain.TaskStatus
	ProjectID *string
}
