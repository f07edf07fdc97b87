package contract

import (
	"strings"

	"github.com/alexanderramin/hive/internal/domain"
)

// NewTaskInput seeds a task created together with its project.
type NewTaskInput struct {
	Title          string `json:"title"`
	EstimatedCells int    `json:"estimatedCells"`
}

type CreateProjectRequest struct {
	UserID string         `json:"-"`
	Title  string         `json:"title"`
	Color  string         `json:"color"`
	Tasks  []NewTaskInput `json:"tasks,omitempty"`
}

func (r CreateProjectRequest) Validate() error {
	if strings.TrimSpace(r.Title) == "" {
		return Invalid("project title is required")
	}
	for i, t := range r.Tasks {
		if strings.TrimSpace(t.Title) == "" {
			return Invalid("task %d needs a title", i+1)
		}
	}
	return nil
}

type UpdateProjectRequest struct {
	UserID string  `json:"-"`
	ID     string  `json:"id"`
	Title  *string `json:"title,omitempty"`
	Color  *string `json:"color,omitempty"`
}

func (r UpdateProjectRequest) Validate() error {
	if r.ID == "" {
		return Invalid("project ID is required")
	}
	return nil
}

// ProjectWithTasks is a project and the tasks filed under it.
type ProjectWithTasks struct {
	Project *domain.Project
	Tasks   []*domain.Task
}
