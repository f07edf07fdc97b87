package service

import (
	"context"
	"strings"
	"time"

	"github.com/alexanderramin/hive/internal/contract"
	"github.com/alexanderramin/hive/internal/domain"
	"github.com/alexanderramin/hive/internal/repository"
	"github.com/google/uuid"
)

type taskService struct {
	tasks    repository.TaskRepo
	projects repository.ProjectRepo
	observer UseCaseObserver
}

func NewTaskService(tasks repository.TaskRepo, projects repository.ProjectRepo, observers ...UseCaseObserver) TaskService {
	return &taskService{tasks: tasks, projects: projects, observer: useCaseObserverOrNoop(observers)}
}

func (s *taskService) Create(ctx context.Context, req contract.CreateTaskRequest) (task *domain.Task, err error) {
	done := track(ctx, s.observer, "create-task", map[string]any{"user_id": req.UserID})
	defer func() { done(err) }()

	if err = req.Validate(); err != nil {
		return nil, err
	}
	if req.ProjectID != nil && *req.ProjectID == "" {
		req.ProjectID = nil
	}
	if req.ProjectID != nil {
		if _, err = ownedProject(ctx, s.projects, req.UserID, *req.ProjectID); err != nil {
			return nil, err
		}
	}

	now := time.Now().UTC()
	task = &domain.Task{
		ID:             uuid.New().String(),
		UserID:         req.UserID,
		ProjectID:      req.ProjectID,
		Title:          req.Title,
		Status:         domain.TaskTodo,
		EstimatedCells: req.EstimatedCells,
		CreatedAt:      now,
		UpdatedAt:      now,
	}
	if err = task.Validate(); err != nil {
		return nil, contract.Invalid("%v", err)
	}
	if err = s.tasks.Create(ctx, task); err != nil {
		return nil, err
	}
	return task, nil
}

func (s *taskService) Get(ctx context.Context, userID, id string) (task *domain.Task, err error) {
	done := track(ctx, s.observer, "get-task", map[string]any{"task_id": id})
	defer func() { done(err) }()

	return ownedTask(ctx, s.tasks, userID, id)
}

func (s *taskService) List(ctx context.Context, req contract.ListTasksRequest) (tasks []*domain.Task, err error) {
	done := track(ctx, s.observer, "list-tasks", map[string]any{"user_id": req.UserID})
	defer func() { done(err) }()

	if req.Status != nil && !domain.ValidTaskStatuses[*req.Status] {
		return nil, contract.Invalid("unknown task status %q", *req.Status)
	}
	return s.tasks.ListByUser(ctx, req.UserID, repository.TaskFilter{Status: req.Status, ProjectID: req.ProjectID})
}

func (s *taskService) Update(ctx context.Context, req contract.UpdateTaskRequest) (task *domain.Task, err error) {
	done := track(ctx, s.observer, "update-task", map[string]any{"task_id": req.ID})
	defer func() { done(err) }()

	if err = req.Validate(); err != nil {
		return nil, err
	}
	task, err = ownedTask(ctx, s.tasks, req.UserID, req.ID)
	if err != nil {
		return nil, err
	}

	if req.Title != nil {
		if strings.TrimSpace(*req.Title) == "" {
			return nil, contract.Invalid("task title cannot be blank")
		}
		task.Title = *req.Title
	}
	if req.EstimatedCells != nil {
		task.EstimatedCells = *req.EstimatedCells
	}
	if req.CompletedCells != nil {
		task.CompletedCells = *req.CompletedCells
	}
	if req.Status != nil {
		task.Status = *req.Status
	}
	if err = task.Validate(); err != nil {
		return nil, contract.Invalid("%v", err)
	}
	task.UpdatedAt = time.Now().UTC()

	if err = s.tasks.Update(ctx, task); err != nil {
		return nil, notFoundAs(err, "task", req.ID)
	}
	return task, nil
}

func (s *taskService) Delete(ctx context.Context, userID, id string) (err error) {
	done := track(ctx, s.observer, "delete-task", map[string]any{"task_id": id})
	defer func() { done(err) }()

	if id == "" {
		return contract.Invalid("task ID is required")
	}
	if _, err = ownedTask(ctx, s.tasks, userID, id); err != nil {
		return err
	}
	return notFoundAs(s.tasks.Delete(ctx, id), "task", id)
}

// ownedTask loads a task and hides other users' tasks behind NOT_FOUND.
func ownedTask(ctx context.Context, tasks repository.TaskRepo, userID, id string) (*domain.Task, error) {
	if id == "" {
		return nil, contract.Invalid("task ID is required")
	}
	t, err := tasks.GetByID(ctx, id)
	if err != nil {
		return nil, notFoundAs(err, "task", id)
	}
	if t.UserID != userID {
		return nil, contract.NotFound("task %s not found", id)
	}
	return t, nil
}

func ownedProject(ctx context.Context, projects repository.ProjectRepo, userID, id string) (*domain.Project, error) {
	if id == "" {
		return nil, contract.Invalid("project ID is required")
	}
	p, err := projects.GetByID(ctx, id)
	if err != nil {
		return nil, notFoundAs(err, "project", id)
	}
	if p.UserID != userID {
		return nil, contract.NotFound("project %s not found", id)
	}
	return p, nil
}
