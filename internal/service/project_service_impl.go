package service

import (
	"context"
	"strings"
	"time"

	"github.com/alexanderramin/hive/internal/contract"
	"github.com/alexanderramin/hive/internal/db"
	"github.com/alexanderramin/hive/internal/domain"
	"github.com/alexanderramin/hive/internal/repository"
	"github.com/google/uuid"
)

type projectService struct {
	projects repository.ProjectRepo
	tasks    repository.TaskRepo
	uow      db.UnitOfWork
	observer UseCaseObserver
}

func NewProjectService(
	projects repository.ProjectRepo,
	tasks repository.TaskRepo,
	uow db.UnitOfWork,
	observers ...UseCaseObserver,
) ProjectService {
	return &projectService{projects: projects, tasks: tasks, uow: uow, observer: useCaseObserverOrNoop(observers)}
}

// Create stores the project and any seed tasks in one transaction.
func (s *projectService) Create(ctx context.Context, req contract.CreateProjectRequest) (out *contract.ProjectWithTasks, err error) {
	fields := map[string]any{"user_id": req.UserID, "task_count": len(req.Tasks)}
	done := track(ctx, s.observer, "create-project", fields)
	defer func() { done(err) }()

	if err = req.Validate(); err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	project := &domain.Project{
		ID:        uuid.New().String(),
		UserID:    req.UserID,
		Title:     req.Title,
		Color:     strings.TrimSpace(req.Color),
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err = project.Validate(); err != nil {
		return nil, contract.Invalid("%v", err)
	}

	tasks := make([]*domain.Task, 0, len(req.Tasks))
	for i, in := range req.Tasks {
		// Offset creation times so list order matches request order.
		at := now.Add(time.Duration(i) * time.Millisecond)
		t := &domain.Task{
			ID:             uuid.New().String(),
			UserID:         req.UserID,
			ProjectID:      &project.ID,
			Title:          in.Title,
			EstimatedCells: in.EstimatedCells,
			CreatedAt:      at,
			UpdatedAt:      at,
		}
		if err = t.Validate(); err != nil {
			return nil, contract.Invalid("task %d: %v", i+1, err)
		}
		tasks = append(tasks, t)
	}

	err = s.uow.WithinTx(ctx, func(ctx context.Context, tx db.DBTX) error {
		if err := repository.NewSQLiteProjectRepo(tx).Create(ctx, project); err != nil {
			return err
		}
		txTasks := repository.NewSQLiteTaskRepo(tx)
		for _, t := range tasks {
			if err := txTasks.Create(ctx, t); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	fields["project_id"] = project.ID
	return &contract.ProjectWithTasks{Project: project, Tasks: tasks}, nil
}

func (s *projectService) Get(ctx context.Context, userID, id string) (out *contract.ProjectWithTasks, err error) {
	done := track(ctx, s.observer, "get-project", map[string]any{"project_id": id})
	defer func() { done(err) }()

	p, err := ownedProject(ctx, s.projects, userID, id)
	if err != nil {
		return nil, err
	}
	tasks, err := s.tasks.ListByProject(ctx, p.ID)
	if err != nil {
		return nil, err
	}
	return &contract.ProjectWithTasks{Project: p, Tasks: tasks}, nil
}

func (s *projectService) List(ctx context.Context, userID string) (out []contract.ProjectWithTasks, err error) {
	done := track(ctx, s.observer, "list-projects", map[string]any{"user_id": userID})
	defer func() { done(err) }()

	projects, err := s.projects.ListByUser(ctx, userID)
	if err != nil {
		return nil, err
	}
	out = make([]contract.ProjectWithTasks, 0, len(projects))
	for _, p := range projects {
		tasks, err := s.tasks.ListByProject(ctx, p.ID)
		if err != nil {
			return nil, err
		}
		out = append(out, contract.ProjectWithTasks{Project: p, Tasks: tasks})
	}
	return out, nil
}

func (s *projectService) Update(ctx context.Context, req contract.UpdateProjectRequest) (p *domain.Project, err error) {
	done := track(ctx, s.observer, "update-project", map[string]any{"project_id": req.ID})
	defer func() { done(err) }()

	if err = req.Validate(); err != nil {
		return nil, err
	}
	p, err = ownedProject(ctx, s.projects, req.UserID, req.ID)
	if err != nil {
		return nil, err
	}
	if req.Title != nil {
		p.Title = *req.Title
	}
	if req.Color != nil {
		p.Color = strings.TrimSpace(*req.Color)
	}
	if err = p.Validate(); err != nil {
		return nil, contract.Invalid("%v", err)
	}
	p.UpdatedAt = time.Now().UTC()
	if err = s.projects.Update(ctx, p); err != nil {
		return nil, notFoundAs(err, "project", req.ID)
	}
	return p, nil
}

// Delete removes the project; its tasks go with it.
func (s *projectService) Delete(ctx context.Context, userID, id string) (err error) {
	done := track(ctx, s.observer, "delete-project", map[string]any{"project_id": id})
	defer func() { done(err) }()

	if _, err = ownedProject(ctx, s.projects, userID, id); err != nil {
		return err
	}
	return notFoundAs(s.projects.Delete(ctx, id), "project", id)
}
