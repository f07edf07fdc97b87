package httpapi

import (
	"github.com/gofiber/fiber/v2"

	"github.com/alexanderramin/hive/internal/contract"
	"github.com/alexanderramin/hive/internal/domain"
)

func (s *Server) listProjects(c *fiber.Ctx) error {
	list, err := s.svc.Projects.List(c.UserContext(), userID(c))
	if err != nil {
		return err
	}
	out := make([]projectJSON, 0, len(list))
	for _, p := range list {
		tasks := p.Tasks
		if tasks == nil {
			tasks = []*domain.Task{}
		}
		out = append(out, toProjectJSON(p.Project, tasks))
	}
	return c.JSON(out)
}

func (s *Server) createProject(c *fiber.Ctx) error {
	var req contract.CreateProjectRequest
	if err := parseBody(c, &req); err != nil {
		return err
	}
	req.UserID = userID(c)
	created, err := s.svc.Projects.Create(c.UserContext(), req)
	if err != nil {
		return err
	}
	return c.Status(fiber.StatusCreated).JSON(toProjectJSON(created.Project, created.Tasks))
}

func (s *Server) updateProject(c *fiber.Ctx) error {
	var req contract.UpdateProjectRequest
	if err := parseBody(c, &req); err != nil {
		return err
	}
	req.UserID = userID(c)
	p, err := s.svc.Projects.Update(c.UserContext(), req)
	if err != nil {
		return err
	}
	return c.JSON(toProjectJSON(p, nil))
}

func (s *Server) deleteProject(c *fiber.Ctx) error {
	id := c.Query("id")
	if id == "" {
		return contract.Invalid("project ID is required")
	}
	if err := s.svc.Projects.Delete(c.UserContext(), userID(c), id); err != nil {
		return err
	}
	return c.JSON(successJSON{Success: true})
}

func (s *Server) listTasks(c *fiber.Ctx) error {
	req := contract.ListTasksRequest{UserID: userID(c)}
	if v := c.Query("status"); v != "" {
		st := domain.TaskStatus(v)
		req.Status = &st
	}
	if v := c.Query("projectId"); v != "" {
		req.ProjectID = &v
	}
	tasks, err := s.svc.Tasks.List(c.UserContext(), req)
	if err != nil {
		return err
	}
	return c.JSON(toTaskList(tasks))
}

func (s *Server) createTask(c *fiber.Ctx) error {
	var req contract.CreateTaskRequest
	if err := parseBody(c, &req); err != nil {
		return err
	}
	req.UserID = userID(c)
	t, err := s.svc.Tasks.Create(c.UserContext(), req)
	if err != nil {
		return err
	}
	return c.Status(fiber.StatusCreated).JSON(toTaskJSON(t))
}

func (s *Server) updateTask(c *fiber.Ctx) error {
	var req contract.UpdateTaskRequest
	if err := parseBody(c, &req); err != nil {
		return err
	}
	req.UserID = userID(c)
	t, err := s.svc.Tasks.Update(c.UserContext(), req)
	if err != nil {
		return err
	}
	return c.JSON(toTaskJSON(t))
}

func (s *Server) deleteTask(c *fiber.Ctx) error {
	id := c.Query("id")
	if id == "" {
		return contract.Invalid("task ID is required")
	}
	if err := s.svc.Tasks.Delete(c.UserContext(), userID(c), id); err != nil {
		return err
	}
	return c.JSON(successJSON{Success: true})
}

func (s *Server) plan(c *fiber.Ctx) error {
	p, err := s.svc.Plan.Today(c.UserContext(), userID(c), s.now())
	if err != nil {
		return err
	}
	return c.JSON(toPlanJSON(p))
}

func (s *Server) completeSession(c *fiber.Ctx) error {
	var req contract.CompleteSessionRequest
	if len(c.Body()) > 0 {
		if err := parseBody(c, &req); err != nil {
			return err
		}
	}
	req.UserID = userID(c)
	resp, err := s.svc.Sessions.Complete(c.UserContext(), req)
	if err != nil {
		return err
	}
	return c.Status(fiber.StatusCreated).JSON(toCompleteSessionJSON(resp))
}

func (s *Server) listSessions(c *fiber.Ctx) error {
	days := c.QueryInt("days", 7)
	list, err := s.svc.Sessions.ListRecent(c.UserContext(), userID(c), days, s.now())
	if err != nil {
		return err
	}
	out := make([]sessionJSON, 0, len(list))
	for _, fs := range list {
		out = append(out, toSessionJSON(fs))
	}
	return c.JSON(out)
}

func (s *Server) dailyStats(c *fiber.Ctx) error {
	st, err := s.svc.Stats.Daily(c.UserContext(), userID(c), s.now())
	if err != nil {
		return err
	}
	return c.JSON(toStatsJSON(st))
}

func (s *Server) getSettings(c *fiber.Ctx) error {
	st, err := s.svc.Settings.Get(c.UserContext(), userID(c))
	if err != nil {
		return err
	}
	return c.JSON(st)
}

func (s *Server) updateSettings(c *fiber.Ctx) error {
	var req contract.UpdateSettingsRequest
	if err := parseBody(c, &req); err != nil {
		return err
	}
	req.UserID = userID(c)
	st, err := s.svc.Settings.Update(c.UserContext(), req)
	if err != nil {
		return err
	}
	return c.JSON(st)
}
