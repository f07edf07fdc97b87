package httpapi

import (
	"time"

	"github.com/alexanderramin/hive/internal/contract"
	"github.com/alexanderramin/hive/internal/domain"
	"github.com/alexanderramin/hive/internal/planner"
)

type userJSON struct {
	ID             string     `json:"id"`
	Email          string     `json:"email"`
	Name           string     `json:"name"`
	IntensityMode  string     `json:"intensityMode"`
	TotalNectar    int        `json:"totalNectar"`
	TotalCells     int        `json:"totalCells"`
	CurrentStreak  int        `json:"currentStreak"`
	LastActiveDate *time.Time `json:"lastActiveDate"`
	CreatedAt      time.Time  `json:"createdAt"`
}

func toUserJSON(u *domain.User) userJSON {
	return userJSON{
		ID:             u.ID,
		Email:          u.Email,
		Name:           u.Name,
		IntensityMode:  string(u.Intensity()),
		TotalNectar:    u.TotalNectar,
		TotalCells:     u.TotalCells,
		CurrentStreak:  u.CurrentStreak,
		LastActiveDate: u.LastActiveDate,
		CreatedAt:      u.CreatedAt,
	}
}

type taskJSON struct {
	ID             string    `json:"id"`
	ProjectID      *string   `json:"projectId"`
	Title          string    `json:"title"`
	Status         string    `json:"status"`
	EstimatedCells int       `json:"estimatedCells"`
	CompletedCells int       `json:"completedCells"`
	CreatedAt      time.Time `json:"createdAt"`
	UpdatedAt      time.Time `json:"updatedAt"`
}

func toTaskJSON(t *domain.Task) taskJSON {
	return taskJSON{
		ID:             t.ID,
		ProjectID:      t.ProjectID,
		Title:          t.Title,
		Status:         string(t.Status),
		EstimatedCells: t.EstimatedCells,
		CompletedCells: t.CompletedCells,
		CreatedAt:      t.CreatedAt,
		UpdatedAt:      t.UpdatedAt,
	}
}

func toTaskList(tasks []*domain.Task) []taskJSON {
	out := make([]taskJSON, 0, len(tasks))
	for _, t := range tasks {
		out = append(out, toTaskJSON(t))
	}
	return out
}

type projectJSON struct {
	ID        string      `json:"id"`
	Title     string      `json:"title"`
	Color     string      `json:"color"`
	CreatedAt time.Time   `json:"createdAt"`
	UpdatedAt time.Time   `json:"updatedAt"`
	Tasks     *[]taskJSON `json:"tasks,omitempty"`
}

func toProjectJSON(p *domain.Project, tasks []*domain.Task) projectJSON {
	out := projectJSON{
		ID:        p.ID,
		Title:     p.Title,
		Color:     p.Color,
		CreatedAt: p.CreatedAt,
		UpdatedAt: p.UpdatedAt,
	}
	if tasks != nil {
		list := toTaskList(tasks)
		out.Tasks = &list
	}
	return out
}

type sessionJSON struct {
	ID           string    `json:"id"`
	TaskID       *string   `json:"taskId"`
	Duration     int       `json:"duration"`
	StartTime    time.Time `json:"startTime"`
	EndTime      time.Time `json:"endTime"`
	IsCompleted  bool      `json:"isCompleted"`
	NectarEarned int       `json:"nectarEarned"`
}

func toSessionJSON(s *domain.FocusSession) sessionJSON {
	return sessionJSON{
		ID:           s.ID,
		TaskID:       s.TaskID,
		Duration:     s.DurationMin,
		StartTime:    s.StartedAt,
		EndTime:      s.EndedAt,
		IsCompleted:  s.Completed,
		NectarEarned: s.NectarEarned,
	}
}

type completeSessionJSON struct {
	sessionJSON
	NewStreak   int       `json:"newStreak"`
	TotalNectar int       `json:"totalNectar"`
	Task        *taskJSON `json:"task,omitempty"`
}

func toCompleteSessionJSON(r *contract.CompleteSessionResponse) completeSessionJSON {
	out := completeSessionJSON{
		sessionJSON: toSessionJSON(r.Session),
		NewStreak:   r.NewStreak,
		TotalNectar: r.TotalNectar,
	}
	if r.Task != nil {
		t := toTaskJSON(r.Task)
		out.Task = &t
	}
	return out
}

// entryJSON is one schedule line; times are "HH:MM".
type entryJSON struct {
	Type  planner.EntryKind `json:"type"`
	Title string            `json:"title"`
	Start planner.Clock     `json:"start"`
	End   planner.Clock     `json:"end"`
	Task  *taskJSON         `json:"task,omitempty"`
}

type planJSON struct {
	Date     string        `json:"date"`
	Start    planner.Clock `json:"workStart"`
	End      planner.Clock `json:"workEnd"`
	Message  string        `json:"message,omitempty"`
	Schedule []entryJSON   `json:"schedule"`
}

func toPlanJSON(p *contract.PlanResponse) planJSON {
	out := planJSON{
		Date:     p.Date.Format(time.DateOnly),
		Start:    p.Window.WindowStart,
		End:      p.Window.WindowEnd,
		Message:  p.Message,
		Schedule: make([]entryJSON, 0, len(p.Schedule)),
	}
	for _, e := range p.Schedule {
		line := entryJSON{Type: e.Kind, Title: e.Title, Start: e.Start, End: e.End}
		if e.Task != nil {
			t := toTaskJSON(e.Task)
			line.Task = &t
		}
		out.Schedule = append(out.Schedule, line)
	}
	return out
}

type statsJSON struct {
	Completed   int `json:"completed"`
	Target      int `json:"target"`
	Remaining   int `json:"remaining"`
	Streak      int `json:"streak"`
	TotalNectar int `json:"totalNectar"`
	TotalCells  int `json:"totalCells"`
}

func toStatsJSON(s *contract.DailyStats) statsJSON {
	return statsJSON{
		Completed:   s.Completed,
		Target:      s.Target,
		Remaining:   s.Remaining(),
		Streak:      s.Streak,
		TotalNectar: s.TotalNectar,
		TotalCells:  s.TotalCells,
	}
}

type authJSON struct {
	User      userJSON  `json:"user"`
	Token     string    `json:"token,omitempty"`
	ExpiresAt time.Time `json:"expiresAt"`
}

type successJSON struct {
	Success bool `json:"success"`
}
