package contract

import (
	"time"

	"github.com/alexanderramin/hive/internal/domain"
)

// CompleteSessionRequest reports a finished focus cell. Zero times default to
// now, and a zero duration to one cell.
type CompleteSessionRequest struct {
	UserID      string     `json:"-"`
	TaskID      *string    `json:"taskId,omitempty"`
	DurationMin int        `json:"duration"`
	StartedAt   *time.Time `json:"startTime,omitempty"`
	EndedAt     *time.Time `json:"endTime,omitempty"`
}

func (r CompleteSessionRequest) Validate() error {
	if r.UserID == "" {
		return Invalid("user ID is required")
	}
	if r.DurationMin < 0 {
		return Invalid("duration cannot be negative")
	}
	if r.StartedAt != nil && r.EndedAt != nil && r.EndedAt.Before(*r.StartedAt) {
		return Invalid("endTime is before startTime")
	}
	return nil
}

type CompleteSessionResponse struct {
	Session      *domain.FocusSession
	Task         *domain.Task
	NectarEarned int
	NewStreak    int
	TotalNectar  int
}

type DailyStats struct {
	Completed   int
	Target      int
	Streak      int
	TotalNectar int
	TotalCells  int
}

// Remaining is how many cells are left to hit today's target.
func (s DailyStats) Remaining() int {
	if r := s.Target - s.Completed; r > 0 {
		return r
	}
	return 0
}
