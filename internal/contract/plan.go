package contract

import (
	"time"

	"github.com/alexanderramin/hive/internal/planner"
)

// NoTasksMessage accompanies an empty plan when nothing is pending.
const NoTasksMessage = "No tasks to plan"

type PlanResponse struct {
	Date     time.Time
	Window   planner.Options
	Message  string
	Schedule []planner.Entry
}
