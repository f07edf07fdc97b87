package domain

type TaskStatus string

const (
	TaskTodo       TaskStatus = "TODO"
	TaskInProgress TaskStatus = "IN_PROGRESS"
	TaskDone       TaskStatus = "DONE"
	TaskArchived   TaskStatus = "ARCHIVED"
)

// ValidTaskStatuses is the canonical set of accepted task status strings.
var ValidTaskStatuses = map[TaskStatus]bool{
	TaskTodo: true, TaskInProgress: true, TaskDone: true, TaskArchived: true,
}

type IntensityMode string

const (
	IntensityGlider    IntensityMode = "GLIDER"
	IntensityWorkerBee IntensityMode = "WORKER_BEE"
	IntensityHero      IntensityMode = "HERO_MODE"
)

// ValidIntensityModes is the canonical set of accepted intensity strings.
var ValidIntensityModes = map[IntensityMode]bool{
	IntensityGlider: true, IntensityWorkerBee: true, IntensityHero: true,
}

// TimerMode names the three timer lengths a user can run.
type TimerMode string

const (
	TimerCell     TimerMode = "cell"
	TimerBreather TimerMode = "breather"
	TimerRefuel   TimerMode = "refuel"
)

// DefaultMinutes returns the stock duration for the timer mode.
func (m TimerMode) DefaultMinutes() int {
	switch m {
	case TimerBreather:
		return 5
	case TimerRefuel:
		return 15
	default:
		return 25
	}
}
