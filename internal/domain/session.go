package domain

import "time"

// FocusSession is one completed (or abandoned) timer run.
type FocusSession struct {
	ID           string
	UserID       string
	TaskID       *string
	DurationMin  int
	StartedAt    time.Time
	EndedAt      time.Time
	Completed    bool
	NectarEarned int
	CreatedAt    time.Time
}
