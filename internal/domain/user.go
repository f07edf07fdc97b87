package domain

import "time"

// User holds the account profile, planning settings, and reward totals.
type User struct {
	ID             string
	Email          string
	Name           string
	IntensityMode  IntensityMode
	WorkStart      string // "HH:MM", empty means use the configured default
	WorkEnd        string
	TotalNectar    int
	TotalCells     int
	CurrentStreak  int
	LastActiveDate *time.Time
	CreatedAt      time.Time
	UpdatedAt      time.Time
}

// Intensity returns the user's intensity, defaulting to WORKER_BEE.
func (u *User) Intensity() IntensityMode {
	if ValidIntensityModes[u.IntensityMode] {
		return u.IntensityMode
	}
	return IntensityWorkerBee
}
