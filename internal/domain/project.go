package domain

import (
	"fmt"
	"regexp"
	"strings"
	"time"
)

// DefaultProjectColor is the honey colour given to combs created without one.
const DefaultProjectColor = "#F5B700"

var hexColorPattern = regexp.MustCompile(`^#([0-9a-fA-F]{3}|[0-9a-fA-F]{6})$`)

// Project is a comb: a named grouping of tasks owned by one user.
type Project struct {
	ID        string
	UserID    string
	Title     string
	Color     string
	CreatedAt time.Time
	UpdatedAt time.Time
}

// Validate checks the title and normalizes the colour. An empty colour is
// replaced with DefaultProjectColor.
func (p *Project) Validate() error {
	p.Title = strings.TrimSpace(p.Title)
	if p.Title == "" {
		return fmt.Errorf("project title is required")
	}
	if p.Color == "" {
		p.Color = DefaultProjectColor
		return nil
	}
	if !hexColorPattern.MatchString(p.Color) {
		return fmt.Errorf("project color %q must be a hex colour like #F5B700", p.Color)
	}
	return nil
}

// DisplayID returns the first 8 characters of the ID.
func (p *Project) DisplayID() string {
	if len(p.ID) >= 8 {
		return p.ID[:8]
	}
	return p.ID
}
