// Package calendar supplies the fixed events the planner schedules around.
package calendar

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/alexanderramin/hive/internal/planner"
	"gopkg.in/yaml.v3"
)

// Source returns the fixed events for a user's day.
type Source interface {
	EventsFor(ctx context.Context, userID string, day time.Time) ([]planner.FixedEvent, error)
}

// Static serves the same events every day to every user.
type Static struct {
	Events []planner.FixedEvent
}

func (s Static) EventsFor(context.Context, string, time.Time) ([]planner.FixedEvent, error) {
	out := make([]planner.FixedEvent, len(s.Events))
	copy(out, s.Events)
	return out, nil
}

// Default is the built-in day used when no calendar file is configured.
func Default() Static {
	return Static{Events: []planner.FixedEvent{
		{Title: "Morning Standup", Start: planner.MustClock("09:00"), End: planner.MustClock("09:30")},
		{Title: "Lunch", Start: planner.MustClock("12:00"), End: planner.MustClock("13:00")},
		{Title: "Team Meeting", Start: planner.MustClock("15:00"), End: planner.MustClock("16:00")},
	}}
}

type fileEvent struct {
	Title string `yaml:"title"`
	Start string `yaml:"start"`
	End   string `yaml:"end"`
}

type file struct {
	Events []fileEvent `yaml:"events"`
}

// Parse reads a YAML document of the form
//
//	events:
//	  - title: Standup
//	    start: "09:00"
//	    end: "09:30"
func Parse(data []byte) (Static, error) {
	var f file
	if err := yaml.Unmarshal(data, &f); err != nil {
		return Static{}, fmt.Errorf("parsing calendar: %w", err)
	}

	events := make([]planner.FixedEvent, 0, len(f.Events))
	for i, fe := range f.Events {
		start, err := planner.ParseClock(fe.Start)
		if err != nil {
			return Static{}, fmt.Errorf("event %d start: %w", i, err)
		}
		end, err := planner.ParseClock(fe.End)
		if err != nil {
			return Static{}, fmt.Errorf("event %d end: %w", i, err)
		}
		if end <= start {
			return Static{}, fmt.Errorf("event %d (%s) ends at %s, not after its start %s", i, fe.Title, end, start)
		}
		events = append(events, planner.FixedEvent{Title: fe.Title, Start: start, End: end})
	}
	return Static{Events: events}, nil
}

// LoadFile reads and parses a calendar file.
func LoadFile(path string) (Static, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Static{}, fmt.Errorf("reading calendar file: %w", err)
	}
	return Parse(data)
}

// Open returns the file source for path, or Default when path is empty.
func Open(path string) (Source, error) {
	if path == "" {
		return Default(), nil
	}
	s, err := LoadFile(path)
	if err != nil {
		return nil, err
	}
	return s, nil
}
