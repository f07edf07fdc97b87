// Package planner lays out one day of focus blocks around fixed events.
//
// Build is a single greedy forward sweep over the working window. It is pure:
// the same tasks, events and options always give the same schedule.
package planner

import (
	"time"

	"github.com/alexanderramin/hive/internal/domain"
)

type EntryKind string

const (
	KindEvent EntryKind = "event"
	KindFocus EntryKind = "focusBlock"
)

// FixedEvent is a busy interval of the day, [Start, End).
type FixedEvent struct {
	Title string
	Start Clock
	End   Clock
}

// Contains reports whether c falls inside [Start, End).
func (e FixedEvent) Contains(c Clock) bool {
	return e.Start <= c && c < e.End
}

// Entry is one line of a schedule. Task is set only for focus blocks.
type Entry struct {
	Kind  EntryKind
	Title string
	Task  *domain.Task
	Start Clock
	End   Clock
}

// Options bound the sweep. Focus must be positive; a zero Options is replaced
// field by field with DefaultOptions.
type Options struct {
	WindowStart Clock
	WindowEnd   Clock
	Focus       time.Duration
	Break       time.Duration
}

const (
	DefaultFocus = 25 * time.Minute
	DefaultBreak = 5 * time.Minute
)

func DefaultOptions() Options {
	return Options{
		WindowStart: MustClock("09:00"),
		WindowEnd:   MustClock("17:00"),
		Focus:       DefaultFocus,
		Break:       DefaultBreak,
	}
}

func (o Options) normalized() Options {
	if o.Focus < time.Minute {
		o.Focus = DefaultFocus
	}
	if o.Break < 0 {
		o.Break = 0
	}
	if o.WindowStart == 0 && o.WindowEnd == 0 {
		def := DefaultOptions()
		o.WindowStart, o.WindowEnd = def.WindowStart, def.WindowEnd
	}
	return o
}

// Build assigns one focus block to each pending task, in the order given,
// starting at the window start. When the cursor sits inside a fixed event the
// event is emitted and the cursor jumps to its end; only the first matching
// event is honored per step and overlapping events are not merged. A block that
// would run into a later event is pushed to that event's start. Tasks that do
// not fit before the window end are left out. Non-pending tasks are skipped.
func Build(tasks []*domain.Task, events []FixedEvent, opts Options) []Entry {
	opts = opts.normalized()

	queue := make([]*domain.Task, 0, len(tasks))
	for _, t := range tasks {
		if t != nil && t.IsPending() {
			queue = append(queue, t)
		}
	}

	var schedule []Entry
	cursor := opts.WindowStart
	next := 0

	for cursor < opts.WindowEnd && next < len(queue) {
		if ev, ok := eventAt(events, cursor); ok {
			schedule = append(schedule, Entry{Kind: KindEvent, Title: ev.Title, Start: ev.Start, End: ev.End})
			cursor = ev.End
			continue
		}

		blockEnd := cursor.Add(opts.Focus)
		if blockEnd > opts.WindowEnd {
			break
		}
		if start, ok := firstStartWithin(events, cursor, blockEnd); ok {
			cursor = start
			continue
		}

		task := queue[next]
		schedule = append(schedule, Entry{Kind: KindFocus, Title: task.Title, Task: task, Start: cursor, End: blockEnd})
		cursor = blockEnd.Add(opts.Break)
		next++
	}

	return schedule
}

func eventAt(events []FixedEvent, c Clock) (FixedEvent, bool) {
	for _, ev := range events {
		if ev.Contains(c) {
			return ev, true
		}
	}
	return FixedEvent{}, false
}

// firstStartWithin returns the earliest event start inside (from, to).
func firstStartWithin(events []FixedEvent, from, to Clock) (Clock, bool) {
	found := false
	var earliest Clock
	for _, ev := range events {
		if ev.End <= ev.Start {
			continue
		}
		if ev.Start > from && ev.Start < to && (!found || ev.Start < earliest) {
			earliest, found = ev.Start, true
		}
	}
	return earliest, found
}

// FocusCount returns how many focus blocks the schedule holds.
func FocusCount(schedule []Entry) int {
	n := 0
	for _, e := range schedule {
		if e.Kind == KindFocus {
			n++
		}
	}
	return n
}
