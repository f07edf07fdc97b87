package planner

import (
	"fmt"
	"math/rand"
	"sort"
	"testing"
	"time"

	"github.com/alexanderramin/hive/internal/domain"
	"github.com/stretchr/testify/assert"
)

// randomEvents returns sorted, non-overlapping events between 06:00 and 20:00.
func randomEvents(rng *rand.Rand) []FixedEvent {
	n := rng.Intn(6)
	var events []FixedEvent
	cursor := MustClock("06:00")
	for i := 0; i < n; i++ {
		start := cursor + Clock(rng.Intn(120))
		end := start + Clock(rng.Intn(90)+5)
		if end > MustClock("20:00") {
			break
		}
		events = append(events, FixedEvent{Title: fmt.Sprintf("ev%d", i), Start: start, End: end})
		cursor = end
	}
	rng.Shuffle(len(events), func(i, j int) { events[i], events[j] = events[j], events[i] })
	return events
}

func randomTasks(rng *rand.Rand) []*domain.Task {
	n := rng.Intn(15)
	tasks := make([]*domain.Task, n)
	for i := range tasks {
		tasks[i] = &domain.Task{ID: fmt.Sprintf("t%d", i), Title: fmt.Sprintf("task %d", i), Status: domain.TaskTodo, EstimatedCells: rng.Intn(4) + 1}
	}
	return tasks
}

func randomOptions(rng *rand.Rand) Options {
	start := MustClock("07:00") + Clock(rng.Intn(180))
	return Options{
		WindowStart: start,
		WindowEnd:   start + Clock(rng.Intn(600)+30),
		Focus:       time.Duration(rng.Intn(50)+10) * time.Minute,
		Break:       time.Duration(rng.Intn(15)) * time.Minute,
	}
}

func TestBuild_Properties(t *testing.T) {
	rng := rand.New(rand.NewSource(42))

	for trial := 0; trial < 500; trial++ {
		tasks := randomTasks(rng)
		events := randomEvents(rng)
		opts := randomOptions(rng)

		got := Build(tasks, events, opts)

		// Sorted and pairwise non-overlapping.
		assert.True(t, sort.SliceIsSorted(got, func(i, j int) bool { return got[i].Start < got[j].Start }),
			"trial %d: schedule must be sorted", trial)
		for i := 1; i < len(got); i++ {
			assert.LessOrEqual(t, got[i-1].End, got[i].Start, "trial %d: entries %d and %d overlap", trial, i-1, i)
		}

		focusSeen := 0
		for _, e := range got {
			if e.Kind != KindFocus {
				continue
			}
			// Inside the window.
			assert.GreaterOrEqual(t, e.Start, opts.WindowStart, "trial %d", trial)
			assert.LessOrEqual(t, e.End, opts.WindowEnd, "trial %d", trial)
			// Disjoint from every event.
			for _, ev := range events {
				assert.False(t, e.Start < ev.End && ev.Start < e.End,
					"trial %d: block %s-%s hits %s %s-%s", trial, e.Start, e.End, ev.Title, ev.Start, ev.End)
			}
			// Tasks consumed in input order.
			assert.Same(t, tasks[focusSeen], e.Task, "trial %d", trial)
			focusSeen++
		}
		assert.LessOrEqual(t, focusSeen, len(tasks))

		// Idempotent.
		assert.Equal(t, got, Build(tasks, events, opts), "trial %d: second build differs", trial)

		if len(tasks) == 0 {
			assert.Empty(t, got, "trial %d", trial)
		}
	}
}
