package planner

import (
	"testing"
	"time"

	"github.com/alexanderramin/hive/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func task(title string) *domain.Task {
	return &domain.Task{ID: "id-" + title, Title: title, Status: domain.TaskTodo, EstimatedCells: 1}
}

func event(title, start, end string) FixedEvent {
	return FixedEvent{Title: title, Start: MustClock(start), End: MustClock(end)}
}

type span struct {
	kind       EntryKind
	title      string
	start, end string
}

func spans(schedule []Entry) []span {
	out := make([]span, len(schedule))
	for i, e := range schedule {
		out[i] = span{e.Kind, e.Title, e.Start.String(), e.End.String()}
	}
	return out
}

func TestBuild_StandupThenThreeBlocks(t *testing.T) {
	tasks := []*domain.Task{task("A"), task("B"), task("C")}
	events := []FixedEvent{event("Standup", "09:00", "09:30"), event("Lunch", "12:00", "13:00")}

	got := Build(tasks, events, DefaultOptions())

	assert.Equal(t, []span{
		{KindEvent, "Standup", "09:00", "09:30"},
		{KindFocus, "A", "09:30", "09:55"},
		{KindFocus, "B", "10:00", "10:25"},
		{KindFocus, "C", "10:30", "10:55"},
	}, spans(got))
	require.NotNil(t, got[1].Task)
	assert.Equal(t, "id-A", got[1].Task.ID)
	assert.Nil(t, got[0].Task)
}

func TestBuild_NoTasks(t *testing.T) {
	got := Build(nil, []FixedEvent{event("Standup", "09:00", "09:30")}, DefaultOptions())
	assert.Empty(t, got)
}

func TestBuild_SkipsNonPending(t *testing.T) {
	done := task("done")
	done.Status = domain.TaskDone
	archived := task("archived")
	archived.Status = domain.TaskArchived
	wip := task("wip")
	wip.Status = domain.TaskInProgress

	got := Build([]*domain.Task{done, archived, wip}, nil, DefaultOptions())
	assert.Equal(t, []span{{KindFocus, "wip", "09:00", "09:25"}}, spans(got))
}

func TestBuild_WindowExhausted(t *testing.T) {
	opts := DefaultOptions()
	opts.WindowStart = MustClock("16:00")

	tasks := []*domain.Task{task("A"), task("B"), task("C")}
	got := Build(tasks, nil, opts)

	// 16:00-16:25, 16:30-16:55; a third would end at 17:25.
	assert.Equal(t, []span{
		{KindFocus, "A", "16:00", "16:25"},
		{KindFocus, "B", "16:30", "16:55"},
	}, spans(got))
}

func TestBuild_BlockEndingExactlyAtWindowEndFits(t *testing.T) {
	opts := DefaultOptions()
	opts.WindowStart = MustClock("16:35")

	got := Build([]*domain.Task{task("A")}, nil, opts)
	assert.Equal(t, []span{{KindFocus, "A", "16:35", "17:00"}}, spans(got))
}

func TestBuild_WindowFilledByEvents(t *testing.T) {
	events := []FixedEvent{event("Offsite", "09:00", "17:00")}
	got := Build([]*domain.Task{task("A")}, events, DefaultOptions())

	assert.Equal(t, []span{{KindEvent, "Offsite", "09:00", "17:00"}}, spans(got))
	assert.Zero(t, FocusCount(got))
}

func TestBuild_BlockPushedPastUpcomingEvent(t *testing.T) {
	// A at 09:00-09:25, cursor 09:30; B would hit the 09:40 call.
	events := []FixedEvent{event("Call", "09:40", "10:00")}
	got := Build([]*domain.Task{task("A"), task("B")}, events, DefaultOptions())

	assert.Equal(t, []span{
		{KindFocus, "A", "09:00", "09:25"},
		{KindEvent, "Call", "09:40", "10:00"},
		{KindFocus, "B", "10:00", "10:25"},
	}, spans(got))
}

func TestBuild_EventInsideBreakIsNotAConflict(t *testing.T) {
	events := []FixedEvent{event("Coffee", "09:25", "09:30")}
	got := Build([]*domain.Task{task("A"), task("B")}, events, DefaultOptions())

	assert.Equal(t, []span{
		{KindFocus, "A", "09:00", "09:25"},
		{KindFocus, "B", "09:30", "09:55"},
	}, spans(got))
}

func TestBuild_OverlappingEventsHonorFirstMatch(t *testing.T) {
	events := []FixedEvent{
		event("Long", "09:00", "10:00"),
		event("Nested", "09:15", "09:45"),
	}
	got := Build([]*domain.Task{task("A")}, events, DefaultOptions())

	assert.Equal(t, []span{
		{KindEvent, "Long", "09:00", "10:00"},
		{KindFocus, "A", "10:00", "10:25"},
	}, spans(got))
}

func TestBuild_AdjacentEventsChained(t *testing.T) {
	events := []FixedEvent{event("One", "09:00", "09:30"), event("Two", "09:30", "10:00")}
	got := Build([]*domain.Task{task("A")}, events, DefaultOptions())

	assert.Equal(t, []span{
		{KindEvent, "One", "09:00", "09:30"},
		{KindEvent, "Two", "09:30", "10:00"},
		{KindFocus, "A", "10:00", "10:25"},
	}, spans(got))
}

func TestBuild_OneBlockPerTaskRegardlessOfEstimate(t *testing.T) {
	big := task("Big")
	big.EstimatedCells = 6
	got := Build([]*domain.Task{big, task("Small")}, nil, DefaultOptions())

	assert.Equal(t, 2, FocusCount(got))
}

func TestBuild_CustomSlot(t *testing.T) {
	opts := Options{WindowStart: MustClock("08:00"), WindowEnd: MustClock("09:00"), Focus: 50 * time.Minute, Break: 10 * time.Minute}
	got := Build([]*domain.Task{task("Deep"), task("Deeper")}, nil, opts)

	assert.Equal(t, []span{{KindFocus, "Deep", "08:00", "08:50"}}, spans(got))
}

func TestBuild_ZeroOptionsUseDefaults(t *testing.T) {
	got := Build([]*domain.Task{task("A")}, nil, Options{})
	assert.Equal(t, []span{{KindFocus, "A", "09:00", "09:25"}}, spans(got))
}

func TestBuild_DoesNotMutateTasks(t *testing.T) {
	a := task("A")
	before := *a
	Build([]*domain.Task{a}, nil, DefaultOptions())
	assert.Equal(t, before, *a)
}
