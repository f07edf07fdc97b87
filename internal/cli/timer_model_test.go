package cli

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/alexanderramin/hive/internal/domain"
	"github.com/alexanderramin/hive/internal/teatest"
)

func newTimerDriver(t *testing.T, total time.Duration) *teatest.Driver {
	t.Helper()
	d := teatest.New(t, newTimerModel(domain.TimerCell, "Write report", total), teatest.WithSize(80, 24))
	d.Init()
	return d
}

func timerState(t *testing.T, d *teatest.Driver) timerModel {
	t.Helper()
	m, ok := d.Model.(timerModel)
	require.True(t, ok)
	return m
}

func TestTimerModel_CountsDownAndFinishes(t *testing.T) {
	d := newTimerDriver(t, 3*time.Second)
	assert.Contains(t, d.View(), "00:03")
	assert.Contains(t, d.View(), "Write report")

	d.Send(tickMsg(time.Now()))
	d.Send(tickMsg(time.Now()))
	assert.Contains(t, d.View(), "00:01")
	assert.False(t, d.Quitting)

	d.Send(tickMsg(time.Now()))
	m := timerState(t, d)
	assert.True(t, m.finished)
	assert.False(t, m.quitting)
	assert.True(t, d.Quitting)
	assert.Contains(t, d.View(), "Time's up!")
}

func TestTimerModel_PauseHoldsTime(t *testing.T) {
	d := newTimerDriver(t, 10*time.Second)

	d.Press("space")
	d.Send(tickMsg(time.Now()))
	d.Send(tickMsg(time.Now()))
	assert.Equal(t, 10*time.Second, timerState(t, d).remaining)
	assert.Contains(t, d.View(), "paused")

	d.Press("p")
	d.Send(tickMsg(time.Now()))
	assert.Equal(t, 9*time.Second, timerState(t, d).remaining)
	assert.NotContains(t, d.View(), "paused")
}

func TestTimerModel_GiveUp(t *testing.T) {
	for _, k := range []string{"q", "esc", "ctrl+c"} {
		d := newTimerDriver(t, time.Minute)
		d.Send(tickMsg(time.Now()))
		d.Press(k)

		m := timerState(t, d)
		assert.True(t, m.quitting, k)
		assert.False(t, m.finished, k)
		assert.True(t, d.Quitting, k)
	}
}

func TestTimerModel_HelpToggle(t *testing.T) {
	d := newTimerDriver(t, time.Minute)
	assert.False(t, timerState(t, d).help.ShowAll)

	d.Press("?")
	assert.True(t, timerState(t, d).help.ShowAll)
	assert.Contains(t, d.View(), "give up")
}

func TestTimerModel_ElapsedFraction(t *testing.T) {
	m := newTimerModel(domain.TimerRefuel, "", 4*time.Second)
	assert.InDelta(t, 0.0, m.elapsed(), 1e-9)
	m.remaining = time.Second
	assert.InDelta(t, 0.75, m.elapsed(), 1e-9)

	assert.Contains(t, m.View(), "Refuel")
}

func TestTimerTitle(t *testing.T) {
	assert.Equal(t, "Breather", timerTitle(domain.TimerBreather))
	assert.Equal(t, "Refuel", timerTitle(domain.TimerRefuel))
	assert.Contains(t, timerTitle(domain.TimerCell), "Focus cell")
}
