package reward

import (
	"testing"
	"time"

	"github.com/alexanderramin/hive/internal/domain"
	"github.com/stretchr/testify/assert"
)

func at(day, hour, min int) time.Time {
	return time.Date(2026, 3, day, hour, min, 0, 0, time.Local)
}

func TestNectar(t *testing.T) {
	rules := DefaultRules()

	tests := []struct {
		name   string
		ended  time.Time
		streak int
		want   int
	}{
		{"early with long streak", at(10, 9, 15), 5, 17},
		{"early, short streak", at(10, 9, 59), 3, 15},
		{"ten o'clock is not early", at(10, 10, 0), 0, 10},
		{"afternoon with streak", at(10, 15, 0), 4, 12},
		{"streak at threshold earns nothing extra", at(10, 15, 0), 3, 10},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, rules.Nectar(tt.ended, tt.streak))
		})
	}
}

func TestNextStreak(t *testing.T) {
	now := at(10, 14, 0)
	yesterday := at(9, 23, 50)
	earlierToday := at(10, 0, 5)
	threeDaysAgo := at(7, 12, 0)

	assert.Equal(t, 4, NextStreak(&yesterday, 3, now))
	assert.Equal(t, 3, NextStreak(&earlierToday, 3, now))
	assert.Equal(t, 1, NextStreak(&threeDaysAgo, 9, now))
	assert.Equal(t, 1, NextStreak(nil, 0, now))
}

func TestNextStreak_SameDayNeverZero(t *testing.T) {
	now := at(10, 14, 0)
	earlier := at(10, 9, 0)
	assert.Equal(t, 1, NextStreak(&earlier, 0, now))
}

func TestNextStreak_FutureLastActiveResets(t *testing.T) {
	now := at(10, 14, 0)
	tomorrow := at(11, 9, 0)
	assert.Equal(t, 1, NextStreak(&tomorrow, 5, now))
}

func TestNextStreak_UsesNowLocation(t *testing.T) {
	east := time.FixedZone("UTC+9", 9*3600)
	// 20:00 UTC on the 9th is 05:00 on the 10th in UTC+9.
	last := time.Date(2026, 3, 9, 20, 0, 0, 0, time.UTC)
	now := time.Date(2026, 3, 10, 18, 0, 0, 0, east)

	assert.Equal(t, 2, NextStreak(&last, 2, now))
}

func TestDaysBetween_AcrossMonths(t *testing.T) {
	a := time.Date(2026, 2, 28, 23, 0, 0, 0, time.UTC)
	b := time.Date(2026, 3, 1, 1, 0, 0, 0, time.UTC)
	assert.Equal(t, 1, DaysBetween(a, b))
}

func TestStartOfDay(t *testing.T) {
	assert.Equal(t, at(10, 0, 0), StartOfDay(at(10, 17, 42)))
}

func TestDailyTarget(t *testing.T) {
	assert.Equal(t, 4, DailyTarget(domain.IntensityGlider))
	assert.Equal(t, 8, DailyTarget(domain.IntensityWorkerBee))
	assert.Equal(t, 12, DailyTarget(domain.IntensityHero))
	assert.Equal(t, 8, DailyTarget(""))
}
