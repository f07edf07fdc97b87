// Package reward holds the nectar, streak and daily quota rules applied when
// a cell is filled.
package reward

import (
	"time"

	"github.com/alexanderramin/hive/internal/domain"
)

// Rules configures nectar payouts.
type Rules struct {
	Base                int
	EarlyBirdBonus      int
	EarlyBirdBeforeHour int
	StreakBonus         int
	StreakThreshold     int
}

func DefaultRules() Rules {
	return Rules{
		Base:                10,
		EarlyBirdBonus:      5,
		EarlyBirdBeforeHour: 10,
		StreakBonus:         2,
		StreakThreshold:     3,
	}
}

// Nectar returns the payout for a cell that ended at endedAt. The hour is read
// in endedAt's location. streak is the value before this cell is counted.
func (r Rules) Nectar(endedAt time.Time, streak int) int {
	n := r.Base
	if endedAt.Hour() < r.EarlyBirdBeforeHour {
		n += r.EarlyBirdBonus
	}
	if streak > r.StreakThreshold {
		n += r.StreakBonus
	}
	return n
}

// NextStreak compares calendar days in now's location: same day keeps the
// streak, the following day extends it, anything else starts over at 1.
func NextStreak(lastActive *time.Time, current int, now time.Time) int {
	if lastActive == nil {
		return 1
	}
	switch DaysBetween(lastActive.In(now.Location()), now) {
	case 0:
		if current < 1 {
			return 1
		}
		return current
	case 1:
		return current + 1
	default:
		return 1
	}
}

// DaysBetween counts calendar-day boundaries from a to b, in b's location.
func DaysBetween(a, b time.Time) int {
	loc := b.Location()
	ay, am, ad := a.In(loc).Date()
	by, bm, bd := b.Date()
	// Noon avoids DST edges when dividing by 24h.
	da := time.Date(ay, am, ad, 12, 0, 0, 0, time.UTC)
	db := time.Date(by, bm, bd, 12, 0, 0, 0, time.UTC)
	return int(db.Sub(da).Hours() / 24)
}

// StartOfDay returns local midnight of t's day.
func StartOfDay(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, t.Location())
}

// DailyTarget is the number of cells an intensity mode aims for per day.
func DailyTarget(mode domain.IntensityMode) int {
	switch mode {
	case domain.IntensityGlider:
		return 4
	case domain.IntensityHero:
		return 12
	default:
		return 8
	}
}
