package service

import (
	"context"
	"time"

	"github.com/alexanderramin/hive/internal/contract"
	"github.com/alexanderramin/hive/internal/repository"
	"github.com/alexanderramin/hive/internal/reward"
)

type statsService struct {
	users    repository.UserRepo
	sessions repository.SessionRepo
	observer UseCaseObserver
}

func NewStatsService(users repository.UserRepo, sessions repository.SessionRepo, observers ...UseCaseObserver) StatsService {
	return &statsService{users: users, sessions: sessions, observer: useCaseObserverOrNoop(observers)}
}

// Daily counts cells completed since local midnight of now. A streak whose
// last active day is before yesterday is reported as broken.
func (s *statsService) Daily(ctx context.Context, userID string, now time.Time) (stats *contract.DailyStats, err error) {
	fields := map[string]any{"user_id": userID}
	done := track(ctx, s.observer, "daily-stats", fields)
	defer func() { done(err) }()

	if userID == "" {
		return nil, contract.Invalid("user ID is required")
	}
	user, err := s.users.GetByID(ctx, userID)
	if err != nil {
		return nil, notFoundAs(err, "user", userID)
	}
	completed, err := s.sessions.CountCompletedSince(ctx, userID, reward.StartOfDay(now))
	if err != nil {
		return nil, err
	}

	streak := user.CurrentStreak
	if user.LastActiveDate == nil || reward.DaysBetween(*user.LastActiveDate, now) > 1 {
		streak = 0
	}

	fields["completed"] = completed
	return &contract.DailyStats{
		Completed:   completed,
		Target:      reward.DailyTarget(user.Intensity()),
		Streak:      streak,
		TotalNectar: user.TotalNectar,
		TotalCells:  user.TotalCells,
	}, nil
}
