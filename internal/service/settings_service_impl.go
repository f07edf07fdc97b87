package service

import (
	"context"
	"time"

	"github.com/alexanderramin/hive/internal/contract"
	"github.com/alexanderramin/hive/internal/domain"
	"github.com/alexanderramin/hive/internal/planner"
	"github.com/alexanderramin/hive/internal/repository"
	"github.com/alexanderramin/hive/internal/reward"
)

type settingsService struct {
	users    repository.UserRepo
	defaults planner.Options
	observer UseCaseObserver
}

// NewSettingsService reports the configured window for users who never set one.
func NewSettingsService(users repository.UserRepo, defaults planner.Options, observers ...UseCaseObserver) SettingsService {
	return &settingsService{users: users, defaults: defaults, observer: useCaseObserverOrNoop(observers)}
}

func (s *settingsService) Get(ctx context.Context, userID string) (out *contract.Settings, err error) {
	done := track(ctx, s.observer, "get-settings", map[string]any{"user_id": userID})
	defer func() { done(err) }()

	user, err := s.users.GetByID(ctx, userID)
	if err != nil {
		return nil, notFoundAs(err, "user", userID)
	}
	return s.settingsOf(user), nil
}

func (s *settingsService) Update(ctx context.Context, req contract.UpdateSettingsRequest) (out *contract.Settings, err error) {
	done := track(ctx, s.observer, "update-settings", map[string]any{"user_id": req.UserID})
	defer func() { done(err) }()

	if err = req.Validate(); err != nil {
		return nil, err
	}
	user, err := s.users.GetByID(ctx, req.UserID)
	if err != nil {
		return nil, notFoundAs(err, "user", req.UserID)
	}

	if req.IntensityMode != nil {
		user.IntensityMode = *req.IntensityMode
	}
	if req.WorkStartTime != nil {
		user.WorkStart = *req.WorkStartTime
	}
	if req.WorkEndTime != nil {
		user.WorkEnd = *req.WorkEndTime
	}

	merged := s.settingsOf(user)
	start, _ := planner.ParseClock(merged.WorkStartTime)
	end, _ := planner.ParseClock(merged.WorkEndTime)
	if end <= start {
		return nil, contract.Invalid("work end %s must be after work start %s", merged.WorkEndTime, merged.WorkStartTime)
	}

	user.UpdatedAt = time.Now().UTC()
	if err = s.users.UpdateSettings(ctx, user); err != nil {
		return nil, notFoundAs(err, "user", req.UserID)
	}
	return merged, nil
}

func (s *settingsService) settingsOf(u *domain.User) *contract.Settings {
	mode := u.Intensity()
	return &contract.Settings{
		IntensityMode: mode,
		WorkStartTime: domain.CoalesceStr(u.WorkStart, s.defaults.WindowStart.String()),
		WorkEndTime:   domain.CoalesceStr(u.WorkEnd, s.defaults.WindowEnd.String()),
		DailyTarget:   reward.DailyTarget(mode),
	}
}
