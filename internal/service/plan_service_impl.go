package service

import (
	"context"
	"time"

	"github.com/alexanderramin/hive/internal/calendar"
	"github.com/alexanderramin/hive/internal/contract"
	"github.com/alexanderramin/hive/internal/planner"
	"github.com/alexanderramin/hive/internal/repository"
	"github.com/alexanderramin/hive/internal/reward"
	"github.com/rs/zerolog"
)

type planService struct {
	users    repository.UserRepo
	tasks    repository.TaskRepo
	events   calendar.Source
	defaults planner.Options
	observer UseCaseObserver
}

// NewPlanService builds today's schedule from pending tasks and the calendar.
// defaults supplies the window and slot when a user has no window of their own.
func NewPlanService(
	users repository.UserRepo,
	tasks repository.TaskRepo,
	events calendar.Source,
	defaults planner.Options,
	observers ...UseCaseObserver,
) PlanService {
	return &planService{
		users:    users,
		tasks:    tasks,
		events:   events,
		defaults: defaults,
		observer: useCaseObserverOrNoop(observers),
	}
}

func (s *planService) Today(ctx context.Context, userID string, now time.Time) (resp *contract.PlanResponse, err error) {
	fields := map[string]any{"user_id": userID}
	done := track(ctx, s.observer, "plan-today", fields)
	defer func() { done(err) }()

	if userID == "" {
		return nil, contract.Invalid("user ID is required")
	}
	user, err := s.users.GetByID(ctx, userID)
	if err != nil {
		return nil, notFoundAs(err, "user", userID)
	}

	opts := s.defaults
	if c, perr := planner.ParseClock(user.WorkStart); perr == nil {
		opts.WindowStart = c
	}
	if c, perr := planner.ParseClock(user.WorkEnd); perr == nil {
		opts.WindowEnd = c
	}
	if opts.WindowEnd <= opts.WindowStart {
		zerolog.Ctx(ctx).Warn().Str("user_id", userID).
			Str("work_start", user.WorkStart).Str("work_end", user.WorkEnd).
			Msg("user work window is empty, using defaults")
		opts.WindowStart, opts.WindowEnd = s.defaults.WindowStart, s.defaults.WindowEnd
	}

	day := reward.StartOfDay(now)
	resp = &contract.PlanResponse{Date: day, Window: opts, Schedule: []planner.Entry{}}

	tasks, err := s.tasks.ListPending(ctx, userID)
	if err != nil {
		return nil, err
	}
	if len(tasks) == 0 {
		resp.Message = contract.NoTasksMessage
		fields["outcome"] = "no_tasks"
		fields["entries"] = 0
		return resp, nil
	}

	events, err := s.events.EventsFor(ctx, userID, day)
	if err != nil {
		return nil, err
	}
	resp.Schedule = planner.Build(tasks, events, opts)

	fields["outcome"] = "planned"
	fields["entries"] = len(resp.Schedule)
	fields["focus_blocks"] = planner.FocusCount(resp.Schedule)
	return resp, nil
}
