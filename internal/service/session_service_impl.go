package service

import (
	"context"
	"time"

	"github.com/alexanderramin/hive/internal/contract"
	"github.com/alexanderramin/hive/internal/db"
	"github.com/alexanderramin/hive/internal/domain"
	"github.com/alexanderramin/hive/internal/repository"
	"github.com/alexanderramin/hive/internal/reward"
	"github.com/google/uuid"
)

type sessionService struct {
	sessions repository.SessionRepo
	uow      db.UnitOfWork
	rules    reward.Rules
	now      func() time.Time
	observer UseCaseObserver
}

func NewSessionService(
	sessions repository.SessionRepo,
	uow db.UnitOfWork,
	rules reward.Rules,
	observers ...UseCaseObserver,
) SessionService {
	return &sessionService{
		sessions: sessions,
		uow:      uow,
		rules:    rules,
		now:      time.Now,
		observer: useCaseObserverOrNoop(observers),
	}
}

// Complete records a finished cell and pays out nectar. The session row, the
// task progress and the user's totals are written in one transaction.
func (s *sessionService) Complete(ctx context.Context, req contract.CompleteSessionRequest) (resp *contract.CompleteSessionResponse, err error) {
	fields := map[string]any{"user_id": req.UserID}
	done := track(ctx, s.observer, "complete-session", fields)
	defer func() { done(err) }()

	if err = req.Validate(); err != nil {
		return nil, err
	}
	if req.TaskID != nil && *req.TaskID == "" {
		req.TaskID = nil
	}
	reportedAt := s.now().Local()
	session := s.newSession(req, reportedAt)

	resp = &contract.CompleteSessionResponse{Session: session}
	err = s.uow.WithinTx(ctx, func(ctx context.Context, tx db.DBTX) error {
		users := repository.NewSQLiteUserRepo(tx)
		tasks := repository.NewSQLiteTaskRepo(tx)

		user, err := users.GetByID(ctx, req.UserID)
		if err != nil {
			return notFoundAs(err, "user", req.UserID)
		}

		// Streak days are reporting days in local time, not session end times.
		session.NectarEarned = s.rules.Nectar(session.EndedAt.Local(), user.CurrentStreak)
		resp.NewStreak = reward.NextStreak(user.LastActiveDate, user.CurrentStreak, reportedAt)

		if err := repository.NewSQLiteSessionRepo(tx).Create(ctx, session); err != nil {
			return err
		}

		if req.TaskID != nil {
			task, err := ownedTask(ctx, tasks, req.UserID, *req.TaskID)
			if err != nil {
				return err
			}
			if err := task.ApplyCell(session.EndedAt); err != nil {
				return contract.Conflict("%v", err)
			}
			if err := tasks.Update(ctx, task); err != nil {
				return err
			}
			resp.Task = task
		}

		if err := users.ApplyCompletion(ctx, user.ID, session.NectarEarned, resp.NewStreak, reportedAt); err != nil {
			return notFoundAs(err, "user", user.ID)
		}
		resp.TotalNectar = user.TotalNectar + session.NectarEarned
		return nil
	})
	if err != nil {
		return nil, err
	}

	resp.NectarEarned = session.NectarEarned
	fields["nectar"] = resp.NectarEarned
	fields["streak"] = resp.NewStreak
	if resp.Task != nil {
		fields["task_id"] = resp.Task.ID
		fields["task_status"] = string(resp.Task.Status)
	}
	return resp, nil
}

func (s *sessionService) newSession(req contract.CompleteSessionRequest, reportedAt time.Time) *domain.FocusSession {
	now := reportedAt.UTC()
	minutes := req.DurationMin
	if minutes == 0 {
		minutes = domain.TimerCell.DefaultMinutes()
	}

	ended := now
	if req.EndedAt != nil {
		ended = req.EndedAt.UTC()
	}
	started := ended.Add(-time.Duration(minutes) * time.Minute)
	if req.StartedAt != nil {
		started = req.StartedAt.UTC()
	}

	return &domain.FocusSession{
		ID:          uuid.New().String(),
		UserID:      req.UserID,
		TaskID:      req.TaskID,
		DurationMin: minutes,
		StartedAt:   started,
		EndedAt:     ended,
		Completed:   true,
		CreatedAt:   now,
	}
}

func (s *sessionService) ListRecent(ctx context.Context, userID string, days int, now time.Time) (sessions []*domain.FocusSession, err error) {
	done := track(ctx, s.observer, "list-sessions", map[string]any{"user_id": userID, "days": days})
	defer func() { done(err) }()

	if days < 1 {
		days = 1
	}
	since := reward.StartOfDay(now).AddDate(0, 0, -(days - 1))
	return s.sessions.ListByUser(ctx, userID, since)
}
