package service

import (
	"context"
	"strings"

	"github.com/alexanderramin/hive/internal/domain"
	"github.com/alexanderramin/hive/internal/repository"
)

type userService struct {
	users    repository.UserRepo
	observer UseCaseObserver
}

func NewUserService(users repository.UserRepo, observers ...UseCaseObserver) UserService {
	return &userService{users: users, observer: useCaseObserverOrNoop(observers)}
}

func (s *userService) Get(ctx context.Context, id string) (u *domain.User, err error) {
	done := track(ctx, s.observer, "get-user", map[string]any{"user_id": id})
	defer func() { done(err) }()

	u, err = s.users.GetByID(ctx, id)
	return u, notFoundAs(err, "user", id)
}

func (s *userService) GetByEmail(ctx context.Context, email string) (u *domain.User, err error) {
	done := track(ctx, s.observer, "get-user-by-email", nil)
	defer func() { done(err) }()

	email = strings.ToLower(strings.TrimSpace(email))
	u, err = s.users.GetByEmail(ctx, email)
	return u, notFoundAs(err, "user", email)
}
