package service

import (
	"context"
	"database/sql"
	"sync"
	"testing"

	"github.com/alexanderramin/hive/internal/domain"
	"github.com/alexanderramin/hive/internal/repository"
	"github.com/alexanderramin/hive/internal/testutil"
	"github.com/stretchr/testify/require"
)

type testRepos struct {
	db       *sql.DB
	users    *repository.SQLiteUserRepo
	projects *repository.SQLiteProjectRepo
	tasks    *repository.SQLiteTaskRepo
	sessions *repository.SQLiteSessionRepo
}

func setupRepos(t *testing.T) testRepos {
	t.Helper()
	database := testutil.NewTestDB(t)
	return testRepos{
		db:       database,
		users:    repository.NewSQLiteUserRepo(database),
		projects: repository.NewSQLiteProjectRepo(database),
		tasks:    repository.NewSQLiteTaskRepo(database),
		sessions: repository.NewSQLiteSessionRepo(database),
	}
}

func (r testRepos) seedUser(t *testing.T, opts ...testutil.UserOption) *domain.User {
	t.Helper()
	u := testutil.NewTestUser("Maya", opts...)
	require.NoError(t, r.users.Create(context.Background(), u))
	return u
}

func (r testRepos) seedTask(t *testing.T, userID, title string, opts ...testutil.TaskOption) *domain.Task {
	t.Helper()
	task := testutil.NewTestTask(userID, title, opts...)
	require.NoError(t, r.tasks.Create(context.Background(), task))
	return task
}

type recordingObserver struct {
	mu     sync.Mutex
	events []UseCaseEvent
}

func (o *recordingObserver) ObserveUseCase(_ context.Context, e UseCaseEvent) {
	o.mu.Lock()
	defer o.mu.Unlock()
	o.events = append(o.events, e)
}

func (o *recordingObserver) last(t *testing.T) UseCaseEvent {
	t.Helper()
	o.mu.Lock()
	defer o.mu.Unlock()
	require.NotEmpty(t, o.events, "no use case observed")
	return o.events[len(o.events)-1]
}
