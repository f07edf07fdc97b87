package repository

import (
	"context"
	"testing"
	"time"

	"github.com/alexanderramin/hive/internal/domain"
	"github.com/alexanderramin/hive/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTaskRepo_CreateAndGet(t *testing.T) {
	database := testutil.NewTestDB(t)
	repo := NewSQLiteTaskRepo(database)
	ctx := context.Background()
	u := seedUser(t, database)

	task := testutil.NewTestTask(u.ID, "Write intro", testutil.WithCells(3, 1), testutil.WithStatus(domain.TaskInProgress))
	require.NoError(t, repo.Create(ctx, task))

	got, err := repo.GetByID(ctx, task.ID)
	require.NoError(t, err)
	assert.Equal(t, "Write intro", got.Title)
	assert.Equal(t, domain.TaskInProgress, got.Status)
	assert.Equal(t, 3, got.EstimatedCells)
	assert.Equal(t, 1, got.CompletedCells)
	assert.Nil(t, got.ProjectID)
}

func TestTaskRepo_ListByUser_Filters(t *testing.T) {
	database := testutil.NewTestDB(t)
	repo := NewSQLiteTaskRepo(database)
	ctx := context.Background()
	u := seedUser(t, database)
	other := seedUser(t, database)

	p := testutil.NewTestProject(u.ID, "Comb")
	require.NoError(t, NewSQLiteProjectRepo(database).Create(ctx, p))

	base := time.Date(2026, 1, 5, 8, 0, 0, 0, time.UTC)
	require.NoError(t, repo.Create(ctx, testutil.NewTestTask(u.ID, "a", testutil.WithCreatedAt(base))))
	require.NoError(t, repo.Create(ctx, testutil.NewTestTask(u.ID, "b", testutil.WithCreatedAt(base.Add(time.Minute)),
		testutil.WithProject(p.ID), testutil.WithStatus(domain.TaskDone))))
	require.NoError(t, repo.Create(ctx, testutil.NewTestTask(u.ID, "c", testutil.WithCreatedAt(base.Add(2*time.Minute)),
		testutil.WithProject(p.ID))))
	require.NoError(t, repo.Create(ctx, testutil.NewTestTask(other.ID, "theirs")))

	all, err := repo.ListByUser(ctx, u.ID, TaskFilter{})
	require.NoError(t, err)
	require.Len(t, all, 3)
	assert.Equal(t, []string{"a", "b", "c"}, titles(all))

	done := domain.TaskDone
	onlyDone, err := repo.ListByUser(ctx, u.ID, TaskFilter{Status: &done})
	require.NoError(t, err)
	assert.Equal(t, []string{"b"}, titles(onlyDone))

	inComb, err := repo.ListByUser(ctx, u.ID, TaskFilter{ProjectID: &p.ID})
	require.NoError(t, err)
	assert.Equal(t, []string{"b", "c"}, titles(inComb))

	byProject, err := repo.ListByProject(ctx, p.ID)
	require.NoError(t, err)
	assert.Equal(t, []string{"b", "c"}, titles(byProject))
}

func TestTaskRepo_ListPending(t *testing.T) {
	database := testutil.NewTestDB(t)
	repo := NewSQLiteTaskRepo(database)
	ctx := context.Background()
	u := seedUser(t, database)

	base := time.Date(2026, 1, 5, 8, 0, 0, 0, time.UTC)
	statuses := []domain.TaskStatus{domain.TaskTodo, domain.TaskDone, domain.TaskInProgress, domain.TaskArchived}
	for i, s := range statuses {
		task := testutil.NewTestTask(u.ID, string(s), testutil.WithStatus(s), testutil.WithCreatedAt(base.Add(time.Duration(i)*time.Minute)))
		require.NoError(t, repo.Create(ctx, task))
	}

	pending, err := repo.ListPending(ctx, u.ID)
	require.NoError(t, err)
	assert.Equal(t, []string{"TODO", "IN_PROGRESS"}, titles(pending))
}

func TestTaskRepo_UpdateAndDelete(t *testing.T) {
	database := testutil.NewTestDB(t)
	repo := NewSQLiteTaskRepo(database)
	ctx := context.Background()
	u := seedUser(t, database)

	task := testutil.NewTestTask(u.ID, "Draft")
	require.NoError(t, repo.Create(ctx, task))

	require.NoError(t, task.ApplyCell(time.Now()))
	require.NoError(t, repo.Update(ctx, task))

	got, err := repo.GetByID(ctx, task.ID)
	require.NoError(t, err)
	assert.Equal(t, domain.TaskDone, got.Status)
	assert.Equal(t, 1, got.CompletedCells)

	require.NoError(t, repo.Delete(ctx, task.ID))
	assert.ErrorIs(t, repo.Delete(ctx, task.ID), ErrNotFound)
}

func titles(tasks []*domain.Task) []string {
	out := make([]string, len(tasks))
	for i, t := range tasks {
		out[i] = t.Title
	}
	return out
}
