package repository

import (
	"context"
	"testing"
	"time"

	"github.com/alexanderramin/hive/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestProjectRepo_CRUD(t *testing.T) {
	database := testutil.NewTestDB(t)
	repo := NewSQLiteProjectRepo(database)
	ctx := context.Background()
	u := seedUser(t, database)

	p := testutil.NewTestProject(u.ID, "Thesis", testutil.WithColor("#336699"))
	require.NoError(t, repo.Create(ctx, p))

	got, err := repo.GetByID(ctx, p.ID)
	require.NoError(t, err)
	assert.Equal(t, "Thesis", got.Title)
	assert.Equal(t, "#336699", got.Color)
	assert.Equal(t, u.ID, got.UserID)

	got.Title = "Thesis v2"
	got.UpdatedAt = time.Now()
	require.NoError(t, repo.Update(ctx, got))

	got, err = repo.GetByID(ctx, p.ID)
	require.NoError(t, err)
	assert.Equal(t, "Thesis v2", got.Title)

	require.NoError(t, repo.Delete(ctx, p.ID))
	_, err = repo.GetByID(ctx, p.ID)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestProjectRepo_ListByUser_ScopedAndOrdered(t *testing.T) {
	database := testutil.NewTestDB(t)
	repo := NewSQLiteProjectRepo(database)
	ctx := context.Background()
	alice := seedUser(t, database)
	bob := seedUser(t, database)

	require.NoError(t, repo.Create(ctx, testutil.NewTestProject(alice.ID, "First")))
	require.NoError(t, repo.Create(ctx, testutil.NewTestProject(bob.ID, "Not mine")))
	require.NoError(t, repo.Create(ctx, testutil.NewTestProject(alice.ID, "Second")))

	projects, err := repo.ListByUser(ctx, alice.ID)
	require.NoError(t, err)
	require.Len(t, projects, 2)
	assert.Equal(t, "First", projects[0].Title)
	assert.Equal(t, "Second", projects[1].Title)
}

func TestProjectRepo_DeleteCascadesTasks(t *testing.T) {
	database := testutil.NewTestDB(t)
	ctx := context.Background()
	u := seedUser(t, database)

	p := testutil.NewTestProject(u.ID, "Comb")
	require.NoError(t, NewSQLiteProjectRepo(database).Create(ctx, p))
	task := testutil.NewTestTask(u.ID, "Cell", testutil.WithProject(p.ID))
	require.NoError(t, NewSQLiteTaskRepo(database).Create(ctx, task))

	require.NoError(t, NewSQLiteProjectRepo(database).Delete(ctx, p.ID))

	_, err := NewSQLiteTaskRepo(database).GetByID(ctx, task.ID)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestProjectRepo_UpdateMissing(t *testing.T) {
	database := testutil.NewTestDB(t)
	p := testutil.NewTestProject("nobody", "Ghost")
	assert.ErrorIs(t, NewSQLiteProjectRepo(database).Update(context.Background(), p), ErrNotFound)
}
