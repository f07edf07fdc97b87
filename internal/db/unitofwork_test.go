package db_test

import (
	"context"
	"database/sql"
	"errors"
	"testing"

	"github.com/alexanderramin/hive/internal/db"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setup(t *testing.T) (*sql.DB, *db.SQLiteUnitOfWork) {
	t.Helper()
	database, err := db.OpenDB(db.MemoryPath)
	require.NoError(t, err)
	t.Cleanup(func() { database.Close() })

	_, err = database.Exec(`INSERT INTO users (id, email, created_at, updated_at) VALUES ('u1', 'bee@hive.test', 'now', 'now')`)
	require.NoError(t, err)
	return database, db.NewSQLiteUnitOfWork(database)
}

func addNectar(ctx context.Context, tx db.DBTX, n int) error {
	_, err := tx.ExecContext(ctx, `UPDATE users SET total_nectar = total_nectar + ? WHERE id = 'u1'`, n)
	return err
}

func nectar(t *testing.T, database *sql.DB) int {
	t.Helper()
	var n int
	require.NoError(t, database.QueryRow(`SELECT total_nectar FROM users WHERE id = 'u1'`).Scan(&n))
	return n
}

func TestWithinTx_Commits(t *testing.T) {
	database, uow := setup(t)

	err := uow.WithinTx(context.Background(), func(ctx context.Context, tx db.DBTX) error {
		return addNectar(ctx, tx, 10)
	})
	require.NoError(t, err)
	assert.Equal(t, 10, nectar(t, database))
}

func TestWithinTx_RollsBackOnError(t *testing.T) {
	database, uow := setup(t)
	sentinel := errors.New("store unavailable")

	err := uow.WithinTx(context.Background(), func(ctx context.Context, tx db.DBTX) error {
		if err := addNectar(ctx, tx, 10); err != nil {
			return err
		}
		return sentinel
	})
	require.ErrorIs(t, err, sentinel)
	assert.Equal(t, 0, nectar(t, database))
}

func TestWithinTx_RollsBackOnPanic(t *testing.T) {
	database, uow := setup(t)

	assert.Panics(t, func() {
		_ = uow.WithinTx(context.Background(), func(ctx context.Context, tx db.DBTX) error {
			_ = addNectar(ctx, tx, 10)
			panic("boom")
		})
	})
	assert.Equal(t, 0, nectar(t, database))
}
