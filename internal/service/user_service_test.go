package service

import (
	"context"
	"testing"

	"github.com/alexanderramin/hive/internal/contract"
	"github.com/alexanderramin/hive/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUserService_Lookup(t *testing.T) {
	r := setupRepos(t)
	ctx := context.Background()
	user := r.seedUser(t, testutil.WithEmail("maya@hive.test"))
	obs := &recordingObserver{}
	svc := NewUserService(r.users, obs)

	byID, err := svc.Get(ctx, user.ID)
	require.NoError(t, err)
	assert.Equal(t, "maya@hive.test", byID.Email)

	byEmail, err := svc.GetByEmail(ctx, "  Maya@Hive.test ")
	require.NoError(t, err)
	assert.Equal(t, user.ID, byEmail.ID)
	assert.Equal(t, "get-user-by-email", obs.last(t).Name)

	_, err = svc.Get(ctx, "ghost")
	assert.Equal(t, contract.ErrNotFound, contract.CodeOf(err))
	assert.Equal(t, "get-user", obs.last(t).Name)
	assert.False(t, obs.last(t).Success)
}
