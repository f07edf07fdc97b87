package requestid

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWithAndFrom(t *testing.T) {
	ctx := With(context.Background(), "req-1")
	assert.Equal(t, "req-1", From(ctx))
	assert.Empty(t, From(context.Background()))
}

func TestResolve(t *testing.T) {
	given := uuid.New().String()
	assert.Equal(t, given, Resolve(given))

	for _, bad := range []string{"", "not-a-uuid", "<script>"} {
		got := Resolve(bad)
		_, err := uuid.Parse(got)
		require.NoError(t, err, "Resolve(%q) should mint a uuid", bad)
		assert.NotEqual(t, bad, got)
	}
}
