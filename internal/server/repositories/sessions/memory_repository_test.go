package sessions

import (
	"context"
	"testing"

	"github.com/dmitrijs2005/gophauth/internal/common"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMemoryRepository_Lifecycle(t *testing.T) {
	repo := NewMemoryRepository()
	ctx := context.Background()

	require.NoError(t, repo.Create(ctx, testSession()))
	assert.ErrorIs(t, repo.Create(ctx, testSession()), common.ErrDuplicateToken)

	got, err := repo.Find(ctx, "tok123")
	require.NoError(t, err)
	assert.Equal(t, *testSession(), *got)

	found, err := repo.Delete(ctx, "tok123")
	require.NoError(t, err)
	assert.True(t, found)

	found, err = repo.Delete(ctx, "tok123")
	require.NoError(t, err)
	assert.False(t, found, "second delete is a no-op")

	_, err = repo.Find(ctx, "tok123")
	assert.ErrorIs(t, err, common.ErrorNotFound)
}

func TestMemoryRepository_CancelledContext(t *testing.T) {
	repo := NewMemoryRepository()
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	assert.ErrorIs(t, repo.Create(ctx, testSession()), context.Canceled)
	_, err := repo.Find(ctx, "tok123")
	assert.ErrorIs(t, err, context.Canceled)
	_, err = repo.Delete(ctx, "tok123")
	assert.ErrorIs(t, err, context.Canceled)
}
