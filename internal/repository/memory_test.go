//go:build !integration

package repository

import (
	"context"
	"testing"
	"time"

	"github.com/guttosm/kol-client/internal/domain/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMemorySnapshotRepository(t *testing.T) {
	ctx := context.Background()
	repo := NewMemorySnapshotRepository(2)

	latest, err := repo.Latest(ctx)
	require.NoError(t, err)
	assert.Nil(t, latest)

	base := time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC)
	for i := 0; i < 3; i++ {
		snap := &model.StoreSnapshot{Body: string(rune('a' + i)), Listings: i, CapturedAt: base.Add(time.Duration(i) * time.Minute)}
		require.NoError(t, repo.Save(ctx, snap))
		assert.NotEmpty(t, snap.ID)
	}

	latest, err = repo.Latest(ctx)
	require.NoError(t, err)
	require.NotNil(t, latest)
	assert.Equal(t, "c", latest.Body)

	all, err := repo.List(ctx, 0)
	require.NoError(t, err)
	require.Len(t, all, 2)
	assert.Equal(t, "c", all[0].Body)
	assert.Equal(t, "b", all[1].Body)

	one, err := repo.List(ctx, 1)
	require.NoError(t, err)
	assert.Len(t, one, 1)
}

func TestNewMemorySnapshotRepository_MinimumCapacity(t *testing.T) {
	repo := NewMemorySnapshotRepository(0)
	require.NoError(t, repo.Save(context.Background(), &model.StoreSnapshot{Body: "x"}))
	require.NoError(t, repo.Save(context.Background(), &model.StoreSnapshot{Body: "y"}))

	all, err := repo.List(context.Background(), 0)
	require.NoError(t, err)
	assert.Len(t, all, 1)
}
