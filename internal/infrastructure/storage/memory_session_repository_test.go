package storage

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"meme-bot/internal/domain/entity"
)

func TestMemorySessionRepository_NotFound(t *testing.T) {
	repo := NewMemorySessionRepository()

	_, err := repo.Get(context.Background(), 1)
	require.ErrorIs(t, err, entity.ErrSessionNotFound)
}

func TestMemorySessionRepository_SaveGetDelete(t *testing.T) {
	repo := NewMemorySessionRepository()
	ctx := context.Background()

	s := entity.NewSession(2, 20)
	s.SetVolume(30)
	require.NoError(t, repo.Save(ctx, s))

	got, err := repo.Get(ctx, 2)
	require.NoError(t, err)
	require.Same(t, s, got)
	require.Equal(t, entity.Volume(30), got.Volume)

	require.NoError(t, repo.Delete(ctx, 2))
	_, err = repo.Get(ctx, 2)
	require.ErrorIs(t, err, entity.ErrSessionNotFound)
}
