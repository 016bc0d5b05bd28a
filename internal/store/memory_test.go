package store_test

import (
	"context"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/literise/ai-service/internal/game"
	"github.com/literise/ai-service/internal/store"
)

func newSession(id string) *game.Session {
	return &game.Session{
		ID:        id,
		Kind:      game.KindLibraryBlanks,
		CreatedAt: time.Now(),
		Answers:   []string{"satu", "dua"},
	}
}

func TestMemorySaveGet(t *testing.T) {
	m := store.NewMemory(time.Minute)
	defer m.Close()
	ctx := context.Background()

	require.NoError(t, m.Save(ctx, newSession("a")))
	got, err := m.Get(ctx, "a")
	require.NoError(t, err)
	assert.Equal(t, "a", got.ID)
	assert.Equal(t, 1, m.Len())

	_, err = m.Get(ctx, "missing")
	assert.ErrorIs(t, err, game.ErrSessionNotFound)
}

func TestMemoryTakeConsumes(t *testing.T) {
	m := store.NewMemory(time.Minute)
	defer m.Close()
	ctx := context.Background()

	require.NoError(t, m.Save(ctx, newSession("a")))
	got, err := m.Take(ctx, "a")
	require.NoError(t, err)
	assert.Equal(t, "a", got.ID)

	_, err = m.Get(ctx, "a")
	assert.ErrorIs(t, err, game.ErrSessionNotFound)
	_, err = m.Take(ctx, "a")
	assert.ErrorIs(t, err, game.ErrSessionNotFound)
}

func TestMemoryTakeSingleWinner(t *testing.T) {
	m := store.NewMemory(time.Minute)
	defer m.Close()
	ctx := context.Background()

	require.NoError(t, m.Save(ctx, newSession("contested")))

	const n = 64
	var wins int32
	var wg sync.WaitGroup
	start := make(chan struct{})
	for i := 0; i < n; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			<-start
			if _, err := m.Take(ctx, "contested"); err == nil {
				atomic.AddInt32(&wins, 1)
			}
		}()
	}
	close(start)
	wg.Wait()

	assert.Equal(t, int32(1), wins, "exactly one concurrent Take may succeed")
}

func TestMemoryTTL(t *testing.T) {
	m := store.NewMemory(30 * time.Millisecond)
	defer m.Close()
	ctx := context.Background()

	require.NoError(t, m.Save(ctx, newSession("short")))
	time.Sleep(60 * time.Millisecond)

	_, err := m.Get(ctx, "short")
	assert.ErrorIs(t, err, game.ErrSessionNotFound)
	_, err = m.Take(ctx, "short")
	assert.ErrorIs(t, err, game.ErrSessionNotFound)
	assert.Zero(t, m.Len())
}

func TestMemoryDelete(t *testing.T) {
	m := store.NewMemory(time.Minute)
	defer m.Close()
	ctx := context.Background()

	require.NoError(t, m.Save(ctx, newSession("a")))
	require.NoError(t, m.Delete(ctx, "a"))
	_, err := m.Get(ctx, "a")
	assert.ErrorIs(t, err, game.ErrSessionNotFound)

	assert.NoError(t, m.Delete(ctx, "a"), "deleting a missing id is a no-op")
}

func TestMemoryIndependentKeys(t *testing.T) {
	m := store.NewMemory(time.Minute)
	defer m.Close()
	ctx := context.Background()

	for _, id := range []string{"a", "b", "c", "d"} {
		require.NoError(t, m.Save(ctx, newSession(id)))
	}
	_, err := m.Take(ctx, "b")
	require.NoError(t, err)
	assert.Equal(t, 3, m.Len())
	for _, id := range []string{"a", "c", "d"} {
		_, err := m.Get(ctx, id)
		assert.NoError(t, err, "session %q must survive", id)
	}
}
