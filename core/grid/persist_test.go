package grid

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestSaveWithRetry_SucceedsAfterFailure(t *testing.T) {
	store := &memoryStore{failSaves: 1}

	err := SaveWithRetry(context.Background(), store, "t.csv", []byte("x"), RetryPolicy{Attempts: 3, Backoff: time.Millisecond}, zap.NewNop())
	require.NoError(t, err)
	assert.Equal(t, 2, store.saves)
	assert.Equal(t, "x", string(store.files["t.csv"]))
}

func TestSaveWithRetry_AtLeastTwoAttempts(t *testing.T) {
	store := &memoryStore{failSaves: 1}

	err := SaveWithRetry(context.Background(), store, "t.csv", []byte("x"), RetryPolicy{Attempts: 1}, nil)
	require.NoError(t, err)
	assert.Equal(t, 2, store.saves)
}

func TestSaveWithRetry_GivesUp(t *testing.T) {
	store := &memoryStore{failSaves: 10}

	err := SaveWithRetry(context.Background(), store, "t.csv", []byte("x"), RetryPolicy{Attempts: 3}, zap.NewNop())
	require.Error(t, err)
	assert.Equal(t, 3, store.saves)
	assert.ErrorIs(t, err, ErrPersistence)

	var perr *PersistenceError
	require.True(t, errors.As(err, &perr))
	assert.Len(t, perr.Attempts, 3)
	assert.Equal(t, "t.csv", perr.Location)
	assert.Contains(t, err.Error(), "after 3 attempts")
	assert.Contains(t, err.Error(), "disk full")
	assert.Empty(t, store.files)
}

func TestSaveWithRetry_ContextCancelledDuringBackoff(t *testing.T) {
	store := &memoryStore{failSaves: 10}
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	err := SaveWithRetry(ctx, store, "t.csv", []byte("x"), RetryPolicy{Attempts: 3, Backoff: time.Hour}, nil)
	assert.ErrorIs(t, err, context.Canceled)
	assert.Equal(t, 1, store.saves)
}
