package services

import (
	"context"
	"testing"
	"time"

	"pawcare-backend/logger"
	"pawcare-backend/session"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSweepSessions(t *testing.T) {
	ctx := context.Background()
	store := session.NewMemoryStore()
	require.NoError(t, store.Set(ctx, "gone", session.Data{AdminAuthenticated: true}, -time.Minute))
	require.NoError(t, store.Set(ctx, "live", session.Data{AdminAuthenticated: true}, time.Hour))

	SweepSessions(ctx, store, logger.Nop())

	assert.Equal(t, 1, store.Len())
	data, err := store.Get(ctx, "live")
	require.NoError(t, err)
	assert.NotNil(t, data)
}

func TestStartSessionSweeper(t *testing.T) {
	c, err := StartSessionSweeper(session.NewMemoryStore(), logger.Nop())
	require.NoError(t, err)
	defer c.Stop()

	assert.Len(t, c.Entries(), 1)
}
