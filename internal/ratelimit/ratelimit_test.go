package ratelimit

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAllow_BurstThenThrottle(t *testing.T) {
	l := New(1, 3)
	defer l.Stop()

	for i := 0; i < 3; i++ {
		assert.True(t, l.Allow("shop-1"), "call %d should be within burst", i+1)
	}
	assert.False(t, l.Allow("shop-1"), "burst exhausted")
}

func TestAllow_KeysAreIndependent(t *testing.T) {
	l := New(1, 1)
	defer l.Stop()

	require.True(t, l.Allow("shop-1"))
	assert.False(t, l.Allow("shop-1"))
	assert.True(t, l.Allow("shop-2"), "a different shop has its own bucket")
}

func TestWait_BlocksUntilRefill(t *testing.T) {
	l := New(20, 1)
	defer l.Stop()

	ctx, cancel := context.WithTimeout(context.Background(), time.Second)
	defer cancel()

	require.NoError(t, l.Wait(ctx, "shop-1"))

	start := time.Now()
	require.NoError(t, l.Wait(ctx, "shop-1"))
	assert.GreaterOrEqual(t, time.Since(start), 30*time.Millisecond,
		"second call should wait for a token")
}

func TestWait_ContextCanceled(t *testing.T) {
	l := New(0.01, 1)
	defer l.Stop()

	require.True(t, l.Allow("shop-1"))

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Millisecond)
	defer cancel()

	assert.Error(t, l.Wait(ctx, "shop-1"))
}

func TestStop_ResetsBuckets(t *testing.T) {
	l := New(1, 1)
	require.True(t, l.Allow("shop-1"))
	require.False(t, l.Allow("shop-1"))

	l.Stop()

	assert.True(t, l.Allow("shop-1"), "fresh bucket after Stop")
}
