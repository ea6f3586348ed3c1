package ratelimit

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type memCounter struct {
	counts map[string]int64
	err    error
}

func (m *memCounter) Incr(_ context.Context, key string, _ time.Duration) (int64, error) {
	if m.err != nil {
		return 0, m.err
	}
	m.counts[key]++
	return m.counts[key], nil
}

func TestFixedWindow(t *testing.T) {
	counter := &memCounter{counts: map[string]int64{}}
	l := NewFixedWindow(counter, "chat", 2, time.Minute, nil).(*FixedWindow)
	now := time.Date(2025, 1, 1, 12, 0, 0, 0, time.UTC)
	l.now = func() time.Time { return now }
	ctx := context.Background()

	for i := 0; i < 2; i++ {
		ok, err := l.Allow(ctx, "s1")
		require.NoError(t, err)
		assert.True(t, ok)
	}
	ok, err := l.Allow(ctx, "s1")
	require.NoError(t, err)
	assert.False(t, ok)

	ok, _ = l.Allow(ctx, "s2")
	assert.True(t, ok, "keys are independent")

	now = now.Add(time.Minute)
	ok, _ = l.Allow(ctx, "s1")
	assert.True(t, ok, "new window")
}

func TestFixedWindowFailsOpen(t *testing.T) {
	cause := errors.New("redis down")
	l := NewFixedWindow(&memCounter{err: cause}, "chat", 1, time.Minute, nil)

	ok, err := l.Allow(context.Background(), "s1")
	assert.True(t, ok)
	assert.ErrorIs(t, err, cause)
}

func TestDisabledLimiter(t *testing.T) {
	assert.IsType(t, Unlimited{}, NewFixedWindow(nil, "chat", 5, time.Minute, nil))
	assert.IsType(t, Unlimited{}, NewFixedWindow(&memCounter{}, "chat", 0, time.Minute, nil))

	ok, err := Unlimited{}.Allow(context.Background(), "x")
	assert.True(t, ok)
	assert.NoError(t, err)
}
