package cache

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestStateCache(t *testing.T) {
	t.Parallel()

	c := New(50 * time.Millisecond)

	_, ok := c.Get("GAME01")
	assert.False(t, ok)

	c.Set("GAME01", "state")
	got, ok := c.Get("GAME01")
	assert.True(t, ok)
	assert.Equal(t, "state", got)

	c.Invalidate("GAME01")
	_, ok = c.Get("GAME01")
	assert.False(t, ok)
}

func TestStateCacheExpires(t *testing.T) {
	t.Parallel()

	c := New(20 * time.Millisecond)
	c.Set("GAME01", "state")

	assert.Eventually(t, func() bool {
		_, ok := c.Get("GAME01")
		return !ok
	}, time.Second, 10*time.Millisecond)
}
