package services

import (
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestKeyedMutexSerializesSameKey(t *testing.T) {
	t.Parallel()

	k := NewKeyedMutex()
	counter := 0

	var wg sync.WaitGroup
	for i := 0; i < 100; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			k.Lock("GAME01")
			defer k.Unlock("GAME01")
			counter++
		}()
	}
	wg.Wait()

	assert.Equal(t, 100, counter)
}

func TestKeyedMutexIndependentKeys(t *testing.T) {
	t.Parallel()

	k := NewKeyedMutex()
	k.Lock("GAME01")
	defer k.Unlock("GAME01")

	// A different game must not be blocked by the held lock.
	done := make(chan struct{})
	go func() {
		k.Lock("GAME02")
		k.Unlock("GAME02")
		close(done)
	}()

	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("lock on a different key blocked")
	}
}

func TestKeyedMutexPrunesIdleEntries(t *testing.T) {
	t.Parallel()

	k := NewKeyedMutex()
	for i := 0; i < 10; i++ {
		k.Lock("GAME01")
		k.Unlock("GAME01")
	}

	k.mu.Lock()
	defer k.mu.Unlock()
	assert.Empty(t, k.locks)
}

func TestKeyedMutexUnlockUnheldPanics(t *testing.T) {
	t.Parallel()

	k := NewKeyedMutex()
	assert.Panics(t, func() { k.Unlock("GAME01") })
}
