package services

import "sync"

// KeyedMutex serializes all validate-and-mutate sequences for one game id
// while letting operations on different games proceed independently.
// Entries are refcounted and removed once no goroutine holds or waits on
// them, so finished games don't pin memory.
type KeyedMutex struct {
	mu    sync.Mutex
	locks map[string]*lockEntry
}

type lockEntry struct {
	mu   sync.Mutex
	refs int
}

func NewKeyedMutex() *KeyedMutex {
	return &KeyedMutex{locks: make(map[string]*lockEntry)}
}

func (k *KeyedMutex) Lock(key string) {
	k.mu.Lock()
	entry, ok := k.locks[key]
	if !ok {
		entry = &lockEntry{}
		k.locks[key] = entry
	}
	entry.refs++
	k.mu.Unlock()

	entry.mu.Lock()
}

func (k *KeyedMutex) Unlock(key string) {
	k.mu.Lock()
	entry, ok := k.locks[key]
	if !ok {
		k.mu.Unlock()
		panic("services: unlock of unheld game lock " + key)
	}
	entry.refs--
	if entry.refs == 0 {
		delete(k.locks, key)
	}
	k.mu.Unlock()

	entry.mu.Unlock()
}
