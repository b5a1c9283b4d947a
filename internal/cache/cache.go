// Package cache holds a small read-through TTL cache for serialized game
// state. It is non-authoritative: every mutation invalidates the entry, and
// the rule engine never reads from it.
package cache

import (
	"time"

	gocache "github.com/patrickmn/go-cache"
)

type StateCache struct {
	c *gocache.Cache
}

func New(ttl time.Duration) *StateCache {
	return &StateCache{c: gocache.New(ttl, 2*ttl)}
}

func (s *StateCache) Get(gameID string) (any, bool) {
	return s.c.Get(gameID)
}

func (s *StateCache) Set(gameID string, state any) {
	s.c.SetDefault(gameID, state)
}

func (s *StateCache) Invalidate(gameID string) {
	s.c.Delete(gameID)
}
