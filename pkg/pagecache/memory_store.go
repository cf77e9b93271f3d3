package pagecache

import (
	"context"
	"time"

	"github.com/patrickmn/go-cache"
)

// MemoryStore keeps pages in process. Each instance purges its own copy.
type MemoryStore struct {
	cache *cache.Cache
}

func NewMemoryStore(defaultTTL time.Duration) *MemoryStore {
	return &MemoryStore{
		cache: cache.New(defaultTTL, 10*time.Minute),
	}
}

func (s *MemoryStore) Get(_ context.Context, key string) (*Entry, bool, error) {
	if x, found := s.cache.Get(key); found {
		return x.(*Entry), true, nil
	}
	return nil, false, nil
}

func (s *MemoryStore) Set(_ context.Context, key string, entry *Entry, ttl time.Duration) error {
	if ttl <= 0 {
		ttl = cache.DefaultExpiration
	}
	s.cache.Set(key, entry, ttl)
	return nil
}

func (s *MemoryStore) Delete(_ context.Context, keys ...string) error {
	for _, key := range keys {
		s.cache.Delete(key)
	}
	return nil
}

func (s *MemoryStore) Flush(_ context.Context) error {
	s.cache.Flush()
	return nil
}
