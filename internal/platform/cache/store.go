package cache

import (
	"context"
	"sync"
	"sync/atomic"
	"time"

	crerr "github.com/cockroachdb/errors"
	"golang.org/x/sync/singleflight"
)

var errNoLoader = crerr.New("cache: load function is required")

type item struct {
	value    any
	storedAt time.Time
}

// Stats is a point-in-time view of the store counters.
type Stats struct {
	Entries   int
	Hits      int64
	Misses    int64
	Evictions int64
}

// Store memoises query results in process memory. Entries older than ttl are
// dropped on read (a zero ttl keeps them). With maxEntries > 0 the oldest
// entry makes room for a new key.
type Store struct {
	mu         sync.RWMutex
	items      map[string]item
	ttl        time.Duration
	maxEntries int
	group      singleflight.Group
	clock      func() time.Time

	hits      atomic.Int64
	misses    atomic.Int64
	evictions atomic.Int64
}

func NewStore(ttl time.Duration, maxEntries int) *Store {
	if maxEntries < 0 {
		maxEntries = 0
	}
	return &Store{
		items:      make(map[string]item),
		ttl:        ttl,
		maxEntries: maxEntries,
		clock:      time.Now,
	}
}

// Lookup reports a fresh value for key and counts the hit or miss.
func (s *Store) Lookup(key string) (any, bool) {
	v, ok := s.peek(key)
	if ok {
		s.hits.Add(1)
	} else {
		s.misses.Add(1)
	}
	return v, ok
}

// GetOrLoad returns the value stored under key, or runs load once for every
// concurrent caller of the same key and stores the result. Failed loads are
// not stored. An empty key bypasses the store.
func (s *Store) GetOrLoad(ctx context.Context, key string, load func(context.Context) (any, error)) (any, error) {
	if load == nil {
		return nil, errNoLoader
	}
	if key == "" {
		return load(ctx)
	}
	if v, ok := s.Lookup(key); ok {
		return v, nil
	}

	v, err, _ := s.group.Do(key, func() (any, error) {
		if cached, ok := s.peek(key); ok {
			return cached, nil
		}
		loaded, err := load(ctx)
		if err != nil {
			return nil, err
		}
		s.put(key, loaded)
		return loaded, nil
	})
	return v, err
}

func (s *Store) Stats() Stats {
	s.mu.RLock()
	n := len(s.items)
	s.mu.RUnlock()

	return Stats{
		Entries:   n,
		Hits:      s.hits.Load(),
		Misses:    s.misses.Load(),
		Evictions: s.evictions.Load(),
	}
}

func (s *Store) peek(key string) (any, bool) {
	now := s.clock()

	s.mu.RLock()
	it, ok := s.items[key]
	s.mu.RUnlock()
	if !ok {
		return nil, false
	}
	if s.stale(it, now) {
		s.mu.Lock()
		if current, ok := s.items[key]; ok && s.stale(current, now) {
			delete(s.items, key)
		}
		s.mu.Unlock()
		return nil, false
	}
	return it.value, true
}

func (s *Store) put(key string, value any) {
	now := s.clock()

	s.mu.Lock()
	defer s.mu.Unlock()

	if _, exists := s.items[key]; !exists && s.maxEntries > 0 && len(s.items) >= s.maxEntries {
		s.evictLocked(now)
	}
	s.items[key] = item{value: value, storedAt: now}
}

// evictLocked drops stale entries, then the oldest one if the store is still
// full. Callers hold mu.
func (s *Store) evictLocked(now time.Time) {
	for k, it := range s.items {
		if s.stale(it, now) {
			delete(s.items, k)
			s.evictions.Add(1)
		}
	}
	if len(s.items) < s.maxEntries {
		return
	}

	oldestKey := ""
	var oldest time.Time
	for k, it := range s.items {
		if oldestKey == "" || it.storedAt.Before(oldest) || (it.storedAt.Equal(oldest) && k < oldestKey) {
			oldestKey, oldest = k, it.storedAt
		}
	}
	delete(s.items, oldestKey)
	s.evictions.Add(1)
}

func (s *Store) stale(it item, now time.Time) bool {
	return s.ttl > 0 && !now.Before(it.storedAt.Add(s.ttl))
}
