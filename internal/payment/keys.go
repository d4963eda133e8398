package payment

import (
	"context"
	"errors"
	"sync"
	"time"
)

var ErrNoKeys = errors.New("no payment keys configured")

// ProviderKeys holds one payment provider's API credentials for a club.
type ProviderKeys struct {
	Provider  string    `json:"provider"`
	PublicKey string    `json:"public_key"`
	SecretKey string    `json:"-"`
	UpdatedAt time.Time `json:"updated_at"`
}

// Fetcher loads a club's provider keys from the backing store.
type Fetcher interface {
	FetchKeys(ctx context.Context, clubID string) ([]ProviderKeys, error)
}

// KeyCache is an explicit, injected cache of provider keys. It replaces the
// process-wide singleton the old app used: the owner constructs one, threads
// it to the consumers, and staleness is visible through the per-entry fetch
// timestamp instead of hidden static state.
type KeyCache struct {
	ttl time.Duration

	mu      sync.RWMutex
	entries map[string]keyEntry
}

type keyEntry struct {
	keys          []ProviderKeys
	lastFetchedAt time.Time
}

func NewKeyCache(ttl time.Duration) *KeyCache {
	return &KeyCache{
		ttl:     ttl,
		entries: make(map[string]keyEntry),
	}
}

// Get returns the cached keys for a club, reporting a miss when the entry is
// absent or older than the TTL. Expiry is evaluated against the caller's
// clock so it stays testable.
func (c *KeyCache) Get(clubID string, now time.Time) ([]ProviderKeys, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	entry, ok := c.entries[clubID]
	if !ok || now.Sub(entry.lastFetchedAt) > c.ttl {
		return nil, false
	}
	return entry.keys, true
}

func (c *KeyCache) Put(clubID string, keys []ProviderKeys, now time.Time) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.entries[clubID] = keyEntry{keys: keys, lastFetchedAt: now}
}

// Invalidate drops a club's entry, forcing the next Get to miss.
func (c *KeyCache) Invalidate(clubID string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	delete(c.entries, clubID)
}

// Service resolves provider keys through the cache.
type Service interface {
	Keys(ctx context.Context, clubID string) ([]ProviderKeys, error)
}

type service struct {
	fetcher Fetcher
	cache   *KeyCache
	now     func() time.Time
}

func NewService(fetcher Fetcher, cache *KeyCache) Service {
	return &service{
		fetcher: fetcher,
		cache:   cache,
		now:     time.Now,
	}
}

func (s *service) Keys(ctx context.Context, clubID string) ([]ProviderKeys, error) {
	now := s.now()
	if keys, ok := s.cache.Get(clubID, now); ok {
		return keys, nil
	}

	keys, err := s.fetcher.FetchKeys(ctx, clubID)
	if err != nil {
		return nil, err
	}
	if len(keys) == 0 {
		return nil, ErrNoKeys
	}

	s.cache.Put(clubID, keys, now)
	return keys, nil
}
