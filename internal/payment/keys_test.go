package payment

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeFetcher struct {
	calls int
	keys  []ProviderKeys
	err   error
}

func (f *fakeFetcher) FetchKeys(_ context.Context, _ string) ([]ProviderKeys, error) {
	f.calls++
	return f.keys, f.err
}

func TestKeyCache(t *testing.T) {
	base := time.Date(2026, 3, 15, 12, 0, 0, 0, time.UTC)
	keys := []ProviderKeys{{Provider: "iyzico", PublicKey: "pk"}}

	t.Run("miss before put", func(t *testing.T) {
		c := NewKeyCache(time.Minute)
		_, ok := c.Get("club-1", base)
		assert.False(t, ok)
	})

	t.Run("hit within ttl", func(t *testing.T) {
		c := NewKeyCache(time.Minute)
		c.Put("club-1", keys, base)

		got, ok := c.Get("club-1", base.Add(59*time.Second))
		require.True(t, ok)
		assert.Equal(t, keys, got)
	})

	t.Run("expired after ttl", func(t *testing.T) {
		c := NewKeyCache(time.Minute)
		c.Put("club-1", keys, base)

		_, ok := c.Get("club-1", base.Add(61*time.Second))
		assert.False(t, ok)
	})

	t.Run("invalidate drops entry", func(t *testing.T) {
		c := NewKeyCache(time.Minute)
		c.Put("club-1", keys, base)
		c.Invalidate("club-1")

		_, ok := c.Get("club-1", base)
		assert.False(t, ok)
	})
}

func TestServiceKeys(t *testing.T) {
	keys := []ProviderKeys{{Provider: "stripe", PublicKey: "pk"}}

	t.Run("fetches once then serves from cache", func(t *testing.T) {
		fetcher := &fakeFetcher{keys: keys}
		svc := NewService(fetcher, NewKeyCache(time.Minute)).(*service)

		for i := 0; i < 3; i++ {
			got, err := svc.Keys(context.Background(), "club-1")
			require.NoError(t, err)
			assert.Equal(t, keys, got)
		}
		assert.Equal(t, 1, fetcher.calls)
	})

	t.Run("refetches after expiry", func(t *testing.T) {
		fetcher := &fakeFetcher{keys: keys}
		svc := NewService(fetcher, NewKeyCache(time.Minute)).(*service)

		now := time.Date(2026, 3, 15, 12, 0, 0, 0, time.UTC)
		svc.now = func() time.Time { return now }

		_, err := svc.Keys(context.Background(), "club-1")
		require.NoError(t, err)

		now = now.Add(2 * time.Minute)
		_, err = svc.Keys(context.Background(), "club-1")
		require.NoError(t, err)
		assert.Equal(t, 2, fetcher.calls)
	})

	t.Run("empty result is an error, not cached", func(t *testing.T) {
		fetcher := &fakeFetcher{}
		svc := NewService(fetcher, NewKeyCache(time.Minute))

		_, err := svc.Keys(context.Background(), "club-1")
		assert.ErrorIs(t, err, ErrNoKeys)
	})
}
