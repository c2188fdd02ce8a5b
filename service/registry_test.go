package service

import (
	"sync"
	"testing"
	"time"

	"github.com/ICI-Laboratories/lmServer/domain"
	"github.com/ICI-Laboratories/lmServer/helpers"
	"github.com/ICI-Laboratories/lmServer/interfaces"
	"github.com/ICI-Laboratories/lmServer/interfaces/mock"

	"github.com/go-kit/log"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testTTL = 30 * time.Second

// newRegistryAt builds a registry whose clock reads *now, so tests advance time
// by reassigning the pointed-to value.
func newRegistryAt(t *testing.T, now *time.Time) interfaces.NodeRegistry {
	t.Helper()
	clock := &mock.TimeProviderMock{NowFunc: func() time.Time { return *now }}
	return NewRegistry(clock, testTTL, log.NewNopLogger())
}

func ollamaRecord(id, endpoint string) domain.NodeRecord {
	return domain.NodeRecord{
		Identity: domain.IdentityFor(id, endpoint),
		Kind:     domain.KindOllama,
		Endpoint: endpoint,
	}
}

func TestNewRegistry_Panics(t *testing.T) {
	clock := &mock.TimeProviderMock{}
	logger := log.NewNopLogger()

	assert.PanicsWithValue(t, "service.registry.go: clock is required", func() {
		NewRegistry(nil, testTTL, logger)
	})
	assert.PanicsWithValue(t, "service.registry.go: logger is required", func() {
		NewRegistry(clock, testTTL, nil)
	})
	assert.PanicsWithValue(t, "service.registry.go: heartbeatTTL must be positive", func() {
		NewRegistry(clock, 0, logger)
	})
}

func TestRegistry_Upsert_StampsLastSeen(t *testing.T) {
	now := helpers.TestNow()
	reg := newRegistryAt(t, &now)

	created := reg.Upsert(ollamaRecord("host-1", "10.0.0.5:11434"))
	assert.True(t, created)

	snap := reg.Snapshot(domain.KindOllama)
	require.Len(t, snap, 1)
	assert.Equal(t, now, snap[0].LastSeen)

	// Refresh at a later time replaces the record and returns false.
	now = now.Add(5 * time.Second)
	refreshed := ollamaRecord("host-1", "10.0.0.5:11434")
	refreshed.LoadHint = helpers.Ptr(4.0)
	created = reg.Upsert(refreshed)
	assert.False(t, created)

	snap = reg.Snapshot(domain.KindOllama)
	require.Len(t, snap, 1)
	assert.Equal(t, now, snap[0].LastSeen)
	require.NotNil(t, snap[0].LoadHint)
	assert.Equal(t, 4.0, *snap[0].LoadHint)
	assert.Equal(t, 1, reg.Size())
}

func TestRegistry_Upsert_IgnoresCallerLastSeen(t *testing.T) {
	now := helpers.TestNow()
	reg := newRegistryAt(t, &now)

	rec := ollamaRecord("host-1", "10.0.0.5:11434")
	rec.LastSeen = now.Add(-time.Hour)
	reg.Upsert(rec)

	snap := reg.Snapshot(domain.KindOllama)
	require.Len(t, snap, 1)
	assert.Equal(t, now, snap[0].LastSeen)
}

func TestRegistry_Snapshot_FiltersKindAndLiveness(t *testing.T) {
	now := helpers.TestNow()
	reg := newRegistryAt(t, &now)

	reg.Upsert(ollamaRecord("host-1", "10.0.0.5:11434"))
	lm := domain.NodeRecord{
		Identity: domain.IdentityFor("host-2", "10.0.0.6:1234"),
		Kind:     domain.KindLMStudio,
		Endpoint: "10.0.0.6:1234",
	}
	reg.Upsert(lm)

	assert.Len(t, reg.Snapshot(domain.KindOllama), 1)
	assert.Len(t, reg.Snapshot(domain.KindLMStudio), 1)
	assert.Empty(t, reg.Snapshot(domain.KindUnknown))

	// Exactly at the TTL the record is still live; one step past it is not.
	now = helpers.TestNow().Add(testTTL)
	assert.Len(t, reg.Snapshot(domain.KindOllama), 1)
	now = helpers.TestNow().Add(testTTL + time.Millisecond)
	assert.Empty(t, reg.Snapshot(domain.KindOllama))
	// Stale records still count toward Size until the sweeper runs.
	assert.Equal(t, 2, reg.Size())
}

func TestRegistry_Snapshot_SortedByIdentityAndCopied(t *testing.T) {
	now := helpers.TestNow()
	reg := newRegistryAt(t, &now)

	reg.Upsert(ollamaRecord("zeta", "10.0.0.9:11434"))
	reg.Upsert(ollamaRecord("alpha", "10.0.0.7:11434"))
	reg.Upsert(ollamaRecord("mike", "10.0.0.8:11434"))

	snap := reg.Snapshot(domain.KindOllama)
	require.Len(t, snap, 3)
	assert.Equal(t, domain.IdentityFor("alpha", "10.0.0.7:11434"), snap[0].Identity)
	assert.Equal(t, domain.IdentityFor("mike", "10.0.0.8:11434"), snap[1].Identity)
	assert.Equal(t, domain.IdentityFor("zeta", "10.0.0.9:11434"), snap[2].Identity)

	// Mutating the snapshot must not leak into the registry.
	snap[0].Endpoint = "mutated"
	again := reg.Snapshot(domain.KindOllama)
	assert.Equal(t, "10.0.0.7:11434", again[0].Endpoint)
}

func TestRegistry_ReannounceAfterExpiryRevives(t *testing.T) {
	now := helpers.TestNow()
	reg := newRegistryAt(t, &now)

	reg.Upsert(ollamaRecord("host-1", "10.0.0.5:11434"))

	now = now.Add(testTTL + time.Second)
	assert.Empty(t, reg.Snapshot(domain.KindOllama))

	created := reg.Upsert(ollamaRecord("host-1", "10.0.0.5:11434"))
	assert.False(t, created, "record was stale but never evicted")
	assert.Len(t, reg.Snapshot(domain.KindOllama), 1)
}

func TestRegistry_SnapshotAll(t *testing.T) {
	now := helpers.TestNow()
	reg := newRegistryAt(t, &now)

	reg.Upsert(ollamaRecord("host-1", "10.0.0.5:11434"))
	reg.Upsert(domain.NodeRecord{
		Identity: domain.IdentityFor("host-2", "10.0.0.6:1234"),
		Kind:     domain.KindLMStudio,
		Endpoint: "10.0.0.6:1234",
	})
	reg.Upsert(domain.NodeRecord{
		Identity: domain.IdentityFor("host-3", "10.0.0.7:9999"),
		Kind:     domain.KindUnknown,
		Endpoint: "10.0.0.7:9999",
	})

	all := reg.SnapshotAll()
	assert.Len(t, all, 3)
}

func TestRegistry_EvictExpired(t *testing.T) {
	now := helpers.TestNow()
	reg := newRegistryAt(t, &now)

	reg.Upsert(ollamaRecord("old", "10.0.0.5:11434"))
	now = now.Add(20 * time.Second)
	reg.Upsert(ollamaRecord("fresh", "10.0.0.6:11434"))

	// "old" is 31s stale, "fresh" only 11s.
	evictAt := helpers.TestNow().Add(31 * time.Second)
	assert.Equal(t, 1, reg.EvictExpired(evictAt))
	assert.Equal(t, 1, reg.Size())
	assert.Equal(t, 0, reg.EvictExpired(evictAt))

	snap := reg.Snapshot(domain.KindOllama)
	require.Len(t, snap, 1)
	assert.Equal(t, domain.IdentityFor("fresh", "10.0.0.6:11434"), snap[0].Identity)
}

func TestRegistry_ConcurrentUpsertSnapshot(t *testing.T) {
	now := helpers.TestNow()
	clock := &mock.TimeProviderMock{NowFunc: func() time.Time { return now }}
	reg := NewRegistry(clock, testTTL, log.NewNopLogger())

	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func(n int) {
			defer wg.Done()
			id := string(rune('a' + n))
			for j := 0; j < 100; j++ {
				reg.Upsert(ollamaRecord(id, "10.0.0.5:11434"))
				_ = reg.Snapshot(domain.KindOllama)
				_ = reg.EvictExpired(now)
			}
		}(i)
	}
	wg.Wait()

	assert.Equal(t, 8, reg.Size())
}
