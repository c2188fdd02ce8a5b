package interfaces

import "time"

// TimeProvider supplies the current time for liveness checks and eviction.
// Injected so tests can use a fixed clock instead of time.Now().
//
// Used by service.Registry to stamp LastSeen on upsert and to evaluate record
// liveness in snapshots, and by service.Sweeper to timestamp eviction ticks.
// Constructed in cmd as service.NewTimeProvider(func() time.Time { return time.Now().UTC() }).
//
//go:generate moq -stub -out mock/time_provider.go -pkg mock . TimeProvider
type TimeProvider interface {
	// Now returns current time (UTC in prod; in tests — fixed time for deterministic liveness checks).
	// Parameters: none.
	// Returns: time.Time — "now" for comparison with a record's LastSeen plus the heartbeat TTL.
	// Called from service.Registry on Upsert/Snapshot and from service.Sweeper on every tick.
	Now() time.Time
}
