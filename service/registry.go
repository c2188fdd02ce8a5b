package service

import (
	"sort"
	"sync"
	"time"

	"github.com/ICI-Laboratories/lmServer/domain"
	"github.com/ICI-Laboratories/lmServer/helpers"
	"github.com/ICI-Laboratories/lmServer/interfaces"

	"github.com/go-kit/log"
)

// registry implements interfaces.NodeRegistry. It is the single shared table of
// announced nodes: the UDP listener upserts into it, the router snapshots from
// it and the sweeper deletes from it. A record is live when its LastSeen is no
// older than the heartbeat TTL against the injected clock; liveness is always
// derived at read time, never stored. Fields: clock, ttl, logger; under mu: nodes
// (identity → record).
type registry struct {
	clock  interfaces.TimeProvider
	ttl    time.Duration
	logger log.Logger

	mu    sync.RWMutex
	nodes map[domain.NodeIdentity]domain.NodeRecord
}

// NewRegistry creates the node registry. Panics on nil clock or logger and on a
// non-positive heartbeatTTL.
//
// Parameters: clock — time source for LastSeen stamping and liveness checks;
// heartbeatTTL — how long a record stays live after its last announcement
// (e.g. 30s); logger — joined/expired node events are logged.
//
// Returns: interfaces.NodeRegistry (*registry).
//
// Called from cmd when building the balancer.
func NewRegistry(clock interfaces.TimeProvider, heartbeatTTL time.Duration, logger log.Logger) interfaces.NodeRegistry {
	if heartbeatTTL <= 0 {
		panic("service.registry.go: heartbeatTTL must be positive")
	}
	return &registry{
		clock:  helpers.NilPanic(clock, "service.registry.go: clock is required"),
		ttl:    heartbeatTTL,
		logger: log.With(helpers.NilPanic(logger, "service.registry.go: logger is required"), "component", "registry"),
		nodes:  make(map[domain.NodeIdentity]domain.NodeRecord),
	}
}

// Upsert inserts or replaces the record under rec.Identity, stamping LastSeen with
// the clock's current time. The caller's LastSeen is ignored. Returns true when
// the identity was not present (a node joined), false on a heartbeat refresh.
//
// Called from adapters.UDPListener for every decoded announcement.
func (r *registry) Upsert(rec domain.NodeRecord) bool {
	rec.LastSeen = r.clock.Now()

	r.mu.Lock()
	_, existed := r.nodes[rec.Identity]
	r.nodes[rec.Identity] = rec
	r.mu.Unlock()

	if !existed {
		_ = log.With(r.logger, "node", rec.Identity, "kind", rec.Kind).Log("msg", "node joined")
	}
	return !existed
}

// Snapshot returns the live records of the kind as an identity-sorted copy.
// Liveness is evaluated against the clock at call time, so records past the TTL
// disappear from snapshots before the sweeper ever runs.
//
// Called from service.Router once per request, before any network I/O.
func (r *registry) Snapshot(kind domain.ServiceKind) []domain.NodeRecord {
	now := r.clock.Now()

	r.mu.RLock()
	out := make([]domain.NodeRecord, 0, len(r.nodes))
	for _, rec := range r.nodes {
		if rec.Kind != kind {
			continue
		}
		if !rec.LiveAt(now, r.ttl) {
			continue
		}
		out = append(out, rec)
	}
	r.mu.RUnlock()

	sort.Slice(out, func(i, j int) bool { return out[i].Identity < out[j].Identity })
	return out
}

// SnapshotAll returns the live records of every kind as one identity-sorted copy.
//
// Called from handlers.Status.
func (r *registry) SnapshotAll() []domain.NodeRecord {
	now := r.clock.Now()

	r.mu.RLock()
	out := make([]domain.NodeRecord, 0, len(r.nodes))
	for _, rec := range r.nodes {
		if !rec.LiveAt(now, r.ttl) {
			continue
		}
		out = append(out, rec)
	}
	r.mu.RUnlock()

	sort.Slice(out, func(i, j int) bool { return out[i].Identity < out[j].Identity })
	return out
}

// EvictExpired deletes every record whose LastSeen is older than now minus the TTL
// and returns the number removed. Idempotent; a second call with the same now
// removes nothing.
//
// Called from service.Sweeper each tick.
func (r *registry) EvictExpired(now time.Time) int {
	var evicted []domain.NodeRecord

	r.mu.Lock()
	for id, rec := range r.nodes {
		if !rec.LiveAt(now, r.ttl) {
			delete(r.nodes, id)
			evicted = append(evicted, rec)
		}
	}
	r.mu.Unlock()

	for _, rec := range evicted {
		_ = log.With(r.logger, "node", rec.Identity, "kind", rec.Kind, "last_seen", rec.LastSeen.Format(time.RFC3339)).Log("msg", "node expired")
	}
	return len(evicted)
}

// Size returns the total number of records including stale-but-unevicted ones.
func (r *registry) Size() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.nodes)
}
