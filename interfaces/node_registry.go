package interfaces

import (
	"time"

	"github.com/ICI-Laboratories/lmServer/domain"
)

// NodeRegistry is the in-memory node table fed by UDP announcements and read by
// the router and the status surface. Liveness is derived at read time from
// LastSeen plus the registry's heartbeat TTL; no operation performs I/O.
//
// Implemented by service.Registry. Written from adapters.UDPListener
// (Upsert per decoded announcement), read from service.Router (Snapshot) and
// handlers (SnapshotAll, Size), swept from service.Sweeper (EvictExpired).
//
//go:generate moq -stub -out mock/node_registry.go -pkg mock . NodeRegistry
type NodeRegistry interface {
	// Upsert inserts or replaces the record under its identity and stamps LastSeen with the registry clock.
	// Parameter rec — decoded announcement record; rec.LastSeen is ignored and overwritten.
	// Returns: true when the identity was not present before (a node joined), false on a heartbeat refresh.
	// Called from adapters.UDPListener for every well-formed datagram.
	Upsert(rec domain.NodeRecord) bool

	// Snapshot returns the currently-live records of one kind, evaluated against the call-time clock,
	// as an identity-sorted copy. Callers never observe internal map state.
	// Parameter kind — service kind to filter on; KindUnknown records match only KindUnknown.
	// Returns: possibly empty slice, never shared with the registry.
	// Called from service.Router.Route once per inbound request, before any network I/O.
	Snapshot(kind domain.ServiceKind) []domain.NodeRecord

	// SnapshotAll returns the currently-live records of every kind as one identity-sorted copy.
	// Returns: possibly empty slice, never shared with the registry.
	// Called from handlers.Status for the status surface.
	SnapshotAll() []domain.NodeRecord

	// EvictExpired deletes every record whose LastSeen is older than now minus the heartbeat TTL.
	// Parameter now — eviction reference time (the sweeper's tick time).
	// Returns: number of records removed; 0 when nothing expired. Idempotent.
	// Called from service.Sweeper each tick; safe concurrently with Upsert/Snapshot.
	EvictExpired(now time.Time) int

	// Size returns the total number of records including stale-but-unevicted ones.
	// Called from handlers.Status and from registry gauge collection.
	Size() int
}
