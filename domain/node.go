package domain

import "time"

// ServiceKind is the category of inference backend a node provides.
type ServiceKind string

const (
	KindLMStudio ServiceKind = "lmstudio"
	KindOllama   ServiceKind = "ollama"
	KindUnknown  ServiceKind = "unknown"
)

// ParseServiceKind maps a wire tag to a ServiceKind. Unrecognized tags map to
// KindUnknown; such nodes are retained in the registry but never match a
// kind-specific snapshot.
func ParseServiceKind(tag string) ServiceKind {
	switch tag {
	case string(KindLMStudio):
		return KindLMStudio
	case string(KindOllama):
		return KindOllama
	default:
		return KindUnknown
	}
}

// RoutableKinds are the kinds the balancer accepts requests for.
var RoutableKinds = []ServiceKind{KindLMStudio, KindOllama}

// Routable reports whether requests can be routed to this kind.
func (k ServiceKind) Routable() bool {
	return k == KindLMStudio || k == KindOllama
}

// NodeIdentity uniquely identifies a node. It is derived from the announced
// node id plus the announced endpoint and is immutable once created.
type NodeIdentity string

// IdentityFor builds the identity for an announced (node id, endpoint) pair.
// Keying on both keeps identities unique even when an id is reused across
// endpoints (e.g. one host announcing two runtimes).
func IdentityFor(nodeID, endpoint string) NodeIdentity {
	return NodeIdentity(nodeID + "@" + endpoint)
}

// NodeRecord is one registry entry: a node's identity, the kind of service it
// announced, the endpoint requests are forwarded to, when it was last heard
// from, and an optional self-reported load metric (nil when the node did not
// report one).
type NodeRecord struct {
	Identity NodeIdentity
	Kind     ServiceKind
	Endpoint string // host:port
	LastSeen time.Time
	LoadHint *float64
}

// LiveAt reports whether the record counts as live at the given instant:
// within ttl of its last announcement. Liveness is derived, never stored.
func (r NodeRecord) LiveAt(now time.Time, ttl time.Duration) bool {
	return now.Sub(r.LastSeen) <= ttl
}
