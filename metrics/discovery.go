// Package metrics provides Prometheus metrics for observability.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// DiscoveryMetrics holds metrics for the UDP announcement path and the registry.
type DiscoveryMetrics struct {
	// AnnouncementsTotal counts well-formed announcements that reached the registry.
	AnnouncementsTotal prometheus.Counter

	// MalformedTotal counts datagrams dropped because they did not decode.
	MalformedTotal prometheus.Counter

	// NodesJoinedTotal counts upserts that introduced a previously unknown identity.
	NodesJoinedTotal prometheus.Counter

	// EvictedTotal counts records removed by the sweeper.
	EvictedTotal prometheus.Counter

	// RegistrySize reports the current number of records, stale ones included.
	RegistrySize prometheus.GaugeFunc
}

// NewDiscoveryMetrics creates and registers discovery metrics.
// Uses promauto for automatic registration with the default registry.
// sizeFn reports the registry's current record count.
func NewDiscoveryMetrics(sizeFn func() float64) *DiscoveryMetrics {
	return &DiscoveryMetrics{
		AnnouncementsTotal: promauto.NewCounter(prometheus.CounterOpts{
			Namespace: "lmserver",
			Subsystem: "discovery",
			Name:      "announcements_total",
			Help:      "Total number of well-formed announcements received.",
		}),
		MalformedTotal: promauto.NewCounter(prometheus.CounterOpts{
			Namespace: "lmserver",
			Subsystem: "discovery",
			Name:      "malformed_announcements_total",
			Help:      "Total number of datagrams dropped as malformed.",
		}),
		NodesJoinedTotal: promauto.NewCounter(prometheus.CounterOpts{
			Namespace: "lmserver",
			Subsystem: "discovery",
			Name:      "nodes_joined_total",
			Help:      "Total number of announcements that introduced a new node identity.",
		}),
		EvictedTotal: promauto.NewCounter(prometheus.CounterOpts{
			Namespace: "lmserver",
			Subsystem: "discovery",
			Name:      "nodes_evicted_total",
			Help:      "Total number of node records evicted after missing heartbeats.",
		}),
		RegistrySize: promauto.NewGaugeFunc(prometheus.GaugeOpts{
			Namespace: "lmserver",
			Subsystem: "discovery",
			Name:      "registry_size",
			Help:      "Current number of registry records, stale ones included.",
		}, sizeFn),
	}
}

// NewDiscoveryMetricsWithRegistry creates discovery metrics registered with a custom registry.
// Useful for testing to avoid conflicts with the default registry.
func NewDiscoveryMetricsWithRegistry(reg prometheus.Registerer, sizeFn func() float64) *DiscoveryMetrics {
	announcements := prometheus.NewCounter(prometheus.CounterOpts{
		Namespace: "lmserver",
		Subsystem: "discovery",
		Name:      "announcements_total",
		Help:      "Total number of well-formed announcements received.",
	})
	malformed := prometheus.NewCounter(prometheus.CounterOpts{
		Namespace: "lmserver",
		Subsystem: "discovery",
		Name:      "malformed_announcements_total",
		Help:      "Total number of datagrams dropped as malformed.",
	})
	joined := prometheus.NewCounter(prometheus.CounterOpts{
		Namespace: "lmserver",
		Subsystem: "discovery",
		Name:      "nodes_joined_total",
		Help:      "Total number of announcements that introduced a new node identity.",
	})
	evicted := prometheus.NewCounter(prometheus.CounterOpts{
		Namespace: "lmserver",
		Subsystem: "discovery",
		Name:      "nodes_evicted_total",
		Help:      "Total number of node records evicted after missing heartbeats.",
	})
	size := prometheus.NewGaugeFunc(prometheus.GaugeOpts{
		Namespace: "lmserver",
		Subsystem: "discovery",
		Name:      "registry_size",
		Help:      "Current number of registry records, stale ones included.",
	}, sizeFn)

	reg.MustRegister(announcements)
	reg.MustRegister(malformed)
	reg.MustRegister(joined)
	reg.MustRegister(evicted)
	reg.MustRegister(size)

	return &DiscoveryMetrics{
		AnnouncementsTotal: announcements,
		MalformedTotal:     malformed,
		NodesJoinedTotal:   joined,
		EvictedTotal:       evicted,
		RegistrySize:       size,
	}
}

// RecordAnnouncement increments the well-formed announcement counter.
func (m *DiscoveryMetrics) RecordAnnouncement() {
	if m == nil || m.AnnouncementsTotal == nil {
		return
	}
	m.AnnouncementsTotal.Inc()
}

// RecordMalformed increments the dropped-datagram counter.
func (m *DiscoveryMetrics) RecordMalformed() {
	if m == nil || m.MalformedTotal == nil {
		return
	}
	m.MalformedTotal.Inc()
}

// RecordJoined increments the new-identity counter.
func (m *DiscoveryMetrics) RecordJoined() {
	if m == nil || m.NodesJoinedTotal == nil {
		return
	}
	m.NodesJoinedTotal.Inc()
}

// RecordEvicted adds count evictions; no-op for zero count.
func (m *DiscoveryMetrics) RecordEvicted(count int) {
	if m == nil || m.EvictedTotal == nil || count <= 0 {
		return
	}
	m.EvictedTotal.Add(float64(count))
}
